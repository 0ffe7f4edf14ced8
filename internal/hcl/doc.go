// Package hcl provides the concrete HCL implementation of the design.Loader
// interface. It is responsible for file discovery, parsing, decoding into
// the schema structs and translating those into the format-agnostic
// design model.
package hcl
