// Package expr resolves the symbolic size, address, dimension and presence
// expressions found in design documents into concrete integers.
//
// The grammar is HCL's expression syntax extended with hardware-style
// numeric literals ('h1F, 32'hFF, 0x1F, 0b101, 4K, 1_000) and integer
// division. Named parameters and a small function library (clog2, pow, max,
// min, abs, ceil, floor) are available to every expression.
package expr
