// Package app contains the core application logic. It wires the document
// loader, the repository, the expression evaluator and the builder together
// and exposes the build, serve and list operations, decoupled from any
// specific entrypoint like a CLI.
package app
