// Package design defines the format-agnostic document model consumed by the
// connectivity builder: components, designs and design configurations,
// along with the Loader interface for reading them from a concrete format.
//
// Expressions (addresses, sizes, dimensions, presence conditions) are kept
// as unresolved text. Turning them into numbers is the job of the expr
// package, invoked by the builder.
//
// Concrete loaders, such as the HCL one, live in separate packages.
package design
