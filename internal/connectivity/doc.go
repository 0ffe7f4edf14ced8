// Package connectivity holds the output of a build: a graph of component
// instances, their bus interfaces, the connections between interfaces and
// the memory layout each instance exposes.
//
// # Ownership
//
// The graph is an arena. Instances and interfaces live in slices owned by the
// Graph and refer to each other through InstanceID and InterfaceID rather
// than pointers; an interface names its connected memory by identifier.
// Lookups by (instance name, interface name) and by memory identifier are
// indexed.
//
// # Lifecycle
//
//  1. Created empty by the builder for one build call
//  2. Populated level by level while the design hierarchy is walked
//  3. Read-only once the build returns; concurrent readers are then safe
//
// Graph methods that mutate are not synchronized and must not be called
// after the build hands the graph out.
package connectivity
