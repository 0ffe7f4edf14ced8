// Package dag is a small directed graph with cycle detection. The builder
// uses it to record which (component, view) pairs a hierarchical descent has
// entered from which, and to refuse a descent that would make that record
// cyclic.
package dag
