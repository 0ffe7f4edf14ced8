package dag

import (
	"strings"
	"sync"
)

// Graph is a collection of vertices and directed edges between them.
// All operations on the graph are concurrency-safe.
type Graph struct {
	// mutex protects the nodes map during concurrent access.
	mutex sync.RWMutex
	// nodes stores all vertices in the graph, keyed by their unique ID.
	nodes map[string]*node
}

// node represents a single vertex in the graph. It is un-exported to
// enforce interaction with the graph via the public API (using string IDs),
// not by direct struct manipulation.
type node struct {
	id string
	// parents holds the vertices with an edge into this one.
	parents map[string]*node
	// children holds the vertices this one has an edge to.
	children map[string]*node
}

// CycleError reports a cycle found by DetectCycles. Path starts and ends
// with the same vertex.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return "cycle detected: " + strings.Join(e.Path, " -> ")
}
