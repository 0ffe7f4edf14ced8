package dag

import (
	"fmt"
	"sort"
)

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*node),
	}
}

// AddNode adds a new vertex with the given ID to the graph. If a vertex with
// the same ID already exists, the function does nothing.
func (g *Graph) AddNode(id string) {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	g.addNodeLocked(id)
}

func (g *Graph) addNodeLocked(id string) *node {
	if n, ok := g.nodes[id]; ok {
		return n
	}
	n := &node{
		id:       id,
		parents:  make(map[string]*node),
		children: make(map[string]*node),
	}
	g.nodes[id] = n
	return n
}

// HasNode reports whether a vertex exists.
func (g *Graph) HasNode(id string) bool {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	_, ok := g.nodes[id]
	return ok
}

// AddEdge creates a directed edge from the `fromID` vertex to the `toID`
// vertex. An error is returned if either vertex does not exist or if the edge
// would create a self-reference. Adding an existing edge is a no-op.
func (g *Graph) AddEdge(fromID, toID string) error {
	if fromID == toID {
		return fmt.Errorf("self-referential edge not allowed: %s -> %s", fromID, fromID)
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	fromNode, ok := g.nodes[fromID]
	if !ok {
		return fmt.Errorf("source node not found: %s", fromID)
	}

	toNode, ok := g.nodes[toID]
	if !ok {
		return fmt.Errorf("destination node not found: %s", toID)
	}

	toNode.parents[fromID] = fromNode
	fromNode.children[toID] = toNode

	return nil
}

// RemoveEdge deletes the edge from `fromID` to `toID`. Missing vertices or
// edges are ignored.
func (g *Graph) RemoveEdge(fromID, toID string) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if fromNode, ok := g.nodes[fromID]; ok {
		delete(fromNode.children, toID)
	}
	if toNode, ok := g.nodes[toID]; ok {
		delete(toNode.parents, fromID)
	}
}

// Parents returns the sorted IDs of vertices with an edge into id.
func (g *Graph) Parents(id string) ([]string, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", id)
	}
	return sortedKeys(n.parents), nil
}

// DetectCycles checks the graph for any cycles. It returns a *CycleError
// describing the first cycle found. Vertices and edges are visited in ID
// order so the reported cycle is deterministic.
func (g *Graph) DetectCycles() error {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	// permanent: fully visited, not on a cycle. stack: the current DFS path.
	permanent := make(map[string]bool)
	onStack := make(map[string]int)
	var stack []string

	var visit func(n *node) error
	visit = func(n *node) error {
		if permanent[n.id] {
			return nil
		}
		if at, ok := onStack[n.id]; ok {
			path := append(append([]string{}, stack[at:]...), n.id)
			return &CycleError{Path: path}
		}

		onStack[n.id] = len(stack)
		stack = append(stack, n.id)

		for _, childID := range sortedKeys(n.children) {
			if err := visit(n.children[childID]); err != nil {
				return err
			}
		}

		stack = stack[:len(stack)-1]
		delete(onStack, n.id)
		permanent[n.id] = true
		return nil
	}

	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if err := visit(g.nodes[id]); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys(m map[string]*node) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
