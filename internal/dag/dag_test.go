package dag

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	g := New()
	require.NotNil(t, g)
	assert.NotNil(t, g.nodes)
	assert.Empty(t, g.nodes)
}

func TestAddNode(t *testing.T) {
	g := New()

	g.AddNode("a")
	assert.Len(t, g.nodes, 1)
	nodeA, ok := g.nodes["a"]
	require.True(t, ok)
	assert.Equal(t, "a", nodeA.id)
	assert.NotNil(t, nodeA.parents)
	assert.NotNil(t, nodeA.children)

	g.AddNode("a")
	assert.Len(t, g.nodes, 1)
	assert.True(t, g.HasNode("a"))
	assert.False(t, g.HasNode("b"))
}

func TestAddAndRemoveEdge(t *testing.T) {
	t.Run("success case", func(t *testing.T) {
		g := New()
		g.AddNode("top")
		g.AddNode("sub")

		require.NoError(t, g.AddEdge("top", "sub"))

		assert.Contains(t, g.nodes["top"].children, "sub")
		parents, err := g.Parents("sub")
		require.NoError(t, err)
		assert.Equal(t, []string{"top"}, parents)

		g.RemoveEdge("top", "sub")
		assert.Empty(t, g.nodes["top"].children)
		parents, _ = g.Parents("sub")
		assert.Empty(t, parents)

		g.RemoveEdge("top", "missing")
	})

	t.Run("error cases", func(t *testing.T) {
		g := New()
		g.AddNode("a")

		assert.ErrorContains(t, g.AddEdge("dne", "a"), "source node not found")
		assert.ErrorContains(t, g.AddEdge("a", "dne"), "destination node not found")
		assert.ErrorContains(t, g.AddEdge("a", "a"), "self-referential edge")

		_, err := g.Parents("dne")
		assert.Error(t, err)
	})
}

func TestDetectCycles(t *testing.T) {
	t.Run("empty graph has no cycles", func(t *testing.T) {
		assert.NoError(t, New().DetectCycles())
	})

	t.Run("shared subtree is not a cycle", func(t *testing.T) {
		g := New()
		for _, id := range []string{"a", "b", "c", "d"} {
			g.AddNode(id)
		}
		require.NoError(t, g.AddEdge("a", "b"))
		require.NoError(t, g.AddEdge("a", "c"))
		require.NoError(t, g.AddEdge("b", "d"))
		require.NoError(t, g.AddEdge("c", "d"))
		assert.NoError(t, g.DetectCycles())
	})

	t.Run("direct cycle reports its path", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		g.AddNode("b")
		require.NoError(t, g.AddEdge("a", "b"))
		require.NoError(t, g.AddEdge("b", "a"))

		err := g.DetectCycles()
		var cycle *CycleError
		require.True(t, errors.As(err, &cycle))
		assert.Equal(t, []string{"a", "b", "a"}, cycle.Path)
		assert.EqualError(t, err, "cycle detected: a -> b -> a")
	})

	t.Run("cycle in a disjoint component is detected", func(t *testing.T) {
		g := New()
		for _, id := range []string{"a", "b", "x", "y", "z"} {
			g.AddNode(id)
		}
		require.NoError(t, g.AddEdge("a", "b"))
		require.NoError(t, g.AddEdge("x", "y"))
		require.NoError(t, g.AddEdge("y", "z"))
		require.NoError(t, g.AddEdge("z", "y"))

		err := g.DetectCycles()
		var cycle *CycleError
		require.True(t, errors.As(err, &cycle))
		assert.Equal(t, []string{"y", "z", "y"}, cycle.Path)
	})

	t.Run("removing the closing edge clears the cycle", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		g.AddNode("b")
		require.NoError(t, g.AddEdge("a", "b"))
		require.NoError(t, g.AddEdge("b", "a"))
		require.Error(t, g.DetectCycles())

		g.RemoveEdge("b", "a")
		assert.NoError(t, g.DetectCycles())
	})
}

func TestConcurrentAccess(t *testing.T) {
	g := New()
	g.AddNode("root")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := string(rune('a' + i))
			g.AddNode(id)
			assert.NoError(t, g.AddEdge("root", id))
			assert.NoError(t, g.DetectCycles())
		}(i)
	}
	wg.Wait()

	assert.Len(t, g.nodes["root"].children, 8)
	for i := 0; i < 8; i++ {
		parents, err := g.Parents(string(rune('a' + i)))
		require.NoError(t, err)
		assert.Equal(t, []string{"root"}, parents)
	}
}
