// Package core_test verifies thread-safety of core.Graph under concurrent reads.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortway/core"
)

// TestConcurrentReaders builds a ring once, then hammers it with readers,
// the access pattern used by concurrent searches over one graph.
func TestConcurrentReaders(t *testing.T) {
	const n = 64
	g := core.NewGraph[int]()
	for i := 0; i < n; i++ {
		_, err := g.AddNode(i)
		require.NoError(t, err)
	}
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddEdge(i, (i+1)%n, float64(i)))
	}

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(id int) {
			defer wg.Done()
			node, ok := g.Find(id)
			require.True(t, ok)
			for _, nb := range node.Neighbors() {
				_, err := node.EdgeWeight(nb)
				require.NoError(t, err)
			}
			require.Len(t, g.Nodes(), n)
		}(i)
	}
	wg.Wait()

	require.Equal(t, n, g.EdgeCount())
}

// TestConcurrentAddEdge ensures concurrent writers leave a consistent edge count.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph[int]()
	_, err := g.AddNode(-1)
	require.NoError(t, err)
	const num = 200
	for i := 0; i < num; i++ {
		_, err := g.AddNode(i)
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			require.NoError(t, g.AddEdge(-1, id, 1))
		}(i)
	}
	wg.Wait()

	hub, _ := g.Find(-1)
	require.Equal(t, num, hub.Degree())
	require.Equal(t, num, g.EdgeCount())
}
