package graph_test

import (
	"testing"

	"github.com/katalvlaran/maxclique/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTriangle(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.NewGraph()
	require.NoError(t, g.AddEdge("C", "A"))
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))

	return g
}

func TestIndexedNumberingIsSortedAndDense(t *testing.T) {
	ix := graph.NewIndexed(buildTriangle(t))
	require.Equal(t, 3, ix.Size())
	assert.Equal(t, "A", ix.VertexName(0))
	assert.Equal(t, "B", ix.VertexName(1))
	assert.Equal(t, "C", ix.VertexName(2))

	for _, name := range []string{"A", "B", "C"} {
		idx, ok := ix.VertexID(name)
		require.True(t, ok)
		assert.Equal(t, name, ix.VertexName(idx))
	}
	_, ok := ix.VertexID("ghost")
	assert.False(t, ok)
}

func TestIndexedAdjacentMatchesGraph(t *testing.T) {
	ix := graph.NewIndexed(buildTriangle(t))
	a, _ := ix.VertexID("A")
	b, _ := ix.VertexID("B")
	c, _ := ix.VertexID("C")

	assert.True(t, ix.Adjacent(a, b))
	assert.True(t, ix.Adjacent(b, c))
	assert.True(t, ix.Adjacent(a, c))
	assert.False(t, ix.Adjacent(a, a))
}

func TestIndexedVisitEdgesEachEdgeOnceWithULessV(t *testing.T) {
	ix := graph.NewIndexed(buildTriangle(t))

	var edges [][2]int
	ix.VisitEdges(func(u, v int) {
		edges = append(edges, [2]int{u, v})
	})

	assert.Len(t, edges, 3)
	for _, e := range edges {
		assert.Less(t, e[0], e[1])
	}
}

func TestIndexedOnEmptyGraph(t *testing.T) {
	ix := graph.NewIndexed(graph.NewGraph())
	assert.Equal(t, 0, ix.Size())

	var calls int
	ix.VisitEdges(func(int, int) { calls++ })
	assert.Equal(t, 0, calls)
}
