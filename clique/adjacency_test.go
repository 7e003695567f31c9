package clique

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGraph is a minimal InputGraph for adjacency/colour/expand tests: a
// dense edge list over 0..n-1.
type fakeGraph struct {
	n     int
	edges [][2]int
}

func (g *fakeGraph) Size() int { return g.n }

func (g *fakeGraph) VisitEdges(visit func(u, v int)) {
	for _, e := range g.edges {
		visit(e[0], e[1])
	}
}

func (g *fakeGraph) Adjacent(u, v int) bool {
	for _, e := range g.edges {
		if (e[0] == u && e[1] == v) || (e[0] == v && e[1] == u) {
			return true
		}
	}

	return false
}

func (g *fakeGraph) VertexName(id int) string { return string(rune('a' + id)) }

func (g *fakeGraph) VertexID(name string) (int, bool) {
	if len(name) != 1 {
		return 0, false
	}
	id := int(name[0] - 'a')
	if id < 0 || id >= g.n {
		return 0, false
	}

	return id, true
}

// TestBuildAdjacencyDegreeSortTieBreak pins the literal tie-break derived
// from the original comparator: descending degree, ties broken by
// ascending external id (not spec.md §3's "descending external index"
// prose — see DESIGN.md).
//
// Vertex 0 has degree 1 (edge to 3), vertex 1 has degree 2 (edges to 2,3),
// vertex 2 has degree 2 (edges to 1,3), vertex 3 has degree 3 (edges to
// 0,1,2). Expected order (highest degree first, ties ascending id):
// 3, 1, 2, 0.
func TestBuildAdjacencyDegreeSortTieBreak(t *testing.T) {
	g := &fakeGraph{
		n: 4,
		edges: [][2]int{
			{0, 3},
			{1, 2},
			{1, 3},
			{2, 3},
		},
	}

	_, order, invorder := buildAdjacency(g, false)

	require.Equal(t, []int{3, 1, 2, 0}, order)
	for i, v := range order {
		assert.Equal(t, i, invorder[v])
	}
}

func TestBuildAdjacencyInputOrderSkipsSort(t *testing.T) {
	g := &fakeGraph{n: 3, edges: [][2]int{{0, 1}}}

	_, order, _ := buildAdjacency(g, true)

	assert.Equal(t, []int{0, 1, 2}, order)
}

func TestBuildAdjacencySymmetric(t *testing.T) {
	g := &fakeGraph{n: 3, edges: [][2]int{{0, 1}}}

	adj, _, invorder := buildAdjacency(g, true)

	pu, pv := invorder[0], invorder[1]
	assert.True(t, adj[pu].Test(pv))
	assert.True(t, adj[pv].Test(pu))
}
