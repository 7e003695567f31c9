package graph

import "sort"

// Indexed is a read-only snapshot of a Graph with a dense, deterministic
// 0..n-1 vertex numbering. It structurally satisfies
// github.com/katalvlaran/maxclique/clique's InputGraph interface (Size,
// VisitEdges, Adjacent, VertexName, VertexID) without importing the
// clique package, keeping graph free of a dependency on its consumer.
type Indexed struct {
	names     []string       // index -> external ID
	ids       map[string]int // external ID -> index
	adjacency []map[int]struct{}
}

// NewIndexed snapshots g, assigning indices 0..n-1 to its vertices sorted
// ascending by ID. The sort makes the numbering reproducible across runs
// for the same vertex set, independent of map iteration order.
func NewIndexed(g *Graph) *Indexed {
	g.mu.RLock()
	defer g.mu.RUnlock()

	names := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		names = append(names, id)
	}
	sort.Strings(names)

	ids := make(map[string]int, len(names))
	for i, name := range names {
		ids[name] = i
	}

	adjacency := make([]map[int]struct{}, len(names))
	for i, name := range names {
		nbrs := g.adjacency[name]
		m := make(map[int]struct{}, len(nbrs))
		for nbr := range nbrs {
			m[ids[nbr]] = struct{}{}
		}
		adjacency[i] = m
	}

	return &Indexed{names: names, ids: ids, adjacency: adjacency}
}

// Size returns the number of vertices.
func (ix *Indexed) Size() int { return len(ix.names) }

// VisitEdges calls visit once per undirected edge, with u < v.
func (ix *Indexed) VisitEdges(visit func(u, v int)) {
	for u, nbrs := range ix.adjacency {
		for v := range nbrs {
			if u < v {
				visit(u, v)
			}
		}
	}
}

// Adjacent reports whether u and v are adjacent.
func (ix *Indexed) Adjacent(u, v int) bool {
	_, ok := ix.adjacency[u][v]

	return ok
}

// VertexName returns the external ID of dense index i.
func (ix *Indexed) VertexName(i int) string { return ix.names[i] }

// VertexID returns the dense index of external ID name, if present.
func (ix *Indexed) VertexID(name string) (int, bool) {
	i, ok := ix.ids[name]

	return i, ok
}
