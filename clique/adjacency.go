package clique

import "sort"

// buildAdjacency computes the permuted order/invorder vertex numbering and
// the adjacency bitset rows for a graph of n vertices (spec.md §4.1,
// §4.3). order[i] is the external id placed at permuted index i;
// invorder is its inverse.
//
// Unless inputOrder is set, vertices are sorted by descending degree,
// ties broken by ascending external id — see DESIGN.md's "Open Question
// resolution" for why this, and not spec.md §3's prose description, is
// the tie-break actually implemented (it mirrors the literal comparator
// in the original source).
func buildAdjacency(g InputGraph, inputOrder bool) (adj []Bitset, order, invorder []int) {
	n := g.Size()

	order = make([]int, n)
	for i := range order {
		order[i] = i
	}

	if !inputOrder {
		degrees := make([]int, n)
		g.VisitEdges(func(u, v int) {
			degrees[u]++
			degrees[v]++
		})

		sort.Slice(order, func(i, j int) bool {
			a, b := order[i], order[j]

			return degrees[a] > degrees[b] || (degrees[a] == degrees[b] && a < b)
		})
	}

	invorder = make([]int, n)
	for i, v := range order {
		invorder[v] = i
	}

	adj = make([]Bitset, n)
	for i := range adj {
		adj[i] = NewBitset(n)
	}

	g.VisitEdges(func(u, v int) {
		pu, pv := invorder[u], invorder[v]
		adj[pu].Set(pv)
		adj[pv].Set(pu)
	})

	return adj, order, invorder
}
