// Package graph provides a small, thread-safe builder for simple
// undirected graphs — the one input shape the maxclique engine accepts
// (see github.com/katalvlaran/maxclique/clique's InputGraph contract).
//
// Graph deliberately does not support direction, edge weights, or
// multi-edges: clique search operates on the adjacency relation alone, so
// none of those concepts have a meaning here. Use Indexed to obtain a
// dense 0..n-1 vertex numbering suitable for handing to clique.Solve.
package graph
