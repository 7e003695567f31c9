package graph

import "errors"

// Sentinel errors returned by Graph mutators.
var (
	// ErrEmptyVertexID indicates an empty vertex ID was supplied.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrSelfLoop indicates an edge was added from a vertex to itself.
	// Clique search forbids self-loops (spec invariant: adj[i] has bit i clear).
	ErrSelfLoop = errors.New("graph: self-loops are not allowed")
)
