package clique

import "errors"

// Sentinel errors returned by Solve and its collaborators.
var (
	// ErrNilGraph indicates a nil InputGraph was passed to Solve.
	ErrNilGraph = errors.New("clique: graph is nil")

	// ErrNegativeSize indicates InputGraph.Size() returned a negative value.
	ErrNegativeSize = errors.New("clique: graph size is negative")

	// ErrSelfLoop indicates InputGraph.VisitEdges reported an edge from a
	// vertex to itself, violating the simple-graph invariant (spec.md §3).
	ErrSelfLoop = errors.New("clique: self-loop detected")

	// ErrVertexOutOfRange indicates a vertex id outside [0, n) was
	// referenced, either by an edge from VisitEdges or by WithInitialBest.
	ErrVertexOutOfRange = errors.New("clique: vertex id out of range")

	// ErrEmptyDecideTarget indicates WithDecide was called with n <= 0;
	// a clique has at least one vertex, so no decision target below that
	// is satisfiable.
	ErrEmptyDecideTarget = errors.New("clique: decide target must be positive")
)
