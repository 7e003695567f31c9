package clique

// InputGraph is the read-only graph collaborator the core consumes
// (spec.md §6). github.com/katalvlaran/maxclique/graph's Indexed type
// satisfies this interface structurally; callers may also supply their
// own adapter over any in-memory or generated graph.
type InputGraph interface {
	// Size returns the number of vertices, n. Vertex ids are 0..n-1.
	Size() int

	// VisitEdges calls visit once for every undirected edge. Each edge
	// may be reported with either endpoint first or both — the core
	// treats both endpoints symmetrically when building adjacency.
	VisitEdges(visit func(u, v int))

	// Adjacent reports whether u and v share an edge. u must not equal v.
	Adjacent(u, v int) bool

	// VertexName and VertexID translate between external names and
	// dense ids; used only by the Proof collaborator.
	VertexName(id int) string
	VertexID(name string) (id int, ok bool)
}

// Timeout lets the expander cooperatively abort a long search
// (spec.md §5, §6). Implementations are expected to make ShouldAbort
// cheap to call from the top of every expander loop iteration.
type Timeout interface {
	ShouldAbort() bool
}

// RestartsSchedule decides when the expander should abandon its current
// descent and restart from the root, retaining learned nogoods
// (spec.md §4.5, §6).
type RestartsSchedule interface {
	// MightRestart is a static property: when false, the nogood/watch
	// infrastructure is never built or consulted.
	MightRestart() bool

	ShouldRestart() bool
	DidABacktrack()
	DidARestart()
}

// Proof is the optional proof-logging sink (spec.md §6, §9). All methods
// are called in the exact sequence the expander/runner dictate; an
// implementation that does not need proofs should embed proof.Noop.
type Proof interface {
	// One-time model construction, called once before search begins.
	CreateBinaryVariable(v int, name func(int) string)
	CreateObjective(size int, decide *int)
	CreateNonEdgeConstraint(u, v int)
	FinaliseModel()

	// Per-node events, called during search.
	Expanding(depth int, c, p []int)
	Unexpanding(depth int, c []int)
	ColourBound(colourClasses [][]int)
	StartLevel(depth int)
	ForgetLevel(depth int)
	BacktrackFromBinaryVariables(c []int)
	NewIncumbent(assignment []VertexAssignment)
	PostSolution(c []int)
	FinishUnsatProof()
}

// VertexAssignment records, for NewIncumbent, whether external vertex id
// ID was included (true) or excluded (false) from the reported incumbent.
type VertexAssignment struct {
	ID       int
	Included bool
}

// Metrics is the optional telemetry collaborator. NewCliqueParams
// installs a no-op recorder; github.com/katalvlaran/maxclique/telemetry
// provides a Prometheus-backed implementation.
type Metrics interface {
	IncrementNodes()
	IncrementRestart()
	ObserveIncumbent(size int)
}
