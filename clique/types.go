package clique

import "github.com/google/uuid"

// ColourClassOrder selects among the three greedy-colouring tie-break
// policies described in spec.md §4.2. The engine dispatches on this tag
// with a plain switch at the top of each expand() call, not through an
// interface method — spec.md §9's "Dispatch over colouring variant" note.
type ColourClassOrder uint8

const (
	// ColourOrder emits vertices in the order they are coloured; p_bounds
	// is weakly increasing in colour index.
	ColourOrder ColourClassOrder = iota

	// SingletonsFirst defers singleton colour classes to the tail,
	// re-emitted as fresh colours (original source: colour_class_order_2df).
	SingletonsFirst

	// Sorted emits colour classes in descending size order, tie-broken by
	// ascending original colour index.
	Sorted
)

// String renders the colour-class-order tag for logging.
func (c ColourClassOrder) String() string {
	switch c {
	case ColourOrder:
		return "ColourOrder"
	case SingletonsFirst:
		return "SingletonsFirst"
	case Sorted:
		return "Sorted"
	default:
		return "unknown"
	}
}

// searchResult is the outcome of one expand() call (spec.md §4.4).
type searchResult uint8

const (
	resultComplete searchResult = iota
	resultRestart
	resultAborted
	resultDecidedTrue
)

// incumbent tracks the best clique found so far (spec.md §3). value and c
// are monotonic non-decreasing across a run; proveNodes accumulates since
// the last improvement and rolls into findNodes whenever value grows.
type incumbent struct {
	value int
	c     []int
}

// update replaces the incumbent if newC is strictly larger, rolling
// proveNodes into findNodes on every improvement.
func (inc *incumbent) update(newC []int, findNodes, proveNodes *uint64) {
	if len(newC) <= inc.value {
		return
	}
	*findNodes += *proveNodes
	*proveNodes = 0
	inc.value = len(newC)
	inc.c = append(inc.c[:0:0], newC...)
}

// CliqueResult is returned by Solve (spec.md §6).
type CliqueResult struct {
	// Clique holds the external vertex ids of the reported clique.
	Clique []int

	// Decided reports whether the search stopped early because a clique
	// of the requested CliqueParams.Decide size was found. Always false
	// when Decide was not set.
	Decided bool

	// Nodes is the total number of expand() calls across the whole run.
	Nodes uint64

	// FindNodes is the node count "spent" finding the reported incumbent
	// (i.e. excluding the tail spent proving optimality after the last
	// improvement).
	FindNodes uint64

	// ProveNodes is the node count spent since the last incumbent
	// improvement, proving no larger clique exists.
	ProveNodes uint64

	// ExtraStats carries auxiliary "key = value" strings; currently just
	// "restarts = N" when restarts were enabled.
	ExtraStats []string

	// RunID correlates this result with its structured log/proof trace.
	RunID uuid.UUID
}
