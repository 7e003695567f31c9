package proof

import (
	"io"
	"sync"

	"github.com/katalvlaran/maxclique/clique"
	"gopkg.in/yaml.v3"
)

// Noop discards every proof event. It is equivalent to not configuring
// clique.WithProof at all; exported so callers can select a sink value
// dynamically.
type Noop struct{}

func (Noop) CreateBinaryVariable(int, func(int) string) {}
func (Noop) CreateObjective(int, *int)                  {}
func (Noop) CreateNonEdgeConstraint(int, int)           {}
func (Noop) FinaliseModel()                             {}
func (Noop) Expanding(int, []int, []int)                {}
func (Noop) Unexpanding(int, []int)                     {}
func (Noop) ColourBound([][]int)                        {}
func (Noop) StartLevel(int)                             {}
func (Noop) ForgetLevel(int)                            {}
func (Noop) BacktrackFromBinaryVariables([]int)         {}
func (Noop) NewIncumbent([]clique.VertexAssignment)     {}
func (Noop) PostSolution([]int)                         {}
func (Noop) FinishUnsatProof()                          {}

// event is a single proof record; fields beyond "event" vary by kind.
type event map[string]interface{}

// YAML accumulates every proof event emitted during a search and
// renders them as one YAML sequence on Flush. Safe for concurrent use,
// though a single clique search never calls it from more than one
// goroutine.
type YAML struct {
	mu     sync.Mutex
	w      io.Writer
	events []event
}

// NewYAML returns a YAML sink that writes its accumulated events to w
// once Flush is called.
func NewYAML(w io.Writer) *YAML {
	return &YAML{w: w}
}

func (y *YAML) emit(kind string, fields event) {
	y.mu.Lock()
	defer y.mu.Unlock()

	e := event{"event": kind}
	for k, v := range fields {
		e[k] = v
	}
	y.events = append(y.events, e)
}

// Flush renders every accumulated event as a single YAML document and
// writes it to the configured io.Writer.
func (y *YAML) Flush() error {
	y.mu.Lock()
	defer y.mu.Unlock()

	enc := yaml.NewEncoder(y.w)
	defer enc.Close()

	return enc.Encode(y.events)
}

func (y *YAML) CreateBinaryVariable(v int, name func(int) string) {
	y.emit("create_binary_variable", event{"vertex": v, "name": name(v)})
}

func (y *YAML) CreateObjective(size int, decide *int) {
	fields := event{"size": size}
	if decide != nil {
		fields["decide"] = *decide
	}
	y.emit("create_objective", fields)
}

func (y *YAML) CreateNonEdgeConstraint(u, v int) {
	y.emit("create_non_edge_constraint", event{"u": u, "v": v})
}

func (y *YAML) FinaliseModel() {
	y.emit("finalise_model", nil)
}

func (y *YAML) Expanding(depth int, c, p []int) {
	y.emit("expanding", event{"depth": depth, "c": c, "p": p})
}

func (y *YAML) Unexpanding(depth int, c []int) {
	y.emit("unexpanding", event{"depth": depth, "c": c})
}

func (y *YAML) ColourBound(classes [][]int) {
	y.emit("colour_bound", event{"classes": classes})
}

func (y *YAML) StartLevel(depth int) {
	y.emit("start_level", event{"depth": depth})
}

func (y *YAML) ForgetLevel(depth int) {
	y.emit("forget_level", event{"depth": depth})
}

func (y *YAML) BacktrackFromBinaryVariables(c []int) {
	y.emit("backtrack_from_binary_variables", event{"c": c})
}

func (y *YAML) NewIncumbent(assignment []clique.VertexAssignment) {
	y.emit("new_incumbent", event{"assignment": assignment})
}

func (y *YAML) PostSolution(c []int) {
	y.emit("post_solution", event{"c": c})
}

func (y *YAML) FinishUnsatProof() {
	y.emit("finish_unsat_proof", nil)
}
