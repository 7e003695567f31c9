package clique

import "github.com/sirupsen/logrus"

// CliqueParams configures a Solve call (spec.md §6). The zero value is not
// usable directly; build one with NewCliqueParams and functional Options.
type CliqueParams struct {
	order       ColourClassOrder
	decide      *int
	restarts    RestartsSchedule
	timeout     Timeout
	proof       Proof
	metrics     Metrics
	logger      *logrus.Logger
	initialBest []int
	inputOrder  bool
}

// Option mutates a CliqueParams. Follows the functional-options idiom
// used throughout the teacher corpus's builder types.
type Option func(*CliqueParams)

// NewCliqueParams builds a CliqueParams with safe no-op defaults: plain
// ColourOrder colouring, no decision-size early exit, restarts disabled,
// no timeout, no proof logging, no metrics, and a silent logger.
func NewCliqueParams(opts ...Option) CliqueParams {
	p := CliqueParams{
		order:    ColourOrder,
		restarts: noRestarts{},
		timeout:  noTimeout{},
		proof:    noProof{},
		metrics:  noMetrics{},
		logger:   silentLogger(),
	}
	for _, opt := range opts {
		opt(&p)
	}

	return p
}

// WithColourOrder selects a greedy-colouring tie-break policy.
func WithColourOrder(order ColourClassOrder) Option {
	return func(p *CliqueParams) { p.order = order }
}

// WithDecide enables early exit as soon as a clique of size n is found;
// Solve then reports CliqueResult.Decided true and stops searching for
// anything larger.
func WithDecide(n int) Option {
	return func(p *CliqueParams) { p.decide = &n }
}

// WithRestarts installs a restart schedule (e.g. restart.Luby). Omit for
// a plain, restart-free branch-and-bound search.
func WithRestarts(r RestartsSchedule) Option {
	return func(p *CliqueParams) { p.restarts = r }
}

// WithTimeout installs a cooperative abort check (e.g. timeout.Deadline).
func WithTimeout(t Timeout) Option {
	return func(p *CliqueParams) { p.timeout = t }
}

// WithProof installs a proof-event sink (e.g. proof.YAML).
func WithProof(pr Proof) Option {
	return func(p *CliqueParams) { p.proof = pr }
}

// WithMetrics installs a telemetry recorder (e.g. telemetry.NewPrometheusRecorder).
func WithMetrics(m Metrics) Option {
	return func(p *CliqueParams) { p.metrics = m }
}

// WithLogger overrides the package default silent logger.
func WithLogger(l *logrus.Logger) Option {
	return func(p *CliqueParams) { p.logger = l }
}

// WithInputOrder disables the degree-based vertex reordering, searching
// in the vertex order the InputGraph presents. Mostly useful for tests
// that want a predictable permutation.
func WithInputOrder() Option {
	return func(p *CliqueParams) { p.inputOrder = true }
}

// WithInitialBest seeds the search with a known clique (external vertex
// ids), letting Solve skip any branch that cannot beat it.
func WithInitialBest(clique []int) Option {
	return func(p *CliqueParams) {
		p.initialBest = append(p.initialBest[:0:0], clique...)
	}
}

func silentLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)

	return l
}

// noRestarts is the RestartsSchedule used when restarts are disabled.
type noRestarts struct{}

func (noRestarts) MightRestart() bool { return false }
func (noRestarts) ShouldRestart() bool { return false }
func (noRestarts) DidABacktrack()      {}
func (noRestarts) DidARestart()        {}

// noTimeout is the Timeout used when no deadline is configured.
type noTimeout struct{}

func (noTimeout) ShouldAbort() bool { return false }

// noProof is the Proof used when proof logging is disabled.
type noProof struct{}

func (noProof) CreateBinaryVariable(int, func(int) string)    {}
func (noProof) CreateObjective(int, *int)                     {}
func (noProof) CreateNonEdgeConstraint(int, int)              {}
func (noProof) FinaliseModel()                                {}
func (noProof) Expanding(int, []int, []int)                   {}
func (noProof) Unexpanding(int, []int)                        {}
func (noProof) ColourBound([][]int)                           {}
func (noProof) StartLevel(int)                                {}
func (noProof) ForgetLevel(int)                                {}
func (noProof) BacktrackFromBinaryVariables([]int)            {}
func (noProof) NewIncumbent([]VertexAssignment)               {}
func (noProof) PostSolution([]int)                             {}
func (noProof) FinishUnsatProof()                              {}

// noMetrics is the Metrics used when telemetry is disabled.
type noMetrics struct{}

func (noMetrics) IncrementNodes()        {}
func (noMetrics) IncrementRestart()      {}
func (noMetrics) ObserveIncumbent(int)   {}
