package telemetry

import "github.com/prometheus/client_golang/prometheus"

// Recorder is the telemetry surface clique.CliqueParams consumes
// (mirrors clique.Metrics structurally, so any Recorder satisfies it
// without this package importing clique).
type Recorder interface {
	IncrementNodes()
	IncrementRestart()
	ObserveIncumbent(size int)
}

// Noop records nothing. Equivalent to not configuring
// clique.WithMetrics at all; exported so callers can select a recorder
// dynamically.
type Noop struct{}

func (Noop) IncrementNodes()           {}
func (Noop) IncrementRestart()         {}
func (Noop) ObserveIncumbent(int)      {}

// PrometheusRecorder reports search progress through three standard
// Prometheus collectors: a node counter, a restart counter, and an
// incumbent-size histogram.
type PrometheusRecorder struct {
	nodes      prometheus.Counter
	restarts   prometheus.Counter
	incumbents prometheus.Histogram
}

// NewPrometheusRecorder registers its collectors with reg and returns a
// Recorder ready to pass to clique.WithMetrics. reg must not be nil.
func NewPrometheusRecorder(reg *prometheus.Registry) *PrometheusRecorder {
	r := &PrometheusRecorder{
		nodes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "maxclique",
			Name:      "search_nodes_total",
			Help:      "Total number of branch-and-bound nodes expanded.",
		}),
		restarts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "maxclique",
			Name:      "search_restarts_total",
			Help:      "Total number of restarts triggered by the restart schedule.",
		}),
		incumbents: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "maxclique",
			Name:      "incumbent_size",
			Help:      "Distribution of incumbent clique sizes found during search.",
			Buckets:   prometheus.LinearBuckets(1, 4, 16),
		}),
	}

	reg.MustRegister(r.nodes, r.restarts, r.incumbents)

	return r
}

func (r *PrometheusRecorder) IncrementNodes() { r.nodes.Inc() }

func (r *PrometheusRecorder) IncrementRestart() { r.restarts.Inc() }

func (r *PrometheusRecorder) ObserveIncumbent(size int) { r.incumbents.Observe(float64(size)) }
