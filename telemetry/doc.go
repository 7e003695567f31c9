// Package telemetry supplies Metrics implementations for
// github.com/katalvlaran/maxclique/clique: Noop, which records nothing,
// and a Prometheus-backed Recorder exposing node counts, restart
// counts, and incumbent-size observations as standard Prometheus
// collectors.
package telemetry
