package telemetry_test

import (
	"testing"

	"github.com/katalvlaran/maxclique/telemetry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestNoopDoesNotPanic(t *testing.T) {
	n := telemetry.Noop{}
	n.IncrementNodes()
	n.IncrementRestart()
	n.ObserveIncumbent(5)
}

func TestPrometheusRecorderIncrementsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := telemetry.NewPrometheusRecorder(reg)

	r.IncrementNodes()
	r.IncrementNodes()
	r.IncrementRestart()
	r.ObserveIncumbent(7)

	families, err := reg.Gather()
	require.NoError(t, err)

	var nodesValue float64
	var restartsValue float64
	for _, fam := range families {
		switch fam.GetName() {
		case "maxclique_search_nodes_total":
			nodesValue = fam.GetMetric()[0].GetCounter().GetValue()
		case "maxclique_search_restarts_total":
			restartsValue = fam.GetMetric()[0].GetCounter().GetValue()
		}
	}

	require.Equal(t, float64(2), nodesValue)
	require.Equal(t, float64(1), restartsValue)
}
