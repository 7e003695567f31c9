// Package clique implements branch-and-bound maximum-clique search.
//
// Solve takes an InputGraph and a CliqueParams (built with
// NewCliqueParams and the With* options) and returns the largest clique
// found, or the first clique meeting a requested size when
// WithDecide is used. Colouring-based upper bounds drive the search;
// restarts with learned nogoods, cooperative timeouts, proof-event
// logging, and Prometheus-style metrics are all optional collaborators
// supplied through CliqueParams.
package clique
