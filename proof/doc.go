// Package proof supplies Proof implementations for
// github.com/katalvlaran/maxclique/clique: Noop, which discards every
// event, and YAML, which renders the exact sequence of model-setup and
// per-node events the search emits as a YAML document — useful for
// auditing a run or feeding an external proof checker.
package proof
