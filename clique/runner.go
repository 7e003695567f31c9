package clique

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// runner owns the permuted adjacency, scratch buffers, and optional
// watch table for a single Solve call (spec.md §6). It mirrors the
// original source's CliqueRunner: one instance per call, never reused
// across graphs.
type runner struct {
	params CliqueParams

	size     int
	adj      []Bitset
	order    []int
	invorder []int

	incumbent incumbent

	watches *watchTable

	// space is the scratch buffer every expand() frame carves its
	// pOrder/pBounds slices from: each recursion level consumes 2*size
	// ints and depth never exceeds size, so size*(size+1)*2 (matching
	// the original source's allocation) is always enough headroom. The
	// SingletonsFirst defer buffer is allocated separately per call.
	space []int
}

func newRunner(g InputGraph, params CliqueParams) *runner {
	size := g.Size()
	adj, order, invorder := buildAdjacency(g, params.inputOrder)

	r := &runner{
		params:   params,
		size:     size,
		adj:      adj,
		order:    order,
		invorder: invorder,
		space:    make([]int, size*(size+1)*2),
	}

	if params.restarts.MightRestart() {
		r.watches = newWatchTable()
	}

	if params.decide != nil {
		r.incumbent.value = *params.decide - 1
	}

	if len(params.initialBest) > 0 {
		permuted := make([]int, len(params.initialBest))
		for i, ext := range params.initialBest {
			permuted[i] = invorder[ext]
		}
		if len(permuted) > r.incumbent.value {
			r.incumbent.value = len(permuted)
			r.incumbent.c = permuted
		}
	}

	return r
}

// unpermute translates permuted vertex ids back to external ids.
func (r *runner) unpermute(v []int) []int {
	out := make([]int, len(v))
	for i, w := range v {
		out[i] = r.order[w]
	}

	return out
}

func (r *runner) unpermuteBitset(p *Bitset) []int {
	var out []int
	w := p.Clone()
	for w.Any() {
		i := w.FindFirst()
		w.Reset(i)
		out = append(out, r.order[i])
	}

	return out
}

// unpermuteAndFinish returns every vertex with its inclusion status,
// for Proof.NewIncumbent (spec.md §6).
func (r *runner) unpermuteAndFinish(c []int) []VertexAssignment {
	included := make(map[int]bool, len(c))
	result := make([]VertexAssignment, 0, r.size)
	for _, w := range c {
		included[r.order[w]] = true
		result = append(result, VertexAssignment{ID: r.order[w], Included: true})
	}
	for w := 0; w < r.size; w++ {
		if !included[w] {
			result = append(result, VertexAssignment{ID: w, Included: false})
		}
	}

	return result
}

func (r *runner) postNogood(c []int) {
	if r.watches == nil {
		return
	}
	r.watches.postNogood(c)
}

// run drives the restart loop (spec.md §4.5, §6): repeatedly expand from
// the root, posting and installing learned nogoods between attempts,
// until a full search completes, a decision target is met, or the
// timeout fires.
func (r *runner) run() CliqueResult {
	var result CliqueResult
	result.RunID = uuid.New()

	done := false
	numberOfRestarts := 0

	p := NewBitset(r.size)
	for i := 0; i < r.size; i++ {
		p.Set(i)
	}

	var nodes, findNodes, proveNodes uint64

	for !done {
		numberOfRestarts++

		if r.watches != nil {
			nogoodsDone := r.watches.applyNewNogoods(func(v int) { p.Reset(v) })
			r.watches.clearNewNogoods()
			if nogoodsDone {
				done = true
				break
			}
		}

		newP := p.Clone()
		var c []int

		res := r.expand(0, &nodes, &findNodes, &proveNodes, &c, &newP, 0)

		switch res {
		case resultComplete, resultAborted:
			done = true
		case resultDecidedTrue:
			done = true
			result.Decided = true
		case resultRestart:
			r.params.metrics.IncrementRestart()
			r.params.logger.WithFields(logrus.Fields{
				"run_id":  result.RunID,
				"attempt": numberOfRestarts,
			}).Debug("clique: restarting search with learned nogoods")
		}

		r.params.restarts.DidARestart()
	}

	result.Nodes = nodes
	result.FindNodes = findNodes
	result.ProveNodes = proveNodes

	if r.params.restarts.MightRestart() {
		result.ExtraStats = append(result.ExtraStats, restartsStat(numberOfRestarts))
	}

	if r.params.decide == nil || len(r.incumbent.c) == 0 {
		r.params.proof.FinishUnsatProof()
	}

	result.Clique = r.unpermute(r.incumbent.c)
	r.params.metrics.ObserveIncumbent(len(result.Clique))

	r.params.logger.WithFields(logrus.Fields{
		"run_id":    result.RunID,
		"size":      len(result.Clique),
		"nodes":     result.Nodes,
		"restarts":  numberOfRestarts,
		"decided":   result.Decided,
	}).Debug("clique: search finished")

	return result
}

func restartsStat(n int) string {
	return "restarts = " + strconv.Itoa(n)
}

// Solve runs branch-and-bound maximum-clique search over g according to
// params (spec.md §6). It is the package's sole exported entrypoint.
func Solve(g InputGraph, params CliqueParams) (CliqueResult, error) {
	if g == nil {
		return CliqueResult{}, ErrNilGraph
	}
	if g.Size() < 0 {
		return CliqueResult{}, ErrNegativeSize
	}
	if params.decide != nil && *params.decide <= 0 {
		return CliqueResult{}, ErrEmptyDecideTarget
	}
	var edgeErr error
	g.VisitEdges(func(u, v int) {
		if edgeErr != nil {
			return
		}
		if u < 0 || u >= g.Size() || v < 0 || v >= g.Size() {
			edgeErr = ErrVertexOutOfRange
		} else if u == v {
			edgeErr = ErrSelfLoop
		}
	})
	if edgeErr != nil {
		return CliqueResult{}, edgeErr
	}
	for _, ext := range params.initialBest {
		if ext < 0 || ext >= g.Size() {
			return CliqueResult{}, ErrVertexOutOfRange
		}
	}

	if _, noop := params.proof.(noProof); !noop {
		for q := 0; q < g.Size(); q++ {
			params.proof.CreateBinaryVariable(q, g.VertexName)
		}
		params.proof.CreateObjective(g.Size(), params.decide)
		for p := 0; p < g.Size(); p++ {
			for q := 0; q < p; q++ {
				if !g.Adjacent(p, q) {
					params.proof.CreateNonEdgeConstraint(p, q)
				}
			}
		}
		params.proof.FinaliseModel()
	}

	r := newRunner(g, params)

	return r.run(), nil
}
