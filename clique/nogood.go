package clique

import "github.com/go-air/gini/z"

// nogood records a set of permuted vertex-inclusion decisions that must
// never all hold again in the same branch (spec.md §4.5): if every
// vertex it names ends up in c simultaneously, the search has repeated
// work a previous restart already ruled out.
//
// Vertices are encoded as github.com/go-air/gini z.Lit values purely for
// the Var/Lit typing that package gives a bare int; polarity is always
// positive, since a nogood only ever forbids vertices from being jointly
// included, never forbids their exclusion.
type nogood struct {
	lits       []z.Lit
	watchA     int // permuted vertex id of the first watched literal
	watchB     int // permuted vertex id of the second watched literal (== watchA for unit nogoods)
}

func vertexLit(v int) z.Lit { return z.Dimacs2Lit(v + 1) }

func litVertex(l z.Lit) int { return int(l.Var()) - 1 }

// watchTable is the restart-learning store: a two-watched-literal index
// over posted nogoods (spec.md §4.5, §6). Only consulted when the
// configured RestartsSchedule reports MightRestart(); otherwise the
// runner never constructs one.
type watchTable struct {
	nogoods []nogood
	byVertex map[int][]int // permuted vertex id -> indices into nogoods currently watching it
	pending  []nogood
}

func newWatchTable() *watchTable {
	return &watchTable{byVertex: make(map[int][]int)}
}

// postNogood queues c (the permuted vertex ids currently in the partial
// clique) as a newly learned nogood. It is not installed — and does not
// start propagating — until the next applyNewNogoods call, matching the
// original's "apply at restart boundary" discipline. An empty c is a
// valid nogood: it means the root candidate set itself is exhausted, and
// is queued so applyNewNogoods can signal the search is done.
func (w *watchTable) postNogood(c []int) {
	lits := make([]z.Lit, len(c))
	for i, v := range c {
		lits[i] = vertexLit(v)
	}
	w.pending = append(w.pending, nogood{lits: lits})
}

// applyNewNogoods installs every pending nogood, watching its first one
// or two literals, and excludes the vertex named by any unit nogood from
// the root candidate set via exclude. It reports done == true if any
// pending nogood was empty: the empty clause means no candidate vertex
// can ever be added again, so the whole search is already complete and
// the caller must stop restarting.
func (w *watchTable) applyNewNogoods(exclude func(v int)) (done bool) {
	for _, ng := range w.pending {
		if len(ng.lits) == 0 {
			done = true
			continue
		}

		idx := len(w.nogoods)
		v0 := litVertex(ng.lits[0])
		ng.watchA = v0
		ng.watchB = v0

		if len(ng.lits) == 1 {
			exclude(v0)
		} else {
			v1 := litVertex(ng.lits[1])
			ng.watchB = v1
			w.byVertex[v1] = append(w.byVertex[v1], idx)
		}
		w.byVertex[v0] = append(w.byVertex[v0], idx)

		w.nogoods = append(w.nogoods, ng)
	}

	return done
}

// clearNewNogoods drops the pending queue after applyNewNogoods has
// installed it (spec.md §4.5's per-restart bookkeeping).
func (w *watchTable) clearNewNogoods() {
	w.pending = w.pending[:0]
}

// propagate is called immediately after vertex v is added to c. inC
// reports whether a given permuted vertex id already belongs to c;
// exclude removes a permuted vertex id from the live candidate set
// because some nogood just forced it false — every remaining literal
// but one is already in c, so including that last vertex would complete
// a forbidden set.
func (w *watchTable) propagate(v int, inC func(vertex int) bool, exclude func(vertex int)) {
	entries := w.byVertex[v]
	if len(entries) == 0 {
		return
	}

	kept := entries[:0]
	for _, idx := range entries {
		ng := &w.nogoods[idx]
		var other int
		if v == ng.watchA {
			other = ng.watchB
		} else {
			other = ng.watchA
		}

		replacement := -1
		for _, lit := range ng.lits {
			cand := litVertex(lit)
			if cand == v || cand == other || inC(cand) {
				continue
			}
			replacement = cand
			break
		}

		if replacement >= 0 {
			if ng.watchA == v {
				ng.watchA = replacement
			} else {
				ng.watchB = replacement
			}
			w.byVertex[replacement] = append(w.byVertex[replacement], idx)
			continue
		}

		kept = append(kept, idx)
		if !inC(other) {
			exclude(other)
		}
	}
	w.byVertex[v] = kept
}
