package clique

// expand is the recursive branch-and-bound search step (spec.md §4.4),
// ported directly from the original source's expand(): colour the
// candidate set p for an upper bound, then walk candidates from the
// weakest colour to the strongest, taking each in turn before excluding
// it and moving to the next.
//
// spacepos indexes into r.space for this frame's p_order/p_bounds — each
// frame consumes 2*size ints and depth never exceeds size, matching the
// size*(size+1)*2 allocation in newRunner. The SingletonsFirst defer
// buffer is not taken from r.space; it is allocated afresh on each call.
func (r *runner) expand(depth int, nodes, findNodes, proveNodes *uint64, c *[]int, p *Bitset, spacepos int) searchResult {
	*nodes++
	*proveNodes++

	r.params.proof.Expanding(depth, r.unpermute(*c), r.unpermuteBitset(p))
	r.params.metrics.IncrementNodes()

	pOrder := r.space[spacepos : spacepos+r.size]
	pBounds := r.space[spacepos+r.size : spacepos+2*r.size]

	var pEnd int
	switch r.params.order {
	case ColourOrder:
		pEnd = r.colourOrder(p, pOrder, pBounds)
	case SingletonsFirst:
		defer_ := make([]int, r.size)
		pEnd = r.colourSingletonsFirst(p, pOrder, pBounds, defer_)
	case Sorted:
		pEnd = r.colourSorted(p, pOrder, pBounds)
	}

	for n := pEnd - 1; n >= 0; n-- {
		if r.params.timeout.ShouldAbort() {
			return resultAborted
		}

		if len(*c)+pBounds[n] <= r.incumbent.value {
			r.reportColourBound(pOrder, pBounds, n)
			break
		}

		// every candidate up to n has its own distinct colour: they form
		// a clique together with c.
		if pBounds[n] == n+1 {
			cSave := append([]int(nil), (*c)...)
			for ; n >= 0; n-- {
				*c = append(*c, pOrder[n])
			}
			r.incumbent.update(*c, findNodes, proveNodes)

			if r.params.decide == nil {
				r.params.proof.StartLevel(0)
				r.params.proof.NewIncumbent(r.unpermuteAndFinish(*c))
				r.params.proof.StartLevel(depth + 1)
			}

			if r.params.decide != nil && r.incumbent.value >= *r.params.decide {
				r.params.proof.PostSolution(r.unpermute(*c))

				return resultDecidedTrue
			}

			*c = cSave

			break
		}

		v := pOrder[n]
		*c = append(*c, v)

		if r.params.decide != nil {
			r.incumbent.update(*c, findNodes, proveNodes)
			if r.incumbent.value >= *r.params.decide {
				r.params.proof.PostSolution(r.unpermute(*c))

				return resultDecidedTrue
			}
		}

		newP := p.Clone()
		newP.Intersect(&r.adj[v])

		if r.watches != nil {
			cHas := func(lit int) bool {
				for _, x := range *c {
					if x == lit {
						return true
					}
				}

				return false
			}
			r.watches.propagate(v, cHas, func(lit int) { newP.Reset(lit) })
		}

		r.params.proof.StartLevel(depth + 1)

		if newP.Any() {
			switch r.expand(depth+1, nodes, findNodes, proveNodes, c, &newP, spacepos+2*r.size) {
			case resultAborted:
				return resultAborted
			case resultDecidedTrue:
				return resultDecidedTrue
			case resultRestart:
				(*c) = (*c)[:len(*c)-1]

				for m := pEnd - 1; m > n; m-- {
					*c = append(*c, pOrder[m])
					r.postNogood(*c)
					*c = (*c)[:len(*c)-1]
				}

				return resultRestart
			case resultComplete:
				// fall through to the "not taking v" branch below
			}
		} else {
			r.incumbent.update(*c, findNodes, proveNodes)
			if r.params.decide == nil {
				r.params.proof.StartLevel(0)
				r.params.proof.NewIncumbent(r.unpermuteAndFinish(*c))
				r.params.proof.StartLevel(depth + 1)
			}
		}

		r.params.proof.StartLevel(depth)
		r.params.proof.BacktrackFromBinaryVariables(r.unpermute(*c))
		r.params.proof.ForgetLevel(depth + 1)

		*c = (*c)[:len(*c)-1]
		p.Reset(v)
	}

	r.params.proof.Unexpanding(depth, r.unpermute(*c))

	r.params.restarts.DidABacktrack()
	if r.params.restarts.ShouldRestart() {
		r.postNogood(*c)

		return resultRestart
	}

	return resultComplete
}

// reportColourBound replays the colour classes up to and including
// index n as external-vertex groups, for Proof.ColourBound.
func (r *runner) reportColourBound(pOrder, pBounds []int, n int) {
	var classes [][]int
	for v := 0; v <= n; v++ {
		if v == 0 || pBounds[v-1] != pBounds[v] {
			classes = append(classes, nil)
		}
		last := len(classes) - 1
		classes[last] = append(classes[last], r.order[pOrder[v]])
	}
	r.params.proof.ColourBound(classes)
}
