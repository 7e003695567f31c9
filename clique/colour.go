package clique

import "sort"

// colourOrder performs greedy graph colouring over the candidate set p,
// emitting vertices in the order they're coloured. pBounds[i] is the
// colour (1-based) assigned to pOrder[i]; it is weakly increasing, so
// c.size() + pBounds[i] is a valid upper bound on any clique extending
// through pOrder[i] (spec.md §4.2).
func (r *runner) colourOrder(p *Bitset, pOrder, pBounds []int) (pEnd int) {
	pLeft := p.Clone()
	colour := 0

	for pLeft.Any() {
		colour++
		q := pLeft.Clone()

		for q.Any() {
			v := q.FindFirst()
			pLeft.Reset(v)
			q.Reset(v)

			q.IntersectWithComplement(&r.adj[v])

			pBounds[pEnd] = colour
			pOrder[pEnd] = v
			pEnd++
		}
	}

	return pEnd
}

// colourSingletonsFirst is colourOrder with singleton colour classes
// deferred to the tail, re-emitted as fresh colours after every
// multi-vertex class (original source: colour_class_order_2df). Since
// expand walks pOrder from the tail down, the deferred singletons are
// the first vertices it branches on.
func (r *runner) colourSingletonsFirst(p *Bitset, pOrder, pBounds, defer_ []int) (pEnd int) {
	pLeft := p.Clone()
	colour := 0
	d := 0

	for pLeft.Any() {
		colour++
		q := pLeft.Clone()

		numberWithThisColour := 0
		for q.Any() {
			v := q.FindFirst()
			pLeft.Reset(v)
			q.Reset(v)

			q.IntersectWithComplement(&r.adj[v])

			pBounds[pEnd] = colour
			pOrder[pEnd] = v
			pEnd++
			numberWithThisColour++
		}

		if numberWithThisColour == 1 {
			pEnd--
			colour--
			defer_[d] = pOrder[pEnd]
			d++
		}
	}

	for n := 0; n < d; n++ {
		colour++
		pOrder[pEnd] = defer_[n]
		pBounds[pEnd] = colour
		pEnd++
	}

	return pEnd
}

// colourSorted is colourOrder with colour classes re-emitted in
// descending size order (ties broken by ascending original colour
// index), tightening the bound for later entries in the branching order
// at the cost of an extra sort per call.
func (r *runner) colourSorted(p *Bitset, pOrder, pBounds []int) (pEnd int) {
	n := r.size
	pLeft := p.Clone()
	colour := 0

	pOrderPrelim := make([]int, n)
	colourSizes := make([]int, n)
	colourStart := make([]int, n)
	sortedOrder := make([]int, n)

	pEnd = 0
	for pLeft.Any() {
		colourStart[colour] = pEnd
		colourSizes[colour] = 0
		colour++

		q := pLeft.Clone()
		for q.Any() {
			v := q.FindFirst()
			pLeft.Reset(v)
			q.Reset(v)

			q.IntersectWithComplement(&r.adj[v])

			pOrderPrelim[pEnd] = v
			pEnd++
			colourSizes[colour-1]++
		}
	}

	for i := 0; i < colour; i++ {
		sortedOrder[i] = i
	}
	// descending colourSizes, ties broken by ascending colour index —
	// mirrors the original's make_tuple(size[b], a) < make_tuple(size[a], b).
	sub := sortedOrder[:colour]
	sort.SliceStable(sub, func(i, j int) bool {
		a, b := sub[i], sub[j]

		return less2(colourSizes[b], a, colourSizes[a], b)
	})

	pEnd2 := 0
	for c := 0; c < colour; c++ {
		cls := sortedOrder[c]
		for v := colourStart[cls]; v < colourStart[cls]+colourSizes[cls]; v++ {
			pBounds[pEnd2] = c + 1
			pOrder[pEnd2] = pOrderPrelim[v]
			pEnd2++
		}
	}

	return pEnd2
}

// less2 implements the lexicographic pair comparison (sizeB, a) < (sizeA, b)
// used by colourSorted's tie-break.
func less2(sizeB, a, sizeA, b int) bool {
	if sizeB != sizeA {
		return sizeB < sizeA
	}

	return a < b
}
