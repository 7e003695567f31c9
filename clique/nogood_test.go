package clique

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchTableUnitNogoodExcludesImmediately(t *testing.T) {
	w := newWatchTable()
	w.postNogood([]int{3})

	excluded := map[int]bool{}
	w.applyNewNogoods(func(v int) { excluded[v] = true })

	assert.True(t, excluded[3])
}

func TestWatchTablePropagateExcludesLastLiteral(t *testing.T) {
	w := newWatchTable()
	w.postNogood([]int{0, 1, 2})
	w.applyNewNogoods(func(int) {})
	w.clearNewNogoods()

	inC := map[int]bool{0: true}
	excluded := map[int]bool{}

	// adding 0 to c: nogood {0,1,2} watches two of its three literals;
	// with only one vertex decided, no exclusion should fire yet.
	w.propagate(0, func(v int) bool { return inC[v] }, func(v int) { excluded[v] = true })
	require.Empty(t, excluded)

	// adding 1 too: now two of the three literals are in c, so the third
	// (vertex 2) must be forced out — including it would complete the
	// forbidden set.
	inC[1] = true
	w.propagate(1, func(v int) bool { return inC[v] }, func(v int) { excluded[v] = true })

	assert.True(t, excluded[2])
}

func TestWatchTableEmptyNogoodSignalsDone(t *testing.T) {
	w := newWatchTable()
	w.postNogood(nil)

	done := w.applyNewNogoods(func(int) {})

	assert.True(t, done)
}

func TestWatchTableNonEmptyNogoodDoesNotSignalDone(t *testing.T) {
	w := newWatchTable()
	w.postNogood([]int{3})

	done := w.applyNewNogoods(func(int) {})

	assert.False(t, done)
}

func TestWatchTablePendingNotAppliedUntilApply(t *testing.T) {
	w := newWatchTable()
	w.postNogood([]int{5})
	assert.Len(t, w.nogoods, 0)

	w.applyNewNogoods(func(int) {})
	assert.Len(t, w.nogoods, 1)

	w.clearNewNogoods()
	assert.Len(t, w.pending, 0)
}
