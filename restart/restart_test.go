package restart_test

import (
	"testing"

	"github.com/katalvlaran/maxclique/restart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeverNeverRestarts(t *testing.T) {
	n := restart.Never{}
	assert.False(t, n.MightRestart())
	for i := 0; i < 1000; i++ {
		n.DidABacktrack()
	}
	assert.False(t, n.ShouldRestart())
}

func TestLubySequenceMatchesKnownPrefix(t *testing.T) {
	// the unscaled Luby sequence's first terms are well known:
	// 1, 1, 2, 1, 1, 2, 4, 1, 1, 2, 1, 1, 2, 4, 8.
	want := []int{1, 1, 2, 1, 1, 2, 4, 1, 1, 2, 1, 1, 2, 4, 8}

	l := restart.NewLuby(1)
	require.True(t, l.MightRestart())

	for i, w := range want {
		for j := 0; j < w-1; j++ {
			assert.False(t, l.ShouldRestart(), "index %d backtrack %d", i, j)
			l.DidABacktrack()
		}
		assert.True(t, l.ShouldRestart(), "index %d", i)
		l.DidARestart()
	}

	assert.Equal(t, len(want), l.Restarts())
}

func TestLubyCeilingLatchesShouldRestartFalse(t *testing.T) {
	l := restart.NewLuby(1, restart.WithCeiling(2))

	for i := 0; i < 2; i++ {
		l.DidABacktrack()
		require.True(t, l.ShouldRestart())
		l.DidARestart()
	}

	// the ceiling has now been hit: no matter how many further backtracks
	// happen, ShouldRestart must never fire again.
	for i := 0; i < 1000; i++ {
		l.DidABacktrack()
		assert.False(t, l.ShouldRestart())
	}
	assert.Equal(t, 2, l.Restarts())
}
