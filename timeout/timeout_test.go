package timeout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNeverNeverAborts(t *testing.T) {
	n := Never{}
	for i := 0; i < 10000; i++ {
		assert.False(t, n.ShouldAbort())
	}
}

func TestDeadlineAbortsAfterPolledElapse(t *testing.T) {
	base := time.Now()
	d := &Deadline{deadline: base.Add(10 * time.Millisecond), now: func() time.Time { return base }}

	// below the poll mask, ShouldAbort never consults the clock.
	for i := 0; i < pollMask; i++ {
		assert.False(t, d.ShouldAbort())
	}

	// advance the fake clock past the deadline, then trigger the poll.
	d.now = func() time.Time { return base.Add(time.Second) }
	assert.True(t, d.ShouldAbort())
}

func TestDeadlineDoesNotAbortBeforeElapse(t *testing.T) {
	base := time.Now()
	d := &Deadline{deadline: base.Add(time.Hour), now: func() time.Time { return base }}

	for i := 0; i <= pollMask; i++ {
		assert.False(t, d.ShouldAbort())
	}
}
