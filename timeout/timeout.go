package timeout

import (
	"sync/atomic"
	"time"
)

// Never is a Timeout that never aborts the search.
type Never struct{}

func (Never) ShouldAbort() bool { return false }

// pollMask determines how often Deadline actually calls its clock: every
// pollMask+1'th call. ShouldAbort sits at the top of expand()'s hot
// loop, so checking the wall clock on every call would add real
// overhead to a search visiting millions of nodes; 1023 keeps the check
// cheap while still catching a blown deadline within a fraction of a
// second.
const pollMask = 1023

// Deadline is a Timeout that aborts once now() reaches deadline. Safe
// for concurrent use.
type Deadline struct {
	deadline time.Time
	now      func() time.Time
	calls    uint64
}

// NewDeadline returns a Deadline that aborts once d has elapsed from the
// moment NewDeadline is called.
func NewDeadline(d time.Duration) *Deadline {
	return &Deadline{deadline: time.Now().Add(d), now: time.Now}
}

// ShouldAbort reports whether the deadline has passed. It only consults
// the wall clock every pollMask+1 calls, matching the sparse polling
// idiom used throughout the teacher corpus's bounded search loops.
func (d *Deadline) ShouldAbort() bool {
	n := atomic.AddUint64(&d.calls, 1)
	if n&pollMask != 0 {
		return false
	}

	return !d.now().Before(d.deadline)
}
