package retry

import (
	"sync/atomic"
)

// Attempts counts retries of a single transaction function execution. One
// counter is allocated per driver-level execute call and threaded through
// both the per-session retry loop and the session-replacement loop, so the
// retry limit bounds the total number of retries regardless of how many
// sessions are consumed.
type Attempts struct {
	n atomic.Int64
}

// Increment atomically increments the counter by one and returns the updated
// value.
func (a *Attempts) Increment() int {
	return int(a.n.Add(1))
}

// Value returns the current value.
func (a *Attempts) Value() int {
	return int(a.n.Load())
}
