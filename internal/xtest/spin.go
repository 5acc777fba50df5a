package xtest

import (
	"runtime"
	"testing"
	"time"
)

const spinTimeout = 10 * time.Second

// SpinWaitCondition polls cond until it holds, failing the test after a
// fixed timeout.
func SpinWaitCondition(t testing.TB, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(spinTimeout)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("condition not met within %s", spinTimeout)
		}
		runtime.Gosched()
	}
}
