package trace

import (
	"context"
	"time"

	"github.com/chronicledb/chronicle-go-sdk/internal/stack"
)

// Hook invocation helpers. Each returns a done callback that is safe to call
// even when the trace or the hook is nil.

func DriverOnSessionNew(t *Driver, c *context.Context, call stack.Caller) func(sessionID string, _ error) {
	if t == nil || t.OnSessionNew == nil {
		return func(string, error) {}
	}
	done := t.OnSessionNew(SessionNewStartInfo{Context: c, Call: call})
	if done == nil {
		return func(string, error) {}
	}

	return func(sessionID string, e error) {
		done(SessionNewDoneInfo{SessionID: sessionID, Error: e})
	}
}

func DriverOnSessionGet(t *Driver, c *context.Context, call stack.Caller, forceNew bool) func(sessionID string, reused bool, _ error) {
	if t == nil || t.OnSessionGet == nil {
		return func(string, bool, error) {}
	}
	done := t.OnSessionGet(SessionGetStartInfo{Context: c, Call: call, ForceNew: forceNew})
	if done == nil {
		return func(string, bool, error) {}
	}

	return func(sessionID string, reused bool, e error) {
		done(SessionGetDoneInfo{SessionID: sessionID, Reused: reused, Error: e})
	}
}

func DriverOnSessionPut(t *Driver, c *context.Context, call stack.Caller, sessionID string, alive bool) func() {
	if t == nil || t.OnSessionPut == nil {
		return func() {}
	}
	done := t.OnSessionPut(SessionPutStartInfo{Context: c, Call: call, SessionID: sessionID, Alive: alive})
	if done == nil {
		return func() {}
	}

	return func() {
		done(SessionPutDoneInfo{})
	}
}

func DriverOnSessionClose(t *Driver, c *context.Context, call stack.Caller, sessionID string) func(error) {
	if t == nil || t.OnSessionClose == nil {
		return func(error) {}
	}
	done := t.OnSessionClose(SessionCloseStartInfo{Context: c, Call: call, SessionID: sessionID})
	if done == nil {
		return func(error) {}
	}

	return func(e error) {
		done(SessionCloseDoneInfo{Error: e})
	}
}

func DriverOnPoolClose(t *Driver, c *context.Context, call stack.Caller) func(error) {
	if t == nil || t.OnPoolClose == nil {
		return func(error) {}
	}
	done := t.OnPoolClose(PoolCloseStartInfo{Context: c, Call: call})
	if done == nil {
		return func(error) {}
	}

	return func(e error) {
		done(PoolCloseDoneInfo{Error: e})
	}
}

func DriverOnExecute(t *Driver, c *context.Context, call stack.Caller) func(attempts int, latency time.Duration, _ error) {
	if t == nil || t.OnExecute == nil {
		return func(int, time.Duration, error) {}
	}
	done := t.OnExecute(ExecuteStartInfo{Context: c, Call: call})
	if done == nil {
		return func(int, time.Duration, error) {}
	}

	return func(attempts int, latency time.Duration, e error) {
		done(ExecuteDoneInfo{Attempts: attempts, Latency: latency, Error: e})
	}
}

func RetryOnRetry(t *Retry, c *context.Context, call stack.Caller) func(attempts int, _ error) {
	if t == nil || t.OnRetry == nil {
		return func(int, error) {}
	}
	done := t.OnRetry(RetryLoopStartInfo{Context: c, Call: call})
	if done == nil {
		return func(int, error) {}
	}

	return func(attempts int, e error) {
		done(RetryLoopDoneInfo{Attempts: attempts, Error: e})
	}
}

func RetryOnWait(t *Retry, c *context.Context, call stack.Caller, attempt int, txID string, delay time.Duration, cause error) func(error) {
	if t == nil || t.OnWait == nil {
		return func(error) {}
	}
	done := t.OnWait(RetryWaitStartInfo{
		Context:       c,
		Call:          call,
		Attempt:       attempt,
		TransactionID: txID,
		Delay:         delay,
		Cause:         cause,
	})
	if done == nil {
		return func(error) {}
	}

	return func(e error) {
		done(RetryWaitDoneInfo{Error: e})
	}
}
