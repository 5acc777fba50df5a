package trace

import (
	"context"
	"time"

	"github.com/chronicledb/chronicle-go-sdk/internal/stack"
)

// Retry traces the retry loop of a single lambda execution.
type Retry struct {
	OnRetry func(RetryLoopStartInfo) func(RetryLoopDoneInfo)
	OnWait  func(RetryWaitStartInfo) func(RetryWaitDoneInfo)
}

type (
	RetryLoopStartInfo struct {
		// Context make available context in trace callback function. Pointer to
		// context provide replacement of context in trace callback function.
		Context *context.Context
		Call    stack.Caller
	}
	RetryLoopDoneInfo struct {
		Attempts int
		Error    error
	}
	RetryWaitStartInfo struct {
		Context       *context.Context
		Call          stack.Caller
		Attempt       int
		TransactionID string
		Delay         time.Duration
		Cause         error
	}
	RetryWaitDoneInfo struct {
		Error error
	}
)

// Compose returns a new Retry which calls t's hooks and then x's hooks.
func (t *Retry) Compose(x *Retry) *Retry {
	if t == nil {
		return x
	}
	if x == nil {
		return t
	}

	return &Retry{
		OnRetry: composeHook(t.OnRetry, x.OnRetry),
		OnWait:  composeHook(t.OnWait, x.OnWait),
	}
}
