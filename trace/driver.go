// Package trace declares the hook points of the driver. Every hook is a
// start/done pair: the start callback receives a start info struct and
// returns the done callback, or nil if the completion is of no interest.
package trace

import (
	"context"
	"time"

	"github.com/chronicledb/chronicle-go-sdk/internal/stack"
)

// Driver traces the session pool and lambda execution.
type Driver struct {
	OnSessionNew   func(SessionNewStartInfo) func(SessionNewDoneInfo)
	OnSessionGet   func(SessionGetStartInfo) func(SessionGetDoneInfo)
	OnSessionPut   func(SessionPutStartInfo) func(SessionPutDoneInfo)
	OnSessionClose func(SessionCloseStartInfo) func(SessionCloseDoneInfo)
	OnPoolClose    func(PoolCloseStartInfo) func(PoolCloseDoneInfo)
	OnExecute      func(ExecuteStartInfo) func(ExecuteDoneInfo)
}

type (
	SessionNewStartInfo struct {
		// Context make available context in trace callback function. Pointer to
		// context provide replacement of context in trace callback function.
		Context *context.Context
		Call    stack.Caller
	}
	SessionNewDoneInfo struct {
		SessionID string
		Error     error
	}
	SessionGetStartInfo struct {
		Context  *context.Context
		Call     stack.Caller
		ForceNew bool
	}
	SessionGetDoneInfo struct {
		SessionID string
		Reused    bool
		Error     error
	}
	SessionPutStartInfo struct {
		Context   *context.Context
		Call      stack.Caller
		SessionID string
		Alive     bool
	}
	SessionPutDoneInfo    struct{}
	SessionCloseStartInfo struct {
		Context   *context.Context
		Call      stack.Caller
		SessionID string
	}
	SessionCloseDoneInfo struct {
		Error error
	}
	PoolCloseStartInfo struct {
		Context *context.Context
		Call    stack.Caller
	}
	PoolCloseDoneInfo struct {
		Error error
	}
	ExecuteStartInfo struct {
		Context *context.Context
		Call    stack.Caller
	}
	ExecuteDoneInfo struct {
		Attempts int
		Latency  time.Duration
		Error    error
	}
)

// Compose returns a new Driver which calls t's hooks and then x's hooks.
func (t *Driver) Compose(x *Driver) *Driver {
	if t == nil {
		return x
	}
	if x == nil {
		return t
	}

	return &Driver{
		OnSessionNew:   composeHook(t.OnSessionNew, x.OnSessionNew),
		OnSessionGet:   composeHook(t.OnSessionGet, x.OnSessionGet),
		OnSessionPut:   composeHook(t.OnSessionPut, x.OnSessionPut),
		OnSessionClose: composeHook(t.OnSessionClose, x.OnSessionClose),
		OnPoolClose:    composeHook(t.OnPoolClose, x.OnPoolClose),
		OnExecute:      composeHook(t.OnExecute, x.OnExecute),
	}
}

func composeHook[Start, Done any](
	a, b func(Start) func(Done),
) func(Start) func(Done) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	default:
		return func(info Start) func(Done) {
			doneA := a(info)
			doneB := b(info)
			switch {
			case doneA == nil:
				return doneB
			case doneB == nil:
				return doneA
			default:
				return func(info Done) {
					doneA(info)
					doneB(info)
				}
			}
		}
	}
}
