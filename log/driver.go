package log

import (
	"time"

	"github.com/chronicledb/chronicle-go-sdk/trace"
)

// WithDriver returns a driver trace that logs session pool and execution
// events to l.
func WithDriver(l Logger) trace.Driver {
	return trace.Driver{
		OnSessionNew: func(info trace.SessionNewStartInfo) func(trace.SessionNewDoneInfo) {
			ctx := *info.Context
			start := time.Now()

			return func(done trace.SessionNewDoneInfo) {
				if done.Error != nil {
					l.Log(WithLevel(ctx, WARN), "session create failed",
						Duration("latency", time.Since(start)),
						Error(done.Error),
					)

					return
				}
				l.Log(WithLevel(ctx, DEBUG), "session created",
					String("session_id", done.SessionID),
					Duration("latency", time.Since(start)),
				)
			}
		},
		OnSessionGet: func(info trace.SessionGetStartInfo) func(trace.SessionGetDoneInfo) {
			ctx := *info.Context
			forceNew := info.ForceNew
			start := time.Now()

			return func(done trace.SessionGetDoneInfo) {
				if done.Error != nil {
					l.Log(WithLevel(ctx, WARN), "session get failed",
						Bool("force_new", forceNew),
						Duration("latency", time.Since(start)),
						Error(done.Error),
					)

					return
				}
				l.Log(WithLevel(ctx, TRACE), "session get",
					String("session_id", done.SessionID),
					Bool("reused", done.Reused),
					Duration("latency", time.Since(start)),
				)
			}
		},
		OnSessionPut: func(info trace.SessionPutStartInfo) func(trace.SessionPutDoneInfo) {
			ctx := *info.Context
			sessionID := info.SessionID
			alive := info.Alive

			return func(trace.SessionPutDoneInfo) {
				l.Log(WithLevel(ctx, TRACE), "session put",
					String("session_id", sessionID),
					Bool("alive", alive),
				)
			}
		},
		OnSessionClose: func(info trace.SessionCloseStartInfo) func(trace.SessionCloseDoneInfo) {
			ctx := *info.Context
			sessionID := info.SessionID

			return func(done trace.SessionCloseDoneInfo) {
				if done.Error != nil {
					l.Log(WithLevel(ctx, WARN), "session close failed",
						String("session_id", sessionID),
						Error(done.Error),
					)

					return
				}
				l.Log(WithLevel(ctx, DEBUG), "session closed",
					String("session_id", sessionID),
				)
			}
		},
		OnPoolClose: func(info trace.PoolCloseStartInfo) func(trace.PoolCloseDoneInfo) {
			ctx := *info.Context

			return func(done trace.PoolCloseDoneInfo) {
				if done.Error != nil {
					l.Log(WithLevel(ctx, WARN), "session pool close failed",
						Error(done.Error),
					)

					return
				}
				l.Log(WithLevel(ctx, INFO), "session pool closed")
			}
		},
		OnExecute: func(info trace.ExecuteStartInfo) func(trace.ExecuteDoneInfo) {
			ctx := *info.Context

			return func(done trace.ExecuteDoneInfo) {
				if done.Error != nil {
					l.Log(WithLevel(ctx, WARN), "execute failed",
						Int("attempts", done.Attempts),
						Duration("latency", done.Latency),
						Error(done.Error),
					)

					return
				}
				l.Log(WithLevel(ctx, DEBUG), "execute done",
					Int("attempts", done.Attempts),
					Duration("latency", done.Latency),
				)
			}
		},
	}
}

// WithRetry returns a retry trace that logs retry waits to l.
func WithRetry(l Logger) trace.Retry {
	return trace.Retry{
		OnWait: func(info trace.RetryWaitStartInfo) func(trace.RetryWaitDoneInfo) {
			ctx := *info.Context
			attempt := info.Attempt
			txID := info.TransactionID
			delay := info.Delay
			cause := info.Cause

			return func(done trace.RetryWaitDoneInfo) {
				if done.Error != nil {
					l.Log(WithLevel(ctx, WARN), "retry wait interrupted",
						Int("attempt", attempt),
						String("tx_id", txID),
						Duration("delay", delay),
						Error(done.Error),
					)

					return
				}
				l.Log(WithLevel(ctx, DEBUG), "retrying transaction",
					Int("attempt", attempt),
					String("tx_id", txID),
					Duration("delay", delay),
					Error(cause),
				)
			}
		},
	}
}
