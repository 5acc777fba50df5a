package xtest

import (
	"context"
	"testing"
	"time"
)

// Context returns a context that is canceled when the test finishes and
// bounded by the test deadline if one is set.
func Context(t testing.TB) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	if d, ok := t.(interface{ Deadline() (time.Time, bool) }); ok {
		if deadline, has := d.Deadline(); has {
			ctx, cancel = context.WithDeadline(ctx, deadline)
		}
	}
	t.Cleanup(cancel)

	return ctx
}
