package wait

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/chronicledb/chronicle-go-sdk/internal/xerrors"
)

// Wait blocks for the given delay or until ctx is done, whichever happens
// first.
func Wait(ctx context.Context, clock clockwork.Clock, delay time.Duration) error {
	if delay <= 0 {
		select {
		case <-ctx.Done():
			return xerrors.WithStackTrace(ctx.Err())
		default:
			return nil
		}
	}
	timer := clock.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return xerrors.WithStackTrace(ctx.Err())
	case <-timer.Chan():
		return nil
	}
}
