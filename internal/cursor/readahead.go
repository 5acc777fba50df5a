package cursor

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/chronicledb/chronicle-go-sdk/internal/endpoint"
	"github.com/chronicledb/chronicle-go-sdk/internal/xerrors"
)

// MinWindow is the smallest allowed read-ahead window.
const MinWindow = 2

// pushTimeout bounds a blocked push into the prefetch buffer so the worker
// can re-check whether the cursor has been closed underneath it.
const pushTimeout = 50 * time.Millisecond

var (
	_ Cursor = (*ReadAhead)(nil)
	_ Live   = (*ReadAhead)(nil)
)

// ReadAhead overlaps fetching of page N+1 with consumption of page N. One
// background worker fetches pages in order into a bounded buffer of
// window-1 pages.
type ReadAhead struct {
	page    endpoint.Page
	index   int
	current []byte
	err     error
	closed  atomic.Bool
	stats   stats
	clock   clockwork.Clock
	results chan fetchResult
}

// fetchResult is one prefetched page or a terminal error sentinel.
type fetchResult struct {
	page   endpoint.Page
	ios    *endpoint.IOUsage
	timing *endpoint.TimingInformation
	err    error
}

// NewReadAhead starts the prefetch worker on runner, or on a fresh goroutine
// if runner is nil. The window must be at least MinWindow.
func NewReadAhead(
	ctx context.Context,
	result *endpoint.ExecuteStatementResult,
	pager Pager,
	window int,
	runner func(task func()),
	clock clockwork.Clock,
) *ReadAhead {
	r := &ReadAhead{
		page:    result.FirstPage,
		clock:   clock,
		results: make(chan fetchResult, window-1),
	}
	r.stats.accumulate(result.ConsumedIOs, result.TimingInformation)
	task := func() {
		r.populate(ctx, pager, result.FirstPage.NextPageToken)
	}
	if runner != nil {
		runner(task)
	} else {
		go task()
	}

	return r
}

func (r *ReadAhead) Next(ctx context.Context) bool {
	if r.err != nil {
		return false
	}
	if r.closed.Load() {
		r.err = xerrors.WithStackTrace(xerrors.ErrResultClosed)

		return false
	}
	for r.index >= len(r.page.Values) {
		if r.page.NextPageToken == nil {
			return false
		}
		if err := r.nextPage(ctx); err != nil {
			r.err = err

			return false
		}
	}
	r.current = r.page.Values[r.index]
	r.index++

	return true
}

// nextPage pulls exactly one item from the prefetch buffer.
func (r *ReadAhead) nextPage(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return xerrors.WithStackTrace(ctx.Err())
	case item := <-r.results:
		if item.err != nil {
			return item.err
		}
		r.stats.accumulate(item.ios, item.timing)
		r.page = item.page
		r.index = 0

		return nil
	}
}

// populate runs on the worker. It fetches pages in order while a
// continuation token remains and pushes them into the bounded buffer,
// re-checking the closed flag whenever a push stays blocked.
func (r *ReadAhead) populate(ctx context.Context, pager Pager, token *string) {
	for token != nil {
		result, err := pager.FetchPage(ctx, *token)
		if err != nil {
			// Prefetched but unconsumed pages are discarded with the failure.
			r.drainAndPush(fetchResult{err: xerrors.WithStackTrace(err)})

			return
		}
		item := fetchResult{
			page:   result.Page,
			ios:    result.ConsumedIOs,
			timing: result.TimingInformation,
		}
		for {
			pushed, stop := r.push(item)
			if stop {
				return
			}
			if pushed {
				break
			}
		}
		token = result.Page.NextPageToken
	}
}

func (r *ReadAhead) push(item fetchResult) (pushed, stop bool) {
	timer := r.clock.NewTimer(pushTimeout)
	defer timer.Stop()
	select {
	case r.results <- item:
		return true, false
	case <-timer.Chan():
		if r.closed.Load() {
			r.drainAndPush(fetchResult{err: xerrors.WithStackTrace(xerrors.ErrResultClosed)})

			return false, true
		}

		return false, false
	}
}

// drainAndPush empties the buffer to release a possibly blocked consumer and
// enqueues a terminal sentinel. The worker is the only producer, so after the
// drain the buffer is guaranteed to have room.
func (r *ReadAhead) drainAndPush(item fetchResult) {
	for {
		select {
		case <-r.results:
			continue
		default:
		}

		break
	}
	r.results <- item
}

func (r *ReadAhead) Value() []byte {
	return r.current
}

func (r *ReadAhead) Err() error {
	return r.err
}

func (r *ReadAhead) Close() {
	r.closed.Store(true)
}

func (r *ReadAhead) ConsumedIOs() *endpoint.IOUsage {
	return r.stats.consumedIOs()
}

func (r *ReadAhead) TimingInformation() *endpoint.TimingInformation {
	return r.stats.timingInformation()
}

func (r *ReadAhead) liveCursor() {}
