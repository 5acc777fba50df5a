// Package pool implements a bounded pool of reusable items with admission
// control: at most limit items exist at any moment, and callers that cannot
// be admitted within the acquire timeout fail fast.
package pool

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/chronicledb/chronicle-go-sdk/internal/stack"
	"github.com/chronicledb/chronicle-go-sdk/internal/xerrors"
	"github.com/chronicledb/chronicle-go-sdk/internal/xsync"
	"github.com/chronicledb/chronicle-go-sdk/trace"
)

const (
	DefaultLimit          = 50
	DefaultAcquireTimeout = 30 * time.Second
)

// Item is the constraint on pooled items.
type Item[T any] interface {
	*T
	IsAlive() bool
	Close(ctx context.Context) error
}

type Pool[PT Item[T], T any] struct {
	limit          int
	acquireTimeout time.Duration
	createItem     func(ctx context.Context) (PT, error)
	trace          *trace.Driver

	sema *semaphore.Weighted
	done chan struct{}

	mu   xsync.Mutex
	idle []PT
}

type option[PT Item[T], T any] func(p *Pool[PT, T])

func WithLimit[PT Item[T], T any](limit int) option[PT, T] {
	return func(p *Pool[PT, T]) {
		p.limit = limit
	}
}

func WithAcquireTimeout[PT Item[T], T any](timeout time.Duration) option[PT, T] {
	return func(p *Pool[PT, T]) {
		p.acquireTimeout = timeout
	}
}

func WithCreateItemFunc[PT Item[T], T any](f func(ctx context.Context) (PT, error)) option[PT, T] {
	return func(p *Pool[PT, T]) {
		p.createItem = f
	}
}

func WithTrace[PT Item[T], T any](t *trace.Driver) option[PT, T] {
	return func(p *Pool[PT, T]) {
		p.trace = t
	}
}

func New[PT Item[T], T any](opts ...option[PT, T]) *Pool[PT, T] {
	p := &Pool[PT, T]{
		limit:          DefaultLimit,
		acquireTimeout: DefaultAcquireTimeout,
		done:           make(chan struct{}),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	p.sema = semaphore.NewWeighted(int64(p.limit))

	return p
}

// Limit returns the maximum number of simultaneously live items.
func (p *Pool[PT, T]) Limit() int {
	return p.limit
}

// Stats is a point-in-time snapshot of pool state.
type Stats struct {
	Limit int
	Idle  int
}

func (p *Pool[PT, T]) Stats() Stats {
	return Stats{
		Limit: p.limit,
		Idle: xsync.WithLock(&p.mu, func() int {
			return len(p.idle)
		}),
	}
}

// Get admits the caller under the pool limit, then returns an idle item or
// creates a fresh one. With forceNew the idle list is bypassed. A caller that
// is not admitted within the acquire timeout gets ErrPoolExhausted.
func (p *Pool[PT, T]) Get(ctx context.Context, forceNew bool) (_ PT, finalErr error) {
	onDone := trace.DriverOnSessionGet(p.trace, &ctx,
		stack.FunctionID("github.com/chronicledb/chronicle-go-sdk/internal/pool.(*Pool).Get"),
		forceNew,
	)
	item, reused, err := p.get(ctx, forceNew)
	if err != nil {
		onDone("", false, err)

		return nil, err
	}
	onDone(itemID(item), reused, nil)

	return item, nil
}

type identified interface {
	ID() string
}

func itemID(item any) string {
	if v, ok := item.(identified); ok {
		return v.ID()
	}

	return ""
}

func (p *Pool[PT, T]) get(ctx context.Context, forceNew bool) (_ PT, reused bool, finalErr error) {
	if err := p.isClosed(); err != nil {
		return nil, false, err
	}
	if err := p.acquire(ctx); err != nil {
		return nil, false, err
	}
	// The permit is held by the item from here on; Put releases it.
	if !forceNew {
		if item := p.popIdle(ctx); item != nil {
			return item, true, nil
		}
	}
	item, err := p.createItem(ctx)
	if err != nil {
		p.sema.Release(1)

		return nil, false, err
	}

	return item, false, nil
}

func (p *Pool[PT, T]) acquire(ctx context.Context) error {
	acquireCtx, cancel := context.WithTimeout(ctx, p.acquireTimeout)
	defer cancel()
	if err := p.sema.Acquire(acquireCtx, 1); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return xerrors.WithStackTrace(ctxErr)
		}

		return xerrors.WithStackTrace(xerrors.PoolExhausted(p.acquireTimeout))
	}

	return nil
}

// popIdle returns the most recently returned idle item that is still alive.
// Dead idle items are discarded along the way.
func (p *Pool[PT, T]) popIdle(ctx context.Context) PT {
	for {
		var item PT
		p.mu.WithLock(func() {
			if n := len(p.idle); n > 0 {
				item = p.idle[n-1]
				p.idle[n-1] = nil
				p.idle = p.idle[:n-1]
			}
		})
		if item == nil {
			return nil
		}
		if item.IsAlive() {
			return item
		}
		p.closeItem(ctx, item)
	}
}

// Put returns an item to the pool and releases its permit. Dead items are
// discarded: their remote handle is already unusable, so nothing is sent.
func (p *Pool[PT, T]) Put(ctx context.Context, item PT) {
	defer p.sema.Release(1)
	alive := item.IsAlive()
	defer trace.DriverOnSessionPut(p.trace, &ctx,
		stack.FunctionID("github.com/chronicledb/chronicle-go-sdk/internal/pool.(*Pool).Put"),
		itemID(item), alive,
	)()
	if !alive {
		return
	}
	// The closed check and the append happen under one lock so an item put
	// back concurrently with Close is either drained by Close or closed here.
	var closed bool
	p.mu.WithLock(func() {
		if closed = p.isClosed() != nil; !closed {
			p.idle = append(p.idle, item)
		}
	})
	if closed {
		p.closeItem(ctx, item)
	}
}

// Close rejects further admissions and closes every idle item. In-flight
// items are closed by their Put.
func (p *Pool[PT, T]) Close(ctx context.Context) (finalErr error) {
	onDone := trace.DriverOnPoolClose(p.trace, &ctx,
		stack.FunctionID("github.com/chronicledb/chronicle-go-sdk/internal/pool.(*Pool).Close"),
	)
	defer func() {
		onDone(finalErr)
	}()
	var (
		closed bool
		idle   []PT
	)
	p.mu.WithLock(func() {
		if closed = p.isClosed() != nil; !closed {
			close(p.done)
			idle = p.idle
			p.idle = nil
		}
	})
	if closed {
		return xerrors.WithStackTrace(xerrors.ErrDriverClosed)
	}
	var errs []error
	for _, item := range idle {
		if err := item.Close(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (p *Pool[PT, T]) isClosed() error {
	select {
	case <-p.done:
		return xerrors.WithStackTrace(xerrors.ErrDriverClosed)
	default:
		return nil
	}
}

func (p *Pool[PT, T]) closeItem(ctx context.Context, item PT) {
	onDone := trace.DriverOnSessionClose(p.trace, &ctx,
		stack.FunctionID("github.com/chronicledb/chronicle-go-sdk/internal/pool.(*Pool).closeItem"),
		itemID(item),
	)
	onDone(item.Close(ctx))
}
