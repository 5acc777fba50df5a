package pool

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/chronicledb/chronicle-go-sdk/internal/xerrors"
	"github.com/chronicledb/chronicle-go-sdk/internal/xtest"
)

type testItem struct {
	id     string
	dead   atomic.Bool
	closed atomic.Int32
}

func (i *testItem) ID() string {
	return i.id
}

func (i *testItem) IsAlive() bool {
	return !i.dead.Load()
}

func (i *testItem) Close(context.Context) error {
	i.closed.Add(1)

	return nil
}

func newTestPool(limit int, timeout time.Duration, created *atomic.Int32) *Pool[*testItem, testItem] {
	return New(
		WithLimit[*testItem, testItem](limit),
		WithAcquireTimeout[*testItem, testItem](timeout),
		WithCreateItemFunc(func(context.Context) (*testItem, error) {
			n := created.Add(1)

			return &testItem{id: "item-" + strconv.Itoa(int(n))}, nil
		}),
	)
}

func TestGetCreatesItem(t *testing.T) {
	ctx := xtest.Context(t)
	var created atomic.Int32
	p := newTestPool(2, time.Second, &created)

	item, err := p.Get(ctx, false)
	require.NoError(t, err)
	require.NotNil(t, item)
	require.EqualValues(t, 1, created.Load())
}

func TestGetReusesIdleItem(t *testing.T) {
	ctx := xtest.Context(t)
	var created atomic.Int32
	p := newTestPool(2, time.Second, &created)

	first, err := p.Get(ctx, false)
	require.NoError(t, err)
	p.Put(ctx, first)

	second, err := p.Get(ctx, false)
	require.NoError(t, err)
	require.Same(t, first, second)
	require.EqualValues(t, 1, created.Load())
}

func TestGetForceNewSkipsIdle(t *testing.T) {
	ctx := xtest.Context(t)
	var created atomic.Int32
	p := newTestPool(2, time.Second, &created)

	first, err := p.Get(ctx, false)
	require.NoError(t, err)
	p.Put(ctx, first)

	second, err := p.Get(ctx, true)
	require.NoError(t, err)
	require.NotSame(t, first, second)
	require.EqualValues(t, 2, created.Load())
}

func TestGetSkipsDeadIdleItems(t *testing.T) {
	ctx := xtest.Context(t)
	var created atomic.Int32
	p := newTestPool(2, time.Second, &created)

	first, err := p.Get(ctx, false)
	require.NoError(t, err)
	p.Put(ctx, first)
	first.dead.Store(true)

	second, err := p.Get(ctx, false)
	require.NoError(t, err)
	require.NotSame(t, first, second)
	require.EqualValues(t, 2, created.Load())
	require.EqualValues(t, 1, first.closed.Load())
}

func TestPutDiscardsDeadItem(t *testing.T) {
	ctx := xtest.Context(t)
	var created atomic.Int32
	p := newTestPool(2, time.Second, &created)

	item, err := p.Get(ctx, false)
	require.NoError(t, err)
	item.dead.Store(true)
	p.Put(ctx, item)

	require.Zero(t, p.Stats().Idle)
	// The permit is back: another item can be created.
	_, err = p.Get(ctx, false)
	require.NoError(t, err)
	require.EqualValues(t, 2, created.Load())
}

func TestGetTimesOutWhenExhausted(t *testing.T) {
	ctx := xtest.Context(t)
	var created atomic.Int32
	p := newTestPool(1, 10*time.Millisecond, &created)

	_, err := p.Get(ctx, false)
	require.NoError(t, err)

	_, err = p.Get(ctx, false)
	require.ErrorIs(t, err, xerrors.ErrPoolExhausted)
}

func TestGetHonorsCallerContext(t *testing.T) {
	var created atomic.Int32
	p := newTestPool(1, time.Minute, &created)

	ctx := xtest.Context(t)
	_, err := p.Get(ctx, false)
	require.NoError(t, err)

	canceledCtx, cancel := context.WithCancel(ctx)
	cancel()
	_, err = p.Get(canceledCtx, false)
	require.ErrorIs(t, err, context.Canceled)
	require.NotErrorIs(t, err, xerrors.ErrPoolExhausted)
}

func TestGetAfterPutDoesNotTimeOut(t *testing.T) {
	ctx := xtest.Context(t)
	var created atomic.Int32
	p := newTestPool(1, time.Second, &created)

	item, err := p.Get(ctx, false)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := p.Get(ctx, false)
		done <- err
	}()
	p.Put(ctx, item)
	require.NoError(t, <-done)
}

func TestCreateFailureReleasesPermit(t *testing.T) {
	ctx := xtest.Context(t)
	errCreate := errors.New("create failed")
	fail := true
	p := New(
		WithLimit[*testItem, testItem](1),
		WithAcquireTimeout[*testItem, testItem](10*time.Millisecond),
		WithCreateItemFunc(func(context.Context) (*testItem, error) {
			if fail {
				return nil, errCreate
			}

			return &testItem{id: "item"}, nil
		}),
	)

	_, err := p.Get(ctx, false)
	require.ErrorIs(t, err, errCreate)

	fail = false
	_, err = p.Get(ctx, false)
	require.NoError(t, err)
}

func TestCloseClosesIdleItems(t *testing.T) {
	ctx := xtest.Context(t)
	var created atomic.Int32
	p := newTestPool(2, time.Second, &created)

	item, err := p.Get(ctx, false)
	require.NoError(t, err)
	p.Put(ctx, item)

	require.NoError(t, p.Close(ctx))
	require.EqualValues(t, 1, item.closed.Load())

	_, err = p.Get(ctx, false)
	require.ErrorIs(t, err, xerrors.ErrDriverClosed)
	require.ErrorIs(t, p.Close(ctx), xerrors.ErrDriverClosed)
}

func TestPutAfterCloseClosesItem(t *testing.T) {
	ctx := xtest.Context(t)
	var created atomic.Int32
	p := newTestPool(2, time.Second, &created)

	item, err := p.Get(ctx, false)
	require.NoError(t, err)
	require.NoError(t, p.Close(ctx))

	p.Put(ctx, item)
	require.EqualValues(t, 1, item.closed.Load())
	require.Zero(t, p.Stats().Idle)
}

func TestConcurrentUseNeverExceedsLimit(t *testing.T) {
	ctx := xtest.Context(t)
	const limit = 5
	var (
		created atomic.Int32
		live    atomic.Int32
		peak    atomic.Int32
	)
	p := New(
		WithLimit[*testItem, testItem](limit),
		WithAcquireTimeout[*testItem, testItem](time.Minute),
		WithCreateItemFunc(func(context.Context) (*testItem, error) {
			created.Add(1)

			return &testItem{id: "item"}, nil
		}),
	)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			item, err := p.Get(ctx, false)
			if err != nil {
				t.Error(err)

				return
			}
			n := live.Add(1)
			for {
				max := peak.Load()
				if n <= max || peak.CompareAndSwap(max, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			live.Add(-1)
			p.Put(ctx, item)
		}()
	}
	wg.Wait()
	require.LessOrEqual(t, peak.Load(), int32(limit))
	require.LessOrEqual(t, created.Load(), int32(limit))
}
