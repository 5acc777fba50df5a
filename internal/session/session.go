// Package session implements one remote ledger session and the per-session
// retry loop of transaction execution.
package session

import (
	"context"
	"sync/atomic"

	"github.com/jonboulle/clockwork"

	"github.com/chronicledb/chronicle-go-sdk/internal/cursor"
	"github.com/chronicledb/chronicle-go-sdk/internal/endpoint"
	"github.com/chronicledb/chronicle-go-sdk/internal/stack"
	"github.com/chronicledb/chronicle-go-sdk/internal/transaction"
	"github.com/chronicledb/chronicle-go-sdk/internal/wait"
	"github.com/chronicledb/chronicle-go-sdk/internal/xerrors"
	"github.com/chronicledb/chronicle-go-sdk/retry"
	"github.com/chronicledb/chronicle-go-sdk/trace"
)

// TxFunc is the transaction function executed against one open transaction.
type TxFunc func(ctx context.Context, tx Executor) (any, error)

// Config carries per-session knobs down from the driver configuration.
type Config struct {
	// ReadAhead is the cursor prefetch window. Zero disables prefetching.
	ReadAhead int

	// Runner executes cursor prefetch workers. Nil means a fresh goroutine.
	Runner func(task func())

	Clock clockwork.Clock

	Trace *trace.Retry
}

// Session owns one remote session handle. All methods except IsAlive must be
// called by one goroutine at a time; the pool guarantees that.
type Session struct {
	client *Client
	config Config
	alive  atomic.Bool
	closed atomic.Bool
}

// New starts a remote session on the ledger.
func New(ctx context.Context, ep endpoint.Endpoint, ledgerName string, config Config) (*Session, error) {
	if config.Clock == nil {
		config.Clock = clockwork.NewRealClock()
	}
	result, err := ep.StartSession(ctx, ledgerName)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}
	s := &Session{
		client: &Client{
			endpoint:   ep,
			ledgerName: ledgerName,
			token:      result.SessionToken,
			id:         result.SessionID,
		},
		config: config,
	}
	s.alive.Store(true)

	return s, nil
}

// ID returns the session id assigned by the ledger.
func (s *Session) ID() string {
	return s.client.id
}

// Token returns the session token used to address the remote session.
func (s *Session) Token() string {
	return s.client.token
}

// IsAlive reports whether the remote session handle is still usable.
func (s *Session) IsAlive() bool {
	return s.alive.Load() && !s.closed.Load()
}

// Close ends the remote session. Closing a dead or already closed session
// sends nothing.
func (s *Session) Close(ctx context.Context) error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	if !s.alive.Swap(false) {
		return nil
	}
	if err := s.client.EndSession(ctx); err != nil {
		return xerrors.WithStackTrace(err)
	}

	return nil
}

// Execute runs fn in transactions on this session until it commits, a
// non-retriable failure occurs, the shared retry budget is exhausted or the
// session dies.
func (s *Session) Execute(ctx context.Context, fn TxFunc, config retry.Config, attempts *retry.Attempts) (any, error) {
	for {
		result, txID, err := s.executeOnce(ctx, fn)
		if err == nil {
			return result, nil
		}
		retriable, rethrow := s.classify(ctx, err)
		if !retriable || attempts.Value() >= config.Limit() {
			return nil, rethrow
		}
		attempt := attempts.Increment()
		delay := config.Delay(attempt, rethrow, txID)
		onWaitDone := trace.RetryOnWait(s.config.Trace, &ctx, stack.FunctionID(
			"github.com/chronicledb/chronicle-go-sdk/internal/session.(*Session).Execute",
		), attempt, txID, delay, rethrow)
		waitErr := wait.Wait(ctx, s.config.Clock, delay)
		onWaitDone(waitErr)
		if waitErr != nil {
			return nil, waitErr
		}
	}
}

// executeOnce runs fn in exactly one transaction, buffers a returned live
// cursor while the transaction is still open, then commits.
func (s *Session) executeOnce(ctx context.Context, fn TxFunc) (_ any, txID string, finalErr error) {
	tx, err := s.startTransaction(ctx)
	if err != nil {
		return nil, "", err
	}
	defer tx.Close()

	result, err := fn(ctx, Executor{tx: tx})
	if err == nil {
		if live, ok := result.(cursor.Live); ok {
			var buffered *cursor.Buffered
			if buffered, err = cursor.NewBuffered(ctx, live); err == nil {
				result = buffered
			}
		}
	}
	if err != nil {
		return nil, tx.ID(), err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, tx.ID(), err
	}

	return result, tx.ID(), nil
}

func (s *Session) startTransaction(ctx context.Context) (*transaction.Transaction, error) {
	result, err := s.client.StartTransaction(ctx)
	if err != nil {
		if xerrors.IsBadRequest(err) {
			return nil, xerrors.WithStackTrace(xerrors.StartTransaction(err))
		}

		return nil, xerrors.WithStackTrace(err)
	}

	return transaction.New(result.TransactionID, s.client, transaction.Config{
		ReadAhead: s.config.ReadAhead,
		Runner:    s.config.Runner,
		Clock:     s.config.Clock,
	})
}

// classify maps a failed attempt onto the retry decision and performs the
// session-state side effects of the failure class: best-effort aborts and
// marking the session dead.
func (s *Session) classify(ctx context.Context, err error) (retriable bool, rethrow error) {
	switch {
	case xerrors.Is(err, xerrors.ErrLambdaAborted):
		s.abortNoThrow(ctx)

		return false, err
	case xerrors.IsStartTransactionError(err):
		// On exhaustion the caller sees the underlying failure, not the
		// wrapper.
		s.abortNoThrow(ctx)

		return true, xerrors.StartTransactionCause(err)
	case xerrors.IsOccConflict(err):
		// The ledger already terminated the transaction.
		return true, err
	case xerrors.IsTransactionExpired(err):
		// The session outlives the expired transaction.
		s.abortNoThrow(ctx)

		return true, err
	case xerrors.IsInvalidSession(err):
		s.alive.Store(false)

		return false, err
	case xerrors.IsRetriableTransport(err):
		s.abortNoThrow(ctx)

		return true, err
	default:
		s.abortNoThrow(ctx)

		return false, err
	}
}

// abortNoThrow sends a best-effort abort for whatever transaction the remote
// session has open. A failed abort leaves the session state unknown, so the
// session is marked dead.
func (s *Session) abortNoThrow(ctx context.Context) {
	if err := s.client.AbortTransaction(ctx); err != nil {
		s.alive.Store(false)
	}
}
