// Package chronicle is a driver for the Chronicle transactional ledger
// database. It maintains a pool of remote sessions and executes transaction
// functions with automatic retries and commit digest verification.
package chronicle

import (
	"context"

	"github.com/jonboulle/clockwork"

	"github.com/chronicledb/chronicle-go-sdk/config"
	"github.com/chronicledb/chronicle-go-sdk/internal/conn"
	"github.com/chronicledb/chronicle-go-sdk/internal/cursor"
	"github.com/chronicledb/chronicle-go-sdk/internal/endpoint"
	"github.com/chronicledb/chronicle-go-sdk/internal/pool"
	"github.com/chronicledb/chronicle-go-sdk/internal/session"
	"github.com/chronicledb/chronicle-go-sdk/internal/stack"
	"github.com/chronicledb/chronicle-go-sdk/internal/wait"
	"github.com/chronicledb/chronicle-go-sdk/internal/xerrors"
	"github.com/chronicledb/chronicle-go-sdk/retry"
	"github.com/chronicledb/chronicle-go-sdk/trace"
)

// Result iterates over the rows of one statement's result set. A Result
// obtained inside a transaction function is only valid while the transaction
// is open; a Result returned from Execute is fully buffered.
type Result = cursor.Cursor

// Tx is the transaction handle passed to a transaction function.
type Tx interface {
	// Execute runs one statement in the open transaction. Parameters are
	// converted to the wire encoding in order.
	Execute(ctx context.Context, statement string, parameters ...any) (Result, error)

	// Abort returns the error that halts the transaction function without
	// committing. Return it from the transaction function.
	Abort() error

	// ID returns the id of the open transaction.
	ID() string
}

// TxFunc is a transaction function. It must be idempotent: the driver runs
// it again on retriable failures.
type TxFunc func(ctx context.Context, tx Tx) (any, error)

// Driver is a client of one ledger. Safe for concurrent use.
type Driver struct {
	config *config.Config
	conn   *conn.Conn
	pool   *pool.Pool[*session.Session, session.Session]
	clock  clockwork.Clock
}

// Open creates a driver for the given ledger.
func Open(ctx context.Context, ledgerName string, opts ...Option) (*Driver, error) {
	cfg, err := config.New(append([]config.Option{config.WithLedgerName(ledgerName)}, opts...)...)
	if err != nil {
		return nil, err
	}
	d := &Driver{
		config: cfg,
		clock:  cfg.Clock(),
	}
	ep := cfg.Endpoint()
	if ep == nil {
		d.conn, err = conn.New(cfg.Address(),
			conn.WithSecure(cfg.Secure()),
			conn.WithCredentials(cfg.Credentials()),
		)
		if err != nil {
			return nil, err
		}
		ep = d.conn
	}
	d.pool = pool.New(
		pool.WithLimit[*session.Session, session.Session](cfg.SessionPoolLimit()),
		pool.WithAcquireTimeout[*session.Session, session.Session](cfg.AcquireTimeout()),
		pool.WithTrace[*session.Session, session.Session](cfg.Trace()),
		pool.WithCreateItemFunc(func(ctx context.Context) (*session.Session, error) {
			return d.createSession(ctx, ep)
		}),
	)

	return d, nil
}

func (d *Driver) createSession(ctx context.Context, ep endpoint.Endpoint) (*session.Session, error) {
	onDone := trace.DriverOnSessionNew(d.config.Trace(), &ctx,
		stack.FunctionID("github.com/chronicledb/chronicle-go-sdk.(*Driver).createSession"),
	)
	s, err := session.New(ctx, ep, d.config.LedgerName(), session.Config{
		ReadAhead: d.config.ReadAhead(),
		Runner:    d.config.Runner(),
		Clock:     d.config.Clock(),
		Trace:     d.config.TraceRetry(),
	})
	if err != nil {
		onDone("", err)

		return nil, err
	}
	onDone(s.ID(), nil)

	return s, nil
}

// Execute runs fn in a transaction and returns its result. On retriable
// failures fn runs again, on a new session if the old one died. A live
// Result returned by fn is buffered before commit, so it stays readable
// after Execute returns.
func (d *Driver) Execute(ctx context.Context, fn TxFunc, opts ...retry.Option) (_ any, finalErr error) {
	onDone := trace.DriverOnExecute(d.config.Trace(), &ctx,
		stack.FunctionID("github.com/chronicledb/chronicle-go-sdk.(*Driver).Execute"),
	)
	onRetryDone := trace.RetryOnRetry(d.config.TraceRetry(), &ctx,
		stack.FunctionID("github.com/chronicledb/chronicle-go-sdk.(*Driver).Execute"),
	)
	start := d.clock.Now()
	attempts := &retry.Attempts{}
	result, err := d.execute(ctx, fn, opts, attempts)
	onRetryDone(attempts.Value(), err)
	onDone(attempts.Value(), d.clock.Since(start), err)

	return result, err
}

func (d *Driver) execute(ctx context.Context, fn TxFunc, opts []retry.Option, attempts *retry.Attempts) (any, error) {
	retryConfig := d.config.RetryConfig()
	if len(opts) > 0 {
		var err error
		if retryConfig, err = retry.New(opts...); err != nil {
			return nil, err
		}
	}
	sessionFn := func(ctx context.Context, tx session.Executor) (any, error) {
		return fn(ctx, tx)
	}

	// One extra acquisition per retry of a dead session, bounded so a
	// pool full of dead sessions cannot loop forever.
	forceNew := false
	var lastErr error
	for i := 0; i <= d.pool.Limit()+3; i++ {
		s, err := d.pool.Get(ctx, forceNew)
		if err != nil {
			return nil, err
		}
		result, err := s.Execute(ctx, sessionFn, retryConfig, attempts)
		d.pool.Put(ctx, s)
		if err == nil {
			return result, nil
		}
		lastErr = err
		if !xerrors.IsInvalidSession(err) || xerrors.IsTransactionExpired(err) {
			return nil, err
		}
		// The session handle died mid-execution. Replacing it consumes the
		// shared retry budget like any other retry.
		if attempts.Value() >= retryConfig.Limit() {
			return nil, err
		}
		attempt := attempts.Increment()
		delay := retryConfig.Delay(attempt, err, "")
		onWaitDone := trace.RetryOnWait(d.config.TraceRetry(), &ctx,
			stack.FunctionID("github.com/chronicledb/chronicle-go-sdk.(*Driver).execute"),
			attempt, "", delay, err,
		)
		waitErr := wait.Wait(ctx, d.clock, delay)
		onWaitDone(waitErr)
		if waitErr != nil {
			return nil, waitErr
		}
		forceNew = true
	}

	return nil, lastErr
}

// ExecuteStatement runs one statement in its own transaction and returns the
// buffered result.
func (d *Driver) ExecuteStatement(ctx context.Context, statement string, parameters ...any) (Result, error) {
	result, err := d.Execute(ctx, func(ctx context.Context, tx Tx) (any, error) {
		return tx.Execute(ctx, statement, parameters...)
	})
	if err != nil {
		return nil, err
	}

	return result.(Result), nil
}

// ListTables returns the names of the active tables of the ledger, one row
// per table.
func (d *Driver) ListTables(ctx context.Context) (Result, error) {
	return d.ExecuteStatement(ctx,
		"SELECT name FROM information_schema.user_tables WHERE status = 'ACTIVE'",
	)
}

// Close rejects new Execute calls, ends the pooled sessions and closes the
// transport. Idempotent.
func (d *Driver) Close(ctx context.Context) error {
	err := d.pool.Close(ctx)
	if xerrors.Is(err, xerrors.ErrDriverClosed) {
		return nil
	}
	if d.conn != nil {
		if closeErr := d.conn.Close(); err == nil {
			err = closeErr
		}
	}

	return err
}
