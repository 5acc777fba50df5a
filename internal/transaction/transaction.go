// Package transaction implements one open unit of work on a ledger session:
// statement execution, the running commit digest and the registry of spawned
// cursors.
package transaction

import (
	"context"

	"github.com/jonboulle/clockwork"

	"github.com/chronicledb/chronicle-go-sdk/internal/cursor"
	"github.com/chronicledb/chronicle-go-sdk/internal/digest"
	"github.com/chronicledb/chronicle-go-sdk/internal/endpoint"
	"github.com/chronicledb/chronicle-go-sdk/internal/value"
	"github.com/chronicledb/chronicle-go-sdk/internal/xerrors"
)

// Client is the session command surface a transaction needs. It is bound to
// the session token by the implementation.
type Client interface {
	ExecuteStatement(ctx context.Context, txID, statement string, parameters [][]byte) (*endpoint.ExecuteStatementResult, error)
	FetchPage(ctx context.Context, txID, nextPageToken string) (*endpoint.FetchPageResult, error)
	CommitTransaction(ctx context.Context, txID string, commitDigest []byte) (*endpoint.CommitTransactionResult, error)
	AbortTransaction(ctx context.Context) error
}

// Config carries the cursor construction knobs of the parent driver.
type Config struct {
	// ReadAhead is the prefetch window. Zero disables prefetching.
	ReadAhead int

	// Runner executes the prefetch worker task. Nil means a fresh goroutine.
	Runner func(task func())

	// Clock is used by prefetching cursors.
	Clock clockwork.Clock
}

// Transaction is exclusively used by one caller at a time, so its state
// needs no locking.
type Transaction struct {
	id      string
	client  Client
	config  Config
	hash    digest.Digest
	cursors []cursor.Cursor
	closed  bool
}

// New seeds the running digest with the content hash of the transaction id.
func New(id string, client Client, config Config) (*Transaction, error) {
	seed, err := value.Marshal(id)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}
	if config.Clock == nil {
		config.Clock = clockwork.NewRealClock()
	}

	return &Transaction{
		id:     id,
		client: client,
		config: config,
		hash:   digest.Hash(seed),
	}, nil
}

// ID returns the transaction id assigned by the ledger.
func (t *Transaction) ID() string {
	return t.id
}

// CommitDigest returns the current value of the running digest.
func (t *Transaction) CommitDigest() digest.Digest {
	return t.hash
}

// Execute converts parameters to their wire encoding, folds the statement
// into the running digest and executes it, returning a cursor over the
// result set.
func (t *Transaction) Execute(ctx context.Context, statement string, parameters ...any) (cursor.Cursor, error) {
	if t.closed {
		return nil, xerrors.WithStackTrace(xerrors.ErrTransactionClosed)
	}
	encoded, err := value.MarshalAll(parameters...)
	if err != nil {
		return nil, err
	}
	if err = t.updateHash(statement, encoded); err != nil {
		return nil, err
	}
	result, err := t.client.ExecuteStatement(ctx, t.id, statement, encoded)
	if err != nil {
		return nil, xerrors.WithStackTrace(err)
	}

	var c cursor.Cursor
	if t.config.ReadAhead >= cursor.MinWindow {
		c = cursor.NewReadAhead(ctx, result, t.pager(), t.config.ReadAhead, t.config.Runner, t.config.Clock)
	} else {
		c = cursor.NewStream(result, t.pager())
	}
	t.cursors = append(t.cursors, c)

	return c, nil
}

// Commit sends the running digest to the ledger and verifies the ledger
// computed the same value. The transaction is closed regardless of the
// outcome.
func (t *Transaction) Commit(ctx context.Context) error {
	if t.closed {
		return xerrors.WithStackTrace(xerrors.ErrTransactionClosed)
	}
	defer t.Close()

	result, err := t.client.CommitTransaction(ctx, t.id, t.hash)
	if err != nil {
		return xerrors.WithStackTrace(err)
	}
	if !t.hash.Equal(result.CommitDigest) {
		return xerrors.WithStackTrace(xerrors.DigestMismatch(t.id))
	}

	return nil
}

// Abort closes the transaction and sends a best-effort abort command.
// No-op if the transaction is already closed.
func (t *Transaction) Abort(ctx context.Context) error {
	if t.closed {
		return nil
	}
	t.Close()
	if err := t.client.AbortTransaction(ctx); err != nil {
		return xerrors.WithStackTrace(err)
	}

	return nil
}

// Close marks the transaction closed and force-closes every spawned cursor.
// It sends nothing to the ledger. Idempotent.
func (t *Transaction) Close() {
	t.closed = true
	for _, c := range t.cursors {
		c.Close()
	}
	t.cursors = nil
}

// updateHash folds one statement and its encoded parameters into the running
// digest, in execution order.
func (t *Transaction) updateHash(statement string, parameters [][]byte) error {
	encodedStatement, err := value.Marshal(statement)
	if err != nil {
		return err
	}
	statementHash := digest.Hash(encodedStatement)
	for _, p := range parameters {
		statementHash = statementHash.Dot(digest.Hash(p))
	}
	t.hash = t.hash.Dot(statementHash)

	return nil
}

func (t *Transaction) pager() cursor.Pager {
	return pager{t: t}
}

type pager struct {
	t *Transaction
}

func (p pager) FetchPage(ctx context.Context, nextPageToken string) (*endpoint.FetchPageResult, error) {
	return p.t.client.FetchPage(ctx, p.t.id, nextPageToken)
}
