package session

import (
	"context"

	"github.com/chronicledb/chronicle-go-sdk/internal/cursor"
	"github.com/chronicledb/chronicle-go-sdk/internal/xerrors"
)

// Executor is the transaction handle passed to the transaction function. It
// hides the commit and abort surface of the underlying transaction: the
// retry loop owns the transaction lifecycle.
type Executor struct {
	tx executorTx
}

type executorTx interface {
	ID() string
	Execute(ctx context.Context, statement string, parameters ...any) (cursor.Cursor, error)
}

// Execute runs one statement in the open transaction.
func (e Executor) Execute(ctx context.Context, statement string, parameters ...any) (cursor.Cursor, error) {
	return e.tx.Execute(ctx, statement, parameters...)
}

// Abort returns the sentinel that halts the transaction function without
// committing. Return it from the transaction function as the error.
func (e Executor) Abort() error {
	return xerrors.WithStackTrace(xerrors.ErrLambdaAborted)
}

// ID returns the id of the open transaction.
func (e Executor) ID() string {
	return e.tx.ID()
}
