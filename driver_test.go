package chronicle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/chronicledb/chronicle-go-sdk/internal/endpoint"
	"github.com/chronicledb/chronicle-go-sdk/internal/endpoint/endpointtest"
	"github.com/chronicledb/chronicle-go-sdk/internal/xerrors"
	"github.com/chronicledb/chronicle-go-sdk/internal/xtest"
	"github.com/chronicledb/chronicle-go-sdk/retry"
	"github.com/chronicledb/chronicle-go-sdk/trace"
)

func noBackoff() Option {
	return WithRetryOptions(retry.WithCustomBackoff(func(int, error, string) time.Duration {
		return 0
	}))
}

func openTestDriver(t *testing.T, ep *endpointtest.Endpoint, opts ...Option) *Driver {
	t.Helper()
	ctx := xtest.Context(t)
	d, err := Open(ctx, "test-ledger",
		append([]Option{WithEndpoint(ep), noBackoff()}, opts...)...,
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = d.Close(ctx)
	})

	return d
}

func TestOpenRequiresAddressOrEndpoint(t *testing.T) {
	ctx := xtest.Context(t)
	_, err := Open(ctx, "test-ledger")
	require.Error(t, err)
}

func TestOpenRequiresLedgerName(t *testing.T) {
	ctx := xtest.Context(t)
	_, err := Open(ctx, "", WithEndpoint(&endpointtest.Endpoint{}))
	require.Error(t, err)
}

func TestExecuteReturnsLambdaResult(t *testing.T) {
	ctx := xtest.Context(t)
	ep := &endpointtest.Endpoint{}
	d := openTestDriver(t, ep)

	result, err := d.Execute(ctx, func(ctx context.Context, tx Tx) (any, error) {
		return 42, nil
	})
	require.NoError(t, err)
	require.Equal(t, 42, result)
	require.Equal(t, 1, ep.CallCounts().CommitTransaction)
}

func TestExecuteBuffersReturnedResult(t *testing.T) {
	ctx := xtest.Context(t)
	ep := &endpointtest.Endpoint{
		Results:  [][]byte{[]byte("a"), []byte("b"), []byte("c")},
		PageSize: 2,
	}
	d := openTestDriver(t, ep)

	result, err := d.Execute(ctx, func(ctx context.Context, tx Tx) (any, error) {
		return tx.Execute(ctx, "SELECT * FROM t")
	})
	require.NoError(t, err)

	// The rows stay readable after the transaction committed.
	rows := result.(Result)
	var values []string
	for rows.Next(ctx) {
		values = append(values, string(rows.Value()))
	}
	require.NoError(t, rows.Err())
	require.Equal(t, []string{"a", "b", "c"}, values)
}

func TestExecuteReplacesDeadSession(t *testing.T) {
	ctx := xtest.Context(t)
	ep := &endpointtest.Endpoint{}
	sessions := 0
	ep.StartSessionFunc = func(context.Context, string) (*endpoint.StartSessionResult, error) {
		sessions++
		token := "s1"
		if sessions > 1 {
			token = "s2"
		}

		return &endpoint.StartSessionResult{SessionToken: token, SessionID: token}, nil
	}
	ep.ExecuteStatementFunc = func(_ context.Context, sessionToken, _, _ string, _ [][]byte) (*endpoint.ExecuteStatementResult, error) {
		if sessionToken == "s1" {
			return nil, xerrors.Operation(
				xerrors.WithStatusCode(xerrors.StatusInvalidSession),
				xerrors.WithMessage("session is no longer valid"),
			)
		}

		return &endpoint.ExecuteStatementResult{}, nil
	}
	d := openTestDriver(t, ep)

	runs := 0
	result, err := d.Execute(ctx, func(ctx context.Context, tx Tx) (any, error) {
		runs++
		if _, err := tx.Execute(ctx, "SELECT 1"); err != nil {
			return nil, err
		}

		return "done", nil
	})
	require.NoError(t, err)
	require.Equal(t, "done", result)
	require.Equal(t, 2, runs)
	require.Equal(t, 2, sessions)
}

func TestExecuteDeadSessionExhaustsSharedBudget(t *testing.T) {
	ctx := xtest.Context(t)
	ep := &endpointtest.Endpoint{}
	ep.ExecuteStatementFunc = func(context.Context, string, string, string, [][]byte) (*endpoint.ExecuteStatementResult, error) {
		return nil, xerrors.Operation(
			xerrors.WithStatusCode(xerrors.StatusInvalidSession),
			xerrors.WithMessage("session is no longer valid"),
		)
	}
	d := openTestDriver(t, ep)

	_, err := d.Execute(ctx, func(ctx context.Context, tx Tx) (any, error) {
		return tx.Execute(ctx, "SELECT 1")
	}, retry.WithLimit(2), retry.WithCustomBackoff(func(int, error, string) time.Duration {
		return 0
	}))
	require.True(t, IsInvalidSession(err))
	// Initial run plus two session replacements.
	require.Equal(t, 3, ep.CallCounts().StartSession)
}

func TestExecutePerCallRetryOptions(t *testing.T) {
	ctx := xtest.Context(t)
	ep := &endpointtest.Endpoint{}
	ep.CommitTransactionFunc = func(context.Context, string, string, []byte) (*endpoint.CommitTransactionResult, error) {
		return nil, xerrors.Operation(xerrors.WithStatusCode(xerrors.StatusOccConflict))
	}
	d := openTestDriver(t, ep)

	_, err := d.Execute(ctx, func(ctx context.Context, tx Tx) (any, error) {
		return nil, nil
	}, retry.WithLimit(0))
	require.True(t, IsOccConflict(err))
	require.Equal(t, 1, ep.CallCounts().StartTransaction)
}

func TestExecuteUserAbort(t *testing.T) {
	ctx := xtest.Context(t)
	ep := &endpointtest.Endpoint{}
	d := openTestDriver(t, ep)

	_, err := d.Execute(ctx, func(ctx context.Context, tx Tx) (any, error) {
		return nil, tx.Abort()
	})
	require.ErrorIs(t, err, ErrLambdaAborted)
}

func TestExecuteStatement(t *testing.T) {
	ctx := xtest.Context(t)
	ep := &endpointtest.Endpoint{}
	var statements []string
	ep.ExecuteStatementFunc = func(_ context.Context, _, _, statement string, _ [][]byte) (*endpoint.ExecuteStatementResult, error) {
		statements = append(statements, statement)

		return &endpoint.ExecuteStatementResult{
			FirstPage: endpoint.Page{Values: [][]byte{[]byte("row")}},
		}, nil
	}
	d := openTestDriver(t, ep)

	rows, err := d.ExecuteStatement(ctx, "SELECT * FROM t WHERE id = ?", "id-1")
	require.NoError(t, err)
	require.Equal(t, []string{"SELECT * FROM t WHERE id = ?"}, statements)
	require.True(t, rows.Next(ctx))
	require.Equal(t, "row", string(rows.Value()))
	require.False(t, rows.Next(ctx))
	require.NoError(t, rows.Err())
}

func TestListTables(t *testing.T) {
	ctx := xtest.Context(t)
	ep := &endpointtest.Endpoint{}
	var statement string
	ep.ExecuteStatementFunc = func(_ context.Context, _, _, s string, _ [][]byte) (*endpoint.ExecuteStatementResult, error) {
		statement = s

		return &endpoint.ExecuteStatementResult{
			FirstPage: endpoint.Page{Values: [][]byte{[]byte("users"), []byte("orders")}},
		}, nil
	}
	d := openTestDriver(t, ep)

	rows, err := d.ListTables(ctx)
	require.NoError(t, err)
	require.Equal(t,
		"SELECT name FROM information_schema.user_tables WHERE status = 'ACTIVE'",
		statement,
	)
	var names []string
	for rows.Next(ctx) {
		names = append(names, string(rows.Value()))
	}
	require.Equal(t, []string{"users", "orders"}, names)
}

func TestSessionReuseAcrossExecutes(t *testing.T) {
	ctx := xtest.Context(t)
	ep := &endpointtest.Endpoint{}
	d := openTestDriver(t, ep)

	for i := 0; i < 3; i++ {
		_, err := d.Execute(ctx, func(ctx context.Context, tx Tx) (any, error) {
			return nil, nil
		})
		require.NoError(t, err)
	}
	require.Equal(t, 1, ep.CallCounts().StartSession)
}

func TestCloseEndsPooledSessions(t *testing.T) {
	ctx := xtest.Context(t)
	ep := &endpointtest.Endpoint{}
	d := openTestDriver(t, ep)

	_, err := d.Execute(ctx, func(ctx context.Context, tx Tx) (any, error) {
		return nil, nil
	})
	require.NoError(t, err)

	require.NoError(t, d.Close(ctx))
	require.Equal(t, 1, ep.CallCounts().EndSession)

	_, err = d.Execute(ctx, func(ctx context.Context, tx Tx) (any, error) {
		return nil, nil
	})
	require.ErrorIs(t, err, ErrDriverClosed)
	require.NoError(t, d.Close(ctx))
}

func TestExecuteTraceHooks(t *testing.T) {
	ctx := xtest.Context(t)
	ep := &endpointtest.Endpoint{}
	var executeDone, gotAttempts int
	d := openTestDriver(t, ep, WithTrace(trace.Driver{
		OnExecute: func(trace.ExecuteStartInfo) func(trace.ExecuteDoneInfo) {
			return func(done trace.ExecuteDoneInfo) {
				executeDone++
				gotAttempts = done.Attempts
			}
		},
	}))

	_, err := d.Execute(ctx, func(ctx context.Context, tx Tx) (any, error) {
		return nil, nil
	})
	require.NoError(t, err)
	require.Equal(t, 1, executeDone)
	require.Equal(t, 0, gotAttempts)
}

func TestExecuteNonRetriableErrorSurfaces(t *testing.T) {
	ctx := xtest.Context(t)
	ep := &endpointtest.Endpoint{}
	d := openTestDriver(t, ep)

	errUser := errors.New("user failure")
	_, err := d.Execute(ctx, func(ctx context.Context, tx Tx) (any, error) {
		return nil, errUser
	})
	require.ErrorIs(t, err, errUser)
	require.Equal(t, 1, ep.CallCounts().AbortTransaction)
}
