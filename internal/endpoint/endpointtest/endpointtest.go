// Package endpointtest provides an in-memory session endpoint for tests.
// Every operation has a default in-memory behavior and can be replaced per
// test through the corresponding function field.
package endpointtest

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/chronicledb/chronicle-go-sdk/internal/endpoint"
	"github.com/chronicledb/chronicle-go-sdk/internal/xsync"
)

var _ endpoint.Endpoint = (*Endpoint)(nil)

// Calls counts invocations per operation.
type Calls struct {
	StartSession      int
	StartTransaction  int
	ExecuteStatement  int
	FetchPage         int
	CommitTransaction int
	AbortTransaction  int
	EndSession        int
}

// Endpoint is an in-memory endpoint.Endpoint implementation.
type Endpoint struct {
	// Results holds the rows served for every executed statement.
	Results [][]byte

	// PageSize is the number of rows per page. Zero serves all rows in the
	// first page.
	PageSize int

	StartSessionFunc      func(ctx context.Context, ledgerName string) (*endpoint.StartSessionResult, error)
	StartTransactionFunc  func(ctx context.Context, sessionToken string) (*endpoint.StartTransactionResult, error)
	ExecuteStatementFunc  func(ctx context.Context, sessionToken, txID, statement string, parameters [][]byte) (*endpoint.ExecuteStatementResult, error)
	FetchPageFunc         func(ctx context.Context, sessionToken, txID, nextPageToken string) (*endpoint.FetchPageResult, error)
	CommitTransactionFunc func(ctx context.Context, sessionToken, txID string, commitDigest []byte) (*endpoint.CommitTransactionResult, error)
	AbortTransactionFunc  func(ctx context.Context, sessionToken string) error
	EndSessionFunc        func(ctx context.Context, sessionToken string) error

	mu       xsync.Mutex
	calls    Calls
	leftover map[string][][]byte
}

// CallCounts returns a snapshot of per-operation invocation counters.
func (e *Endpoint) CallCounts() (calls Calls) {
	e.mu.WithLock(func() {
		calls = e.calls
	})

	return calls
}

func (e *Endpoint) StartSession(ctx context.Context, ledgerName string) (*endpoint.StartSessionResult, error) {
	e.mu.WithLock(func() {
		e.calls.StartSession++
	})
	if e.StartSessionFunc != nil {
		return e.StartSessionFunc(ctx, ledgerName)
	}

	return &endpoint.StartSessionResult{
		SessionToken: "session-token-" + uuid.New().String(),
		SessionID:    "session-id-" + uuid.New().String(),
	}, nil
}

func (e *Endpoint) StartTransaction(ctx context.Context, sessionToken string) (*endpoint.StartTransactionResult, error) {
	e.mu.WithLock(func() {
		e.calls.StartTransaction++
	})
	if e.StartTransactionFunc != nil {
		return e.StartTransactionFunc(ctx, sessionToken)
	}

	return &endpoint.StartTransactionResult{
		TransactionID: "tx-" + uuid.New().String(),
	}, nil
}

func (e *Endpoint) ExecuteStatement(ctx context.Context, sessionToken, txID, statement string, parameters [][]byte) (*endpoint.ExecuteStatementResult, error) {
	e.mu.WithLock(func() {
		e.calls.ExecuteStatement++
	})
	if e.ExecuteStatementFunc != nil {
		return e.ExecuteStatementFunc(ctx, sessionToken, txID, statement, parameters)
	}
	first, token := e.paginate(e.Results)

	return &endpoint.ExecuteStatementResult{
		FirstPage: endpoint.Page{
			Values:        first,
			NextPageToken: token,
		},
	}, nil
}

func (e *Endpoint) FetchPage(ctx context.Context, sessionToken, txID, nextPageToken string) (*endpoint.FetchPageResult, error) {
	e.mu.WithLock(func() {
		e.calls.FetchPage++
	})
	if e.FetchPageFunc != nil {
		return e.FetchPageFunc(ctx, sessionToken, txID, nextPageToken)
	}
	var (
		rows [][]byte
		ok   bool
	)
	e.mu.WithLock(func() {
		rows, ok = e.leftover[nextPageToken]
		delete(e.leftover, nextPageToken)
	})
	if !ok {
		return nil, fmt.Errorf("unknown page token %q", nextPageToken)
	}
	values, token := e.paginate(rows)

	return &endpoint.FetchPageResult{
		Page: endpoint.Page{
			Values:        values,
			NextPageToken: token,
		},
	}, nil
}

func (e *Endpoint) CommitTransaction(ctx context.Context, sessionToken, txID string, commitDigest []byte) (*endpoint.CommitTransactionResult, error) {
	e.mu.WithLock(func() {
		e.calls.CommitTransaction++
	})
	if e.CommitTransactionFunc != nil {
		return e.CommitTransactionFunc(ctx, sessionToken, txID, commitDigest)
	}

	return &endpoint.CommitTransactionResult{
		CommitDigest: commitDigest,
	}, nil
}

func (e *Endpoint) AbortTransaction(ctx context.Context, sessionToken string) error {
	e.mu.WithLock(func() {
		e.calls.AbortTransaction++
	})
	if e.AbortTransactionFunc != nil {
		return e.AbortTransactionFunc(ctx, sessionToken)
	}

	return nil
}

func (e *Endpoint) EndSession(ctx context.Context, sessionToken string) error {
	e.mu.WithLock(func() {
		e.calls.EndSession++
	})
	if e.EndSessionFunc != nil {
		return e.EndSessionFunc(ctx, sessionToken)
	}

	return nil
}

// paginate cuts the next page off rows and stores the remainder under a
// fresh continuation token.
func (e *Endpoint) paginate(rows [][]byte) (page [][]byte, nextPageToken *string) {
	if e.PageSize <= 0 || len(rows) <= e.PageSize {
		return rows, nil
	}
	page, rest := rows[:e.PageSize], rows[e.PageSize:]
	token := "page-" + uuid.New().String()
	e.mu.WithLock(func() {
		if e.leftover == nil {
			e.leftover = make(map[string][][]byte)
		}
		e.leftover[token] = rest
	})

	return page, &token
}
