// Package endpoint defines the boundary between the driver core and the
// session-oriented RPC endpoint of the ledger service. The core treats row
// and parameter payloads as opaque bytes; their encoding belongs to the
// transport side of this boundary.
package endpoint

import (
	"context"
)

// Endpoint is the session service the driver talks to. One request at a time
// per session token.
type Endpoint interface {
	StartSession(ctx context.Context, ledgerName string) (*StartSessionResult, error)
	StartTransaction(ctx context.Context, sessionToken string) (*StartTransactionResult, error)
	ExecuteStatement(ctx context.Context, sessionToken, txID, statement string, parameters [][]byte) (*ExecuteStatementResult, error)
	FetchPage(ctx context.Context, sessionToken, txID, nextPageToken string) (*FetchPageResult, error)
	CommitTransaction(ctx context.Context, sessionToken, txID string, commitDigest []byte) (*CommitTransactionResult, error)
	AbortTransaction(ctx context.Context, sessionToken string) error
	EndSession(ctx context.Context, sessionToken string) error
}

type StartSessionResult struct {
	SessionToken string
	SessionID    string
}

type StartTransactionResult struct {
	TransactionID string
}

// Page is one chunk of a statement's result set. A nil NextPageToken marks
// the last page.
type Page struct {
	Values        [][]byte
	NextPageToken *string
}

// IOUsage reports server-side IO consumed by a request. Each metric is
// independently optional.
type IOUsage struct {
	ReadIOs  *int64
	WriteIOs *int64
}

// TimingInformation reports server-side processing time of a request.
type TimingInformation struct {
	ProcessingTimeMilliseconds *int64
}

type ExecuteStatementResult struct {
	FirstPage         Page
	ConsumedIOs       *IOUsage
	TimingInformation *TimingInformation
}

type FetchPageResult struct {
	Page              Page
	ConsumedIOs       *IOUsage
	TimingInformation *TimingInformation
}

type CommitTransactionResult struct {
	CommitDigest []byte
}
