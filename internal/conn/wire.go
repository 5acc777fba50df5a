package conn

import (
	"github.com/chronicledb/chronicle-go-sdk/internal/endpoint"
	"github.com/chronicledb/chronicle-go-sdk/internal/xerrors"
)

// command is the request envelope of the send-command protocol: exactly one
// member is set per request.
type command struct {
	SessionToken      *string                   `json:"SessionToken,omitempty"`
	StartSession      *startSessionRequest      `json:"StartSession,omitempty"`
	StartTransaction  *startTransactionRequest  `json:"StartTransaction,omitempty"`
	ExecuteStatement  *executeStatementRequest  `json:"ExecuteStatement,omitempty"`
	FetchPage         *fetchPageRequest         `json:"FetchPage,omitempty"`
	CommitTransaction *commitTransactionRequest `json:"CommitTransaction,omitempty"`
	AbortTransaction  *abortTransactionRequest  `json:"AbortTransaction,omitempty"`
	EndSession        *endSessionRequest        `json:"EndSession,omitempty"`
}

// commandResult mirrors command. A set Error member reports a failed command
// inside a successful transport exchange.
type commandResult struct {
	StartSession      *startSessionResult      `json:"StartSession,omitempty"`
	StartTransaction  *startTransactionResult  `json:"StartTransaction,omitempty"`
	ExecuteStatement  *executeStatementResult  `json:"ExecuteStatement,omitempty"`
	FetchPage         *fetchPageResult         `json:"FetchPage,omitempty"`
	CommitTransaction *commitTransactionResult `json:"CommitTransaction,omitempty"`
	AbortTransaction  *abortTransactionResult  `json:"AbortTransaction,omitempty"`
	EndSession        *endSessionResult        `json:"EndSession,omitempty"`
	Error             *commandFailure          `json:"Error,omitempty"`
}

type commandFailure struct {
	Code    string `json:"Code"`
	Message string `json:"Message"`
}

type startSessionRequest struct {
	LedgerName string `json:"LedgerName"`
}

type startSessionResult struct {
	SessionToken string `json:"SessionToken"`
	SessionID    string `json:"SessionId"`
}

type startTransactionRequest struct{}

type startTransactionResult struct {
	TransactionID string `json:"TransactionId"`
}

type executeStatementRequest struct {
	TransactionID string   `json:"TransactionId"`
	Statement     string   `json:"Statement"`
	Parameters    [][]byte `json:"Parameters,omitempty"`
}

type executeStatementResult struct {
	FirstPage         wirePage    `json:"FirstPage"`
	ConsumedIOs       *wireIOs    `json:"ConsumedIOs,omitempty"`
	TimingInformation *wireTiming `json:"TimingInformation,omitempty"`
}

type fetchPageRequest struct {
	TransactionID string `json:"TransactionId"`
	NextPageToken string `json:"NextPageToken"`
}

type fetchPageResult struct {
	Page              wirePage    `json:"Page"`
	ConsumedIOs       *wireIOs    `json:"ConsumedIOs,omitempty"`
	TimingInformation *wireTiming `json:"TimingInformation,omitempty"`
}

type commitTransactionRequest struct {
	TransactionID string `json:"TransactionId"`
	CommitDigest  []byte `json:"CommitDigest"`
}

type commitTransactionResult struct {
	TransactionID string `json:"TransactionId"`
	CommitDigest  []byte `json:"CommitDigest"`
}

type abortTransactionRequest struct{}

type abortTransactionResult struct{}

type endSessionRequest struct{}

type endSessionResult struct{}

type wirePage struct {
	Values        [][]byte `json:"Values,omitempty"`
	NextPageToken *string  `json:"NextPageToken,omitempty"`
}

func (p wirePage) toPage() endpoint.Page {
	return endpoint.Page{
		Values:        p.Values,
		NextPageToken: p.NextPageToken,
	}
}

type wireIOs struct {
	ReadIOs  *int64 `json:"ReadIOs,omitempty"`
	WriteIOs *int64 `json:"WriteIOs,omitempty"`
}

func (w *wireIOs) toIOUsage() *endpoint.IOUsage {
	if w == nil {
		return nil
	}

	return &endpoint.IOUsage{
		ReadIOs:  w.ReadIOs,
		WriteIOs: w.WriteIOs,
	}
}

type wireTiming struct {
	ProcessingTimeMilliseconds *int64 `json:"ProcessingTimeMilliseconds,omitempty"`
}

func (w *wireTiming) toTiming() *endpoint.TimingInformation {
	if w == nil {
		return nil
	}

	return &endpoint.TimingInformation{
		ProcessingTimeMilliseconds: w.ProcessingTimeMilliseconds,
	}
}

// statusCode maps the wire failure code onto the driver status taxonomy.
// Unrecognized codes classify as non-retriable.
func statusCode(code string) xerrors.StatusCode {
	switch code {
	case "OCC_CONFLICT":
		return xerrors.StatusOccConflict
	case "INVALID_SESSION":
		return xerrors.StatusInvalidSession
	case "BAD_REQUEST":
		return xerrors.StatusBadRequest
	case "RATE_EXCEEDED":
		return xerrors.StatusRateExceeded
	case "LIMIT_EXCEEDED":
		return xerrors.StatusLimitExceeded
	case "INTERNAL_FAILURE":
		return xerrors.StatusInternalFailure
	case "SERVICE_UNAVAILABLE":
		return xerrors.StatusServiceUnavailable
	default:
		return xerrors.StatusUnknown
	}
}
