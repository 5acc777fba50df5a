package xerrors

import (
	"errors"
	"fmt"
	"time"
)

// Local driver lifecycle errors. Remote service failures are represented by
// operation and transport errors instead.
var (
	ErrDriverClosed      = errors.New("driver is closed: create a new driver and retry")
	ErrSessionClosed     = errors.New("session is closed: get a new session and retry")
	ErrTransactionClosed = errors.New("transaction is closed: start a new transaction and retry")
	ErrResultClosed      = errors.New("streamed result is only valid while the parent transaction is open: start a new transaction and retry")
	ErrLambdaAborted     = errors.New("abort invoked: halting execution of the transaction function")
	ErrDigestMismatch    = errors.New("commit digest did not match the value computed by the ledger: retry with a new transaction")
	ErrValueConversion   = errors.New("failed to convert parameter to its wire encoding")
	ErrPoolExhausted     = errors.New("session pool is exhausted")
)

// PoolExhausted returns ErrPoolExhausted annotated with the acquire timeout
// that was exceeded.
func PoolExhausted(timeout time.Duration) error {
	return fmt.Errorf("%w (no session became available within %s)", ErrPoolExhausted, timeout)
}

// DigestMismatch returns ErrDigestMismatch annotated with the transaction id.
func DigestMismatch(txID string) error {
	return fmt.Errorf("%w (transaction id: %s)", ErrDigestMismatch, txID)
}

// ValueConversion returns ErrValueConversion annotated with the offending
// value type and cause.
func ValueConversion(value any, cause error) error {
	return fmt.Errorf("%w: unsupported type %T: %v", ErrValueConversion, value, cause)
}

type startTransactionError struct {
	err error
}

// StartTransaction marks a bad-request-class failure of the start-transaction
// command. It is distinguished from failures during statement execution
// because no statement has run yet, so the attempt is safe to retry.
func StartTransaction(err error) error {
	return &startTransactionError{err: err}
}

func (e *startTransactionError) Error() string {
	return "failed to start transaction: " + e.err.Error()
}

func (e *startTransactionError) Unwrap() error {
	return e.err
}

// IsStartTransactionError reports whether err originates from a failed
// start-transaction command.
func IsStartTransactionError(err error) bool {
	var e *startTransactionError
	return errors.As(err, &e)
}

// StartTransactionCause returns the failure wrapped by a start-transaction
// error, or err itself if err is not one.
func StartTransactionCause(err error) error {
	var e *startTransactionError
	if errors.As(err, &e) {
		return e.err
	}

	return err
}
