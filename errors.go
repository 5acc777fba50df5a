package chronicle

import (
	"github.com/chronicledb/chronicle-go-sdk/internal/xerrors"
)

// Sentinel errors of the driver, matchable with errors.Is.
var (
	// ErrDriverClosed is returned by calls on a closed driver.
	ErrDriverClosed = xerrors.ErrDriverClosed

	// ErrPoolExhausted is returned when no session becomes available within
	// the acquire timeout.
	ErrPoolExhausted = xerrors.ErrPoolExhausted

	// ErrResultClosed is returned by a streamed Result whose parent
	// transaction has ended.
	ErrResultClosed = xerrors.ErrResultClosed

	// ErrDigestMismatch is returned when the driver-computed commit digest
	// disagrees with the ledger-computed one after retries are exhausted.
	ErrDigestMismatch = xerrors.ErrDigestMismatch

	// ErrLambdaAborted is the error returned by Tx.Abort.
	ErrLambdaAborted = xerrors.ErrLambdaAborted
)

// IsOccConflict reports whether err is an optimistic concurrency conflict
// reported by the ledger.
func IsOccConflict(err error) bool {
	return xerrors.IsOccConflict(err)
}

// IsInvalidSession reports whether err indicates an unusable remote session.
func IsInvalidSession(err error) bool {
	return xerrors.IsInvalidSession(err)
}

// IsBadRequest reports whether err is a bad-request-class failure reported
// by the ledger.
func IsBadRequest(err error) bool {
	return xerrors.IsBadRequest(err)
}
