package xerrors

import (
	"errors"
	"regexp"

	grpcCodes "google.golang.org/grpc/codes"
)

// Classification predicates over remote errors. These are the only place in
// the driver that interprets remote error payloads.

var txExpiredRe = regexp.MustCompile(`Transaction .* has expired`)

// IsOccConflict reports whether err is an optimistic concurrency conflict
// detected by the ledger at commit time.
func IsOccConflict(err error) bool {
	return IsOperationError(err, StatusOccConflict)
}

// IsInvalidSession reports whether err indicates that the remote session
// handle is no longer usable.
func IsInvalidSession(err error) bool {
	return IsOperationError(err, StatusInvalidSession)
}

// IsTransactionExpired reports whether err is the transaction-expiry subtype
// of an invalid-session error. The session itself remains usable.
func IsTransactionExpired(err error) bool {
	if !IsInvalidSession(err) {
		return false
	}
	var op *operationError
	if !errors.As(err, &op) {
		return false
	}

	return txExpiredRe.MatchString(op.message)
}

// IsBadRequest reports whether err is a bad-request-class operation error.
func IsBadRequest(err error) bool {
	return IsOperationError(err, StatusBadRequest)
}

// IsRetriableTransport reports whether err belongs to the retriable
// transport class: 5xx-style operation failures, timeouts and closed
// connections.
func IsRetriableTransport(err error) bool {
	if IsOperationError(err, StatusInternalFailure, StatusServiceUnavailable) {
		return true
	}

	return IsTransportError(err,
		grpcCodes.Unavailable,
		grpcCodes.Internal,
		grpcCodes.Canceled,
		grpcCodes.DeadlineExceeded,
	)
}
