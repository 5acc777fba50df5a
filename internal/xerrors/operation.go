package xerrors

import (
	"errors"
	"fmt"

	"github.com/chronicledb/chronicle-go-sdk/internal/xstring"
)

// StatusCode is a status of a failed session command reported by the ledger
// service inside an otherwise successful transport exchange.
type StatusCode int32

const (
	StatusUnknown = StatusCode(iota)
	StatusOccConflict
	StatusInvalidSession
	StatusBadRequest
	StatusRateExceeded
	StatusLimitExceeded
	StatusInternalFailure
	StatusServiceUnavailable
)

func (c StatusCode) String() string {
	switch c {
	case StatusOccConflict:
		return "OCC_CONFLICT"
	case StatusInvalidSession:
		return "INVALID_SESSION"
	case StatusBadRequest:
		return "BAD_REQUEST"
	case StatusRateExceeded:
		return "RATE_EXCEEDED"
	case StatusLimitExceeded:
		return "LIMIT_EXCEEDED"
	case StatusInternalFailure:
		return "INTERNAL_FAILURE"
	case StatusServiceUnavailable:
		return "SERVICE_UNAVAILABLE"
	default:
		return fmt.Sprintf("UNKNOWN_STATUS_%d", c)
	}
}

type operationError struct {
	code    StatusCode
	message string
}

type oeOpt func(oe *operationError)

func WithStatusCode(code StatusCode) oeOpt {
	return func(oe *operationError) {
		oe.code = code
	}
}

func WithMessage(message string) oeOpt {
	return func(oe *operationError) {
		oe.message = message
	}
}

// Operation returns a new operation error with given options
func Operation(opts ...oeOpt) error {
	oe := &operationError{}
	for _, opt := range opts {
		if opt != nil {
			opt(oe)
		}
	}

	return oe
}

func (e *operationError) Code() int32 {
	return int32(e.code)
}

func (e *operationError) Name() string {
	return "operation/" + e.code.String()
}

func (e *operationError) Message() string {
	return e.message
}

func (e *operationError) Error() string {
	b := xstring.Buffer()
	defer b.Free()
	b.WriteString("operation error: ")
	b.WriteString(e.code.String())
	if e.message != "" {
		b.WriteString(", message: ")
		b.WriteString(e.message)
	}

	return b.String()
}

// IsOperationError reports whether err is operationError with given codes
func IsOperationError(err error, codes ...StatusCode) bool {
	if err == nil {
		return false
	}
	var op *operationError
	if !errors.As(err, &op) {
		return false
	}
	if len(codes) == 0 {
		return true
	}
	for _, code := range codes {
		if op.code == code {
			return true
		}
	}

	return false
}

// OperationError returns the operation error inside err, or nil
func OperationError(err error) Error {
	var op *operationError
	if errors.As(err, &op) {
		return op
	}

	return nil
}
