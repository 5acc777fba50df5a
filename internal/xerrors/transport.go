package xerrors

import (
	"errors"

	grpcCodes "google.golang.org/grpc/codes"
	grpcStatus "google.golang.org/grpc/status"

	"github.com/chronicledb/chronicle-go-sdk/internal/xstring"
)

type transportError struct {
	code    grpcCodes.Code
	message string
	err     error
	address string
}

func (e *transportError) Code() int32 {
	return int32(e.code)
}

func (e *transportError) Name() string {
	return "transport/" + e.code.String()
}

type teOpt func(te *transportError)

func WithCode(code grpcCodes.Code) teOpt {
	return func(te *transportError) {
		te.code = code
	}
}

func WithAddress(address string) teOpt {
	return func(te *transportError) {
		te.address = address
	}
}

// Transport returns a new transport error with given options
func Transport(opts ...teOpt) error {
	te := &transportError{}
	for _, opt := range opts {
		if opt != nil {
			opt(te)
		}
	}

	return te
}

func (e *transportError) Error() string {
	b := xstring.Buffer()
	defer b.Free()
	b.WriteString("transport error: ")
	b.WriteString(e.code.String())
	if e.message != "" {
		b.WriteString(", message: ")
		b.WriteString(e.message)
	}
	if len(e.address) > 0 {
		b.WriteString(", address: ")
		b.WriteString(e.address)
	}

	return b.String()
}

func (e *transportError) Unwrap() error {
	return e.err
}

// IsTransportError reports whether err is transportError with given grpc codes
func IsTransportError(err error, codes ...grpcCodes.Code) bool {
	if err == nil {
		return false
	}
	var t *transportError
	if !errors.As(err, &t) {
		return false
	}
	if len(codes) == 0 {
		return true
	}
	for _, code := range codes {
		if t.code == code {
			return true
		}
	}

	return false
}

// FromGRPC converts a grpc status error into a transportError.
// Errors that are already transportError are returned as is.
func FromGRPC(err error, opts ...teOpt) error {
	if err == nil {
		return nil
	}
	var t *transportError
	if errors.As(err, &t) {
		return err
	}

	if s, has := grpcStatus.FromError(err); has {
		te := &transportError{
			code:    s.Code(),
			message: s.Message(),
			err:     s.Err(),
		}
		for _, opt := range opts {
			if opt != nil {
				opt(te)
			}
		}

		return te
	}

	return err
}

// TransportError returns the transport error inside err, or nil
func TransportError(err error) Error {
	var t *transportError
	if errors.As(err, &t) {
		return t
	}

	return nil
}
