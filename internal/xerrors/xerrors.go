package xerrors

import (
	"errors"
)

// Error is an interface of errors produced by the ledger service itself,
// as opposed to local driver lifecycle errors.
type Error interface {
	error

	Code() int32
	Name() string
}

func As(err error, targets ...any) bool {
	if err == nil {
		return false
	}
	for _, t := range targets {
		if errors.As(err, t) {
			return true
		}
	}

	return false
}

func Is(err error, targets ...error) bool {
	if len(targets) == 0 {
		panic("empty targets")
	}
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
