package retry

import (
	"errors"
)

var (
	errNegativeLimit = errors.New("retry limit cannot be negative")
	errNegativeBase  = errors.New("backoff base cannot be negative")
)
