package config

import (
	"errors"
	"fmt"
)

var (
	errNoLedgerName      = errors.New("no ledger name given")
	errNoAddress         = errors.New("no endpoint address given")
	errBadPoolLimit      = fmt.Errorf("session pool limit must be between 0 and %d", DefaultMaxConnections)
	errBadAcquireTimeout = errors.New("acquire timeout must not be negative")
	errBadReadAhead      = errors.New("read-ahead window must be 0 or at least 2")
)
