package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/chronicledb/chronicle-go-sdk/internal/endpoint/endpointtest"
	"github.com/chronicledb/chronicle-go-sdk/retry"
)

func TestNewDefaults(t *testing.T) {
	c, err := New(
		WithLedgerName("ledger"),
		WithAddress("localhost:2136"),
	)
	require.NoError(t, err)
	require.Equal(t, "ledger", c.LedgerName())
	require.Equal(t, "localhost:2136", c.Address())
	require.Equal(t, DefaultMaxConnections, c.SessionPoolLimit())
	require.Equal(t, DefaultAcquireTimeout, c.AcquireTimeout())
	require.Zero(t, c.ReadAhead())
	require.Equal(t, retry.DefaultLimit, c.RetryConfig().Limit())
	require.NotNil(t, c.Credentials())
	require.NotNil(t, c.Clock())
}

func TestNewRequiresLedgerName(t *testing.T) {
	_, err := New(WithAddress("localhost:2136"))
	require.ErrorIs(t, err, errNoLedgerName)
}

func TestNewRequiresAddressOrEndpoint(t *testing.T) {
	_, err := New(WithLedgerName("ledger"))
	require.ErrorIs(t, err, errNoAddress)

	_, err = New(WithLedgerName("ledger"), WithEndpoint(&endpointtest.Endpoint{}))
	require.NoError(t, err)
}

func TestNewRejectsBadPoolLimit(t *testing.T) {
	_, err := New(
		WithLedgerName("ledger"),
		WithAddress("localhost:2136"),
		WithSessionPoolLimit(-1),
	)
	require.ErrorIs(t, err, errBadPoolLimit)

	_, err = New(
		WithLedgerName("ledger"),
		WithAddress("localhost:2136"),
		WithSessionPoolLimit(DefaultMaxConnections+1),
	)
	require.ErrorIs(t, err, errBadPoolLimit)
}

func TestNewZeroPoolLimitMeansMax(t *testing.T) {
	c, err := New(
		WithLedgerName("ledger"),
		WithAddress("localhost:2136"),
		WithSessionPoolLimit(0),
	)
	require.NoError(t, err)
	require.Equal(t, DefaultMaxConnections, c.SessionPoolLimit())
}

func TestNewRejectsNegativeAcquireTimeout(t *testing.T) {
	_, err := New(
		WithLedgerName("ledger"),
		WithAddress("localhost:2136"),
		WithAcquireTimeout(-time.Second),
	)
	require.ErrorIs(t, err, errBadAcquireTimeout)
}

func TestNewRejectsReadAheadWindowOfOne(t *testing.T) {
	_, err := New(
		WithLedgerName("ledger"),
		WithAddress("localhost:2136"),
		WithReadAhead(1),
	)
	require.ErrorIs(t, err, errBadReadAhead)

	_, err = New(
		WithLedgerName("ledger"),
		WithAddress("localhost:2136"),
		WithReadAhead(2),
	)
	require.NoError(t, err)
}

func TestNewPropagatesRetryValidation(t *testing.T) {
	_, err := New(
		WithLedgerName("ledger"),
		WithAddress("localhost:2136"),
		WithRetryOptions(retry.WithLimit(-1)),
	)
	require.Error(t, err)
}
