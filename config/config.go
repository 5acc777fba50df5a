// Package config assembles and validates the driver configuration.
package config

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/chronicledb/chronicle-go-sdk/credentials"
	"github.com/chronicledb/chronicle-go-sdk/internal/endpoint"
	"github.com/chronicledb/chronicle-go-sdk/internal/xerrors"
	"github.com/chronicledb/chronicle-go-sdk/retry"
	"github.com/chronicledb/chronicle-go-sdk/trace"
)

const (
	// DefaultMaxConnections caps the session pool limit: one remote session
	// occupies one logical connection.
	DefaultMaxConnections = 50

	// DefaultAcquireTimeout is how long a caller waits for pool admission
	// before failing with a pool-exhausted error.
	DefaultAcquireTimeout = 30 * time.Second
)

type Config struct {
	ledgerName     string
	address        string
	secure         bool
	credentials    credentials.Credentials
	endpoint       endpoint.Endpoint
	poolLimit      int
	acquireTimeout time.Duration
	readAhead      int
	retryOptions   []retry.Option
	retryConfig    retry.Config
	clock          clockwork.Clock
	trace          *trace.Driver
	traceRetry     *trace.Retry
	runner         func(task func())
}

type Option func(c *Config)

// WithLedgerName sets the ledger every session of this driver is bound to.
func WithLedgerName(name string) Option {
	return func(c *Config) {
		c.ledgerName = name
	}
}

// WithAddress sets the endpoint address to dial.
func WithAddress(address string) Option {
	return func(c *Config) {
		c.address = address
	}
}

// WithSecure enables or disables transport security.
func WithSecure(secure bool) Option {
	return func(c *Config) {
		c.secure = secure
	}
}

// WithCredentials sets the auth token source.
func WithCredentials(creds credentials.Credentials) Option {
	return func(c *Config) {
		c.credentials = creds
	}
}

// WithEndpoint replaces the dialed transport with a ready endpoint.
// The address and credentials are ignored when set.
func WithEndpoint(ep endpoint.Endpoint) Option {
	return func(c *Config) {
		c.endpoint = ep
	}
}

// WithSessionPoolLimit bounds the number of concurrently live sessions.
// Zero means DefaultMaxConnections.
func WithSessionPoolLimit(limit int) Option {
	return func(c *Config) {
		c.poolLimit = limit
	}
}

// WithAcquireTimeout replaces DefaultAcquireTimeout.
func WithAcquireTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.acquireTimeout = timeout
	}
}

// WithReadAhead enables cursor prefetching with the given page window.
// The window must be zero (disabled) or at least two.
func WithReadAhead(window int) Option {
	return func(c *Config) {
		c.readAhead = window
	}
}

// WithRetryOptions sets the driver-wide retry policy of Execute calls.
func WithRetryOptions(opts ...retry.Option) Option {
	return func(c *Config) {
		c.retryOptions = append(c.retryOptions, opts...)
	}
}

// WithClock replaces the wall clock, for tests.
func WithClock(clock clockwork.Clock) Option {
	return func(c *Config) {
		c.clock = clock
	}
}

// WithTrace appends t to the driver trace.
func WithTrace(t trace.Driver) Option {
	return func(c *Config) {
		c.trace = c.trace.Compose(&t)
	}
}

// WithTraceRetry appends t to the retry trace.
func WithTraceRetry(t trace.Retry) Option {
	return func(c *Config) {
		c.traceRetry = c.traceRetry.Compose(&t)
	}
}

// WithRunner replaces the goroutine launcher of background workers, for
// tests and custom schedulers.
func WithRunner(runner func(task func())) Option {
	return func(c *Config) {
		c.runner = runner
	}
}

// New applies opts over the defaults and validates the result.
func New(opts ...Option) (*Config, error) {
	c := &Config{
		poolLimit:      DefaultMaxConnections,
		acquireTimeout: DefaultAcquireTimeout,
		clock:          clockwork.NewRealClock(),
		credentials:    credentials.NewAnonymousCredentials(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	retryConfig, err := retry.New(c.retryOptions...)
	if err != nil {
		return nil, err
	}
	c.retryConfig = retryConfig

	return c, nil
}

func (c *Config) validate() error {
	if c.ledgerName == "" {
		return xerrors.WithStackTrace(errNoLedgerName)
	}
	if c.endpoint == nil && c.address == "" {
		return xerrors.WithStackTrace(errNoAddress)
	}
	if c.poolLimit < 0 || c.poolLimit > DefaultMaxConnections {
		return xerrors.WithStackTrace(errBadPoolLimit)
	}
	if c.poolLimit == 0 {
		c.poolLimit = DefaultMaxConnections
	}
	if c.acquireTimeout < 0 {
		return xerrors.WithStackTrace(errBadAcquireTimeout)
	}
	if c.readAhead != 0 && c.readAhead < 2 {
		return xerrors.WithStackTrace(errBadReadAhead)
	}

	return nil
}

func (c *Config) LedgerName() string { return c.ledgerName }

func (c *Config) Address() string { return c.address }

func (c *Config) Secure() bool { return c.secure }

func (c *Config) Credentials() credentials.Credentials { return c.credentials }

func (c *Config) Endpoint() endpoint.Endpoint { return c.endpoint }

func (c *Config) SessionPoolLimit() int { return c.poolLimit }

func (c *Config) AcquireTimeout() time.Duration { return c.acquireTimeout }

func (c *Config) ReadAhead() int { return c.readAhead }

func (c *Config) RetryConfig() retry.Config { return c.retryConfig }

func (c *Config) Clock() clockwork.Clock { return c.clock }

func (c *Config) Trace() *trace.Driver { return c.trace }

func (c *Config) TraceRetry() *trace.Retry { return c.traceRetry }

func (c *Config) Runner() func(task func()) { return c.runner }
