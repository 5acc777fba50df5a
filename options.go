package chronicle

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/chronicledb/chronicle-go-sdk/config"
	"github.com/chronicledb/chronicle-go-sdk/credentials"
	"github.com/chronicledb/chronicle-go-sdk/internal/endpoint"
	"github.com/chronicledb/chronicle-go-sdk/log"
	"github.com/chronicledb/chronicle-go-sdk/retry"
	"github.com/chronicledb/chronicle-go-sdk/trace"
)

// Option configures the driver, see config for the available knobs.
type Option = config.Option

// WithAddress sets the endpoint address to dial.
func WithAddress(address string) Option {
	return config.WithAddress(address)
}

// WithSecure enables or disables transport security.
func WithSecure(secure bool) Option {
	return config.WithSecure(secure)
}

// WithCredentials sets the auth token source.
func WithCredentials(creds credentials.Credentials) Option {
	return config.WithCredentials(creds)
}

// WithAccessTokenCredentials authenticates with a fixed pre-issued token.
func WithAccessTokenCredentials(token string) Option {
	return config.WithCredentials(credentials.NewAccessTokenCredentials(token))
}

// WithAnonymousCredentials disables authentication.
func WithAnonymousCredentials() Option {
	return config.WithCredentials(credentials.NewAnonymousCredentials())
}

// WithEndpoint replaces the dialed transport with a ready endpoint.
func WithEndpoint(ep endpoint.Endpoint) Option {
	return config.WithEndpoint(ep)
}

// WithSessionPoolLimit bounds the number of concurrently live sessions.
func WithSessionPoolLimit(limit int) Option {
	return config.WithSessionPoolLimit(limit)
}

// WithAcquireTimeout bounds the wait for pool admission.
func WithAcquireTimeout(timeout time.Duration) Option {
	return config.WithAcquireTimeout(timeout)
}

// WithReadAhead enables cursor prefetching with the given page window.
func WithReadAhead(window int) Option {
	return config.WithReadAhead(window)
}

// WithRetryOptions sets the driver-wide retry policy of Execute calls.
func WithRetryOptions(opts ...retry.Option) Option {
	return config.WithRetryOptions(opts...)
}

// WithClock replaces the wall clock, for tests.
func WithClock(clock clockwork.Clock) Option {
	return config.WithClock(clock)
}

// WithTrace appends t to the driver trace.
func WithTrace(t trace.Driver) Option {
	return config.WithTrace(t)
}

// WithTraceRetry appends t to the retry trace.
func WithTraceRetry(t trace.Retry) Option {
	return config.WithTraceRetry(t)
}

// WithLogger logs driver and retry events to l.
func WithLogger(l log.Logger) Option {
	return func(c *config.Config) {
		config.WithTrace(log.WithDriver(l))(c)
		config.WithTraceRetry(log.WithRetry(l))(c)
	}
}

// WithRunner replaces the goroutine launcher of background workers.
func WithRunner(runner func(task func())) Option {
	return config.WithRunner(runner)
}
