package retry

import (
	"time"

	"github.com/chronicledb/chronicle-go-sdk/internal/backoff"
	"github.com/chronicledb/chronicle-go-sdk/internal/xerrors"
)

const (
	// DefaultLimit is the default number of automatic retries of a
	// transaction function when an OCC conflict or retriable failure occurs.
	DefaultLimit = 4

	// DefaultBase is the default base delay of the exponential backoff
	// between retries.
	DefaultBase = backoff.DefaultBase
)

// BackoffFunc is a custom backoff calculator. It receives the retry attempt
// number (starting from 1), the error that caused the retry and the id of the
// failed transaction (empty if no transaction was started). A negative result
// is treated as zero.
type BackoffFunc func(attempt int, err error, txID string) time.Duration

// Config holds the retry and backoff policy of transaction execution.
// The zero Config means defaults.
type Config struct {
	limit   int
	base    time.Duration
	custom  BackoffFunc
	backoff backoff.Backoff
}

type Option func(c *Config)

// WithLimit replaces the default retry limit. Must not be negative.
func WithLimit(limit int) Option {
	return func(c *Config) {
		c.limit = limit
	}
}

// WithBase replaces the default base delay of the exponential backoff.
// Must not be negative. Ignored if a custom backoff is supplied.
func WithBase(base time.Duration) Option {
	return func(c *Config) {
		c.base = base
	}
}

// WithCustomBackoff replaces the built-in equal-jitter exponential backoff.
func WithCustomBackoff(f BackoffFunc) Option {
	return func(c *Config) {
		c.custom = f
	}
}

// New validates opts and returns the resulting Config.
func New(opts ...Option) (Config, error) {
	c := Config{
		limit: DefaultLimit,
		base:  DefaultBase,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	if c.limit < 0 {
		return c, xerrors.WithStackTrace(errNegativeLimit)
	}
	if c.base < 0 {
		return c, xerrors.WithStackTrace(errNegativeBase)
	}
	c.backoff = backoff.New(backoff.WithBase(c.base))

	return c, nil
}

// Limit returns the configured retry limit.
func (c Config) Limit() int {
	return c.limit
}

// Base returns the configured base backoff delay.
func (c Config) Base() time.Duration {
	return c.base
}

// Delay computes the backoff delay before retry attempt number attempt.
func (c Config) Delay(attempt int, err error, txID string) time.Duration {
	if c.custom != nil {
		if d := c.custom(attempt, err, txID); d > 0 {
			return d
		}

		return 0
	}
	b := c.backoff
	if b == nil {
		b = backoff.New(backoff.WithBase(c.base))
	}

	return b.Delay(attempt)
}
