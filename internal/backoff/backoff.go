package backoff

import (
	"time"

	"github.com/chronicledb/chronicle-go-sdk/internal/xrand"
)

// Backoff is the interface that contains logic of delaying operation retry.
type Backoff interface {
	// Delay returns mapping of attempt i to delay.
	Delay(i int) time.Duration
}

const (
	// DefaultBase is the default base delay of the exponential backoff.
	DefaultBase = 10 * time.Millisecond

	// MaxDelay caps the delay seed regardless of the attempt number.
	MaxDelay = 5000 * time.Millisecond

	// maxShift bounds the exponent so the seed computation cannot overflow.
	maxShift = 62
)

var _ Backoff = (*equalJitterBackoff)(nil)

// equalJitterBackoff contains an equal-jitter exponential backoff policy:
// half of the capped exponential seed is fixed, the other half is uniformly
// random.
type equalJitterBackoff struct {
	// base is a delay of the zero attempt.
	// If base is less or equal to zero, then DefaultBase is used.
	base time.Duration

	// cap is the upper bound of the delay seed.
	// If cap is less or equal to zero, then MaxDelay is used.
	cap time.Duration

	// generator of jitter
	r xrand.Rand
}

type option func(b *equalJitterBackoff)

func WithBase(base time.Duration) option {
	return func(b *equalJitterBackoff) {
		b.base = base
	}
}

func WithCap(cap time.Duration) option {
	return func(b *equalJitterBackoff) {
		b.cap = cap
	}
}

func WithSeed(seed int64) option {
	return func(b *equalJitterBackoff) {
		b.r = xrand.New(xrand.WithLock(), xrand.WithSeed(seed))
	}
}

func New(opts ...option) equalJitterBackoff {
	b := equalJitterBackoff{
		r: xrand.New(xrand.WithLock()),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&b)
		}
	}

	return b
}

// Delay returns mapping of attempt i to delay.
func (b equalJitterBackoff) Delay(i int) time.Duration {
	base := b.base
	if base <= 0 {
		base = DefaultBase
	}
	max := b.cap
	if max <= 0 {
		max = MaxDelay
	}
	seed := max
	if shift := min(uint(i), maxShift); shift < 63 {
		if d := base << shift; d > 0 && d < max {
			seed = d
		}
	}
	half := seed / 2

	return half + time.Duration(b.r.Int64(int64(half)+1))
}

func min(a, b uint) uint {
	if a < b {
		return a
	}

	return b
}
