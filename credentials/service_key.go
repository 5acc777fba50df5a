package credentials

import (
	"context"
	"crypto/rsa"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/jonboulle/clockwork"

	"github.com/chronicledb/chronicle-go-sdk/internal/xerrors"
	"github.com/chronicledb/chronicle-go-sdk/internal/xsync"
)

// DefaultServiceKeyTokenTTL is how long a self-signed service key token is
// valid. Tokens are reissued shortly before they expire.
const DefaultServiceKeyTokenTTL = time.Hour

// expireWindow keeps a margin between local reissue and remote rejection of
// a token close to its expiry.
const expireWindow = time.Minute

type serviceKey struct {
	issuer   string
	audience string
	keyID    string
	key      *rsa.PrivateKey
	ttl      time.Duration
	clock    clockwork.Clock

	mu        xsync.Mutex
	token     string
	expiresAt time.Time
}

type ServiceKeyOption func(c *serviceKey)

// WithServiceKeyTokenTTL replaces DefaultServiceKeyTokenTTL.
func WithServiceKeyTokenTTL(ttl time.Duration) ServiceKeyOption {
	return func(c *serviceKey) {
		c.ttl = ttl
	}
}

// WithServiceKeyClock replaces the wall clock, for tests.
func WithServiceKeyClock(clock clockwork.Clock) ServiceKeyOption {
	return func(c *serviceKey) {
		c.clock = clock
	}
}

// NewServiceKeyCredentials returns credentials that sign short-lived tokens
// with an account private key. Tokens are cached and reissued on expiry.
func NewServiceKeyCredentials(issuer, audience, keyID string, key *rsa.PrivateKey, opts ...ServiceKeyOption) Credentials {
	c := &serviceKey{
		issuer:   issuer,
		audience: audience,
		keyID:    keyID,
		key:      key,
		ttl:      DefaultServiceKeyTokenTTL,
		clock:    clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	return c
}

func (c *serviceKey) Token(_ context.Context) (token string, err error) {
	c.mu.WithLock(func() {
		now := c.clock.Now()
		if c.token != "" && now.Before(c.expiresAt.Add(-expireWindow)) {
			token = c.token

			return
		}
		token, err = c.sign(now)
		if err != nil {
			return
		}
		c.token = token
		c.expiresAt = now.Add(c.ttl)
	})
	if err != nil {
		return "", xerrors.WithStackTrace(err)
	}

	return token, nil
}

func (c *serviceKey) sign(now time.Time) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodPS256, jwt.RegisteredClaims{
		Issuer:    c.issuer,
		Audience:  jwt.ClaimStrings{c.audience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	})
	t.Header["kid"] = c.keyID

	return t.SignedString(c.key)
}
