// Package credentials contains the token sources the driver authenticates
// with.
package credentials

import (
	"context"
)

// Credentials supplies an auth token for outgoing requests.
type Credentials interface {
	Token(ctx context.Context) (string, error)
}

type anonymous struct{}

// NewAnonymousCredentials returns credentials that send no token.
func NewAnonymousCredentials() Credentials {
	return anonymous{}
}

func (anonymous) Token(_ context.Context) (string, error) {
	return "", nil
}

type accessToken struct {
	token string
}

// NewAccessTokenCredentials returns credentials around a fixed pre-issued
// token.
func NewAccessTokenCredentials(token string) Credentials {
	return accessToken{token: token}
}

func (c accessToken) Token(_ context.Context) (string, error) {
	return c.token, nil
}
