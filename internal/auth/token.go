// Package auth provides the token seam between configuration and the HTTP
// layer. The API accepts only bearer tokens, so the single implementation is
// a static provider; the interface keeps the transport testable.
package auth

import (
	"context"
	"errors"
)

// Static errors for err113 compliance.
var (
	ErrNoToken = errors.New("no access token configured")
)

// TokenProvider supplies the bearer token attached to outgoing requests.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// StaticTokenProvider provides a fixed token for the client's lifetime.
type StaticTokenProvider struct {
	token string
}

// NewStaticTokenProvider creates a provider around the given token.
func NewStaticTokenProvider(token string) *StaticTokenProvider {
	return &StaticTokenProvider{token: token}
}

// Token implements TokenProvider.
func (p *StaticTokenProvider) Token(ctx context.Context) (string, error) {
	if p.token == "" {
		return "", ErrNoToken
	}

	return p.token, nil
}
