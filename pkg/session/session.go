// Package session owns the bearer-token lifecycle for one client instance.
//
// The cache holds at most one token. Before each authenticated call the
// token's expiry claim is decoded (never verified; verification is the
// server's job) and an expired or undecodable token is dropped. A client
// that can sign refreshes the token through a self-signed exchange with the
// token-issuance endpoint; a client that cannot sign proceeds without an
// Authorization header and lets the server reject the call if it actually
// required authentication.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/lestrrat-go/jwx/v3/jwt"
	"go.uber.org/zap"
)

// ErrAuthentication is returned when the token refresh exchange fails:
// the server rejected the signed request or the response carried no token.
// The enclosing request is aborted; no retry is attempted.
var ErrAuthentication = errors.New("failed to obtain new auth token")

// RefreshFunc performs the self-signed authentication exchange and returns
// the issued bearer token.
type RefreshFunc func(ctx context.Context) (string, error)

// TokenCache caches the bearer token for one client instance. Two
// concurrent calls that both observe an expired token will each run their
// own refresh exchange; the server accepts multiple valid tokens so this is
// wasteful but harmless, and the mutex only protects the field itself.
type TokenCache struct {
	mu      sync.Mutex
	token   string
	refresh RefreshFunc
	logger  *zap.Logger
	now     func() time.Time
}

// New creates a token cache, optionally pre-seeded with a token. A nil
// refresh means the client has no signing identity and cannot authenticate
// itself.
func New(initial string, refresh RefreshFunc, logger *zap.Logger) *TokenCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TokenCache{
		token:   initial,
		refresh: refresh,
		logger:  logger,
		now:     time.Now,
	}
}

// Token returns a bearer token whose expiry claim is still in the future,
// refreshing through the auth exchange when needed. It returns "" with a
// nil error when no token is cached and the client cannot self-authenticate.
func (c *TokenCache) Token(ctx context.Context) (string, error) {
	c.mu.Lock()
	cached := c.token
	c.mu.Unlock()

	if cached != "" {
		if c.expiresAfterNow(cached) {
			return cached, nil
		}
		c.logger.Sugar().Debug("Cached auth token expired, discarding")
		c.mu.Lock()
		if c.token == cached {
			c.token = ""
		}
		c.mu.Unlock()
	}

	if c.refresh == nil {
		return "", nil
	}

	c.logger.Sugar().Info("Requesting new auth token")
	fresh, err := c.refresh(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthentication, err)
	}
	if fresh == "" {
		return "", ErrAuthentication
	}

	c.mu.Lock()
	c.token = fresh
	c.mu.Unlock()
	return fresh, nil
}

// Set replaces the cached token, e.g. after an explicit call to the token
// refresh endpoint.
func (c *TokenCache) Set(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Current returns the cached token without any expiry check.
func (c *TokenCache) Current() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// expiresAfterNow decodes the token's exp claim. The token is treated as
// expired when the claim is absent, in the past, or the token cannot be
// decoded at all.
func (c *TokenCache) expiresAfterNow(token string) bool {
	parsed, err := jwt.ParseInsecure([]byte(token))
	if err != nil {
		c.logger.Sugar().Debugw("Failed to decode auth token", "error", err)
		return false
	}
	exp, ok := parsed.Expiration()
	if !ok {
		return false
	}
	return exp.After(c.now())
}
