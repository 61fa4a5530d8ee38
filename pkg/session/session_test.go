package session

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeToken issues a signed JWT expiring at exp. The cache only decodes the
// expiry claim, so the signing key is irrelevant to the tests.
func makeToken(t *testing.T, exp time.Time) string {
	t.Helper()

	token := jwt.New()
	require.NoError(t, token.Set(jwt.SubjectKey, "test-session"))
	require.NoError(t, token.Set(jwt.ExpirationKey, exp))

	key, err := jwk.Import([]byte("test-signing-secret"))
	require.NoError(t, err)

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), key))
	require.NoError(t, err)
	return string(signed)
}

func TestToken_CacheHit(t *testing.T) {
	refreshes := 0
	valid := makeToken(t, time.Now().Add(time.Hour))
	cache := New(valid, func(context.Context) (string, error) {
		refreshes++
		return makeToken(t, time.Now().Add(time.Hour)), nil
	}, nil)

	for i := 0; i < 2; i++ {
		got, err := cache.Token(context.Background())
		require.NoError(t, err)
		assert.Equal(t, valid, got)
	}
	assert.Equal(t, 0, refreshes)
}

func TestToken_RefreshOnExpiry(t *testing.T) {
	refreshes := 0
	fresh := makeToken(t, time.Now().Add(time.Hour))
	cache := New(makeToken(t, time.Now().Add(-time.Minute)), func(context.Context) (string, error) {
		refreshes++
		return fresh, nil
	}, nil)

	got, err := cache.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fresh, got)
	assert.Equal(t, 1, refreshes)

	// The fresh token is cached; no second exchange.
	got, err = cache.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fresh, got)
	assert.Equal(t, 1, refreshes)
}

func TestToken_UndecodableTokenTreatedAsExpired(t *testing.T) {
	refreshes := 0
	fresh := makeToken(t, time.Now().Add(time.Hour))
	cache := New("not-a-jwt", func(context.Context) (string, error) {
		refreshes++
		return fresh, nil
	}, nil)

	got, err := cache.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fresh, got)
	assert.Equal(t, 1, refreshes)
}

func TestToken_MissingExpiryClaimTreatedAsExpired(t *testing.T) {
	token := jwt.New()
	require.NoError(t, token.Set(jwt.SubjectKey, "no-exp"))
	key, err := jwk.Import([]byte("test-signing-secret"))
	require.NoError(t, err)
	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), key))
	require.NoError(t, err)

	fresh := makeToken(t, time.Now().Add(time.Hour))
	cache := New(string(signed), func(context.Context) (string, error) {
		return fresh, nil
	}, nil)

	got, err := cache.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fresh, got)
}

func TestToken_RefreshFailure(t *testing.T) {
	cache := New("", func(context.Context) (string, error) {
		return "", fmt.Errorf("server returned status 401")
	}, nil)

	_, err := cache.Token(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAuthentication))
	assert.Contains(t, err.Error(), "server returned status 401")
}

func TestToken_RefreshReturnsEmptyToken(t *testing.T) {
	cache := New("", func(context.Context) (string, error) {
		return "", nil
	}, nil)

	_, err := cache.Token(context.Background())
	require.ErrorIs(t, err, ErrAuthentication)
}

func TestToken_NoSigningIdentity(t *testing.T) {
	cache := New("", nil, nil)

	got, err := cache.Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSetAndCurrent(t *testing.T) {
	cache := New("", nil, nil)
	assert.Empty(t, cache.Current())

	cache.Set("replacement-token")
	assert.Equal(t, "replacement-token", cache.Current())
}
