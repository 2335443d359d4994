package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/aq2208/gshop-api/internal/security"
	"github.com/aq2208/gshop-api/internal/usecase"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func testCodec(t *testing.T) *security.TokenCodec {
	t.Helper()
	codec, err := security.NewTokenCodec([]byte(testSecret), "HS256")
	require.NoError(t, err)
	return codec
}

func TestResolve_RoundTrip(t *testing.T) {
	codec := testCodec(t)
	sessions := usecase.NewSessionResolver(codec, seededUsers(t))

	tok, err := codec.Mint("testuser", time.Hour)
	require.NoError(t, err)

	u, err := sessions.Resolve(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, "testuser", u.Username)
}

func TestResolve_BadTokens(t *testing.T) {
	codec := testCodec(t)
	sessions := usecase.NewSessionResolver(codec, seededUsers(t))
	ctx := context.Background()

	// expired but correctly signed
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "testuser",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	// valid shape, wrong secret
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "testuser",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	// valid token whose subject no longer exists in the store
	ghost, err := codec.Mint("deleted-user", time.Hour)
	require.NoError(t, err)

	for name, tok := range map[string]string{
		"expired":      expired,
		"forged":       forged,
		"malformed":    "not.a.jwt",
		"empty":        "",
		"ghostSubject": ghost,
	} {
		_, err := sessions.Resolve(ctx, tok)
		assert.ErrorIs(t, err, usecase.ErrUnauthenticated, name)
	}
}

func TestRequireActive(t *testing.T) {
	codec := testCodec(t)
	users := seededUsers(t)
	sessions := usecase.NewSessionResolver(codec, users)

	tok, err := codec.Mint("sleeper", time.Hour)
	require.NoError(t, err)

	// the token itself is valid, so Resolve succeeds
	u, err := sessions.Resolve(context.Background(), tok)
	require.NoError(t, err)

	// the active gate rejects with a distinct error
	_, err = sessions.RequireActive(u)
	assert.ErrorIs(t, err, usecase.ErrAccountDisabled)

	active, err := sessions.Resolve(context.Background(), mustMint(t, codec, "testuser"))
	require.NoError(t, err)
	got, err := sessions.RequireActive(active)
	require.NoError(t, err)
	assert.Equal(t, "testuser", got.Username)
}

func mustMint(t *testing.T, codec *security.TokenCodec, subject string) string {
	t.Helper()
	tok, err := codec.Mint(subject, time.Hour)
	require.NoError(t, err)
	return tok
}
