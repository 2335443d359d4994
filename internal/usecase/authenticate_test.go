package usecase_test

import (
	"context"
	"testing"

	"github.com/aq2208/gshop-api/internal/adapter/repo"
	domain "github.com/aq2208/gshop-api/internal/entity"
	"github.com/aq2208/gshop-api/internal/security"
	"github.com/aq2208/gshop-api/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededUsers(t *testing.T) *repo.MemoryUserRepo {
	t.Helper()
	hash, err := security.HashPassword("testpass")
	require.NoError(t, err)
	return repo.NewMemoryUserRepo(
		domain.User{
			Username:       "testuser",
			FullName:       "Test User",
			Email:          "testuser@example.com",
			HashedPassword: hash,
		},
		domain.User{
			Username:       "sleeper",
			HashedPassword: hash,
			Disabled:       true,
		},
	)
}

func TestAuthenticate_Success(t *testing.T) {
	auth := usecase.NewAuthenticator(seededUsers(t), security.BcryptVerifier{})

	u, err := auth.Authenticate(context.Background(), "testuser", "testpass")
	require.NoError(t, err)
	assert.Equal(t, "testuser", u.Username)
	assert.Equal(t, "Test User", u.FullName)
}

func TestAuthenticate_EnumerationSafety(t *testing.T) {
	auth := usecase.NewAuthenticator(seededUsers(t), security.BcryptVerifier{})

	_, wrongPass := auth.Authenticate(context.Background(), "testuser", "wrongpass")
	_, unknownUser := auth.Authenticate(context.Background(), "nonexistent", "testpass")

	// a wrong password and an unknown username must be indistinguishable
	require.Error(t, wrongPass)
	require.Error(t, unknownUser)
	assert.ErrorIs(t, wrongPass, usecase.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, usecase.ErrInvalidCredentials)
	assert.Equal(t, wrongPass.Error(), unknownUser.Error())
}

func TestAuthenticate_DisabledAccountStillAuthenticates(t *testing.T) {
	auth := usecase.NewAuthenticator(seededUsers(t), security.BcryptVerifier{})

	// the disabled gate lives in SessionResolver.RequireActive, not here
	u, err := auth.Authenticate(context.Background(), "sleeper", "testpass")
	require.NoError(t, err)
	assert.True(t, u.Disabled)
}
