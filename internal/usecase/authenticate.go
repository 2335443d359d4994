package usecase

import (
	"context"

	domain "github.com/aq2208/gshop-api/internal/entity"
)

type Authenticator struct {
	users    UserRepo
	verifier PasswordVerifier
}

func NewAuthenticator(users UserRepo, verifier PasswordVerifier) *Authenticator {
	return &Authenticator{users: users, verifier: verifier}
}

// Authenticate returns the full user record on success. A missing
// username and a wrong password are indistinguishable. The disabled
// flag is deliberately not checked here; that gate lives in
// SessionResolver.RequireActive.
func (a *Authenticator) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	u, err := a.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := a.verifier.Verify(password, u.HashedPassword); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
