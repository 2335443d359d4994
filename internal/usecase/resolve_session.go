package usecase

import (
	"context"

	domain "github.com/aq2208/gshop-api/internal/entity"
)

type SessionResolver struct {
	codec TokenCodec
	users UserRepo
}

func NewSessionResolver(codec TokenCodec, users UserRepo) *SessionResolver {
	return &SessionResolver{codec: codec, users: users}
}

// Resolve decodes a presented token and re-looks-up its subject.
// Every failure mode collapses into ErrUnauthenticated, including a
// subject that no longer exists in the credential store.
func (s *SessionResolver) Resolve(ctx context.Context, tokenString string) (*domain.User, error) {
	sub, err := s.codec.Decode(tokenString)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	u, err := s.users.GetByUsername(ctx, sub)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	return u, nil
}

// RequireActive is a separate gate so callers that only need identity
// can skip it. A valid token for a disabled account fails here with a
// distinct error.
func (s *SessionResolver) RequireActive(u *domain.User) (*domain.User, error) {
	if u.Disabled {
		return nil, ErrAccountDisabled
	}
	return u, nil
}
