package repo

import (
	"context"
	"sync"

	domain "github.com/aq2208/gshop-api/internal/entity"
	"github.com/aq2208/gshop-api/internal/usecase"
)

// MemoryUserRepo is the in-process credential store. The core only
// reads from it; Put exists for startup seeding and tests.
type MemoryUserRepo struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func NewMemoryUserRepo(seed ...domain.User) *MemoryUserRepo {
	r := &MemoryUserRepo{users: make(map[string]domain.User, len(seed))}
	for _, u := range seed {
		r.users[u.Username] = u
	}
	return r
}

func (r *MemoryUserRepo) Put(u domain.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.Username] = u
}

func (r *MemoryUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[username]
	if !ok {
		return nil, usecase.ErrUserNotFound
	}
	return &u, nil
}

var _ usecase.UserRepo = (*MemoryUserRepo)(nil)
