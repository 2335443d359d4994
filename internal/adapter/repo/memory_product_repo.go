package repo

import (
	"context"
	"sync"

	domain "github.com/aq2208/gshop-api/internal/entity"
	"github.com/aq2208/gshop-api/internal/usecase"
)

// MemoryProductRepo keeps products in a map plus an insertion-order
// index so List is a pure slice over creation order. The mutex makes
// the exists-check-then-insert atomic per collection; exactly one of
// two racing creates with the same id wins.
type MemoryProductRepo struct {
	mu    sync.RWMutex
	byID  map[string]domain.Product
	order []string
}

func NewMemoryProductRepo() *MemoryProductRepo {
	return &MemoryProductRepo{byID: make(map[string]domain.Product)}
}

func (r *MemoryProductRepo) Create(_ context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[p.ID]; ok {
		return usecase.ErrProductExists
	}
	r.byID[p.ID] = *p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *MemoryProductRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, usecase.ErrProductNotFound
	}
	return &p, nil
}

func (r *MemoryProductRepo) List(_ context.Context, skip, limit int) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if skip >= len(r.order) || limit <= 0 {
		return []domain.Product{}, nil
	}
	end := skip + limit
	if end > len(r.order) {
		end = len(r.order)
	}
	out := make([]domain.Product, 0, end-skip)
	for _, id := range r.order[skip:end] {
		out = append(out, r.byID[id])
	}
	return out, nil
}

var _ usecase.ProductRepo = (*MemoryProductRepo)(nil)
