package repo

import (
	"context"
	"sync"

	domain "github.com/aq2208/gshop-api/internal/entity"
	"github.com/aq2208/gshop-api/internal/usecase"
)

type MemoryOrderRepo struct {
	mu   sync.RWMutex
	byID map[string]domain.Order
}

func NewMemoryOrderRepo() *MemoryOrderRepo {
	return &MemoryOrderRepo{byID: make(map[string]domain.Order)}
}

func (r *MemoryOrderRepo) Create(_ context.Context, o *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[o.ID]; ok {
		return usecase.ErrOrderExists
	}
	// copy in, including the product snapshot slice
	stored := *o
	stored.Products = append([]domain.Product(nil), o.Products...)
	r.byID[o.ID] = stored
	return nil
}

func (r *MemoryOrderRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.byID[id]
	if !ok {
		return nil, usecase.ErrOrderNotFound
	}
	out := o
	out.Products = append([]domain.Product(nil), o.Products...)
	return &out, nil
}

func (r *MemoryOrderRepo) UpdateStatus(_ context.Context, id string, to domain.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.byID[id]
	if !ok {
		return usecase.ErrOrderNotFound
	}
	o.Status = to
	r.byID[id] = o
	return nil
}

var _ usecase.OrderRepo = (*MemoryOrderRepo)(nil)
