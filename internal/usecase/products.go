package usecase

import (
	"context"

	domain "github.com/aq2208/gshop-api/internal/entity"
)

type Products struct {
	repo ProductRepo
}

func NewProducts(repo ProductRepo) *Products {
	return &Products{repo: repo}
}

func (uc *Products) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *Products) Get(ctx context.Context, id string) (*domain.Product, error) {
	return uc.repo.GetByID(ctx, id)
}

func (uc *Products) List(ctx context.Context, skip, limit int) ([]domain.Product, error) {
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = 0
	}
	return uc.repo.List(ctx, skip, limit)
}
