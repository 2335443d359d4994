package usecase

import (
	"context"

	domain "github.com/aq2208/gshop-api/internal/entity"
)

type GetOrder struct {
	orders OrderRepo
}

func NewGetOrder(orders OrderRepo) *GetOrder {
	return &GetOrder{orders: orders}
}

// Execute enforces ownership at read time: an existing order owned by
// someone else fails with ErrForbidden, not ErrOrderNotFound.
func (uc *GetOrder) Execute(ctx context.Context, id string, requester *domain.User) (*domain.Order, error) {
	o, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.UserID != requester.Username {
		return nil, ErrForbidden
	}
	return o, nil
}
