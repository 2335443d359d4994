package usecase

import (
	"context"
	"fmt"

	domain "github.com/aq2208/gshop-api/internal/entity"
	"github.com/aq2208/gshop-api/internal/logging"
)

type CreateOrder struct {
	orders   OrderRepo
	products ProductRepo
	events   EventPublisher
}

func NewCreateOrder(orders OrderRepo, products ProductRepo, events EventPublisher) *CreateOrder {
	return &CreateOrder{orders: orders, products: products, events: events}
}

// Execute inserts a new order after verifying every embedded product id
// exists in the product collection. The first missing reference aborts
// the whole creation; nothing is inserted partially. Whether in.UserID
// matches the authenticated caller is intentionally not checked here.
func (uc *CreateOrder) Execute(ctx context.Context, in *domain.Order) (*domain.Order, error) {
	for _, p := range in.Products {
		if _, err := uc.products.GetByID(ctx, p.ID); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, p.ID)
		}
	}

	if in.Status == "" {
		in.Status = domain.StatusPending
	}

	if err := uc.orders.Create(ctx, in); err != nil {
		return nil, err
	}

	// Best effort: a lost event never fails the request.
	if err := uc.events.PublishOrderCreated(ctx, OrderCreatedMsg{
		OrderID: in.ID,
		UserID:  in.UserID,
		Total:   in.Total,
		Status:  string(in.Status),
	}); err != nil {
		logging.FromCtx(ctx).Warn("publish order.created failed", "order_id", in.ID, "err", err)
	}

	return in, nil
}
