package kafka

import (
	"context"
	"errors"

	domain "github.com/aq2208/gshop-api/internal/entity"
	"github.com/aq2208/gshop-api/internal/usecase"
)

// OrderStatusChangedHandler applies fulfilment outcomes to stored orders.
type OrderStatusChangedHandler struct {
	Repo usecase.OrderRepo
}

func NewOrderStatusChangedHandler(repo usecase.OrderRepo) *OrderStatusChangedHandler {
	return &OrderStatusChangedHandler{Repo: repo}
}

func (h *OrderStatusChangedHandler) Handle(ctx context.Context, ev usecase.OrderStatusChangedMsg) error {
	// Map external status -> internal
	var newStatus domain.Status
	switch ev.Status {
	case "SUCCESS":
		newStatus = domain.StatusConfirmed
	default:
		newStatus = domain.StatusFailed
	}

	if err := h.Repo.UpdateStatus(ctx, ev.OrderID, newStatus); err != nil {
		if errors.Is(err, usecase.ErrOrderNotFound) {
			// event for an order this instance never saw; drop it
			return nil
		}
		return err
	}
	return nil
}
