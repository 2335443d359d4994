package usecase_test

import (
	"context"
	"testing"

	"github.com/aq2208/gshop-api/internal/adapter/repo"
	domain "github.com/aq2208/gshop-api/internal/entity"
	"github.com/aq2208/gshop-api/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturePublisher struct {
	msgs []usecase.OrderCreatedMsg
}

func (p *capturePublisher) PublishOrderCreated(_ context.Context, msg usecase.OrderCreatedMsg) error {
	p.msgs = append(p.msgs, msg)
	return nil
}

func orderFixture() *domain.Order {
	return &domain.Order{
		ID:     "order-123",
		UserID: "testuser",
		Products: []domain.Product{
			{ID: "prod-123", Name: "Test Product", Price: 9.99},
		},
		Total: 9.99,
	}
}

func TestCreateOrder_Success(t *testing.T) {
	ctx := context.Background()
	products := repo.NewMemoryProductRepo()
	orders := repo.NewMemoryOrderRepo()
	events := &capturePublisher{}
	uc := usecase.NewCreateOrder(orders, products, events)

	require.NoError(t, products.Create(ctx, &domain.Product{ID: "prod-123", Name: "Test Product", Price: 9.99}))

	created, err := uc.Execute(ctx, orderFixture())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, created.Status)

	stored, err := orders.GetByID(ctx, "order-123")
	require.NoError(t, err)
	assert.Equal(t, 9.99, stored.Total)

	require.Len(t, events.msgs, 1)
	assert.Equal(t, "order-123", events.msgs[0].OrderID)
	assert.Equal(t, "pending", events.msgs[0].Status)
}

func TestCreateOrder_MissingProductRef(t *testing.T) {
	ctx := context.Background()
	products := repo.NewMemoryProductRepo()
	orders := repo.NewMemoryOrderRepo()
	uc := usecase.NewCreateOrder(orders, products, usecase.NopPublisher{})

	_, err := uc.Execute(ctx, orderFixture())
	require.ErrorIs(t, err, usecase.ErrProductNotFound)
	assert.Contains(t, err.Error(), "prod-123")

	// no partial insert
	_, err = orders.GetByID(ctx, "order-123")
	assert.ErrorIs(t, err, usecase.ErrOrderNotFound)
}

func TestCreateOrder_Duplicate(t *testing.T) {
	ctx := context.Background()
	products := repo.NewMemoryProductRepo()
	orders := repo.NewMemoryOrderRepo()
	uc := usecase.NewCreateOrder(orders, products, usecase.NopPublisher{})

	require.NoError(t, products.Create(ctx, &domain.Product{ID: "prod-123", Name: "Test Product", Price: 9.99}))

	_, err := uc.Execute(ctx, orderFixture())
	require.NoError(t, err)

	_, err = uc.Execute(ctx, orderFixture())
	assert.ErrorIs(t, err, usecase.ErrOrderExists)
}

func TestGetOrder_Ownership(t *testing.T) {
	ctx := context.Background()
	products := repo.NewMemoryProductRepo()
	orders := repo.NewMemoryOrderRepo()
	createUC := usecase.NewCreateOrder(orders, products, usecase.NopPublisher{})
	getUC := usecase.NewGetOrder(orders)

	require.NoError(t, products.Create(ctx, &domain.Product{ID: "p1", Name: "Widget", Price: 9.99}))
	_, err := createUC.Execute(ctx, &domain.Order{
		ID:       "o1",
		UserID:   "alice",
		Products: []domain.Product{{ID: "p1", Name: "Widget", Price: 9.99}},
		Total:    9.99,
	})
	require.NoError(t, err)

	alice := &domain.User{Username: "alice"}
	bob := &domain.User{Username: "bob"}

	got, err := getUC.Execute(ctx, "o1", alice)
	require.NoError(t, err)
	assert.Equal(t, 9.99, got.Total)

	_, err = getUC.Execute(ctx, "o1", bob)
	assert.ErrorIs(t, err, usecase.ErrForbidden)

	_, err = getUC.Execute(ctx, "missing", alice)
	assert.ErrorIs(t, err, usecase.ErrOrderNotFound)
}

func TestCreateOrder_UserIDNotCheckedAgainstCaller(t *testing.T) {
	// create does not compare order.UserID to any caller identity;
	// ownership is enforced only at read time
	ctx := context.Background()
	products := repo.NewMemoryProductRepo()
	orders := repo.NewMemoryOrderRepo()
	uc := usecase.NewCreateOrder(orders, products, usecase.NopPublisher{})

	require.NoError(t, products.Create(ctx, &domain.Product{ID: "p1", Name: "Widget", Price: 1}))
	_, err := uc.Execute(ctx, &domain.Order{
		ID:       "o-any",
		UserID:   "somebody-else",
		Products: []domain.Product{{ID: "p1"}},
		Total:    1,
	})
	require.NoError(t, err)
}
