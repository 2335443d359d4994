package usecase

import (
	"context"
	"time"

	domain "github.com/aq2208/gshop-api/internal/entity"
)

// UserRepo is the read-only credential store. Records are provisioned
// outside this service.
type UserRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type ProductRepo interface {
	// Create is a strict insert: an existing id fails with ErrProductExists.
	Create(ctx context.Context, p *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	// List slices insertion order; out-of-range skip/limit never errors.
	List(ctx context.Context, skip, limit int) ([]domain.Product, error)
}

type OrderRepo interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, to domain.Status) error
}

// PasswordVerifier checks a plaintext password against a stored digest.
type PasswordVerifier interface {
	Verify(password, hash string) error
}

// TokenCodec mints and decodes signed bearer tokens.
type TokenCodec interface {
	Mint(subject string, ttl time.Duration) (string, error)
	Decode(tokenString string) (subject string, err error)
}

// EventPublisher notifies downstream consumers of new orders.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, msg OrderCreatedMsg) error
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishOrderCreated(context.Context, OrderCreatedMsg) error { return nil }
