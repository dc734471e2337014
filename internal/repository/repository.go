package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/hanashop/storefront/internal/domain"
)

// ProductRepository provides read access to the catalog.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Categories(ctx context.Context) ([]domain.Category, error)
}

// OrderRepository persists placed orders.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	// List returns orders newest first. An empty sessionID lists every
	// order (admin listing); otherwise only the session's own orders.
	List(ctx context.Context, sessionID string) ([]domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
}

// Repositories bundles all repositories for dependency injection
type Repositories struct {
	Product ProductRepository
	Order   OrderRepository
}
