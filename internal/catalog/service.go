package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/hanashop/storefront/internal/domain"
	"github.com/hanashop/storefront/internal/repository"
)

// Service serves filtered catalog listings from the product repository.
type Service struct {
	products repository.ProductRepository
	logger   *zap.Logger
}

// NewService creates a catalog service
func NewService(products repository.ProductRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		products: products,
		logger:   logger,
	}
}

// List returns one page of products after filtering and sorting.
func (s *Service) List(ctx context.Context, q Query) (Page, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list products", zap.Error(err))
		return Page{}, err
	}

	filtered := Filter(products, q)
	sorted := Sort(filtered, q.Sort)
	return Paginate(sorted, q.Page, q.Limit), nil
}

// GetByID returns a single product.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

// Categories returns all categories.
func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.products.Categories(ctx)
}
