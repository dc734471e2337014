package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/hanashop/storefront/internal/domain"
	"github.com/hanashop/storefront/pkg/errors"
)

// productRepository is an in-memory catalog seeded with a fixture set,
// the default backend when no database is configured.
type productRepository struct {
	mu         sync.RWMutex
	products   map[int64]domain.Product
	categories []domain.Category
}

// NewProductRepository creates a product repository seeded with the
// default catalog.
func NewProductRepository() *productRepository {
	repo := &productRepository{
		products:   make(map[int64]domain.Product),
		categories: seedCategories(),
	}
	for _, p := range seedProducts() {
		repo.products[p.ID] = p
	}
	return repo
}

func (r *productRepository) List(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (r *productRepository) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, &errors.ErrNotFound{Resource: "product", ID: strconv.FormatInt(id, 10)}
	}
	return &p, nil
}

func (r *productRepository) Categories(_ context.Context) ([]domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]domain.Category, len(r.categories))
	copy(categories, r.categories)
	return categories, nil
}
