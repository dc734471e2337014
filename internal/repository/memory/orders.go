package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/hanashop/storefront/internal/domain"
	"github.com/hanashop/storefront/pkg/errors"
)

// orderRepository is the in-memory order store.
type orderRepository struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]domain.Order
}

// NewOrderRepository creates an empty in-memory order repository.
func NewOrderRepository() *orderRepository {
	return &orderRepository{orders: make(map[uuid.UUID]domain.Order)}
}

func (r *orderRepository) Create(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders[order.ID] = *order
	return nil
}

func (r *orderRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, &errors.ErrNotFound{Resource: "order", ID: id.String()}
	}
	return &order, nil
}

func (r *orderRepository) List(_ context.Context, sessionID string) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if sessionID != "" && o.SessionID != sessionID {
			continue
		}
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].OrderedAt.After(orders[j].OrderedAt)
	})
	return orders, nil
}

func (r *orderRepository) Update(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[order.ID]; !ok {
		return &errors.ErrNotFound{Resource: "order", ID: order.ID.String()}
	}
	r.orders[order.ID] = *order
	return nil
}
