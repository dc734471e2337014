package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hanashop/storefront/internal/catalog"
	"github.com/hanashop/storefront/internal/domain"
	"github.com/hanashop/storefront/internal/repository"
	"github.com/hanashop/storefront/internal/storage"
	"github.com/hanashop/storefront/pkg/errors"
)

// cartState is the serialized blob persisted per session.
type cartState struct {
	Items  []domain.CartItem `json:"items"`
	NextID int64             `json:"next_id"`
}

// Store owns the per-session cart lines. All quantity and stock
// validation happens here, before lines ever reach the calculator.
type Store struct {
	store    storage.Store
	products repository.ProductRepository
	logger   *zap.Logger
	now      func() time.Time
}

// NewStore creates a cart store over the given blob storage and catalog.
func NewStore(store storage.Store, products repository.ProductRepository, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		store:    store,
		products: products,
		logger:   logger,
		now:      time.Now,
	}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}

func (s *Store) load(ctx context.Context, sessionID string) (*cartState, error) {
	data, err := s.store.Get(ctx, cartKey(sessionID))
	if err == storage.ErrNotFound {
		return &cartState{NextID: 1}, nil
	}
	if err != nil {
		return nil, err
	}

	var state cartState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("unmarshal cart failed: %w", err)
	}
	if state.NextID < 1 {
		state.NextID = 1
	}
	return &state, nil
}

func (s *Store) save(ctx context.Context, sessionID string, state *cartState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}
	return s.store.Set(ctx, cartKey(sessionID), data)
}

// Items returns the session's cart lines; an unknown session has an
// empty cart.
func (s *Store) Items(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return state.Items, nil
}

// Totals returns the lines together with the derived totals.
func (s *Store) Totals(ctx context.Context, sessionID string) ([]domain.CartItem, domain.CartTotals, error) {
	items, err := s.Items(ctx, sessionID)
	if err != nil {
		return nil, domain.CartTotals{}, err
	}
	return items, ComputeTotals(items), nil
}

// AddItem adds quantity units of a product, merging into an existing
// line for the same product. New lines start selected.
func (s *Store) AddItem(ctx context.Context, sessionID string, productID int64, quantity int) ([]domain.CartItem, error) {
	if quantity < 1 {
		return nil, errors.NewValidation("quantity", "quantity must be at least 1")
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	newQuantity := quantity
	for _, item := range state.Items {
		if item.ProductID == productID {
			newQuantity += item.Quantity
			break
		}
	}
	if err := checkQuantity(*product, newQuantity); err != nil {
		return nil, err
	}

	merged := false
	for i := range state.Items {
		if state.Items[i].ProductID == productID {
			state.Items[i].Quantity = newQuantity
			merged = true
			break
		}
	}
	if !merged {
		state.Items = append(state.Items, domain.CartItem{
			ID:        state.NextID,
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  quantity,
			Selected:  true,
			AddedAt:   s.now(),
		})
		state.NextID++
	}

	if err := s.save(ctx, sessionID, state); err != nil {
		return nil, err
	}

	s.logger.Info("cart item added",
		zap.String("session_id", sessionID),
		zap.Int64("product_id", productID),
		zap.Int("quantity", quantity),
	)
	return state.Items, nil
}

// UpdateQuantity sets a line's quantity. A quantity below 1 removes the
// line.
func (s *Store) UpdateQuantity(ctx context.Context, sessionID string, itemID int64, quantity int) ([]domain.CartItem, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	idx := findItem(state.Items, itemID)
	if idx < 0 {
		return nil, &errors.ErrNotFound{Resource: "cart item", ID: fmt.Sprintf("%d", itemID)}
	}

	if quantity < 1 {
		state.Items = append(state.Items[:idx], state.Items[idx+1:]...)
	} else {
		product, err := s.products.GetByID(ctx, state.Items[idx].ProductID)
		if err != nil {
			return nil, err
		}
		if err := checkQuantity(*product, quantity); err != nil {
			return nil, err
		}
		state.Items[idx].Quantity = quantity
	}

	if err := s.save(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return state.Items, nil
}

// RemoveItem deletes a line.
func (s *Store) RemoveItem(ctx context.Context, sessionID string, itemID int64) ([]domain.CartItem, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	idx := findItem(state.Items, itemID)
	if idx < 0 {
		return nil, &errors.ErrNotFound{Resource: "cart item", ID: fmt.Sprintf("%d", itemID)}
	}
	state.Items = append(state.Items[:idx], state.Items[idx+1:]...)

	if err := s.save(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return state.Items, nil
}

// ToggleSelection flips a line's checkout inclusion flag.
func (s *Store) ToggleSelection(ctx context.Context, sessionID string, itemID int64) ([]domain.CartItem, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	idx := findItem(state.Items, itemID)
	if idx < 0 {
		return nil, &errors.ErrNotFound{Resource: "cart item", ID: fmt.Sprintf("%d", itemID)}
	}
	state.Items[idx].Selected = !state.Items[idx].Selected

	if err := s.save(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return state.Items, nil
}

// SetAllSelected marks every line selected or deselected.
func (s *Store) SetAllSelected(ctx context.Context, sessionID string, selected bool) ([]domain.CartItem, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	for i := range state.Items {
		state.Items[i].Selected = selected
	}

	if err := s.save(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return state.Items, nil
}

// RemoveSelected deletes every selected line.
func (s *Store) RemoveSelected(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	kept := state.Items[:0]
	for _, item := range state.Items {
		if !item.Selected {
			kept = append(kept, item)
		}
	}
	state.Items = kept

	if err := s.save(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return state.Items, nil
}

// Clear empties the session's cart.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	return s.store.Clear(ctx, cartKey(sessionID))
}

func findItem(items []domain.CartItem, itemID int64) int {
	for i, item := range items {
		if item.ID == itemID {
			return i
		}
	}
	return -1
}

func checkQuantity(product domain.Product, quantity int) error {
	if !catalog.InStock(product, quantity) {
		return errors.NewValidation("quantity",
			fmt.Sprintf("insufficient stock for %s (available: %d)", product.Name, product.StockQuantity))
	}
	if max := catalog.MaxOrderQuantity(product); quantity > max {
		return errors.NewValidation("quantity",
			fmt.Sprintf("maximum order quantity for %s is %d", product.Name, max))
	}
	return nil
}
