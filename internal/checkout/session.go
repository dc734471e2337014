package checkout

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/hanashop/storefront/internal/cart"
	"github.com/hanashop/storefront/internal/domain"
	"github.com/hanashop/storefront/internal/storage"
	"github.com/hanashop/storefront/pkg/errors"
)

// Session is the per-shopper checkout state persisted between requests.
type Session struct {
	ID           string               `json:"id"`
	CurrentStep  domain.CheckoutStep  `json:"current_step"`
	ShippingInfo *domain.ShippingInfo `json:"shipping_info,omitempty"`
	PaymentInfo  *domain.PaymentInfo  `json:"payment_info,omitempty"`
	IsSubmitting bool                 `json:"is_submitting"`
	LastError    string               `json:"last_error,omitempty"`
}

// CartAccess is the slice of the cart the checkout flow needs.
type CartAccess interface {
	Items(ctx context.Context, sessionID string) ([]domain.CartItem, error)
	Clear(ctx context.Context, sessionID string) error
}

// OrderPlacer creates an order from an assembled request.
type OrderPlacer interface {
	Create(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error)
}

// Manager drives the three-step checkout flow for each session.
type Manager struct {
	store    storage.Store
	carts    CartAccess
	orders   OrderPlacer
	validate *validator.Validate
	logger   *zap.Logger
}

func NewManager(store storage.Store, carts CartAccess, orders OrderPlacer, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		store:    store,
		carts:    carts,
		orders:   orders,
		validate: newValidator(),
		logger:   logger,
	}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("checkout:%s", sessionID)
}

func (m *Manager) load(ctx context.Context, sessionID string) (*Session, error) {
	data, err := m.store.Get(ctx, sessionKey(sessionID))
	if err != nil {
		if err == storage.ErrNotFound {
			return &Session{ID: sessionID, CurrentStep: domain.StepShipping}, nil
		}
		return nil, fmt.Errorf("loading checkout session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("decoding checkout session: %w", err)
	}
	return &sess, nil
}

func (m *Manager) save(ctx context.Context, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encoding checkout session: %w", err)
	}
	if err := m.store.Set(ctx, sessionKey(sess.ID), data); err != nil {
		return fmt.Errorf("saving checkout session: %w", err)
	}
	return nil
}

// Get returns the current checkout state, initializing a fresh session
// at the shipping step when none exists.
func (m *Manager) Get(ctx context.Context, sessionID string) (*Session, error) {
	return m.load(ctx, sessionID)
}

// SubmitShipping validates the shipping form and advances to payment.
func (m *Manager) SubmitShipping(ctx context.Context, sessionID string, info domain.ShippingInfo) (*Session, error) {
	sess, err := m.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.CurrentStep != domain.StepShipping {
		return nil, &errors.ErrPrecondition{
			Message: fmt.Sprintf("shipping can only be submitted at the %s step", domain.StepShipping),
		}
	}

	if err := ValidateShipping(m.validate, info); err != nil {
		return nil, err
	}

	sess.ShippingInfo = &info
	sess.CurrentStep = domain.StepPayment
	sess.LastError = ""
	if err := m.save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// SubmitPayment validates the payment form and advances to confirmation.
func (m *Manager) SubmitPayment(ctx context.Context, sessionID string, info domain.PaymentInfo) (*Session, error) {
	sess, err := m.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.CurrentStep != domain.StepPayment {
		return nil, &errors.ErrPrecondition{
			Message: fmt.Sprintf("payment can only be submitted at the %s step", domain.StepPayment),
		}
	}

	if err := ValidatePayment(info); err != nil {
		return nil, err
	}

	sess.PaymentInfo = &info
	sess.CurrentStep = domain.StepConfirm
	sess.LastError = ""
	if err := m.save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// GoBack moves one step toward shipping. Entered data is preserved so
// the shopper can edit and resubmit. At the shipping step this is a no-op.
func (m *Manager) GoBack(ctx context.Context, sessionID string) (*Session, error) {
	sess, err := m.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	prev := sess.CurrentStep.Previous()
	if prev == sess.CurrentStep {
		return sess, nil
	}

	sess.CurrentStep = prev
	sess.LastError = ""
	if err := m.save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// SubmitOrder places the order from the selected cart items. On success
// the checkout session is reset and the cart cleared. On failure the
// session stays at the confirmation step so the shopper can retry.
func (m *Manager) SubmitOrder(ctx context.Context, sessionID string) (*domain.Order, error) {
	sess, err := m.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if sess.CurrentStep != domain.StepConfirm {
		return nil, &errors.ErrPrecondition{Message: "order can only be placed at the confirmation step"}
	}
	if sess.ShippingInfo == nil || sess.PaymentInfo == nil {
		return nil, &errors.ErrPrecondition{Message: "shipping and payment details must be completed first"}
	}
	if sess.IsSubmitting {
		return nil, &errors.ErrPrecondition{Message: "an order submission is already in progress"}
	}

	items, err := m.carts.Items(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	selected := make([]domain.CartItem, 0, len(items))
	for _, it := range items {
		if it.Selected {
			selected = append(selected, it)
		}
	}
	if len(selected) == 0 {
		return nil, &errors.ErrPrecondition{Message: "no items selected for order"}
	}

	totals := cart.ComputeTotals(items)
	if err := ValidateAmount(sess.PaymentInfo.Method, totals.TotalPrice); err != nil {
		return nil, err
	}

	sess.IsSubmitting = true
	sess.LastError = ""
	if err := m.save(ctx, sess); err != nil {
		return nil, err
	}

	order, err := m.orders.Create(ctx, domain.CreateOrderRequest{
		SessionID:    sessionID,
		ShippingInfo: *sess.ShippingInfo,
		PaymentInfo:  *sess.PaymentInfo,
		Items:        selected,
		Totals:       totals,
	})
	if err != nil {
		sess.IsSubmitting = false
		sess.LastError = "order submission failed, please try again"
		if saveErr := m.save(ctx, sess); saveErr != nil {
			m.logger.Error("failed to persist checkout session after submission error",
				zap.String("session_id", sessionID), zap.Error(saveErr))
		}
		m.logger.Warn("order submission failed",
			zap.String("session_id", sessionID), zap.Error(err))
		return nil, &errors.ErrSubmission{Message: "order submission failed", Cause: err}
	}

	if err := m.Reset(ctx, sessionID); err != nil {
		m.logger.Error("failed to reset checkout session after order",
			zap.String("session_id", sessionID), zap.Error(err))
	}
	if err := m.carts.Clear(ctx, sessionID); err != nil {
		m.logger.Error("failed to clear cart after order",
			zap.String("session_id", sessionID), zap.Error(err))
	}

	m.logger.Info("order placed",
		zap.String("session_id", sessionID),
		zap.String("order_number", order.OrderNumber),
		zap.Int64("total_amount", order.TotalAmount))
	return order, nil
}

// Reset discards the checkout state, returning the session to shipping.
func (m *Manager) Reset(ctx context.Context, sessionID string) error {
	if err := m.store.Clear(ctx, sessionKey(sessionID)); err != nil && err != storage.ErrNotFound {
		return fmt.Errorf("clearing checkout session: %w", err)
	}
	return nil
}
