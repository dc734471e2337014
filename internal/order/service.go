package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hanashop/storefront/internal/cart"
	"github.com/hanashop/storefront/internal/checkout"
	"github.com/hanashop/storefront/internal/domain"
	"github.com/hanashop/storefront/internal/repository"
	"github.com/hanashop/storefront/pkg/errors"
)

// CancelWindow is how long after placement a shopper may cancel.
const CancelWindow = 24 * time.Hour

// Service owns order placement and lifecycle.
type Service struct {
	orders repository.OrderRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(orders repository.OrderRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{orders: orders, logger: logger, now: time.Now}
}

// Create places an order from the checkout's assembled request. Totals
// are recomputed server-side and must match what the client confirmed.
func (s *Service) Create(ctx context.Context, req domain.CreateOrderRequest) (*domain.Order, error) {
	if len(req.Items) == 0 {
		return nil, &errors.ErrPrecondition{Message: "order must contain at least one item"}
	}

	recomputed := cart.ComputeTotals(req.Items)
	if recomputed.TotalPrice != req.Totals.TotalPrice {
		return nil, &errors.ErrPrecondition{
			Message: "cart totals changed, please review your order",
		}
	}

	now := s.now()
	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.OrderItem{
			ID:        it.ID,
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			Subtotal:  it.UnitPrice * int64(it.Quantity),
		})
	}

	paidAt := now
	o := &domain.Order{
		ID:             uuid.New(),
		OrderNumber:    s.newOrderNumber(now),
		SessionID:      req.SessionID,
		Items:          items,
		ShippingInfo:   req.ShippingInfo,
		PaymentInfo:    maskPayment(req.PaymentInfo),
		Subtotal:       recomputed.Subtotal,
		DiscountAmount: recomputed.Discount,
		ShippingFee:    recomputed.ShippingFee,
		TotalAmount:    recomputed.TotalPrice,
		EarnedPoints:   recomputed.TotalPrice / 100,
		Status:         domain.OrderStatusPending,
		PaymentStatus:  domain.PaymentStatusCompleted,
		OrderedAt:      now,
		PaidAt:         &paidAt,
	}

	if err := s.orders.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("creating order: %w", err)
	}

	s.logger.Info("order created",
		zap.String("order_number", o.OrderNumber),
		zap.Int("items", len(o.Items)),
		zap.Int64("total_amount", o.TotalAmount))
	return o, nil
}

func (s *Service) newOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:4])
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), suffix)
}

// maskPayment obscures sensitive numbers before the order is persisted.
func maskPayment(info domain.PaymentInfo) domain.PaymentInfo {
	if info.CardNumber != "" {
		info.CardNumber = checkout.MaskCardNumber(info.CardNumber)
	}
	if info.AccountNumber != "" {
		info.AccountNumber = checkout.MaskAccountNumber(info.AccountNumber)
	}
	return info
}

// GetByID returns a single order. A non-empty sessionID restricts the
// lookup to that session's own orders.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID, sessionID string) (*domain.Order, error) {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sessionID != "" && o.SessionID != sessionID {
		return nil, &errors.ErrNotFound{Resource: "order", ID: id.String()}
	}
	return o, nil
}

// List returns the session's orders newest first, narrowed by filters.
// An empty sessionID lists all orders (admin).
func (s *Service) List(ctx context.Context, sessionID string, filters domain.OrderFilters) ([]domain.Order, error) {
	orders, err := s.orders.List(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}

	result := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if filters.Status != "" && o.Status != filters.Status {
			continue
		}
		if filters.From != nil && o.OrderedAt.Before(*filters.From) {
			continue
		}
		if filters.To != nil && o.OrderedAt.After(*filters.To) {
			continue
		}
		if filters.SearchQuery != "" && !matchesSearch(o, filters.SearchQuery) {
			continue
		}
		result = append(result, o)
	}
	return result, nil
}

func matchesSearch(o domain.Order, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(o.OrderNumber), q) {
		return true
	}
	for _, it := range o.Items {
		if strings.Contains(strings.ToLower(it.Name), q) {
			return true
		}
	}
	return false
}

// Cancel cancels a shopper's own order. Only pending or confirmed orders
// within the cancellation window can be cancelled.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID, sessionID, reason string) (*domain.Order, error) {
	o, err := s.GetByID(ctx, id, sessionID)
	if err != nil {
		return nil, err
	}

	if o.Status != domain.OrderStatusPending && o.Status != domain.OrderStatusConfirmed {
		return nil, &errors.ErrPrecondition{
			Message: fmt.Sprintf("order in status %s cannot be cancelled", o.Status),
		}
	}
	if s.now().Sub(o.OrderedAt) > CancelWindow {
		return nil, &errors.ErrPrecondition{Message: "the cancellation window has passed"}
	}

	now := s.now()
	o.Status = domain.OrderStatusCancelled
	o.PaymentStatus = domain.PaymentStatusCancelled
	o.CancelledAt = &now
	if reason != "" {
		o.CancelReason = &reason
	}

	if err := s.orders.Update(ctx, o); err != nil {
		return nil, fmt.Errorf("cancelling order: %w", err)
	}

	s.logger.Info("order cancelled",
		zap.String("order_number", o.OrderNumber),
		zap.String("reason", reason))
	return o, nil
}

// UpdateStatus moves an order along its lifecycle (admin). Shipping
// requires tracking details; terminal states stamp their timestamps.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus, carrier, trackingNumber string) (*domain.Order, error) {
	if !status.IsValid() {
		return nil, errors.NewValidation("status", fmt.Sprintf("unknown order status: %s", status))
	}

	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !o.Status.CanTransitionTo(status) {
		return nil, &errors.ErrInvalidStateTransition{From: string(o.Status), To: string(status)}
	}

	now := s.now()
	switch status {
	case domain.OrderStatusShipped:
		if carrier == "" || trackingNumber == "" {
			return nil, errors.NewValidation("tracking",
				"carrier and tracking number are required to mark an order shipped")
		}
		o.TrackingCarrier = &carrier
		o.TrackingNumber = &trackingNumber
		o.ShippedAt = &now
	case domain.OrderStatusDelivered:
		o.DeliveredAt = &now
	case domain.OrderStatusCancelled:
		o.CancelledAt = &now
		o.PaymentStatus = domain.PaymentStatusCancelled
	}
	o.Status = status

	if err := s.orders.Update(ctx, o); err != nil {
		return nil, fmt.Errorf("updating order status: %w", err)
	}

	s.logger.Info("order status updated",
		zap.String("order_number", o.OrderNumber),
		zap.String("status", string(status)))
	return o, nil
}
