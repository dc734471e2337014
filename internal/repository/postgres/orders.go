package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hanashop/storefront/internal/domain"
	"github.com/hanashop/storefront/pkg/errors"
)

type orderRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewOrderRepository creates a postgres-backed order repository
func NewOrderRepository(db *sql.DB, logger *zap.Logger) *orderRepository {
	return &orderRepository{
		db:     db,
		logger: logger,
	}
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	shippingJSON, err := json.Marshal(order.ShippingInfo)
	if err != nil {
		return err
	}
	paymentJSON, err := json.Marshal(order.PaymentInfo)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO orders (
			id, order_number, session_id, shipping_info, payment_info,
			subtotal, discount_amount, shipping_fee, total_amount, earned_points,
			status, payment_status, ordered_at, paid_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err = tx.ExecContext(ctx, query,
		order.ID,
		order.OrderNumber,
		order.SessionID,
		shippingJSON,
		paymentJSON,
		order.Subtotal,
		order.DiscountAmount,
		order.ShippingFee,
		order.TotalAmount,
		order.EarnedPoints,
		order.Status,
		order.PaymentStatus,
		order.OrderedAt,
		order.PaidAt,
	)
	if err != nil {
		r.logger.Error("Failed to create order", zap.Error(err))
		return err
	}

	itemQuery := `
		INSERT INTO order_items (order_id, product_id, name, unit_price, quantity, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for _, item := range order.Items {
		if _, err := tx.ExecContext(ctx, itemQuery,
			order.ID, item.ProductID, item.Name, item.UnitPrice, item.Quantity, item.Subtotal,
		); err != nil {
			r.logger.Error("Failed to create order item", zap.Error(err))
			return err
		}
	}

	return tx.Commit()
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	query := `
		SELECT id, order_number, session_id, shipping_info, payment_info,
		       subtotal, discount_amount, shipping_fee, total_amount, earned_points,
		       status, payment_status, tracking_carrier, tracking_number, cancel_reason,
		       ordered_at, paid_at, shipped_at, delivered_at, cancelled_at
		FROM orders
		WHERE id = $1
	`

	order, err := r.scanOrder(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, &errors.ErrNotFound{Resource: "order", ID: id.String()}
	}
	if err != nil {
		r.logger.Error("Failed to get order by ID", zap.Error(err))
		return nil, err
	}

	if err := r.loadItems(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) List(ctx context.Context, sessionID string) ([]domain.Order, error) {
	query := `
		SELECT id, order_number, session_id, shipping_info, payment_info,
		       subtotal, discount_amount, shipping_fee, total_amount, earned_points,
		       status, payment_status, tracking_carrier, tracking_number, cancel_reason,
		       ordered_at, paid_at, shipped_at, delivered_at, cancelled_at
		FROM orders
		WHERE ($1 = '' OR session_id = $1)
		ORDER BY ordered_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		r.logger.Error("Failed to query orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := r.scanOrder(rows)
		if err != nil {
			return nil, err
		}
		if err := r.loadItems(ctx, order); err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}

	return orders, rows.Err()
}

func (r *orderRepository) Update(ctx context.Context, order *domain.Order) error {
	query := `
		UPDATE orders
		SET status = $2, payment_status = $3,
		    tracking_carrier = $4, tracking_number = $5, cancel_reason = $6,
		    shipped_at = $7, delivered_at = $8, cancelled_at = $9
		WHERE id = $1
	`

	res, err := r.db.ExecContext(ctx, query,
		order.ID,
		order.Status,
		order.PaymentStatus,
		order.TrackingCarrier,
		order.TrackingNumber,
		order.CancelReason,
		order.ShippedAt,
		order.DeliveredAt,
		order.CancelledAt,
	)
	if err != nil {
		r.logger.Error("Failed to update order", zap.Error(err))
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return &errors.ErrNotFound{Resource: "order", ID: order.ID.String()}
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *orderRepository) scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	var shippingJSON, paymentJSON []byte
	var carrier, tracking, reason sql.NullString
	var paidAt, shippedAt, deliveredAt, cancelledAt sql.NullTime

	err := row.Scan(
		&order.ID,
		&order.OrderNumber,
		&order.SessionID,
		&shippingJSON,
		&paymentJSON,
		&order.Subtotal,
		&order.DiscountAmount,
		&order.ShippingFee,
		&order.TotalAmount,
		&order.EarnedPoints,
		&order.Status,
		&order.PaymentStatus,
		&carrier,
		&tracking,
		&reason,
		&order.OrderedAt,
		&paidAt,
		&shippedAt,
		&deliveredAt,
		&cancelledAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(shippingJSON, &order.ShippingInfo); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(paymentJSON, &order.PaymentInfo); err != nil {
		return nil, err
	}

	if carrier.Valid {
		order.TrackingCarrier = &carrier.String
	}
	if tracking.Valid {
		order.TrackingNumber = &tracking.String
	}
	if reason.Valid {
		order.CancelReason = &reason.String
	}
	if paidAt.Valid {
		order.PaidAt = &paidAt.Time
	}
	if shippedAt.Valid {
		order.ShippedAt = &shippedAt.Time
	}
	if deliveredAt.Valid {
		order.DeliveredAt = &deliveredAt.Time
	}
	if cancelledAt.Valid {
		order.CancelledAt = &cancelledAt.Time
	}

	return &order, nil
}

func (r *orderRepository) loadItems(ctx context.Context, order *domain.Order) error {
	query := `
		SELECT id, product_id, name, unit_price, quantity, subtotal
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, order.ID)
	if err != nil {
		r.logger.Error("Failed to query order items", zap.Error(err))
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		err := rows.Scan(
			&item.ID,
			&item.ProductID,
			&item.Name,
			&item.UnitPrice,
			&item.Quantity,
			&item.Subtotal,
		)
		if err != nil {
			return err
		}
		order.Items = append(order.Items, item)
	}

	return rows.Err()
}
