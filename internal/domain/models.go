package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a catalog product. Prices are integer KRW.
type Product struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         int64     `json:"price"`
	CategoryID    int64     `json:"category_id"`
	Category      string    `json:"category"`
	ImageURL      string    `json:"image_url,omitempty"`
	Rating        float64   `json:"rating"`
	ReviewCount   int       `json:"review_count"`
	StockQuantity int       `json:"stock_quantity"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Category groups products.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CartItem is a single cart line. Selected marks the line for inclusion
// in the next checkout (partial-cart checkout).
type CartItem struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	Name      string    `json:"name"`
	UnitPrice int64     `json:"unit_price"`
	Quantity  int       `json:"quantity"`
	Selected  bool      `json:"selected"`
	AddedAt   time.Time `json:"added_at"`
}

// CartTotals is derived from the current cart lines on every read,
// never stored. TotalPrice = Subtotal - Discount + ShippingFee.
type CartTotals struct {
	Subtotal           int64 `json:"subtotal"`
	Discount           int64 `json:"discount"`
	ShippingFee        int64 `json:"shipping_fee"`
	TotalPrice         int64 `json:"total_price"`
	TotalItemCount     int   `json:"total_item_count"`
	SelectedItemCount  int   `json:"selected_item_count"`
	SelectedItemsPrice int64 `json:"selected_items_price"`
}

// ShippingInfo holds the recipient and delivery address for an order.
type ShippingInfo struct {
	RecipientName  string `json:"recipient_name" validate:"required,min=2,max=50"`
	RecipientPhone string `json:"recipient_phone" validate:"required,krmobile"`
	ZipCode        string `json:"zip_code" validate:"required,krzip"`
	Address        string `json:"address" validate:"required,min=5,max=200"`
	AddressDetail  string `json:"address_detail" validate:"required,min=2,max=100"`
	DeliveryNote   string `json:"delivery_note,omitempty" validate:"max=200"`
}

// PaymentInfo is discriminated by Method; each method requires a
// different subset of the optional fields.
type PaymentInfo struct {
	Method        PaymentMethod `json:"method" validate:"required"`
	CardNumber    string        `json:"card_number,omitempty"`
	CardIssuer    string        `json:"card_issuer,omitempty"`
	Installment   int           `json:"installment,omitempty" validate:"min=0,max=12"`
	BankName      string        `json:"bank_name,omitempty"`
	AccountNumber string        `json:"account_number,omitempty"`
	DepositorName string        `json:"depositor_name,omitempty"`
}

// OrderItem is a snapshot of a cart line at order time.
type OrderItem struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Subtotal  int64  `json:"subtotal"`
}

// Order is a placed order.
type Order struct {
	ID             uuid.UUID     `json:"id"`
	OrderNumber    string        `json:"order_number"`
	SessionID      string        `json:"-"`
	Items          []OrderItem   `json:"items"`
	ShippingInfo   ShippingInfo  `json:"shipping_info"`
	PaymentInfo    PaymentInfo   `json:"payment_info"`
	Subtotal       int64         `json:"subtotal"`
	DiscountAmount int64         `json:"discount_amount"`
	ShippingFee    int64         `json:"shipping_fee"`
	TotalAmount    int64         `json:"total_amount"`
	EarnedPoints   int64         `json:"earned_points"`
	Status         OrderStatus   `json:"status"`
	PaymentStatus  PaymentStatus `json:"payment_status"`

	TrackingCarrier *string `json:"tracking_carrier,omitempty"`
	TrackingNumber  *string `json:"tracking_number,omitempty"`
	CancelReason    *string `json:"cancel_reason,omitempty"`

	OrderedAt   time.Time  `json:"ordered_at"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	ShippedAt   *time.Time `json:"shipped_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

// CreateOrderRequest is the payload assembled by the checkout session
// on the terminal transition.
type CreateOrderRequest struct {
	SessionID    string
	ShippingInfo ShippingInfo
	PaymentInfo  PaymentInfo
	Items        []CartItem
	Totals       CartTotals
}

// OrderFilters narrows an order listing.
type OrderFilters struct {
	Status      OrderStatus
	From        *time.Time
	To          *time.Time
	SearchQuery string
}
