package cart

import (
	"github.com/hanashop/storefront/internal/domain"
)

// Pricing constants. Fixed, not configurable.
const (
	// FreeShippingThreshold is the subtotal at or above which the
	// shipping fee is waived.
	FreeShippingThreshold int64 = 30000

	// BaseShippingFee is the flat fee charged below the threshold.
	BaseShippingFee int64 = 3000

	// BulkDiscountThreshold is the subtotal at or above which the
	// bulk discount applies.
	BulkDiscountThreshold int64 = 100000

	// BulkDiscountPercent is the flat discount rate, in percent.
	BulkDiscountPercent int64 = 5
)

// ComputeTotals derives cart totals from the given lines. Monetary
// fields are computed over selected lines only; TotalItemCount counts
// every line. Pure function; an empty list yields all-zero totals.
// Callers are responsible for rejecting invalid quantities before
// lines reach the calculator.
func ComputeTotals(items []domain.CartItem) domain.CartTotals {
	var t domain.CartTotals

	for _, item := range items {
		t.TotalItemCount += item.Quantity
		if !item.Selected {
			continue
		}
		t.Subtotal += item.UnitPrice * int64(item.Quantity)
		t.SelectedItemCount += item.Quantity
	}
	t.SelectedItemsPrice = t.Subtotal

	if t.Subtotal > 0 && t.Subtotal < FreeShippingThreshold {
		t.ShippingFee = BaseShippingFee
	}
	if t.Subtotal >= BulkDiscountThreshold {
		t.Discount = t.Subtotal * BulkDiscountPercent / 100
	}

	t.TotalPrice = t.Subtotal - t.Discount + t.ShippingFee
	return t
}

// FreeShippingRemaining returns how much more must be added to the
// subtotal to reach free shipping, or 0 if already reached.
func FreeShippingRemaining(subtotal int64) int64 {
	remaining := FreeShippingThreshold - subtotal
	if remaining < 0 {
		return 0
	}
	return remaining
}
