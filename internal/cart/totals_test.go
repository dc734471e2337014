package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hanashop/storefront/internal/domain"
)

func line(unitPrice int64, qty int, selected bool) domain.CartItem {
	return domain.CartItem{UnitPrice: unitPrice, Quantity: qty, Selected: selected}
}

func TestComputeTotals(t *testing.T) {
	t.Run("success_empty_cart_is_all_zero", func(t *testing.T) {
		totals := ComputeTotals(nil)

		assert.Equal(t, domain.CartTotals{}, totals)
	})

	t.Run("success_only_selected_items_count_toward_money", func(t *testing.T) {
		items := []domain.CartItem{
			line(10000, 2, true),
			line(5000, 1, false),
		}

		totals := ComputeTotals(items)

		assert.Equal(t, int64(20000), totals.Subtotal)
		assert.Equal(t, int64(3000), totals.ShippingFee)
		assert.Equal(t, int64(0), totals.Discount)
		assert.Equal(t, int64(23000), totals.TotalPrice)
		assert.Equal(t, 3, totals.TotalItemCount)
		assert.Equal(t, 2, totals.SelectedItemCount)
	})

	t.Run("success_free_shipping_at_threshold", func(t *testing.T) {
		totals := ComputeTotals([]domain.CartItem{line(30000, 1, true)})

		assert.Equal(t, int64(30000), totals.Subtotal)
		assert.Equal(t, int64(0), totals.ShippingFee)
	})

	t.Run("success_shipping_charged_below_threshold", func(t *testing.T) {
		totals := ComputeTotals([]domain.CartItem{line(29999, 1, true)})

		assert.Equal(t, int64(29999), totals.Subtotal)
		assert.Equal(t, int64(3000), totals.ShippingFee)
	})

	t.Run("success_bulk_discount_at_threshold", func(t *testing.T) {
		totals := ComputeTotals([]domain.CartItem{line(100000, 1, true)})

		assert.Equal(t, int64(5000), totals.Discount)
		assert.Equal(t, int64(95000), totals.TotalPrice)
	})

	t.Run("success_no_discount_below_threshold", func(t *testing.T) {
		totals := ComputeTotals([]domain.CartItem{line(99999, 1, true)})

		assert.Equal(t, int64(0), totals.Discount)
	})

	t.Run("success_discount_truncates_fractional_krw", func(t *testing.T) {
		// 5% of 100010 is 5000.5, truncated to 5000
		totals := ComputeTotals([]domain.CartItem{line(100010, 1, true)})

		assert.Equal(t, int64(5000), totals.Discount)
	})

	t.Run("success_pure_function_is_idempotent", func(t *testing.T) {
		items := []domain.CartItem{
			line(12900, 3, true),
			line(45000, 1, false),
			line(19900, 2, true),
		}

		first := ComputeTotals(items)
		second := ComputeTotals(items)

		assert.Equal(t, first, second)
	})

	t.Run("success_total_price_identity_holds", func(t *testing.T) {
		cases := [][]domain.CartItem{
			{line(100, 1, true)},
			{line(29999, 1, true)},
			{line(30000, 1, true)},
			{line(100000, 1, true)},
			{line(159000, 2, true), line(12900, 5, false)},
		}

		for _, items := range cases {
			totals := ComputeTotals(items)
			assert.Equal(t, totals.Subtotal-totals.Discount+totals.ShippingFee, totals.TotalPrice)
		}
	})

	t.Run("success_all_unselected_charges_no_shipping", func(t *testing.T) {
		totals := ComputeTotals([]domain.CartItem{line(10000, 2, false)})

		assert.Equal(t, int64(0), totals.Subtotal)
		assert.Equal(t, int64(0), totals.ShippingFee)
		assert.Equal(t, int64(0), totals.TotalPrice)
		assert.Equal(t, 2, totals.TotalItemCount)
		assert.Equal(t, 0, totals.SelectedItemCount)
	})
}

func TestFreeShippingRemaining(t *testing.T) {
	assert.Equal(t, int64(10000), FreeShippingRemaining(20000))
	assert.Equal(t, int64(0), FreeShippingRemaining(30000))
	assert.Equal(t, int64(0), FreeShippingRemaining(45000))
}
