package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	t.Run("success_happy_path", func(t *testing.T) {
		assert.True(t, OrderStatusPending.CanTransitionTo(OrderStatusConfirmed))
		assert.True(t, OrderStatusConfirmed.CanTransitionTo(OrderStatusPreparing))
		assert.True(t, OrderStatusPreparing.CanTransitionTo(OrderStatusShipped))
		assert.True(t, OrderStatusShipped.CanTransitionTo(OrderStatusDelivered))
	})

	t.Run("success_cancellation_paths", func(t *testing.T) {
		assert.True(t, OrderStatusPending.CanTransitionTo(OrderStatusCancelled))
		assert.True(t, OrderStatusConfirmed.CanTransitionTo(OrderStatusCancelled))
		assert.True(t, OrderStatusPreparing.CanTransitionTo(OrderStatusCancelled))
		assert.False(t, OrderStatusShipped.CanTransitionTo(OrderStatusCancelled))
		assert.True(t, OrderStatusCancelled.CanTransitionTo(OrderStatusRefunded))
	})

	t.Run("fail_terminal_states", func(t *testing.T) {
		for _, next := range []OrderStatus{
			OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
			OrderStatusShipped, OrderStatusCancelled, OrderStatusRefunded,
		} {
			assert.False(t, OrderStatusDelivered.CanTransitionTo(next))
			assert.False(t, OrderStatusRefunded.CanTransitionTo(next))
		}
	})

	t.Run("fail_skipping_states", func(t *testing.T) {
		assert.False(t, OrderStatusPending.CanTransitionTo(OrderStatusShipped))
		assert.False(t, OrderStatusConfirmed.CanTransitionTo(OrderStatusDelivered))
	})
}

func TestCheckoutStepOrder(t *testing.T) {
	t.Run("success_forward", func(t *testing.T) {
		assert.Equal(t, StepPayment, StepShipping.Next())
		assert.Equal(t, StepConfirm, StepPayment.Next())
		assert.Equal(t, StepConfirm, StepConfirm.Next())
	})

	t.Run("success_backward", func(t *testing.T) {
		assert.Equal(t, StepPayment, StepConfirm.Previous())
		assert.Equal(t, StepShipping, StepPayment.Previous())
		assert.Equal(t, StepShipping, StepShipping.Previous())
	})
}

func TestPaymentMethod(t *testing.T) {
	assert.True(t, PaymentMethodCard.IsValid())
	assert.False(t, PaymentMethod("BITCOIN").IsValid())

	assert.True(t, PaymentMethodKakao.IsSimplePay())
	assert.True(t, PaymentMethodToss.IsSimplePay())
	assert.False(t, PaymentMethodCard.IsSimplePay())
}
