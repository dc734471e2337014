package domain

// OrderStatus represents the status of a placed order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusRefunded  OrderStatus = "REFUNDED"
)

// IsValid checks if the order status is valid
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusPreparing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
		OrderStatusRefunded:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if a status transition is valid
func (s OrderStatus) CanTransitionTo(newStatus OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return newStatus == OrderStatusConfirmed ||
			newStatus == OrderStatusCancelled
	case OrderStatusConfirmed:
		return newStatus == OrderStatusPreparing ||
			newStatus == OrderStatusCancelled
	case OrderStatusPreparing:
		return newStatus == OrderStatusShipped ||
			newStatus == OrderStatusCancelled
	case OrderStatusShipped:
		return newStatus == OrderStatusDelivered
	case OrderStatusCancelled:
		return newStatus == OrderStatusRefunded
	case OrderStatusDelivered, OrderStatusRefunded:
		return false // Terminal states
	default:
		return false
	}
}

// PaymentStatus represents the payment state of an order
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusCancelled PaymentStatus = "CANCELLED"
)

// PaymentMethod discriminates the PaymentInfo variants
type PaymentMethod string

const (
	PaymentMethodCard    PaymentMethod = "CARD"
	PaymentMethodBank    PaymentMethod = "BANK"
	PaymentMethodVirtual PaymentMethod = "VIRTUAL"
	PaymentMethodPhone   PaymentMethod = "PHONE"
	PaymentMethodKakao   PaymentMethod = "KAKAO"
	PaymentMethodNaver   PaymentMethod = "NAVER"
	PaymentMethodToss    PaymentMethod = "TOSS"
)

// IsValid checks if the payment method is one of the supported variants
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCard,
		PaymentMethodBank,
		PaymentMethodVirtual,
		PaymentMethodPhone,
		PaymentMethodKakao,
		PaymentMethodNaver,
		PaymentMethodToss:
		return true
	default:
		return false
	}
}

// IsSimplePay reports whether the method is a one-tap wallet payment
func (m PaymentMethod) IsSimplePay() bool {
	return m == PaymentMethodKakao || m == PaymentMethodNaver || m == PaymentMethodToss
}

// CheckoutStep is one of the three linearly-ordered checkout states
type CheckoutStep string

const (
	StepShipping CheckoutStep = "SHIPPING"
	StepPayment  CheckoutStep = "PAYMENT"
	StepConfirm  CheckoutStep = "CONFIRM"
)

// IsValid checks if the step is a known checkout state
func (s CheckoutStep) IsValid() bool {
	return s == StepShipping || s == StepPayment || s == StepConfirm
}

// Next returns the following step, or the step itself at the end of the flow
func (s CheckoutStep) Next() CheckoutStep {
	switch s {
	case StepShipping:
		return StepPayment
	case StepPayment:
		return StepConfirm
	default:
		return s
	}
}

// Previous returns the preceding step, or the step itself at the start of the flow
func (s CheckoutStep) Previous() CheckoutStep {
	switch s {
	case StepConfirm:
		return StepPayment
	case StepPayment:
		return StepShipping
	default:
		return s
	}
}
