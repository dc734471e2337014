package checkout

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hanashop/storefront/internal/domain"
	"github.com/hanashop/storefront/pkg/errors"
)

var (
	phonePattern   = regexp.MustCompile(`^01[0-9]-?[0-9]{3,4}-?[0-9]{4}$`)
	zipPattern     = regexp.MustCompile(`^[0-9]{5}$`)
	cardPattern    = regexp.MustCompile(`^[0-9]{16}$`)
	accountPattern = regexp.MustCompile(`^[0-9]{10,14}$`)
)

// CardIssuers is the fixed allow-list for card payments.
var CardIssuers = []string{
	"Samsung Card", "Shinhan Card", "Hyundai Card", "Woori Card",
	"KB Kookmin Card", "Hana Card", "NH Card", "BC Card", "Lotte Card",
	"IBK", "Citi Card", "KakaoBank", "K Bank", "Toss Bank",
}

// Banks is the fixed allow-list for bank transfers.
var Banks = []string{
	"KB Kookmin", "Shinhan", "Woori", "NH Nonghyup", "Hana", "IBK",
	"SC First", "Citibank Korea", "KakaoBank", "Toss Bank", "K Bank",
	"Saemaul", "Shinhyup", "Post Office",
}

// Payment amount bounds. Phone billing has a lower per-transaction cap.
const (
	MinPaymentAmount  int64 = 100
	MaxPaymentAmount  int64 = 100000000
	MaxPhonePayAmount int64 = 500000
)

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for empty tags, so errors are ignored.
	_ = v.RegisterValidation("krmobile", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("krzip", func(fl validator.FieldLevel) bool {
		return zipPattern.MatchString(fl.Field().String())
	})
	return v
}

// field names as they appear on the wire
var shippingFieldNames = map[string]string{
	"RecipientName":  "recipient_name",
	"RecipientPhone": "recipient_phone",
	"ZipCode":        "zip_code",
	"Address":        "address",
	"AddressDetail":  "address_detail",
	"DeliveryNote":   "delivery_note",
}

// ValidateShipping checks a shipping form against the format rules.
// Failures are reported per field; the returned error is always a
// *errors.ErrValidation.
func ValidateShipping(v *validator.Validate, info domain.ShippingInfo) error {
	err := v.Struct(info)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.NewValidation("shipping", err.Error())
	}

	var result errors.ErrValidation
	for _, fe := range fieldErrs {
		name := shippingFieldNames[fe.StructField()]
		if name == "" {
			name = strings.ToLower(fe.StructField())
		}
		result.Fields = append(result.Fields, errors.FieldError{
			Field:   name,
			Message: shippingMessage(name, fe.Tag(), fe.Param()),
		})
	}
	return &result
}

func shippingMessage(field, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, param)
	case "krmobile":
		return "enter a valid mobile number (e.g. 010-1234-5678)"
	case "krzip":
		return "enter a 5-digit zip code"
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// ValidatePayment checks a payment form. Required fields depend on the
// payment method variant.
func ValidatePayment(info domain.PaymentInfo) error {
	var result errors.ErrValidation

	if !info.Method.IsValid() {
		result.Fields = append(result.Fields, errors.FieldError{
			Field: "method", Message: "select a valid payment method",
		})
		return &result
	}

	switch info.Method {
	case domain.PaymentMethodCard:
		digits := stripSeparators(info.CardNumber)
		if !cardPattern.MatchString(digits) {
			result.Fields = append(result.Fields, errors.FieldError{
				Field: "card_number", Message: "enter a 16-digit card number",
			})
		} else if !luhnCheck(digits) {
			result.Fields = append(result.Fields, errors.FieldError{
				Field: "card_number", Message: "invalid card number",
			})
		}
		if !contains(CardIssuers, info.CardIssuer) {
			result.Fields = append(result.Fields, errors.FieldError{
				Field: "card_issuer", Message: "select a card issuer",
			})
		}
		if info.Installment < 0 || info.Installment > 12 {
			result.Fields = append(result.Fields, errors.FieldError{
				Field: "installment", Message: "installment must be between 0 and 12 months",
			})
		}

	case domain.PaymentMethodBank:
		if !contains(Banks, info.BankName) {
			result.Fields = append(result.Fields, errors.FieldError{
				Field: "bank_name", Message: "select a bank",
			})
		}
		if info.AccountNumber != "" && !accountPattern.MatchString(stripSeparators(info.AccountNumber)) {
			result.Fields = append(result.Fields, errors.FieldError{
				Field: "account_number", Message: "enter a 10-14 digit account number",
			})
		}
		if info.DepositorName != "" && (len([]rune(info.DepositorName)) < 2 || len([]rune(info.DepositorName)) > 50) {
			result.Fields = append(result.Fields, errors.FieldError{
				Field: "depositor_name", Message: "depositor name must be 2-50 characters",
			})
		}
	}

	if len(result.Fields) > 0 {
		return &result
	}
	return nil
}

// ValidateAmount checks payment amount bounds for the chosen method.
func ValidateAmount(method domain.PaymentMethod, amount int64) error {
	if amount < MinPaymentAmount {
		return errors.NewValidation("amount",
			fmt.Sprintf("minimum payment amount is %d", MinPaymentAmount))
	}
	if amount > MaxPaymentAmount {
		return errors.NewValidation("amount",
			fmt.Sprintf("payment amount cannot exceed %d", MaxPaymentAmount))
	}
	if method == domain.PaymentMethodPhone && amount > MaxPhonePayAmount {
		return errors.NewValidation("amount",
			fmt.Sprintf("phone billing is limited to %d", MaxPhonePayAmount))
	}
	return nil
}

// luhnCheck validates a 16-digit card number checksum.
func luhnCheck(digits string) bool {
	if len(digits) != 16 {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

func stripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || r == ' ' {
			return -1
		}
		return r
	}, s)
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

// MaskCardNumber obscures the middle digits (1234-****-****-5678).
func MaskCardNumber(cardNumber string) string {
	digits := stripSeparators(cardNumber)
	if len(digits) != 16 {
		return cardNumber
	}
	return fmt.Sprintf("%s-****-****-%s", digits[:4], digits[12:])
}

// MaskAccountNumber obscures the middle of an account number.
func MaskAccountNumber(accountNumber string) string {
	if len(accountNumber) < 8 {
		return accountNumber
	}
	return fmt.Sprintf("%s-****-%s", accountNumber[:3], accountNumber[len(accountNumber)-4:])
}
