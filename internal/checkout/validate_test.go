package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanashop/storefront/internal/domain"
	"github.com/hanashop/storefront/pkg/errors"
)

func validShipping() domain.ShippingInfo {
	return domain.ShippingInfo{
		RecipientName:  "Kim Minji",
		RecipientPhone: "010-1234-5678",
		ZipCode:        "06236",
		Address:        "123 Teheran-ro, Gangnam-gu, Seoul",
		AddressDetail:  "Apt 403",
	}
}

func TestValidateShipping(t *testing.T) {
	v := newValidator()

	t.Run("success_complete_form", func(t *testing.T) {
		assert.NoError(t, ValidateShipping(v, validShipping()))
	})

	t.Run("success_phone_without_separators", func(t *testing.T) {
		info := validShipping()
		info.RecipientPhone = "01012345678"

		assert.NoError(t, ValidateShipping(v, info))
	})

	t.Run("fail_bad_phone_names_phone_field", func(t *testing.T) {
		info := validShipping()
		info.RecipientPhone = "123-4567"

		err := ValidateShipping(v, info)

		var vErr *errors.ErrValidation
		require.ErrorAs(t, err, &vErr)
		assert.True(t, vErr.HasField("recipient_phone"))
	})

	t.Run("fail_landline_prefix_rejected", func(t *testing.T) {
		info := validShipping()
		info.RecipientPhone = "02-1234-5678"

		err := ValidateShipping(v, info)

		var vErr *errors.ErrValidation
		require.ErrorAs(t, err, &vErr)
		assert.True(t, vErr.HasField("recipient_phone"))
	})

	t.Run("fail_zip_must_be_five_digits", func(t *testing.T) {
		info := validShipping()
		info.ZipCode = "1234"

		err := ValidateShipping(v, info)

		var vErr *errors.ErrValidation
		require.ErrorAs(t, err, &vErr)
		assert.True(t, vErr.HasField("zip_code"))
	})

	t.Run("fail_missing_fields_all_reported", func(t *testing.T) {
		err := ValidateShipping(v, domain.ShippingInfo{})

		var vErr *errors.ErrValidation
		require.ErrorAs(t, err, &vErr)
		assert.True(t, vErr.HasField("recipient_name"))
		assert.True(t, vErr.HasField("recipient_phone"))
		assert.True(t, vErr.HasField("zip_code"))
		assert.True(t, vErr.HasField("address"))
		assert.True(t, vErr.HasField("address_detail"))
	})

	t.Run("fail_name_too_short", func(t *testing.T) {
		info := validShipping()
		info.RecipientName = "K"

		err := ValidateShipping(v, info)

		var vErr *errors.ErrValidation
		require.ErrorAs(t, err, &vErr)
		assert.True(t, vErr.HasField("recipient_name"))
	})
}

func TestValidatePayment(t *testing.T) {
	t.Run("success_card", func(t *testing.T) {
		err := ValidatePayment(domain.PaymentInfo{
			Method:      domain.PaymentMethodCard,
			CardNumber:  "4111-1111-1111-1111",
			CardIssuer:  "Shinhan Card",
			Installment: 3,
		})

		assert.NoError(t, err)
	})

	t.Run("fail_card_luhn_checksum", func(t *testing.T) {
		err := ValidatePayment(domain.PaymentInfo{
			Method:     domain.PaymentMethodCard,
			CardNumber: "4111-1111-1111-1112",
			CardIssuer: "Shinhan Card",
		})

		var vErr *errors.ErrValidation
		require.ErrorAs(t, err, &vErr)
		assert.True(t, vErr.HasField("card_number"))
	})

	t.Run("fail_card_too_short", func(t *testing.T) {
		err := ValidatePayment(domain.PaymentInfo{
			Method:     domain.PaymentMethodCard,
			CardNumber: "4111-1111",
			CardIssuer: "Shinhan Card",
		})

		var vErr *errors.ErrValidation
		require.ErrorAs(t, err, &vErr)
		assert.True(t, vErr.HasField("card_number"))
	})

	t.Run("fail_unknown_issuer", func(t *testing.T) {
		err := ValidatePayment(domain.PaymentInfo{
			Method:     domain.PaymentMethodCard,
			CardNumber: "4111-1111-1111-1111",
			CardIssuer: "Some Card",
		})

		var vErr *errors.ErrValidation
		require.ErrorAs(t, err, &vErr)
		assert.True(t, vErr.HasField("card_issuer"))
	})

	t.Run("fail_installment_out_of_range", func(t *testing.T) {
		err := ValidatePayment(domain.PaymentInfo{
			Method:      domain.PaymentMethodCard,
			CardNumber:  "4111-1111-1111-1111",
			CardIssuer:  "Shinhan Card",
			Installment: 13,
		})

		var vErr *errors.ErrValidation
		require.ErrorAs(t, err, &vErr)
		assert.True(t, vErr.HasField("installment"))
	})

	t.Run("success_bank_transfer", func(t *testing.T) {
		err := ValidatePayment(domain.PaymentInfo{
			Method:        domain.PaymentMethodBank,
			BankName:      "KakaoBank",
			AccountNumber: "3333012345678",
			DepositorName: "Kim Minji",
		})

		assert.NoError(t, err)
	})

	t.Run("fail_bank_account_not_numeric", func(t *testing.T) {
		err := ValidatePayment(domain.PaymentInfo{
			Method:        domain.PaymentMethodBank,
			BankName:      "KakaoBank",
			AccountNumber: "33-ab-cd",
		})

		var vErr *errors.ErrValidation
		require.ErrorAs(t, err, &vErr)
		assert.True(t, vErr.HasField("account_number"))
	})

	t.Run("success_simple_pay_needs_no_details", func(t *testing.T) {
		for _, method := range []domain.PaymentMethod{
			domain.PaymentMethodKakao,
			domain.PaymentMethodNaver,
			domain.PaymentMethodToss,
		} {
			assert.NoError(t, ValidatePayment(domain.PaymentInfo{Method: method}))
		}
	})

	t.Run("fail_unknown_method", func(t *testing.T) {
		err := ValidatePayment(domain.PaymentInfo{Method: "BITCOIN"})

		var vErr *errors.ErrValidation
		require.ErrorAs(t, err, &vErr)
		assert.True(t, vErr.HasField("method"))
	})
}

func TestValidateAmount(t *testing.T) {
	t.Run("success_in_range", func(t *testing.T) {
		assert.NoError(t, ValidateAmount(domain.PaymentMethodCard, 25000))
	})

	t.Run("fail_below_minimum", func(t *testing.T) {
		assert.Error(t, ValidateAmount(domain.PaymentMethodCard, 99))
	})

	t.Run("fail_above_maximum", func(t *testing.T) {
		assert.Error(t, ValidateAmount(domain.PaymentMethodCard, 100000001))
	})

	t.Run("fail_phone_billing_cap", func(t *testing.T) {
		assert.NoError(t, ValidateAmount(domain.PaymentMethodCard, 600000))
		assert.Error(t, ValidateAmount(domain.PaymentMethodPhone, 600000))
	})
}

func TestMasking(t *testing.T) {
	t.Run("success_card_number", func(t *testing.T) {
		assert.Equal(t, "4111-****-****-1111", MaskCardNumber("4111-1111-1111-1111"))
		assert.Equal(t, "4111-****-****-1111", MaskCardNumber("4111111111111111"))
	})

	t.Run("success_account_number", func(t *testing.T) {
		assert.Equal(t, "333-****-5678", MaskAccountNumber("3333012345678"))
	})

	t.Run("success_short_values_left_alone", func(t *testing.T) {
		assert.Equal(t, "1234", MaskCardNumber("1234"))
		assert.Equal(t, "1234567", MaskAccountNumber("1234567"))
	})
}
