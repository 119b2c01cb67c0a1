package validator

import (
	"testing"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestValidateShipping(t *testing.T) {
	assert.NoError(t, ValidateShipping("Taro Yamada", "9999999999"))

	//fullNameとphoneはどちらも必須
	assert.ErrorIs(t, ValidateShipping("", "9999999999"), ErrShippingIncomplete)
	assert.ErrorIs(t, ValidateShipping("Taro Yamada", ""), ErrShippingIncomplete)
	assert.ErrorIs(t, ValidateShipping("  ", "  "), ErrShippingIncomplete)
}

func TestValidateOrderStatus(t *testing.T) {
	for _, s := range []model.OrderStatus{
		model.OrderStatusPending,
		model.OrderStatusConfirmed,
		model.OrderStatusProcessing,
		model.OrderStatusShipped,
		model.OrderStatusDelivered,
		model.OrderStatusCancelled,
	} {
		assert.NoError(t, ValidateOrderStatus(s))
	}

	assert.ErrorIs(t, ValidateOrderStatus("unknown"), ErrInvalidOrderStatus)
	//大文字は別物として弾く
	assert.ErrorIs(t, ValidateOrderStatus("Pending"), ErrInvalidOrderStatus)
}

func TestValidatePaymentMethod(t *testing.T) {
	for _, m := range []model.PaymentMethod{
		model.PaymentMethodCOD,
		model.PaymentMethodCard,
		model.PaymentMethodUPI,
		model.PaymentMethodNetBanking,
	} {
		assert.NoError(t, ValidatePaymentMethod(m))
	}

	assert.ErrorIs(t, ValidatePaymentMethod("cheque"), ErrInvalidPaymentMethod)
}

func TestValidatePaymentStatus(t *testing.T) {
	for _, s := range []model.PaymentStatus{
		model.PaymentStatusPending,
		model.PaymentStatusCompleted,
		model.PaymentStatusFailed,
		model.PaymentStatusRefunded,
		model.PaymentStatusPaid,
	} {
		assert.NoError(t, ValidatePaymentStatus(s))
	}

	assert.ErrorIs(t, ValidatePaymentStatus("maybe"), ErrInvalidPaymentStatus)
}
