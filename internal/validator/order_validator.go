package validator

import (
	"errors"
	"strings"

	"app/internal/domain/model"
)

var (
	// 配送先の必須項目（fullName / phone）が足りない
	ErrShippingIncomplete = errors.New("shipping details incomplete")

	// 列挙にない値
	ErrInvalidOrderStatus   = errors.New("invalid order status")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
)

// ValidateShipping はチェックアウトに必要な最低限（fullName/phone）を見る。
// それ以外の住所項目は任意。
func ValidateShipping(fullName string, phone string) error {
	if strings.TrimSpace(fullName) == "" || strings.TrimSpace(phone) == "" {
		return ErrShippingIncomplete
	}
	return nil
}

func ValidateOrderStatus(s model.OrderStatus) error {
	switch s {
	case model.OrderStatusPending,
		model.OrderStatusConfirmed,
		model.OrderStatusProcessing,
		model.OrderStatusShipped,
		model.OrderStatusDelivered,
		model.OrderStatusCancelled:
		return nil
	}
	return ErrInvalidOrderStatus
}

func ValidatePaymentMethod(m model.PaymentMethod) error {
	switch m {
	case model.PaymentMethodCOD,
		model.PaymentMethodCard,
		model.PaymentMethodUPI,
		model.PaymentMethodNetBanking:
		return nil
	}
	return ErrInvalidPaymentMethod
}

func ValidatePaymentStatus(s model.PaymentStatus) error {
	switch s {
	case model.PaymentStatusPending,
		model.PaymentStatusCompleted,
		model.PaymentStatusFailed,
		model.PaymentStatusRefunded,
		model.PaymentStatusPaid:
		return nil
	}
	return ErrInvalidPaymentStatus
}
