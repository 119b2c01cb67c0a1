package model

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type PaymentMethod string

const (
	PaymentMethodCOD        PaymentMethod = "cod"
	PaymentMethodCard       PaymentMethod = "card"
	PaymentMethodUPI        PaymentMethod = "upi"
	PaymentMethodNetBanking PaymentMethod = "netbanking"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
	PaymentStatusPaid      PaymentStatus = "paid"
)

// 注文に埋め込む配送先スナップショット
type ShippingAddress struct {
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	Country      string `gorm:"default:'India'" json:"country"`
}

// 注文1件。
// IDが挿入順。OrderIDはユニーク制約なし（重複を許容し、検索は先頭一致）。
// TotalAmountは呼び出し側の申告値をそのまま保存する（明細から再計算しない）。
type Order struct {
	ID                 int64           `gorm:"primaryKey;autoIncrement" json:"-"`
	UserID             string          `gorm:"type:varchar(36);not null;index" json:"-"`
	OrderID            string          `gorm:"column:order_id;not null;index" json:"orderId"`
	OrderDate          time.Time       `gorm:"not null" json:"orderDate"`
	TotalAmount        float64         `gorm:"not null" json:"totalAmount"`
	OrderStatus        OrderStatus     `gorm:"type:varchar(20);not null;default:'pending'" json:"orderStatus"`
	PaymentMethod      PaymentMethod   `gorm:"type:varchar(20);not null" json:"paymentMethod"`
	PaymentStatus      PaymentStatus   `gorm:"type:varchar(20);not null;default:'pending'" json:"paymentStatus"`
	ShippingAddress    ShippingAddress `gorm:"embedded;embeddedPrefix:shipping_" json:"shippingAddress"`
	TrackingID         *string         `gorm:"column:tracking_id" json:"trackingId,omitempty"`
	DeliveredAt        *time.Time      `json:"deliveredAt,omitempty"`
	CancelledAt        *time.Time      `json:"cancelledAt,omitempty"`
	CancellationReason *string         `json:"cancellationReason,omitempty"`
	RazorpayOrderID    *string         `gorm:"column:razorpay_order_id" json:"razorpayOrderId,omitempty"`
	RazorpayPaymentID  *string         `gorm:"column:razorpay_payment_id" json:"razorpayPaymentId,omitempty"`

	OrderItems []OrderItem `gorm:"foreignKey:OrderRef" json:"orderItems"`
}
