package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/validator"
)

// OrderUsecase は注文の作成と参照。
// 直接placeorder（orderId持ち込み）とチェックアウト（orderId生成＋カートクリア）の
// 2つの入口を持つ。どちらもtotalAmountは申告値をそのまま信じる。
type OrderUsecase struct {
	users repo.UserRepository
	tx    repo.TransactionManager
	clock Clock
	idGen OrderIDGenerator
}

func NewOrderUsecase(users repo.UserRepository, tx repo.TransactionManager, clock Clock, idGen OrderIDGenerator) *OrderUsecase {
	return &OrderUsecase{users: users, tx: tx, clock: clock, idGen: idGen}
}

type OrderItemInput struct {
	ProductID string
	Image     string
	Title     string
	Price     string
	Quantity  int64
}

type ShippingInput struct {
	FullName     string
	Phone        string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	Pincode      string
	Country      string
}

type DirectOrderInput struct {
	UserID        string
	OrderID       string
	Items         []OrderItemInput
	TotalAmount   float64
	OrderStatus   string
	PaymentMethod string
	PaymentStatus string
	Shipping      ShippingInput
}

type CheckoutInput struct {
	UserID        string
	Items         []OrderItemInput
	TotalAmount   float64
	PaymentMethod string
	PaymentStatus string
	Shipping      ShippingInput
}

// PlaceDirect は呼び出し側が組んだ注文をそのまま履歴へ追加する。
// orderIdの一意性もtotalAmountの整合も検証しない。
// カートには一切触らない。
func (u *OrderUsecase) PlaceDirect(ctx context.Context, in DirectOrderInput) (string, error) {
	if err := validateUserID(in.UserID); err != nil {
		return "", err
	}
	if in.OrderID == "" {
		return "", NewHTTPError(http.StatusBadRequest, "Order ID is required")
	}

	order := model.Order{
		UserID:        in.UserID,
		OrderID:       in.OrderID,
		OrderDate:     u.clock.Now(),
		TotalAmount:   in.TotalAmount,
		OrderStatus:   defaultOrderStatus(in.OrderStatus),
		PaymentMethod: defaultPaymentMethod(in.PaymentMethod, model.PaymentMethodCOD),
		PaymentStatus: defaultPaymentStatus(in.PaymentStatus),
		ShippingAddress: toShippingAddress(in.Shipping),
		OrderItems:    toOrderItems(in.Items),
	}
	if err := validateOrderEnums(order); err != nil {
		return "", err
	}

	if err := u.requireUser(ctx, in.UserID); err != nil {
		return "", err
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		return r.Orders().Create(ctx, &order)
	})
	if err != nil {
		return "", NewHTTPErrorWithDetail(http.StatusInternalServerError, "Server error", err)
	}

	return in.OrderID, nil
}

// Checkout はカート由来の注文を確定する。
// orderIdをサーバーで生成し、注文追加とカートクリアを1トランザクションで行う。
func (u *OrderUsecase) Checkout(ctx context.Context, in CheckoutInput) (model.Order, error) {
	if err := validateUserID(in.UserID); err != nil {
		return model.Order{}, err
	}
	if len(in.Items) == 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "User ID and order items are required")
	}
	if err := validator.ValidateShipping(in.Shipping.FullName, in.Shipping.Phone); err != nil {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "Complete shipping details are required")
	}

	order := model.Order{
		UserID:        in.UserID,
		OrderID:       u.idGen.NewOrderID(),
		OrderDate:     u.clock.Now(),
		TotalAmount:   in.TotalAmount,
		OrderStatus:   model.OrderStatusPending,
		PaymentMethod: defaultPaymentMethod(in.PaymentMethod, model.PaymentMethodCOD),
		PaymentStatus: defaultPaymentStatus(in.PaymentStatus),
		ShippingAddress: toShippingAddress(in.Shipping),
		OrderItems:    toOrderItems(in.Items),
	}
	if err := validateOrderEnums(order); err != nil {
		return model.Order{}, err
	}

	if err := u.requireUser(ctx, in.UserID); err != nil {
		return model.Order{}, err
	}

	//注文追加＋カートクリアは不可分
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Orders().Create(ctx, &order); err != nil {
			return err
		}
		return r.Carts().Clear(ctx, in.UserID)
	})
	if err != nil {
		return model.Order{}, NewHTTPErrorWithDetail(http.StatusInternalServerError, "Failed to place order", err)
	}

	return order, nil
}

// GetOrder は先頭一致で1件返す（orderId重複を許容しているため）。
func (u *OrderUsecase) GetOrder(ctx context.Context, userID string, orderID string) (model.Order, error) {
	if err := validateUserID(userID); err != nil {
		return model.Order{}, err
	}
	if err := u.requireUser(ctx, userID); err != nil {
		return model.Order{}, err
	}

	var out model.Order
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindFirstByOrderID(ctx, userID, orderID)
		if err != nil {
			return err
		}
		out = o
		return nil
	})
	if err == repo.ErrNotFound {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "Order not found")
	}
	if err != nil {
		return model.Order{}, NewHTTPErrorWithDetail(http.StatusInternalServerError, "Server error", err)
	}
	return out, nil
}

// ListOrders は新しい順で全件返す。
func (u *OrderUsecase) ListOrders(ctx context.Context, userID string) ([]model.Order, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	if err := u.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	var outs []model.Order
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListByUserID(ctx, userID)
		if err != nil {
			return err
		}
		outs = orders
		return nil
	})
	if err != nil {
		return nil, NewHTTPErrorWithDetail(http.StatusInternalServerError, "Server error", err)
	}
	return outs, nil
}

func (u *OrderUsecase) requireUser(ctx context.Context, userID string) error {
	ok, err := u.users.Exists(ctx, userID)
	if err != nil {
		return NewHTTPErrorWithDetail(http.StatusInternalServerError, "Server error", err)
	}
	if !ok {
		return NewHTTPError(http.StatusNotFound, "User not found")
	}
	return nil
}

func toOrderItems(items []OrderItemInput) []model.OrderItem {
	out := make([]model.OrderItem, 0, len(items))
	for _, it := range items {
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		out = append(out, model.OrderItem{
			ProductID: it.ProductID,
			Image:     it.Image,
			Title:     it.Title,
			Price:     it.Price,
			Quantity:  qty,
		})
	}
	return out
}

func toShippingAddress(s ShippingInput) model.ShippingAddress {
	country := s.Country
	if country == "" {
		country = "India"
	}
	return model.ShippingAddress{
		FullName:     s.FullName,
		Phone:        s.Phone,
		AddressLine1: s.AddressLine1,
		AddressLine2: s.AddressLine2,
		City:         s.City,
		State:        s.State,
		Pincode:      s.Pincode,
		Country:      country,
	}
}

func defaultOrderStatus(s string) model.OrderStatus {
	if s == "" {
		return model.OrderStatusPending
	}
	return model.OrderStatus(s)
}

func defaultPaymentMethod(m string, def model.PaymentMethod) model.PaymentMethod {
	if m == "" {
		return def
	}
	return model.PaymentMethod(m)
}

func defaultPaymentStatus(s string) model.PaymentStatus {
	if s == "" {
		return model.PaymentStatusPending
	}
	return model.PaymentStatus(s)
}

// 列挙チェック（元システムはスキーマ側の列挙制約。ここでは保存前に400で返す）
func validateOrderEnums(o model.Order) error {
	if err := validator.ValidateOrderStatus(o.OrderStatus); err != nil {
		return NewHTTPError(http.StatusBadRequest, "Invalid order status")
	}
	if err := validator.ValidatePaymentMethod(o.PaymentMethod); err != nil {
		return NewHTTPError(http.StatusBadRequest, "Invalid payment method")
	}
	if err := validator.ValidatePaymentStatus(o.PaymentStatus); err != nil {
		return NewHTTPError(http.StatusBadRequest, "Invalid payment status")
	}
	return nil
}
