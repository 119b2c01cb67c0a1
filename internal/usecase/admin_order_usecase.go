package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/validator"
)

// AdminOrderUsecase は管理者による注文ステータス遷移。
// 遷移表のガードは置かない（どのステータスからどこへでも動かせる）。
// deliveredでdeliveredAt、cancelledでcancelledAtを刻む。
type AdminOrderUsecase struct {
	users repo.UserRepository
	tx    repo.TransactionManager
	clock Clock
}

func NewAdminOrderUsecase(users repo.UserRepository, tx repo.TransactionManager, clock Clock) *AdminOrderUsecase {
	return &AdminOrderUsecase{users: users, tx: tx, clock: clock}
}

// nilのフィールドは触らない部分更新
type UpdateOrderInput struct {
	UserID        string
	OrderID       string
	OrderStatus   *string
	TrackingID    *string
	PaymentStatus *string
}

// 同じデータの3つのビュー（呼び出し側が使いやすい方を使う）
type UpdateOrderOutput struct {
	Updated model.Order
	Others  []model.Order
	All     []model.Order
}

func (u *AdminOrderUsecase) UpdateOrder(ctx context.Context, in UpdateOrderInput) (UpdateOrderOutput, error) {
	if err := validateUserID(in.UserID); err != nil {
		return UpdateOrderOutput{}, err
	}
	if in.OrderID == "" {
		return UpdateOrderOutput{}, NewHTTPError(http.StatusBadRequest, "Order ID is required")
	}
	if in.OrderStatus == nil && in.TrackingID == nil && in.PaymentStatus == nil {
		return UpdateOrderOutput{}, NewHTTPError(http.StatusBadRequest, "At least one of orderStatus, trackingId, paymentStatus is required")
	}

	//更新前に列挙だけ確定させる
	if in.OrderStatus != nil {
		if err := validator.ValidateOrderStatus(model.OrderStatus(*in.OrderStatus)); err != nil {
			return UpdateOrderOutput{}, NewHTTPError(http.StatusBadRequest, "Invalid order status")
		}
	}
	if in.PaymentStatus != nil {
		if err := validator.ValidatePaymentStatus(model.PaymentStatus(*in.PaymentStatus)); err != nil {
			return UpdateOrderOutput{}, NewHTTPError(http.StatusBadRequest, "Invalid payment status")
		}
	}

	if err := u.requireUser(ctx, in.UserID); err != nil {
		return UpdateOrderOutput{}, err
	}

	var out UpdateOrderOutput

	//検索→部分更新→タイムスタンプは1トランザクション
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//orderIdが重複していても先頭一致の1件だけを対象にする
		o, err := r.Orders().FindFirstByOrderID(ctx, in.UserID, in.OrderID)
		if err != nil {
			return err
		}

		if in.OrderStatus != nil {
			o.OrderStatus = model.OrderStatus(*in.OrderStatus)

			now := u.clock.Now()
			if o.OrderStatus == model.OrderStatusDelivered {
				o.DeliveredAt = &now
			}
			if o.OrderStatus == model.OrderStatusCancelled {
				o.CancelledAt = &now
			}
		}
		if in.TrackingID != nil {
			o.TrackingID = in.TrackingID
		}
		if in.PaymentStatus != nil {
			o.PaymentStatus = model.PaymentStatus(*in.PaymentStatus)
		}

		if err := r.Orders().Save(ctx, &o); err != nil {
			return err
		}

		all, err := r.Orders().ListByUserID(ctx, in.UserID)
		if err != nil {
			return err
		}

		others := make([]model.Order, 0, len(all))
		for _, x := range all {
			//同じorderIdを持つ重複行もまとめて除外
			if x.OrderID != in.OrderID {
				others = append(others, x)
			}
		}

		out = UpdateOrderOutput{Updated: o, Others: others, All: all}
		return nil
	})
	if err == repo.ErrNotFound {
		return UpdateOrderOutput{}, NewHTTPError(http.StatusNotFound, "Order not found")
	}
	if err != nil {
		return UpdateOrderOutput{}, NewHTTPErrorWithDetail(http.StatusInternalServerError, "Server error", err)
	}

	return out, nil
}

func (u *AdminOrderUsecase) requireUser(ctx context.Context, userID string) error {
	ok, err := u.users.Exists(ctx, userID)
	if err != nil {
		return NewHTTPErrorWithDetail(http.StatusInternalServerError, "Server error", err)
	}
	if !ok {
		return NewHTTPError(http.StatusNotFound, "User not found")
	}
	return nil
}
