package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var adminNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func newAdminOrderUC(users *MockUserRepository, orders *MockOrderRepository) *usecase.AdminOrderUsecase {
	tx := &stubTxManager{repos: stubTxRepos{users: users, orders: orders}}
	return usecase.NewAdminOrderUsecase(users, tx, &fixedClock{t: adminNow})
}

func strPtr(s string) *string { return &s }

// deliveredへ遷移 => deliveredAtが刻まれ、cancelledAtは触らない
func TestAdminOrderUsecase_UpdateOrder_Delivered_StampsDeliveredAt(t *testing.T) {
	ctx := context.Background()

	users := new(MockUserRepository)
	orders := new(MockOrderRepository)

	users.On("Exists", mock.Anything, testUserID).Return(true, nil)
	orders.On("FindFirstByOrderID", mock.Anything, testUserID, "ORD1").Return(model.Order{
		OrderID:     "ORD1",
		OrderStatus: model.OrderStatusShipped,
	}, nil)
	orders.On("Save", mock.Anything, mock.MatchedBy(func(o *model.Order) bool {
		return o.OrderStatus == model.OrderStatusDelivered &&
			o.DeliveredAt != nil && o.DeliveredAt.Equal(adminNow) &&
			o.CancelledAt == nil
	})).Return(nil)
	orders.On("ListByUserID", mock.Anything, testUserID).Return([]model.Order{
		{OrderID: "ORD1", OrderStatus: model.OrderStatusDelivered},
		{OrderID: "ORD2"},
	}, nil)

	u := newAdminOrderUC(users, orders)

	out, err := u.UpdateOrder(ctx, usecase.UpdateOrderInput{
		UserID:      testUserID,
		OrderID:     "ORD1",
		OrderStatus: strPtr("delivered"),
	})
	assert.NoError(t, err)
	assert.Equal(t, model.OrderStatusDelivered, out.Updated.OrderStatus)

	//othersは対象orderId以外、allは全件
	assert.Len(t, out.Others, 1)
	assert.Equal(t, "ORD2", out.Others[0].OrderID)
	assert.Len(t, out.All, 2)

	orders.AssertExpectations(t)
}

// cancelledへ遷移 => cancelledAtが刻まれる
func TestAdminOrderUsecase_UpdateOrder_Cancelled_StampsCancelledAt(t *testing.T) {
	ctx := context.Background()

	users := new(MockUserRepository)
	orders := new(MockOrderRepository)

	users.On("Exists", mock.Anything, testUserID).Return(true, nil)
	orders.On("FindFirstByOrderID", mock.Anything, testUserID, "ORD1").Return(model.Order{
		OrderID:     "ORD1",
		OrderStatus: model.OrderStatusPending,
	}, nil)
	orders.On("Save", mock.Anything, mock.MatchedBy(func(o *model.Order) bool {
		return o.OrderStatus == model.OrderStatusCancelled &&
			o.CancelledAt != nil && o.CancelledAt.Equal(adminNow) &&
			o.DeliveredAt == nil
	})).Return(nil)
	orders.On("ListByUserID", mock.Anything, testUserID).Return([]model.Order{
		{OrderID: "ORD1", OrderStatus: model.OrderStatusCancelled},
	}, nil)

	u := newAdminOrderUC(users, orders)

	_, err := u.UpdateOrder(ctx, usecase.UpdateOrderInput{
		UserID:      testUserID,
		OrderID:     "ORD1",
		OrderStatus: strPtr("cancelled"),
	})
	assert.NoError(t, err)
	orders.AssertExpectations(t)
}

// trackingIdだけの部分更新 => statusとタイムスタンプは触らない
func TestAdminOrderUsecase_UpdateOrder_TrackingOnly(t *testing.T) {
	ctx := context.Background()

	users := new(MockUserRepository)
	orders := new(MockOrderRepository)

	users.On("Exists", mock.Anything, testUserID).Return(true, nil)
	orders.On("FindFirstByOrderID", mock.Anything, testUserID, "ORD1").Return(model.Order{
		OrderID:     "ORD1",
		OrderStatus: model.OrderStatusShipped,
	}, nil)
	orders.On("Save", mock.Anything, mock.MatchedBy(func(o *model.Order) bool {
		return o.TrackingID != nil && *o.TrackingID == "TRK-42" &&
			o.OrderStatus == model.OrderStatusShipped &&
			o.DeliveredAt == nil && o.CancelledAt == nil
	})).Return(nil)
	orders.On("ListByUserID", mock.Anything, testUserID).Return([]model.Order{
		{OrderID: "ORD1"},
	}, nil)

	u := newAdminOrderUC(users, orders)

	_, err := u.UpdateOrder(ctx, usecase.UpdateOrderInput{
		UserID:     testUserID,
		OrderID:    "ORD1",
		TrackingID: strPtr("TRK-42"),
	})
	assert.NoError(t, err)
	orders.AssertExpectations(t)
}

// 更新フィールドが1つもない => 400
func TestAdminOrderUsecase_UpdateOrder_NoFields(t *testing.T) {
	ctx := context.Background()

	users := new(MockUserRepository)
	orders := new(MockOrderRepository)

	u := newAdminOrderUC(users, orders)

	_, err := u.UpdateOrder(ctx, usecase.UpdateOrderInput{UserID: testUserID, OrderID: "ORD1"})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)

	orders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

// 列挙外のorderStatus => 400、検索もしない
func TestAdminOrderUsecase_UpdateOrder_InvalidStatus(t *testing.T) {
	ctx := context.Background()

	users := new(MockUserRepository)
	orders := new(MockOrderRepository)

	u := newAdminOrderUC(users, orders)

	_, err := u.UpdateOrder(ctx, usecase.UpdateOrderInput{
		UserID:      testUserID,
		OrderID:     "ORD1",
		OrderStatus: strPtr("lost-in-space"),
	})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)

	orders.AssertNotCalled(t, "FindFirstByOrderID", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminOrderUsecase_UpdateOrder_OrderNotFound(t *testing.T) {
	ctx := context.Background()

	users := new(MockUserRepository)
	orders := new(MockOrderRepository)

	users.On("Exists", mock.Anything, testUserID).Return(true, nil)
	orders.On("FindFirstByOrderID", mock.Anything, testUserID, "nope").Return(model.Order{}, repo.ErrNotFound)

	u := newAdminOrderUC(users, orders)

	_, err := u.UpdateOrder(ctx, usecase.UpdateOrderInput{
		UserID:      testUserID,
		OrderID:     "nope",
		OrderStatus: strPtr("shipped"),
	})
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
	assert.Equal(t, "Order not found", he.Message)
}
