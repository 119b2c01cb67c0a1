package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// 明細込みで作成（gormのassociationで order_items も入る）
func (r *OrderGormRepository) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// orderIdは重複しうる。挿入順（id昇順）の先頭一致で1件返す。
func (r *OrderGormRepository) FindFirstByOrderID(ctx context.Context, userID string, orderID string) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).
		Preload("OrderItems").
		Where("user_id = ? AND order_id = ?", userID, orderID).
		Order("id asc").
		First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

// 新しい順（orderDate desc）
func (r *OrderGormRepository) ListByUserID(ctx context.Context, userID string) ([]model.Order, error) {
	orders := []model.Order{}
	err := r.db.WithContext(ctx).
		Preload("OrderItems").
		Where("user_id = ?", userID).
		Order("order_date desc").
		Find(&orders).Error
	if err != nil {
		return []model.Order{}, err
	}
	return orders, nil
}

// status/tracking/timestampの部分更新後の保存
func (r *OrderGormRepository) Save(ctx context.Context, order *model.Order) error {
	res := r.db.WithContext(ctx).
		Omit("OrderItems").
		Where("id = ?", order.ID).
		Select("order_status", "payment_status", "tracking_id", "delivered_at", "cancelled_at").
		Updates(order)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
