package repository

import (
	"context"

	"app/internal/domain/model"

	"gorm.io/gorm"
)

type WishlistGormRepository struct {
	db *gorm.DB
}

// DI
func NewWishlistGormRepository(db *gorm.DB) *WishlistGormRepository {
	return &WishlistGormRepository{db: db}
}

func (r *WishlistGormRepository) ListByUserID(ctx context.Context, userID string) ([]model.WishlistItem, error) {
	items := []model.WishlistItem{}
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&items).Error; err != nil {
		return []model.WishlistItem{}, err
	}
	return items, nil
}

// Conflict判定用
func (r *WishlistGormRepository) ExistsByUserAndProduct(ctx context.Context, userID string, productID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.WishlistItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *WishlistGormRepository) Create(ctx context.Context, item *model.WishlistItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// 冪等削除
func (r *WishlistGormRepository) DeleteByUserAndProduct(ctx context.Context, userID string, productID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.WishlistItem{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
