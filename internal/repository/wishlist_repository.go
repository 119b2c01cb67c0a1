package repository

import (
	"context"

	"app/internal/domain/model"
)

type WishlistRepository interface {
	ListByUserID(ctx context.Context, userID string) ([]model.WishlistItem, error)
	//同一productIdの有無（Conflict判定用）
	ExistsByUserAndProduct(ctx context.Context, userID string, productID string) (bool, error)
	Create(ctx context.Context, item *model.WishlistItem) error
	DeleteByUserAndProduct(ctx context.Context, userID string, productID string) (int64, error)
}
