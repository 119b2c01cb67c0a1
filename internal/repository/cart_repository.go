package repository

import (
	"context"

	"app/internal/domain/model"
)

type CartRepository interface {
	//追加順で一覧
	ListByUserID(ctx context.Context, userID string) ([]model.CartItem, error)
	FindByUserAndProduct(ctx context.Context, userID string, productID string) (model.CartItem, error)
	Create(ctx context.Context, item *model.CartItem) error
	UpdateQuantity(ctx context.Context, itemID int64, qty int64) error
	//無ければ何もしない（削除件数を返す）
	DeleteByUserAndProduct(ctx context.Context, userID string, productID string) (int64, error)
	//全行削除
	Clear(ctx context.Context, userID string) error
}
