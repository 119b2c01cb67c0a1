package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderRepository interface {
	//明細込みで作成
	Create(ctx context.Context, order *model.Order) error
	//orderIdは重複しうるので先頭一致（挿入順）で1件
	FindFirstByOrderID(ctx context.Context, userID string, orderID string) (model.Order, error)
	//新しい順（orderDate desc）
	ListByUserID(ctx context.Context, userID string) ([]model.Order, error)
	//先頭一致の1件をまるごと保存（status/tracking/timestamp更新用）
	Save(ctx context.Context, order *model.Order) error
}
