package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

// 対象が見つかりませんを統一
var ErrNotFound = errors.New("not found")

// アカウントの保存・取得を約束
type UserRepository interface {
	//新規アカウント作成
	Create(ctx context.Context, user *model.User) error
	// IDからアカウントを1件取得する。
	FindByID(ctx context.Context, userID string) (*model.User, error)
	//メールからアカウントを1件取得する。
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	//存在確認だけ（cart/order系は本体を読まずにこれで済ます）
	Exists(ctx context.Context, userID string) (bool, error)
}
