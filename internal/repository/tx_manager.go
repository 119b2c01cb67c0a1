package repository

import "context"

// トランザクション内で使う約束
type TxRepos interface {
	Users() UserRepository
	Carts() CartRepository
	Wishlists() WishlistRepository
	Orders() OrderRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
// 注文追加＋カートクリアのような複数書き込みは必ずこの中で行う。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
