package model

import "time"

// カート明細
// priceは文字列のまま保存（外部カタログの表記を保持）。計算時にパースする。
// 同一(user, product)は1行まで。スキーマ制約ではなくAddItem側で守る。
type CartItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"-"`
	UserID    string    `gorm:"type:varchar(36);not null;index" json:"-"`
	ProductID string    `gorm:"not null" json:"productId"`
	Image     string    `gorm:"not null" json:"image"`
	Title     string    `gorm:"not null" json:"title"`
	Price     string    `gorm:"not null" json:"price"`
	Quantity  int64     `gorm:"not null;default:1" json:"quantity"`
	AddedAt   time.Time `gorm:"not null" json:"addedAt"`
}
