package model

import "time"

// ウィッシュリスト明細。カートと同形だがquantityは実質未使用。
type WishlistItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"-"`
	UserID    string    `gorm:"type:varchar(36);not null;index" json:"-"`
	ProductID string    `gorm:"not null" json:"productId"`
	Image     string    `gorm:"not null" json:"image"`
	Title     string    `gorm:"not null" json:"title"`
	Price     string    `gorm:"not null" json:"price"`
	Quantity  int64     `gorm:"not null;default:1" json:"quantity"`
	AddedAt   time.Time `gorm:"not null" json:"addedAt"`
}
