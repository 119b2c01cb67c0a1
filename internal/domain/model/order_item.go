package model

// 注文明細。発注時点のカート/ペイロードのコピーで、カート行への参照は持たない。
type OrderItem struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderRef  int64  `gorm:"column:order_ref;not null;index" json:"-"`
	ProductID string `gorm:"not null" json:"productId"`
	Image     string `gorm:"not null" json:"image"`
	Title     string `gorm:"not null" json:"title"`
	Price     string `gorm:"not null" json:"price"`
	Quantity  int64  `gorm:"not null;default:1" json:"quantity"`
}
