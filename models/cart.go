package models

// CartItem holds one product line of a user's cart. The composite unique
// index enforces at most one row per (user, product) pair; repeated adds
// increment Quantity instead of inserting a second row.
type CartItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64   `gorm:"uniqueIndex:idx_user_product;not null" json:"user_id"`
	ProductID uint    `gorm:"uniqueIndex:idx_user_product;not null" json:"product_id"`
	Quantity  int     `gorm:"not null;default:1" json:"quantity"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
}
