package domain

import "time"

// CartItem 的合并键是 (ProductID, Size)：重复加购只加数量
type CartItem struct {
	ID        string          `gorm:"primaryKey;size:36" json:"id"`
	UserID    string          `gorm:"index;size:36" json:"-"`
	ProductID string          `gorm:"size:36" json:"productId"`
	Product   ProductSnapshot `gorm:"embedded;embeddedPrefix:product_" json:"product"`
	Size      string          `gorm:"size:16" json:"size"`
	Quantity  int             `json:"quantity"`
	AddedAt   time.Time       `gorm:"autoCreateTime" json:"addedAt"`
}

func (CartItem) TableName() string { return "cart_items" }
