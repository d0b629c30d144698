package domain

import "time"

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// ValidStatus 只校验取值，不校验状态迁移（任意状态可改成任意状态）
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID     string      `gorm:"primaryKey;size:36" json:"id"`
	UserID string      `gorm:"index;size:36" json:"userId"`
	Items  []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`

	FullName   string `gorm:"size:128" json:"fullName"`
	Email      string `gorm:"size:191" json:"email"`
	Phone      string `gorm:"size:32" json:"phone"`
	Address    string `gorm:"size:255" json:"address"`
	City       string `gorm:"size:64" json:"city"`
	Province   string `gorm:"size:64" json:"province"`
	PostalCode string `gorm:"size:16" json:"postalCode,omitempty"`

	PaymentMethod string  `gorm:"size:32" json:"paymentMethod"` // mobile-money / cash / bank
	Subtotal      float64 `json:"subtotal"`
	Shipping      float64 `json:"shipping"`
	Total         float64 `json:"total"`

	Status    string    `gorm:"size:16;index" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Order) TableName() string { return "orders" }

// OrderItem 持有下单时的商品快照，与 products 表无外键关系
type OrderItem struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID   string          `gorm:"index;size:36" json:"-"`
	ProductID string          `gorm:"size:36" json:"productId"`
	Product   ProductSnapshot `gorm:"embedded;embeddedPrefix:product_" json:"product"`
	Size      string          `gorm:"size:16" json:"size"`
	Quantity  int             `json:"quantity"`
}

func (OrderItem) TableName() string { return "order_items" }
