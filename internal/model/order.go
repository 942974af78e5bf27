package model

import "time"

type OrderStatus string

const (
	OrderOpen      OrderStatus = "open"
	OrderFulfilled OrderStatus = "fulfilled"
	OrderCancelled OrderStatus = "cancelled"
)

// Order is an outbound stock request against one inventory item.
// Fulfilling an order decrements the item's quantity atomically.
type Order struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	ItemID    uint           `gorm:"not null;index" json:"itemId" validate:"required"`
	Item      *InventoryItem `gorm:"foreignKey:ItemID" json:"item,omitempty" validate:"-"`
	Quantity  int            `gorm:"not null" json:"quantity" validate:"required,gt=0"`
	Status    OrderStatus    `gorm:"type:varchar(20);not null;default:open" json:"status"`
	Note      string         `gorm:"type:text" json:"note"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
