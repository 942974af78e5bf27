package model

import "time"

// InventoryItem is the central stock record. CategoryID and LocationID are
// optional references; the names are joined in at read time, never stored.
type InventoryItem struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Name              string    `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	SKU               string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"sku" validate:"required"`
	Description       string    `gorm:"type:text" json:"description"`
	CategoryID        *uint     `gorm:"index" json:"categoryId"`
	Category          *Category `gorm:"foreignKey:CategoryID" json:"-"`
	LocationID        *uint     `gorm:"index" json:"locationId"`
	Location          *Location `gorm:"foreignKey:LocationID" json:"-"`
	Quantity          int       `gorm:"not null;default:0" json:"quantity" validate:"gte=0"`
	Price             *float64  `json:"price" validate:"omitempty,gte=0"`
	LowStockThreshold *int      `json:"lowStockThreshold" validate:"omitempty,gte=0"`
	Barcode           string    `gorm:"type:varchar(100)" json:"barcode"`
	CreatedAt         time.Time `json:"createdAt"`
	LastUpdated       time.Time `gorm:"column:last_updated" json:"lastUpdated"`
}

// IsLowStock is a strict comparison: an item sitting exactly at its
// threshold is not yet low.
func (i *InventoryItem) IsLowStock() bool {
	return i.LowStockThreshold != nil && i.Quantity < *i.LowStockThreshold
}

// Value is the item's contribution to total inventory value.
// A missing price counts as zero.
func (i *InventoryItem) Value() float64 {
	if i.Price == nil {
		return 0
	}
	return *i.Price * float64(i.Quantity)
}

// InventoryItemDetails is the enriched read model: the raw item plus the
// display names of its category and location, resolved per call.
type InventoryItemDetails struct {
	InventoryItem
	CategoryName *string `json:"categoryName"`
	LocationName *string `json:"locationName"`
}

// ToDetails joins in the preloaded category/location names
func (i *InventoryItem) ToDetails() InventoryItemDetails {
	details := InventoryItemDetails{InventoryItem: *i}
	if i.Category != nil {
		details.CategoryName = &i.Category.Name
	}
	if i.Location != nil {
		details.LocationName = &i.Location.Name
	}
	return details
}
