package model

// Category groups inventory items for filtering and reporting
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name" validate:"required"`
}
