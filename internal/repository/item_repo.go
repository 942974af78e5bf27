package repository

import (
	"go-stockroom/internal/model"

	"gorm.io/gorm"
)

type ItemRepository interface {
	Create(item *model.InventoryItem) error
	FindAll() ([]model.InventoryItem, error)
	FindByID(id uint) (*model.InventoryItem, error)
	FindBySKU(sku string) (*model.InventoryItem, error)
	Delete(id uint) (bool, error)
	FindLowStock() ([]model.InventoryItem, error)
	FindRecentlyUpdated(limit int) ([]model.InventoryItem, error)
	Count() (int64, error)
	CountLowStock() (int64, error)
	TotalValue() (float64, error)
}

type itemRepo struct {
	db *gorm.DB
}

func NewItemRepo(db *gorm.DB) ItemRepository {
	return &itemRepo{db}
}

func (r *itemRepo) Create(item *model.InventoryItem) error {
	return r.db.Create(item).Error
}

func (r *itemRepo) FindAll() ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	err := r.db.Preload("Category").Preload("Location").Order("id").Find(&items).Error
	return items, err
}

func (r *itemRepo) FindByID(id uint) (*model.InventoryItem, error) {
	var item model.InventoryItem
	err := r.db.Preload("Category").Preload("Location").First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepo) FindBySKU(sku string) (*model.InventoryItem, error) {
	var item model.InventoryItem
	err := r.db.Preload("Category").Preload("Location").Where("sku = ?", sku).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepo) Delete(id uint) (bool, error) {
	res := r.db.Delete(&model.InventoryItem{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// FindLowStock returns items strictly below their threshold. Items without
// a threshold never qualify.
func (r *itemRepo) FindLowStock() ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	err := r.db.Preload("Category").Preload("Location").
		Where("low_stock_threshold IS NOT NULL AND quantity < low_stock_threshold").
		Order("id").
		Find(&items).Error
	return items, err
}

func (r *itemRepo) FindRecentlyUpdated(limit int) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	err := r.db.Preload("Category").Preload("Location").
		Order("last_updated DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *itemRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.InventoryItem{}).Count(&count).Error
	return count, err
}

func (r *itemRepo) CountLowStock() (int64, error) {
	var count int64
	err := r.db.Model(&model.InventoryItem{}).
		Where("low_stock_threshold IS NOT NULL AND quantity < low_stock_threshold").
		Count(&count).Error
	return count, err
}

func (r *itemRepo) TotalValue() (float64, error) {
	var total float64
	err := r.db.Model(&model.InventoryItem{}).
		Select("COALESCE(SUM(COALESCE(price, 0) * quantity), 0)").
		Scan(&total).Error
	return total, err
}
