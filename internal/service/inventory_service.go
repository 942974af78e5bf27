package service

import (
	"errors"
	"fmt"
	"time"

	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"
	"go-stockroom/internal/ws"

	"gorm.io/gorm"
)

type InventoryService interface {
	ListItems() ([]model.InventoryItemDetails, error)
	GetItem(id uint) (*model.InventoryItemDetails, error)
	GetItemBySKU(sku string) (*model.InventoryItemDetails, error)
	CreateItem(req *CreateItemRequest) (*model.InventoryItem, error)
	UpdateItem(id uint, req *UpdateItemRequest) (*model.InventoryItem, error)
	DeleteItem(id uint) error
	LowStockItems() ([]model.InventoryItemDetails, error)
	RecentlyUpdatedItems(limit int) ([]model.InventoryItemDetails, error)
}

// CreateItemRequest is the POST body for a new item
type CreateItemRequest struct {
	Name              string   `json:"name" validate:"required"`
	SKU               string   `json:"sku" validate:"required"`
	Description       string   `json:"description"`
	CategoryID        *uint    `json:"categoryId"`
	LocationID        *uint    `json:"locationId"`
	Quantity          int      `json:"quantity" validate:"gte=0"`
	Price             *float64 `json:"price" validate:"omitempty,gte=0"`
	LowStockThreshold *int     `json:"lowStockThreshold" validate:"omitempty,gte=0"`
	Barcode           string   `json:"barcode"`
}

// UpdateItemRequest is the PATCH body; only non-nil fields are applied
type UpdateItemRequest struct {
	Name              *string  `json:"name" validate:"omitempty,min=1"`
	SKU               *string  `json:"sku" validate:"omitempty,min=1"`
	Description       *string  `json:"description"`
	CategoryID        *uint    `json:"categoryId"`
	LocationID        *uint    `json:"locationId"`
	Quantity          *int     `json:"quantity" validate:"omitempty,gte=0"`
	Price             *float64 `json:"price" validate:"omitempty,gte=0"`
	LowStockThreshold *int     `json:"lowStockThreshold" validate:"omitempty,gte=0"`
	Barcode           *string  `json:"barcode"`
}

type inventoryService struct {
	itemRepo repository.ItemRepository
	db       *gorm.DB
	wsHub    *ws.Hub
}

func NewInventoryService(itemRepo repository.ItemRepository, db *gorm.DB, hub *ws.Hub) InventoryService {
	return &inventoryService{
		itemRepo: itemRepo,
		db:       db,
		wsHub:    hub,
	}
}

func enrich(items []model.InventoryItem) []model.InventoryItemDetails {
	details := make([]model.InventoryItemDetails, len(items))
	for i := range items {
		details[i] = items[i].ToDetails()
	}
	return details
}

func (s *inventoryService) ListItems() ([]model.InventoryItemDetails, error) {
	items, err := s.itemRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return enrich(items), nil
}

func (s *inventoryService) GetItem(id uint) (*model.InventoryItemDetails, error) {
	item, err := s.itemRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	details := item.ToDetails()
	return &details, nil
}

func (s *inventoryService) GetItemBySKU(sku string) (*model.InventoryItemDetails, error) {
	item, err := s.itemRepo.FindBySKU(sku)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	details := item.ToDetails()
	return &details, nil
}

func (s *inventoryService) CreateItem(req *CreateItemRequest) (*model.InventoryItem, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	// SKU must be unique; check before hitting the index for a clean error
	existing, _ := s.itemRepo.FindBySKU(req.SKU)
	if existing != nil {
		return nil, ErrDuplicateSKU
	}

	now := time.Now()
	item := &model.InventoryItem{
		Name:              req.Name,
		SKU:               req.SKU,
		Description:       req.Description,
		CategoryID:        req.CategoryID,
		LocationID:        req.LocationID,
		Quantity:          req.Quantity,
		Price:             req.Price,
		LowStockThreshold: req.LowStockThreshold,
		Barcode:           req.Barcode,
		CreatedAt:         now,
		LastUpdated:       now,
	}

	if err := s.itemRepo.Create(item); err != nil {
		return nil, err
	}

	s.publishItemEvent("item_created", item, fmt.Sprintf("item '%s' created", item.Name))
	return item, nil
}

func (s *inventoryService) UpdateItem(id uint, req *UpdateItemRequest) (*model.InventoryItem, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	var updated *model.InventoryItem

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.InventoryItem
		if err := tx.First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}

		if req.SKU != nil && *req.SKU != existing.SKU {
			var count int64
			tx.Model(&model.InventoryItem{}).Where("sku = ? AND id <> ?", *req.SKU, id).Count(&count)
			if count > 0 {
				return ErrDuplicateSKU
			}
			existing.SKU = *req.SKU
		}
		if req.Name != nil {
			existing.Name = *req.Name
		}
		if req.Description != nil {
			existing.Description = *req.Description
		}
		if req.CategoryID != nil {
			existing.CategoryID = req.CategoryID
		}
		if req.LocationID != nil {
			existing.LocationID = req.LocationID
		}
		if req.Quantity != nil {
			existing.Quantity = *req.Quantity
		}
		if req.Price != nil {
			existing.Price = req.Price
		}
		if req.LowStockThreshold != nil {
			existing.LowStockThreshold = req.LowStockThreshold
		}
		if req.Barcode != nil {
			existing.Barcode = *req.Barcode
		}

		// CreatedAt is never touched; only LastUpdated advances
		existing.LastUpdated = time.Now()

		if err := tx.Save(&existing).Error; err != nil {
			return err
		}

		updated = &existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishItemEvent("item_updated", updated, fmt.Sprintf("item '%s' updated", updated.Name))
	return updated, nil
}

func (s *inventoryService) DeleteItem(id uint) error {
	found, err := s.itemRepo.Delete(id)
	if err != nil {
		return err
	}
	if !found {
		return ErrItemNotFound
	}

	go s.wsHub.Publish("item_deleted", map[string]interface{}{"id": id}, "")
	return nil
}

func (s *inventoryService) LowStockItems() ([]model.InventoryItemDetails, error) {
	items, err := s.itemRepo.FindLowStock()
	if err != nil {
		return nil, err
	}
	return enrich(items), nil
}

func (s *inventoryService) RecentlyUpdatedItems(limit int) ([]model.InventoryItemDetails, error) {
	items, err := s.itemRepo.FindRecentlyUpdated(limit)
	if err != nil {
		return nil, err
	}
	return enrich(items), nil
}

// publishItemEvent broadcasts the change and, when the item has dropped
// below its threshold, a follow-up low stock alert
func (s *inventoryService) publishItemEvent(action string, item *model.InventoryItem, message string) {
	snapshot := *item
	go func() {
		s.wsHub.Publish(action, snapshot, message)
		if snapshot.IsLowStock() {
			s.wsHub.Publish("low_stock_alert", snapshot,
				fmt.Sprintf("item '%s' is low on stock (%d below threshold %d)",
					snapshot.Name, snapshot.Quantity, *snapshot.LowStockThreshold))
		}
	}()
}
