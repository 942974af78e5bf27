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

type OrderService interface {
	ListOrders() ([]model.Order, error)
	CreateOrder(req *CreateOrderRequest) (*model.Order, error)
	UpdateOrderStatus(id uint, status model.OrderStatus) (*model.Order, error)
}

type CreateOrderRequest struct {
	ItemID   uint   `json:"itemId" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
	Note     string `json:"note"`
}

type orderService struct {
	orderRepo repository.OrderRepository
	itemRepo  repository.ItemRepository
	db        *gorm.DB
	wsHub     *ws.Hub
}

func NewOrderService(orderRepo repository.OrderRepository, itemRepo repository.ItemRepository, db *gorm.DB, hub *ws.Hub) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		itemRepo:  itemRepo,
		db:        db,
		wsHub:     hub,
	}
}

func (s *orderService) ListOrders() ([]model.Order, error) {
	return s.orderRepo.FindAll()
}

func (s *orderService) CreateOrder(req *CreateOrderRequest) (*model.Order, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	if _, err := s.itemRepo.FindByID(req.ItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	order := &model.Order{
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
		Status:   model.OrderOpen,
		Note:     req.Note,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	go s.wsHub.Publish("order_created", *order, "")
	return order, nil
}

// UpdateOrderStatus moves an open order to fulfilled or cancelled.
// Fulfilment decrements the item's quantity in the same transaction and
// fails without side effects when stock is short.
func (s *orderService) UpdateOrderStatus(id uint, status model.OrderStatus) (*model.Order, error) {
	if status != model.OrderFulfilled && status != model.OrderCancelled {
		return nil, ErrOrderNotOpen
	}

	var updated *model.Order
	var lowItem *model.InventoryItem

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var order model.Order
		if err := tx.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		if order.Status != model.OrderOpen {
			return ErrOrderNotOpen
		}

		if status == model.OrderFulfilled {
			var item model.InventoryItem
			if err := tx.First(&item, order.ItemID).Error; err != nil {
				return err
			}
			if item.Quantity < order.Quantity {
				return ErrInsufficientStock
			}

			item.Quantity -= order.Quantity
			item.LastUpdated = time.Now()
			if err := tx.Save(&item).Error; err != nil {
				return err
			}
			if item.IsLowStock() {
				snapshot := item
				lowItem = &snapshot
			}
		}

		order.Status = status
		if err := tx.Save(&order).Error; err != nil {
			return err
		}

		updated = &order
		return nil
	})
	if err != nil {
		return nil, err
	}

	snapshot := *updated
	low := lowItem
	go func() {
		s.wsHub.Publish("order_"+string(snapshot.Status), snapshot, "")
		if low != nil {
			s.wsHub.Publish("low_stock_alert", *low,
				fmt.Sprintf("item '%s' is low on stock (%d below threshold %d)",
					low.Name, low.Quantity, *low.LowStockThreshold))
		}
	}()

	return updated, nil
}
