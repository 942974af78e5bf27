package service

import (
	"go-stockroom/internal/repository"
)

type DashboardService interface {
	GetSummary() (*InventorySummary, error)
}

// InventorySummary is the dashboard aggregate, recomputed on every call
type InventorySummary struct {
	TotalItems    int64   `json:"totalItems"`
	LowStockCount int64   `json:"lowStockCount"`
	TotalValue    float64 `json:"totalValue"`
	OpenOrders    int64   `json:"openOrders"`
}

type dashboardService struct {
	itemRepo  repository.ItemRepository
	orderRepo repository.OrderRepository
}

func NewDashboardService(itemRepo repository.ItemRepository, orderRepo repository.OrderRepository) DashboardService {
	return &dashboardService{
		itemRepo:  itemRepo,
		orderRepo: orderRepo,
	}
}

func (s *dashboardService) GetSummary() (*InventorySummary, error) {
	totalItems, err := s.itemRepo.Count()
	if err != nil {
		return nil, err
	}

	lowStock, err := s.itemRepo.CountLowStock()
	if err != nil {
		return nil, err
	}

	totalValue, err := s.itemRepo.TotalValue()
	if err != nil {
		return nil, err
	}

	openOrders, err := s.orderRepo.CountOpen()
	if err != nil {
		return nil, err
	}

	return &InventorySummary{
		TotalItems:    totalItems,
		LowStockCount: lowStock,
		TotalValue:    totalValue,
		OpenOrders:    openOrders,
	}, nil
}
