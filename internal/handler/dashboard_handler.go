package handler

import (
	"strconv"

	"go-stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	dashService service.DashboardService
	invService  service.InventoryService
}

func NewDashboardHandler(dashService service.DashboardService, invService service.InventoryService) *DashboardHandler {
	return &DashboardHandler{
		dashService: dashService,
		invService:  invService,
	}
}

// GetSummary returns overview statistics
// GET /api/dashboard/summary
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.dashService.GetSummary()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(summary)
}

// GetRecentItems returns the most recently updated items
// GET /api/dashboard/recent-items?limit=N (default 10)
func (h *DashboardHandler) GetRecentItems(c *fiber.Ctx) error {
	limitStr := c.Query("limit", "10")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 10
	}

	items, err := h.invService.RecentlyUpdatedItems(limit)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(items)
}

// GetLowStock returns items strictly below their threshold
// GET /api/dashboard/low-stock
func (h *DashboardHandler) GetLowStock(c *fiber.Ctx) error {
	items, err := h.invService.LowStockItems()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(items)
}
