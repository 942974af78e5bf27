package handler

import (
	"strconv"

	"go-stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

// parseID rejects non-numeric path ids before they reach the store
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// GetItems lists all items enriched with category/location names
// GET /api/inventory
func (h *InventoryHandler) GetItems(c *fiber.Ctx) error {
	items, err := h.service.ListItems()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(items)
}

// GetItem returns one enriched item
// GET /api/inventory/:id
func (h *InventoryHandler) GetItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	item, err := h.service.GetItem(id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(item)
}

// GetItemBySKU looks an item up by its stock keeping unit
// GET /api/inventory/sku/:sku
func (h *InventoryHandler) GetItemBySKU(c *fiber.Ctx) error {
	item, err := h.service.GetItemBySKU(c.Params("sku"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(item)
}

// CreateItem stores a new item
// POST /api/inventory
func (h *InventoryHandler) CreateItem(c *fiber.Ctx) error {
	var req service.CreateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	item, err := h.service.CreateItem(&req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(201).JSON(item)
}

// UpdateItem applies a partial update
// PATCH /api/inventory/:id
func (h *InventoryHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	var req service.UpdateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	item, err := h.service.UpdateItem(id, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(item)
}

// DeleteItem removes an item, admin only
// DELETE /api/inventory/:id
func (h *InventoryHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid item ID"})
	}

	if err := h.service.DeleteItem(id); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(204)
}
