package handler

import (
	"go-stockroom/internal/model"
	"go-stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	service service.OrderService
}

func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

// GET /api/orders
func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListOrders()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(orders)
}

// POST /api/orders
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req service.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.service.CreateOrder(&req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(201).JSON(order)
}

// UpdateStatusRequest moves an order to fulfilled or cancelled
type UpdateStatusRequest struct {
	Status model.OrderStatus `json:"status"`
}

// PATCH /api/orders/:id/status (admin)
func (h *OrderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Status != model.OrderFulfilled && req.Status != model.OrderCancelled {
		return c.Status(400).JSON(fiber.Map{"error": "Status must be 'fulfilled' or 'cancelled'"})
	}

	order, err := h.service.UpdateOrderStatus(id, req.Status)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(order)
}
