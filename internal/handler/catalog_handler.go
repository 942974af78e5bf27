package handler

import (
	"go-stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

// GET /api/categories
func (h *CatalogHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(categories)
}

// POST /api/categories (admin)
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var req service.CreateNameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	category, err := h.service.CreateCategory(&req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(201).JSON(category)
}

// GET /api/locations
func (h *CatalogHandler) GetLocations(c *fiber.Ctx) error {
	locations, err := h.service.ListLocations()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(locations)
}

// POST /api/locations (admin)
func (h *CatalogHandler) CreateLocation(c *fiber.Ctx) error {
	var req service.CreateNameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	location, err := h.service.CreateLocation(&req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(201).JSON(location)
}
