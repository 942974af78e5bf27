package handler

import (
	"fmt"
	"testing"

	"go-stockroom/internal/model"
	"go-stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createOrder(t *testing.T, app *fiber.App, token string, itemID uint, qty int) model.Order {
	t.Helper()

	resp := doRequest(t, app, "POST", "/api/orders", token, service.CreateOrderRequest{
		ItemID: itemID, Quantity: qty,
	})
	require.Equal(t, 201, resp.StatusCode)

	var order model.Order
	decodeBody(t, resp, &order)
	assert.Equal(t, model.OrderOpen, order.Status)
	return order
}

func TestCreateOrder(t *testing.T) {
	app, _ := setupTestApp(t)
	token := login(t, app, "admin", "admin123")

	item := createItem(t, app, token, service.CreateItemRequest{
		Name: "Tape", SKU: "ORD-1", Quantity: 10,
	})

	t.Run("success", func(t *testing.T) {
		createOrder(t, app, token, item.ID, 4)
	})

	t.Run("unknown item is 404", func(t *testing.T) {
		resp := doRequest(t, app, "POST", "/api/orders", token, service.CreateOrderRequest{
			ItemID: 99999, Quantity: 1,
		})
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("zero quantity is 400", func(t *testing.T) {
		resp := doRequest(t, app, "POST", "/api/orders", token, service.CreateOrderRequest{
			ItemID: item.ID, Quantity: 0,
		})
		assert.Equal(t, 400, resp.StatusCode)
	})
}

func TestFulfillOrder(t *testing.T) {
	app, _ := setupTestApp(t)
	adminToken := login(t, app, "admin", "admin123")
	staffToken := login(t, app, "clerk", "clerk123")

	item := createItem(t, app, adminToken, service.CreateItemRequest{
		Name: "Glue", SKU: "ORD-2", Quantity: 10,
	})
	order := createOrder(t, app, adminToken, item.ID, 4)
	statusPath := fmt.Sprintf("/api/orders/%d/status", order.ID)

	t.Run("staff cannot change status", func(t *testing.T) {
		resp := doRequest(t, app, "PATCH", statusPath, staffToken, fiber.Map{"status": "fulfilled"})
		assert.Equal(t, 403, resp.StatusCode)
	})

	t.Run("fulfilment decrements stock", func(t *testing.T) {
		resp := doRequest(t, app, "PATCH", statusPath, adminToken, fiber.Map{"status": "fulfilled"})
		require.Equal(t, 200, resp.StatusCode)

		var fulfilled model.Order
		decodeBody(t, resp, &fulfilled)
		assert.Equal(t, model.OrderFulfilled, fulfilled.Status)

		itemResp := doRequest(t, app, "GET", fmt.Sprintf("/api/inventory/%d", item.ID), adminToken, nil)
		var details model.InventoryItemDetails
		decodeBody(t, itemResp, &details)
		assert.Equal(t, 6, details.Quantity)
		assert.True(t, details.LastUpdated.After(item.LastUpdated))
	})

	t.Run("closed orders cannot change again", func(t *testing.T) {
		resp := doRequest(t, app, "PATCH", statusPath, adminToken, fiber.Map{"status": "cancelled"})
		assert.Equal(t, 409, resp.StatusCode)
	})

	t.Run("insufficient stock leaves everything untouched", func(t *testing.T) {
		big := createOrder(t, app, adminToken, item.ID, 1000)
		resp := doRequest(t, app, "PATCH", fmt.Sprintf("/api/orders/%d/status", big.ID), adminToken, fiber.Map{"status": "fulfilled"})
		assert.Equal(t, 400, resp.StatusCode)

		itemResp := doRequest(t, app, "GET", fmt.Sprintf("/api/inventory/%d", item.ID), adminToken, nil)
		var details model.InventoryItemDetails
		decodeBody(t, itemResp, &details)
		assert.Equal(t, 6, details.Quantity)

		listResp := doRequest(t, app, "GET", "/api/orders", adminToken, nil)
		var orders []model.Order
		decodeBody(t, listResp, &orders)
		for _, o := range orders {
			if o.ID == big.ID {
				assert.Equal(t, model.OrderOpen, o.Status)
			}
		}
	})

	t.Run("cancelling an open order skips the stock change", func(t *testing.T) {
		small := createOrder(t, app, adminToken, item.ID, 1)
		resp := doRequest(t, app, "PATCH", fmt.Sprintf("/api/orders/%d/status", small.ID), adminToken, fiber.Map{"status": "cancelled"})
		require.Equal(t, 200, resp.StatusCode)

		itemResp := doRequest(t, app, "GET", fmt.Sprintf("/api/inventory/%d", item.ID), adminToken, nil)
		var details model.InventoryItemDetails
		decodeBody(t, itemResp, &details)
		assert.Equal(t, 6, details.Quantity)
	})

	t.Run("bogus status is 400", func(t *testing.T) {
		resp := doRequest(t, app, "PATCH", statusPath, adminToken, fiber.Map{"status": "shipped"})
		assert.Equal(t, 400, resp.StatusCode)
	})
}
