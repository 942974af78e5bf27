package handler

import (
	"fmt"
	"testing"
	"time"

	"go-stockroom/internal/model"
	"go-stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	app, _ := setupTestApp(t)
	token := login(t, app, "admin", "admin123")

	createItem(t, app, token, service.CreateItemRequest{
		Name: "Bolt", SKU: "SUM-1", Quantity: 24, Price: floatPtr(45.99),
	})
	createItem(t, app, token, service.CreateItemRequest{
		Name: "Nut", SKU: "SUM-2", Quantity: 8, Price: floatPtr(12.50),
	})
	// no price counts as zero value
	lowOne := createItem(t, app, token, service.CreateItemRequest{
		Name: "Washer", SKU: "SUM-3", Quantity: 2, LowStockThreshold: intPtr(5),
	})

	resp := doRequest(t, app, "GET", "/api/dashboard/summary", token, nil)
	require.Equal(t, 200, resp.StatusCode)

	var summary service.InventorySummary
	decodeBody(t, resp, &summary)

	assert.Equal(t, int64(3), summary.TotalItems)
	assert.Equal(t, int64(1), summary.LowStockCount)
	// 45.99*24 + 12.50*8 = 1203.76
	assert.InDelta(t, 1203.76, summary.TotalValue, 0.001)
	assert.Equal(t, int64(0), summary.OpenOrders)

	// an open order shows up in the aggregate
	resp = doRequest(t, app, "POST", "/api/orders", token, service.CreateOrderRequest{
		ItemID: lowOne.ID, Quantity: 1,
	})
	require.Equal(t, 201, resp.StatusCode)

	resp = doRequest(t, app, "GET", "/api/dashboard/summary", token, nil)
	require.Equal(t, 200, resp.StatusCode)
	decodeBody(t, resp, &summary)
	assert.Equal(t, int64(1), summary.OpenOrders)
}

func TestLowStockStrictness(t *testing.T) {
	app, _ := setupTestApp(t)
	token := login(t, app, "admin", "admin123")

	// quantity == threshold is NOT low stock
	atThreshold := createItem(t, app, token, service.CreateItemRequest{
		Name: "At Threshold", SKU: "LOW-1", Quantity: 8, LowStockThreshold: intPtr(8),
	})
	below := createItem(t, app, token, service.CreateItemRequest{
		Name: "Below", SKU: "LOW-2", Quantity: 7, LowStockThreshold: intPtr(8),
	})
	// no threshold never qualifies, however low the quantity
	createItem(t, app, token, service.CreateItemRequest{
		Name: "No Threshold", SKU: "LOW-3", Quantity: 0,
	})

	resp := doRequest(t, app, "GET", "/api/dashboard/low-stock", token, nil)
	require.Equal(t, 200, resp.StatusCode)

	var items []model.InventoryItemDetails
	decodeBody(t, resp, &items)

	require.Len(t, items, 1)
	assert.Equal(t, below.ID, items[0].ID)
	assert.NotEqual(t, atThreshold.ID, items[0].ID)
}

func TestRecentItems(t *testing.T) {
	app, _ := setupTestApp(t)
	token := login(t, app, "admin", "admin123")

	var created []model.InventoryItem
	for i := 0; i < 5; i++ {
		created = append(created, createItem(t, app, token, service.CreateItemRequest{
			Name: fmt.Sprintf("Item %d", i), SKU: fmt.Sprintf("REC-%d", i), Quantity: i,
		}))
		time.Sleep(5 * time.Millisecond)
	}

	// touch #1 then #3, so the expected order is [#3, #1]
	resp := doRequest(t, app, "PATCH", fmt.Sprintf("/api/inventory/%d", created[1].ID), token, fiber.Map{"quantity": 100})
	require.Equal(t, 200, resp.StatusCode)
	time.Sleep(5 * time.Millisecond)
	resp = doRequest(t, app, "PATCH", fmt.Sprintf("/api/inventory/%d", created[3].ID), token, fiber.Map{"quantity": 100})
	require.Equal(t, 200, resp.StatusCode)

	t.Run("limit truncates in descending lastUpdated order", func(t *testing.T) {
		resp := doRequest(t, app, "GET", "/api/dashboard/recent-items?limit=2", token, nil)
		require.Equal(t, 200, resp.StatusCode)

		var items []model.InventoryItemDetails
		decodeBody(t, resp, &items)
		require.Len(t, items, 2)
		assert.Equal(t, created[3].ID, items[0].ID)
		assert.Equal(t, created[1].ID, items[1].ID)
	})

	t.Run("unparsable limit falls back to 10", func(t *testing.T) {
		resp := doRequest(t, app, "GET", "/api/dashboard/recent-items?limit=banana", token, nil)
		require.Equal(t, 200, resp.StatusCode)

		var items []model.InventoryItemDetails
		decodeBody(t, resp, &items)
		assert.Len(t, items, 5)
	})
}
