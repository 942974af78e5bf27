package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-stockroom/internal/middleware"
	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"
	"go-stockroom/internal/service"
	"go-stockroom/internal/ws"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory store database
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a single connection keeps every request on the same in-memory DB
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Category{}, &model.Location{}, &model.InventoryItem{}, &model.Order{},
	))
	return db
}

// setupTestApp wires the full route table the way cmd/api does
func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)

	wsHub := ws.NewHub()
	go wsHub.Run()

	userRepo := repository.NewUserRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	locationRepo := repository.NewLocationRepo(db)
	itemRepo := repository.NewItemRepo(db)
	orderRepo := repository.NewOrderRepo(db)

	authHandler := NewAuthHandler(service.NewAuthService(userRepo))
	userHandler := NewUserHandler(service.NewUserService(userRepo))
	catalogHandler := NewCatalogHandler(service.NewCatalogService(categoryRepo, locationRepo))
	invService := service.NewInventoryService(itemRepo, db, wsHub)
	invHandler := NewInventoryHandler(invService)
	orderHandler := NewOrderHandler(service.NewOrderService(orderRepo, itemRepo, db, wsHub))
	dashHandler := NewDashboardHandler(service.NewDashboardService(itemRepo, orderRepo), invService)

	app := fiber.New()
	api := app.Group("/api")
	api.Post("/auth/login", authHandler.Login)

	protected := api.Group("", middleware.RequireAuth(userRepo))
	protected.Get("/users", middleware.RequireAdmin(), userHandler.GetUsers)
	protected.Post("/users", middleware.RequireAdmin(), userHandler.CreateUser)
	protected.Get("/categories", catalogHandler.GetCategories)
	protected.Post("/categories", middleware.RequireAdmin(), catalogHandler.CreateCategory)
	protected.Get("/locations", catalogHandler.GetLocations)
	protected.Post("/locations", middleware.RequireAdmin(), catalogHandler.CreateLocation)
	protected.Get("/inventory", invHandler.GetItems)
	protected.Get("/inventory/sku/:sku", invHandler.GetItemBySKU)
	protected.Get("/inventory/:id", invHandler.GetItem)
	protected.Post("/inventory", invHandler.CreateItem)
	protected.Patch("/inventory/:id", invHandler.UpdateItem)
	protected.Delete("/inventory/:id", middleware.RequireAdmin(), invHandler.DeleteItem)
	protected.Get("/orders", orderHandler.GetOrders)
	protected.Post("/orders", orderHandler.CreateOrder)
	protected.Patch("/orders/:id/status", middleware.RequireAdmin(), orderHandler.UpdateOrderStatus)
	protected.Get("/dashboard/summary", dashHandler.GetSummary)
	protected.Get("/dashboard/recent-items", dashHandler.GetRecentItems)
	protected.Get("/dashboard/low-stock", dashHandler.GetLowStock)

	seedTestUser(t, db, "admin", "admin123", model.RoleAdmin)
	seedTestUser(t, db, "clerk", "clerk123", model.RoleStaff)

	return app, db
}

func seedTestUser(t *testing.T, db *gorm.DB, username, password, role string) {
	t.Helper()

	user := &model.User{Username: username, Name: username, Role: role}
	require.NoError(t, user.SetPassword(password))
	require.NoError(t, db.Create(user).Error)
}

// doRequest performs a JSON request against the test app
func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(jsonData)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// login fetches a token for the given credentials
func login(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()

	resp := doRequest(t, app, "POST", "/api/auth/login", "", fiber.Map{
		"username": username,
		"password": password,
	})
	require.Equal(t, 200, resp.StatusCode)

	var loginResp service.LoginResponse
	decodeBody(t, resp, &loginResp)
	require.NotEmpty(t, loginResp.Token)
	return loginResp.Token
}

// createItem stores an item through the API and returns it
func createItem(t *testing.T, app *fiber.App, token string, req service.CreateItemRequest) model.InventoryItem {
	t.Helper()

	resp := doRequest(t, app, "POST", "/api/inventory", token, req)
	require.Equal(t, 201, resp.StatusCode)

	var item model.InventoryItem
	decodeBody(t, resp, &item)
	return item
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
