package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-stockroom/internal/handler"
	"go-stockroom/internal/middleware"
	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"
	"go-stockroom/internal/service"
	"go-stockroom/internal/ws"
	"go-stockroom/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.Connect()
	db.AutoMigrate(&model.User{}, &model.Category{}, &model.Location{}, &model.InventoryItem{}, &model.Order{})

	// 3. Seed default admin user
	seedAdmin(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	locationRepo := repository.NewLocationRepo(db)
	itemRepo := repository.NewItemRepo(db)
	orderRepo := repository.NewOrderRepo(db)

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	catalogService := service.NewCatalogService(categoryRepo, locationRepo)
	invService := service.NewInventoryService(itemRepo, db, wsHub)
	orderService := service.NewOrderService(orderRepo, itemRepo, db, wsHub)
	dashService := service.NewDashboardService(itemRepo, orderRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	invHandler := handler.NewInventoryHandler(invService)
	orderHandler := handler.NewOrderHandler(orderService)
	dashHandler := handler.NewDashboardHandler(dashService, invService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Stockroom API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// 7. Routes
	api := app.Group("/api")

	// ============ PUBLIC ROUTES ============
	api.Post("/auth/login", authHandler.Login)

	// ============ PROTECTED ROUTES ============
	// All routes below require authentication
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// User management (admin only)
	protected.Get("/users", middleware.RequireAdmin(), userHandler.GetUsers)
	protected.Post("/users", middleware.RequireAdmin(), userHandler.CreateUser)

	// Categories and locations
	protected.Get("/categories", catalogHandler.GetCategories)
	protected.Post("/categories", middleware.RequireAdmin(), catalogHandler.CreateCategory)
	protected.Get("/locations", catalogHandler.GetLocations)
	protected.Post("/locations", middleware.RequireAdmin(), catalogHandler.CreateLocation)

	// Inventory
	protected.Get("/inventory", invHandler.GetItems)
	protected.Get("/inventory/sku/:sku", invHandler.GetItemBySKU)
	protected.Get("/inventory/:id", invHandler.GetItem)
	protected.Post("/inventory", invHandler.CreateItem)
	protected.Patch("/inventory/:id", invHandler.UpdateItem)
	protected.Delete("/inventory/:id", middleware.RequireAdmin(), invHandler.DeleteItem)

	// Orders
	protected.Get("/orders", orderHandler.GetOrders)
	protected.Post("/orders", orderHandler.CreateOrder)
	protected.Patch("/orders/:id/status", middleware.RequireAdmin(), orderHandler.UpdateOrderStatus)

	// Dashboard
	protected.Get("/dashboard/summary", dashHandler.GetSummary)
	protected.Get("/dashboard/recent-items", dashHandler.GetRecentItems)
	protected.Get("/dashboard/low-stock", dashHandler.GetLowStock)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedAdmin creates the default admin user if it doesn't exist
func seedAdmin(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	if _, err := userRepo.FindByUsername("admin"); err == nil {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	admin := &model.User{
		Username: "admin",
		Name:     "Administrator",
		Role:     model.RoleAdmin,
	}
	if err := admin.SetPassword(password); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Println("Admin user created: admin")
	}
}
