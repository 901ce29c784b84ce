package routes

import (
	"shelfwise/handlers"
	"shelfwise/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// --- Authentication Routes ---
	auth := api.Group("/auth")
	auth.Post("/users", handlers.HandleCreateUser)
	auth.Post("/login", handlers.HandleLogin)

	// --- Merchant Routes ---
	merchant := api.Group("/merchant", middleware.Authenticate, middleware.CheckRole("merchant"))

	// Profile
	merchant.Get("/profile", handlers.HandleGetProfile)
	merchant.Put("/profile", handlers.HandleUpdateProfile)

	// Inventory items and count history
	items := merchant.Group("/items")
	items.Get("/", handlers.HandleListItems)
	items.Post("/", handlers.HandleCreateItem)
	items.Get("/:itemId", handlers.HandleGetItem)
	items.Put("/:itemId", handlers.HandleUpdateItem)
	items.Delete("/:itemId", handlers.HandleArchiveItem)
	items.Post("/:itemId/observations", handlers.HandleLogObservation)
	items.Get("/:itemId/observations", handlers.HandleGetObservations)

	// Analysis
	merchant.Get("/analysis/stock-levels", handlers.HandleStockLevels)
	items.Get("/:itemId/prediction", handlers.HandleStockOutPrediction)
	items.Get("/:itemId/reorder-levels", handlers.HandleReorderLevels)
	items.Get("/:itemId/predictive-curve", handlers.HandlePredictiveCurve)

	// Shelf photo scanning
	merchant.Post("/scan", handlers.HandleScanShelf)

	// Reorder workflow
	items.Post("/:itemId/reorder-workflow", handlers.HandleReorderWorkflow)

	// Suppliers
	suppliers := merchant.Group("/suppliers")
	suppliers.Get("/", handlers.HandleListSuppliers)
	suppliers.Post("/", handlers.HandleCreateSupplier)

	// Notifications
	merchant.Get("/notifications", handlers.HandleGetNotifications)
	merchant.Put("/notifications/:notificationId/read", handlers.HandleMarkNotificationRead)
}
