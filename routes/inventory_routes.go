package routes

import (
	"pos-app/config"
	"pos-app/controllers"
	"pos-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupInventoryRoutes(app *fiber.App, db *gorm.DB) {
	inventoryController := controllers.NewInventoryController(db)
	auth := middleware.NewAuthMiddleware(db)

	api := app.Group(config.MAIN_ROUTES+"/inventory", auth.Handler)
	api.Get("/excel", inventoryController.ExportExcel)
	api.Get("/movements", inventoryController.GetMovements)
	api.Get("/branch/:branchId", inventoryController.GetBranchStock)
	api.Get("/branch/:branchId/low-stock", inventoryController.GetLowStock)
	api.Get("/product/:productId", inventoryController.GetProductStock)
}
