package routes

import (
	"pos-app/config"
	"pos-app/controllers"
	"pos-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPurchaseOrderRoutes(app *fiber.App, db *gorm.DB) {
	poController := controllers.NewPurchaseOrderController(db)
	auth := middleware.NewAuthMiddleware(db)

	api := app.Group(config.MAIN_ROUTES+"/purchase-orders", auth.Handler)
	api.Get("/", poController.GetAll)
	api.Get("/:id", poController.GetByID)
	api.Post("/", auth.CheckPermission("po.create"), poController.CreateDraft)
	api.Post("/:id/auto-fill", auth.CheckPermission("po.autofill"), poController.AutoFill)
	api.Post("/:id/items", auth.CheckPermission("po.create"), poController.AddLine)
	api.Delete("/:id/items/:productId", auth.CheckPermission("po.create"), poController.RemoveLine)
	api.Post("/:id/submit", auth.CheckPermission("po.create"), poController.Submit)
}
