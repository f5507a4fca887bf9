package routes

import (
	"pos-app/config"
	"pos-app/controllers"
	"pos-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupTransferRoutes(app *fiber.App, db *gorm.DB) {
	transferController := controllers.NewTransferController(db)
	auth := middleware.NewAuthMiddleware(db)

	api := app.Group(config.MAIN_ROUTES+"/transfers", auth.Handler)
	api.Get("/", transferController.GetAllTransfers)
	api.Get("/:code", transferController.GetTransferByCode)
	api.Post("/", auth.CheckPermission("transfer.create"), transferController.CreateTransfer)
}
