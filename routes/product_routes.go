package routes

import (
	"pos-app/config"
	"pos-app/controllers"
	"pos-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupProductRoutes(app *fiber.App, db *gorm.DB) {
	productController := controllers.NewProductController(db)
	auth := middleware.NewAuthMiddleware(db)

	api := app.Group(config.MAIN_ROUTES+"/products", auth.Handler)
	api.Get("/", productController.GetAllProducts)
	api.Get("/:id", productController.GetProductByID)
	api.Post("/", auth.CheckPermission("product.create"), productController.CreateProduct)
	api.Put("/:id", auth.CheckPermission("product.create"), productController.UpdateProduct)
	api.Post("/:id/units", auth.CheckPermission("product.create"), productController.AddUnit)
}
