package routes

import (
	"pos-app/config"
	"pos-app/controllers"
	"pos-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupOpnameRoutes(app *fiber.App, db *gorm.DB) {
	opnameController := controllers.NewOpnameController(db)
	auth := middleware.NewAuthMiddleware(db)

	api := app.Group(config.MAIN_ROUTES+"/opname", auth.Handler)
	api.Get("/sheet/:branchId", opnameController.GenerateCountSheet)
	api.Get("/", opnameController.GetAllOpnames)
	api.Get("/:code", opnameController.GetOpnameByCode)
	api.Post("/", auth.CheckPermission("opname.save"), opnameController.SaveOpname)
}
