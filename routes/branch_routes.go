package routes

import (
	"pos-app/config"
	"pos-app/controllers"
	"pos-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupBranchRoutes(app *fiber.App, db *gorm.DB) {
	branchController := controllers.NewBranchController(db)
	auth := middleware.NewAuthMiddleware(db)

	api := app.Group(config.MAIN_ROUTES+"/branches", auth.Handler)
	api.Get("/", branchController.GetAllBranches)
	api.Post("/", auth.CheckPermission("branch.manage"), branchController.CreateBranch)
	api.Put("/:id", auth.CheckPermission("branch.manage"), branchController.UpdateBranch)
}
