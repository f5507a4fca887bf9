package main

import (
	"fmt"
	"log"

	"pos-app/config"
	"pos-app/controllers/idgen"
	"pos-app/database"
	"pos-app/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {

	config.LoadConfig()

	app := fiber.New()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()
	database.RunSeeders(db)

	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, db)
	routes.SetupBranchRoutes(app, db)
	routes.SetupProductRoutes(app, db)
	routes.SetupInventoryRoutes(app, db)
	routes.SetupTransferRoutes(app, db)
	routes.SetupOpnameRoutes(app, db)
	routes.SetupPurchaseOrderRoutes(app, db)

	port := config.APP_PORT
	fmt.Println("🚀 Server berjalan di port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}

}
