package database

import (
	"pos-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.UserSession{},
		&models.Branch{},
		&models.Category{},
		&models.Supplier{},
		&models.Product{},
		&models.ProductUnit{},
		&models.StockEntry{},
		&models.StockMovement{},
		&models.Transfer{},
		&models.TransferItem{},
		&models.Opname{},
		&models.OpnameItem{},
		&models.PurchaseOrder{},
		&models.PurchaseOrderItem{},
		&models.SkuSequence{},
	)
}
