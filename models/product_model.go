package models

import "gorm.io/gorm"

type Product struct {
	gorm.Model
	ItemCode      string        `json:"item_code" gorm:"unique"`
	ItemName      string        `json:"item_name"`
	Barcode       string        `json:"barcode"`
	CategoryID    uint          `json:"category_id"`
	Category      Category      `json:"category"`
	SupplierID    uint          `json:"supplier_id"`
	Supplier      Supplier      `json:"supplier"`
	BaseUom       string        `json:"base_uom"`
	Price         float64       `json:"price" gorm:"default:0"`
	CostPrice     float64       `json:"cost_price" gorm:"default:0"`
	MinStockAlert int           `json:"min_stock_alert" gorm:"default:0"`
	Units         []ProductUnit `json:"units" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Remarks       string        `json:"remarks"`
	CreatedBy     int
	UpdatedBy     int
	DeletedBy     int
}

// ProductUnit is one sale unit of a product. The base unit is the row with
// conversion_factor = 1; every other row converts to base by multiplication.
type ProductUnit struct {
	gorm.Model
	ProductID        uint    `json:"product_id" gorm:"index"`
	Name             string  `json:"name"`
	ConversionFactor float64 `json:"conversion_factor" gorm:"default:1"`
	Price            float64 `json:"price" gorm:"default:0"`
	Barcode          string  `json:"barcode"`
	IsBase           bool    `json:"is_base" gorm:"default:false"`
	CreatedBy        int
	UpdatedBy        int
	DeletedBy        int
}

type Category struct {
	gorm.Model
	Code string `json:"code" gorm:"unique"`
	Name string `json:"name"`
}

type Supplier struct {
	gorm.Model
	Code      string `json:"code" gorm:"unique"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}
