package controllers

import (
	"errors"
	"time"

	"pos-app/models"
	"pos-app/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(DB *gorm.DB) *ProductController {
	return &ProductController{DB: DB}
}

type productUnitInput struct {
	Name             string  `json:"name" validate:"required"`
	ConversionFactor float64 `json:"conversion_factor" validate:"required,gt=0"`
	Price            float64 `json:"price" validate:"gte=0"`
	Barcode          string  `json:"barcode"`
}

type productInputBody struct {
	ItemName      string             `json:"item_name" validate:"required,min=3"`
	Barcode       string             `json:"barcode"`
	CategoryID    uint               `json:"category_id" validate:"required"`
	SupplierID    uint               `json:"supplier_id"`
	BaseUom       string             `json:"base_uom" validate:"required"`
	Price         float64            `json:"price" validate:"gte=0"`
	CostPrice     float64            `json:"cost_price" validate:"gte=0"`
	MinStockAlert int                `json:"min_stock_alert" validate:"gte=0"`
	Units         []productUnitInput `json:"units" validate:"dive"`
}

// CreateProduct registers a product: the SKU is allocated from the category
// and today's date, the base unit is created with factor 1, and alternate
// units are created from the request.
func (c *ProductController) CreateProduct(ctx *fiber.Ctx) error {
	var input productInputBody
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var category models.Category
	if err := c.DB.First(&category, input.CategoryID).Error; err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Category not found"})
	}

	for _, unit := range input.Units {
		if unit.Name == input.BaseUom {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Base unit is created automatically, do not list it as an alternate unit",
			})
		}
	}

	var product models.Product

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		sku, err := repositories.NewSkuRepository(tx).AllocateSku(category.Name, time.Now())
		if err != nil {
			return err
		}

		product = models.Product{
			ItemCode:      sku,
			ItemName:      input.ItemName,
			Barcode:       input.Barcode,
			CategoryID:    input.CategoryID,
			SupplierID:    input.SupplierID,
			BaseUom:       input.BaseUom,
			Price:         input.Price,
			CostPrice:     input.CostPrice,
			MinStockAlert: input.MinStockAlert,
			CreatedBy:     actorID(ctx),
		}

		product.Units = append(product.Units, models.ProductUnit{
			Name:             input.BaseUom,
			ConversionFactor: 1,
			Price:            input.Price,
			IsBase:           true,
			CreatedBy:        actorID(ctx),
		})
		for _, unit := range input.Units {
			product.Units = append(product.Units, models.ProductUnit{
				Name:             unit.Name,
				ConversionFactor: unit.ConversionFactor,
				Price:            unit.Price,
				Barcode:          unit.Barcode,
				CreatedBy:        actorID(ctx),
			})
		}

		return tx.Create(&product).Error
	})
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Product created successfully",
		"data":    product,
	})
}

func (c *ProductController) GetAllProducts(ctx *fiber.Ctx) error {
	var products []models.Product
	if err := c.DB.Preload("Units").Preload("Category").Preload("Supplier").Find(&products).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": products})
}

func (c *ProductController) GetProductByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var result models.Product
	if err := c.DB.Preload("Units").Preload("Category").Preload("Supplier").First(&result, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": result})
}

func (c *ProductController) UpdateProduct(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input struct {
		ItemName      string  `json:"item_name"`
		Price         float64 `json:"price"`
		CostPrice     float64 `json:"cost_price"`
		MinStockAlert *int    `json:"min_stock_alert"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var product models.Product
	if err := c.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if input.ItemName != "" {
		product.ItemName = input.ItemName
	}
	if input.Price > 0 {
		product.Price = input.Price
	}
	if input.CostPrice > 0 {
		product.CostPrice = input.CostPrice
	}
	if input.MinStockAlert != nil && *input.MinStockAlert >= 0 {
		product.MinStockAlert = *input.MinStockAlert
	}
	product.UpdatedBy = actorID(ctx)

	if err := c.DB.Save(&product).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Product updated successfully",
		"data":    product,
	})
}

// AddUnit registers an additional sale unit for a product.
func (c *ProductController) AddUnit(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input productUnitInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var product models.Product
	if err := c.DB.First(&product, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}

	if input.Name == product.BaseUom {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unit already exists as base unit"})
	}

	var existing models.ProductUnit
	if err := c.DB.Where("product_id = ? AND name = ?", product.ID, input.Name).First(&existing).Error; err == nil {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Unit already exists for this product"})
	}

	unit := models.ProductUnit{
		ProductID:        product.ID,
		Name:             input.Name,
		ConversionFactor: input.ConversionFactor,
		Price:            input.Price,
		Barcode:          input.Barcode,
		CreatedBy:        actorID(ctx),
	}
	if err := c.DB.Create(&unit).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Unit added successfully",
		"data":    unit,
	})
}
