package controllers

import (
	"errors"

	"pos-app/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PurchaseOrderController struct {
	DB *gorm.DB
}

func NewPurchaseOrderController(DB *gorm.DB) *PurchaseOrderController {
	return &PurchaseOrderController{DB: DB}
}

func (c *PurchaseOrderController) CreateDraft(ctx *fiber.Ctx) error {
	var input struct {
		BranchID   uint                                  `json:"branch_id" validate:"required"`
		SupplierID uint                                  `json:"supplier_id"`
		Notes      string                                `json:"notes"`
		Items      []repositories.PurchaseOrderLineInput `json:"items" validate:"dive"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewPurchaseOrderRepository(c.DB)
	po, err := repo.CreateDraft(input.BranchID, input.SupplierID, input.Items, input.Notes, actorID(ctx))
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Purchase order draft created",
		"data":    po,
	})
}

// AutoFill appends replenishment-planner lines for every under-threshold
// product not already in the draft.
func (c *PurchaseOrderController) AutoFill(ctx *fiber.Ctx) error {
	poID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	repo := repositories.NewPurchaseOrderRepository(c.DB)
	po, err := repo.AutoFill(uint(poID), actorID(ctx))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Not found"})
		}
		return domainErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Auto-fill applied",
		"data":    po,
	})
}

func (c *PurchaseOrderController) AddLine(ctx *fiber.Ctx) error {
	poID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input repositories.PurchaseOrderLineInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewPurchaseOrderRepository(c.DB)
	po, err := repo.AddLine(uint(poID), input, actorID(ctx))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Not found"})
		}
		return domainErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": po})
}

func (c *PurchaseOrderController) RemoveLine(ctx *fiber.Ctx) error {
	poID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}
	productID, err := ctx.ParamsInt("productId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	repo := repositories.NewPurchaseOrderRepository(c.DB)
	po, err := repo.RemoveLine(uint(poID), uint(productID), actorID(ctx))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Not found"})
		}
		return domainErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": po})
}

func (c *PurchaseOrderController) Submit(ctx *fiber.Ctx) error {
	poID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	repo := repositories.NewPurchaseOrderRepository(c.DB)
	po, err := repo.Submit(uint(poID), actorID(ctx))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Not found"})
		}
		return domainErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Purchase order submitted",
		"data":    po,
	})
}

func (c *PurchaseOrderController) GetAll(ctx *fiber.Ctx) error {
	repo := repositories.NewPurchaseOrderRepository(c.DB)
	pos, err := repo.GetAll()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": pos})
}

func (c *PurchaseOrderController) GetByID(ctx *fiber.Ctx) error {
	poID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	repo := repositories.NewPurchaseOrderRepository(c.DB)
	po, err := repo.GetByID(uint(poID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": po})
}
