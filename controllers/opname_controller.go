package controllers

import (
	"errors"

	"pos-app/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type OpnameController struct {
	DB *gorm.DB
}

func NewOpnameController(DB *gorm.DB) *OpnameController {
	return &OpnameController{DB: DB}
}

func (c *OpnameController) SaveOpname(ctx *fiber.Ctx) error {
	var input struct {
		BranchID uint                           `json:"branch_id" validate:"required"`
		Notes    string                         `json:"notes"`
		Items    []repositories.OpnameLineInput `json:"items" validate:"required,min=1,dive"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewOpnameRepository(c.DB)
	result, err := repo.SaveOpname(input.BranchID, input.Items, input.Notes, actorID(ctx))
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Stock opname saved successfully",
		"data": fiber.Map{
			"opname":         result.Opname,
			"total_variance": result.TotalVariance,
		},
	})
}

// GenerateCountSheet returns every product with its current system stock at
// a branch, as the worksheet for a physical count.
func (c *OpnameController) GenerateCountSheet(ctx *fiber.Ctx) error {
	branchID, err := ctx.ParamsInt("branchId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid branch ID"})
	}

	repo := repositories.NewOpnameRepository(c.DB)
	rows, err := repo.GenerateCountSheet(uint(branchID))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": rows})
}

func (c *OpnameController) GetAllOpnames(ctx *fiber.Ctx) error {
	repo := repositories.NewOpnameRepository(c.DB)
	opnames, err := repo.GetAllOpnames()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": opnames})
}

func (c *OpnameController) GetOpnameByCode(ctx *fiber.Ctx) error {
	code := ctx.Params("code")

	repo := repositories.NewOpnameRepository(c.DB)
	opname, err := repo.GetOpnameByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": opname})
}
