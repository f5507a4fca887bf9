package controllers

import (
	"errors"

	"pos-app/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TransferController struct {
	DB *gorm.DB
}

func NewTransferController(DB *gorm.DB) *TransferController {
	return &TransferController{DB: DB}
}

type transferInputBody struct {
	SourceBranchID uint                             `json:"source_branch_id" validate:"required"`
	DestBranchID   uint                             `json:"dest_branch_id" validate:"required"`
	Notes          string                           `json:"notes"`
	Items          []repositories.TransferLineInput `json:"items" validate:"required,min=1,dive"`
}

func (c *TransferController) CreateTransfer(ctx *fiber.Ctx) error {
	var transferInput transferInputBody
	if err := ctx.BodyParser(&transferInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(transferInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewTransferRepository(c.DB)
	transfer, err := repo.CreateTransfer(
		transferInput.SourceBranchID,
		transferInput.DestBranchID,
		transferInput.Items,
		transferInput.Notes,
		actorID(ctx),
	)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Transfer applied successfully",
		"data":    transfer,
	})
}

func (c *TransferController) GetAllTransfers(ctx *fiber.Ctx) error {
	repo := repositories.NewTransferRepository(c.DB)
	transfers, err := repo.GetAllTransfers()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": transfers})
}

func (c *TransferController) GetTransferByCode(ctx *fiber.Ctx) error {
	code := ctx.Params("code")

	repo := repositories.NewTransferRepository(c.DB)
	transfer, err := repo.GetTransferByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"success": true, "data": transfer})
}
