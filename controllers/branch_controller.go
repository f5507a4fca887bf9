package controllers

import (
	"errors"

	"pos-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type BranchController struct {
	DB *gorm.DB
}

func NewBranchController(DB *gorm.DB) *BranchController {
	return &BranchController{DB: DB}
}

func (c *BranchController) CreateBranch(ctx *fiber.Ctx) error {
	var input struct {
		Code    string `json:"code" validate:"required,min=2"`
		Name    string `json:"name" validate:"required,min=3"`
		Address string `json:"address"`
		Phone   string `json:"phone"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	branch := models.Branch{
		Code:      input.Code,
		Name:      input.Name,
		Address:   input.Address,
		Phone:     input.Phone,
		IsActive:  true,
		CreatedBy: actorID(ctx),
	}

	if err := c.DB.Create(&branch).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Branch created successfully",
		"data":    branch,
	})
}

func (c *BranchController) GetAllBranches(ctx *fiber.Ctx) error {
	var branches []models.Branch
	if err := c.DB.Find(&branches).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": branches})
}

func (c *BranchController) UpdateBranch(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input struct {
		Name     string `json:"name"`
		Address  string `json:"address"`
		Phone    string `json:"phone"`
		IsActive *bool  `json:"is_active"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var branch models.Branch
	if err := c.DB.First(&branch, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Branch not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if input.Name != "" {
		branch.Name = input.Name
	}
	if input.Address != "" {
		branch.Address = input.Address
	}
	if input.Phone != "" {
		branch.Phone = input.Phone
	}
	if input.IsActive != nil {
		branch.IsActive = *input.IsActive
	}
	branch.UpdatedBy = actorID(ctx)

	if err := c.DB.Save(&branch).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Branch updated successfully",
		"data":    branch,
	})
}
