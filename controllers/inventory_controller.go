package controllers

import (
	"fmt"
	"net/http"

	"pos-app/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type InventoryController struct {
	DB *gorm.DB
}

func NewInventoryController(DB *gorm.DB) *InventoryController {
	return &InventoryController{DB: DB}
}

func (c *InventoryController) GetBranchStock(ctx *fiber.Ctx) error {
	branchID, err := ctx.ParamsInt("branchId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid branch ID"})
	}

	stockRepo := repositories.NewStockRepository(c.DB)
	rows, err := stockRepo.GetBranchStock(uint(branchID))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{"stock": rows}})
}

// GetLowStock lists products at or below their minimum stock threshold for a
// branch, the same rows the replenishment planner would propose from.
func (c *InventoryController) GetLowStock(ctx *fiber.Ctx) error {
	branchID, err := ctx.ParamsInt("branchId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid branch ID"})
	}

	stockRepo := repositories.NewStockRepository(c.DB)
	rows, err := stockRepo.GetLowStock(uint(branchID))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": rows})
}

func (c *InventoryController) GetProductStock(ctx *fiber.Ctx) error {
	productID, err := ctx.ParamsInt("productId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	stockRepo := repositories.NewStockRepository(c.DB)
	total, err := stockRepo.TotalQuantity(uint(productID))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"product_id": productID, "total_qty": total},
	})
}

func (c *InventoryController) GetMovements(ctx *fiber.Ctx) error {
	productID := ctx.QueryInt("product_id")
	branchID := ctx.QueryInt("branch_id")
	if productID == 0 || branchID == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "product_id and branch_id are required"})
	}

	stockRepo := repositories.NewStockRepository(c.DB)
	movements, err := stockRepo.GetMovements(uint(productID), uint(branchID))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": movements})
}

// ExportExcel streams a branch stock report as an xlsx attachment.
func (c *InventoryController) ExportExcel(ctx *fiber.Ctx) error {
	branchID := ctx.QueryInt("branch_id")
	if branchID == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "branch_id is required"})
	}

	stockRepo := repositories.NewStockRepository(c.DB)
	rows, err := stockRepo.GetBranchStock(uint(branchID))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Item Code")
	f.SetCellValue(sheet, "B1", "Item Name")
	f.SetCellValue(sheet, "C1", "Base Uom")
	f.SetCellValue(sheet, "D1", "Min Stock")
	f.SetCellValue(sheet, "E1", "Qty Onhand")

	for i, row := range rows {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), row.ItemCode)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), row.ItemName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), row.BaseUom)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), row.MinStockAlert)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", i+2), row.QtyOnhand)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="stock_report.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("Failed to generate Excel")
	}

	return nil
}
