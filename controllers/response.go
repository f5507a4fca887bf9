package controllers

import (
	"errors"

	"pos-app/controllers/skugen"
	"pos-app/repositories"

	"github.com/gofiber/fiber/v2"
)

// domainErrorResponse maps engine errors to HTTP responses. Every rejection
// carries the message naming the offending product/branch/unit so the
// operator can correct input without re-deriving state.
func domainErrorResponse(ctx *fiber.Ctx, err error) error {
	var insufficient *repositories.InsufficientStockError
	if errors.As(err, &insufficient) {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success":    false,
			"message":    insufficient.Error(),
			"product_id": insufficient.ProductID,
			"branch_id":  insufficient.BranchID,
			"requested":  insufficient.Requested,
			"available":  insufficient.Available,
		})
	}

	var unknownUnit *repositories.UnknownUnitError
	if errors.As(err, &unknownUnit) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success":    false,
			"message":    unknownUnit.Error(),
			"product_id": unknownUnit.ProductID,
			"unit":       unknownUnit.UnitName,
		})
	}

	var duplicate *repositories.DuplicateLineError
	if errors.As(err, &duplicate) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": duplicate.Error(),
		})
	}

	switch {
	case errors.Is(err, repositories.ErrSameBranch),
		errors.Is(err, repositories.ErrEmptyLines),
		errors.Is(err, repositories.ErrDraftOnly),
		errors.Is(err, skugen.ErrInvalidCategory):
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	case errors.Is(err, repositories.ErrContention):
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "Internal Server Error",
		"error":   err.Error(),
	})
}

func actorID(ctx *fiber.Ctx) int {
	if userID, ok := ctx.Locals("userID").(float64); ok {
		return int(userID)
	}
	return 0
}
