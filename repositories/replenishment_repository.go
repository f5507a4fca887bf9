package repositories

import (
	"pos-app/models"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type ReplenishmentRepository struct {
	DB *gorm.DB
}

func NewReplenishmentRepository(DB *gorm.DB) *ReplenishmentRepository {
	return &ReplenishmentRepository{DB: DB}
}

// PlanAutoFill proposes purchase order lines for every product at or below
// its minimum stock threshold at the destination branch. The proposed
// quantity is max(threshold - stock, threshold): at least enough to clear
// the deficit, never less than a full minimum-stock's worth. That over-order
// floor is the intended purchasing policy, not an accident. Products already
// present in the draft are skipped so manual edits survive, and supplierID
// (0 = all) only pre-filters the candidate set.
func (r *ReplenishmentRepository) PlanAutoFill(branchID uint, supplierID uint, existingItems []models.PurchaseOrderItem) ([]models.PurchaseOrderItem, error) {
	query := r.DB.Model(&models.Product{})
	if supplierID != 0 {
		query = query.Where("supplier_id = ?", supplierID)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}

	inDraft := make(map[uint]bool)
	for _, item := range existingItems {
		inDraft[item.ProductID] = true
	}

	stockRepo := NewStockRepository(r.DB)

	var proposed []models.PurchaseOrderItem
	for _, product := range products {
		if inDraft[product.ID] || product.MinStockAlert <= 0 {
			continue
		}

		stock, err := stockRepo.Quantity(product.ID, branchID)
		if err != nil {
			return nil, err
		}
		if stock > product.MinStockAlert {
			continue
		}

		qty := product.MinStockAlert - stock
		if qty < product.MinStockAlert {
			qty = product.MinStockAlert
		}

		proposed = append(proposed, models.PurchaseOrderItem{
			ProductID:  product.ID,
			Qty:        qty,
			UnitCost:   product.CostPrice,
			LineTotal:  float64(qty) * product.CostPrice,
			IsAutoFill: true,
		})
	}

	slices.SortFunc(proposed, func(a, b models.PurchaseOrderItem) int {
		return int(a.ProductID) - int(b.ProductID)
	})

	return proposed, nil
}
