package repositories

import (
	"errors"
	"fmt"
	"time"

	"pos-app/models"

	"gorm.io/gorm"
)

var ErrDraftOnly = errors.New("purchase order is no longer a draft")

type PurchaseOrderRepository struct {
	DB *gorm.DB
}

func NewPurchaseOrderRepository(DB *gorm.DB) *PurchaseOrderRepository {
	return &PurchaseOrderRepository{DB: DB}
}

type PurchaseOrderLineInput struct {
	ProductID uint    `json:"product_id" validate:"required"`
	Qty       int     `json:"qty" validate:"required,gt=0"`
	UnitCost  float64 `json:"unit_cost" validate:"gte=0"`
}

// CreateDraft opens a purchase order draft for a branch, optionally scoped
// to one supplier, with any number of initial manual lines.
func (r *PurchaseOrderRepository) CreateDraft(branchID, supplierID uint, lines []PurchaseOrderLineInput, notes string, actor int) (*models.PurchaseOrder, error) {
	var po models.PurchaseOrder

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		code, err := NewSkuRepository(tx).NextDocCode("PO", time.Now())
		if err != nil {
			return err
		}

		po = models.PurchaseOrder{
			Code:       code,
			BranchID:   branchID,
			SupplierID: supplierID,
			Status:     "draft",
			Notes:      notes,
			CreatedBy:  actor,
		}
		for _, line := range lines {
			po.Items = append(po.Items, models.PurchaseOrderItem{
				ProductID: line.ProductID,
				Qty:       line.Qty,
				UnitCost:  line.UnitCost,
				LineTotal: float64(line.Qty) * line.UnitCost,
				CreatedBy: actor,
			})
		}
		po.TotalAmount = sumLineTotals(po.Items)

		return tx.Create(&po).Error
	})
	if err != nil {
		return nil, err
	}

	return &po, nil
}

// AddLine adds a manual line to a draft. Adding a product already in the
// draft increases that line's quantity and recomputes its total instead of
// creating a second line.
func (r *PurchaseOrderRepository) AddLine(poID uint, line PurchaseOrderLineInput, actor int) (*models.PurchaseOrder, error) {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		po, err := lockDraft(tx, poID)
		if err != nil {
			return err
		}

		var existing models.PurchaseOrderItem
		err = tx.Where("purchase_order_id = ? AND product_id = ?", po.ID, line.ProductID).First(&existing).Error
		switch {
		case err == nil:
			existing.Qty += line.Qty
			if line.UnitCost > 0 {
				existing.UnitCost = line.UnitCost
			}
			existing.LineTotal = float64(existing.Qty) * existing.UnitCost
			existing.UpdatedBy = actor
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			item := models.PurchaseOrderItem{
				PurchaseOrderID: po.ID,
				ProductID:       line.ProductID,
				Qty:             line.Qty,
				UnitCost:        line.UnitCost,
				LineTotal:       float64(line.Qty) * line.UnitCost,
				CreatedBy:       actor,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		default:
			return err
		}

		return recomputeTotal(tx, po.ID, actor)
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(poID)
}

// RemoveLine drops one product's line from a draft.
func (r *PurchaseOrderRepository) RemoveLine(poID, productID uint, actor int) (*models.PurchaseOrder, error) {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		po, err := lockDraft(tx, poID)
		if err != nil {
			return err
		}

		result := tx.Where("purchase_order_id = ? AND product_id = ?", po.ID, productID).
			Delete(&models.PurchaseOrderItem{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("product %d is not in purchase order %d", productID, poID)
		}

		return recomputeTotal(tx, po.ID, actor)
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(poID)
}

// AutoFill appends planner-proposed lines to a draft. Existing lines are
// never touched; the planner already skips their products.
func (r *PurchaseOrderRepository) AutoFill(poID uint, actor int) (*models.PurchaseOrder, error) {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		po, err := lockDraft(tx, poID)
		if err != nil {
			return err
		}

		var existing []models.PurchaseOrderItem
		if err := tx.Where("purchase_order_id = ?", po.ID).Find(&existing).Error; err != nil {
			return err
		}

		proposed, err := NewReplenishmentRepository(tx).PlanAutoFill(po.BranchID, po.SupplierID, existing)
		if err != nil {
			return err
		}

		for i := range proposed {
			proposed[i].PurchaseOrderID = po.ID
			proposed[i].CreatedBy = actor
		}
		if len(proposed) > 0 {
			if err := tx.Create(&proposed).Error; err != nil {
				return err
			}
		}

		return recomputeTotal(tx, po.ID, actor)
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(poID)
}

// Submit freezes a draft. Submitted purchase orders are immutable history.
func (r *PurchaseOrderRepository) Submit(poID uint, actor int) (*models.PurchaseOrder, error) {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		po, err := lockDraft(tx, poID)
		if err != nil {
			return err
		}
		return tx.Model(po).Updates(map[string]interface{}{"status": "submitted", "updated_by": actor}).Error
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(poID)
}

func (r *PurchaseOrderRepository) GetAll() ([]models.PurchaseOrder, error) {
	var pos []models.PurchaseOrder
	err := r.DB.Order("id desc").Find(&pos).Error
	return pos, err
}

func (r *PurchaseOrderRepository) GetByID(poID uint) (*models.PurchaseOrder, error) {
	var po models.PurchaseOrder
	err := r.DB.Preload("Items").Preload("Branch").First(&po, poID).Error
	if err != nil {
		return nil, err
	}
	return &po, nil
}

func lockDraft(tx *gorm.DB, poID uint) (*models.PurchaseOrder, error) {
	var po models.PurchaseOrder
	if err := tx.First(&po, poID).Error; err != nil {
		return nil, err
	}
	if po.Status != "draft" {
		return nil, ErrDraftOnly
	}
	return &po, nil
}

func recomputeTotal(tx *gorm.DB, poID uint, actor int) error {
	var items []models.PurchaseOrderItem
	if err := tx.Where("purchase_order_id = ?", poID).Find(&items).Error; err != nil {
		return err
	}
	return tx.Model(&models.PurchaseOrder{}).Where("id = ?", poID).
		Updates(map[string]interface{}{"total_amount": sumLineTotals(items), "updated_by": actor}).Error
}

func sumLineTotals(items []models.PurchaseOrderItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.LineTotal
	}
	return total
}
