package repositories

import (
	"time"

	"pos-app/models"

	"gorm.io/gorm"
)

type TransferRepository struct {
	DB *gorm.DB
}

func NewTransferRepository(DB *gorm.DB) *TransferRepository {
	return &TransferRepository{DB: DB}
}

type TransferLineInput struct {
	ProductID uint    `json:"product_id" validate:"required"`
	Qty       float64 `json:"qty" validate:"required,gt=0"`
	Uom       string  `json:"uom" validate:"required"`
}

// CreateTransfer moves stock between two branches. Every line is resolved to
// base units and validated against source availability before any ledger
// entry is touched; lines for the same product are aggregated first so a
// split request cannot be double-checked against one stock figure. The whole
// operation commits or rolls back as a unit, so total stock per product
// across branches is conserved.
func (r *TransferRepository) CreateTransfer(sourceID, destID uint, lines []TransferLineInput, notes string, actor int) (*models.Transfer, error) {
	if sourceID == destID {
		return nil, ErrSameBranch
	}
	if len(lines) == 0 {
		return nil, ErrEmptyLines
	}

	var transfer models.Transfer

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		uomRepo := NewUomRepository(tx)
		stockRepo := NewStockRepository(tx)

		// Resolve units first so a bad unit rejects before any ledger read.
		items := make([]models.TransferItem, 0, len(lines))
		requested := make(map[uint]int)
		for _, line := range lines {
			conv, err := uomRepo.ToBaseUnits(line.ProductID, line.Qty, line.Uom)
			if err != nil {
				return err
			}
			items = append(items, models.TransferItem{
				ProductID:        line.ProductID,
				Qty:              line.Qty,
				Uom:              line.Uom,
				ConversionFactor: conv.ConversionFactor,
				QtyBase:          conv.QtyBase,
				CreatedBy:        actor,
			})
			requested[line.ProductID] += conv.QtyBase
		}

		// Validate all aggregated amounts before mutating anything.
		for productID, qtyBase := range requested {
			available, err := stockRepo.Quantity(productID, sourceID)
			if err != nil {
				return err
			}
			if available < qtyBase {
				return &InsufficientStockError{
					ProductID: productID,
					BranchID:  sourceID,
					Requested: qtyBase,
					Available: available,
				}
			}
		}

		code, err := NewSkuRepository(tx).NextDocCode("TRF", time.Now())
		if err != nil {
			return err
		}

		transfer = models.Transfer{
			Code:      code,
			SourceID:  sourceID,
			DestID:    destID,
			Status:    "applied",
			Notes:     notes,
			Items:     items,
			CreatedBy: actor,
		}
		if err := tx.Create(&transfer).Error; err != nil {
			return err
		}

		// ApplyDelta re-checks availability, so if a concurrent transfer
		// drained the source between validation and here, this one rolls
		// back whole rather than partially applying.
		for productID, qtyBase := range requested {
			if _, err := stockRepo.ApplyDelta(productID, sourceID, -qtyBase, "transfer", transfer.RecordID, actor); err != nil {
				return err
			}
			if _, err := stockRepo.ApplyDelta(productID, destID, qtyBase, "transfer", transfer.RecordID, actor); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &transfer, nil
}

// GetAllTransfers lists transfer headers, newest first.
func (r *TransferRepository) GetAllTransfers() ([]models.Transfer, error) {
	var transfers []models.Transfer
	err := r.DB.Order("id desc").Find(&transfers).Error
	return transfers, err
}

// GetTransferByCode loads one transfer with its items.
func (r *TransferRepository) GetTransferByCode(code string) (*models.Transfer, error) {
	var transfer models.Transfer
	err := r.DB.Preload("Items").Preload("Source").Preload("Dest").
		First(&transfer, "code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &transfer, nil
}
