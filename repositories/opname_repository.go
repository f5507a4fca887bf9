package repositories

import (
	"time"

	"pos-app/models"

	"gorm.io/gorm"
)

type OpnameRepository struct {
	DB *gorm.DB
}

func NewOpnameRepository(DB *gorm.DB) *OpnameRepository {
	return &OpnameRepository{DB: DB}
}

type OpnameLineInput struct {
	ProductID uint `json:"product_id" validate:"required"`
	ActualQty int  `json:"actual_qty" validate:"gte=0"`
}

type OpnameResult struct {
	Opname        *models.Opname `json:"opname"`
	TotalVariance int            `json:"total_variance"`
}

// SaveOpname reconciles a physical count against system stock. The
// difference of every line is recomputed from the system quantity at commit
// time, so movements that happened while the operator was counting are
// preserved instead of clobbered. Products not present in the count are left
// untouched. Zero-difference lines are still recorded for the audit trail
// but produce no ledger mutation.
func (r *OpnameRepository) SaveOpname(branchID uint, lines []OpnameLineInput, notes string, actor int) (*OpnameResult, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyLines
	}

	seen := make(map[uint]bool)
	for _, line := range lines {
		if seen[line.ProductID] {
			return nil, &DuplicateLineError{ProductID: line.ProductID}
		}
		seen[line.ProductID] = true
	}

	var opname models.Opname
	totalVariance := 0

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		stockRepo := NewStockRepository(tx)

		code, err := NewSkuRepository(tx).NextDocCode("OPN", time.Now())
		if err != nil {
			return err
		}

		opname = models.Opname{
			Code:      code,
			BranchID:  branchID,
			Notes:     notes,
			CreatedBy: actor,
		}
		if err := tx.Create(&opname).Error; err != nil {
			return err
		}

		for _, line := range lines {
			systemQty, err := stockRepo.Quantity(line.ProductID, branchID)
			if err != nil {
				return err
			}

			difference := line.ActualQty - systemQty
			totalVariance += difference

			item := models.OpnameItem{
				OpnameID:   opname.ID,
				ProductID:  line.ProductID,
				SystemQty:  systemQty,
				CountedQty: line.ActualQty,
				Difference: difference,
				CreatedBy:  actor,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			opname.Items = append(opname.Items, item)

			if difference == 0 {
				continue
			}
			if _, err := stockRepo.ApplyDelta(line.ProductID, branchID, difference, "opname", opname.RecordID, actor); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &OpnameResult{Opname: &opname, TotalVariance: totalVariance}, nil
}

// GetAllOpnames lists opname headers, newest first.
func (r *OpnameRepository) GetAllOpnames() ([]models.Opname, error) {
	var opnames []models.Opname
	err := r.DB.Order("id desc").Find(&opnames).Error
	return opnames, err
}

// GetOpnameByCode loads one opname with its items.
func (r *OpnameRepository) GetOpnameByCode(code string) (*models.Opname, error) {
	var opname models.Opname
	err := r.DB.Preload("Items").Preload("Branch").First(&opname, "code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &opname, nil
}

type CountSheetRow struct {
	ProductID uint   `json:"product_id"`
	ItemCode  string `json:"item_code"`
	ItemName  string `json:"item_name"`
	BaseUom   string `json:"base_uom"`
	SystemQty int    `json:"system_qty"`
}

// GenerateCountSheet lists every product with its current system quantity at
// a branch, as the starting point for a physical count.
func (r *OpnameRepository) GenerateCountSheet(branchID uint) ([]CountSheetRow, error) {
	sqlSheet := `select p.id as product_id, p.item_code, p.item_name, p.base_uom,
	coalesce(s.qty_onhand, 0) as system_qty
	from products p
	left join stock_entries s on s.product_id = p.id and s.branch_id = ? and s.deleted_at is null
	where p.deleted_at is null
	order by p.item_code`

	var rows []CountSheetRow
	if err := r.DB.Raw(sqlSheet, branchID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
