package repositories

import (
	"errors"

	"pos-app/models"
	"pos-app/types"

	"gorm.io/gorm"
)

// maxAttempts bounds the compare-and-swap retry loops on stock entries and
// sequence rows.
const maxAttempts = 5

type StockRepository struct {
	DB *gorm.DB
}

func NewStockRepository(DB *gorm.DB) *StockRepository {
	return &StockRepository{DB: DB}
}

// Quantity returns the on-hand base-unit quantity for one (product, branch)
// pair. A missing row means 0, not an error.
func (r *StockRepository) Quantity(productID, branchID uint) (int, error) {
	var entry models.StockEntry
	err := r.DB.Where("product_id = ? AND branch_id = ?", productID, branchID).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return entry.QtyOnhand, nil
}

// ApplyDelta is the single mutation primitive of the stock ledger. It adds a
// signed base-unit delta to one (product, branch) entry, creating the entry
// lazily, and writes a StockMovement history row. A delta that would drive
// the quantity negative is rejected with InsufficientStockError and leaves
// state unchanged.
//
// Serialization per (product, branch) key is a compare-and-swap loop: the
// UPDATE only matches when the quantity still equals the value that passed
// the negative-stock check, so concurrent writers cannot both commit against
// the same stale read. FOR UPDATE is deliberately avoided because not every
// supported driver implements it.
func (r *StockRepository) ApplyDelta(productID, branchID uint, delta int, refType string, refID types.SnowflakeID, actor int) (int, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		var entry models.StockEntry
		err := r.DB.Where("product_id = ? AND branch_id = ?", productID, branchID).First(&entry).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, err
			}
			if delta < 0 {
				return 0, &InsufficientStockError{
					ProductID: productID,
					BranchID:  branchID,
					Requested: -delta,
					Available: 0,
				}
			}
			entry = models.StockEntry{
				ProductID: productID,
				BranchID:  branchID,
				QtyOnhand: 0,
				CreatedBy: actor,
			}
			if err := r.DB.Create(&entry).Error; err != nil {
				// Unique index clash: another session created the entry
				// first. Re-read and swap against its value.
				continue
			}
		}

		newQty := entry.QtyOnhand + delta
		if newQty < 0 {
			return 0, &InsufficientStockError{
				ProductID: productID,
				BranchID:  branchID,
				Requested: -delta,
				Available: entry.QtyOnhand,
			}
		}

		result := r.DB.Model(&models.StockEntry{}).
			Where("product_id = ? AND branch_id = ? AND qty_onhand = ?", productID, branchID, entry.QtyOnhand).
			Updates(map[string]interface{}{"qty_onhand": newQty, "updated_by": actor})
		if result.Error != nil {
			return 0, result.Error
		}
		if result.RowsAffected == 0 {
			// Lost the swap, someone else moved the quantity. Re-read and
			// re-run the negative-stock check against the fresh value.
			continue
		}

		movement := models.StockMovement{
			ProductID: productID,
			BranchID:  branchID,
			QtyChange: delta,
			QtyAfter:  newQty,
			RefType:   refType,
			RefID:     refID,
			CreatedBy: actor,
		}
		if err := r.DB.Create(&movement).Error; err != nil {
			return 0, err
		}

		return newQty, nil
	}

	return 0, ErrContention
}

type BranchStockRow struct {
	ProductID     uint   `json:"product_id"`
	ItemCode      string `json:"item_code"`
	ItemName      string `json:"item_name"`
	BaseUom       string `json:"base_uom"`
	MinStockAlert int    `json:"min_stock_alert"`
	QtyOnhand     int    `json:"qty_onhand"`
}

// GetBranchStock lists on-hand stock for a branch with product details.
func (r *StockRepository) GetBranchStock(branchID uint) ([]BranchStockRow, error) {
	sqlStock := `select s.product_id, p.item_code, p.item_name, p.base_uom,
	p.min_stock_alert, s.qty_onhand
	from stock_entries s
	inner join products p on s.product_id = p.id
	where s.branch_id = ? and s.deleted_at is null and p.deleted_at is null
	order by p.item_code`

	var rows []BranchStockRow
	if err := r.DB.Raw(sqlStock, branchID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetLowStock lists products at or below their minimum stock threshold for a
// branch. Products with no stock entry count as zero on hand.
func (r *StockRepository) GetLowStock(branchID uint) ([]BranchStockRow, error) {
	sqlLow := `select p.id as product_id, p.item_code, p.item_name, p.base_uom,
	p.min_stock_alert, coalesce(s.qty_onhand, 0) as qty_onhand
	from products p
	left join stock_entries s on s.product_id = p.id and s.branch_id = ? and s.deleted_at is null
	where p.deleted_at is null and coalesce(s.qty_onhand, 0) <= p.min_stock_alert
	order by p.item_code`

	var rows []BranchStockRow
	if err := r.DB.Raw(sqlLow, branchID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// TotalQuantity sums a product's stock across all branches.
func (r *StockRepository) TotalQuantity(productID uint) (int, error) {
	var total int
	err := r.DB.Model(&models.StockEntry{}).
		Where("product_id = ?", productID).
		Select("coalesce(sum(qty_onhand), 0)").
		Scan(&total).Error
	return total, err
}

// GetMovements returns the applied delta history for one (product, branch)
// pair, newest first.
func (r *StockRepository) GetMovements(productID, branchID uint) ([]models.StockMovement, error) {
	var movements []models.StockMovement
	err := r.DB.Where("product_id = ? AND branch_id = ?", productID, branchID).
		Order("id desc").Find(&movements).Error
	return movements, err
}
