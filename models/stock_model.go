package models

import (
	"pos-app/types"

	"gorm.io/gorm"
)

// StockEntry is the quantity on hand for one (product, branch) pair, always
// in base units. Rows are created lazily on first movement into a branch and
// never deleted; zero is a valid persisted state.
type StockEntry struct {
	gorm.Model
	ProductID uint `json:"product_id" gorm:"uniqueIndex:idx_stock_product_branch"`
	BranchID  uint `json:"branch_id" gorm:"uniqueIndex:idx_stock_product_branch"`
	QtyOnhand int  `json:"qty_onhand" gorm:"default:0"`
	CreatedBy int
	UpdatedBy int
}

// StockMovement is one applied ledger delta, kept as immutable history.
type StockMovement struct {
	gorm.Model
	ProductID uint              `json:"product_id" gorm:"index"`
	BranchID  uint              `json:"branch_id" gorm:"index"`
	QtyChange int               `json:"qty_change"`
	QtyAfter  int               `json:"qty_after"`
	RefType   string            `json:"ref_type"`
	RefID     types.SnowflakeID `json:"ref_id" gorm:"index"`
	CreatedBy int
}
