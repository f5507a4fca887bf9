package models

import (
	"pos-app/controllers/idgen"
	"pos-app/types"

	"gorm.io/gorm"
)

type PurchaseOrder struct {
	gorm.Model
	RecordID    types.SnowflakeID   `json:"record_id" gorm:"uniqueIndex"`
	Code        string              `json:"code" gorm:"unique"`
	BranchID    uint                `json:"branch_id" gorm:"index"`
	Branch      Branch              `json:"branch"`
	SupplierID  uint                `json:"supplier_id"`
	Status      string              `json:"status" gorm:"default:'draft'"`
	TotalAmount float64             `json:"total_amount" gorm:"default:0"`
	Notes       string              `json:"notes"`
	Items       []PurchaseOrderItem `json:"items" gorm:"foreignKey:PurchaseOrderID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int
}

type PurchaseOrderItem struct {
	gorm.Model
	PurchaseOrderID uint    `json:"purchase_order_id" gorm:"index"`
	ProductID       uint    `json:"product_id"`
	Qty             int     `json:"qty"`
	UnitCost        float64 `json:"unit_cost"`
	LineTotal       float64 `json:"line_total"`
	IsAutoFill      bool    `json:"is_auto_fill" gorm:"default:false"`
	CreatedBy       int
	UpdatedBy       int
}

func (p *PurchaseOrder) BeforeCreate(tx *gorm.DB) (err error) {
	if p.RecordID == 0 {
		p.RecordID = types.SnowflakeID(idgen.GenerateID())
	}
	return nil
}
