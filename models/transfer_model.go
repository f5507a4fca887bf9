package models

import (
	"pos-app/controllers/idgen"
	"pos-app/types"

	"gorm.io/gorm"
)

type Transfer struct {
	gorm.Model
	RecordID  types.SnowflakeID `json:"record_id" gorm:"uniqueIndex"`
	Code      string            `json:"code" gorm:"unique"`
	SourceID  uint              `json:"source_branch_id"`
	Source    Branch            `json:"source" gorm:"foreignKey:SourceID"`
	DestID    uint              `json:"dest_branch_id"`
	Dest      Branch            `json:"dest" gorm:"foreignKey:DestID"`
	Status    string            `json:"status" gorm:"default:'applied'"`
	Notes     string            `json:"notes"`
	Items     []TransferItem    `json:"items" gorm:"foreignKey:TransferID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

type TransferItem struct {
	gorm.Model
	TransferID       uint    `json:"transfer_id" gorm:"index"`
	ProductID        uint    `json:"product_id"`
	Qty              float64 `json:"qty"`
	Uom              string  `json:"uom"`
	ConversionFactor float64 `json:"conversion_factor"`
	QtyBase          int     `json:"qty_base"`
	CreatedBy        int
}

func (t *Transfer) BeforeCreate(tx *gorm.DB) (err error) {
	if t.RecordID == 0 {
		t.RecordID = types.SnowflakeID(idgen.GenerateID())
	}
	return nil
}
