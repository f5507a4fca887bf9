package models

import (
	"pos-app/controllers/idgen"
	"pos-app/types"

	"gorm.io/gorm"
)

type Opname struct {
	gorm.Model
	RecordID  types.SnowflakeID `json:"record_id" gorm:"uniqueIndex"`
	Code      string            `json:"code" gorm:"unique"`
	BranchID  uint              `json:"branch_id" gorm:"index"`
	Branch    Branch            `json:"branch"`
	Notes     string            `json:"notes"`
	Items     []OpnameItem      `json:"items" gorm:"foreignKey:OpnameID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

// OpnameItem records one counted product. SystemQty is the system stock read
// at commit time, not the value shown when the count sheet was opened.
type OpnameItem struct {
	gorm.Model
	OpnameID   uint `json:"opname_id" gorm:"index"`
	ProductID  uint `json:"product_id"`
	SystemQty  int  `json:"system_qty"`
	CountedQty int  `json:"counted_qty"`
	Difference int  `json:"difference"`
	CreatedBy  int
}

func (o *Opname) BeforeCreate(tx *gorm.DB) (err error) {
	if o.RecordID == 0 {
		o.RecordID = types.SnowflakeID(idgen.GenerateID())
	}
	return nil
}
