package models

import "gorm.io/gorm"

// SkuSequence holds the last issued sequence number per (prefix, bucket).
// SKU allocation buckets by category prefix and date; document codes (TRF,
// OPN, PO) share the same table with their own prefixes.
type SkuSequence struct {
	gorm.Model
	Prefix  string `json:"prefix" gorm:"uniqueIndex:idx_sku_prefix_bucket"`
	Bucket  string `json:"bucket" gorm:"uniqueIndex:idx_sku_prefix_bucket"`
	LastSeq int    `json:"last_seq" gorm:"default:0"`
}
