package repositories

import (
	"errors"
	"time"

	"pos-app/controllers/skugen"
	"pos-app/models"

	"gorm.io/gorm"
)

type SkuRepository struct {
	DB *gorm.DB
}

func NewSkuRepository(DB *gorm.DB) *SkuRepository {
	return &SkuRepository{DB: DB}
}

// AllocateSku issues the next SKU for a category and date. Sequences are
// sharded per (prefix, date bucket) in sku_sequences, so concurrent product
// creation in the same bucket serializes on one row and distinct buckets do
// not contend. The same SKU is never issued twice.
func (r *SkuRepository) AllocateSku(categoryName string, date time.Time) (string, error) {
	prefix, err := skugen.Prefix(categoryName)
	if err != nil {
		return "", err
	}

	seq, err := r.nextSeq(prefix, date.Format("20060102"))
	if err != nil {
		return "", err
	}

	return skugen.Format(prefix, date, seq), nil
}

// NextDocCode issues the next transaction document code (TRF, OPN, PO) for a
// date, from the same sequence table as SKUs.
func (r *SkuRepository) NextDocCode(prefix string, date time.Time) (string, error) {
	seq, err := r.nextSeq(prefix, date.Format("20060102"))
	if err != nil {
		return "", err
	}
	return skugen.FormatDoc(prefix, date, seq), nil
}

// nextSeq increments the shared counter for one (prefix, bucket) pair. The
// read-then-increment is a compare-and-swap loop: the UPDATE only matches
// while last_seq still holds the value that was read, so two sessions can
// never be issued the same number.
func (r *SkuRepository) nextSeq(prefix, bucket string) (int, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		var seqRow models.SkuSequence
		err := r.DB.Where("prefix = ? AND bucket = ?", prefix, bucket).First(&seqRow).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, err
			}
			seqRow = models.SkuSequence{Prefix: prefix, Bucket: bucket, LastSeq: 1}
			if err := r.DB.Create(&seqRow).Error; err != nil {
				// Unique index clash: another session created the bucket
				// first. Re-read and increment its row.
				continue
			}
			return 1, nil
		}

		next := seqRow.LastSeq + 1
		result := r.DB.Model(&models.SkuSequence{}).
			Where("prefix = ? AND bucket = ? AND last_seq = ?", prefix, bucket, seqRow.LastSeq).
			Update("last_seq", next)
		if result.Error != nil {
			return 0, result.Error
		}
		if result.RowsAffected == 1 {
			return next, nil
		}
	}

	return 0, ErrContention
}
