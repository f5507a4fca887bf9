package skugen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidCategory = errors.New("category name is required")

const dateLayout = "20060102"

// Prefix builds the SKU prefix from a category name. The first three
// characters are upper-cased; anything outside A-Z0-9 is replaced with the
// literal "CAT", and short results are padded with X up to three characters.
func Prefix(categoryName string) (string, error) {
	if strings.TrimSpace(categoryName) == "" {
		return "", ErrInvalidCategory
	}

	raw := []rune(strings.ToUpper(categoryName))
	if len(raw) > 3 {
		raw = raw[:3]
	}

	var sb strings.Builder
	for _, r := range raw {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		} else {
			sb.WriteString("CAT")
		}
	}

	prefix := sb.String()
	for len(prefix) < 3 {
		prefix += "X"
	}

	return prefix, nil
}

// NextSku generates the next code in PREFIX-YYYYMMDD-SEQ form. The sequence
// continues from the trailing number of lastSku, or starts at 1 when lastSku
// is empty or unparsable.
func NextSku(categoryName string, date time.Time, lastSku string) (string, error) {
	prefix, err := Prefix(categoryName)
	if err != nil {
		return "", err
	}

	seq := 1
	if n := TrailingSeq(lastSku); n > 0 {
		seq = n + 1
	}

	return Format(prefix, date, seq), nil
}

// Format renders a code for an already-resolved prefix and sequence.
func Format(prefix string, date time.Time, seq int) string {
	return fmt.Sprintf("%s-%s-%03d", prefix, date.Format(dateLayout), seq)
}

// FormatDoc renders a transaction document code (TRF/OPN/PO) with the wider
// four-digit sequence used for daily transaction numbering.
func FormatDoc(prefix string, date time.Time, seq int) string {
	return fmt.Sprintf("%s-%s-%04d", prefix, date.Format(dateLayout), seq)
}

// TrailingSeq returns the numeric segment after the last dash, 0 when absent
// or unparsable.
func TrailingSeq(sku string) int {
	idx := strings.LastIndex(sku, "-")
	if idx < 0 || idx+1 >= len(sku) {
		return 0
	}
	n, err := strconv.Atoi(sku[idx+1:])
	if err != nil || n < 0 {
		return 0
	}
	return n
}
