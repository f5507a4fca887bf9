package repositories

import (
	"errors"
	"fmt"
)

var (
	// ErrSameBranch rejects a transfer whose source and destination match.
	ErrSameBranch = errors.New("source and destination branch cannot be the same")

	// ErrEmptyLines rejects a transfer or opname without any line items.
	ErrEmptyLines = errors.New("at least one line item is required")

	// ErrContention is returned when the bounded retry loop on a stock entry
	// or sequence row ran out of attempts.
	ErrContention = errors.New("record is being modified concurrently, please retry")
)

// InsufficientStockError names the product and branch that could not cover a
// requested quantity, so the operator can correct the input directly.
type InsufficientStockError struct {
	ProductID uint
	BranchID  uint
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d at branch %d: requested %d, available %d",
		e.ProductID, e.BranchID, e.Requested, e.Available)
}

// UnknownUnitError is returned when a quantity is expressed in a unit the
// product does not define.
type UnknownUnitError struct {
	ProductID uint
	UnitName  string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit %q for product %d", e.UnitName, e.ProductID)
}

// DuplicateLineError rejects an opname submission that counts the same
// product twice.
type DuplicateLineError struct {
	ProductID uint
}

func (e *DuplicateLineError) Error() string {
	return fmt.Sprintf("product %d appears more than once", e.ProductID)
}
