package types

import (
	"errors"
	"fmt"
)

// Business rule violations surfaced by the catalog engine. Each is wrapped
// with the offending id at the point of failure, so errors.Is distinguishes
// the kind and the message carries the context.
var (
	ErrItemNotFound         = errors.New("item not found")
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrStaffNotFound        = errors.New("staff not found")
	ErrInsufficientQuantity = errors.New("insufficient quantity")
)

// QuantityError reports a removal or sale that asked for more stock than an
// item has on hand. It matches ErrInsufficientQuantity under errors.Is.
type QuantityError struct {
	ItemID    int64
	Requested int64
	Available int64
}

func (e *QuantityError) Error() string {
	return fmt.Sprintf("item %d: insufficient quantity: requested %d, available %d",
		e.ItemID, e.Requested, e.Available)
}

func (e *QuantityError) Is(target error) bool {
	return target == ErrInsufficientQuantity
}

// CatalogError wraps an unexpected failure inside a catalog operation,
// preserving the cause. Business rule violations and the expected
// persistence errors are never wrapped in a CatalogError, so one errors.As
// check separates "rule violation or known fault" from "something broke".
type CatalogError struct {
	Op  string
	Err error
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("catalog %s: %v", e.Op, e.Err)
}

func (e *CatalogError) Unwrap() error { return e.Err }
