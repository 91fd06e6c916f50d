package carts

import (
	"errors"

	"jaanmak/internal/domain/catalog"
)

var ErrInvalidQuantity = errors.New("carts: quantity must be greater than 0")

// Item is one ledger line: a product snapshot plus its quantity. The
// product fields are inlined when encoded, matching the persisted shape.
type Item struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// LineTotal is price times quantity.
func (i Item) LineTotal() int64 {
	return i.Price * int64(i.Quantity)
}
