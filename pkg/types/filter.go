package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ItemFilter selects items by optional criteria. Zero-value fields are
// skipped, supplied fields compose conjunctively, and the zero filter
// matches every item. Text criteria are case-insensitive substring matches;
// MaxPrice is an inclusive upper bound.
type ItemFilter struct {
	Title    string
	Creator  string
	Category string
	MaxPrice *decimal.Decimal
}

// Matches reports whether the item satisfies every supplied criterion.
func (f ItemFilter) Matches(item Item) bool {
	if f.Title != "" && !containsFold(item.Title, f.Title) {
		return false
	}
	if f.Creator != "" && !containsFold(item.Creator, f.Creator) {
		return false
	}
	if f.Category != "" && !containsFold(item.Category, f.Category) {
		return false
	}
	if f.MaxPrice != nil && item.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
