package catalog

import "github.com/mesh-intelligence/stockroom/pkg/types"

// SearchItems returns the items matching every supplied filter criterion,
// in insertion order. The zero filter returns all items.
func (c *Catalog) SearchItems(filter types.ItemFilter) []types.Item {
	matches := make([]types.Item, 0, c.items.Len())
	for _, item := range c.items.Values() {
		if filter.Matches(item) {
			matches = append(matches, item)
		}
	}
	return matches
}
