package types

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestItemFilterMatches(t *testing.T) {
	item := NewItem(1, "War and Peace", "Leo Tolstoy", "Novel", decimal.RequireFromString("590"), 10, 1869)

	t.Run("zero filter matches all", func(t *testing.T) {
		if !(ItemFilter{}).Matches(item) {
			t.Fatal("zero filter should match")
		}
	})

	t.Run("title substring is case-insensitive", func(t *testing.T) {
		if !(ItemFilter{Title: "war"}).Matches(item) {
			t.Fatal("expected case-insensitive match")
		}
		if (ItemFilter{Title: "peace treaty"}).Matches(item) {
			t.Fatal("expected no match")
		}
	})

	t.Run("creator and category", func(t *testing.T) {
		if !(ItemFilter{Creator: "tolstoy", Category: "nov"}).Matches(item) {
			t.Fatal("expected conjunctive match")
		}
		if (ItemFilter{Creator: "tolstoy", Category: "poetry"}).Matches(item) {
			t.Fatal("one failing criterion should reject")
		}
	})

	t.Run("max price is inclusive", func(t *testing.T) {
		at := decimal.RequireFromString("590")
		below := decimal.RequireFromString("589.99")
		if !(ItemFilter{MaxPrice: &at}).Matches(item) {
			t.Fatal("price equal to bound should match")
		}
		if (ItemFilter{MaxPrice: &below}).Matches(item) {
			t.Fatal("price above bound should not match")
		}
	})
}
