package seed

import (
	"testing"

	"github.com/mesh-intelligence/stockroom/internal/catalog"
)

func TestDemo(t *testing.T) {
	c := catalog.New("demo")
	Demo(c)

	if got := len(c.Items()); got != 5 {
		t.Fatalf("expected 5 demo items, got %d", got)
	}
	if got := len(c.StaffList()); got != 2 {
		t.Fatalf("expected 2 demo staff, got %d", got)
	}
	if got := len(c.Customers()); got != 2 {
		t.Fatalf("expected 2 demo customers, got %d", got)
	}

	items := c.Items()
	for i, item := range items {
		if item.ID != int64(i)+1 {
			t.Fatalf("expected sequential ids, item %d has id %d", i, item.ID)
		}
	}
	if items[0].Title != "The Master and Margarita" {
		t.Fatalf("unexpected first item %q", items[0].Title)
	}

	// Seeding again appends under fresh ids instead of merging.
	Demo(c)
	items = c.Items()
	if len(items) != 10 {
		t.Fatalf("expected 10 items after reseeding, got %d", len(items))
	}
	if items[5].ID != 6 {
		t.Fatalf("expected reseed to continue id sequence, got %d", items[5].ID)
	}
}
