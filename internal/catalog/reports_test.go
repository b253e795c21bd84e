package catalog

import (
	"testing"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

func newReportCatalog(t *testing.T) *Catalog {
	t.Helper()
	c := New("Corner Books")
	c.AddStaff(types.NewStaff(0, "Ivan Petrov", "Manager", price("50000")))
	c.AddStaff(types.NewStaff(0, "Maria Sidorova", "Sales Clerk", price("35000")))
	c.AddCustomer(types.NewCustomer(0, "Anna Smirnova", "anna@mail.com", "+7-123-456-7890"))
	c.AddCustomer(types.NewCustomer(0, "Dmitry Ivanov", "dmitry@mail.com", "+7-987-654-3210"))
	c.AddItem(types.NewItem(0, "Novel", "Author", "Fiction", price("450"), 15, 1967))
	c.AddItem(types.NewItem(0, "Dystopia", "Author", "Fiction", price("520"), 8, 1949))

	mustSell := func(itemID, qty, custID, staffID int64) {
		t.Helper()
		if _, err := c.SellItem(itemID, qty, custID, staffID); err != nil {
			t.Fatal(err)
		}
	}
	mustSell(1, 2, 1, 1) // 900
	mustSell(2, 1, 2, 1) // 520
	mustSell(1, 3, 1, 2) // 1350
	return c
}

func TestSalesByCustomer(t *testing.T) {
	c := newReportCatalog(t)

	anna := c.SalesByCustomer(1)
	if len(anna) != 2 {
		t.Fatalf("expected 2 sales for customer 1, got %d", len(anna))
	}
	if anna[0].ID != 1 || anna[1].ID != 3 {
		t.Fatalf("expected insertion order 1,3, got %d,%d", anna[0].ID, anna[1].ID)
	}

	if sales := c.SalesByCustomer(99); len(sales) != 0 {
		t.Fatalf("unknown customer must yield no sales, got %d", len(sales))
	}
}

func TestSalesByStaff(t *testing.T) {
	c := newReportCatalog(t)

	ivan := c.SalesByStaff(1)
	if len(ivan) != 2 {
		t.Fatalf("expected 2 sales for staff 1, got %d", len(ivan))
	}
	maria := c.SalesByStaff(2)
	if len(maria) != 1 || maria[0].ID != 3 {
		t.Fatalf("expected sale 3 for staff 2, got %+v", maria)
	}
}

func TestTotalRevenue(t *testing.T) {
	c := newReportCatalog(t)
	if got := c.TotalRevenue(); !got.Equal(price("2770")) {
		t.Fatalf("expected revenue 2770, got %s", got)
	}

	empty := New("empty")
	if got := empty.TotalRevenue(); !got.IsZero() {
		t.Fatalf("expected zero revenue, got %s", got)
	}
}

func TestInventoryValue(t *testing.T) {
	c := newReportCatalog(t)
	// 10 x 450 remaining of item 1, 7 x 520 of item 2.
	if got := c.InventoryValue(); !got.Equal(price("8140")) {
		t.Fatalf("expected inventory value 8140, got %s", got)
	}
}

func TestSummary(t *testing.T) {
	c := newReportCatalog(t)
	s := c.Summary()
	if s.Name != "Corner Books" {
		t.Fatalf("unexpected name %q", s.Name)
	}
	if s.Items != 2 || s.Staff != 2 || s.Customers != 2 || s.Transactions != 3 {
		t.Fatalf("unexpected counts %+v", s)
	}
	if !s.Revenue.Equal(price("2770")) || !s.InventoryValue.Equal(price("8140")) {
		t.Fatalf("unexpected totals %+v", s)
	}
}
