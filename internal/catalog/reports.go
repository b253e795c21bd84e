package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// SalesByCustomer returns every transaction recorded for the customer, in
// insertion order. An unknown id yields an empty slice.
func (c *Catalog) SalesByCustomer(customerID int64) []types.Transaction {
	var sales []types.Transaction
	for _, tx := range c.transactions.Values() {
		if tx.CustomerID == customerID {
			sales = append(sales, tx)
		}
	}
	return sales
}

// SalesByStaff returns every transaction handled by the staff member, in
// insertion order.
func (c *Catalog) SalesByStaff(staffID int64) []types.Transaction {
	var sales []types.Transaction
	for _, tx := range c.transactions.Values() {
		if tx.StaffID == staffID {
			sales = append(sales, tx)
		}
	}
	return sales
}

// TotalRevenue returns the sum of all transaction totals. Revenue is
// derived on demand, never stored.
func (c *Catalog) TotalRevenue() decimal.Decimal {
	total := decimal.Zero
	for _, tx := range c.transactions.Values() {
		total = total.Add(tx.Total)
	}
	return total
}

// InventoryValue returns the sum of unit price x quantity on hand over all
// items.
func (c *Catalog) InventoryValue() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items.Values() {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(item.Quantity)))
	}
	return total
}

// Summary describes the catalog at a point in time.
type Summary struct {
	Name           string          `json:"name"`
	Items          int             `json:"items"`
	Staff          int             `json:"staff"`
	Customers      int             `json:"customers"`
	Transactions   int             `json:"transactions"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
	Revenue        decimal.Decimal `json:"revenue"`
}

// Summary returns the counts and derived totals for the catalog.
func (c *Catalog) Summary() Summary {
	return Summary{
		Name:           c.name,
		Items:          c.items.Len(),
		Staff:          c.staff.Len(),
		Customers:      c.customers.Len(),
		Transactions:   c.transactions.Len(),
		InventoryValue: c.InventoryValue(),
		Revenue:        c.TotalRevenue(),
	}
}
