// Package seed fills a fresh catalog with the built-in demo inventory, a
// small fixed set of items, staff, and customers for trying the tool out.
package seed

import (
	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/stockroom/internal/catalog"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

type demoItem struct {
	title    string
	creator  string
	category string
	price    string
	quantity int64
	year     int
}

var demoItems = []demoItem{
	{"The Master and Margarita", "Mikhail Bulgakov", "Novel", "450.0", 15, 1967},
	{"Crime and Punishment", "Fyodor Dostoevsky", "Novel", "380.0", 12, 1866},
	{"1984", "George Orwell", "Dystopia", "520.0", 8, 1949},
	{"Harry Potter and the Philosopher's Stone", "J.K. Rowling", "Fantasy", "670.0", 20, 1997},
	{"War and Peace", "Leo Tolstoy", "Novel", "590.0", 10, 1869},
}

type demoStaff struct {
	name   string
	role   string
	salary string
}

var demoStaffMembers = []demoStaff{
	{"Ivan Petrov", "Manager", "50000"},
	{"Maria Sidorova", "Sales Clerk", "35000"},
}

type demoCustomer struct {
	name  string
	email string
	phone string
}

var demoCustomers = []demoCustomer{
	{"Anna Smirnova", "anna@mail.com", "+7-123-456-7890"},
	{"Dmitry Ivanov", "dmitry@mail.com", "+7-987-654-3210"},
}

// Demo adds the built-in demo inventory to the catalog. All ids are assigned
// from the catalog's watermarks, so seeding an already populated catalog
// appends rather than collides.
func Demo(c *catalog.Catalog) {
	for _, d := range demoItems {
		c.AddItem(types.NewItem(0, d.title, d.creator, d.category,
			decimal.RequireFromString(d.price), d.quantity, d.year))
	}
	for _, s := range demoStaffMembers {
		c.AddStaff(types.NewStaff(0, s.name, s.role, decimal.RequireFromString(s.salary)))
	}
	for _, cu := range demoCustomers {
		c.AddCustomer(types.NewCustomer(0, cu.name, cu.email, cu.phone))
	}
}
