// Package catalog implements the in-memory catalog engine: the entity
// collections, identifier allocation, and the add/remove/sell/query
// operations with their consistency rules. A Catalog is an explicitly
// constructed value; there is no process-global instance. Operations are
// synchronous and not safe for concurrent use; a caller sharing one Catalog
// across goroutines must add its own mutual exclusion.
package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/stockroom/pkg/logger"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// Catalog owns the four entity collections and their id watermarks. Each id
// space is independent and monotone: a watermark only moves forward, so an
// id is never reassigned, even after the record carrying it is removed.
type Catalog struct {
	name string

	items        *orderedMap[types.Item]
	staff        *orderedMap[types.Staff]
	customers    *orderedMap[types.Customer]
	transactions *orderedMap[types.Transaction]

	nextItemID        int64
	nextStaffID       int64
	nextCustomerID    int64
	nextTransactionID int64

	log *zap.SugaredLogger
}

// New creates an empty catalog with the given display name.
func New(name string) *Catalog {
	return &Catalog{
		name:              name,
		items:             newOrderedMap[types.Item](),
		staff:             newOrderedMap[types.Staff](),
		customers:         newOrderedMap[types.Customer](),
		transactions:      newOrderedMap[types.Transaction](),
		nextItemID:        1,
		nextStaffID:       1,
		nextCustomerID:    1,
		nextTransactionID: 1,
		log:               logger.Nop(),
	}
}

// SetLogger replaces the catalog's logger. Passing nil restores the nop
// logger.
func (c *Catalog) SetLogger(log *zap.SugaredLogger) {
	if log == nil {
		log = logger.Nop()
	}
	c.log = log
}

// Name returns the catalog display name.
func (c *Catalog) Name() string { return c.name }

// Items returns the items in insertion order.
func (c *Catalog) Items() []types.Item { return c.items.Values() }

// StaffList returns the staff records in insertion order.
func (c *Catalog) StaffList() []types.Staff { return c.staff.Values() }

// Customers returns the customer records in insertion order.
func (c *Catalog) Customers() []types.Customer { return c.customers.Values() }

// Transactions returns the sale records in insertion order.
func (c *Catalog) Transactions() []types.Transaction { return c.transactions.Values() }

// AddItem inserts an item or, when its id is already present, merges the
// added quantity into the existing record. An id of zero or below is
// assigned from the item watermark; an explicit id at or above the
// watermark advances it past the id. The returned item is the stored record
// after the add, and merged reports whether an existing record absorbed the
// quantity.
func (c *Catalog) AddItem(item types.Item) (types.Item, bool) {
	if item.ID <= 0 {
		item.ID = c.nextItemID
	}

	if existing, ok := c.items.Get(item.ID); ok {
		existing.Quantity += item.Quantity
		c.items.Set(existing.ID, existing)
		c.log.Infow("item quantity merged",
			"id", existing.ID, "title", existing.Title, "quantity", existing.Quantity)
		return existing, true
	}

	c.items.Set(item.ID, item)
	if item.ID >= c.nextItemID {
		c.nextItemID = item.ID + 1
	}
	c.log.Infow("item added", "id", item.ID, "title", item.Title, "quantity", item.Quantity)
	return item, false
}

// RemoveItem removes qty units of an item, deleting the record entirely
// when the count reaches exactly zero. A deleted id is never assigned
// again. The quantity must be positive. The returned item reflects the
// state after the removal (zero quantity means the record is gone).
func (c *Catalog) RemoveItem(id, qty int64) (types.Item, error) {
	item, ok := c.items.Get(id)
	if !ok {
		return types.Item{}, fmt.Errorf("item %d: %w", id, types.ErrItemNotFound)
	}
	if item.Quantity < qty {
		return types.Item{}, &types.QuantityError{ItemID: id, Requested: qty, Available: item.Quantity}
	}

	item.Quantity -= qty
	if item.Quantity == 0 {
		c.items.Delete(id)
		c.log.Infow("item removed entirely", "id", id, "title", item.Title)
	} else {
		c.items.Set(id, item)
		c.log.Infow("item quantity reduced", "id", id, "title", item.Title, "quantity", item.Quantity)
	}
	return item, nil
}

// SellItem records a sale: qty units of an item to a customer, handled by a
// staff member. Preconditions are checked in order (item, customer, staff
// existence, then sufficient quantity) and the first violation aborts with
// nothing mutated. On success the item quantity is decremented (the record
// stays even at zero; only RemoveItem deletes), the total is captured as
// unit price x quantity at this moment, and the transaction is stored under
// the next transaction id.
func (c *Catalog) SellItem(itemID, qty, customerID, staffID int64) (types.Transaction, error) {
	item, ok := c.items.Get(itemID)
	if !ok {
		return types.Transaction{}, fmt.Errorf("sell item %d: %w", itemID, types.ErrItemNotFound)
	}
	if _, ok := c.customers.Get(customerID); !ok {
		return types.Transaction{}, fmt.Errorf("sell to customer %d: %w", customerID, types.ErrCustomerNotFound)
	}
	if _, ok := c.staff.Get(staffID); !ok {
		return types.Transaction{}, fmt.Errorf("sell by staff %d: %w", staffID, types.ErrStaffNotFound)
	}
	if item.Quantity < qty {
		return types.Transaction{}, &types.QuantityError{ItemID: itemID, Requested: qty, Available: item.Quantity}
	}

	item.Quantity -= qty
	c.items.Set(itemID, item)

	tx := types.Transaction{
		ID:         c.nextTransactionID,
		ItemID:     itemID,
		CustomerID: customerID,
		StaffID:    staffID,
		Quantity:   qty,
		Total:      item.Price.Mul(decimal.NewFromInt(qty)),
	}
	c.transactions.Set(tx.ID, tx)
	c.nextTransactionID++

	c.log.Infow("sale recorded",
		"transaction", tx.ID, "item", itemID, "customer", customerID,
		"staff", staffID, "quantity", qty, "total", tx.Total)
	return tx, nil
}

// AddStaff inserts a staff record. An id of zero or below is assigned from
// the staff watermark. Adding an existing id is a no-op that keeps the
// stored record untouched; added reports whether an insert happened.
func (c *Catalog) AddStaff(member types.Staff) (types.Staff, bool) {
	if member.ID <= 0 {
		member.ID = c.nextStaffID
	}

	if existing, ok := c.staff.Get(member.ID); ok {
		c.log.Infow("staff already present", "id", existing.ID, "name", existing.Name)
		return existing, false
	}

	c.staff.Set(member.ID, member)
	if member.ID >= c.nextStaffID {
		c.nextStaffID = member.ID + 1
	}
	c.log.Infow("staff added", "id", member.ID, "name", member.Name)
	return member, true
}

// AddCustomer inserts a customer record with the same semantics as
// AddStaff.
func (c *Catalog) AddCustomer(customer types.Customer) (types.Customer, bool) {
	if customer.ID <= 0 {
		customer.ID = c.nextCustomerID
	}

	if existing, ok := c.customers.Get(customer.ID); ok {
		c.log.Infow("customer already present", "id", existing.ID, "name", existing.Name)
		return existing, false
	}

	c.customers.Set(customer.ID, customer)
	if customer.ID >= c.nextCustomerID {
		c.nextCustomerID = customer.ID + 1
	}
	c.log.Infow("customer added", "id", customer.ID, "name", customer.Name)
	return customer, true
}
