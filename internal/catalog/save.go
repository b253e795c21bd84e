// Save and load: the catalog's boundary with the persistence adapter.
// Expected persistence errors (missing file, decode faults, write faults)
// pass through unchanged; anything else is wrapped once in a CatalogError.
package catalog

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/stockroom/internal/store"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// Save writes the full catalog state to path in the given format. The path
// is taken as-is; choosing a file extension is the caller's business.
func (c *Catalog) Save(format types.Format, path string) error {
	if err := store.Save(format, path, c.snapshot()); err != nil {
		return wrapUnexpected("save", err)
	}
	c.log.Infow("catalog saved", "format", format, "path", path)
	return nil
}

// Load replaces the catalog state with the snapshot at path: the name, all
// four watermarks, and all four collections. The new state is built up
// completely before it is swapped in, so a failed load leaves the catalog
// untouched.
func (c *Catalog) Load(format types.Format, path string) error {
	snap, err := store.Load(format, path)
	if err != nil {
		return wrapUnexpected("load", err)
	}
	if err := c.restore(snap); err != nil {
		return &store.DecodeError{Format: format, Err: err}
	}
	c.log.Infow("catalog loaded", "format", format, "path", path,
		"items", c.items.Len(), "transactions", c.transactions.Len())
	return nil
}

// snapshot captures the catalog as ordered entity records.
func (c *Catalog) snapshot() store.Snapshot {
	snap := store.Snapshot{
		Name:              c.name,
		NextItemID:        c.nextItemID,
		NextStaffID:       c.nextStaffID,
		NextCustomerID:    c.nextCustomerID,
		NextTransactionID: c.nextTransactionID,
	}
	for _, item := range c.items.Values() {
		snap.Items = append(snap.Items, item.Record())
	}
	for _, member := range c.staff.Values() {
		snap.Staff = append(snap.Staff, member.Record())
	}
	for _, customer := range c.customers.Values() {
		snap.Customers = append(snap.Customers, customer.Record())
	}
	for _, tx := range c.transactions.Values() {
		snap.Transactions = append(snap.Transactions, tx.Record())
	}
	return snap
}

// restore rebuilds the catalog from a snapshot. Entities are keyed by their
// own id field, so load does not depend on on-disk ordering.
func (c *Catalog) restore(snap store.Snapshot) error {
	items := newOrderedMap[types.Item]()
	for _, r := range snap.Items {
		item, err := types.ItemFromRecord(r)
		if err != nil {
			return fmt.Errorf("item record: %w", err)
		}
		items.Set(item.ID, item)
	}

	staff := newOrderedMap[types.Staff]()
	for _, r := range snap.Staff {
		member, err := types.StaffFromRecord(r)
		if err != nil {
			return fmt.Errorf("staff record: %w", err)
		}
		staff.Set(member.ID, member)
	}

	customers := newOrderedMap[types.Customer]()
	for _, r := range snap.Customers {
		customer, err := types.CustomerFromRecord(r)
		if err != nil {
			return fmt.Errorf("customer record: %w", err)
		}
		customers.Set(customer.ID, customer)
	}

	transactions := newOrderedMap[types.Transaction]()
	for _, r := range snap.Transactions {
		tx, err := types.TransactionFromRecord(r)
		if err != nil {
			return fmt.Errorf("transaction record: %w", err)
		}
		transactions.Set(tx.ID, tx)
	}

	c.name = snap.Name
	c.items = items
	c.staff = staff
	c.customers = customers
	c.transactions = transactions
	c.nextItemID = snap.NextItemID
	c.nextStaffID = snap.NextStaffID
	c.nextCustomerID = snap.NextCustomerID
	c.nextTransactionID = snap.NextTransactionID
	return nil
}

// wrapUnexpected keeps the expected persistence errors distinguishable and
// wraps everything else as a generic catalog fault.
func wrapUnexpected(op string, err error) error {
	if errors.Is(err, store.ErrFileNotFound) || errors.Is(err, types.ErrFormatUnknown) {
		return err
	}
	var de *store.DecodeError
	if errors.As(err, &de) {
		return err
	}
	var we *store.WriteError
	if errors.As(err, &we) {
		return err
	}
	return &types.CatalogError{Op: op, Err: err}
}
