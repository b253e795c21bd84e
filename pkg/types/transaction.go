package types

import "github.com/shopspring/decimal"

// Transaction is a sale record. Transactions are created only by the sell
// operation, are immutable afterwards, and are never deleted; they reference
// the item, customer, and staff ids that existed at the moment of sale, even
// if those records are later removed.
type Transaction struct {
	ID         int64           `json:"id"`
	ItemID     int64           `json:"item_id"`
	CustomerID int64           `json:"customer_id"`
	StaffID    int64           `json:"staff_id"`
	Quantity   int64           `json:"quantity"`
	Total      decimal.Decimal `json:"total"` // unit price x quantity at sale time
}

// Record returns the ordered field mapping used by both persistence codecs.
func (t Transaction) Record() Record {
	r := NewRecord()
	r.Set(FieldID, t.ID)
	r.Set(FieldItemID, t.ItemID)
	r.Set(FieldCustomerID, t.CustomerID)
	r.Set(FieldStaffID, t.StaffID)
	r.Set(FieldQuantity, t.Quantity)
	r.Set(FieldTotal, t.Total)
	return r
}

// TransactionFromRecord reconstructs a transaction from its field mapping.
func TransactionFromRecord(r Record) (Transaction, error) {
	var (
		t   Transaction
		err error
	)
	if t.ID, err = r.Int64(FieldID); err != nil {
		return Transaction{}, err
	}
	if t.ItemID, err = r.Int64(FieldItemID); err != nil {
		return Transaction{}, err
	}
	if t.CustomerID, err = r.Int64(FieldCustomerID); err != nil {
		return Transaction{}, err
	}
	if t.StaffID, err = r.Int64(FieldStaffID); err != nil {
		return Transaction{}, err
	}
	if t.Quantity, err = r.Int64(FieldQuantity); err != nil {
		return Transaction{}, err
	}
	if t.Total, err = r.Decimal(FieldTotal); err != nil {
		return Transaction{}, err
	}
	return t, nil
}
