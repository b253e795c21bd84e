// Package store persists full catalog snapshots to flat files in two
// interchangeable encodings: a JSON object tree that keeps native numeric
// types, and an XML tag tree that stores every value as text. Both codecs
// read and write entities through the ordered Record field mapping, so a
// snapshot saved in one encoding loads field-for-field identical from the
// other.
package store

import (
	"fmt"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// Snapshot is the persisted state of a catalog: its name, the four id
// watermarks, and every entity as an ordered field record. Collections keep
// the engine's insertion order on save; on load, the engine keys each
// record by its own id field, so on-disk ordering is not significant.
type Snapshot struct {
	Name string

	NextItemID        int64
	NextStaffID       int64
	NextCustomerID    int64
	NextTransactionID int64

	Items        []types.Record
	Staff        []types.Record
	Customers    []types.Record
	Transactions []types.Record
}

// Top-level snapshot field names. Like the entity field names in types,
// these are shared by both encodings and must stay stable.
const (
	keyName              = "name"
	keyNextItemID        = "next_item_id"
	keyNextStaffID       = "next_staff_id"
	keyNextCustomerID    = "next_customer_id"
	keyNextTransactionID = "next_transaction_id"
	keyItems             = "items"
	keyStaff             = "staff"
	keyCustomers         = "customers"
	keyTransactions      = "transactions"
)

// Save encodes the snapshot in the given format and writes it to path
// atomically (temp file, fsync, rename).
func Save(format types.Format, path string, snap Snapshot) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case types.FormatJSON:
		data, err = encodeJSON(snap)
	case types.FormatXML:
		data, err = encodeXML(snap)
	default:
		return fmt.Errorf("%w: %q", types.ErrFormatUnknown, format)
	}
	if err != nil {
		return fmt.Errorf("encode %s snapshot: %w", format, err)
	}

	if err := writeFileAtomic(path, data); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// Load reads the file at path and decodes it in the given format. A missing
// file is reported as ErrFileNotFound; any parse or structure problem is
// reported as a DecodeError wrapping the cause.
func Load(format types.Format, path string) (Snapshot, error) {
	data, err := readFile(path)
	if err != nil {
		return Snapshot{}, err
	}

	var snap Snapshot
	switch format {
	case types.FormatJSON:
		snap, err = decodeJSON(data)
	case types.FormatXML:
		snap, err = decodeXML(data)
	default:
		return Snapshot{}, fmt.Errorf("%w: %q", types.ErrFormatUnknown, format)
	}
	if err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}
