// JSON snapshot codec. The top-level object carries the catalog name, the
// four watermarks as native numbers, and one array per collection. Entity
// objects are emitted through an ordered writer so field order follows the
// Record field order (a stdlib map would sort keys) and decimal values
// appear as bare JSON numbers.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// encodeJSON renders the snapshot as an indented JSON document.
func encodeJSON(snap Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	writeJSONKey(&buf, keyName, false)
	name, err := json.Marshal(snap.Name)
	if err != nil {
		return nil, err
	}
	buf.Write(name)

	for _, wm := range []struct {
		key   string
		value int64
	}{
		{keyNextItemID, snap.NextItemID},
		{keyNextStaffID, snap.NextStaffID},
		{keyNextCustomerID, snap.NextCustomerID},
		{keyNextTransactionID, snap.NextTransactionID},
	} {
		writeJSONKey(&buf, wm.key, true)
		buf.WriteString(strconv.FormatInt(wm.value, 10))
	}

	for _, coll := range []struct {
		key     string
		records []types.Record
	}{
		{keyItems, snap.Items},
		{keyStaff, snap.Staff},
		{keyCustomers, snap.Customers},
		{keyTransactions, snap.Transactions},
	} {
		writeJSONKey(&buf, coll.key, true)
		buf.WriteByte('[')
		for i, r := range coll.records {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeRecordJSON(&buf, r); err != nil {
				return nil, fmt.Errorf("%s: %w", coll.key, err)
			}
		}
		buf.WriteByte(']')
	}

	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func writeJSONKey(buf *bytes.Buffer, key string, comma bool) {
	if comma {
		buf.WriteByte(',')
	}
	k, _ := json.Marshal(key)
	buf.Write(k)
	buf.WriteByte(':')
}

// writeRecordJSON renders one entity record as a JSON object, preserving
// field order and native numeric types.
func writeRecordJSON(buf *bytes.Buffer, r types.Record) error {
	buf.WriteByte('{')
	for i, name := range r.Names() {
		writeJSONKey(buf, name, i > 0)
		v, _ := r.Get(name)
		switch t := v.(type) {
		case string:
			s, err := json.Marshal(t)
			if err != nil {
				return err
			}
			buf.Write(s)
		case int64:
			buf.WriteString(strconv.FormatInt(t, 10))
		case int:
			buf.WriteString(strconv.Itoa(t))
		case decimal.Decimal:
			// Decimal.String is always a valid JSON number.
			buf.WriteString(t.String())
		default:
			return fmt.Errorf("unsupported value type %T for field %q", v, name)
		}
	}
	buf.WriteByte('}')
	return nil
}

// jsonSnapshot mirrors the on-disk top-level object. Pointer watermarks
// distinguish "absent" from zero so each one can default independently.
type jsonSnapshot struct {
	Name              string           `json:"name"`
	NextItemID        *int64           `json:"next_item_id"`
	NextStaffID       *int64           `json:"next_staff_id"`
	NextCustomerID    *int64           `json:"next_customer_id"`
	NextTransactionID *int64           `json:"next_transaction_id"`
	Items             []map[string]any `json:"items"`
	Staff             []map[string]any `json:"staff"`
	Customers         []map[string]any `json:"customers"`
	Transactions      []map[string]any `json:"transactions"`
}

// decodeJSON parses a JSON snapshot. Numbers are decoded as json.Number so
// the Record accessors re-coerce them without float precision loss.
// Watermarks absent from the payload default to 1; absent collections
// (older payloads had no transactions list) default to empty.
func decodeJSON(data []byte) (Snapshot, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw jsonSnapshot
	if err := dec.Decode(&raw); err != nil {
		return Snapshot{}, &DecodeError{Format: types.FormatJSON, Err: err}
	}

	snap := Snapshot{
		Name:              raw.Name,
		NextItemID:        watermarkOrDefault(raw.NextItemID),
		NextStaffID:       watermarkOrDefault(raw.NextStaffID),
		NextCustomerID:    watermarkOrDefault(raw.NextCustomerID),
		NextTransactionID: watermarkOrDefault(raw.NextTransactionID),
		Items:             recordsFromMaps(raw.Items),
		Staff:             recordsFromMaps(raw.Staff),
		Customers:         recordsFromMaps(raw.Customers),
		Transactions:      recordsFromMaps(raw.Transactions),
	}
	return snap, nil
}

func watermarkOrDefault(v *int64) int64 {
	if v == nil {
		return 1
	}
	return *v
}

// recordsFromMaps converts decoded objects to Records. Field order within a
// loaded record is not significant: reconstruction looks fields up by name,
// and a re-save always goes through the entity's canonical Record order.
func recordsFromMaps(maps []map[string]any) []types.Record {
	records := make([]types.Record, 0, len(maps))
	for _, m := range maps {
		r := types.NewRecord()
		for name, value := range m {
			r.Set(name, value)
		}
		records = append(records, r)
	}
	return records
}
