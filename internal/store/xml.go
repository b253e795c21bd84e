// XML snapshot codec. The same logical schema as the JSON codec, rendered
// as a tree of named text-valued nodes: no native numeric types survive, so
// every numeric field is re-parsed explicitly on load.
package store

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// XML element names. Collections wrap one element per entity.
const (
	xmlRoot        = "catalog"
	xmlItem        = "item"
	xmlStaff       = "member"
	xmlCustomer    = "customer"
	xmlTransaction = "transaction"
)

// encodeXML renders the snapshot as an indented XML document.
func encodeXML(snap Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")

	root := xml.StartElement{Name: xml.Name{Local: xmlRoot}}
	if err := enc.EncodeToken(root); err != nil {
		return nil, err
	}

	if err := encodeTextElement(enc, keyName, snap.Name); err != nil {
		return nil, err
	}
	for _, wm := range []struct {
		key   string
		value int64
	}{
		{keyNextItemID, snap.NextItemID},
		{keyNextStaffID, snap.NextStaffID},
		{keyNextCustomerID, snap.NextCustomerID},
		{keyNextTransactionID, snap.NextTransactionID},
	} {
		if err := encodeTextElement(enc, wm.key, strconv.FormatInt(wm.value, 10)); err != nil {
			return nil, err
		}
	}

	for _, coll := range []struct {
		key     string
		entity  string
		records []types.Record
	}{
		{keyItems, xmlItem, snap.Items},
		{keyStaff, xmlStaff, snap.Staff},
		{keyCustomers, xmlCustomer, snap.Customers},
		{keyTransactions, xmlTransaction, snap.Transactions},
	} {
		if err := encodeCollection(enc, coll.key, coll.entity, coll.records); err != nil {
			return nil, fmt.Errorf("%s: %w", coll.key, err)
		}
	}

	if err := enc.EncodeToken(root.End()); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}

	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func encodeCollection(enc *xml.Encoder, key, entity string, records []types.Record) error {
	start := xml.StartElement{Name: xml.Name{Local: key}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, r := range records {
		if err := encodeRecordXML(enc, entity, r); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

// encodeRecordXML renders one entity record as a nested element whose
// children are its fields in Record order, all as text.
func encodeRecordXML(enc *xml.Encoder, entity string, r types.Record) error {
	start := xml.StartElement{Name: xml.Name{Local: entity}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, name := range r.Names() {
		v, _ := r.Get(name)
		text, err := fieldText(name, v)
		if err != nil {
			return err
		}
		if err := encodeTextElement(enc, name, text); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

// fieldText converts a record value to its canonical textual form.
func fieldText(name string, v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case int:
		return strconv.Itoa(t), nil
	case decimal.Decimal:
		return t.String(), nil
	default:
		return "", fmt.Errorf("unsupported value type %T for field %q", v, name)
	}
}

func encodeTextElement(enc *xml.Encoder, name, text string) error {
	start := xml.StartElement{Name: xml.Name{Local: name}}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if err := enc.EncodeToken(xml.CharData(text)); err != nil {
		return err
	}
	return enc.EncodeToken(start.End())
}

// xmlNode is a generic element tree used on load, since the schema is a
// plain nesting of named text nodes.
type xmlNode struct {
	XMLName xml.Name
	Nodes   []xmlNode `xml:",any"`
	Text    string    `xml:",chardata"`
}

// decodeXML parses an XML snapshot. Watermarks absent from the document
// default to 1; absent collections default to empty; malformed watermark
// text fails the load.
func decodeXML(data []byte) (Snapshot, error) {
	var root xmlNode
	if err := xml.Unmarshal(data, &root); err != nil {
		return Snapshot{}, &DecodeError{Format: types.FormatXML, Err: err}
	}
	if root.XMLName.Local != xmlRoot {
		return Snapshot{}, &DecodeError{
			Format: types.FormatXML,
			Err:    fmt.Errorf("unexpected root element %q", root.XMLName.Local),
		}
	}

	snap := Snapshot{
		NextItemID:        1,
		NextStaffID:       1,
		NextCustomerID:    1,
		NextTransactionID: 1,
	}
	for _, node := range root.Nodes {
		var err error
		switch node.XMLName.Local {
		case keyName:
			snap.Name = node.Text
		case keyNextItemID:
			snap.NextItemID, err = parseWatermark(node)
		case keyNextStaffID:
			snap.NextStaffID, err = parseWatermark(node)
		case keyNextCustomerID:
			snap.NextCustomerID, err = parseWatermark(node)
		case keyNextTransactionID:
			snap.NextTransactionID, err = parseWatermark(node)
		case keyItems:
			snap.Items = recordsFromNodes(node)
		case keyStaff:
			snap.Staff = recordsFromNodes(node)
		case keyCustomers:
			snap.Customers = recordsFromNodes(node)
		case keyTransactions:
			snap.Transactions = recordsFromNodes(node)
		}
		if err != nil {
			return Snapshot{}, err
		}
	}
	return snap, nil
}

func parseWatermark(node xmlNode) (int64, error) {
	n, err := strconv.ParseInt(node.Text, 10, 64)
	if err != nil {
		return 0, &DecodeError{
			Format: types.FormatXML,
			Err:    fmt.Errorf("element %q: %q is not an integer", node.XMLName.Local, node.Text),
		}
	}
	return n, nil
}

// recordsFromNodes converts each child entity element into a Record of text
// values; all type coercion happens later in the entity reconstruction.
func recordsFromNodes(coll xmlNode) []types.Record {
	records := make([]types.Record, 0, len(coll.Nodes))
	for _, entity := range coll.Nodes {
		r := types.NewRecord()
		for _, field := range entity.Nodes {
			r.Set(field.XMLName.Local, field.Text)
		}
		records = append(records, r)
	}
	return records
}
