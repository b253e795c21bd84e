package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Field names shared by both persistence encodings. These strings are the
// cross-format contract: they appear as JSON object keys and as XML tag
// names, and old snapshots stop loading if one changes.
const (
	FieldID       = "id"
	FieldTitle    = "title"
	FieldCreator  = "creator"
	FieldCategory = "category"
	FieldPrice    = "price"
	FieldQuantity = "quantity"
	FieldYear     = "year"

	FieldName   = "name"
	FieldRole   = "role"
	FieldSalary = "salary"

	FieldEmail = "email"
	FieldPhone = "phone"

	FieldItemID     = "item_id"
	FieldCustomerID = "customer_id"
	FieldStaffID    = "staff_id"
	FieldTotal      = "total"
)

// Record field errors.
var (
	ErrFieldMissing   = errors.New("field missing")
	ErrFieldMalformed = errors.New("field malformed")
)

// FieldError reports a missing or unparseable field in a persisted record.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Record is an insertion-ordered mapping of field names to values. Every
// entity converts to and from a Record, and both persistence codecs read and
// write entities only through Records, so the field order here is the
// on-disk field order.
//
// Values written by entities are string, int64, int, or decimal.Decimal.
// Values read back from a snapshot may additionally be json.Number (JSON
// codec) or plain text (XML codec); the typed accessors re-coerce in every
// case, so reconstruction never trusts the source representation.
type Record struct {
	names  []string
	values map[string]any
}

// NewRecord returns an empty record.
func NewRecord() Record {
	return Record{values: make(map[string]any)}
}

// Set stores a field value. A new name is appended to the field order; an
// existing name keeps its position.
func (r *Record) Set(name string, value any) {
	if r.values == nil {
		r.values = make(map[string]any)
	}
	if _, ok := r.values[name]; !ok {
		r.names = append(r.names, name)
	}
	r.values[name] = value
}

// Get returns the raw field value.
func (r Record) Get(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Names returns the field names in insertion order.
func (r Record) Names() []string { return r.names }

// Len returns the number of fields.
func (r Record) Len() int { return len(r.names) }

// Text returns the named field as a string.
func (r Record) Text(name string) (string, error) {
	v, ok := r.values[name]
	if !ok {
		return "", &FieldError{Field: name, Err: ErrFieldMissing}
	}
	s, ok := v.(string)
	if !ok {
		return "", &FieldError{Field: name, Err: fmt.Errorf("%w: have %T, want text", ErrFieldMalformed, v)}
	}
	return s, nil
}

// Int64 returns the named field as an int64, parsing textual representations
// explicitly. Fractional values are rejected.
func (r Record) Int64(name string) (int64, error) {
	v, ok := r.values[name]
	if !ok {
		return 0, &FieldError{Field: name, Err: ErrFieldMissing}
	}
	switch t := v.(type) {
	case int64:
		return t, nil
	case int:
		return int64(t), nil
	case json.Number:
		n, err := strconv.ParseInt(t.String(), 10, 64)
		if err != nil {
			return 0, &FieldError{Field: name, Err: fmt.Errorf("%w: %q is not an integer", ErrFieldMalformed, t.String())}
		}
		return n, nil
	case string:
		n, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return 0, &FieldError{Field: name, Err: fmt.Errorf("%w: %q is not an integer", ErrFieldMalformed, t)}
		}
		return n, nil
	case float64:
		if t != math.Trunc(t) {
			return 0, &FieldError{Field: name, Err: fmt.Errorf("%w: %v is not an integer", ErrFieldMalformed, t)}
		}
		return int64(t), nil
	default:
		return 0, &FieldError{Field: name, Err: fmt.Errorf("%w: have %T, want integer", ErrFieldMalformed, v)}
	}
}

// Int returns the named field as an int.
func (r Record) Int(name string) (int, error) {
	n, err := r.Int64(name)
	return int(n), err
}

// Decimal returns the named field as a decimal, parsing textual and numeric
// representations explicitly.
func (r Record) Decimal(name string) (decimal.Decimal, error) {
	v, ok := r.values[name]
	if !ok {
		return decimal.Decimal{}, &FieldError{Field: name, Err: ErrFieldMissing}
	}
	var text string
	switch t := v.(type) {
	case decimal.Decimal:
		return t, nil
	case json.Number:
		text = t.String()
	case string:
		text = t
	case float64:
		return decimal.NewFromFloat(t), nil
	case int64:
		return decimal.NewFromInt(t), nil
	case int:
		return decimal.NewFromInt(int64(t)), nil
	default:
		return decimal.Decimal{}, &FieldError{Field: name, Err: fmt.Errorf("%w: have %T, want decimal", ErrFieldMalformed, v)}
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, &FieldError{Field: name, Err: fmt.Errorf("%w: %q is not a decimal", ErrFieldMalformed, text)}
	}
	return d, nil
}
