package store

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

func sampleSnapshot() Snapshot {
	item := types.NewItem(1, "1984", "George Orwell", "Dystopia", decimal.RequireFromString("520.50"), 8, 1949)
	member := types.NewStaff(1, "Ivan Petrov", "Manager", decimal.RequireFromString("50000"))
	customer := types.NewCustomer(1, "Anna Smirnova", "anna@mail.com", "+7-123-456-7890")
	tx := types.Transaction{ID: 1, ItemID: 1, CustomerID: 1, StaffID: 1, Quantity: 2, Total: decimal.RequireFromString("1041")}

	return Snapshot{
		Name:              "Corner Books",
		NextItemID:        2,
		NextStaffID:       2,
		NextCustomerID:    2,
		NextTransactionID: 2,
		Items:             []types.Record{item.Record()},
		Staff:             []types.Record{member.Record()},
		Customers:         []types.Record{customer.Record()},
		Transactions:      []types.Record{tx.Record()},
	}
}

func TestEncodeJSONShape(t *testing.T) {
	data, err := encodeJSON(sampleSnapshot())
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)

	// Field order must follow Record order, not key sorting.
	if strings.Index(text, `"title"`) < strings.Index(text, `"id"`) {
		t.Error("expected id before title")
	}
	if strings.Index(text, `"year"`) < strings.Index(text, `"quantity"`) {
		t.Error("expected quantity before year")
	}
	// Decimals are bare numbers, not quoted strings.
	if !strings.Contains(text, `"price": 520.5`) {
		t.Errorf("expected native numeric price, got:\n%s", text)
	}
	if strings.Contains(text, `"520.5"`) {
		t.Error("price must not be quoted")
	}
}

func TestDecodeJSONRoundTrip(t *testing.T) {
	snap := sampleSnapshot()
	data, err := encodeJSON(snap)
	if err != nil {
		t.Fatal(err)
	}

	got, err := decodeJSON(data)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != snap.Name {
		t.Errorf("name: got %q, want %q", got.Name, snap.Name)
	}
	if got.NextItemID != 2 || got.NextTransactionID != 2 {
		t.Errorf("watermarks not restored: %+v", got)
	}

	if len(got.Items) != 1 {
		t.Fatalf("expected 1 item record, got %d", len(got.Items))
	}
	item, err := types.ItemFromRecord(got.Items[0])
	if err != nil {
		t.Fatal(err)
	}
	if item.Title != "1984" || !item.Price.Equal(decimal.RequireFromString("520.5")) {
		t.Errorf("item mismatch: %+v", item)
	}
}

func TestDecodeJSONDefaults(t *testing.T) {
	// Payload predating watermarks and the transactions list.
	data := []byte(`{"name": "Old Shop", "items": [], "staff": [], "customers": []}`)

	snap, err := decodeJSON(data)
	if err != nil {
		t.Fatal(err)
	}
	if snap.Name != "Old Shop" {
		t.Errorf("name: got %q", snap.Name)
	}
	for i, wm := range []int64{snap.NextItemID, snap.NextStaffID, snap.NextCustomerID, snap.NextTransactionID} {
		if wm != 1 {
			t.Errorf("watermark %d: got %d, want 1", i, wm)
		}
	}
	if len(snap.Transactions) != 0 {
		t.Errorf("expected empty transactions, got %d", len(snap.Transactions))
	}
}

func TestDecodeJSONMalformed(t *testing.T) {
	_, err := decodeJSON([]byte(`{"name": `))
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if de.Format != types.FormatJSON {
		t.Errorf("format: got %q", de.Format)
	}
}

func TestSaveLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	snap := sampleSnapshot()

	if err := Save(types.FormatJSON, path, snap); err != nil {
		t.Fatal(err)
	}
	got, err := Load(types.FormatJSON, path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != snap.Name || len(got.Items) != 1 {
		t.Errorf("loaded snapshot mismatch: %+v", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(types.FormatJSON, filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
}

func TestSaveUnknownFormat(t *testing.T) {
	err := Save(types.Format("csv"), filepath.Join(t.TempDir(), "x"), Snapshot{})
	if !errors.Is(err, types.ErrFormatUnknown) {
		t.Fatalf("expected ErrFormatUnknown, got %v", err)
	}
}
