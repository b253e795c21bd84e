package types

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestItemRecordRoundTrip(t *testing.T) {
	item := NewItem(3, "1984", "George Orwell", "Dystopia", decimal.RequireFromString("520"), 8, 1949)

	got, err := ItemFromRecord(item.Record())
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != item.ID || got.Title != item.Title || got.Creator != item.Creator ||
		got.Category != item.Category || !got.Price.Equal(item.Price) ||
		got.Quantity != item.Quantity || got.Year != item.Year {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, item)
	}
}

func TestItemFromRecordAllText(t *testing.T) {
	// The tag-tree encoding stores every value as text; reconstruction must
	// coerce identically to the typed case.
	r := NewRecord()
	r.Set(FieldID, "3")
	r.Set(FieldTitle, "1984")
	r.Set(FieldCreator, "George Orwell")
	r.Set(FieldCategory, "Dystopia")
	r.Set(FieldPrice, "520")
	r.Set(FieldQuantity, "8")
	r.Set(FieldYear, "1949")

	got, err := ItemFromRecord(r)
	if err != nil {
		t.Fatal(err)
	}
	want := NewItem(3, "1984", "George Orwell", "Dystopia", decimal.NewFromInt(520), 8, 1949)
	if got.ID != want.ID || !got.Price.Equal(want.Price) || got.Quantity != want.Quantity || got.Year != want.Year {
		t.Fatalf("text coercion mismatch: got %+v, want %+v", got, want)
	}
}

func TestItemFromRecordMalformedPrice(t *testing.T) {
	r := NewItem(1, "a", "b", "c", decimal.Zero, 1, 2000).Record()
	r.Set(FieldPrice, "not-a-price")

	if _, err := ItemFromRecord(r); err == nil {
		t.Fatal("expected error for malformed price")
	}
}

func TestStaffRecordRoundTrip(t *testing.T) {
	s := NewStaff(2, "Maria Sidorova", "Sales Clerk", decimal.RequireFromString("35000"))
	got, err := StaffFromRecord(s.Record())
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != s.ID || got.Name != s.Name || got.Role != s.Role || !got.Salary.Equal(s.Salary) {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, s)
	}
}

func TestCustomerRecordRoundTrip(t *testing.T) {
	c := NewCustomer(1, "Anna Smirnova", "anna@mail.com", "+7-123-456-7890")
	got, err := CustomerFromRecord(c.Record())
	if err != nil {
		t.Fatal(err)
	}
	if got != c {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, c)
	}
}

func TestTransactionRecordRoundTrip(t *testing.T) {
	tx := Transaction{ID: 1, ItemID: 3, CustomerID: 2, StaffID: 1, Quantity: 5, Total: decimal.RequireFromString("2250")}
	got, err := TransactionFromRecord(tx.Record())
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != tx.ID || got.ItemID != tx.ItemID || got.CustomerID != tx.CustomerID ||
		got.StaffID != tx.StaffID || got.Quantity != tx.Quantity || !got.Total.Equal(tx.Total) {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, tx)
	}
}
