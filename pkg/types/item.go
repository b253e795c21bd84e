package types

import "github.com/shopspring/decimal"

// Item is a stocked inventory record. Relationships to other entities are by
// identifier only; an item holds no references.
type Item struct {
	ID       int64           `json:"id"`
	Title    string          `json:"title"`
	Creator  string          `json:"creator"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`    // unit price, non-negative
	Quantity int64           `json:"quantity"` // on hand, non-negative
	Year     int             `json:"year"`     // publication year
}

// NewItem builds an item. An id of zero or below means "assign automatically"
// when the item is added to a catalog.
func NewItem(id int64, title, creator, category string, price decimal.Decimal, quantity int64, year int) Item {
	return Item{
		ID:       id,
		Title:    title,
		Creator:  creator,
		Category: category,
		Price:    price,
		Quantity: quantity,
		Year:     year,
	}
}

// Record returns the ordered field mapping used by both persistence codecs.
func (i Item) Record() Record {
	r := NewRecord()
	r.Set(FieldID, i.ID)
	r.Set(FieldTitle, i.Title)
	r.Set(FieldCreator, i.Creator)
	r.Set(FieldCategory, i.Category)
	r.Set(FieldPrice, i.Price)
	r.Set(FieldQuantity, i.Quantity)
	r.Set(FieldYear, i.Year)
	return r
}

// ItemFromRecord reconstructs an item from its field mapping. Every numeric
// field is re-parsed explicitly; the source encoding may have stored it as
// text.
func ItemFromRecord(r Record) (Item, error) {
	var (
		i   Item
		err error
	)
	if i.ID, err = r.Int64(FieldID); err != nil {
		return Item{}, err
	}
	if i.Title, err = r.Text(FieldTitle); err != nil {
		return Item{}, err
	}
	if i.Creator, err = r.Text(FieldCreator); err != nil {
		return Item{}, err
	}
	if i.Category, err = r.Text(FieldCategory); err != nil {
		return Item{}, err
	}
	if i.Price, err = r.Decimal(FieldPrice); err != nil {
		return Item{}, err
	}
	if i.Quantity, err = r.Int64(FieldQuantity); err != nil {
		return Item{}, err
	}
	if i.Year, err = r.Int(FieldYear); err != nil {
		return Item{}, err
	}
	return i, nil
}
