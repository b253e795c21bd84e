package types

// Customer is a buyer record. Customers are only ever added; no catalog
// operation mutates or deletes them.
type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// NewCustomer builds a customer record. An id of zero or below means "assign
// automatically" when the record is added to a catalog.
func NewCustomer(id int64, name, email, phone string) Customer {
	return Customer{ID: id, Name: name, Email: email, Phone: phone}
}

// Record returns the ordered field mapping used by both persistence codecs.
func (c Customer) Record() Record {
	r := NewRecord()
	r.Set(FieldID, c.ID)
	r.Set(FieldName, c.Name)
	r.Set(FieldEmail, c.Email)
	r.Set(FieldPhone, c.Phone)
	return r
}

// CustomerFromRecord reconstructs a customer record from its field mapping.
func CustomerFromRecord(r Record) (Customer, error) {
	var (
		c   Customer
		err error
	)
	if c.ID, err = r.Int64(FieldID); err != nil {
		return Customer{}, err
	}
	if c.Name, err = r.Text(FieldName); err != nil {
		return Customer{}, err
	}
	if c.Email, err = r.Text(FieldEmail); err != nil {
		return Customer{}, err
	}
	if c.Phone, err = r.Text(FieldPhone); err != nil {
		return Customer{}, err
	}
	return c, nil
}
