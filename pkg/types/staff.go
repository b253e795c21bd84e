package types

import "github.com/shopspring/decimal"

// Staff is an employee record. Staff are only ever added; no catalog
// operation mutates or deletes them.
type Staff struct {
	ID     int64           `json:"id"`
	Name   string          `json:"name"`
	Role   string          `json:"role"`
	Salary decimal.Decimal `json:"salary"` // non-negative
}

// NewStaff builds a staff record. An id of zero or below means "assign
// automatically" when the record is added to a catalog.
func NewStaff(id int64, name, role string, salary decimal.Decimal) Staff {
	return Staff{ID: id, Name: name, Role: role, Salary: salary}
}

// Record returns the ordered field mapping used by both persistence codecs.
func (s Staff) Record() Record {
	r := NewRecord()
	r.Set(FieldID, s.ID)
	r.Set(FieldName, s.Name)
	r.Set(FieldRole, s.Role)
	r.Set(FieldSalary, s.Salary)
	return r
}

// StaffFromRecord reconstructs a staff record from its field mapping.
func StaffFromRecord(r Record) (Staff, error) {
	var (
		s   Staff
		err error
	)
	if s.ID, err = r.Int64(FieldID); err != nil {
		return Staff{}, err
	}
	if s.Name, err = r.Text(FieldName); err != nil {
		return Staff{}, err
	}
	if s.Role, err = r.Text(FieldRole); err != nil {
		return Staff{}, err
	}
	if s.Salary, err = r.Decimal(FieldSalary); err != nil {
		return Staff{}, err
	}
	return s, nil
}
