package models

import "encoding/json"

// OptionalID distinguishes the three states a nullable foreign key can take
// in a partial update: key absent (leave unchanged), key null (unset), and
// key set to a value. Plain pointers cannot tell the first two apart.
type OptionalID struct {
	Present bool
	Valid   bool
	ID      int64
}

func (o *OptionalID) UnmarshalJSON(data []byte) error {
	o.Present = true
	if string(data) == "null" {
		o.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &o.ID); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func (o OptionalID) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.ID)
}

// Ptr returns the value as a nullable pointer, nil when the state is null.
// Only meaningful when Present is true.
func (o OptionalID) Ptr() *int64 {
	if !o.Valid {
		return nil
	}
	id := o.ID
	return &id
}
