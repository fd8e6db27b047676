package storage

import (
	"bytes"
	"encoding/json"

	"kopadb/schema"
)

// Row is one record: exactly one value per column, in column order.
// Rows are handed out by pointer; a *Row held by a table is the live stored
// record and pointer identity is what indexes track.
type Row struct {
	columns []string
	values  map[string]schema.Value
}

// NewRow creates a row with every column set to NULL. columns is retained,
// not copied, so rows of one table share the same slice.
func NewRow(columns []string) *Row {
	r := &Row{
		columns: columns,
		values:  make(map[string]schema.Value, len(columns)),
	}
	for _, c := range columns {
		r.values[c] = schema.Null()
	}
	return r
}

// Columns returns the row's column names in order.
func (r *Row) Columns() []string {
	out := make([]string, len(r.columns))
	copy(out, r.columns)
	return out
}

// Get returns the value at col and whether the row has that column.
func (r *Row) Get(col string) (schema.Value, bool) {
	v, ok := r.values[col]
	return v, ok
}

// Value returns the value at col, or NULL if the row has no such column.
func (r *Row) Value(col string) schema.Value {
	return r.values[col]
}

// Set replaces the value at col. It refuses columns the row does not have,
// so the field set never changes.
func (r *Row) Set(col string, v schema.Value) bool {
	if _, ok := r.values[col]; !ok {
		return false
	}
	r.values[col] = v
	return true
}

func (r *Row) Len() int {
	return len(r.columns)
}

// Clone returns a detached copy.
func (r *Row) Clone() *Row {
	c := &Row{
		columns: r.columns,
		values:  make(map[string]schema.Value, len(r.values)),
	}
	for k, v := range r.values {
		c.values[k] = v
	}
	return c
}

// Merge returns a new row holding the union of both rows' fields. Fields of
// other overwrite fields of r with the same name.
func (r *Row) Merge(other *Row) *Row {
	columns := make([]string, 0, len(r.columns)+len(other.columns))
	columns = append(columns, r.columns...)
	for _, c := range other.columns {
		if _, dup := r.values[c]; !dup {
			columns = append(columns, c)
		}
	}
	m := NewRow(columns)
	for k, v := range r.values {
		m.values[k] = v
	}
	for k, v := range other.values {
		m.values[k] = v
	}
	return m
}

// Project returns a new row restricted to columns, in the given order.
func (r *Row) Project(columns []string) *Row {
	p := NewRow(columns)
	for _, c := range columns {
		p.values[c] = r.values[c]
	}
	return p
}

// Equal reports whether both rows have the same columns and values.
func (r *Row) Equal(other *Row) bool {
	if len(r.columns) != len(other.columns) {
		return false
	}
	for i, c := range r.columns {
		if other.columns[i] != c || other.values[c] != r.values[c] {
			return false
		}
	}
	return true
}

// Map unwraps the row into plain Go values keyed by column.
func (r *Row) Map() map[string]interface{} {
	m := make(map[string]interface{}, len(r.values))
	for k, v := range r.values {
		m[k] = v.Interface()
	}
	return m
}

// MarshalJSON writes the row as an object with keys in column order.
func (r *Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		val, err := r.values[c].MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
