package storage

import (
	"bytes"
	"encoding/json"
	"fmt"

	"kopadb/schema"
)

// TableRecord is the persisted form of one table.
type TableRecord struct {
	Schema     []schema.Column          `json:"schema"`
	Rows       []map[string]interface{} `json:"rows"`
	PrimaryKey string                   `json:"primary_key,omitempty"`
	UniqueKeys []string                 `json:"unique_keys"`
	Indexes    []string                 `json:"indexes"`
}

// RowCount returns the number of persisted rows.
func (tr *TableRecord) RowCount() int {
	return len(tr.Rows)
}

// Document is the full-state snapshot: one TableRecord per table, kept in
// table creation order.
type Document struct {
	names  []string
	tables map[string]*TableRecord
}

// NewDocument creates an empty snapshot document
func NewDocument() *Document {
	return &Document{tables: make(map[string]*TableRecord)}
}

// Put adds or replaces the record for name.
func (d *Document) Put(name string, rec *TableRecord) {
	if _, exists := d.tables[name]; !exists {
		d.names = append(d.names, name)
	}
	d.tables[name] = rec
}

// Table returns the record for name.
func (d *Document) Table(name string) (*TableRecord, bool) {
	rec, ok := d.tables[name]
	return rec, ok
}

// Names returns table names in creation order.
func (d *Document) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

func (d *Document) Len() int {
	return len(d.names)
}

// MarshalJSON writes tables as object members in creation order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range d.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		rec, err := json.Marshal(d.tables[name])
		if err != nil {
			return nil, fmt.Errorf("marshal table %s: %w", name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(rec)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads tables in document order. Numbers in rows are kept as
// json.Number so integers stay exact.
func (d *Document) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("snapshot document must be an object")
	}

	d.names = nil
	d.tables = make(map[string]*TableRecord)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v in snapshot document", tok)
		}
		var rec TableRecord
		if err := dec.Decode(&rec); err != nil {
			return fmt.Errorf("decode table %s: %w", name, err)
		}
		d.Put(name, &rec)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
