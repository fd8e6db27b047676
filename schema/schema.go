package schema

import (
	"sort"
	"strings"

	"kopadb/dberr"
)

// ColumnType represents supported data types
type ColumnType string

const (
	TypeInt       ColumnType = "INT"
	TypeFloat     ColumnType = "FLOAT"
	TypeText      ColumnType = "TEXT"
	TypeTimestamp ColumnType = "TIMESTAMP"
)

// ParseColumnType normalizes a type name; the second result is false for
// anything outside the four supported types.
func ParseColumnType(s string) (ColumnType, bool) {
	switch t := ColumnType(strings.ToUpper(strings.TrimSpace(s))); t {
	case TypeInt, TypeFloat, TypeText, TypeTimestamp:
		return t, true
	}
	return "", false
}

// Column defines a table column
type Column struct {
	Name string     `json:"name"`
	Type ColumnType `json:"type"`
}

// Schema is the ordered column list of a table. Column order defines row
// field order and never changes after creation.
type Schema struct {
	columns []Column
	byName  map[string]int
}

// New validates columns and builds a Schema.
func New(columns []Column) (*Schema, error) {
	if len(columns) == 0 {
		return nil, &dberr.SchemaError{Reason: "table needs at least one column"}
	}
	s := &Schema{
		columns: make([]Column, 0, len(columns)),
		byName:  make(map[string]int, len(columns)),
	}
	for _, col := range columns {
		if col.Name == "" {
			return nil, &dberr.SchemaError{Reason: "empty column name"}
		}
		typ, ok := ParseColumnType(string(col.Type))
		if !ok {
			return nil, dberr.UnsupportedType(col.Name, string(col.Type))
		}
		if _, dup := s.byName[col.Name]; dup {
			return nil, &dberr.SchemaError{Column: col.Name, Reason: "declared twice"}
		}
		s.byName[col.Name] = len(s.columns)
		s.columns = append(s.columns, Column{Name: col.Name, Type: typ})
	}
	return s, nil
}

// ColumnsFromMap normalizes a name-keyed type mapping into ordered columns.
// Map iteration order is random, so columns are sorted by name.
func ColumnsFromMap(m map[string]ColumnType) []Column {
	columns := make([]Column, 0, len(m))
	for name, typ := range m {
		columns = append(columns, Column{Name: name, Type: typ})
	}
	sort.Slice(columns, func(i, j int) bool { return columns[i].Name < columns[j].Name })
	return columns
}

// Columns returns a copy of the ordered column list.
func (s *Schema) Columns() []Column {
	out := make([]Column, len(s.columns))
	copy(out, s.columns)
	return out
}

// Names returns the column names in schema order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.columns))
	for i, col := range s.columns {
		names[i] = col.Name
	}
	return names
}

// Lookup returns the column with the given name.
func (s *Schema) Lookup(name string) (Column, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Column{}, false
	}
	return s.columns[i], true
}

// Has reports whether the schema declares name.
func (s *Schema) Has(name string) bool {
	_, ok := s.byName[name]
	return ok
}

func (s *Schema) Len() int {
	return len(s.columns)
}
