package table

import (
	"fmt"
	"time"

	"kopadb/dberr"
	"kopadb/index"
	"kopadb/schema"
	"kopadb/storage"
)

// UpdatedAtColumn is refreshed on every update when a table declares it.
const UpdatedAtColumn = "updated_at"

// Filter is one equality predicate. A filter list is conjunctive.
type Filter struct {
	Column string
	Value  schema.Value
}

// Eq builds a Filter from a plain Go value. Unsupported Go types compare by
// their printed form.
func Eq(column string, value interface{}) Filter {
	v, err := schema.FromInterface(value)
	if err != nil {
		v = schema.Text(fmt.Sprint(value))
	}
	return Filter{Column: column, Value: v}
}

// Option configures a Table
type Option func(*Table)

// WithClock overrides the time source used for TIMESTAMP defaults and
// updated_at refreshes.
func WithClock(now func() time.Time) Option {
	return func(t *Table) { t.now = now }
}

// Table is a typed row store with key enforcement and attached indexes.
type Table struct {
	name       string
	schema     *schema.Schema
	columns    []string // shared by every row of the table
	primaryKey string
	uniqueKeys []string

	rows []*storage.Row

	indexes    map[string]*index.Index // explicitly indexed columns
	indexOrder []string

	// one uniqueness index per key column, separate from the explicit ones
	keys map[string]*index.Index

	now func() time.Time
}

// New creates a new table. primaryKey may be empty; each unique key column is
// constrained on its own.
func New(name string, columns []schema.Column, primaryKey string, uniqueKeys []string, opts ...Option) (*Table, error) {
	if name == "" {
		return nil, &dberr.SchemaError{Reason: "empty table name"}
	}
	s, err := schema.New(columns)
	if err != nil {
		if se, ok := err.(*dberr.SchemaError); ok {
			se.Table = name
		}
		return nil, err
	}

	t := &Table{
		name:    name,
		schema:  s,
		columns: s.Names(),
		indexes: make(map[string]*index.Index),
		keys:    make(map[string]*index.Index),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}

	if primaryKey != "" {
		if !s.Has(primaryKey) {
			return nil, dberr.UnknownColumn(name, primaryKey)
		}
		t.primaryKey = primaryKey
		t.keys[primaryKey] = index.New(primaryKey)
	}
	for _, col := range uniqueKeys {
		if !s.Has(col) {
			return nil, dberr.UnknownColumn(name, col)
		}
		if containsString(t.uniqueKeys, col) {
			continue
		}
		t.uniqueKeys = append(t.uniqueKeys, col)
		if _, exists := t.keys[col]; !exists {
			t.keys[col] = index.New(col)
		}
	}
	return t, nil
}

func (t *Table) Name() string { return t.name }

func (t *Table) Schema() *schema.Schema { return t.schema }

// PrimaryKey returns the primary-key column, or "" when none is declared.
func (t *Table) PrimaryKey() string { return t.primaryKey }

// UniqueKeys returns the unique-key columns in declaration order.
func (t *Table) UniqueKeys() []string {
	out := make([]string, len(t.uniqueKeys))
	copy(out, t.uniqueKeys)
	return out
}

// IndexedColumns returns explicitly indexed columns in creation order.
func (t *Table) IndexedColumns() []string {
	out := make([]string, len(t.indexOrder))
	copy(out, t.indexOrder)
	return out
}

// Index returns the explicit index on column.
func (t *Table) Index(column string) (*index.Index, bool) {
	idx, ok := t.indexes[column]
	return idx, ok
}

// IndexStats reports every explicit index in creation order.
func (t *Table) IndexStats() []index.Stats {
	stats := make([]index.Stats, 0, len(t.indexOrder))
	for _, col := range t.indexOrder {
		stats = append(stats, t.indexes[col].Stats())
	}
	return stats
}

// Rows returns the stored rows in insertion order. The slice is fresh but
// the rows are live.
func (t *Table) Rows() []*storage.Row {
	out := make([]*storage.Row, len(t.rows))
	copy(out, t.rows)
	return out
}

func (t *Table) Len() int { return len(t.rows) }

// addToIndexes files row under its current values in every index.
func (t *Table) addToIndexes(row *storage.Row) {
	for col, idx := range t.indexes {
		idx.Add(row.Value(col), row)
	}
	for col, idx := range t.keys {
		idx.Add(row.Value(col), row)
	}
}

// removeFromIndexes drops row from every index, keyed by its current values.
func (t *Table) removeFromIndexes(row *storage.Row) {
	for col, idx := range t.indexes {
		idx.Remove(row.Value(col), row)
	}
	for col, idx := range t.keys {
		idx.Remove(row.Value(col), row)
	}
}

func containsString(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
