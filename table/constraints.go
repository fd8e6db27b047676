package table

import (
	"kopadb/dberr"
	"kopadb/schema"
	"kopadb/storage"
)

const (
	primaryKeyKind = "primary key"
	uniqueKind     = "unique"
)

// keyColumns lists constrained columns, primary key first.
func (t *Table) keyColumns() []string {
	cols := make([]string, 0, 1+len(t.uniqueKeys))
	if t.primaryKey != "" {
		cols = append(cols, t.primaryKey)
	}
	for _, c := range t.uniqueKeys {
		if c != t.primaryKey {
			cols = append(cols, c)
		}
	}
	return cols
}

func (t *Table) keyKind(col string) string {
	if col == t.primaryKey {
		return primaryKeyKind
	}
	return uniqueKind
}

func (t *Table) violation(col string, v schema.Value) error {
	return &dberr.ConstraintViolation{Table: t.name, Column: col, Value: v.GoString(), Key: t.keyKind(col)}
}

// checkKey fails if v may not be stored in col. Rows in ignore are treated as
// already gone.
func (t *Table) checkKey(col string, v schema.Value, ignore map[*storage.Row]bool) error {
	if col == t.primaryKey && v.IsNull() {
		return t.violation(col, v)
	}
	for _, holder := range t.keys[col].Lookup(v) {
		if !ignore[holder] {
			return t.violation(col, v)
		}
	}
	return nil
}
