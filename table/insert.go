package table

import (
	"kopadb/dberr"
	"kopadb/schema"
	"kopadb/storage"
)

// Insert stores a row built from values. Absent columns become NULL, except
// TIMESTAMP columns which default to the current time. Every value is cast to
// its column type and keys are checked before anything is stored.
func (t *Table) Insert(values map[string]schema.Value) (*storage.Row, error) {
	for col := range values {
		if !t.schema.Has(col) {
			return nil, dberr.UnknownColumn(t.name, col)
		}
	}

	row := storage.NewRow(t.columns)
	for _, col := range t.schema.Columns() {
		raw, supplied := values[col.Name]
		switch {
		case supplied:
			v, err := schema.Cast(col, raw)
			if err != nil {
				return nil, err
			}
			row.Set(col.Name, v)
		case col.Type == schema.TypeTimestamp:
			row.Set(col.Name, schema.FormatTimestamp(t.now()))
		}
	}

	for _, col := range t.keyColumns() {
		if err := t.checkKey(col, row.Value(col), nil); err != nil {
			return nil, err
		}
	}

	t.rows = append(t.rows, row)
	t.addToIndexes(row)
	return row, nil
}

// InsertMap is Insert for plain Go values (nil, ints, floats, strings).
func (t *Table) InsertMap(values map[string]interface{}) (*storage.Row, error) {
	converted := make(map[string]schema.Value, len(values))
	for col, x := range values {
		v, err := schema.FromInterface(x)
		if err != nil {
			return nil, &dberr.TypeMismatchError{Column: col, Value: err.Error(), Target: "any supported type"}
		}
		converted[col] = v
	}
	return t.Insert(converted)
}
