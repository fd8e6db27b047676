package table

import (
	"kopadb/schema"
	"kopadb/storage"
)

// Update replaces values in every row matching filters and returns how many
// rows changed. Columns not in the schema are ignored. All casts and key
// checks run before the first row is touched.
func (t *Table) Update(filters []Filter, updates map[string]schema.Value) (int, error) {
	matched, err := t.Select(filters)
	if err != nil {
		return 0, err
	}

	cast := make(map[string]schema.Value, len(updates))
	for name, raw := range updates {
		col, ok := t.schema.Lookup(name)
		if !ok {
			continue
		}
		v, err := schema.Cast(col, raw)
		if err != nil {
			return 0, err
		}
		cast[name] = v
	}
	if len(matched) == 0 {
		return 0, nil
	}

	if err := t.checkUpdateKeys(matched, cast); err != nil {
		return 0, err
	}

	stamp, refresh := t.updatedAtValue()
	for _, row := range matched {
		t.removeFromIndexes(row)
		for name, v := range cast {
			row.Set(name, v)
		}
		if refresh {
			row.Set(UpdatedAtColumn, stamp)
		}
		t.addToIndexes(row)
	}
	return len(matched), nil
}

// checkUpdateKeys rejects updates that would leave two rows sharing a key.
func (t *Table) checkUpdateKeys(matched []*storage.Row, cast map[string]schema.Value) error {
	ignore := make(map[*storage.Row]bool, len(matched))
	for _, r := range matched {
		ignore[r] = true
	}
	for _, col := range t.keyColumns() {
		v, touched := cast[col]
		if !touched {
			continue
		}
		if len(matched) > 1 {
			return t.violation(col, v)
		}
		if err := t.checkKey(col, v, ignore); err != nil {
			return err
		}
	}
	return nil
}

// updatedAtValue returns the refresh value when the table has an updated_at
// column that can hold a timestamp.
func (t *Table) updatedAtValue() (schema.Value, bool) {
	col, ok := t.schema.Lookup(UpdatedAtColumn)
	if !ok {
		return schema.Value{}, false
	}
	v, err := schema.Cast(col, schema.FormatTimestamp(t.now()))
	if err != nil {
		return schema.Value{}, false
	}
	return v, true
}
