package table

import (
	"kopadb/dberr"
	"kopadb/schema"
	"kopadb/storage"
)

// castFilters validates filter columns and casts filter values.
func (t *Table) castFilters(filters []Filter) ([]Filter, error) {
	cast := make([]Filter, len(filters))
	for i, f := range filters {
		col, ok := t.schema.Lookup(f.Column)
		if !ok {
			return nil, dberr.UnknownColumn(t.name, f.Column)
		}
		v, err := schema.Cast(col, f.Value)
		if err != nil {
			return nil, err
		}
		cast[i] = Filter{Column: f.Column, Value: v}
	}
	return cast, nil
}

// Select returns the rows matching every filter. With no filters it returns
// all rows. Returned rows are live: mutating them mutates the table.
//
// The first filter uses its column's index when one exists; later filters
// narrow the result by scanning it.
func (t *Table) Select(filters []Filter) ([]*storage.Row, error) {
	filters, err := t.castFilters(filters)
	if err != nil {
		return nil, err
	}
	if len(filters) == 0 {
		return t.Rows(), nil
	}

	first := filters[0]
	var result []*storage.Row
	if idx, hasIndex := t.indexes[first.Column]; hasIndex {
		result = idx.Lookup(first.Value)
	} else {
		result = scan(t.rows, first)
	}
	for _, f := range filters[1:] {
		result = scan(result, f)
	}
	return result, nil
}

func scan(rows []*storage.Row, f Filter) []*storage.Row {
	out := make([]*storage.Row, 0)
	for _, r := range rows {
		if r.Value(f.Column) == f.Value {
			out = append(out, r)
		}
	}
	return out
}
