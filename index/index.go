package index

import (
	"kopadb/schema"
	"kopadb/storage"
)

// Index is a hash-based index for equality lookups
type Index struct {
	column  string
	buckets map[schema.Value][]*storage.Row // value -> rows, in insertion order
}

// Stats summarizes an index
type Stats struct {
	Column           string `json:"column"`
	DistinctValues   int    `json:"distinct_values"`
	TotalRowsIndexed int    `json:"total_rows_indexed"`
}

// New creates a new index
func New(column string) *Index {
	return &Index{
		column:  column,
		buckets: make(map[schema.Value][]*storage.Row),
	}
}

// Column returns the indexed column name
func (idx *Index) Column() string {
	return idx.column
}

// Add appends a row reference to the bucket for value
func (idx *Index) Add(value schema.Value, row *storage.Row) {
	idx.buckets[value] = append(idx.buckets[value], row)
}

// Remove removes one reference to row from the bucket for value
func (idx *Index) Remove(value schema.Value, row *storage.Row) {
	rows, found := idx.buckets[value]
	if !found {
		return
	}
	for i, r := range rows {
		if r != row {
			continue
		}
		if len(rows) == 1 {
			delete(idx.buckets, value)
			return
		}
		rest := make([]*storage.Row, 0, len(rows)-1)
		rest = append(rest, rows[:i]...)
		idx.buckets[value] = append(rest, rows[i+1:]...)
		return
	}
}

// Lookup returns a copy of the bucket for value
func (idx *Index) Lookup(value schema.Value) []*storage.Row {
	rows := idx.buckets[value]
	out := make([]*storage.Row, len(rows))
	copy(out, rows)
	return out
}

// Exists checks if a value exists in the index
func (idx *Index) Exists(value schema.Value) bool {
	_, found := idx.buckets[value]
	return found
}

// Rebuild rebuilds the index from scratch
func (idx *Index) Rebuild(rows []*storage.Row) {
	idx.Clear()
	for _, r := range rows {
		idx.Add(r.Value(idx.column), r)
	}
}

// Clear drops every bucket
func (idx *Index) Clear() {
	idx.buckets = make(map[schema.Value][]*storage.Row)
}

// Stats reports bucket and reference counts
func (idx *Index) Stats() Stats {
	total := 0
	for _, rows := range idx.buckets {
		total += len(rows)
	}
	return Stats{
		Column:           idx.column,
		DistinctValues:   len(idx.buckets),
		TotalRowsIndexed: total,
	}
}
