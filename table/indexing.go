package table

import (
	"kopadb/dberr"
	"kopadb/index"
)

// CreateIndex attaches an equality index to column and fills it from the
// current rows. Indexing an already indexed column is a no-op.
func (t *Table) CreateIndex(column string) error {
	if !t.schema.Has(column) {
		return dberr.UnknownColumn(t.name, column)
	}
	if _, exists := t.indexes[column]; exists {
		return nil
	}
	idx := index.New(column)
	idx.Rebuild(t.rows)
	t.indexes[column] = idx
	t.indexOrder = append(t.indexOrder, column)
	return nil
}
