package database

import (
	"kopadb/storage"
	"kopadb/table"
)

// Select returns the live rows of tableName matching every filter. It does
// not persist.
func (db *Database) Select(tableName string, filters ...table.Filter) ([]*storage.Row, error) {
	t, err := db.catalog.GetTable(tableName)
	if err != nil {
		return nil, err
	}
	return t.Select(filters)
}

// SelectAll returns every row of tableName.
func (db *Database) SelectAll(tableName string) ([]*storage.Row, error) {
	return db.Select(tableName)
}
