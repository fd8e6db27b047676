package database

import (
	"fmt"

	"kopadb/dberr"
	"kopadb/schema"
	"kopadb/storage"
)

// InsertHook runs after a row is stored in the table it is registered on,
// within the same Insert call.
type InsertHook func(db *Database, table string, row *storage.Row) error

// OnInsert registers hook for inserts into table. Hooks run in registration
// order. The table need not exist yet.
func (db *Database) OnInsert(table string, hook InsertHook) {
	db.hooks[table] = append(db.hooks[table], hook)
}

// Insert stores a row, runs the table's insert hooks and persists. A hook
// error is returned but the row stays and the snapshot is still written.
func (db *Database) Insert(tableName string, values map[string]schema.Value) (*storage.Row, error) {
	t, err := db.catalog.GetTable(tableName)
	if err != nil {
		return nil, err
	}
	row, err := t.Insert(values)
	if err != nil {
		return nil, err
	}

	var hookErr error
	for _, hook := range db.hooks[tableName] {
		if err := hook(db, tableName, row); err != nil {
			hookErr = fmt.Errorf("insert hook on %s: %w", tableName, err)
			db.log.WithError(err).WithField("table", tableName).Error("insert hook failed")
			break
		}
	}

	if err := db.persist(); err != nil {
		return row, err
	}
	return row, hookErr
}

// InsertMap is Insert for plain Go values.
func (db *Database) InsertMap(tableName string, values map[string]interface{}) (*storage.Row, error) {
	converted := make(map[string]schema.Value, len(values))
	for col, x := range values {
		v, err := schema.FromInterface(x)
		if err != nil {
			return nil, &dberr.TypeMismatchError{Column: col, Value: fmt.Sprint(x), Target: "any supported type"}
		}
		converted[col] = v
	}
	return db.Insert(tableName, converted)
}
