package database

import (
	"github.com/sirupsen/logrus"

	"kopadb/schema"
	"kopadb/table"
)

// Update changes matching rows of tableName and persists. It returns the
// number of rows updated.
func (db *Database) Update(tableName string, filters []table.Filter, updates map[string]schema.Value) (int, error) {
	t, err := db.catalog.GetTable(tableName)
	if err != nil {
		return 0, err
	}
	n, err := t.Update(filters, updates)
	if err != nil {
		return 0, err
	}
	db.log.WithFields(logrus.Fields{"table": tableName, "rows": n}).Debug("rows updated")
	return n, db.persist()
}
