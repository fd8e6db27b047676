package database

import (
	"github.com/sirupsen/logrus"

	"kopadb/table"
)

// Delete removes matching rows of tableName and persists. It returns the
// number of rows removed.
func (db *Database) Delete(tableName string, filters ...table.Filter) (int, error) {
	t, err := db.catalog.GetTable(tableName)
	if err != nil {
		return 0, err
	}
	n, err := t.Delete(filters)
	if err != nil {
		return 0, err
	}
	db.log.WithFields(logrus.Fields{"table": tableName, "rows": n}).Debug("rows deleted")
	return n, db.persist()
}
