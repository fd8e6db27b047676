package database

import "github.com/sirupsen/logrus"

// CreateIndex indexes column of tableName and persists.
func (db *Database) CreateIndex(tableName, column string) error {
	t, err := db.catalog.GetTable(tableName)
	if err != nil {
		return err
	}
	if err := t.CreateIndex(column); err != nil {
		return err
	}
	db.log.WithFields(logrus.Fields{"table": tableName, "column": column}).Info("index created")
	return db.persist()
}
