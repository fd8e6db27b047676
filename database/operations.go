package database

import (
	"github.com/sirupsen/logrus"

	"kopadb/schema"
	"kopadb/table"
)

// TableOption declares keys for CreateTable
type TableOption func(*tableKeys)

type tableKeys struct {
	primaryKey string
	uniqueKeys []string
}

// WithPrimaryKey declares column as the primary key.
func WithPrimaryKey(column string) TableOption {
	return func(s *tableKeys) { s.primaryKey = column }
}

// WithUniqueKeys declares each column as independently unique.
func WithUniqueKeys(columns ...string) TableOption {
	return func(s *tableKeys) { s.uniqueKeys = append(s.uniqueKeys, columns...) }
}

// CreateTable registers a new table and persists.
func (db *Database) CreateTable(name string, columns []schema.Column, opts ...TableOption) (*table.Table, error) {
	var keys tableKeys
	for _, opt := range opts {
		opt(&keys)
	}

	t, err := table.New(name, columns, keys.primaryKey, keys.uniqueKeys, table.WithClock(db.now))
	if err != nil {
		return nil, err
	}
	if err := db.catalog.Add(t); err != nil {
		return nil, err
	}
	db.log.WithFields(logrus.Fields{"table": name, "columns": len(columns)}).Info("table created")
	return t, db.persist()
}

// CreateTableFromMap is CreateTable for a name-keyed type mapping. Columns
// are ordered by name.
func (db *Database) CreateTableFromMap(name string, columns map[string]schema.ColumnType, opts ...TableOption) (*table.Table, error) {
	return db.CreateTable(name, schema.ColumnsFromMap(columns), opts...)
}
