package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/glebarez/go-sqlite"
	_ "github.com/go-sql-driver/mysql"
)

const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Open builds the store for driver. target is a file path for "file" and
// "sqlite", and a DSN for "mysql". table only applies to SQL drivers.
func Open(driver, target, table string) (Store, error) {
	switch driver {
	case DriverFile, "":
		return NewFileStore(target)
	case DriverSQLite, DriverMySQL:
		db, err := sql.Open(driver, target)
		if err != nil {
			return nil, err
		}
		if driver == DriverMySQL {
			db.SetConnMaxIdleTime(60 * time.Second)
			db.SetMaxIdleConns(2)
			db.SetMaxOpenConns(4)
		} else {
			// one writer; SQLite serializes anyway
			db.SetMaxOpenConns(1)
		}
		store, err := NewSQLStore(db, table)
		if err != nil {
			db.Close()
			return nil, err
		}
		return store, nil
	}
	return nil, fmt.Errorf("unknown snapshot driver %q", driver)
}
