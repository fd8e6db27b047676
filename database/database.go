package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"kopadb/catalog"
	"kopadb/index"
	"kopadb/storage"
	"kopadb/table"
)

// Database owns every table and writes a full snapshot to its store after
// each mutating call.
//
// A Database is not safe for concurrent use. Hosts serving several callers
// must serialize access.
type Database struct {
	catalog *catalog.Catalog
	store   storage.Store
	hooks   map[string][]InsertHook
	log     logrus.FieldLogger
	now     func() time.Time
}

// Option configures a Database
type Option func(*Database)

// WithLogger sets the logger. The default is the logrus standard logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(db *Database) { db.log = log }
}

// WithClock overrides the time source handed to every table.
func WithClock(now func() time.Time) Option {
	return func(db *Database) { db.now = now }
}

// New creates a database over store and restores the last snapshot. A
// missing or unreadable snapshot is logged and the database starts empty.
func New(store storage.Store, opts ...Option) (*Database, error) {
	if store == nil {
		return nil, fmt.Errorf("database needs a snapshot store")
	}
	db := &Database{
		catalog: catalog.New(),
		store:   store,
		hooks:   make(map[string][]InsertHook),
		log:     logrus.StandardLogger(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(db)
	}

	doc, err := store.Load()
	switch {
	case errors.Is(err, storage.ErrNoSnapshot):
		db.log.Info("no snapshot found, starting empty")
	case err != nil:
		db.log.WithError(err).Warn("snapshot load failed, starting empty")
	default:
		if err := db.restore(doc); err != nil {
			db.catalog.Reset()
			db.log.WithError(err).Warn("snapshot restore failed, starting empty")
		} else {
			db.log.WithField("tables", db.catalog.Len()).Info("snapshot restored")
		}
	}
	return db, nil
}

// Table returns the named table.
func (db *Database) Table(name string) (*table.Table, error) {
	return db.catalog.GetTable(name)
}

// TableExists reports whether name is registered.
func (db *Database) TableExists(name string) bool {
	return db.catalog.TableExists(name)
}

// Names returns table names in creation order.
func (db *Database) Names() []string {
	return db.catalog.Names()
}

// IndexStats reports the explicit indexes of the named table.
func (db *Database) IndexStats(name string) ([]index.Stats, error) {
	t, err := db.catalog.GetTable(name)
	if err != nil {
		return nil, err
	}
	return t.IndexStats(), nil
}

// Close releases the snapshot store.
func (db *Database) Close() error {
	return db.store.Close()
}
