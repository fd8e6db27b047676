package database

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"kopadb/storage"
	"kopadb/table"
)

// snapshot captures every table, rows in insertion order.
func (db *Database) snapshot() *storage.Document {
	doc := storage.NewDocument()
	for _, t := range db.catalog.Tables() {
		rows := t.Rows()
		rec := &storage.TableRecord{
			Schema:     t.Schema().Columns(),
			Rows:       make([]map[string]interface{}, 0, len(rows)),
			PrimaryKey: t.PrimaryKey(),
			UniqueKeys: t.UniqueKeys(),
			Indexes:    t.IndexedColumns(),
		}
		for _, r := range rows {
			rec.Rows = append(rec.Rows, r.Map())
		}
		doc.Put(t.Name(), rec)
	}
	return doc
}

// persist overwrites the stored snapshot with the current state.
func (db *Database) persist() error {
	doc := db.snapshot()
	if err := db.store.Save(doc); err != nil {
		db.log.WithError(err).Error("snapshot write failed")
		return fmt.Errorf("save snapshot: %w", err)
	}
	db.log.WithField("tables", doc.Len()).Debug("snapshot written")
	return nil
}

// restore rebuilds every table of doc, then its indexes.
func (db *Database) restore(doc *storage.Document) error {
	for _, name := range doc.Names() {
		rec, _ := doc.Table(name)
		t, err := table.New(name, rec.Schema, rec.PrimaryKey, rec.UniqueKeys, table.WithClock(db.now))
		if err != nil {
			return fmt.Errorf("restore table %s: %w", name, err)
		}
		for i, row := range rec.Rows {
			if _, err := t.InsertMap(row); err != nil {
				return fmt.Errorf("restore table %s row %d: %w", name, i, err)
			}
		}
		for _, col := range rec.Indexes {
			if err := t.CreateIndex(col); err != nil {
				return fmt.Errorf("restore index %s.%s: %w", name, col, err)
			}
		}
		if err := db.catalog.Add(t); err != nil {
			return err
		}
		db.log.WithFields(logrus.Fields{"table": name, "rows": t.Len()}).Debug("table restored")
	}
	return nil
}
