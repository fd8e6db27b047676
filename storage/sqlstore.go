package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

// DefaultSnapshotTable is the table SQLStore keeps the snapshot in.
const DefaultSnapshotTable = "kopadb_snapshot"

// snapshotKey names the single row holding the document.
const snapshotKey = "current"

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLStore keeps the snapshot document in a one-row table of a SQL database.
// The statements are valid for both SQLite and MySQL.
type SQLStore struct {
	db    *sql.DB
	table string
}

// NewSQLStore creates the snapshot table if needed.
func NewSQLStore(db *sql.DB, table string) (*SQLStore, error) {
	if table == "" {
		table = DefaultSnapshotTable
	}
	if !identRe.MatchString(table) {
		return nil, fmt.Errorf("invalid snapshot table name %q", table)
	}
	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (name VARCHAR(64) NOT NULL PRIMARY KEY, document LONGTEXT NOT NULL)", table)
	if _, err := db.Exec(ddl); err != nil {
		return nil, fmt.Errorf("create snapshot table: %w", err)
	}
	return &SQLStore{db: db, table: table}, nil
}

func (s *SQLStore) Load() (*Document, error) {
	var data string
	err := s.db.QueryRow(fmt.Sprintf("SELECT document FROM %s WHERE name = ?", s.table), snapshotKey).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, err
	}
	doc := NewDocument()
	if err := json.Unmarshal([]byte(data), doc); err != nil {
		return nil, fmt.Errorf("decode snapshot from %s: %w", s.table, err)
	}
	return doc, nil
}

func (s *SQLStore) Save(doc *Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(fmt.Sprintf("REPLACE INTO %s (name, document) VALUES (?, ?)", s.table), snapshotKey, string(data))
	return err
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
