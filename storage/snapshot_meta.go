package storage

import "time"

// SnapshotMeta describes the last snapshot a FileStore wrote
type SnapshotMeta struct {
	SnapshotID string    `json:"snapshot_id"`
	CreatedAt  time.Time `json:"created_at"`
	Path       string    `json:"snapshot_path"`
	DataHash   string    `json:"data_hash"`
	Tables     int       `json:"tables"`
	Rows       int64     `json:"rows"`
}
