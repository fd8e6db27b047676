package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// FileStore keeps the snapshot as one JSON file plus a ".meta" sidecar with
// its hash.
//
// The write is not crash-atomic: the file is overwritten in place, so a crash
// mid-write can leave a truncated snapshot and no previous version.
type FileStore struct {
	path     string
	metaPath string
	now      func() time.Time
}

// NewFileStore creates a file-backed store, creating the parent directory.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("snapshot path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return &FileStore{
		path:     path,
		metaPath: path + ".meta",
		now:      time.Now,
	}, nil
}

// Path returns the snapshot file location.
func (fs *FileStore) Path() string {
	return fs.path
}

// Load reads the snapshot. A sidecar whose hash disagrees with the file is
// reported as corruption.
func (fs *FileStore) Load() (*Document, error) {
	data, err := os.ReadFile(fs.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, err
	}

	meta, err := fs.Meta()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read snapshot meta: %w", err)
	}
	if meta != nil && meta.DataHash != computeSnapshotHash(data) {
		return nil, fmt.Errorf("snapshot data corruption detected: hash mismatch")
	}

	doc := NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", fs.path, err)
	}
	return doc, nil
}

// Save overwrites the snapshot file and its sidecar.
func (fs *FileStore) Save(doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(fs.path, data, 0644); err != nil {
		return err
	}

	meta := SnapshotMeta{
		SnapshotID: uuid.NewString(),
		CreatedAt:  fs.now().UTC(),
		Path:       fs.path,
		DataHash:   computeSnapshotHash(data),
		Tables:     doc.Len(),
		Rows:       countRows(doc),
	}
	metaData, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(fs.metaPath, metaData, 0644)
}

// Meta returns the sidecar of the last save.
func (fs *FileStore) Meta() (*SnapshotMeta, error) {
	data, err := os.ReadFile(fs.metaPath)
	if err != nil {
		return nil, err
	}
	var meta SnapshotMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (fs *FileStore) Close() error {
	return nil
}
