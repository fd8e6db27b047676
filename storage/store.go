package storage

import "errors"

// ErrNoSnapshot is returned by Store.Load when nothing has been saved yet.
var ErrNoSnapshot = errors.New("no snapshot")

// Store is a durable home for the snapshot document. Save overwrites any prior
// snapshot in full.
type Store interface {
	Load() (*Document, error)
	Save(doc *Document) error
	Close() error
}
