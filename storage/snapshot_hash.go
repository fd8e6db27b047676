package storage

import (
	"crypto/sha256"
	"encoding/hex"
)

// computeSnapshotHash computes SHA256 hash of the serialized document
func computeSnapshotHash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// countRows counts rows across all tables of a document
func countRows(doc *Document) int64 {
	count := int64(0)
	for _, name := range doc.names {
		count += int64(doc.tables[name].RowCount())
	}
	return count
}
