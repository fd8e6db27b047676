// Package storage holds rows and the snapshot persistence layer.
//
// Key Components:
//   - Row: one record, a value per column in column order
//   - Document: the full-state snapshot, one TableRecord per table in
//     creation order
//   - Store: a durable home for the Document (FileStore, SQLStore)
//
// FileStore writes the document as JSON and a ".meta" sidecar carrying a
// SHA-256 hash of it; a mismatch on load is reported as corruption. SQLStore
// keeps the document in one row of a SQLite or MySQL table. Open picks a
// store by driver name.
//
// Usage Example:
//
//	store, err := storage.Open(storage.DriverSQLite, "data/kopadb.db", "")
//	doc, err := store.Load() // storage.ErrNoSnapshot on first start
package storage
