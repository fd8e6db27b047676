// Package index provides hash-based indexing for equality lookups.
//
// An Index maps a cast column value to the ordered list of row references
// holding it. Rows are tracked by pointer identity, so the same *storage.Row
// the table stores is what Lookup hands back. Only equality is supported; there
// are no range scans and no composite keys.
//
// Key Features:
//   - Hash-Based: O(1) bucket lookup per value
//   - Multi-Value Support: a bucket holds every row sharing the value
//   - Defensive Lookups: Lookup returns a copy, so callers cannot corrupt buckets
//   - Rebuildable: Rebuild clears and repopulates from a row list
//
// Usage Example:
//
//	idx := index.New("name")
//	idx.Add(schema.Text("Alice"), row1)
//	idx.Add(schema.Text("Alice"), row3)
//
//	rows := idx.Lookup(schema.Text("Alice")) // [row1, row3]
//	idx.Remove(schema.Text("Alice"), row1)
//
//	idx.Rebuild(allRows)
//
// The table package keeps every attached index consistent with its rows after
// each insert, update and delete.
package index
