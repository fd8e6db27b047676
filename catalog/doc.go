// Package catalog keeps the set of tables a database owns.
//
// Table names are unique. Listing order is creation order, which is also the
// order tables are written to and restored from a snapshot.
package catalog
