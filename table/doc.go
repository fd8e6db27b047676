// Package table implements the typed row store.
//
// A Table owns its rows, enforces its primary key and unique keys, and keeps
// every attached index consistent with the rows after each Insert, Update and
// Delete. Validation (casts, unknown columns, key checks) always happens before
// the first mutation, so a failing call leaves rows and indexes untouched.
//
// Key uniqueness is checked through a private hash index per constrained
// column; explicit indexes created with CreateIndex serve Select.
package table
