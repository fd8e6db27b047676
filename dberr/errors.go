// Package dberr defines the error kinds surfaced by the engine.
//
// Every failure a caller can act on is one of five concrete types. Match them
// with errors.As; wrapped errors keep their kind.
package dberr

import "fmt"

// ParseError reports malformed command text.
type ParseError struct {
	Fragment string
	Reason   string
}

func (e *ParseError) Error() string {
	if e.Fragment == "" {
		return fmt.Sprintf("parse error: %s", e.Reason)
	}
	return fmt.Sprintf("parse error: %s near '%s'", e.Reason, e.Fragment)
}

// SchemaError reports an unknown table or column, an unsupported type or a
// duplicate table name.
type SchemaError struct {
	Table  string
	Column string
	Reason string
}

func (e *SchemaError) Error() string {
	switch {
	case e.Column != "" && e.Table != "":
		return fmt.Sprintf("schema error: table '%s' column '%s': %s", e.Table, e.Column, e.Reason)
	case e.Column != "":
		return fmt.Sprintf("schema error: column '%s': %s", e.Column, e.Reason)
	case e.Table != "":
		return fmt.Sprintf("schema error: table '%s' %s", e.Table, e.Reason)
	}
	return fmt.Sprintf("schema error: %s", e.Reason)
}

// ConstraintViolation reports a duplicate or null key value.
type ConstraintViolation struct {
	Table  string
	Column string
	Value  string
	Key    string // "primary key" or "unique"
}

func (e *ConstraintViolation) Error() string {
	return fmt.Sprintf("%s violation on %s.%s: value %s", e.Key, e.Table, e.Column, e.Value)
}

// TypeMismatchError reports a value that cannot be cast to a column type.
type TypeMismatchError struct {
	Column string
	Value  string
	Target string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: column '%s' cannot hold %s as %s", e.Column, e.Value, e.Target)
}

// NotFoundError reports a referenced table that does not exist.
type NotFoundError struct {
	Table string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("table '%s' does not exist", e.Table)
}

func Parse(fragment, reason string) error {
	return &ParseError{Fragment: fragment, Reason: reason}
}

func TableExists(table string) error {
	return &SchemaError{Table: table, Reason: "already exists"}
}

func UnknownColumn(table, column string) error {
	return &SchemaError{Table: table, Column: column, Reason: "no such column"}
}

func UnsupportedType(column, typ string) error {
	return &SchemaError{Column: column, Reason: fmt.Sprintf("unsupported type %s", typ)}
}

func TableNotFound(table string) error {
	return &NotFoundError{Table: table}
}
