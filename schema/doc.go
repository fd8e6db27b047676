// Package schema provides column types, table schemas and the typed cell value.
//
// Key Types:
//   - ColumnType: Supported data types (INT, FLOAT, TEXT, TIMESTAMP)
//   - Column: Column definition with name and type
//   - Schema: Ordered, immutable column list of a table
//   - Value: Tagged cell variant {Null, Int, Float, Text, Timestamp}
//
// Casting:
//
// Every value stored in a row is cast to its column's declared type with Cast.
// NULL passes through unchanged. Numeric text parses into INT/FLOAT, integral
// floats narrow to INT, anything renders to TEXT, and TIMESTAMP accepts ISO-8601
// text or unix seconds. Everything else fails with a TypeMismatchError.
//
// Usage Example:
//
//	s, err := schema.New([]schema.Column{
//		{Name: "id", Type: schema.TypeInt},
//		{Name: "name", Type: schema.TypeText},
//	})
//
//	col, _ := s.Lookup("id")
//	v, err := schema.Cast(col, schema.Text("42")) // schema.Int(42)
package schema
