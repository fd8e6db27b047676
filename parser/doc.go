// Package parser turns one command line into a Command.
//
// The grammar is fixed and small:
//
//	CREATE TABLE <name> ( <col> <TYPE> [PRIMARY KEY|UNIQUE], ... )
//	INSERT INTO <name> VALUES ( <lit>, ... )
//	SELECT <*|col, ...> FROM <name> [WHERE <col>=<lit> AND ...]
//	UPDATE <name> SET <col>=<lit>, ... [WHERE ...]
//	DELETE FROM <name> [WHERE ...]
//	INDEX ON <name> <col>
//	JOIN <left> <right> ON <lkey>=<rkey>
//
// Input is split on whitespace outside single quotes. Keywords are matched
// case-insensitively; identifiers and literals keep their case. A literal is
// text if quoted, else an integer, else a float, else the raw token as text.
//
// The parser never consults table state. Errors are *dberr.ParseError.
//
//	cmd, err := parser.Parse("SELECT * FROM users WHERE name = 'Alice'")
//	// cmd.Kind == parser.KindSelect
//	// cmd.Where[0] == parser.Condition{Column: "name", Value: schema.Text("Alice")}
package parser
