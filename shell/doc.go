// Package shell is the interactive command line over a database. Commands
// are executed one line at a time; results are printed as a grid and errors
// as "Error: <message>". Lines starting with '.' are shell commands such as
// .tables and .schema.
package shell
