// Package executor runs parsed commands against a database and returns a
// presentation-neutral Result. It does no formatting and no I/O.
//
//	exec := executor.New(db)
//	res, err := exec.Run("SELECT name FROM accounts WHERE id=1")
//	// res.Columns == []string{"name"}, res.Rows holds projected rows
package executor
