// Package database is the orchestrator: it owns the tables, runs per-table
// insert hooks, joins tables and keeps the snapshot store in step.
//
// Every mutating call (CreateTable, Insert, Update, Delete, CreateIndex)
// writes the complete state to the store before returning. Select and
// InnerJoin do not. On New the last snapshot is loaded and every table is
// rebuilt, indexes included; a missing or broken snapshot is logged and the
// database starts empty.
//
//	store, _ := storage.NewFileStore("data/kopadb.json")
//	db, _ := database.New(store, database.WithLogger(log))
//	db.CreateTable("accounts", cols, database.WithPrimaryKey("id"))
//	db.InsertMap("accounts", map[string]interface{}{"id": 1, "name": "Alice"})
//	rows, _ := db.Select("accounts", table.Eq("id", 1))
package database
