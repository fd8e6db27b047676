package executor

import (
	"fmt"

	"kopadb/database"
	"kopadb/dberr"
	"kopadb/parser"
	"kopadb/schema"
	"kopadb/storage"
	"kopadb/table"
)

// Result is the outcome of one command. Rows and Columns are set for SELECT
// and JOIN; Affected for UPDATE and DELETE.
type Result struct {
	Kind     parser.Kind
	Columns  []string
	Rows     []*storage.Row
	Affected int
	Message  string
}

// Executor executes parsed commands against a database
type Executor struct {
	db                 *database.Database
	parser             *parser.Parser
	implicitPrimaryKey bool
}

// Option configures an Executor
type Option func(*Executor)

// ImplicitPrimaryKey makes CREATE TABLE promote the first column to primary
// key when no column declares one.
func ImplicitPrimaryKey(on bool) Option {
	return func(e *Executor) { e.implicitPrimaryKey = on }
}

// New creates a new executor
func New(db *database.Database, opts ...Option) *Executor {
	e := &Executor{db: db, parser: parser.New()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run parses and executes one command line.
func (e *Executor) Run(text string) (*Result, error) {
	cmd, err := e.parser.Parse(text)
	if err != nil {
		return nil, err
	}
	return e.Execute(cmd)
}

// Execute executes a parsed command
func (e *Executor) Execute(cmd *parser.Command) (*Result, error) {
	switch cmd.Kind {
	case parser.KindCreate:
		return e.executeCreateTable(cmd)
	case parser.KindInsert:
		return e.executeInsert(cmd)
	case parser.KindSelect:
		return e.executeSelect(cmd)
	case parser.KindUpdate:
		return e.executeUpdate(cmd)
	case parser.KindDelete:
		return e.executeDelete(cmd)
	case parser.KindIndex:
		return e.executeIndex(cmd)
	case parser.KindJoin:
		return e.executeJoin(cmd)
	}
	return nil, fmt.Errorf("unknown command kind: %s", cmd.Kind)
}

func (e *Executor) executeCreateTable(cmd *parser.Command) (*Result, error) {
	columns := make([]schema.Column, 0, len(cmd.Columns))
	var (
		primaryKey string
		uniqueKeys []string
	)
	for _, def := range cmd.Columns {
		columns = append(columns, schema.Column{Name: def.Name, Type: schema.ColumnType(def.Type)})
		if def.PrimaryKey {
			if primaryKey != "" {
				return nil, &dberr.SchemaError{Table: cmd.Table, Column: def.Name, Reason: "second primary key"}
			}
			primaryKey = def.Name
		}
		if def.Unique {
			uniqueKeys = append(uniqueKeys, def.Name)
		}
	}
	if primaryKey == "" && e.implicitPrimaryKey && len(columns) > 0 {
		primaryKey = columns[0].Name
	}

	opts := []database.TableOption{database.WithUniqueKeys(uniqueKeys...)}
	if primaryKey != "" {
		opts = append(opts, database.WithPrimaryKey(primaryKey))
	}
	if _, err := e.db.CreateTable(cmd.Table, columns, opts...); err != nil {
		return nil, err
	}
	return &Result{Kind: cmd.Kind, Message: fmt.Sprintf("Table '%s' created", cmd.Table)}, nil
}

// executeInsert maps values onto the schema columns in order. Trailing
// columns without a value are left to their defaults.
func (e *Executor) executeInsert(cmd *parser.Command) (*Result, error) {
	t, err := e.db.Table(cmd.Table)
	if err != nil {
		return nil, err
	}
	names := t.Schema().Names()
	if len(cmd.Values) > len(names) {
		return nil, &dberr.SchemaError{
			Table:  cmd.Table,
			Reason: fmt.Sprintf("%d values for %d columns", len(cmd.Values), len(names)),
		}
	}

	values := make(map[string]schema.Value, len(cmd.Values))
	for i, v := range cmd.Values {
		values[names[i]] = v
	}
	if _, err := e.db.Insert(cmd.Table, values); err != nil {
		return nil, err
	}
	return &Result{Kind: cmd.Kind, Affected: 1, Message: "1 row inserted"}, nil
}

func (e *Executor) executeSelect(cmd *parser.Command) (*Result, error) {
	t, err := e.db.Table(cmd.Table)
	if err != nil {
		return nil, err
	}
	columns := cmd.Projection
	if columns == nil {
		columns = t.Schema().Names()
	}
	for _, c := range columns {
		if !t.Schema().Has(c) {
			return nil, dberr.UnknownColumn(cmd.Table, c)
		}
	}

	rows, err := e.db.Select(cmd.Table, filters(cmd.Where)...)
	if err != nil {
		return nil, err
	}
	if cmd.Projection != nil {
		for i, r := range rows {
			rows[i] = r.Project(columns)
		}
	}
	return &Result{Kind: cmd.Kind, Columns: columns, Rows: rows}, nil
}

func (e *Executor) executeUpdate(cmd *parser.Command) (*Result, error) {
	updates := make(map[string]schema.Value, len(cmd.Set))
	for _, a := range cmd.Set {
		updates[a.Column] = a.Value
	}
	n, err := e.db.Update(cmd.Table, filters(cmd.Where), updates)
	if err != nil {
		return nil, err
	}
	return &Result{Kind: cmd.Kind, Affected: n, Message: fmt.Sprintf("%d row(s) updated", n)}, nil
}

func (e *Executor) executeDelete(cmd *parser.Command) (*Result, error) {
	n, err := e.db.Delete(cmd.Table, filters(cmd.Where)...)
	if err != nil {
		return nil, err
	}
	return &Result{Kind: cmd.Kind, Affected: n, Message: fmt.Sprintf("%d row(s) deleted", n)}, nil
}

func (e *Executor) executeIndex(cmd *parser.Command) (*Result, error) {
	if err := e.db.CreateIndex(cmd.Table, cmd.Column); err != nil {
		return nil, err
	}
	return &Result{Kind: cmd.Kind, Message: fmt.Sprintf("Index created on %s.%s", cmd.Table, cmd.Column)}, nil
}

func (e *Executor) executeJoin(cmd *parser.Command) (*Result, error) {
	rows, err := e.db.InnerJoin(cmd.Table, cmd.RightTable, cmd.LeftKey, cmd.RightKey)
	if err != nil {
		return nil, err
	}
	left, _ := e.db.Table(cmd.Table)
	right, _ := e.db.Table(cmd.RightTable)
	columns := left.Schema().Names()
	for _, c := range right.Schema().Names() {
		if !left.Schema().Has(c) {
			columns = append(columns, c)
		}
	}
	return &Result{Kind: cmd.Kind, Columns: columns, Rows: rows}, nil
}

func filters(conds []parser.Condition) []table.Filter {
	out := make([]table.Filter, 0, len(conds))
	for _, c := range conds {
		out = append(out, table.Filter{Column: c.Column, Value: c.Value})
	}
	return out
}
