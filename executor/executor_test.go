package executor

import (
	"errors"
	"path/filepath"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kopadb/database"
	"kopadb/dberr"
	"kopadb/schema"
	"kopadb/storage"
)

func newExecutor(t *testing.T, opts ...Option) (*Executor, *database.Database) {
	t.Helper()
	store, err := storage.NewFileStore(filepath.Join(t.TempDir(), "kopadb.json"))
	require.NoError(t, err)
	log, _ := logtest.NewNullLogger()
	db, err := database.New(store, database.WithLogger(log))
	require.NoError(t, err)
	return New(db, opts...), db
}

func run(t *testing.T, e *Executor, text string) *Result {
	t.Helper()
	res, err := e.Run(text)
	require.NoError(t, err, text)
	return res
}

func TestAccountsScenario(t *testing.T) {
	e, db := newExecutor(t)

	run(t, e, "CREATE TABLE accounts (id INT PRIMARY KEY, name TEXT, balance FLOAT)")
	run(t, e, "INSERT INTO accounts VALUES (1,'Alice',100.0)")

	res := run(t, e, "SELECT * FROM accounts")
	require.Len(t, res.Rows, 1)
	assert.Equal(t, []string{"id", "name", "balance"}, res.Columns)
	assert.Equal(t, map[string]interface{}{"id": int64(1), "name": "Alice", "balance": 100.0}, res.Rows[0].Map())

	_, err := e.Run("INSERT INTO accounts VALUES (1,'Bob',50.0)")
	var cv *dberr.ConstraintViolation
	require.True(t, errors.As(err, &cv), "got %v", err)
	rows, err := db.SelectAll("accounts")
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	res = run(t, e, "UPDATE accounts SET balance=150.0 WHERE id=1")
	assert.Equal(t, 1, res.Affected)

	res = run(t, e, "SELECT * FROM accounts WHERE id=1")
	require.Len(t, res.Rows, 1)
	assert.Equal(t, map[string]interface{}{"id": int64(1), "name": "Alice", "balance": 150.0}, res.Rows[0].Map())

	res = run(t, e, "DELETE FROM accounts WHERE id=1")
	assert.Equal(t, 1, res.Affected)
	res = run(t, e, "SELECT * FROM accounts")
	assert.Empty(t, res.Rows)
}

func TestImplicitPrimaryKey(t *testing.T) {
	e, db := newExecutor(t, ImplicitPrimaryKey(true))
	run(t, e, "CREATE TABLE users (id INT, name TEXT)")

	tbl, err := db.Table("users")
	require.NoError(t, err)
	assert.Equal(t, "id", tbl.PrimaryKey())

	e2, db2 := newExecutor(t)
	run(t, e2, "CREATE TABLE users (id INT, email TEXT UNIQUE)")
	tbl, err = db2.Table("users")
	require.NoError(t, err)
	assert.Equal(t, "", tbl.PrimaryKey())
	assert.Equal(t, []string{"email"}, tbl.UniqueKeys())
}

func TestCreateTableErrors(t *testing.T) {
	e, _ := newExecutor(t)
	var se *dberr.SchemaError

	_, err := e.Run("CREATE TABLE t (flag BOOL)")
	assert.True(t, errors.As(err, &se), "got %v", err)

	_, err = e.Run("CREATE TABLE t (a INT PRIMARY KEY, b INT PRIMARY KEY)")
	assert.True(t, errors.As(err, &se), "got %v", err)

	run(t, e, "CREATE TABLE t (a INT)")
	_, err = e.Run("CREATE TABLE t (a INT)")
	assert.True(t, errors.As(err, &se), "got %v", err)
}

func TestInsertPositional(t *testing.T) {
	e, db := newExecutor(t)
	run(t, e, "CREATE TABLE t (a INT, b TEXT, c FLOAT)")

	run(t, e, "INSERT INTO t VALUES (1)")
	rows, err := db.SelectAll("t")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, schema.Null(), rows[0].Value("b"))

	_, err = e.Run("INSERT INTO t VALUES (1, 'x', 2.0, 'extra')")
	var se *dberr.SchemaError
	assert.True(t, errors.As(err, &se), "got %v", err)

	_, err = e.Run("INSERT INTO t VALUES ('one', 'x', 2.0)")
	var tm *dberr.TypeMismatchError
	assert.True(t, errors.As(err, &tm), "got %v", err)
}

func TestSelectProjection(t *testing.T) {
	e, _ := newExecutor(t)
	run(t, e, "CREATE TABLE t (a INT, b TEXT)")
	run(t, e, "INSERT INTO t VALUES (1, 'x')")
	run(t, e, "INSERT INTO t VALUES (2, 'y')")

	res := run(t, e, "SELECT b FROM t WHERE a=2")
	assert.Equal(t, []string{"b"}, res.Columns)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, []string{"b"}, res.Rows[0].Columns())
	assert.Equal(t, schema.Text("y"), res.Rows[0].Value("b"))

	_, err := e.Run("SELECT nope FROM t")
	var se *dberr.SchemaError
	assert.True(t, errors.As(err, &se), "got %v", err)

	_, err = e.Run("SELECT * FROM t WHERE nope=1")
	assert.True(t, errors.As(err, &se), "got %v", err)
}

func TestIndexAndJoin(t *testing.T) {
	e, db := newExecutor(t)
	run(t, e, "CREATE TABLE accounts (id INT, name TEXT)")
	run(t, e, "CREATE TABLE orders (acct_id INT, amt INT)")
	run(t, e, "INSERT INTO accounts VALUES (1, 'A')")
	run(t, e, "INSERT INTO accounts VALUES (2, 'B')")
	run(t, e, "INSERT INTO orders VALUES (1, 50)")
	run(t, e, "INSERT INTO orders VALUES (3, 10)")

	res := run(t, e, "INDEX ON orders acct_id")
	assert.Equal(t, "Index created on orders.acct_id", res.Message)
	stats, err := db.IndexStats("orders")
	require.NoError(t, err)
	assert.Equal(t, 2, stats[0].DistinctValues)

	res = run(t, e, "JOIN accounts orders ON id=acct_id")
	assert.Equal(t, []string{"id", "name", "acct_id", "amt"}, res.Columns)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, schema.Int(50), res.Rows[0].Value("amt"))

	_, err = e.Run("JOIN accounts ghost ON id=acct_id")
	var nf *dberr.NotFoundError
	assert.True(t, errors.As(err, &nf), "got %v", err)
}

func TestParseErrorsSurface(t *testing.T) {
	e, _ := newExecutor(t)
	_, err := e.Run("SELEKT * FROM t")
	var pe *dberr.ParseError
	assert.True(t, errors.As(err, &pe), "got %v", err)
}
