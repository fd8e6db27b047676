package table

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kopadb/dberr"
	"kopadb/schema"
	"kopadb/storage"
)

var fixedNow = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

func clock() time.Time { return fixedNow }

func newAccounts(t *testing.T, uniqueKeys ...string) *Table {
	t.Helper()
	tbl, err := New("accounts", []schema.Column{
		{Name: "id", Type: schema.TypeInt},
		{Name: "name", Type: schema.TypeText},
		{Name: "balance", Type: schema.TypeFloat},
	}, "id", uniqueKeys, WithClock(clock))
	require.NoError(t, err)
	return tbl
}

func insert(t *testing.T, tbl *Table, values map[string]interface{}) *storage.Row {
	t.Helper()
	row, err := tbl.InsertMap(values)
	require.NoError(t, err)
	return row
}

// assertIndexesConsistent checks every explicit index against the rows.
func assertIndexesConsistent(t *testing.T, tbl *Table) {
	t.Helper()
	for _, col := range tbl.IndexedColumns() {
		idx, ok := tbl.Index(col)
		require.True(t, ok)
		total := 0
		for _, r := range tbl.Rows() {
			assert.Contains(t, idx.Lookup(r.Value(col)), r, "index on %s misses a row", col)
		}
		for _, s := range tbl.IndexStats() {
			if s.Column == col {
				total = s.TotalRowsIndexed
			}
		}
		assert.Equal(t, tbl.Len(), total, "index on %s holds stale entries", col)
	}
}

func TestNewValidatesKeys(t *testing.T) {
	cols := []schema.Column{{Name: "id", Type: schema.TypeInt}}

	_, err := New("t", cols, "missing", nil)
	var se *dberr.SchemaError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "missing", se.Column)

	_, err = New("t", cols, "", []string{"nope"})
	assert.True(t, errors.As(err, &se))

	_, err = New("t", []schema.Column{{Name: "x", Type: "BLOB"}}, "", nil)
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "t", se.Table)

	tbl, err := New("t", cols, "id", []string{"id", "id"})
	require.NoError(t, err)
	assert.Equal(t, []string{"id"}, tbl.UniqueKeys())
}

func TestInsertCastsAndDefaults(t *testing.T) {
	tbl, err := New("events", []schema.Column{
		{Name: "id", Type: schema.TypeInt},
		{Name: "amount", Type: schema.TypeFloat},
		{Name: "note", Type: schema.TypeText},
		{Name: "created_at", Type: schema.TypeTimestamp},
	}, "id", nil, WithClock(clock))
	require.NoError(t, err)

	row := insert(t, tbl, map[string]interface{}{"id": "7", "amount": 10})
	assert.Equal(t, schema.Int(7), row.Value("id"))
	assert.Equal(t, schema.Float(10), row.Value("amount"))
	assert.True(t, row.Value("note").IsNull())
	assert.Equal(t, schema.FormatTimestamp(fixedNow), row.Value("created_at"))

	// explicit NULL is kept, not defaulted
	row = insert(t, tbl, map[string]interface{}{"id": 8, "created_at": nil})
	assert.True(t, row.Value("created_at").IsNull())

	stored := tbl.Rows()
	require.Len(t, stored, 2)
	assert.Same(t, row, stored[1])
}

func TestInsertRejectsWithoutMutation(t *testing.T) {
	tbl := newAccounts(t, "name")
	require.NoError(t, tbl.CreateIndex("name"))
	insert(t, tbl, map[string]interface{}{"id": 1, "name": "Alice", "balance": 100.0})

	tests := []struct {
		name   string
		values map[string]interface{}
		check  func(t *testing.T, err error)
	}{
		{"duplicate primary key", map[string]interface{}{"id": 1, "name": "Bob"}, func(t *testing.T, err error) {
			var cv *dberr.ConstraintViolation
			require.True(t, errors.As(err, &cv))
			assert.Equal(t, "primary key", cv.Key)
			assert.Equal(t, "id", cv.Column)
		}},
		{"duplicate unique key", map[string]interface{}{"id": 2, "name": "Alice"}, func(t *testing.T, err error) {
			var cv *dberr.ConstraintViolation
			require.True(t, errors.As(err, &cv))
			assert.Equal(t, "unique", cv.Key)
			assert.Equal(t, "name", cv.Column)
		}},
		{"null primary key", map[string]interface{}{"name": "Carol"}, func(t *testing.T, err error) {
			var cv *dberr.ConstraintViolation
			assert.True(t, errors.As(err, &cv))
		}},
		{"bad cast", map[string]interface{}{"id": "two", "name": "Dan"}, func(t *testing.T, err error) {
			var tm *dberr.TypeMismatchError
			require.True(t, errors.As(err, &tm))
			assert.Equal(t, "id", tm.Column)
			assert.Equal(t, "INT", tm.Target)
		}},
		{"unknown column", map[string]interface{}{"id": 3, "age": 4}, func(t *testing.T, err error) {
			var se *dberr.SchemaError
			assert.True(t, errors.As(err, &se))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tbl.InsertMap(tt.values)
			tt.check(t, err)
			assert.Equal(t, 1, tbl.Len())
			assertIndexesConsistent(t, tbl)
		})
	}
}

func TestRowCountAfterInserts(t *testing.T) {
	tbl := newAccounts(t)
	for i := 0; i < 25; i++ {
		insert(t, tbl, map[string]interface{}{"id": i, "name": fmt.Sprintf("user%d", i%5)})
	}
	assert.Equal(t, 25, tbl.Len())
}

func TestSelect(t *testing.T) {
	tbl := newAccounts(t)
	insert(t, tbl, map[string]interface{}{"id": 1, "name": "Alice", "balance": 10})
	insert(t, tbl, map[string]interface{}{"id": 2, "name": "Bob", "balance": 10})
	insert(t, tbl, map[string]interface{}{"id": 3, "name": "Alice", "balance": 20})

	all, err := tbl.Select(nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	for _, indexed := range []bool{false, true} {
		t.Run(fmt.Sprintf("indexed=%v", indexed), func(t *testing.T) {
			if indexed {
				require.NoError(t, tbl.CreateIndex("name"))
			}
			rows, err := tbl.Select([]Filter{Eq("name", "Alice")})
			require.NoError(t, err)
			assert.Len(t, rows, 2)

			rows, err = tbl.Select([]Filter{Eq("name", "Alice"), Eq("balance", "20")})
			require.NoError(t, err)
			require.Len(t, rows, 1)
			assert.Equal(t, schema.Int(3), rows[0].Value("id"))

			rows, err = tbl.Select([]Filter{Eq("name", "Nobody")})
			require.NoError(t, err)
			assert.Empty(t, rows)
		})
	}

	_, err = tbl.Select([]Filter{Eq("age", 1)})
	var se *dberr.SchemaError
	assert.True(t, errors.As(err, &se))

	_, err = tbl.Select([]Filter{Eq("id", "one")})
	var tm *dberr.TypeMismatchError
	assert.True(t, errors.As(err, &tm))
}

func TestSelectReturnsLiveRows(t *testing.T) {
	tbl := newAccounts(t)
	insert(t, tbl, map[string]interface{}{"id": 1, "name": "Alice"})

	rows, err := tbl.Select(nil)
	require.NoError(t, err)
	rows[0].Set("name", schema.Text("Alicia"))

	again, _ := tbl.Select([]Filter{Eq("id", 1)})
	assert.Equal(t, schema.Text("Alicia"), again[0].Value("name"))
}

func TestUpdate(t *testing.T) {
	tbl := newAccounts(t)
	require.NoError(t, tbl.CreateIndex("balance"))
	insert(t, tbl, map[string]interface{}{"id": 1, "name": "Alice", "balance": 100.0})
	bob := insert(t, tbl, map[string]interface{}{"id": 2, "name": "Bob", "balance": 50.0})
	bobBefore := bob.Clone()

	n, err := tbl.Update([]Filter{Eq("id", 1)}, map[string]schema.Value{
		"balance": schema.Text("150"),
		"ghost":   schema.Int(1),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	rows, _ := tbl.Select([]Filter{Eq("id", 1)})
	require.Len(t, rows, 1)
	assert.Equal(t, schema.Float(150), rows[0].Value("balance"))
	assert.Equal(t, schema.Text("Alice"), rows[0].Value("name"))
	assert.True(t, bob.Equal(bobBefore), "unmatched row untouched")

	idx, _ := tbl.Index("balance")
	assert.Empty(t, idx.Lookup(schema.Float(100)))
	assert.Len(t, idx.Lookup(schema.Float(150)), 1)
	assertIndexesConsistent(t, tbl)

	n, err = tbl.Update([]Filter{Eq("id", 99)}, map[string]schema.Value{"balance": schema.Float(1)})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestUpdateKeyViolations(t *testing.T) {
	tbl := newAccounts(t, "name")
	insert(t, tbl, map[string]interface{}{"id": 1, "name": "Alice"})
	insert(t, tbl, map[string]interface{}{"id": 2, "name": "Bob"})

	_, err := tbl.Update([]Filter{Eq("id", 2)}, map[string]schema.Value{"id": schema.Int(1)})
	var cv *dberr.ConstraintViolation
	require.True(t, errors.As(err, &cv))

	_, err = tbl.Update(nil, map[string]schema.Value{"name": schema.Text("Same")})
	require.True(t, errors.As(err, &cv))

	_, err = tbl.Update([]Filter{Eq("id", 1)}, map[string]schema.Value{"id": schema.Null()})
	require.True(t, errors.As(err, &cv))

	_, err = tbl.Update([]Filter{Eq("id", 1)}, map[string]schema.Value{"balance": schema.Text("rich")})
	var tm *dberr.TypeMismatchError
	require.True(t, errors.As(err, &tm))

	rows, _ := tbl.Select(nil)
	assert.Equal(t, schema.Int(1), rows[0].Value("id"))
	assert.Equal(t, schema.Text("Bob"), rows[1].Value("name"))

	// re-keying a row to a fresh value is fine, and frees the old one
	n, err := tbl.Update([]Filter{Eq("id", 2)}, map[string]schema.Value{"id": schema.Int(3)})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	_, err = tbl.InsertMap(map[string]interface{}{"id": 2, "name": "Carol"})
	assert.NoError(t, err)
}

func TestUpdateRefreshesUpdatedAt(t *testing.T) {
	tbl, err := New("notes", []schema.Column{
		{Name: "id", Type: schema.TypeInt},
		{Name: "body", Type: schema.TypeText},
		{Name: "updated_at", Type: schema.TypeTimestamp},
	}, "id", nil, WithClock(clock))
	require.NoError(t, err)
	insert(t, tbl, map[string]interface{}{"id": 1, "body": "a", "updated_at": "2020-01-01T00:00:00"})

	later := fixedNow.Add(time.Hour)
	tbl.now = func() time.Time { return later }
	_, err = tbl.Update([]Filter{Eq("id", 1)}, map[string]schema.Value{"body": schema.Text("b")})
	require.NoError(t, err)

	rows, _ := tbl.Select(nil)
	assert.Equal(t, schema.FormatTimestamp(later), rows[0].Value("updated_at"))
}

func TestDelete(t *testing.T) {
	tbl := newAccounts(t)
	require.NoError(t, tbl.CreateIndex("name"))
	for i, name := range []string{"Alice", "Bob", "Alice", "Carol"} {
		insert(t, tbl, map[string]interface{}{"id": i + 1, "name": name})
	}

	n, err := tbl.Delete([]Filter{Eq("name", "Alice")})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var names []string
	for _, r := range tbl.Rows() {
		names = append(names, r.Value("name").String())
	}
	assert.Equal(t, []string{"Bob", "Carol"}, names)
	assertIndexesConsistent(t, tbl)

	// freed key can be reused
	_, err = tbl.InsertMap(map[string]interface{}{"id": 1, "name": "Alice"})
	require.NoError(t, err)

	n, err = tbl.Delete(nil)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Zero(t, tbl.Len())
}

func TestCreateIndex(t *testing.T) {
	tbl := newAccounts(t)
	insert(t, tbl, map[string]interface{}{"id": 1, "name": "Alice"})
	insert(t, tbl, map[string]interface{}{"id": 2, "name": "Alice"})

	require.NoError(t, tbl.CreateIndex("name"))
	require.NoError(t, tbl.CreateIndex("name"))
	require.NoError(t, tbl.CreateIndex("id"))
	assert.Equal(t, []string{"name", "id"}, tbl.IndexedColumns())

	idx, ok := tbl.Index("name")
	require.True(t, ok)
	assert.Len(t, idx.Lookup(schema.Text("Alice")), 2)
	assertIndexesConsistent(t, tbl)

	err := tbl.CreateIndex("nope")
	var se *dberr.SchemaError
	assert.True(t, errors.As(err, &se))
}
