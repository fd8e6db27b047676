package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kopadb/dberr"
	"kopadb/schema"
	"kopadb/table"
)

func mustTable(t *testing.T, name string) *table.Table {
	t.Helper()
	tbl, err := table.New(name, []schema.Column{{Name: "id", Type: schema.TypeInt}}, "", nil)
	require.NoError(t, err)
	return tbl
}

func TestCatalogOrderAndLookup(t *testing.T) {
	c := New()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, c.Add(mustTable(t, name)))
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, c.Names())
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, "alpha", c.Tables()[1].Name())

	tbl, err := c.GetTable("mid")
	require.NoError(t, err)
	assert.Equal(t, "mid", tbl.Name())
	assert.True(t, c.TableExists("zeta"))

	_, err = c.GetTable("ghost")
	var nf *dberr.NotFoundError
	assert.True(t, errors.As(err, &nf))

	c.Reset()
	assert.Zero(t, c.Len())
}

func TestCatalogRejectsDuplicates(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(mustTable(t, "users")))
	err := c.Add(mustTable(t, "users"))
	var se *dberr.SchemaError
	require.True(t, errors.As(err, &se))
	assert.Contains(t, err.Error(), "already exists")
	assert.Equal(t, 1, c.Len())
}
