package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "kopadb.json")
	fs, err := NewFileStore(path)
	require.NoError(t, err)

	_, err = fs.Load()
	assert.ErrorIs(t, err, ErrNoSnapshot)

	require.NoError(t, fs.Save(sampleDocument()))
	doc, err := fs.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"zebras", "accounts"}, doc.Names())

	meta, err := fs.Meta()
	require.NoError(t, err)
	assert.Equal(t, 2, meta.Tables)
	assert.Equal(t, int64(3), meta.Rows)
	assert.NotEmpty(t, meta.SnapshotID)
	assert.Equal(t, path, meta.Path)
}

func TestFileStoreSaveOverwrites(t *testing.T) {
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "snap.json"))
	require.NoError(t, err)

	require.NoError(t, fs.Save(sampleDocument()))
	require.NoError(t, fs.Save(NewDocument()))

	doc, err := fs.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Len())
}

func TestFileStoreDetectsCorruption(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.json")
	fs, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, fs.Save(sampleDocument()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data[:len(data)/2], 0644))

	_, err = fs.Load()
	assert.ErrorContains(t, err, "hash mismatch")
}

func TestFileStoreWithoutSidecarStillParses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"t":{"schema":[{"name":"id","type":"INT"}],"rows":[],"unique_keys":[],"indexes":[]}}`), 0644))

	fs, err := NewFileStore(path)
	require.NoError(t, err)
	doc, err := fs.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"t"}, doc.Names())

	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0644))
	_, err = fs.Load()
	assert.Error(t, err)
}

func TestSQLStoreWithSQLite(t *testing.T) {
	store, err := Open(DriverSQLite, filepath.Join(t.TempDir(), "snap.db"), "")
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Load()
	assert.ErrorIs(t, err, ErrNoSnapshot)

	require.NoError(t, store.Save(sampleDocument()))
	require.NoError(t, store.Save(sampleDocument()))

	doc, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"zebras", "accounts"}, doc.Names())
	rec, _ := doc.Table("accounts")
	assert.Len(t, rec.Rows, 2)
}

func TestOpen(t *testing.T) {
	store, err := Open(DriverFile, filepath.Join(t.TempDir(), "s.json"), "")
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, store)

	_, err = Open("postgres", "x", "")
	assert.ErrorContains(t, err, "unknown snapshot driver")

	_, err = Open(DriverSQLite, filepath.Join(t.TempDir(), "s.db"), "bad-name;")
	assert.ErrorContains(t, err, "invalid snapshot table name")
}
