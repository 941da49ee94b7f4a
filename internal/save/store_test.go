package save

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreSaveLoad(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(filepath.Join(t.TempDir(), "saves"))
	require.NoError(t, err)
	defer store.Close()

	m := newFloor(t, 21)
	require.NoError(t, store.Save(ctx, "slot1", m))

	got, err := store.Load(ctx, "slot1")
	require.NoError(t, err)
	assert.Equal(t, m.Tiles.Cells(), got.Tiles.Cells())
	assert.Equal(t, m.Known.Cells(), got.Known.Cells())
	assert.Equal(t, m.Player, got.Player)
}

func TestFileStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	first := newFloor(t, 1)
	second := newFloor(t, 2)
	second.Floor = 9

	require.NoError(t, store.Save(ctx, "run", first))
	require.NoError(t, store.Save(ctx, "run", second))

	got, err := store.Load(ctx, "run")
	require.NoError(t, err)
	assert.Equal(t, 9, got.Floor)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file should be renamed away")
}

func TestFileStoreNotFound(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestFileStoreCorrupt(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.sav"), []byte{1, 2, 3}, 0o644))

	_, err = store.Load(context.Background(), "bad")
	assert.True(t, errors.Is(err, ErrCorrupt))
}

func TestFileStoreRejectsBadSlot(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	for _, slot := range []string{"", "..", "a/b", `a\b`} {
		assert.Error(t, store.Save(context.Background(), slot, newFloor(t, 1)), "slot %q", slot)
	}
}

func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("DUNGEONMAZE_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("DUNGEONMAZE_TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	store, err := NewPostgresStore(ctx, dsn)
	require.NoError(t, err)
	defer store.Close()

	m := newFloor(t, 42)
	require.NoError(t, store.Save(ctx, "pgtest", m))

	got, err := store.Load(ctx, "pgtest")
	require.NoError(t, err)
	assert.Equal(t, m.Tiles.Cells(), got.Tiles.Cells())

	_, err = store.Load(ctx, "pgtest-missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}
