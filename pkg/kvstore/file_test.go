package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_SetGetRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "cart", []byte(`[{"quantity":1}]`)))

	data, err := store.Get(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"quantity":1}]`), data)
}

func TestFileStore_GetMissingKeyReturnsErrNotFound(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_SetOverwrites(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "theme", []byte("light")))
	require.NoError(t, store.Set(ctx, "theme", []byte("dark")))

	data, err := store.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, []byte("dark"), data)
}

func TestFileStore_DeleteIsIdempotent(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "cart", []byte("[]")))
	require.NoError(t, store.Delete(ctx, "cart"))
	require.NoError(t, store.Delete(ctx, "cart"))

	_, err = store.Get(ctx, "cart")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_SlotsSurviveReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "theme", []byte("dark")))

	reopened, err := NewFileStore(dir)
	require.NoError(t, err)

	data, err := reopened.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, []byte("dark"), data)
}
