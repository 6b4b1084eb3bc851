package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestGetMissingKey(t *testing.T) {
	store := newTestStore(t)

	value, ok, err := store.Get(context.Background(), "cloud-challenge-progress")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, value)
}

func TestSetGetRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	payload := []byte(`{"completedDays":[1,2,3],"streak":3}`)
	require.NoError(t, store.Set(ctx, "cloud-challenge-progress", payload))

	value, ok, err := store.Get(ctx, "cloud-challenge-progress")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, payload, value)
}

func TestSetOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "token", []byte("old")))
	require.NoError(t, store.Set(ctx, "token", []byte("new")))

	value, ok, err := store.Get(ctx, "token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("new"), value)
}

func TestDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "token", []byte("tok")))
	require.NoError(t, store.Delete(ctx, "token"))

	_, ok, err := store.Get(ctx, "token")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is not an error.
	require.NoError(t, store.Delete(ctx, "token"))
}

func TestKeysAreIndependent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "token", []byte("tok")))
	require.NoError(t, store.Set(ctx, "edit-article-draft", []byte(`{"title":"wip"}`)))
	require.NoError(t, store.Delete(ctx, "token"))

	value, ok, err := store.Get(ctx, "edit-article-draft")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"title":"wip"}`), value)
}

func TestReopenPersists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.db")
	ctx := context.Background()

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "token", []byte("tok")))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Get(ctx, "token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("tok"), value)
}
