package kv_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dataview/core/kv"
)

func TestFile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("empty path rejected", func(t *testing.T) {
		t.Parallel()

		_, err := kv.NewFile("")
		assert.ErrorIs(t, err, kv.ErrEmptyPath)
	})

	t.Run("get before any write returns ErrNotFound", func(t *testing.T) {
		t.Parallel()

		store, err := kv.NewFile(filepath.Join(t.TempDir(), "state.json"))
		require.NoError(t, err)

		_, err = store.Get(ctx, "token")
		assert.ErrorIs(t, err, kv.ErrNotFound)
	})

	t.Run("values survive reopening the store", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "state.json")

		store, err := kv.NewFile(path)
		require.NoError(t, err)
		require.NoError(t, store.Set(ctx, "token", "abc123"))
		require.NoError(t, store.Set(ctx, "user", `{"id":1}`))

		reopened, err := kv.NewFile(path)
		require.NoError(t, err)

		val, err := reopened.Get(ctx, "token")
		require.NoError(t, err)
		assert.Equal(t, "abc123", val)

		val, err = reopened.Get(ctx, "user")
		require.NoError(t, err)
		assert.Equal(t, `{"id":1}`, val)
	})

	t.Run("delete removes keys from disk", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "state.json")

		store, err := kv.NewFile(path)
		require.NoError(t, err)
		require.NoError(t, store.Set(ctx, "token", "abc"))
		require.NoError(t, store.Set(ctx, "user", "u"))
		require.NoError(t, store.Delete(ctx, "token", "user"))

		reopened, err := kv.NewFile(path)
		require.NoError(t, err)
		_, err = reopened.Get(ctx, "token")
		assert.ErrorIs(t, err, kv.ErrNotFound)
	})

	t.Run("corrupted document treated as empty", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "state.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		store, err := kv.NewFile(path)
		require.NoError(t, err)

		_, err = store.Get(ctx, "token")
		assert.ErrorIs(t, err, kv.ErrNotFound)

		// Next write replaces the corrupted document.
		require.NoError(t, store.Set(ctx, "token", "fresh"))
		val, err := store.Get(ctx, "token")
		require.NoError(t, err)
		assert.Equal(t, "fresh", val)
	})

	t.Run("creates parent directory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "dir", "state.json")
		store, err := kv.NewFile(path)
		require.NoError(t, err)
		require.NoError(t, store.Set(ctx, "k", "v"))

		_, err = os.Stat(path)
		assert.NoError(t, err)
	})
}
