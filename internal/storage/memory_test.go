package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("success_roundtrip", func(t *testing.T) {
		store := NewMemoryStore()

		require.NoError(t, store.Set(ctx, "cart:s1", []byte(`{"items":[]}`)))
		got, err := store.Get(ctx, "cart:s1")

		require.NoError(t, err)
		assert.Equal(t, []byte(`{"items":[]}`), got)
	})

	t.Run("fail_missing_key", func(t *testing.T) {
		store := NewMemoryStore()

		_, err := store.Get(ctx, "cart:nope")

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("success_clear_is_idempotent", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Set(ctx, "cart:s1", []byte("x")))

		require.NoError(t, store.Clear(ctx, "cart:s1"))
		require.NoError(t, store.Clear(ctx, "cart:s1"))

		_, err := store.Get(ctx, "cart:s1")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("success_entries_expire_after_ttl", func(t *testing.T) {
		store := NewMemoryStore()
		current := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		store.now = func() time.Time { return current }

		require.NoError(t, store.Set(ctx, "cart:s1", []byte("x")))

		current = current.Add(SessionTTL - time.Minute)
		_, err := store.Get(ctx, "cart:s1")
		require.NoError(t, err)

		current = current.Add(2 * time.Minute)
		_, err = store.Get(ctx, "cart:s1")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("success_write_refreshes_ttl", func(t *testing.T) {
		store := NewMemoryStore()
		current := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		store.now = func() time.Time { return current }

		require.NoError(t, store.Set(ctx, "cart:s1", []byte("x")))
		current = current.Add(6 * 24 * time.Hour)
		require.NoError(t, store.Set(ctx, "cart:s1", []byte("y")))

		current = current.Add(2 * 24 * time.Hour)
		got, err := store.Get(ctx, "cart:s1")
		require.NoError(t, err)
		assert.Equal(t, []byte("y"), got)
	})

	t.Run("success_stored_value_is_isolated_from_caller", func(t *testing.T) {
		store := NewMemoryStore()
		value := []byte("abc")
		require.NoError(t, store.Set(ctx, "k", value))

		value[0] = 'z'
		got, err := store.Get(ctx, "k")

		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), got)
	})
}
