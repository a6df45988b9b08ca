package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wellywell/washboard/internal/session"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *Redis) {
	mr := miniredis.RunT(t)
	client := NewRedisClient(RedisConfig{Addr: mr.Addr()})

	store, err := NewRedis(context.Background(), client, time.Hour)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return mr, store
}

func testStore(t *testing.T, store session.Store) {
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "s1", "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "s1", "k", "v1"))
	require.NoError(t, store.Set(ctx, "s1", "k", "v2"))
	require.NoError(t, store.Set(ctx, "s1", "other", "x"))
	require.NoError(t, store.Set(ctx, "s2", "k", "s2-value"))

	v, ok, err := store.Get(ctx, "s1", "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", v)

	require.NoError(t, store.Delete(ctx, "s1", "k", "other"))
	_, ok, err = store.Get(ctx, "s1", "k")
	require.NoError(t, err)
	assert.False(t, ok)

	v, ok, err = store.Get(ctx, "s2", "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "s2-value", v)

	assert.NoError(t, store.Delete(ctx, "missing", "k"))
}

func TestMemory(t *testing.T) {
	testStore(t, NewMemory())
}

func TestRedis(t *testing.T) {
	_, store := setupTestRedis(t)
	testStore(t, store)
}

func TestRedisExpiry(t *testing.T) {
	mr, store := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "s1", "k", "v"))
	assert.Equal(t, time.Hour, mr.TTL(keyPrefix+"s1"))

	mr.FastForward(2 * time.Hour)
	_, ok, err := store.Get(ctx, "s1", "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedis(context.Background(), NewRedisClient(RedisConfig{Addr: addr}), time.Hour)
	assert.Error(t, err)
}
