package storage

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisStore(client), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set(ctx, "progress_u1", `[{"courseId":"1"}]`))
	value, err := store.Get(ctx, "progress_u1")
	require.NoError(t, err)
	assert.Equal(t, `[{"courseId":"1"}]`, value)

	require.NoError(t, store.Delete(ctx, "progress_u1"))
	_, err = store.Get(ctx, "progress_u1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStorePrefixesKeys(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "all-users", "[]"))
	assert.True(t, mr.Exists("edustream:all-users"))
	assert.False(t, mr.Exists("all-users"))
}

func TestRedisStoreKeysDoNotExpire(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "v"))
	assert.Zero(t, mr.TTL("edustream:k"))
}
