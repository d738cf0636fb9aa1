package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/vaultmap/pkg/adapters/redis"
	"github.com/aretw0/vaultmap/pkg/domain"
	"github.com/aretw0/vaultmap/pkg/ports/tests"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, opts ...redis.Option) (*miniredis.Miniredis, *redis.Store) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, redis.NewFromClient(client, opts...)
}

func TestRedisStore_Contract(t *testing.T) {
	_, store := setup(t)
	tests.RunResultCacheContract(t, store)
}

func TestRedisStore_TTL(t *testing.T) {
	mr, store := setup(t, redis.WithTTL(time.Minute))
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "k", &domain.RenderedMap{Map: "MAP\nENDMAP"}))
	assert.Equal(t, time.Minute, mr.TTL(redis.DefaultPrefix+"k"))

	mr.FastForward(2 * time.Minute)
	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, store := setup(t, redis.WithPrefix("test:"))
	require.NoError(t, store.Put(context.Background(), "k", &domain.RenderedMap{Map: "x"}))
	assert.True(t, mr.Exists("test:k"))
	assert.NoError(t, store.Ping(context.Background()))
}

func TestRedisStore_CorruptValue(t *testing.T) {
	mr, store := setup(t)
	require.NoError(t, mr.Set(redis.DefaultPrefix+"bad", "{not json"))
	_, err := store.Get(context.Background(), "bad")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrCacheMiss)
}
