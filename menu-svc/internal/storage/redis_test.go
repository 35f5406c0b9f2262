package storage

import (
	"context"
	"testing"
	"time"

	"food-ordering/menu-svc/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisCache(client, time.Minute), mr
}

func TestRedisCache_Key(t *testing.T) {
	cache, _ := newTestCache(t)
	assert.Equal(t, "menu:categories", cache.Key("categories"))
	assert.Equal(t, "menu:foods:3", cache.Key("foods", "3"))
}

func TestRedisCache_GetSet(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	var got []domain.Category
	hit, err := cache.Get(ctx, cache.Key("categories"), &got)
	require.NoError(t, err)
	assert.False(t, hit)

	want := []domain.Category{{ID: 1, Name: "Pizza"}}
	require.NoError(t, cache.Set(ctx, cache.Key("categories"), want))

	hit, err = cache.Get(ctx, cache.Key("categories"), &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "Pizza", got[0].Name)

	mr.FastForward(2 * time.Minute)
	hit, err = cache.Get(ctx, cache.Key("categories"), &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisCache_Invalidate(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, cache.Key("categories"), []int{1}))
	require.NoError(t, cache.Set(ctx, cache.Key("foods", "1"), []int{1}))
	require.NoError(t, mr.Set("order:idem:abc", "keep"))

	require.NoError(t, cache.Invalidate(ctx))

	assert.False(t, mr.Exists("menu:categories"))
	assert.False(t, mr.Exists("menu:foods:1"))
	assert.True(t, mr.Exists("order:idem:abc"))
}

func TestRedisCache_Unavailable(t *testing.T) {
	cache, mr := newTestCache(t)
	mr.Close()

	var got []domain.Category
	_, err := cache.Get(context.Background(), cache.Key("categories"), &got)
	assert.Error(t, err)
}
