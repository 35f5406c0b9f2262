package storage

import (
	"context"
	"testing"
	"time"

	"food-ordering/agg-svc/internal/domain"
	"food-ordering/pricing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewStore(client), mr
}

func order(id, price string, items ...pricing.CartItem) *domain.Order {
	return &domain.Order{
		ID:        id,
		CartItems: items,
		Price:     decimal.RequireFromString(price),
		CreatedAt: time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC),
	}
}

func item(name string, qty int) pricing.CartItem {
	return pricing.CartItem{Name: name, Quantity: qty, Price: decimal.RequireFromString("10")}
}

func TestStore_Claim(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	fresh, err := store.Claim(ctx, "order_created", "abc")
	require.NoError(t, err)
	assert.True(t, fresh)

	fresh, err = store.Claim(ctx, "order_created", "abc")
	require.NoError(t, err)
	assert.False(t, fresh)

	fresh, err = store.Claim(ctx, "cancelled", "abc")
	require.NoError(t, err)
	assert.True(t, fresh)

	assert.Equal(t, 7*24*time.Hour, mr.TTL("sales:seen:order_created:abc"))
}

func TestStore_RecordAndRevert(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.RecordOrder(ctx, order("a", "27.00", item("Pizza Margherita", 2))))
	require.NoError(t, store.RecordOrder(ctx, order("b", "15.50", item("Pizza Margherita", 1), item("Cola", 3))))

	assert.Equal(t, "2", mr.HGet("sales:daily:2024-05-01", "orders"))
	assert.Equal(t, "42.5", mr.HGet("sales:daily:2024-05-01", "revenue"))

	score, err := mr.ZScore("sales:foods:daily:2024-05-01", "Pizza Margherita")
	require.NoError(t, err)
	assert.Equal(t, float64(3), score)
	score, err = mr.ZScore("sales:foods:alltime", "Cola")
	require.NoError(t, err)
	assert.Equal(t, float64(3), score)
	assert.True(t, mr.TTL("sales:daily:2024-05-01") > 0)
	assert.Equal(t, time.Duration(0), mr.TTL("sales:foods:alltime"))

	require.NoError(t, store.RevertOrder(ctx, order("b", "15.50")))

	assert.Equal(t, "1", mr.HGet("sales:daily:2024-05-01", "orders"))
	assert.Equal(t, "27", mr.HGet("sales:daily:2024-05-01", "revenue"))
}

func TestStore_Unavailable(t *testing.T) {
	store, mr := newTestStore(t)
	mr.Close()

	err := store.RecordOrder(context.Background(), order("a", "27.00", item("Pizza", 1)))
	assert.Error(t, err)
}
