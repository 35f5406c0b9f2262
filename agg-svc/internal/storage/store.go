package storage

import (
	"context"
	"time"

	"food-ordering/agg-svc/internal/domain"
	"food-ordering/sales"

	"github.com/redis/go-redis/v9"
)

const seenTTL = 7 * 24 * time.Hour

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Claim reports false when the event was already applied for this order.
func (s *Store) Claim(ctx context.Context, eventType, orderID string) (bool, error) {
	return s.rdb.SetNX(ctx, sales.SeenKey(eventType, orderID), 1, seenTTL).Result()
}

// RecordOrder counts the order and its items for the day it was placed and
// for the all-time ranking.
func (s *Store) RecordOrder(ctx context.Context, order *domain.Order) error {
	day := sales.Day(order.CreatedAt)
	dailyKey := sales.DailyKey(day)
	foodsKey := sales.DailyFoodsKey(day)

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, dailyKey, sales.FieldOrders, 1)
		pipe.HIncrByFloat(ctx, dailyKey, sales.FieldRevenue, order.Price.InexactFloat64())
		pipe.Expire(ctx, dailyKey, sales.DailyTTL)
		for _, item := range order.CartItems {
			qty := float64(item.Quantity)
			if qty < 1 {
				qty = 1
			}
			pipe.ZIncrBy(ctx, foodsKey, qty, item.Name)
			pipe.ZIncrBy(ctx, sales.AllTimeFoodsKey, qty, item.Name)
		}
		pipe.Expire(ctx, foodsKey, sales.DailyTTL)
		return nil
	})
	return err
}

// RevertOrder takes a cancelled order back out of its day's totals. Food
// rankings are left alone.
func (s *Store) RevertOrder(ctx context.Context, order *domain.Order) error {
	dailyKey := sales.DailyKey(sales.Day(order.CreatedAt))

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, dailyKey, sales.FieldOrders, -1)
		pipe.HIncrByFloat(ctx, dailyKey, sales.FieldRevenue, -order.Price.InexactFloat64())
		return nil
	})
	return err
}
