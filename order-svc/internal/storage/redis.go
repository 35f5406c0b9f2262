package storage

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	idempotencyPrefix = "order:idem:"
	IdempotencyTTL    = 24 * time.Hour
)

// IdempotencyStore maps a client Idempotency-Key to the order it created.
type IdempotencyStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{Client: client, TTL: IdempotencyTTL}
}

// Reserve claims key for orderID. When the key is already taken it returns
// the order id stored under it and reserved=false.
func (s *IdempotencyStore) Reserve(ctx context.Context, key, orderID string) (string, bool, error) {
	ok, err := s.Client.SetNX(ctx, idempotencyPrefix+key, orderID, s.TTL).Result()
	if err != nil {
		return "", false, err
	}
	if ok {
		return orderID, true, nil
	}

	existing, err := s.Client.Get(ctx, idempotencyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		// expired between SETNX and GET
		return s.Reserve(ctx, key, orderID)
	}
	if err != nil {
		return "", false, err
	}
	return existing, false, nil
}

func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	return s.Client.Del(ctx, idempotencyPrefix+key).Err()
}
