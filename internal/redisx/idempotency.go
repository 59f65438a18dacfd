package redisx

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Pending marks a reservation whose checkout has not finished yet.
const Pending = "pending"

type Client interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	GetDel(ctx context.Context, key string) *redis.StringCmd
}

type IdempotencyStore struct {
	rdb Client
}

func NewIdempotencyStore(rdb Client) *IdempotencyStore {
	return &IdempotencyStore{rdb: rdb}
}

func checkoutKey(userID uuid.UUID, key string) string {
	return fmt.Sprintf(KeyIdemCheckout, userID, key)
}

// Reserve claims key for userID. When the key is already taken it returns the stored value,
// which is either Pending or the number of the order created under it.
func (s *IdempotencyStore) Reserve(ctx context.Context, userID uuid.UUID, key string) (string, bool, error) {
	k := checkoutKey(userID, key)
	ok, err := s.rdb.SetNX(ctx, k, Pending, TTLIdempotency).Result()
	if err != nil {
		return "", false, fmt.Errorf("reserve idempotency key: %w", err)
	}
	if ok {
		return "", true, nil
	}

	val, err := s.rdb.Get(ctx, k).Result()
	if errors.Is(err, redis.Nil) {
		// expired between the two calls
		return s.Reserve(ctx, userID, key)
	}
	if err != nil {
		return "", false, fmt.Errorf("read idempotency key: %w", err)
	}
	return val, false, nil
}

func (s *IdempotencyStore) Complete(ctx context.Context, userID uuid.UUID, key, orderNumber string) error {
	if err := s.rdb.Set(ctx, checkoutKey(userID, key), orderNumber, TTLIdempotency).Err(); err != nil {
		return fmt.Errorf("store idempotency key: %w", err)
	}
	return nil
}

// Release drops a reservation so the client can retry after a failed checkout.
func (s *IdempotencyStore) Release(ctx context.Context, userID uuid.UUID, key string) error {
	if err := s.rdb.GetDel(ctx, checkoutKey(userID, key)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("release idempotency key: %w", err)
	}
	return nil
}
