package redisx

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const dialTimeout = 2 * time.Second

func New(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: dialTimeout,
	})
}

// Ping checks the connection; used once at startup.
func Ping(ctx context.Context, rdb *redis.Client) error {
	ctx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()
	return rdb.Ping(ctx).Err()
}
