package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is the optional shared backend for multi-replica deployments.
// Same fixed-window semantics as MemoryStore, keyed by a redis counter that
// expires at the end of the window.
type RedisStore struct {
	rdb       *redis.Client
	windowLen time.Duration
	max       int
}

func NewRedisStore(rdb *redis.Client, windowLen time.Duration, max int) *RedisStore {
	return &RedisStore{rdb: rdb, windowLen: windowLen, max: max}
}

func (s *RedisStore) Allow(ctx context.Context, key string) (Result, error) {
	k := "ratelimit:" + key

	n, err := s.rdb.Incr(ctx, k).Result()
	if err != nil {
		return Result{}, fmt.Errorf("ratelimit incr: %w", err)
	}
	if n == 1 {
		if err := s.rdb.Expire(ctx, k, s.windowLen).Err(); err != nil {
			return Result{}, fmt.Errorf("ratelimit expire: %w", err)
		}
	}

	if n > int64(s.max) {
		ttl, err := s.rdb.TTL(ctx, k).Result()
		if err != nil || ttl <= 0 {
			ttl = s.windowLen
		}
		return Result{Allowed: false, RetryAfter: ttl}, nil
	}
	return Result{Allowed: true}, nil
}
