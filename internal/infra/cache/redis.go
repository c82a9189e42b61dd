package cache

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/atelierworks/atelier/internal/config"
)

// New connects the optional redis backend for the rate-limit store.
func New(cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RateLimit.RedisAddr,
		DB:   cfg.RateLimit.RedisDB,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}

func Close(rdb *redis.Client) error {
	return rdb.Close()
}
