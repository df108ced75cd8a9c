package db

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"promo-ads/internal/config/configs"
)

// NewRedis creates a Redis client for cfg.Addr and pings it. It returns a
// nil client and no error when no address is configured, which disables
// caching.
func NewRedis(ctx context.Context, cfg configs.Redis) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.Addr)
	if err != nil {
		return nil, err
	}
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opt)

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = client.Ping(ctxPing).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
