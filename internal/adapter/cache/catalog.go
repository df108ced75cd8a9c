// Package cache caches service catalog lookups in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"promo-ads/internal/core/domain"
	"promo-ads/internal/core/port"
)

// DefaultCatalogTTL is used when no TTL is configured.
const DefaultCatalogTTL = 5 * time.Minute

// Store is the subset of the Redis client used by the cache.
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CatalogCache is a read-through cache in front of a port.ServiceCatalog.
// Only found services are cached. Redis failures are logged and the lookup
// falls through to the wrapped catalog.
type CatalogCache struct {
	next   port.ServiceCatalog
	store  Store
	ttl    time.Duration
	logger *slog.Logger
}

// NewCatalogCache wraps next. A nil store disables caching and next is
// returned as is.
func NewCatalogCache(next port.ServiceCatalog, store Store, ttl time.Duration, logger *slog.Logger) port.ServiceCatalog {
	if store == nil {
		return next
	}
	if ttl <= 0 {
		ttl = DefaultCatalogTTL
	}
	return &CatalogCache{next: next, store: store, ttl: ttl, logger: logger}
}

// Lookup returns the cached service or loads it from the wrapped catalog.
func (c *CatalogCache) Lookup(ctx context.Context, ownerID, serviceID string) (*domain.Service, error) {
	key := cacheKey(ownerID, serviceID)

	raw, err := c.store.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var s domain.Service
		if err = json.Unmarshal(raw, &s); err == nil {
			return &s, nil
		}
		c.logger.Warn("malformed cached service", slog.String("key", key), slog.Any("error", err))
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("service cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	s, err := c.next.Lookup(ctx, ownerID, serviceID)
	if err != nil || s == nil {
		return s, err
	}
	if raw, err = json.Marshal(s); err == nil {
		err = c.store.Set(ctx, key, raw, c.ttl).Err()
	}
	if err != nil {
		c.logger.Warn("service cache write failed", slog.String("key", key), slog.Any("error", err))
	}
	return s, nil
}

func cacheKey(ownerID, serviceID string) string {
	return "catalog:" + ownerID + ":" + serviceID
}
