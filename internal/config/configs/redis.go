package configs

import "time"

// Redis configures the service catalog cache. An empty Addr runs without
// Redis.
type Redis struct {
	// Addr is a redis:// URL.
	Addr       string        `env:"ADDRESS"`
	CatalogTTL time.Duration `env:"CATALOG_TTL" envDefault:"5m"`
}
