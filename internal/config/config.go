package config

import (
	"github.com/caarlos0/env/v11"

	"promo-ads/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Each nested struct is tagged with envPrefix so its fields are read with
// that prefix. Defaults live on the types in the configs package. Use Load
// to construct a Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is attached
	// to every log record.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server (HTTP_*).
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_*).
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection (PSQL_*).
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Redis configures the optional service catalog cache (REDIS_*).
	Redis configs.Redis `envPrefix:"REDIS_"`

	// Wizard configures the campaign creation flow (WIZARD_*).
	Wizard configs.Wizard `envPrefix:"WIZARD_"`

	// Worker configures the expiry worker (WORKER_*).
	Worker configs.Worker `envPrefix:"WORKER_"`

	// Metrics configures the Prometheus endpoint (METRICS_*).
	Metrics configs.Metrics `envPrefix:"METRICS_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. Fields without a variable get their
// default.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
