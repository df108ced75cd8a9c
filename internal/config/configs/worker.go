package configs

import "time"

// Worker configures the background expiry check.
type Worker struct {
	Enabled  bool          `env:"ENABLED" envDefault:"true"`
	Interval time.Duration `env:"INTERVAL" envDefault:"1h"`
	// Timeout bounds a single run.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}
