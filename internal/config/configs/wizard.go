package configs

import "time"

// Wizard configures the campaign creation flow.
type Wizard struct {
	// SubmitTimeout bounds the call to the campaign creation endpoint.
	SubmitTimeout time.Duration `env:"SUBMIT_TIMEOUT" envDefault:"10s"`
}
