package configs

// HTTP defines configuration for the HTTP server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// FallbackImageURL is shown for campaigns without an uploaded image.
	FallbackImageURL string `env:"FALLBACK_IMAGE_URL" envDefault:"/static/campaign-placeholder.png"`
}
