package apiclient

import "time"

// Config holds client configuration with environment variable mapping.
type Config struct {
	BaseURL string        `env:"API_BASE_URL" envDefault:"https://dummyjson.com"`
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"15s"`
}
