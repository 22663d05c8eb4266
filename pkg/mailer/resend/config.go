package resend

import "time"

// DefaultTimeout bounds a single call to the Resend API.
const DefaultTimeout = 10 * time.Second

// Config holds Resend email provider configuration.
type Config struct {
	APIKey string `env:"RESEND_API_KEY"`
	// BaseURL overrides the API endpoint. Empty means the public Resend API.
	BaseURL string        `env:"RESEND_BASE_URL"`
	Timeout time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"10s"`
}
