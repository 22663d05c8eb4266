// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/portfolio/contactmail/internal/contact"
	"github.com/portfolio/contactmail/pkg/logger"
	"github.com/portfolio/contactmail/pkg/mailer/resend"
)

// Config is the full runtime configuration of both entry points.
type Config struct {
	Host            string           `env:"HOST"`
	Port            int              `env:"PORT" envDefault:"3001"`
	ShutdownTimeout time.Duration    `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	HTMLMode        contact.HTMLMode `env:"CONTACT_HTML_MODE" envDefault:"escape"`
	Resend          resend.Config
	Log             logger.Config
}

// Load reads an optional .env file, then parses the environment.
// Variables already set in the environment win over .env entries.
func Load(files ...string) (*Config, error) {
	_ = godotenv.Load(files...)
	return Parse()
}

// Parse reads configuration from the environment only.
func Parse() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	mode, err := contact.ParseHTMLMode(string(cfg.HTMLMode))
	if err != nil {
		return nil, fmt.Errorf("parse config: CONTACT_HTML_MODE: %w", err)
	}
	cfg.HTMLMode = mode

	if cfg.Port < 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("parse config: PORT %d out of range", cfg.Port)
	}
	if cfg.Resend.Timeout <= 0 {
		cfg.Resend.Timeout = resend.DefaultTimeout
	}

	return &cfg, nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Provider returns the delivery settings for the contact pipeline.
func (c *Config) Provider() contact.ProviderConfig {
	return contact.NewProviderConfig(c.Resend.APIKey, c.Resend.Timeout)
}
