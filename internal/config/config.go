package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Contact delivery modes
const (
	DeliverySimulated = "simulated"
	DeliveryMailgun   = "mailgun"
	DeliverySQLite    = "sqlite"
)

// Config holds all application configuration
type Config struct {
	// Server settings
	Port        int    `env:"WEBSITE_PORT" envDefault:"4002"`
	Address     string `env:"WEBSITE_ADDRESS" envDefault:"0.0.0.0"`
	Environment string `env:"ENVIRONMENT" envDefault:"local"`

	// Origins allowed to call the JSON API
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"true"`

	Contact ContactConfig
	Email   EmailConfig
	Storage StorageConfig

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// ContactConfig controls how contact form submissions are delivered
type ContactConfig struct {
	// Delivery is one of simulated, mailgun, sqlite
	Delivery string `env:"CONTACT_DELIVERY" envDefault:"simulated"`
	// SimulatedDelay is how long the simulated sender takes to "send"
	SimulatedDelay time.Duration `env:"CONTACT_SIMULATED_DELAY" envDefault:"1s"`
	// Timeout bounds a single delivery attempt
	Timeout time.Duration `env:"CONTACT_TIMEOUT" envDefault:"30s"`
	// Inbox receives contact messages when delivering by email
	Inbox string `env:"CONTACT_INBOX" envDefault:"hello@gogetwell.ai"`
	// RatePerMinute and RateBurst limit submissions per client address
	RatePerMinute int `env:"CONTACT_RATE_PER_MINUTE" envDefault:"5"`
	RateBurst     int `env:"CONTACT_RATE_BURST" envDefault:"3"`
}

// EmailConfig holds Mailgun settings
type EmailConfig struct {
	MailgunDomain string `env:"MAILGUN_DOMAIN" envDefault:""`
	MailgunAPIKey string `env:"MAILGUN_API_KEY" envDefault:""`
	FromEmail     string `env:"EMAIL_FROM_ADDRESS" envDefault:"noreply@gogetwell.ai"`
	FromName      string `env:"EMAIL_FROM_NAME" envDefault:"gogetwell.ai"`
}

// IsConfigured returns true if Mailgun is configured
func (e *EmailConfig) IsConfigured() bool {
	return e.MailgunDomain != "" && e.MailgunAPIKey != ""
}

// StorageConfig holds the local SQLite inbox location
type StorageConfig struct {
	DataDir string `env:"STORAGE_DATA_DIR" envDefault:"./data"`
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Address, c.Port)
}

// Validate checks settings that env tags cannot express
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("WEBSITE_PORT out of range: %d", c.Port)
	}

	c.Contact.Delivery = strings.ToLower(strings.TrimSpace(c.Contact.Delivery))
	switch c.Contact.Delivery {
	case DeliverySimulated, DeliverySQLite:
	case DeliveryMailgun:
		if !c.Email.IsConfigured() {
			return fmt.Errorf("CONTACT_DELIVERY=mailgun requires MAILGUN_DOMAIN and MAILGUN_API_KEY")
		}
		if c.Contact.Inbox == "" {
			return fmt.Errorf("CONTACT_DELIVERY=mailgun requires CONTACT_INBOX")
		}
	default:
		return fmt.Errorf("unknown CONTACT_DELIVERY %q", c.Contact.Delivery)
	}

	if c.Contact.RatePerMinute <= 0 {
		return fmt.Errorf("CONTACT_RATE_PER_MINUTE must be positive, got %d", c.Contact.RatePerMinute)
	}
	if c.Contact.RateBurst <= 0 {
		return fmt.Errorf("CONTACT_RATE_BURST must be positive, got %d", c.Contact.RateBurst)
	}
	if c.Contact.SimulatedDelay < 0 {
		return fmt.Errorf("CONTACT_SIMULATED_DELAY must not be negative")
	}
	return nil
}

// Parse reads configuration from the environment without logging
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// NewConfig loads configuration from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg, err := Parse()
	if err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.Port),
		slog.String("contact_delivery", cfg.Contact.Delivery),
		slog.Bool("metrics", cfg.MetricsEnabled),
	)

	return cfg, nil
}
