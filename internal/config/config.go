package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all website configuration
type Config struct {
	// Server settings
	ServerPort    int    `env:"WEBSITE_PORT" envDefault:"4002"`
	ServerAddress string `env:"WEBSITE_ADDRESS" envDefault:"0.0.0.0"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`

	// Public site identity
	SiteName string `env:"SITE_NAME" envDefault:"NumiFlow"`
	SiteURL  string `env:"SITE_URL" envDefault:"http://localhost:4002"`

	Contact  ContactConfig
	Email    EmailConfig
	Telegram TelegramConfig
	Otel     OtelConfig

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"45s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServerAddress, c.ServerPort)
}

// ContactConfig controls the contact form and lead capture
type ContactConfig struct {
	// SimulatedDelay is used when no lead sink is configured
	SimulatedDelay time.Duration `env:"CONTACT_SIMULATED_DELAY" envDefault:"1s"`
	// SubmitTimeout bounds a single delivery attempt
	SubmitTimeout time.Duration `env:"CONTACT_SUBMIT_TIMEOUT" envDefault:"30s"`
	// RatePerMinute and RateBurst limit submissions per client IP
	RatePerMinute int `env:"CONTACT_RATE_PER_MINUTE" envDefault:"10"`
	RateBurst     int `env:"CONTACT_RATE_BURST" envDefault:"3"`
	// FormTTL is how long an idle form state is kept in memory
	FormTTL time.Duration `env:"CONTACT_FORM_TTL" envDefault:"30m"`
	// SweepSchedule is a cron spec for dropping idle forms and limiters
	SweepSchedule string `env:"CONTACT_SWEEP_SCHEDULE" envDefault:"@every 5m"`
	// SweepEnabled turns the scheduled sweep off, e.g. in tests
	SweepEnabled bool `env:"CONTACT_SWEEP_ENABLED" envDefault:"true"`
	// LeadsTo is the inbox that receives leads by email
	LeadsTo     string `env:"LEADS_TO_ADDRESS" envDefault:""`
	LeadsToName string `env:"LEADS_TO_NAME" envDefault:"Sales"`
}

// EmailConfig holds email service configuration
type EmailConfig struct {
	// Enabled determines if email sending is enabled
	Enabled bool `env:"EMAIL_ENABLED" envDefault:"false"`
	// MailgunDomain is the Mailgun domain
	MailgunDomain string `env:"MAILGUN_DOMAIN" envDefault:""`
	// MailgunAPIKey is the Mailgun API key
	MailgunAPIKey string `env:"MAILGUN_API_KEY" envDefault:""`
	// FromEmail is the default from email address
	FromEmail string `env:"EMAIL_FROM_ADDRESS" envDefault:"noreply@example.com"`
	// FromName is the default from name
	FromName string `env:"EMAIL_FROM_NAME" envDefault:"NumiFlow"`
}

// IsConfigured returns true if Mailgun is configured
func (e *EmailConfig) IsConfigured() bool {
	return e.MailgunDomain != "" && e.MailgunAPIKey != ""
}

// TelegramConfig holds the lead notification bot settings
type TelegramConfig struct {
	BotToken   string        `env:"TELEGRAM_BOT_TOKEN" envDefault:""`
	ChatID     string        `env:"TELEGRAM_CHAT_ID" envDefault:""`
	APIBaseURL string        `env:"TELEGRAM_API_BASE_URL" envDefault:"https://api.telegram.org"`
	Timeout    time.Duration `env:"TELEGRAM_TIMEOUT" envDefault:"10s"`
}

// IsConfigured returns true if both the bot token and chat are set
func (t *TelegramConfig) IsConfigured() bool {
	return t.BotToken != "" && t.ChatID != ""
}

// OtelConfig holds OpenTelemetry configuration.
// Tracing is disabled when ExporterEndpoint is empty.
type OtelConfig struct {
	ExporterEndpoint string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	ServiceName      string  `env:"OTEL_SERVICE_NAME" envDefault:"numiflow-website"`
	SamplingRate     float64 `env:"OTEL_SAMPLING_RATE" envDefault:"1.0"`
}

// Enabled returns true when an OTLP endpoint is configured.
func (c OtelConfig) Enabled() bool {
	return c.ExporterEndpoint != ""
}

// LoadDotEnv loads .env files if present. .env.local overrides .env;
// variables already in the environment win over both.
func LoadDotEnv(paths ...string) {
	if len(paths) == 0 {
		paths = []string{".env", ".env.local"}
	}
	for i := len(paths) - 1; i >= 0; i-- {
		_ = godotenv.Load(paths[i])
	}
}

// Parse reads the configuration from the environment
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Contact.RatePerMinute <= 0 {
		return nil, fmt.Errorf("CONTACT_RATE_PER_MINUTE must be positive, got %d", cfg.Contact.RatePerMinute)
	}
	if cfg.Contact.RateBurst <= 0 {
		return nil, fmt.Errorf("CONTACT_RATE_BURST must be positive, got %d", cfg.Contact.RateBurst)
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
		slog.String("addr", cfg.Addr()),
		slog.Bool("mailgun", cfg.Email.Enabled && cfg.Email.IsConfigured()),
		slog.Bool("telegram", cfg.Telegram.IsConfigured()),
		slog.Bool("tracing", cfg.Otel.Enabled()),
	)

	return cfg, nil
}
