// Package config loads runtime configuration from the environment.
//
// Load order:
//  1. Load a .env file via godotenv (non-fatal if absent).
//  2. Process envconfig tags to populate the Config struct.
//  3. Validate the populated struct.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime settings.
type Config struct {
	// SMTP delivery. Credentials are only required when sending email;
	// dry runs work without them.
	SMTPHost       string `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	SMTPPort       int    `envconfig:"SMTP_PORT" default:"587" validate:"min=1,max=65535"`
	SenderEmail    string `envconfig:"SMTP_SENDER_EMAIL" validate:"omitempty,email"`
	SenderPassword string `envconfig:"SMTP_PASSWORD"`
	RecipientEmail string `envconfig:"SMTP_RECIPIENT_EMAIL" validate:"omitempty,email"`

	// Forecast run shape.
	ForecastDays     int    `envconfig:"FORECAST_DAYS" default:"5" validate:"min=1,max=14"`
	StartHour        int    `envconfig:"START_HOUR" default:"9" validate:"min=0,max=23"`
	EndHour          int    `envconfig:"END_HOUR" default:"16" validate:"min=1,max=24,gtfield=StartHour"`
	Timezone         string `envconfig:"TIMEZONE" default:"Europe/Zurich"`
	FetchConcurrency int    `envconfig:"FETCH_CONCURRENCY" default:"4" validate:"min=1,max=32"`

	// ResortsFile optionally overrides the built-in resort list with a
	// YAML file.
	ResortsFile string `envconfig:"RESORTS_FILE"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=trace debug info warn error"`
}

// Load reads configuration from the environment, with a .env file as a
// non-overriding fallback.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("processing environment configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating configuration: %w", err)
	}

	return &cfg, nil
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// CanEmail reports whether enough SMTP settings are present to send.
func (c *Config) CanEmail() bool {
	return c.SenderEmail != "" && c.SenderPassword != "" && c.RecipientEmail != ""
}
