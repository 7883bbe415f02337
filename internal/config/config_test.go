package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pistepick/pistepick/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "smtp.gmail.com", cfg.SMTPHost)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, 5, cfg.ForecastDays)
	assert.Equal(t, 9, cfg.StartHour)
	assert.Equal(t, 16, cfg.EndHour)
	assert.Equal(t, "Europe/Zurich", cfg.Timezone)
	assert.Equal(t, 4, cfg.FetchConcurrency)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.CanEmail())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("FORECAST_DAYS", "3")
	t.Setenv("START_HOUR", "8")
	t.Setenv("END_HOUR", "17")
	t.Setenv("SMTP_SENDER_EMAIL", "reports@example.com")
	t.Setenv("SMTP_PASSWORD", "secret")
	t.Setenv("SMTP_RECIPIENT_EMAIL", "skier@example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.ForecastDays)
	assert.Equal(t, 8, cfg.StartHour)
	assert.Equal(t, 17, cfg.EndHour)
	assert.True(t, cfg.CanEmail())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"days out of range", "FORECAST_DAYS", "0"},
		{"start hour out of range", "START_HOUR", "24"},
		{"end before start", "END_HOUR", "8"},
		{"bad sender address", "SMTP_SENDER_EMAIL", "not-an-email"},
		{"bad log level", "LOG_LEVEL", "verbose"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := config.Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validating configuration")
		})
	}
}

func TestLoadRejectsUnparsableValues(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-number")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "processing environment configuration")
}

func TestLocation(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Zurich", loc.String())

	cfg.Timezone = "Not/AZone"
	_, err = cfg.Location()
	assert.Error(t, err)
}
