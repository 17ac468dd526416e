package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotwatch/internal/config"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("POLL_INTERVAL", "5m")
	t.Setenv("CALENDAR_URLS", "https://tickets.example.com/calendar")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("EMAIL_TO", "fan@example.com")
}

func TestLoad(t *testing.T) {
	t.Run("success with defaults", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := config.Load()

		require.NoError(t, err)
		assert.Equal(t, 5*time.Minute, cfg.PollInterval)
		assert.Equal(t, []string{"https://tickets.example.com/calendar"}, cfg.PageURLs)
		assert.Equal(t, config.DefaultSelector, cfg.Selector)
		assert.Equal(t, "3000", cfg.HTTPPort)
		assert.Equal(t, "production", cfg.Env)
		assert.Equal(t, 587, cfg.Email.Port)
		assert.True(t, cfg.EmailEnabled())
		assert.False(t, cfg.PushEnabled())
	})

	t.Run("multiple page urls are split and trimmed", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("CALENDAR_URLS", "https://a.example.com/cal, https://b.example.com/cal ,")

		cfg, err := config.Load()

		require.NoError(t, err)
		assert.Equal(t, []string{"https://a.example.com/cal", "https://b.example.com/cal"}, cfg.PageURLs)
	})

	t.Run("missing interval fails", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("POLL_INTERVAL", "")

		_, err := config.Load()

		require.Error(t, err)
		assert.ErrorContains(t, err, "missing POLL_INTERVAL")
	})

	t.Run("unparseable interval fails", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("POLL_INTERVAL", "five minutes")

		_, err := config.Load()

		require.Error(t, err)
		assert.ErrorContains(t, err, "invalid POLL_INTERVAL")
	})

	t.Run("non-positive interval fails", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("POLL_INTERVAL", "-10s")

		_, err := config.Load()

		require.Error(t, err)
		assert.ErrorContains(t, err, "must be positive")
	})

	t.Run("missing calendar urls fails", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("CALENDAR_URLS", "")

		_, err := config.Load()

		require.Error(t, err)
		assert.ErrorContains(t, err, "missing CALENDAR_URLS")
	})

	t.Run("no notification channel fails", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("SMTP_HOST", "")
		t.Setenv("EMAIL_TO", "")

		_, err := config.Load()

		require.Error(t, err)
		assert.ErrorContains(t, err, "no notification channel configured")
	})

	t.Run("push channel alone is enough", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("SMTP_HOST", "")
		t.Setenv("EMAIL_TO", "")
		t.Setenv("PUSH_ENDPOINT", "https://push.example.com/1/push")
		t.Setenv("PUSH_APP_KEY", "app-key")
		t.Setenv("PUSH_APP_SECRET", "app-secret")

		cfg, err := config.Load()

		require.NoError(t, err)
		assert.False(t, cfg.EmailEnabled())
		assert.True(t, cfg.PushEnabled())
	})

	t.Run("invalid smtp port fails", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("SMTP_PORT", "not-a-port")

		_, err := config.Load()

		require.Error(t, err)
		assert.ErrorContains(t, err, "invalid SMTP_PORT")
	})
}
