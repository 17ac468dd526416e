package app_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotwatch/internal/app"
	"slotwatch/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Env:          "production",
		PageURLs:     []string{"https://tickets.example.com/calendar", "https://tickets.example.com/other"},
		PollInterval: time.Minute,
		Selector:     config.DefaultSelector,
		HTTPPort:     "3000",
		Email: config.Email{
			Host: "smtp.example.com",
			Port: 587,
			From: "watcher@example.com",
			To:   []string{"fan@example.com"},
		},
	}
}

func TestBuilderBuild(t *testing.T) {
	t.Run("wires defaults from config", func(t *testing.T) {
		builder := app.NewBuilder(testConfig(), app.WithHTTPClient(&http.Client{}))

		application, err := builder.Build()

		require.NoError(t, err)
		assert.Len(t, application.Checkers, 2)
		assert.NotNil(t, application.Notifier)
		assert.NotNil(t, application.PollService)
		assert.NotNil(t, application.Scheduler)
		require.NotNil(t, application.Server)
		assert.Equal(t, ":3000", application.Server.Addr)
	})

	t.Run("nil config is rejected", func(t *testing.T) {
		_, err := app.NewBuilder(nil).Build()

		require.Error(t, err)
		assert.ErrorContains(t, err, "config is required")
	})

	t.Run("injected server is kept", func(t *testing.T) {
		server := &http.Server{Addr: ":9999"}
		builder := app.NewBuilder(testConfig(), app.WithHTTPServer(server))

		application, err := builder.Build()

		require.NoError(t, err)
		assert.Same(t, server, application.Server)
	})
}
