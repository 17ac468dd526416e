package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultSelector matches a calendar day that has shows and carries at
// least one booking link.
const DefaultSelector = ".day.has-shows a"

type Config struct {
	Env string

	PageURLs     []string
	PollInterval time.Duration
	Selector     string

	HTTPPort string

	Email Email
	Push  Push
}

type Email struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       []string
	Subject  string
}

type Push struct {
	Endpoint  string
	AppKey    string
	AppSecret string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Env:      envOrDefault("APP_ENV", "production"),
		PageURLs: splitList(os.Getenv("CALENDAR_URLS")),
		Selector: envOrDefault("AVAILABILITY_SELECTOR", DefaultSelector),
		HTTPPort: envOrDefault("HTTP_PORT", "3000"),
		Email: Email{
			Host:     os.Getenv("SMTP_HOST"),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     os.Getenv("EMAIL_FROM"),
			To:       splitList(os.Getenv("EMAIL_TO")),
			Subject:  envOrDefault("EMAIL_SUBJECT", "Ticket availability changed"),
		},
		Push: Push{
			Endpoint:  os.Getenv("PUSH_ENDPOINT"),
			AppKey:    os.Getenv("PUSH_APP_KEY"),
			AppSecret: os.Getenv("PUSH_APP_SECRET"),
		},
	}

	interval, err := requiredDuration("POLL_INTERVAL")
	if err != nil {
		return cfg, err
	}
	cfg.PollInterval = interval

	smtpPort, err := envOrInt("SMTP_PORT", 587)
	if err != nil {
		return cfg, err
	}
	cfg.Email.Port = smtpPort

	if len(cfg.PageURLs) == 0 {
		return cfg, errors.New("missing CALENDAR_URLS")
	}

	if !cfg.EmailEnabled() && !cfg.PushEnabled() {
		return cfg, errors.New("no notification channel configured: set SMTP_HOST/EMAIL_TO or PUSH_ENDPOINT/PUSH_APP_KEY")
	}

	return cfg, nil
}

// EmailEnabled reports whether the email channel has enough configuration
// to be wired in.
func (c Config) EmailEnabled() bool {
	return c.Email.Host != "" && len(c.Email.To) > 0
}

// PushEnabled reports whether the push channel has enough configuration to
// be wired in.
func (c Config) PushEnabled() bool {
	return c.Push.Endpoint != "" && c.Push.AppKey != ""
}

func requiredDuration(key string) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return 0, fmt.Errorf("missing %s", key)
	}
	parsed, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if parsed <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive, got %s", key, parsed)
	}
	return parsed, nil
}

func envOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func envOrInt(key string, fallback int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
