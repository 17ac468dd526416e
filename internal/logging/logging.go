// Package logging sets up the process-wide structured logger.
package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

const envLocal = "local"

// Setup returns a slog.Logger for the given environment: a colorized,
// debug-level handler for local development, JSON at info level otherwise.
func Setup(env string, w io.Writer) *slog.Logger {
	if env == envLocal {
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
		}))
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}
