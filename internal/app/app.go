package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"slotwatch/internal/config"
	"slotwatch/internal/notifier"
	"slotwatch/internal/scheduler"
	"slotwatch/internal/services/polling"
)

type App struct {
	Config      *config.Config
	Log         *slog.Logger
	Checkers    []polling.PageChecker
	Notifier    *notifier.Notifier
	PollService *polling.Service
	Scheduler   *scheduler.Scheduler
	Server      *http.Server
}

func (a *App) Start() error {
	if err := a.Scheduler.Start(); err != nil {
		return err
	}

	go func() {
		a.Log.Info("HTTP server listening", "addr", a.Server.Addr)
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Log.Error("http server error", "error", err)
			os.Exit(1)
		}
	}()

	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	a.Scheduler.Stop()
	return a.Server.Shutdown(ctx)
}
