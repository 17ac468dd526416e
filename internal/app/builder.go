package app

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"slotwatch/internal/config"
	"slotwatch/internal/httpapi"
	"slotwatch/internal/logging"
	"slotwatch/internal/notifier"
	"slotwatch/internal/providers/calendar"
	"slotwatch/internal/scheduler"
	"slotwatch/internal/services/polling"
)

type Builder struct {
	cfg *config.Config

	log      *slog.Logger
	client   *http.Client
	checkers []polling.PageChecker
	channels []notifier.Channel
	sink     *notifier.Notifier

	scheduler *scheduler.Scheduler
	server    *http.Server
}

type BuilderOption func(*Builder)

func NewBuilder(cfg *config.Config, options ...BuilderOption) *Builder {
	builder := &Builder{cfg: cfg}
	for _, option := range options {
		option(builder)
	}
	return builder
}

func WithLogger(log *slog.Logger) BuilderOption {
	return func(b *Builder) {
		b.log = log
	}
}

func WithHTTPClient(client *http.Client) BuilderOption {
	return func(b *Builder) {
		b.client = client
	}
}

func WithCheckers(checkers []polling.PageChecker) BuilderOption {
	return func(b *Builder) {
		b.checkers = checkers
	}
}

func WithChannels(channels []notifier.Channel) BuilderOption {
	return func(b *Builder) {
		b.channels = channels
	}
}

func WithScheduler(scheduler *scheduler.Scheduler) BuilderOption {
	return func(b *Builder) {
		b.scheduler = scheduler
	}
}

func WithHTTPServer(server *http.Server) BuilderOption {
	return func(b *Builder) {
		b.server = server
	}
}

func (b *Builder) Build() (*App, error) {
	if b.cfg == nil {
		return nil, errors.New("config is required")
	}

	if b.log == nil {
		b.log = logging.Setup(b.cfg.Env, os.Stdout)
	}

	app := &App{Config: b.cfg, Log: b.log}

	if b.client == nil {
		b.client = &http.Client{Timeout: 15 * time.Second}
	}

	if b.checkers == nil {
		checkers := make([]polling.PageChecker, 0, len(b.cfg.PageURLs))
		for _, pageURL := range b.cfg.PageURLs {
			checkers = append(checkers, calendar.NewChecker(b.client, pageURL, b.cfg.Selector))
		}
		b.checkers = checkers
	}
	app.Checkers = b.checkers

	if b.channels == nil {
		if b.cfg.EmailEnabled() {
			b.channels = append(b.channels, notifier.NewEmailChannel(b.cfg.Email, b.cfg.PageURLs))
		}
		if b.cfg.PushEnabled() {
			b.channels = append(b.channels, notifier.NewPushChannel(b.cfg.Push, b.log))
		}
	}

	if b.sink == nil {
		b.sink = notifier.New(b.log, b.channels...)
	}
	app.Notifier = b.sink

	app.PollService = polling.NewService(b.log, app.Checkers, app.Notifier)

	if b.scheduler == nil {
		b.scheduler = scheduler.New(b.cfg.PollInterval, app.PollService, b.log)
	}
	app.Scheduler = b.scheduler

	if b.server == nil {
		handler := httpapi.NewHandler(app.PollService, app.Notifier)
		b.server = &http.Server{
			Addr:              ":" + b.cfg.HTTPPort,
			Handler:           handler.Router(),
			ReadHeaderTimeout: 5 * time.Second,
		}
	}
	app.Server = b.server

	return app, nil
}
