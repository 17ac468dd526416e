package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"slotwatch/internal/services/polling"
)

// Scheduler fires the polling cycle on a fixed interval until stopped.
type Scheduler struct {
	cron     *cron.Cron
	service  *polling.Service
	interval time.Duration
	log      *slog.Logger
}

func New(interval time.Duration, service *polling.Service, log *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		service:  service,
		interval: interval,
		log:      log,
	}
}

// Start registers the repeating cycle and runs the first one immediately,
// so a fresh deploy reports a status without waiting a full interval.
func (s *Scheduler) Start() error {
	spec := fmt.Sprintf("@every %s", s.interval)
	_, err := s.cron.AddFunc(spec, func() {
		s.log.Debug("scheduled cycle triggered")
		s.service.Run(context.Background())
	})
	if err != nil {
		return fmt.Errorf("register schedule %q: %w", spec, err)
	}

	s.cron.Start()
	s.log.Info("polling started", "interval", s.interval)

	go s.service.Run(context.Background())
	return nil
}

// Stop halts future firings and waits for any in-flight cycle to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("polling stopped")
}
