// Package notifier owns the last-seen poll result and dispatches
// notifications when the availability status changes.
package notifier

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"slotwatch/internal/model"
	"slotwatch/internal/services/polling"
)

// Channel delivers one notification about a status change.
type Channel interface {
	Name() string
	Notify(ctx context.Context, result *model.PollResult) error
}

// Notifier compares each cycle's result against the last one it stored and
// fires every configured channel on a detected change. The stored result is
// explicit state guarded by a mutex; there is no ambient global.
type Notifier struct {
	log      *slog.Logger
	channels []Channel

	mu   sync.Mutex
	last *model.PollResult
}

func New(log *slog.Logger, channels ...Channel) *Notifier {
	return &Notifier{log: log, channels: channels}
}

// Consume implements polling.Sink.
func (n *Notifier) Consume(ctx context.Context, result *model.PollResult, err error) {
	if err != nil {
		if result == nil {
			n.log.Error("cycle delivered no result", "error", err)
			return
		}
		if errors.Is(err, polling.ErrPartialFailure) {
			n.log.Warn("status is best-effort; not all pages were checked", "error", err)
		}
	}

	n.mu.Lock()
	if n.last == nil {
		// First completed cycle seeds the baseline without notifying.
		seeded := result.Clone()
		n.last = &seeded
		n.mu.Unlock()
		n.log.Info("initial status recorded", "status", result.Status)
		return
	}
	changed := !n.last.Equal(*result)
	if changed {
		updated := result.Clone()
		n.last = &updated
	}
	n.mu.Unlock()

	if !changed {
		n.log.Debug("status unchanged", "status", result.Status)
		return
	}

	n.log.Info("status changed", "status", result.Status)
	for _, ch := range n.channels {
		if err := ch.Notify(ctx, result); err != nil {
			n.log.Error("notification failed", "channel", ch.Name(), "error", err)
		} else {
			n.log.Info("notification sent", "channel", ch.Name())
		}
	}
}

// Last returns a copy of the most recent stored result, or nil before the
// first completed cycle.
func (n *Notifier) Last() *model.PollResult {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.last == nil {
		return nil
	}
	cp := n.last.Clone()
	return &cp
}
