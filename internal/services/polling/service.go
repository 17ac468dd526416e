package polling

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"slotwatch/internal/model"
)

var (
	// ErrAllChecksFailed marks a cycle in which no page could be checked.
	// It is delivered instead of a result: "could not check" must never
	// masquerade as "checked and found nothing".
	ErrAllChecksFailed = errors.New("all page checks failed")

	// ErrPartialFailure marks a cycle in which some pages failed. It is
	// delivered alongside the best-effort result built from the pages that
	// succeeded.
	ErrPartialFailure = errors.New("some page checks failed")
)

// Service runs one polling cycle at a time: fan out all page checks,
// aggregate their signals, hand the sink exactly one outcome.
type Service struct {
	log      *slog.Logger
	checkers []PageChecker
	sink     Sink

	mu      sync.Mutex
	running bool
}

func NewService(log *slog.Logger, checkers []PageChecker, sink Sink) *Service {
	return &Service{log: log, checkers: checkers, sink: sink}
}

// Run executes one cycle and delivers its outcome to the sink. If a
// previous cycle is still in flight the call is skipped, which keeps
// cycles serialized and results in schedule order.
func (s *Service) Run(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		s.log.Info("cycle already running; skipping")
		return
	}
	s.running = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	result, err := s.cycle(ctx)
	if err != nil {
		if result == nil {
			s.log.Error("cycle failed", "error", err)
		} else {
			s.log.Warn("cycle completed with failed pages", "error", err, "status", result.Status)
		}
	} else {
		s.log.Info("cycle completed", "status", result.Status)
	}

	s.sink.Consume(ctx, result, err)
}

// cycle checks every configured page concurrently and aggregates the
// signals. One page's failure never prevents the others from being
// attempted; a failed page aggregates as false.
func (s *Service) cycle(ctx context.Context) (*model.PollResult, error) {
	outcomes := make(chan model.PageCheckOutcome, len(s.checkers))
	group, gctx := errgroup.WithContext(ctx)

	for _, checker := range s.checkers {
		ch := checker
		group.Go(func() error {
			available, err := ch.Check(gctx)
			if err != nil {
				s.log.Warn("page check failed", "page", ch.Page(), "error", err)
				outcomes <- model.PageCheckOutcome{Page: ch.Page(), Err: err}
				return nil
			}
			s.log.Debug("page checked", "page", ch.Page(), "available", available)
			outcomes <- model.PageCheckOutcome{Page: ch.Page(), Available: available}
			return nil
		})
	}

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		s.log.Warn("check group error", "error", err)
	}
	close(outcomes)

	var (
		anyAvailable bool
		pageErrs     []error
		attempted    int
	)
	for outcome := range outcomes {
		attempted++
		if outcome.Err != nil {
			pageErrs = append(pageErrs, fmt.Errorf("page %s: %w", outcome.Page, outcome.Err))
			continue
		}
		if outcome.Available {
			anyAvailable = true
		}
	}

	if attempted > 0 && len(pageErrs) == attempted {
		return nil, errors.Join(append([]error{ErrAllChecksFailed}, pageErrs...)...)
	}

	result := &model.PollResult{Status: model.StatusUnavailable}
	if anyAvailable {
		result.Status = model.StatusAvailable
	}

	if len(pageErrs) > 0 {
		return result, errors.Join(append([]error{ErrPartialFailure}, pageErrs...)...)
	}
	return result, nil
}
