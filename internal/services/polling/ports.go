package polling

import (
	"context"

	"slotwatch/internal/model"
)

// PageChecker fetches one page and extracts its availability signal.
type PageChecker interface {
	Page() string
	Check(ctx context.Context) (bool, error)
}

// Sink receives exactly one call per completed cycle. A total failure
// delivers a nil result and a non-nil error; a partial failure delivers
// both a best-effort result and a non-nil error.
type Sink interface {
	Consume(ctx context.Context, result *model.PollResult, err error)
}
