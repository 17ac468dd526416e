package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"slotwatch/internal/config"
	"slotwatch/internal/model"
)

// PushChannel posts status-change notifications to an outbound push
// service. Messages go through a buffered queue drained by a single
// worker, so a slow push endpoint never blocks the polling cycle.
type PushChannel struct {
	cfg config.Push
	log *slog.Logger

	client       *http.Client
	queue        chan string
	minInterval  time.Duration
	lastSentTime time.Time
}

func NewPushChannel(cfg config.Push, log *slog.Logger) *PushChannel {
	p := &PushChannel{
		cfg:         cfg,
		log:         log,
		client:      &http.Client{Timeout: 15 * time.Second},
		queue:       make(chan string, 100),
		minInterval: 1200 * time.Millisecond,
	}

	go p.worker()
	return p
}

func (p *PushChannel) Name() string {
	return "push"
}

func (p *PushChannel) Notify(_ context.Context, result *model.PollResult) error {
	message := formatPushMessage(result)
	select {
	case p.queue <- message:
		return nil
	default:
		return errors.New("push queue is full")
	}
}

func (p *PushChannel) worker() {
	for msg := range p.queue {
		p.sendWithRateLimit(msg)
	}
}

func (p *PushChannel) sendWithRateLimit(text string) {
	wait := time.Until(p.lastSentTime.Add(p.minInterval))
	if wait > 0 {
		time.Sleep(wait)
	}

	retryAfter, err := p.postMessage(text)
	if err != nil {
		if retryAfter > 0 {
			p.log.Warn("push rate limit hit; retrying", "after", retryAfter)
			time.Sleep(retryAfter)
			if _, retryErr := p.postMessage(text); retryErr != nil {
				p.log.Error("push retry failed", "error", retryErr)
				return
			}
			p.lastSentTime = time.Now()
			return
		}

		p.log.Error("push send failed", "error", err)
		return
	}

	p.lastSentTime = time.Now()
}

func (p *PushChannel) postMessage(text string) (time.Duration, error) {
	payload := map[string]any{
		"app_key":     p.cfg.AppKey,
		"app_secret":  p.cfg.AppSecret,
		"target_type": "app",
		"content":     text,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequest(http.MethodPost, p.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	var parsed pushResponse
	_ = json.NewDecoder(resp.Body).Decode(&parsed)

	if resp.StatusCode == http.StatusTooManyRequests && parsed.RetryAfter > 0 {
		return time.Duration(parsed.RetryAfter) * time.Second, errors.New("rate limited")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("push service error: %d %s", resp.StatusCode, parsed.Error.Message)
	}

	return 0, nil
}

type pushResponse struct {
	RetryAfter int `json:"retry_after"`
	Error      struct {
		Message string `json:"message"`
	} `json:"error"`
}

func formatPushMessage(result *model.PollResult) string {
	if result.Status == model.StatusAvailable {
		return "Tickets are available! At least one time slot is bookable right now."
	}
	return "Tickets are no longer available."
}
