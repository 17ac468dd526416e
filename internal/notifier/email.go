package notifier

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"slotwatch/internal/config"
	"slotwatch/internal/model"
)

// EmailChannel sends status-change notifications over SMTP.
type EmailChannel struct {
	cfg   config.Email
	auth  smtp.Auth
	pages []string
	send  func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
	now   func() time.Time
}

func NewEmailChannel(cfg config.Email, pages []string) *EmailChannel {
	return &EmailChannel{
		cfg:   cfg,
		auth:  smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host),
		pages: pages,
		send:  smtp.SendMail,
		now:   time.Now,
	}
}

func (e *EmailChannel) Name() string {
	return "email"
}

func (e *EmailChannel) Notify(_ context.Context, result *model.PollResult) error {
	message := e.buildMessage(e.buildBody(result))
	addr := fmt.Sprintf("%s:%d", e.cfg.Host, e.cfg.Port)

	if err := e.send(addr, e.auth, e.cfg.From, e.cfg.To, []byte(message)); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}

func (e *EmailChannel) buildBody(result *model.PollResult) string {
	var sb strings.Builder

	switch result.Status {
	case model.StatusAvailable:
		sb.WriteString("Tickets are available! At least one time slot is bookable right now.\n\n")
	default:
		sb.WriteString("Tickets are no longer available. Every time slot is gone.\n\n")
	}

	sb.WriteString("Booking page")
	if len(e.pages) > 1 {
		sb.WriteString("s")
	}
	sb.WriteString(":\n")
	for _, page := range e.pages {
		sb.WriteString("  " + page + "\n")
	}

	sb.WriteString(fmt.Sprintf("\nChecked at: %s\n", e.now().Format("2006-01-02 15:04:05")))
	return sb.String()
}

func (e *EmailChannel) buildMessage(body string) string {
	var message strings.Builder
	message.WriteString(fmt.Sprintf("From: %s\r\n", e.cfg.From))
	message.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(e.cfg.To, ", ")))
	message.WriteString(fmt.Sprintf("Subject: %s\r\n", e.cfg.Subject))
	message.WriteString("MIME-Version: 1.0\r\n")
	message.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	message.WriteString("\r\n")
	message.WriteString(body)
	return message.String()
}
