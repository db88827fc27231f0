package notify

import (
	"context"
	"fmt"
	"net/smtp"

	"mystore/internal/config"

	"github.com/rs/zerolog"
)

// smtpMailer delivers mail over plain SMTP with AUTH PLAIN.
type smtpMailer struct {
	addr   string
	auth   smtp.Auth
	from   string
	logger zerolog.Logger
}

// NewMailer builds a Mailer from mail configuration. When mail is disabled
// it returns a NopMailer so callers never branch on the setting.
func NewMailer(cfg config.MailConfig, logger zerolog.Logger) Mailer {
	if !cfg.Enabled {
		return NopMailer{}
	}
	return &smtpMailer{
		addr:   fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		auth:   smtp.PlainAuth("", cfg.From, cfg.Password, cfg.Host),
		from:   cfg.From,
		logger: logger.With().Str("component", "mailer").Logger(),
	}
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		m.from, to, subject, body)

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg))
	}()

	select {
	case err := <-done:
		if err != nil {
			m.logger.Error().Err(err).Str("to", to).Str("subject", subject).Msg("failed to send email")
			return fmt.Errorf("failed to send email: %w", err)
		}
		m.logger.Debug().Str("to", to).Str("subject", subject).Msg("email sent")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
