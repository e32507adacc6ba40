package sender

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/webforgehq/outreach/internal/config"
)

// smtpTransport dials the configured SMTP host directly through gomail.
// Plain SMTP has no provider-side rate controls, so the email sender paces
// this backend more conservatively than the bulk one.
type smtpTransport struct {
	dialer *gomail.Dialer
}

func NewSMTPTransport(cfg config.SMTPConfig) EmailTransport {
	return &smtpTransport{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
	}
}

func (t *smtpTransport) Name() string {
	return "smtp"
}

func (t *smtpTransport) Send(ctx context.Context, req EmailRequest) error {
	if req.To == "" {
		return fmt.Errorf("smtp send: invalid recipient: empty address")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", req.From)
	m.SetHeader("To", req.To)
	m.SetHeader("Subject", req.Subject)
	m.SetBody("text/plain", req.Text)
	m.AddAlternative("text/html", req.HTML)

	// gomail has no context support; the dialer's own timeouts bound the
	// call, the select just honors an already-canceled context.
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := t.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}

	return nil
}
