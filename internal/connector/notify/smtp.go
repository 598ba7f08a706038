package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPMailer sends plain-text mail through a single SMTP relay. Delivery
// guarantees (queueing, retries, bounces) belong to the relay, not to us.
type SMTPMailer struct {
	Addr     string // host:port
	From     string
	Username string
	Password string
}

func (m *SMTPMailer) SendMail(ctx context.Context, to string, subject string, body string) error {
	msg := strings.Join([]string{
		"From: " + m.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		body,
	}, "\r\n")

	var auth smtp.Auth
	if m.Username != "" {
		host := m.Addr
		if i := strings.IndexByte(host, ':'); i >= 0 {
			host = host[:i]
		}
		auth = smtp.PlainAuth("", m.Username, m.Password, host)
	}

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(m.Addr, auth, m.From, []string{to}, []byte(msg))
	}()

	// net/smtp has no context support; honour cancellation ourselves.
	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp relay: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
