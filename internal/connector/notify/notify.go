// Package notify holds the outbound delivery seam for OTP codes. The actual
// transport mechanics (WhatsApp gateway, SMTP relay) live behind small
// interfaces so the core never learns how a code travels.
package notify

import (
	"context"
	"fmt"
	"log/slog"
)

// Messenger delivers a short text message to a phone-like handle.
type Messenger interface {
	SendMessage(ctx context.Context, to string, body string) error
}

// Mailer delivers a plain-text email.
type Mailer interface {
	SendMail(ctx context.Context, to string, subject string, body string) error
}

// DevSink satisfies both interfaces by logging the payload instead of
// sending it. It is the default transport when no gateway or SMTP relay is
// configured, which keeps local development self-contained.
type DevSink struct {
	Logger *slog.Logger
}

func (d *DevSink) SendMessage(ctx context.Context, to string, body string) error {
	d.Logger.Info("dev sink: message delivery", "to", to, "body", body)
	return nil
}

func (d *DevSink) SendMail(ctx context.Context, to string, subject string, body string) error {
	d.Logger.Info("dev sink: mail delivery", "to", to, "subject", subject, "body", body)
	return nil
}

// OTPMessage renders the delivery text for a challenge code.
func OTPMessage(code string) string {
	return fmt.Sprintf("Your Job Connector verification code is %s. It expires in a few minutes.", code)
}
