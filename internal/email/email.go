// AngelaMos | 2026
// email.go

// Package email wraps the transactional-email provider. Everything upstream
// depends on the Sender interface so handlers can be tested without Resend.
package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ErrNotConfigured is returned when no provider API key is set; the
// notification endpoints surface it as a 500.
var ErrNotConfigured = errors.New("email provider not configured")

type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type ResendSender struct {
	client *resend.Client
}

func NewResendSender(apiKey string) *ResendSender {
	if apiKey == "" {
		return nil
	}
	return &ResendSender{client: resend.NewClient(apiKey)}
}

func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	return nil
}
