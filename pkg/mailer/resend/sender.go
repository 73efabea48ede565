// Package resend delivers notification emails through the Resend API SDK.
package resend

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"

	"github.com/ssinteriors/backend/pkg/mailer"
)

// Sender implements mailer.Sender using the Resend client.
type Sender struct {
	client *resend.Client
}

// New creates a Resend sender authenticated with the given API key.
func New(apiKey string) *Sender {
	return &Sender{client: resend.NewClient(apiKey)}
}

var _ mailer.Sender = (*Sender)(nil)

// Send delivers msg through Resend. The From address must be verified
// with the provider beforehand.
func (s *Sender) Send(ctx context.Context, msg *mailer.Message) error {
	req := &resend.SendEmailRequest{
		From:    msg.From(),
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	}
	if _, err := s.client.Emails.SendWithContext(ctx, req); err != nil {
		return fmt.Errorf("resend: send failed: %w", err)
	}
	return nil
}
