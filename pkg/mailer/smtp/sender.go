// Package smtp delivers notification emails through an authenticated
// SMTP relay, in production a Gmail account with an app password.
package smtp

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/ssinteriors/backend/pkg/mailer"
)

// Config holds the SMTP relay account settings.
type Config struct {
	Host     string // e.g. smtp.gmail.com
	Port     string // e.g. 587
	Username string
	Password string // app-level credential, not the account password
}

// Sender implements mailer.Sender over net/smtp.
type Sender struct {
	cfg Config

	// sendMail is smtp.SendMail in production; tests substitute a stub.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// New creates an SMTP sender for the given relay account.
func New(cfg Config) *Sender {
	return &Sender{cfg: cfg, sendMail: smtp.SendMail}
}

var _ mailer.Sender = (*Sender)(nil)

// Send delivers msg in one synchronous attempt. net/smtp has no context
// support, so ctx is checked once up front and the dial then runs to
// completion or failure.
func (s *Sender) Send(ctx context.Context, msg *mailer.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.cfg.Username == "" || s.cfg.Password == "" {
		return fmt.Errorf("smtp: relay credentials not configured")
	}

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := s.cfg.Host + ":" + s.cfg.Port
	if err := s.sendMail(addr, auth, s.cfg.Username, []string{msg.To}, buildMIME(msg)); err != nil {
		return fmt.Errorf("smtp: send failed: %w", err)
	}
	return nil
}

// buildMIME assembles headers and the HTML body into a raw RFC 5322 message.
func buildMIME(msg *mailer.Message) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", msg.From())
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)
	return []byte(b.String())
}
