// Package mailer abstracts outbound email delivery behind a single
// Sender interface so the enquiry workflow never touches provider SDKs
// or wire formats directly.
package mailer

import (
	"context"
	"fmt"
)

// Message is a fully-prepared notification email. To is a single fixed
// recipient, the business inbox.
type Message struct {
	FromName  string
	FromEmail string
	To        string
	Subject   string
	HTML      string
}

// From returns the sender in RFC 5322 "Name <email>" form, or the bare
// address when no name is set.
func (m *Message) From() string {
	if m.FromName == "" {
		return m.FromEmail
	}
	return fmt.Sprintf("%s <%s>", m.FromName, m.FromEmail)
}

// Sender is implemented by each delivery channel. Send performs a single
// delivery attempt and returns a descriptive error on failure. Channels
// never retry; timeouts are the channel's own defaults.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}
