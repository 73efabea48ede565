package smtp

import (
	"context"
	"net/smtp"
	"strings"
	"testing"

	"github.com/ssinteriors/backend/pkg/mailer"
)

func testMessage() *mailer.Message {
	return &mailer.Message{
		FromName:  "SS Interiors",
		FromEmail: "studio@example.com",
		To:        "enquiries@example.com",
		Subject:   "New Interior Design Enquiry - Asha",
		HTML:      "<h2>New Enquiry</h2>",
	}
}

func TestSender_Send(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	s := New(Config{Host: "smtp.gmail.com", Port: "587", Username: "relay@example.com", Password: "app-pass"})
	s.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	if err := s.Send(context.Background(), testMessage()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAddr != "smtp.gmail.com:587" {
		t.Errorf("unexpected relay address: %q", gotAddr)
	}
	if gotFrom != "relay@example.com" {
		t.Errorf("expected envelope sender to be the relay account, got %q", gotFrom)
	}
	if len(gotTo) != 1 || gotTo[0] != "enquiries@example.com" {
		t.Errorf("unexpected recipients: %v", gotTo)
	}

	raw := string(gotMsg)
	for _, want := range []string{
		"From: SS Interiors <studio@example.com>\r\n",
		"To: enquiries@example.com\r\n",
		"Subject: New Interior Design Enquiry - Asha\r\n",
		"Content-Type: text/html; charset=\"UTF-8\"\r\n",
		"\r\n\r\n<h2>New Enquiry</h2>",
	} {
		if !strings.Contains(raw, want) {
			t.Errorf("expected MIME message to contain %q:\n%s", want, raw)
		}
	}
}

func TestSender_Send_MissingCredentials(t *testing.T) {
	s := New(Config{Host: "smtp.gmail.com", Port: "587"})
	s.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		t.Error("expected no dial attempt without credentials")
		return nil
	}

	if err := s.Send(context.Background(), testMessage()); err == nil {
		t.Error("expected error for missing credentials")
	}
}

func TestSender_Send_CanceledContext(t *testing.T) {
	s := New(Config{Host: "smtp.gmail.com", Port: "587", Username: "u", Password: "p"})
	s.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		t.Error("expected no dial attempt on canceled context")
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Send(ctx, testMessage()); err == nil {
		t.Error("expected context error")
	}
}
