package mailer

import "testing"

func TestMessage_From_WithName(t *testing.T) {
	m := &Message{FromName: "SS Interiors", FromEmail: "studio@example.com"}
	if got := m.From(); got != "SS Interiors <studio@example.com>" {
		t.Errorf("unexpected from header: %q", got)
	}
}

func TestMessage_From_BareAddress(t *testing.T) {
	m := &Message{FromEmail: "studio@example.com"}
	if got := m.From(); got != "studio@example.com" {
		t.Errorf("expected bare address without name, got %q", got)
	}
}
