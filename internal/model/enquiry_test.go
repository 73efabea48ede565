package model

import "testing"

func TestOptionalText_OrDefault_Empty(t *testing.T) {
	var o OptionalText
	if got := o.OrDefault(NotSpecified); got != NotSpecified {
		t.Errorf("expected %q for empty field, got %q", NotSpecified, got)
	}
}

func TestOptionalText_OrDefault_Present(t *testing.T) {
	o := OptionalText("2-3 months")
	if got := o.OrDefault(NotSpecified); got != "2-3 months" {
		t.Errorf("expected field value to win over fallback, got %q", got)
	}
}

func TestOptionalText_OrDefault_WhitespaceIsAValue(t *testing.T) {
	// Only the empty string falls back; whitespace passes through as-is,
	// matching the original form behavior.
	o := OptionalText(" ")
	if got := o.OrDefault(NotSpecified); got != " " {
		t.Errorf("expected whitespace preserved, got %q", got)
	}
}
