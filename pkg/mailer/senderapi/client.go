// Package senderapi delivers notification emails through the Sender.net
// v2 transactional email API. Uses raw HTTP calls (no SDK) to minimize
// external dependencies; the sender address must be verified with the
// provider before it will accept mail.
package senderapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ssinteriors/backend/pkg/mailer"
)

// DefaultBaseURL is the production Sender.net v2 API root.
const DefaultBaseURL = "https://api.sender.net/v2"

// ErrNotConfigured is returned when no API token is set.
var ErrNotConfigured = errors.New("senderapi: api token not configured")

// Sender implements mailer.Sender against the Sender.net HTTP API.
type Sender struct {
	APIToken   string
	BaseURL    string // overridable for tests
	httpClient *http.Client
}

// New creates a Sender.net client authenticated with the given bearer token.
func New(apiToken string) *Sender {
	return &Sender{
		APIToken:   apiToken,
		BaseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

var _ mailer.Sender = (*Sender)(nil)

type address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sendRequest struct {
	From    address   `json:"from"`
	To      []address `json:"to"`
	Subject string    `json:"subject"`
	HTML    string    `json:"html"`
}

type sendResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Send POSTs msg to /email and decodes the JSON response. One attempt,
// no retry.
func (s *Sender) Send(ctx context.Context, msg *mailer.Message) error {
	if s.APIToken == "" {
		return ErrNotConfigured
	}

	payload, err := json.Marshal(sendRequest{
		From:    address{Email: msg.FromEmail, Name: msg.FromName},
		To:      []address{{Email: msg.To}},
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
	if err != nil {
		return fmt.Errorf("senderapi: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+"/email", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("senderapi: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.APIToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("senderapi: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("senderapi: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("senderapi: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var decoded sendResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return fmt.Errorf("senderapi: decode response: %w", err)
	}
	if !decoded.Success && decoded.Message != "" {
		return fmt.Errorf("senderapi: rejected: %s", decoded.Message)
	}
	return nil
}
