package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ssinteriors/backend/internal/model"
	"github.com/ssinteriors/backend/internal/repository"
	"github.com/ssinteriors/backend/pkg/mailer"
)

// DispatchMode selects when the notification email is sent relative to
// the submission acknowledgment.
type DispatchMode string

const (
	// DispatchBackground acknowledges first and sends afterwards;
	// delivery failures are logged only.
	DispatchBackground DispatchMode = "background"
	// DispatchSync sends before acknowledging; delivery failures fail
	// the submission.
	DispatchSync DispatchMode = "sync"
)

// ErrNoStore is returned by List when persistence is disabled.
var ErrNoStore = errors.New("enquiry store not configured")

// EnquiryServiceConfig carries the sender identity, the business inbox,
// and the dispatch mode.
type EnquiryServiceConfig struct {
	Mode      DispatchMode
	FromName  string
	FromEmail string
	Inbox     string
}

// enquiryServiceImpl is the production implementation of EnquiryService.
type enquiryServiceImpl struct {
	repo   repository.EnquiryRepository // nil when persistence is disabled
	sender mailer.Sender
	cfg    EnquiryServiceConfig

	dispatches sync.WaitGroup
}

// NewEnquiryService creates an EnquiryService. repo may be nil for
// deployments without a store; every other collaborator is required.
func NewEnquiryService(repo repository.EnquiryRepository, sender mailer.Sender, cfg EnquiryServiceConfig) EnquiryService {
	if cfg.Mode != DispatchSync {
		cfg.Mode = DispatchBackground
	}
	return &enquiryServiceImpl{repo: repo, sender: sender, cfg: cfg}
}

// Submit persists the enquiry (when a store is configured), composes the
// notification, and dispatches it. Persistence failure aborts the
// submission before any dispatch attempt.
func (s *enquiryServiceImpl) Submit(ctx context.Context, enq *model.Enquiry) error {
	if s.repo != nil {
		if err := s.repo.Save(ctx, enq); err != nil {
			slog.Error("enquiry persist failed", "error", err)
			return fmt.Errorf("save enquiry: %w", err)
		}
		slog.Info("enquiry stored", "id", enq.ID)
	}

	msg := &mailer.Message{
		FromName:  s.cfg.FromName,
		FromEmail: s.cfg.FromEmail,
		To:        s.cfg.Inbox,
		Subject:   enquirySubject(enq),
		HTML:      enquiryBody(enq, time.Now()),
	}

	if s.cfg.Mode == DispatchSync {
		if err := s.sender.Send(ctx, msg); err != nil {
			slog.Error("enquiry notification failed", "error", err)
			return fmt.Errorf("send notification: %w", err)
		}
		slog.Info("enquiry notification sent", "subject", msg.Subject)
		return nil
	}

	// Background mode: the acknowledgment must not wait on the delivery
	// channel, and ending the request must not cancel an in-flight send.
	// Once dispatch begins it runs to completion or failure.
	sendCtx := context.WithoutCancel(ctx)
	s.dispatches.Add(1)
	go func() {
		defer s.dispatches.Done()
		if err := s.sender.Send(sendCtx, msg); err != nil {
			slog.Error("enquiry notification failed", "error", err)
			return
		}
		slog.Info("enquiry notification sent", "subject", msg.Subject)
	}()
	return nil
}

// List returns all stored enquiries, newest first.
func (s *enquiryServiceImpl) List(ctx context.Context) ([]*model.Enquiry, error) {
	if s.repo == nil {
		return nil, ErrNoStore
	}
	return s.repo.ListAll(ctx)
}

// Wait blocks until all background dispatches have settled.
func (s *enquiryServiceImpl) Wait() {
	s.dispatches.Wait()
}
