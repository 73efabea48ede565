package service

import (
	"context"

	"github.com/ssinteriors/backend/internal/model"
)

// EnquiryService defines the business logic for enquiry submissions.
type EnquiryService interface {
	// Submit accepts a new enquiry: it persists the record when a store
	// is configured, composes the notification email, and dispatches it
	// through the configured delivery channel according to the dispatch
	// mode. In background mode a nil return only acknowledges receipt
	// (and persistence); delivery failures are logged, not surfaced.
	Submit(ctx context.Context, enq *model.Enquiry) error

	// List returns all stored enquiries, newest first. It fails when the
	// deployment runs without a store.
	List(ctx context.Context) ([]*model.Enquiry, error)

	// Wait blocks until every background notification dispatch has
	// settled, so outcomes are logged before the process exits.
	Wait()
}
