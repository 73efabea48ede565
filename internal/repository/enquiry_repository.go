package repository

import (
	"context"

	"github.com/ssinteriors/backend/internal/model"
)

// EnquiryRepository defines the persistence interface for enquiries.
// A write either succeeds durably or reports failure; it is never
// silently dropped.
type EnquiryRepository interface {
	// Save inserts a new enquiry record and populates enq.ID and
	// enq.CreatedAt from the database.
	Save(ctx context.Context, enq *model.Enquiry) error

	// ListAll returns every stored enquiry ordered by submission time
	// descending. No pagination by design.
	ListAll(ctx context.Context) ([]*model.Enquiry, error)
}
