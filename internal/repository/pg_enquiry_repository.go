package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ssinteriors/backend/internal/model"
)

// PgEnquiryRepository is the PostgreSQL implementation of EnquiryRepository.
type PgEnquiryRepository struct {
	pool *pgxpool.Pool
}

// NewPgEnquiryRepository creates a PgEnquiryRepository backed by the given pool.
func NewPgEnquiryRepository(pool *pgxpool.Pool) *PgEnquiryRepository {
	return &PgEnquiryRepository{pool: pool}
}

// Ensure PgEnquiryRepository implements EnquiryRepository at compile time.
var _ EnquiryRepository = (*PgEnquiryRepository)(nil)

// Save inserts a new enquiries row and populates enq.ID and enq.CreatedAt
// from the database RETURNING clause.
func (r *PgEnquiryRepository) Save(ctx context.Context, enq *model.Enquiry) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO enquiries
		     (name, email, phone, project_type, house_type, budget, location, timeline, description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at`,
		enq.Name, enq.Email, enq.Phone, enq.ProjectType, enq.HouseType,
		string(enq.Budget), enq.Location, string(enq.Timeline), string(enq.Description),
	).Scan(&enq.ID, &enq.CreatedAt)
}

// ListAll returns all enquiries, newest first.
func (r *PgEnquiryRepository) ListAll(ctx context.Context) ([]*model.Enquiry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, phone, project_type, house_type,
		        budget, location, timeline, description, created_at
		 FROM enquiries
		 ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enquiries []*model.Enquiry
	for rows.Next() {
		var e model.Enquiry
		var budget, timeline, description string
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.ProjectType, &e.HouseType,
			&budget, &e.Location, &timeline, &description, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Budget = model.OptionalText(budget)
		e.Timeline = model.OptionalText(timeline)
		e.Description = model.OptionalText(description)
		enquiries = append(enquiries, &e)
	}
	return enquiries, rows.Err()
}
