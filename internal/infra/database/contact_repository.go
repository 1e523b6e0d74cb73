package database

import (
	"context"
	"database/sql"

	"github.com/rhpartnersafric/website-api/internal/entity"
)

type ContactRequestRepository struct {
	DB *sql.DB
}

func NewContactRequestRepository(db *sql.DB) *ContactRequestRepository {
	return &ContactRequestRepository{DB: db}
}

func (r *ContactRequestRepository) Create(ctx context.Context, c *entity.ContactRequest) error {
	query := `
		INSERT INTO contact_requests (id, full_name, company, email, phone,
		                              service, message, consent, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.DB.ExecContext(ctx, query,
		c.ID, c.FullName, c.Company, c.Email, c.Phone,
		c.Service, c.Message, c.Consent, c.CreatedAt, c.UpdatedAt,
	)
	return err
}

func (r *ContactRequestRepository) List(ctx context.Context) ([]*entity.ContactRequest, error) {
	query := `
		SELECT id, full_name, company, email, phone, service, message, consent,
		       created_at, updated_at
		FROM contact_requests
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*entity.ContactRequest
	for rows.Next() {
		var c entity.ContactRequest
		if err := rows.Scan(
			&c.ID, &c.FullName, &c.Company, &c.Email, &c.Phone,
			&c.Service, &c.Message, &c.Consent, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		requests = append(requests, &c)
	}
	return requests, rows.Err()
}
