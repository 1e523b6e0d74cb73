package database

import (
	"context"
	"database/sql"

	"github.com/rhpartnersafric/website-api/internal/entity"
)

type TestimonialRepository struct {
	DB *sql.DB
}

func NewTestimonialRepository(db *sql.DB) *TestimonialRepository {
	return &TestimonialRepository{DB: db}
}

// ListActive retourne les témoignages actifs, les plus récents d'abord à
// ordre égal, limités au nombre demandé (la home en affiche 4).
func (r *TestimonialRepository) ListActive(ctx context.Context, limit int) ([]*entity.Testimonial, error) {
	query := `
		SELECT id, full_name, initials, role, company, quote, rating,
		       "order", is_active, created_at, updated_at
		FROM testimonials
		WHERE is_active = TRUE
		ORDER BY "order", created_at DESC
		LIMIT $1
	`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var testimonials []*entity.Testimonial
	for rows.Next() {
		var t entity.Testimonial
		if err := rows.Scan(
			&t.ID, &t.FullName, &t.Initials, &t.Role, &t.Company, &t.Quote,
			&t.Rating, &t.Order, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		testimonials = append(testimonials, &t)
	}
	return testimonials, rows.Err()
}

func (r *TestimonialRepository) Create(ctx context.Context, t *entity.Testimonial) error {
	query := `
		INSERT INTO testimonials (id, full_name, initials, role, company, quote,
		                          rating, "order", is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.DB.ExecContext(ctx, query,
		t.ID, t.FullName, t.Initials, t.Role, t.Company, t.Quote,
		t.Rating, t.Order, t.IsActive, t.CreatedAt, t.UpdatedAt,
	)
	return err
}

func (r *TestimonialRepository) Update(ctx context.Context, t *entity.Testimonial) error {
	query := `
		UPDATE testimonials
		SET full_name = $2, initials = $3, role = $4, company = $5, quote = $6,
		    rating = $7, "order" = $8, is_active = $9, updated_at = NOW()
		WHERE id = $1
	`

	res, err := r.DB.ExecContext(ctx, query,
		t.ID, t.FullName, t.Initials, t.Role, t.Company, t.Quote,
		t.Rating, t.Order, t.IsActive,
	)
	if err != nil {
		return err
	}
	return requireRow(res, sql.ErrNoRows)
}

func (r *TestimonialRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, sql.ErrNoRows)
}
