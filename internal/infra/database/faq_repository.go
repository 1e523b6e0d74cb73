package database

import (
	"context"
	"database/sql"

	"github.com/rhpartnersafric/website-api/internal/entity"
)

type FAQRepository struct {
	DB *sql.DB
}

func NewFAQRepository(db *sql.DB) *FAQRepository {
	return &FAQRepository{DB: db}
}

func (r *FAQRepository) ListActive(ctx context.Context) ([]*entity.FAQ, error) {
	query := `
		SELECT id, question, answer, "order", is_active, created_at, updated_at
		FROM faqs
		WHERE is_active = TRUE
		ORDER BY "order", question
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var faqs []*entity.FAQ
	for rows.Next() {
		var f entity.FAQ
		if err := rows.Scan(
			&f.ID, &f.Question, &f.Answer, &f.Order,
			&f.IsActive, &f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, err
		}
		faqs = append(faqs, &f)
	}
	return faqs, rows.Err()
}

func (r *FAQRepository) Create(ctx context.Context, f *entity.FAQ) error {
	query := `
		INSERT INTO faqs (id, question, answer, "order", is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.DB.ExecContext(ctx, query,
		f.ID, f.Question, f.Answer, f.Order, f.IsActive, f.CreatedAt, f.UpdatedAt,
	)
	return err
}

func (r *FAQRepository) Update(ctx context.Context, f *entity.FAQ) error {
	query := `
		UPDATE faqs
		SET question = $2, answer = $3, "order" = $4, is_active = $5, updated_at = NOW()
		WHERE id = $1
	`

	res, err := r.DB.ExecContext(ctx, query, f.ID, f.Question, f.Answer, f.Order, f.IsActive)
	if err != nil {
		return err
	}
	return requireRow(res, sql.ErrNoRows)
}

func (r *FAQRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM faqs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, sql.ErrNoRows)
}
