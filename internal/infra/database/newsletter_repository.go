package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rhpartnersafric/website-api/internal/entity"
)

type NewsletterSubscriberRepository struct {
	DB *sql.DB
}

func NewNewsletterSubscriberRepository(db *sql.DB) *NewsletterSubscriberRepository {
	return &NewsletterSubscriberRepository{DB: db}
}

// Subscribe insère l'abonné ou réactive la ligne existante en une seule
// écriture conditionnelle: pas de lecture préalable, donc pas de course
// possible entre deux soumissions identiques. Le full_name existant est
// conservé, seule is_active repasse à TRUE.
func (r *NewsletterSubscriberRepository) Subscribe(ctx context.Context, sub *entity.NewsletterSubscriber) error {
	query := `
		INSERT INTO newsletter_subscribers (id, email, full_name, is_active, created_at)
		VALUES ($1, $2, $3, TRUE, NOW())
		ON CONFLICT (email)
		DO UPDATE SET is_active = TRUE
		RETURNING id, full_name, is_active, created_at
	`

	return r.DB.QueryRowContext(
		ctx,
		query,
		sub.ID,
		sub.Email,
		sub.FullName,
	).Scan(
		&sub.ID,
		&sub.FullName,
		&sub.IsActive,
		&sub.CreatedAt,
	)
}

func (r *NewsletterSubscriberRepository) FindByEmail(ctx context.Context, email string) (*entity.NewsletterSubscriber, error) {
	query := `
		SELECT id, email, full_name, is_active, created_at
		FROM newsletter_subscribers
		WHERE email = $1
	`

	var s entity.NewsletterSubscriber
	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&s.ID, &s.Email, &s.FullName, &s.IsActive, &s.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListActive sert au fan-out des campagnes: un email par abonné actif.
func (r *NewsletterSubscriberRepository) ListActive(ctx context.Context) ([]*entity.NewsletterSubscriber, error) {
	query := `
		SELECT id, email, full_name, is_active, created_at
		FROM newsletter_subscribers
		WHERE is_active = TRUE
		ORDER BY created_at
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*entity.NewsletterSubscriber
	for rows.Next() {
		var s entity.NewsletterSubscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.FullName, &s.IsActive, &s.CreatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}

func (r *NewsletterSubscriberRepository) Deactivate(ctx context.Context, email string) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE newsletter_subscribers SET is_active = FALSE WHERE email = $1`, email)
	if err != nil {
		return err
	}
	return requireRow(res, sql.ErrNoRows)
}
