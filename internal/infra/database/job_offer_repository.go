package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rhpartnersafric/website-api/internal/entity"
)

type JobOfferRepository struct {
	DB *sql.DB
}

func NewJobOfferRepository(db *sql.DB) *JobOfferRepository {
	return &JobOfferRepository{DB: db}
}

const jobOfferColumns = `id, title, slug, location, contract_type,
	short_description, description, is_published, published_at, closing_date,
	created_at, updated_at`

// ListPublished retourne les offres visibles sur le site, les plus
// récemment publiées d'abord.
func (r *JobOfferRepository) ListPublished(ctx context.Context) ([]*entity.JobOffer, error) {
	query := `
		SELECT ` + jobOfferColumns + `
		FROM job_offers
		WHERE is_published = TRUE
		ORDER BY published_at DESC NULLS LAST, created_at DESC
	`
	return r.list(ctx, query)
}

func (r *JobOfferRepository) ListAll(ctx context.Context) ([]*entity.JobOffer, error) {
	query := `
		SELECT ` + jobOfferColumns + `
		FROM job_offers
		ORDER BY published_at DESC NULLS LAST, created_at DESC
	`
	return r.list(ctx, query)
}

func (r *JobOfferRepository) list(ctx context.Context, query string) ([]*entity.JobOffer, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offers []*entity.JobOffer
	for rows.Next() {
		o, err := scanJobOffer(rows)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}
	return offers, rows.Err()
}

func (r *JobOfferRepository) FindBySlug(ctx context.Context, slug string) (*entity.JobOffer, error) {
	query := `SELECT ` + jobOfferColumns + ` FROM job_offers WHERE slug = $1`

	o, err := scanJobOffer(r.DB.QueryRowContext(ctx, query, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrJobOfferNotFound
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *JobOfferRepository) Create(ctx context.Context, o *entity.JobOffer) error {
	query := `
		INSERT INTO job_offers (id, title, slug, location, contract_type,
		                        short_description, description, is_published,
		                        published_at, closing_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.DB.ExecContext(ctx, query,
		o.ID, o.Title, o.Slug, o.Location, o.ContractType,
		o.ShortDescription, o.Description, o.IsPublished,
		o.PublishedAt, o.ClosingDate, o.CreatedAt, o.UpdatedAt,
	)
	return mapUniqueViolation(err, entity.ErrSlugAlreadyExists)
}

func (r *JobOfferRepository) Update(ctx context.Context, o *entity.JobOffer) error {
	query := `
		UPDATE job_offers
		SET title = $2, slug = $3, location = $4, contract_type = $5,
		    short_description = $6, description = $7, is_published = $8,
		    published_at = $9, closing_date = $10, updated_at = NOW()
		WHERE id = $1
	`

	res, err := r.DB.ExecContext(ctx, query,
		o.ID, o.Title, o.Slug, o.Location, o.ContractType,
		o.ShortDescription, o.Description, o.IsPublished,
		o.PublishedAt, o.ClosingDate,
	)
	if err != nil {
		return mapUniqueViolation(err, entity.ErrSlugAlreadyExists)
	}
	return requireRow(res, entity.ErrJobOfferNotFound)
}

// Delete supprime l'offre; les candidatures rattachées partent avec elle
// via le ON DELETE CASCADE du schéma.
func (r *JobOfferRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM job_offers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, entity.ErrJobOfferNotFound)
}

func scanJobOffer(row rowScanner) (*entity.JobOffer, error) {
	var o entity.JobOffer
	var publishedAt, closingDate sql.NullTime
	err := row.Scan(
		&o.ID, &o.Title, &o.Slug, &o.Location, &o.ContractType,
		&o.ShortDescription, &o.Description, &o.IsPublished,
		&publishedAt, &closingDate, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if publishedAt.Valid {
		o.PublishedAt = &publishedAt.Time
	}
	if closingDate.Valid {
		o.ClosingDate = &closingDate.Time
	}
	return &o, nil
}
