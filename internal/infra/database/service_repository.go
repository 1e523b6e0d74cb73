package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/rhpartnersafric/website-api/internal/entity"
)

type ServiceRepository struct {
	DB *sql.DB
}

func NewServiceRepository(db *sql.DB) *ServiceRepository {
	return &ServiceRepository{DB: db}
}

// ListActive retourne les services actifs dans l'ordre d'affichage du site.
func (r *ServiceRepository) ListActive(ctx context.Context) ([]*entity.Service, error) {
	query := `
		SELECT id, title, slug, icon_class, short_description, description,
		       "order", is_active, created_at, updated_at
		FROM services
		WHERE is_active = TRUE
		ORDER BY "order", title
	`
	return r.list(ctx, query)
}

func (r *ServiceRepository) ListAll(ctx context.Context) ([]*entity.Service, error) {
	query := `
		SELECT id, title, slug, icon_class, short_description, description,
		       "order", is_active, created_at, updated_at
		FROM services
		ORDER BY "order", title
	`
	return r.list(ctx, query)
}

func (r *ServiceRepository) list(ctx context.Context, query string) ([]*entity.Service, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []*entity.Service
	for rows.Next() {
		var s entity.Service
		if err := rows.Scan(
			&s.ID, &s.Title, &s.Slug, &s.IconClass, &s.ShortDescription,
			&s.Description, &s.Order, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		services = append(services, &s)
	}
	return services, rows.Err()
}

func (r *ServiceRepository) FindBySlug(ctx context.Context, slug string) (*entity.Service, error) {
	query := `
		SELECT id, title, slug, icon_class, short_description, description,
		       "order", is_active, created_at, updated_at
		FROM services
		WHERE slug = $1
	`

	var s entity.Service
	err := r.DB.QueryRowContext(ctx, query, slug).Scan(
		&s.ID, &s.Title, &s.Slug, &s.IconClass, &s.ShortDescription,
		&s.Description, &s.Order, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrServiceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ServiceRepository) Create(ctx context.Context, s *entity.Service) error {
	query := `
		INSERT INTO services (id, title, slug, icon_class, short_description,
		                      description, "order", is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.DB.ExecContext(ctx, query,
		s.ID, s.Title, s.Slug, s.IconClass, s.ShortDescription,
		s.Description, s.Order, s.IsActive, s.CreatedAt, s.UpdatedAt,
	)
	return mapUniqueViolation(err, entity.ErrSlugAlreadyExists)
}

func (r *ServiceRepository) Update(ctx context.Context, s *entity.Service) error {
	query := `
		UPDATE services
		SET title = $2, slug = $3, icon_class = $4, short_description = $5,
		    description = $6, "order" = $7, is_active = $8, updated_at = NOW()
		WHERE id = $1
	`

	res, err := r.DB.ExecContext(ctx, query,
		s.ID, s.Title, s.Slug, s.IconClass, s.ShortDescription,
		s.Description, s.Order, s.IsActive,
	)
	if err != nil {
		return mapUniqueViolation(err, entity.ErrSlugAlreadyExists)
	}
	return requireRow(res, entity.ErrServiceNotFound)
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, entity.ErrServiceNotFound)
}

// mapUniqueViolation traduit le code 23505 de Postgres vers l'erreur métier.
func mapUniqueViolation(err error, sentinel error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return sentinel
	}
	return err
}

func requireRow(res sql.Result, sentinel error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sentinel
	}
	return nil
}
