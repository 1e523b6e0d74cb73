package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rhpartnersafric/website-api/internal/entity"
)

type PricingPlanRepository struct {
	DB *sql.DB
}

func NewPricingPlanRepository(db *sql.DB) *PricingPlanRepository {
	return &PricingPlanRepository{DB: db}
}

const pricingPlanColumns = `id, name, slug, tagline, price_label, price_amount,
	target_segment, features, is_featured, "order", is_active, created_at, updated_at`

func (r *PricingPlanRepository) ListActive(ctx context.Context) ([]*entity.PricingPlan, error) {
	query := `
		SELECT ` + pricingPlanColumns + `
		FROM pricing_plans
		WHERE is_active = TRUE
		ORDER BY "order", name
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []*entity.PricingPlan
	for rows.Next() {
		p, err := scanPricingPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

// FindFeatured retourne le premier plan actif mis en avant, dans l'ordre
// naturel de la projection ("order" puis name). nil, nil quand aucun plan
// actif n'est marqué is_featured.
func (r *PricingPlanRepository) FindFeatured(ctx context.Context) (*entity.PricingPlan, error) {
	query := `
		SELECT ` + pricingPlanColumns + `
		FROM pricing_plans
		WHERE is_active = TRUE AND is_featured = TRUE
		ORDER BY "order", name
		LIMIT 1
	`

	p, err := scanPricingPlan(r.DB.QueryRowContext(ctx, query))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PricingPlanRepository) Create(ctx context.Context, p *entity.PricingPlan) error {
	query := `
		INSERT INTO pricing_plans (id, name, slug, tagline, price_label, price_amount,
		                           target_segment, features, is_featured, "order",
		                           is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.DB.ExecContext(ctx, query,
		p.ID, p.Name, p.Slug, p.Tagline, p.PriceLabel, p.PriceAmount,
		p.TargetSegment, p.Features, p.IsFeatured, p.Order,
		p.IsActive, p.CreatedAt, p.UpdatedAt,
	)
	return mapUniqueViolation(err, entity.ErrSlugAlreadyExists)
}

func (r *PricingPlanRepository) Update(ctx context.Context, p *entity.PricingPlan) error {
	query := `
		UPDATE pricing_plans
		SET name = $2, slug = $3, tagline = $4, price_label = $5, price_amount = $6,
		    target_segment = $7, features = $8, is_featured = $9, "order" = $10,
		    is_active = $11, updated_at = NOW()
		WHERE id = $1
	`

	res, err := r.DB.ExecContext(ctx, query,
		p.ID, p.Name, p.Slug, p.Tagline, p.PriceLabel, p.PriceAmount,
		p.TargetSegment, p.Features, p.IsFeatured, p.Order, p.IsActive,
	)
	if err != nil {
		return mapUniqueViolation(err, entity.ErrSlugAlreadyExists)
	}
	return requireRow(res, sql.ErrNoRows)
}

func (r *PricingPlanRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM pricing_plans WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, sql.ErrNoRows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPricingPlan(row rowScanner) (*entity.PricingPlan, error) {
	var p entity.PricingPlan
	var amount sql.NullFloat64
	err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Tagline, &p.PriceLabel, &amount,
		&p.TargetSegment, &p.Features, &p.IsFeatured, &p.Order,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if amount.Valid {
		p.PriceAmount = &amount.Float64
	}
	return &p, nil
}
