package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rhpartnersafric/website-api/internal/entity"
)

type NewsletterCampaignRepository struct {
	DB *sql.DB
}

func NewNewsletterCampaignRepository(db *sql.DB) *NewsletterCampaignRepository {
	return &NewsletterCampaignRepository{DB: db}
}

const campaignColumns = `id, title, subject, body_html, scheduled_at, sent_at, status, created_at`

func (r *NewsletterCampaignRepository) Create(ctx context.Context, c *entity.NewsletterCampaign) error {
	query := `
		INSERT INTO newsletter_campaigns (id, title, subject, body_html,
		                                  scheduled_at, sent_at, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.DB.ExecContext(ctx, query,
		c.ID, c.Title, c.Subject, c.BodyHTML,
		c.ScheduledAt, c.SentAt, c.Status, c.CreatedAt,
	)
	return err
}

func (r *NewsletterCampaignRepository) FindByID(ctx context.Context, id string) (*entity.NewsletterCampaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM newsletter_campaigns WHERE id = $1`

	c, err := scanCampaign(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *NewsletterCampaignRepository) List(ctx context.Context) ([]*entity.NewsletterCampaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM newsletter_campaigns ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []*entity.NewsletterCampaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

// Schedule planifie l'envoi d'un brouillon. Une campagne déjà envoyée
// ne peut pas être replanifiée.
func (r *NewsletterCampaignRepository) Schedule(ctx context.Context, id string, at time.Time) error {
	query := `
		UPDATE newsletter_campaigns
		SET status = $2, scheduled_at = $3
		WHERE id = $1 AND status != $4
	`

	res, err := r.DB.ExecContext(ctx, query, id, entity.CampaignStatusScheduled, at, entity.CampaignStatusSent)
	if err != nil {
		return err
	}
	return requireRow(res, entity.ErrCampaignNotFound)
}

// FindDue retourne les campagnes planifiées dont l'heure d'envoi est atteinte.
func (r *NewsletterCampaignRepository) FindDue(ctx context.Context, now time.Time) ([]*entity.NewsletterCampaign, error) {
	query := `
		SELECT ` + campaignColumns + `
		FROM newsletter_campaigns
		WHERE status = $1 AND scheduled_at IS NOT NULL AND scheduled_at <= $2
		ORDER BY scheduled_at
	`

	rows, err := r.DB.QueryContext(ctx, query, entity.CampaignStatusScheduled, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []*entity.NewsletterCampaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

func (r *NewsletterCampaignRepository) MarkSent(ctx context.Context, id string, sentAt time.Time) error {
	query := `
		UPDATE newsletter_campaigns
		SET status = $2, sent_at = $3
		WHERE id = $1
	`

	res, err := r.DB.ExecContext(ctx, query, id, entity.CampaignStatusSent, sentAt)
	if err != nil {
		return err
	}
	return requireRow(res, entity.ErrCampaignNotFound)
}

func (r *NewsletterCampaignRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM newsletter_campaigns WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, entity.ErrCampaignNotFound)
}

func scanCampaign(row rowScanner) (*entity.NewsletterCampaign, error) {
	var c entity.NewsletterCampaign
	var scheduledAt, sentAt sql.NullTime
	err := row.Scan(
		&c.ID, &c.Title, &c.Subject, &c.BodyHTML,
		&scheduledAt, &sentAt, &c.Status, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if scheduledAt.Valid {
		c.ScheduledAt = &scheduledAt.Time
	}
	if sentAt.Valid {
		c.SentAt = &sentAt.Time
	}
	return &c, nil
}
