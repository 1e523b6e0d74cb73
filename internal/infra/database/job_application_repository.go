package database

import (
	"context"
	"database/sql"

	"github.com/rhpartnersafric/website-api/internal/entity"
)

type JobApplicationRepository struct {
	DB *sql.DB
}

func NewJobApplicationRepository(db *sql.DB) *JobApplicationRepository {
	return &JobApplicationRepository{DB: db}
}

func (r *JobApplicationRepository) Create(ctx context.Context, a *entity.JobApplication) error {
	query := `
		INSERT INTO job_applications (id, job_offer_id, first_name, last_name,
		                              email, phone, cv_path, cover_letter_path,
		                              notes, processed, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.DB.ExecContext(ctx, query,
		a.ID, a.JobOfferID, a.FirstName, a.LastName,
		a.Email, a.Phone, a.CVPath, a.CoverLetterPath,
		a.Notes, a.Processed, a.Status, a.CreatedAt, a.UpdatedAt,
	)
	return err
}

func (r *JobApplicationRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM job_applications WHERE id = $1`, id)
	return err
}

func (r *JobApplicationRepository) ListByOffer(ctx context.Context, jobOfferID string) ([]*entity.JobApplication, error) {
	query := `
		SELECT id, job_offer_id, first_name, last_name, email, phone,
		       cv_path, cover_letter_path, notes, processed, status,
		       created_at, updated_at
		FROM job_applications
		WHERE job_offer_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, jobOfferID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []*entity.JobApplication
	for rows.Next() {
		var a entity.JobApplication
		if err := rows.Scan(
			&a.ID, &a.JobOfferID, &a.FirstName, &a.LastName, &a.Email, &a.Phone,
			&a.CVPath, &a.CoverLetterPath, &a.Notes, &a.Processed, &a.Status,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		apps = append(apps, &a)
	}
	return apps, rows.Err()
}

// UpdateStatus fait avancer le dossier côté console d'administration
// (reçu, en cours, retenu, rejeté...).
func (r *JobApplicationRepository) UpdateStatus(ctx context.Context, id, status string, processed bool) error {
	query := `
		UPDATE job_applications
		SET status = $2, processed = $3, updated_at = NOW()
		WHERE id = $1
	`

	res, err := r.DB.ExecContext(ctx, query, id, status, processed)
	if err != nil {
		return err
	}
	return requireRow(res, sql.ErrNoRows)
}
