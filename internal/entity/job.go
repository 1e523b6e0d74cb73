package entity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrJobOfferNotFound = errors.New("offre d'emploi introuvable")

const (
	ContractCDI       = "cdi"
	ContractCDD       = "cdd"
	ContractStage     = "stage"
	ContractFreelance = "freelance"
	ContractAutre     = "autre"
)

const DefaultJobLocation = "Abidjan, Côte d'Ivoire"

// Statut initial d'un dossier de candidature.
const ApplicationStatusReceived = "reçu"

func IsValidContractType(code string) bool {
	switch code {
	case ContractCDI, ContractCDD, ContractStage, ContractFreelance, ContractAutre:
		return true
	}
	return false
}

type JobOffer struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	Location         string     `json:"location"`
	ContractType     string     `json:"contract_type"`
	ShortDescription string     `json:"short_description"`
	Description      string     `json:"description"`
	IsPublished      bool       `json:"is_published"`
	PublishedAt      *time.Time `json:"published_at,omitempty"`
	ClosingDate      *time.Time `json:"closing_date,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func NewJobOffer(title, slug, location, contractType, shortDescription, description string) (*JobOffer, error) {
	if strings.TrimSpace(slug) == "" {
		slug = Slugify(title)
	}
	if strings.TrimSpace(location) == "" {
		location = DefaultJobLocation
	}
	if strings.TrimSpace(contractType) == "" {
		contractType = ContractCDI
	}

	now := time.Now()
	o := &JobOffer{
		ID:               uuid.New().String(),
		Title:            title,
		Slug:             slug,
		Location:         location,
		ContractType:     contractType,
		ShortDescription: shortDescription,
		Description:      description,
		IsPublished:      true,
		PublishedAt:      &now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := o.Validate(); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *JobOffer) Validate() error {
	if strings.TrimSpace(o.Title) == "" {
		return errors.New("title is required")
	}
	if strings.TrimSpace(o.Slug) == "" {
		return errors.New("slug is required")
	}
	if strings.TrimSpace(o.ShortDescription) == "" {
		return errors.New("short_description is required")
	}
	if !IsValidContractType(o.ContractType) {
		return errors.New("contract_type must be cdi, cdd, stage, freelance or autre")
	}
	return nil
}

// JobApplication est une candidature rattachée à une offre. La suppression
// de l'offre supprime ses candidatures (ON DELETE CASCADE côté base).
type JobApplication struct {
	ID              string    `json:"id"`
	JobOfferID      string    `json:"job_offer_id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	CVPath          string    `json:"cv_path"`
	CoverLetterPath string    `json:"cover_letter_path"`
	Notes           string    `json:"notes,omitempty"`
	Processed       bool      `json:"processed"`
	Status          string    `json:"status"` // reçu, en cours, retenu, rejeté...
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewJobApplication(jobOfferID, firstName, lastName, email, phone, notes string) *JobApplication {
	return &JobApplication{
		ID:         uuid.New().String(),
		JobOfferID: jobOfferID,
		FirstName:  firstName,
		LastName:   lastName,
		Email:      email,
		Phone:      phone,
		Notes:      notes,
		Processed:  false,
		Status:     ApplicationStatusReceived,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
}

// CVUploadPath et CoverLetterUploadPath sont des fonctions pures: le chemin de
// stockage ne dépend que du slug de l'offre, du nom du candidat et du nom de
// fichier d'origine.
func CVUploadPath(offerSlug, lastName, firstName, filename string) string {
	return fmt.Sprintf("candidatures/%s/%s_%s_cv_%s", offerSlug, lastName, firstName, filename)
}

func CoverLetterUploadPath(offerSlug, lastName, firstName, filename string) string {
	return fmt.Sprintf("candidatures/%s/%s_%s_lm_%s", offerSlug, lastName, firstName, filename)
}
