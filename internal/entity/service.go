package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrServiceNotFound = errors.New("service introuvable")

// Service décrit une prestation affichée sur le site vitrine.
type Service struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	IconClass        string    `json:"icon_class,omitempty"` // ex: "fas fa-file-invoice-dollar"
	ShortDescription string    `json:"short_description"`
	Description      string    `json:"description,omitempty"`
	Order            int       `json:"order"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func NewService(title, slug, iconClass, shortDescription, description string, order int) (*Service, error) {
	if strings.TrimSpace(slug) == "" {
		slug = Slugify(title)
	}

	s := &Service{
		ID:               uuid.New().String(),
		Title:            title,
		Slug:             slug,
		IconClass:        iconClass,
		ShortDescription: shortDescription,
		Description:      description,
		Order:            order,
		IsActive:         true,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Service) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return errors.New("title is required")
	}
	if strings.TrimSpace(s.Slug) == "" {
		return errors.New("slug is required")
	}
	if strings.TrimSpace(s.ShortDescription) == "" {
		return errors.New("short_description is required")
	}
	if s.Order < 0 {
		return errors.New("order must not be negative")
	}
	return nil
}
