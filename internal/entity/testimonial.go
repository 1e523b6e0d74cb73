package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Testimonial struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Initials  string    `json:"initials"` // ex: "AK", "SD"
	Role      string    `json:"role"`
	Company   string    `json:"company,omitempty"`
	Quote     string    `json:"quote"`
	Rating    int       `json:"rating"`
	Order     int       `json:"order"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewTestimonial(fullName, initials, role, company, quote string, rating, order int) (*Testimonial, error) {
	t := &Testimonial{
		ID:        uuid.New().String(),
		FullName:  fullName,
		Initials:  initials,
		Role:      role,
		Company:   company,
		Quote:     quote,
		Rating:    rating,
		Order:     order,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *Testimonial) Validate() error {
	if strings.TrimSpace(t.FullName) == "" {
		return errors.New("full_name is required")
	}
	if strings.TrimSpace(t.Quote) == "" {
		return errors.New("quote is required")
	}
	if t.Rating < 1 || t.Rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	return nil
}
