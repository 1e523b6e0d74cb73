package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrSlugAlreadyExists = errors.New("slug déjà utilisé")

// PricingPlan est un pack tarifaire. Le prix affiché est un libellé libre
// ("Sur devis", "À partir de 250 000 FCFA / mois"), le montant numérique
// optionnel ne sert qu'au tri et aux stats.
type PricingPlan struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Tagline       string    `json:"tagline,omitempty"`
	PriceLabel    string    `json:"price_label"`
	PriceAmount   *float64  `json:"price_amount,omitempty"`
	TargetSegment string    `json:"target_segment,omitempty"` // TPE, PME, Grandes entreprises
	Features      string    `json:"features"`                 // un point fort par ligne
	IsFeatured    bool      `json:"is_featured"`
	Order         int       `json:"order"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewPricingPlan(name, slug, tagline, priceLabel, targetSegment, features string, priceAmount *float64, order int) (*PricingPlan, error) {
	if strings.TrimSpace(slug) == "" {
		slug = Slugify(name)
	}

	p := &PricingPlan{
		ID:            uuid.New().String(),
		Name:          name,
		Slug:          slug,
		Tagline:       tagline,
		PriceLabel:    priceLabel,
		PriceAmount:   priceAmount,
		TargetSegment: targetSegment,
		Features:      features,
		Order:         order,
		IsActive:      true,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *PricingPlan) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(p.Slug) == "" {
		return errors.New("slug is required")
	}
	if strings.TrimSpace(p.PriceLabel) == "" {
		return errors.New("price_label is required")
	}
	if p.PriceAmount != nil && *p.PriceAmount < 0 {
		return errors.New("price_amount must not be negative")
	}
	return nil
}

// FeaturesList découpe le champ Features ligne par ligne, en ignorant
// les lignes vides ou composées uniquement d'espaces.
func (p *PricingPlan) FeaturesList() []string {
	var list []string
	for _, line := range strings.Split(p.Features, "\n") {
		if f := strings.TrimSpace(line); f != "" {
			list = append(list, f)
		}
	}
	return list
}
