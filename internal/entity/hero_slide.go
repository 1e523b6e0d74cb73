package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Position d'une slide dans une paire du hero: colonne texte ou colonne visuelle.
const (
	PositionText   = "text"
	PositionVisual = "visual"
)

const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// HeroSlide est une moitié de slide du carrousel d'accueil. Deux slides
// partageant la même PairKey (une "text", une "visual") forment une unité
// affichée ensemble.
type HeroSlide struct {
	ID       string `json:"id"`
	PairKey  string `json:"pair_key"` // même valeur pour la slide texte et la slide visuelle
	Position string `json:"position"`
	Order    int    `json:"order"`
	IsActive bool   `json:"is_active"`

	BadgeLabel      string `json:"badge_label,omitempty"`
	BadgeIcon       string `json:"badge_icon,omitempty"`
	Title           string `json:"title,omitempty"`
	HighlightedText string `json:"highlighted_text,omitempty"`
	Subtitle        string `json:"subtitle,omitempty"`

	PrimaryLabel   string `json:"primary_label,omitempty"`
	PrimaryURL     string `json:"primary_url,omitempty"` // #contact, #pricing ou URL complète
	PrimaryIcon    string `json:"primary_icon,omitempty"`
	SecondaryLabel string `json:"secondary_label,omitempty"`
	SecondaryURL   string `json:"secondary_url,omitempty"`
	SecondaryIcon  string `json:"secondary_icon,omitempty"`

	Stat1Value string `json:"stat_1_value,omitempty"`
	Stat1Label string `json:"stat_1_label,omitempty"`
	Stat2Value string `json:"stat_2_value,omitempty"`
	Stat2Label string `json:"stat_2_label,omitempty"`
	Stat3Value string `json:"stat_3_value,omitempty"`
	Stat3Label string `json:"stat_3_label,omitempty"`

	ImagePath      string `json:"image_path,omitempty"` // stocké sous hero_slides/
	VisualTitle    string `json:"visual_title,omitempty"`
	VisualSubtitle string `json:"visual_subtitle,omitempty"`
	VisualBadge    string `json:"visual_badge,omitempty"`

	ThemeVariant string `json:"theme_variant"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewHeroSlide(pairKey, position string, order int) (*HeroSlide, error) {
	s := &HeroSlide{
		ID:           uuid.New().String(),
		PairKey:      Slugify(pairKey),
		Position:     position,
		Order:        order,
		IsActive:     true,
		ThemeVariant: ThemeAuto,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *HeroSlide) Validate() error {
	if strings.TrimSpace(s.PairKey) == "" {
		return errors.New("pair_key is required")
	}
	if s.Position != PositionText && s.Position != PositionVisual {
		return errors.New("position must be text or visual")
	}
	switch s.ThemeVariant {
	case ThemeAuto, ThemeLight, ThemeDark:
	default:
		return errors.New("theme_variant must be auto, light or dark")
	}
	return nil
}
