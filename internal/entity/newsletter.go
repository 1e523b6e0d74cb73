package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmailAlreadyExists = errors.New("email déjà inscrit")
	ErrCampaignNotFound   = errors.New("campagne introuvable")
)

// NewsletterSubscriber est un abonné à la newsletter. L'email est unique:
// une ré-inscription réactive la ligne existante au lieu d'en créer une seconde.
type NewsletterSubscriber struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type NewsletterSubscriberRepositoryInterface interface {
	// Subscribe insère ou réactive l'abonné en une seule écriture conditionnelle
	// et recharge les champs générés (id, full_name conservé, created_at).
	Subscribe(ctx context.Context, sub *NewsletterSubscriber) error
	FindByEmail(ctx context.Context, email string) (*NewsletterSubscriber, error)
	ListActive(ctx context.Context) ([]*NewsletterSubscriber, error)
}

const (
	CampaignStatusDraft     = "draft"
	CampaignStatusScheduled = "scheduled"
	CampaignStatusSent      = "sent"
)

type NewsletterCampaign struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"` // titre interne, jamais envoyé
	Subject     string     `json:"subject"`
	BodyHTML    string     `json:"body_html"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	SentAt      *time.Time `json:"sent_at,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

func NewNewsletterCampaign(title, subject, bodyHTML string) (*NewsletterCampaign, error) {
	c := &NewsletterCampaign{
		ID:        uuid.New().String(),
		Title:     title,
		Subject:   subject,
		BodyHTML:  bodyHTML,
		Status:    CampaignStatusDraft,
		CreatedAt: time.Now(),
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *NewsletterCampaign) Validate() error {
	if c.Title == "" {
		return errors.New("title is required")
	}
	if c.Subject == "" {
		return errors.New("subject is required")
	}
	if c.BodyHTML == "" {
		return errors.New("body_html is required")
	}
	switch c.Status {
	case CampaignStatusDraft, CampaignStatusScheduled, CampaignStatusSent:
	default:
		return errors.New("status must be draft, scheduled or sent")
	}
	return nil
}

// IsDue indique si la campagne doit partir: planifiée, avec une date d'envoi
// renseignée et déjà atteinte.
func (c *NewsletterCampaign) IsDue(now time.Time) bool {
	return c.Status == CampaignStatusScheduled &&
		c.ScheduledAt != nil &&
		!c.ScheduledAt.After(now)
}
