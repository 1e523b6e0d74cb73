package entity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Codes des services proposés dans le formulaire de contact.
const (
	ServiceGestionRH    = "gestion-rh"
	ServicePaie         = "paie"
	ServiceRecrutement  = "recrutement"
	ServiceCreationEntr = "creation-entreprise"
	ServiceMulti        = "multi"
	ServiceAutre        = "autre"
)

const DefaultContactService = ServiceGestionRH

var contactServiceLabels = map[string]string{
	ServiceGestionRH:    "Gestion RH externalisée",
	ServicePaie:         "Paie externalisée",
	ServiceRecrutement:  "Recrutement & intégration",
	ServiceCreationEntr: "Création / structuration d'entreprise",
	ServiceMulti:        "Plusieurs services",
	ServiceAutre:        "Autre / à préciser",
}

func IsValidContactService(code string) bool {
	_, ok := contactServiceLabels[code]
	return ok
}

// ContactServiceLabel retourne le libellé affichable d'un code service,
// ou le code lui-même s'il est inconnu.
func ContactServiceLabel(code string) string {
	if label, ok := contactServiceLabels[code]; ok {
		return label
	}
	return code
}

type ContactRequest struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Company   string    `json:"company,omitempty"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Service   string    `json:"service"`
	Message   string    `json:"message"`
	Consent   bool      `json:"consent"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewContactRequest construit une demande de contact. Le consentement est
// enregistré exactement tel que soumis, sans valeur par défaut après création.
func NewContactRequest(fullName, company, email, phone, service, message string, consent bool) (*ContactRequest, error) {
	if strings.TrimSpace(service) == "" {
		service = DefaultContactService
	}

	c := &ContactRequest{
		ID:        uuid.New().String(),
		FullName:  fullName,
		Company:   company,
		Email:     email,
		Phone:     phone,
		Service:   service,
		Message:   message,
		Consent:   consent,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *ContactRequest) Validate() error {
	if strings.TrimSpace(c.FullName) == "" {
		return errors.New("full_name is required")
	}
	if strings.TrimSpace(c.Email) == "" {
		return errors.New("email is required")
	}
	if strings.TrimSpace(c.Message) == "" {
		return errors.New("message is required")
	}
	if !IsValidContactService(c.Service) {
		return errors.New("service must be one of the known codes")
	}
	return nil
}

type ContactRequestRepositoryInterface interface {
	Create(ctx context.Context, c *ContactRequest) error
	List(ctx context.Context) ([]*ContactRequest, error)
}
