package usecase

import (
	"context"

	"github.com/rhpartnersafric/website-api/internal/entity"
)

type ContactInput struct {
	FullName string `json:"full_name"`
	Company  string `json:"company"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Service  string `json:"service"`
	Message  string `json:"message"`
	Consent  bool   `json:"consent"`
}

type SubmitContactOutput struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type SubmitContactUseCase struct {
	Repo        entity.ContactRequestRepositoryInterface
	Email       EmailService
	NotifyEmail string // boîte interne prévenue à chaque demande; vide = pas de notification
}

func NewSubmitContactUseCase(repo entity.ContactRequestRepositoryInterface, email EmailService, notifyEmail string) *SubmitContactUseCase {
	return &SubmitContactUseCase{
		Repo:        repo,
		Email:       email,
		NotifyEmail: notifyEmail,
	}
}

// Execute valide puis enregistre la demande de contact. Aucune écriture
// n'a lieu si la validation échoue. Le consentement est persisté tel que
// soumis, y compris false.
func (uc *SubmitContactUseCase) Execute(ctx context.Context, input ContactInput) (*SubmitContactOutput, error) {
	if validationErrors := ValidateContactInput(input); len(validationErrors) > 0 {
		return nil, &ValidationFailedError{Fields: validationErrors}
	}

	request, err := entity.NewContactRequest(
		input.FullName, input.Company, input.Email, input.Phone,
		input.Service, input.Message, input.Consent,
	)
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	if err := uc.Repo.Create(ctx, request); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist contact request: " + err.Error(),
		}
	}

	// La notification part en tâche de fond: son échec ne doit pas faire
	// échouer une demande déjà enregistrée.
	if uc.Email != nil && uc.NotifyEmail != "" {
		go uc.Email.SendContactNotification(uc.NotifyEmail, request)
	}

	return &SubmitContactOutput{
		ID:      request.ID,
		Message: "Votre demande a bien été envoyée. Un consultant vous contactera rapidement.",
	}, nil
}
