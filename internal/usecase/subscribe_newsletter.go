package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/rhpartnersafric/website-api/internal/entity"
)

type NewsletterInput struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

type SubscribeNewsletterOutput struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

type SubscribeNewsletterUseCase struct {
	Repo entity.NewsletterSubscriberRepositoryInterface
}

func NewSubscribeNewsletterUseCase(repo entity.NewsletterSubscriberRepositoryInterface) *SubscribeNewsletterUseCase {
	return &SubscribeNewsletterUseCase{Repo: repo}
}

// Execute inscrit l'email à la newsletter. L'upsert du repository garantit
// au plus une ligne par email: nouvel abonné créé actif, abonné inactif
// réactivé, abonné déjà actif inchangé. Rejouer la même soumission ne
// change rien.
func (uc *SubscribeNewsletterUseCase) Execute(ctx context.Context, input NewsletterInput) (*SubscribeNewsletterOutput, error) {
	input.Email = strings.TrimSpace(input.Email)
	input.FullName = strings.TrimSpace(input.FullName)

	if validationErrors := ValidateNewsletterInput(input); len(validationErrors) > 0 {
		return nil, &ValidationFailedError{Fields: validationErrors}
	}

	sub := &entity.NewsletterSubscriber{
		ID:       uuid.New().String(),
		Email:    input.Email,
		FullName: input.FullName,
	}

	if err := uc.Repo.Subscribe(ctx, sub); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to subscribe: " + err.Error(),
		}
	}

	return &SubscribeNewsletterOutput{
		Email:   sub.Email,
		Message: "Merci, vous êtes inscrit à notre newsletter.",
	}, nil
}
