package usecase

import (
	"context"
	"errors"
	"io"

	"github.com/rhpartnersafric/website-api/internal/entity"
)

// FileUpload est une pièce jointe reçue du formulaire multipart.
type FileUpload struct {
	Filename string
	Content  io.Reader
}

type JobApplicationInput struct {
	OfferSlug   string
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Notes       string
	CV          *FileUpload
	CoverLetter *FileUpload
}

type SubmitJobApplicationOutput struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type SubmitJobApplicationUseCase struct {
	OfferRepo JobOfferRepositoryInterface
	AppRepo   JobApplicationRepositoryInterface
	Files     FileStore
}

func NewSubmitJobApplicationUseCase(
	offerRepo JobOfferRepositoryInterface,
	appRepo JobApplicationRepositoryInterface,
	files FileStore,
) *SubmitJobApplicationUseCase {
	return &SubmitJobApplicationUseCase{
		OfferRepo: offerRepo,
		AppRepo:   appRepo,
		Files:     files,
	}
}

// Execute dépose une candidature sur une offre publiée. Les deux fichiers
// sont écrits d'abord, la ligne ensuite; si l'insertion échoue, les
// compensations suppriment les fichiers déjà écrits. Un crash entre les
// deux écritures peut toujours laisser un fichier orphelin: c'est une
// limite connue, le stockage disque et Postgres ne partagent pas de
// transaction.
func (uc *SubmitJobApplicationUseCase) Execute(ctx context.Context, input JobApplicationInput) (*SubmitJobApplicationOutput, error) {
	offer, err := uc.OfferRepo.FindBySlug(ctx, input.OfferSlug)
	if err != nil {
		if errors.Is(err, entity.ErrJobOfferNotFound) {
			return nil, &DomainError{
				Code:    "OFFER_NOT_FOUND",
				Message: "offre d'emploi introuvable: " + input.OfferSlug,
			}
		}
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to load job offer: " + err.Error(),
		}
	}

	if validationErrors := ValidateJobApplicationInput(input); len(validationErrors) > 0 {
		return nil, &ValidationFailedError{Fields: validationErrors}
	}

	application := entity.NewJobApplication(
		offer.ID, input.FirstName, input.LastName,
		input.Email, input.Phone, input.Notes,
	)
	application.CVPath = entity.CVUploadPath(offer.Slug, input.LastName, input.FirstName, input.CV.Filename)
	application.CoverLetterPath = entity.CoverLetterUploadPath(offer.Slug, input.LastName, input.FirstName, input.CoverLetter.Filename)

	txn := NewTransaction()

	txn.AddOperation("save_cv", func(ctx context.Context) error {
		return uc.Files.Save(ctx, application.CVPath, input.CV.Content)
	})
	txn.AddCompensation("remove_cv", func(ctx context.Context) error {
		return uc.Files.Remove(ctx, application.CVPath)
	})

	txn.AddOperation("save_cover_letter", func(ctx context.Context) error {
		return uc.Files.Save(ctx, application.CoverLetterPath, input.CoverLetter.Content)
	})
	txn.AddCompensation("remove_cover_letter", func(ctx context.Context) error {
		return uc.Files.Remove(ctx, application.CoverLetterPath)
	})

	txn.AddOperation("insert_application", func(ctx context.Context) error {
		return uc.AppRepo.Create(ctx, application)
	})

	if err := txn.Execute(ctx); err != nil {
		return nil, &TechnicalError{
			Code:    "APPLICATION_WRITE_FAILED",
			Message: "failed to persist application: " + err.Error(),
		}
	}

	return &SubmitJobApplicationOutput{
		ID:      application.ID,
		Message: "Votre candidature a bien été envoyée. Merci pour votre intérêt.",
	}, nil
}
