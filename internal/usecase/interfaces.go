package usecase

import (
	"context"
	"io"
	"time"

	"github.com/rhpartnersafric/website-api/internal/entity"
	"github.com/rhpartnersafric/website-api/internal/infra/queue"
)

type JobOfferRepositoryInterface interface {
	FindBySlug(ctx context.Context, slug string) (*entity.JobOffer, error)
}

type JobApplicationRepositoryInterface interface {
	Create(ctx context.Context, a *entity.JobApplication) error
}

type CampaignRepositoryInterface interface {
	FindDue(ctx context.Context, now time.Time) ([]*entity.NewsletterCampaign, error)
	MarkSent(ctx context.Context, id string, sentAt time.Time) error
}

// FileStore écrit les pièces jointes (CV, lettres) sous la racine média.
type FileStore interface {
	Save(ctx context.Context, path string, r io.Reader) error
	Remove(ctx context.Context, path string) error
}

type EmailService interface {
	SendContactNotification(to string, req *entity.ContactRequest) error
}

type QueueProducerInterface interface {
	PublishDelivery(ctx context.Context, payload queue.CampaignDeliveryPayload) error
}
