package usecase

import (
	"context"
	"time"

	"github.com/rhpartnersafric/website-api/internal/entity"
	"github.com/rhpartnersafric/website-api/internal/infra/queue"
)

type SubscriberListerInterface interface {
	ListActive(ctx context.Context) ([]*entity.NewsletterSubscriber, error)
}

type DispatchDueCampaignsUseCase struct {
	Campaigns   CampaignRepositoryInterface
	Subscribers SubscriberListerInterface
	Queue       QueueProducerInterface
}

func NewDispatchDueCampaignsUseCase(
	campaigns CampaignRepositoryInterface,
	subscribers SubscriberListerInterface,
	producer QueueProducerInterface,
) *DispatchDueCampaignsUseCase {
	return &DispatchDueCampaignsUseCase{
		Campaigns:   campaigns,
		Subscribers: subscribers,
		Queue:       producer,
	}
}

// Execute publie une livraison par abonné actif pour chaque campagne due,
// puis marque la campagne envoyée. Si une publication échoue en cours de
// fan-out, la campagne reste "scheduled" et sera reprise au tick suivant;
// les abonnés déjà servis peuvent alors recevoir un doublon.
func (uc *DispatchDueCampaignsUseCase) Execute(ctx context.Context, now time.Time) (int, error) {
	campaigns, err := uc.Campaigns.FindDue(ctx, now)
	if err != nil {
		return 0, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to load due campaigns: " + err.Error(),
		}
	}
	if len(campaigns) == 0 {
		return 0, nil
	}

	subscribers, err := uc.Subscribers.ListActive(ctx)
	if err != nil {
		return 0, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to load subscribers: " + err.Error(),
		}
	}

	dispatched := 0
	for _, campaign := range campaigns {
		for _, sub := range subscribers {
			payload := queue.CampaignDeliveryPayload{
				CampaignID: campaign.ID,
				Email:      sub.Email,
				FullName:   sub.FullName,
				Subject:    campaign.Subject,
				BodyHTML:   campaign.BodyHTML,
			}
			if err := uc.Queue.PublishDelivery(ctx, payload); err != nil {
				return dispatched, &TechnicalError{
					Code:    "QUEUE_ERROR",
					Message: "failed to publish delivery: " + err.Error(),
				}
			}
		}

		if err := uc.Campaigns.MarkSent(ctx, campaign.ID, now); err != nil {
			return dispatched, &TechnicalError{
				Code:    "DATABASE_ERROR",
				Message: "failed to mark campaign sent: " + err.Error(),
			}
		}
		dispatched++
	}

	return dispatched, nil
}
