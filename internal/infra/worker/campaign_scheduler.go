package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// CampaignDispatcher est le use case de fan-out des campagnes dues.
type CampaignDispatcher interface {
	Execute(ctx context.Context, now time.Time) (int, error)
}

// CampaignScheduler réveille le dispatcher à intervalle fixe. C'est lui,
// et non le coeur de soumission, qui matérialise la notion de campagne
// "due": status=scheduled et scheduled_at atteinte.
type CampaignScheduler struct {
	dispatcher   CampaignDispatcher
	tickInterval time.Duration
	logger       *zap.Logger
}

func NewCampaignScheduler(dispatcher CampaignDispatcher, logger *zap.Logger) *CampaignScheduler {
	return &CampaignScheduler{
		dispatcher:   dispatcher,
		tickInterval: time.Minute,
		logger:       logger,
	}
}

func (s *CampaignScheduler) Start(ctx context.Context) {
	s.logger.Info("scheduler de campagnes démarré", zap.Duration("tick", s.tickInterval))

	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	s.dispatchDue(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler de campagnes arrêté")
			return
		case <-ticker.C:
			s.dispatchDue(ctx)
		}
	}
}

func (s *CampaignScheduler) dispatchDue(ctx context.Context) {
	dispatched, err := s.dispatcher.Execute(ctx, time.Now())
	if err != nil {
		s.logger.Error("dispatch des campagnes échoué", zap.Error(err))
		return
	}
	if dispatched > 0 {
		s.logger.Info("campagnes parties en livraison", zap.Int("count", dispatched))
	}
}
