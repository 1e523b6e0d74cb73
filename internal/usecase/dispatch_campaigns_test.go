package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/rhpartnersafric/website-api/internal/entity"
	"github.com/rhpartnersafric/website-api/internal/infra/queue"
)

// MockCampaignRepository
type MockCampaignRepository struct {
	mock.Mock
}

func (m *MockCampaignRepository) FindDue(ctx context.Context, now time.Time) ([]*entity.NewsletterCampaign, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.NewsletterCampaign), args.Error(1)
}

func (m *MockCampaignRepository) MarkSent(ctx context.Context, id string, sentAt time.Time) error {
	args := m.Called(ctx, id, sentAt)
	return args.Error(0)
}

// MockQueueProducer
type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishDelivery(ctx context.Context, payload queue.CampaignDeliveryPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func TestDispatchCampaigns_FanOutPerSubscriber(t *testing.T) {
	now := time.Now()
	campaigns := new(MockCampaignRepository)
	subscribers := new(MockSubscriberRepository)
	producer := new(MockQueueProducer)

	campaigns.On("FindDue", mock.Anything, now).Return([]*entity.NewsletterCampaign{
		{ID: "camp-1", Subject: "Nos voeux", BodyHTML: "<p>Bonne année</p>", Status: entity.CampaignStatusScheduled},
	}, nil)
	subscribers.On("ListActive", mock.Anything).Return([]*entity.NewsletterSubscriber{
		{Email: "a@example.com", FullName: "A"},
		{Email: "b@example.com"},
	}, nil)
	producer.On("PublishDelivery", mock.Anything, queue.CampaignDeliveryPayload{
		CampaignID: "camp-1", Email: "a@example.com", FullName: "A",
		Subject: "Nos voeux", BodyHTML: "<p>Bonne année</p>",
	}).Return(nil)
	producer.On("PublishDelivery", mock.Anything, queue.CampaignDeliveryPayload{
		CampaignID: "camp-1", Email: "b@example.com",
		Subject: "Nos voeux", BodyHTML: "<p>Bonne année</p>",
	}).Return(nil)
	campaigns.On("MarkSent", mock.Anything, "camp-1", now).Return(nil)

	uc := NewDispatchDueCampaignsUseCase(campaigns, subscribers, producer)

	dispatched, err := uc.Execute(context.Background(), now)

	assert.NoError(t, err)
	assert.Equal(t, 1, dispatched)
	producer.AssertNumberOfCalls(t, "PublishDelivery", 2)
	campaigns.AssertExpectations(t)
}

func TestDispatchCampaigns_NothingDue(t *testing.T) {
	now := time.Now()
	campaigns := new(MockCampaignRepository)
	subscribers := new(MockSubscriberRepository)
	producer := new(MockQueueProducer)

	campaigns.On("FindDue", mock.Anything, now).Return([]*entity.NewsletterCampaign{}, nil)

	uc := NewDispatchDueCampaignsUseCase(campaigns, subscribers, producer)

	dispatched, err := uc.Execute(context.Background(), now)

	assert.NoError(t, err)
	assert.Zero(t, dispatched)
	subscribers.AssertNotCalled(t, "ListActive", mock.Anything)
}

// Un échec de publication laisse la campagne "scheduled": elle sera reprise
// au tick suivant.
func TestDispatchCampaigns_PublishFailureKeepsCampaignScheduled(t *testing.T) {
	now := time.Now()
	campaigns := new(MockCampaignRepository)
	subscribers := new(MockSubscriberRepository)
	producer := new(MockQueueProducer)

	campaigns.On("FindDue", mock.Anything, now).Return([]*entity.NewsletterCampaign{
		{ID: "camp-1", Subject: "S", BodyHTML: "B", Status: entity.CampaignStatusScheduled},
	}, nil)
	subscribers.On("ListActive", mock.Anything).Return([]*entity.NewsletterSubscriber{
		{Email: "a@example.com"},
	}, nil)
	producer.On("PublishDelivery", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	uc := NewDispatchDueCampaignsUseCase(campaigns, subscribers, producer)

	dispatched, err := uc.Execute(context.Background(), now)

	assert.Zero(t, dispatched)
	assert.True(t, IsTechnicalError(err))
	campaigns.AssertNotCalled(t, "MarkSent", mock.Anything, mock.Anything, mock.Anything)
}
