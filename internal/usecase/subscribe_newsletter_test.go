package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/rhpartnersafric/website-api/internal/entity"
)

// MockSubscriberRepository
type MockSubscriberRepository struct {
	mock.Mock
}

func (m *MockSubscriberRepository) Subscribe(ctx context.Context, sub *entity.NewsletterSubscriber) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriberRepository) FindByEmail(ctx context.Context, email string) (*entity.NewsletterSubscriber, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.NewsletterSubscriber), args.Error(1)
}

func (m *MockSubscriberRepository) ListActive(ctx context.Context) ([]*entity.NewsletterSubscriber, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.NewsletterSubscriber), args.Error(1)
}

func TestSubscribeNewsletter_Success(t *testing.T) {
	repo := new(MockSubscriberRepository)
	repo.On("Subscribe", mock.Anything, mock.MatchedBy(func(s *entity.NewsletterSubscriber) bool {
		return s.Email == "awa@example.com" && s.FullName == "Awa Koné"
	})).Return(nil)

	uc := NewSubscribeNewsletterUseCase(repo)

	output, err := uc.Execute(context.Background(), NewsletterInput{
		Email:    "  awa@example.com ",
		FullName: " Awa Koné ",
	})

	assert.NoError(t, err)
	assert.Equal(t, "awa@example.com", output.Email)
	repo.AssertExpectations(t)
}

// L'idempotence vient de l'upsert du repository: le use case fait exactement
// un appel Subscribe, jamais de lecture préalable.
func TestSubscribeNewsletter_SingleWrite(t *testing.T) {
	repo := new(MockSubscriberRepository)
	repo.On("Subscribe", mock.Anything, mock.Anything).Return(nil)

	uc := NewSubscribeNewsletterUseCase(repo)

	_, err := uc.Execute(context.Background(), NewsletterInput{Email: "awa@example.com"})

	assert.NoError(t, err)
	repo.AssertNumberOfCalls(t, "Subscribe", 1)
	repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
}

func TestSubscribeNewsletter_InvalidEmail(t *testing.T) {
	repo := new(MockSubscriberRepository)
	uc := NewSubscribeNewsletterUseCase(repo)

	output, err := uc.Execute(context.Background(), NewsletterInput{Email: "n'importe quoi"})

	assert.Nil(t, output)
	var verr *ValidationFailedError
	assert.ErrorAs(t, err, &verr)
	repo.AssertNotCalled(t, "Subscribe", mock.Anything, mock.Anything)
}

func TestSubscribeNewsletter_RepositoryFailure(t *testing.T) {
	repo := new(MockSubscriberRepository)
	repo.On("Subscribe", mock.Anything, mock.Anything).Return(errors.New("db down"))

	uc := NewSubscribeNewsletterUseCase(repo)

	output, err := uc.Execute(context.Background(), NewsletterInput{Email: "awa@example.com"})

	assert.Nil(t, output)
	assert.True(t, IsTechnicalError(err))
}
