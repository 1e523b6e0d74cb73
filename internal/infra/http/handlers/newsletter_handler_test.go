package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/rhpartnersafric/website-api/internal/entity"
	"github.com/rhpartnersafric/website-api/internal/usecase"
)

type MockSubscriberRepo struct {
	mock.Mock
}

func (m *MockSubscriberRepo) Subscribe(ctx context.Context, sub *entity.NewsletterSubscriber) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriberRepo) FindByEmail(ctx context.Context, email string) (*entity.NewsletterSubscriber, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.NewsletterSubscriber), args.Error(1)
}

func (m *MockSubscriberRepo) ListActive(ctx context.Context) ([]*entity.NewsletterSubscriber, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.NewsletterSubscriber), args.Error(1)
}

func (m *MockSubscriberRepo) Deactivate(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func TestNewsletterHandler_Subscribe(t *testing.T) {
	repo := new(MockSubscriberRepo)
	repo.On("Subscribe", mock.Anything, mock.Anything).Return(nil)

	handler := NewNewsletterHandler(usecase.NewSubscribeNewsletterUseCase(repo), repo)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/newsletter/subscribe",
		strings.NewReader(`{"email": "awa@example.com"}`))
	handler.HandleSubscribe(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "awa@example.com")
}

func TestNewsletterHandler_SubscribeInvalidEmail(t *testing.T) {
	repo := new(MockSubscriberRepo)
	handler := NewNewsletterHandler(usecase.NewSubscribeNewsletterUseCase(repo), repo)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/newsletter/subscribe",
		strings.NewReader(`{"email": "invalide"}`))
	handler.HandleSubscribe(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	repo.AssertNotCalled(t, "Subscribe", mock.Anything, mock.Anything)
}

func TestNewsletterHandler_Unsubscribe(t *testing.T) {
	repo := new(MockSubscriberRepo)
	repo.On("Deactivate", mock.Anything, "awa@example.com").Return(nil)

	handler := NewNewsletterHandler(usecase.NewSubscribeNewsletterUseCase(repo), repo)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/newsletter/unsubscribe",
		strings.NewReader(`{"email": "awa@example.com"}`))
	handler.HandleUnsubscribe(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	repo.AssertExpectations(t)
}

func TestNewsletterHandler_UnsubscribeMissingEmail(t *testing.T) {
	repo := new(MockSubscriberRepo)
	handler := NewNewsletterHandler(usecase.NewSubscribeNewsletterUseCase(repo), repo)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/newsletter/unsubscribe",
		strings.NewReader(`{}`))
	handler.HandleUnsubscribe(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
