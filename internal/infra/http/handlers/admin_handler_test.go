package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/rhpartnersafric/website-api/internal/entity"
)

type MockOfferAdminRepo struct {
	mock.Mock
}

func (m *MockOfferAdminRepo) ListAll(ctx context.Context) ([]*entity.JobOffer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.JobOffer), args.Error(1)
}

func (m *MockOfferAdminRepo) FindBySlug(ctx context.Context, slug string) (*entity.JobOffer, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.JobOffer), args.Error(1)
}

func (m *MockOfferAdminRepo) Create(ctx context.Context, o *entity.JobOffer) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOfferAdminRepo) Update(ctx context.Context, o *entity.JobOffer) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOfferAdminRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAppAdminRepo struct {
	mock.Mock
}

func (m *MockAppAdminRepo) ListByOffer(ctx context.Context, jobOfferID string) ([]*entity.JobApplication, error) {
	args := m.Called(ctx, jobOfferID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.JobApplication), args.Error(1)
}

func (m *MockAppAdminRepo) UpdateStatus(ctx context.Context, id, status string, processed bool) error {
	args := m.Called(ctx, id, status, processed)
	return args.Error(0)
}

type MockCampaignAdminRepo struct {
	mock.Mock
}

func (m *MockCampaignAdminRepo) Create(ctx context.Context, c *entity.NewsletterCampaign) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCampaignAdminRepo) List(ctx context.Context) ([]*entity.NewsletterCampaign, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.NewsletterCampaign), args.Error(1)
}

func (m *MockCampaignAdminRepo) Schedule(ctx context.Context, id string, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockCampaignAdminRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func adminRouter(h *AdminHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/admin/jobs", h.HandleCreateOffer)
	r.Delete("/admin/jobs/{slug}", h.HandleDeleteOffer)
	r.Get("/admin/jobs/{slug}/applications", h.HandleListApplications)
	r.Patch("/admin/applications/{id}", h.HandleUpdateApplication)
	r.Post("/admin/campaigns", h.HandleCreateCampaign)
	r.Post("/admin/campaigns/{id}/schedule", h.HandleScheduleCampaign)
	return r
}

func TestAdmin_CreateOffer(t *testing.T) {
	offers := new(MockOfferAdminRepo)
	offers.On("Create", mock.Anything, mock.MatchedBy(func(o *entity.JobOffer) bool {
		return o.Slug == "consultant-paie" && o.Location == entity.DefaultJobLocation
	})).Return(nil)

	handler := NewAdminHandler(offers, new(MockAppAdminRepo), new(MockCampaignAdminRepo), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/jobs", strings.NewReader(`{
		"title": "Consultant Paie",
		"short_description": "Portefeuille de clients paie."
	}`))
	adminRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	offers.AssertExpectations(t)
}

func TestAdmin_CreateOfferSlugConflict(t *testing.T) {
	offers := new(MockOfferAdminRepo)
	offers.On("Create", mock.Anything, mock.Anything).Return(entity.ErrSlugAlreadyExists)

	handler := NewAdminHandler(offers, new(MockAppAdminRepo), new(MockCampaignAdminRepo), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/jobs", strings.NewReader(`{
		"title": "Consultant Paie",
		"short_description": "Desc."
	}`))
	adminRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAdmin_ListApplications(t *testing.T) {
	offers := new(MockOfferAdminRepo)
	apps := new(MockAppAdminRepo)

	offers.On("FindBySlug", mock.Anything, "consultant-paie").Return(&entity.JobOffer{ID: "offer-1", Slug: "consultant-paie"}, nil)
	apps.On("ListByOffer", mock.Anything, "offer-1").Return([]*entity.JobApplication{
		{ID: "app-1", FirstName: "Awa", LastName: "Koné", Status: entity.ApplicationStatusReceived},
	}, nil)

	handler := NewAdminHandler(offers, apps, new(MockCampaignAdminRepo), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/jobs/consultant-paie/applications", nil)
	adminRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "app-1")
}

func TestAdmin_UpdateApplicationStatus(t *testing.T) {
	apps := new(MockAppAdminRepo)
	apps.On("UpdateStatus", mock.Anything, "app-1", "retenu", true).Return(nil)

	handler := NewAdminHandler(new(MockOfferAdminRepo), apps, new(MockCampaignAdminRepo), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/admin/applications/app-1",
		strings.NewReader(`{"status": "retenu", "processed": true}`))
	adminRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	apps.AssertExpectations(t)
}

func TestAdmin_CreateCampaignStartsAsDraft(t *testing.T) {
	campaigns := new(MockCampaignAdminRepo)
	campaigns.On("Create", mock.Anything, mock.MatchedBy(func(c *entity.NewsletterCampaign) bool {
		return c.Status == entity.CampaignStatusDraft
	})).Return(nil)

	handler := NewAdminHandler(new(MockOfferAdminRepo), new(MockAppAdminRepo), campaigns, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/campaigns", strings.NewReader(`{
		"title": "Voeux 2026",
		"subject": "Bonne année",
		"body_html": "<p>Meilleurs voeux</p>"
	}`))
	adminRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	campaigns.AssertExpectations(t)
}

func TestAdmin_ScheduleCampaignRequiresDate(t *testing.T) {
	handler := NewAdminHandler(new(MockOfferAdminRepo), new(MockAppAdminRepo), new(MockCampaignAdminRepo), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/campaigns/camp-1/schedule", strings.NewReader(`{}`))
	adminRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdmin_ScheduleSentCampaign(t *testing.T) {
	campaigns := new(MockCampaignAdminRepo)
	campaigns.On("Schedule", mock.Anything, "camp-1", mock.Anything).Return(entity.ErrCampaignNotFound)

	handler := NewAdminHandler(new(MockOfferAdminRepo), new(MockAppAdminRepo), campaigns, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/campaigns/camp-1/schedule",
		strings.NewReader(`{"scheduled_at": "2026-09-01T08:00:00Z"}`))
	adminRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
