package handlers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/rhpartnersafric/website-api/internal/entity"
	"github.com/rhpartnersafric/website-api/internal/usecase"
)

type MockOfferRepo struct {
	mock.Mock
}

func (m *MockOfferRepo) ListPublished(ctx context.Context) ([]*entity.JobOffer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.JobOffer), args.Error(1)
}

func (m *MockOfferRepo) FindBySlug(ctx context.Context, slug string) (*entity.JobOffer, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.JobOffer), args.Error(1)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, a *entity.JobApplication) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

type MockFiles struct {
	mock.Mock
}

func (m *MockFiles) Save(ctx context.Context, path string, r io.Reader) error {
	args := m.Called(ctx, path, r)
	return args.Error(0)
}

func (m *MockFiles) Remove(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func jobRouter(h *JobHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/api/jobs", h.HandleList)
	r.Get("/api/jobs/{slug}", h.HandleDetail)
	r.Post("/api/jobs/{slug}/apply", h.HandleApply)
	return r
}

func applicationForm(t *testing.T, fields map[string]string, withCV, withLetter bool) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		assert.NoError(t, w.WriteField(k, v))
	}
	if withCV {
		fw, err := w.CreateFormFile("cv", "cv.pdf")
		assert.NoError(t, err)
		fw.Write([]byte("contenu cv"))
	}
	if withLetter {
		fw, err := w.CreateFormFile("cover_letter", "lettre.pdf")
		assert.NoError(t, err)
		fw.Write([]byte("contenu lettre"))
	}
	assert.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestJobHandler_Detail(t *testing.T) {
	offers := new(MockOfferRepo)
	offers.On("FindBySlug", mock.Anything, "consultant-paie").Return(&entity.JobOffer{
		ID: "offer-1", Title: "Consultant Paie", Slug: "consultant-paie",
	}, nil)

	handler := NewJobHandler(offers, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/jobs/consultant-paie", nil)
	jobRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Consultant Paie")
}

func TestJobHandler_DetailNotFound(t *testing.T) {
	offers := new(MockOfferRepo)
	offers.On("FindBySlug", mock.Anything, "inconnue").Return(nil, entity.ErrJobOfferNotFound)

	handler := NewJobHandler(offers, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/jobs/inconnue", nil)
	jobRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestJobHandler_ApplyCreated(t *testing.T) {
	offers := new(MockOfferRepo)
	apps := new(MockApplicationRepo)
	files := new(MockFiles)

	offers.On("FindBySlug", mock.Anything, "consultant-paie").Return(&entity.JobOffer{
		ID: "offer-1", Slug: "consultant-paie", IsPublished: true,
	}, nil)
	files.On("Save", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	apps.On("Create", mock.Anything, mock.Anything).Return(nil)

	handler := NewJobHandler(offers, usecase.NewSubmitJobApplicationUseCase(offers, apps, files))

	body, contentType := applicationForm(t, map[string]string{
		"first_name": "Awa",
		"last_name":  "Koné",
		"email":      "awa@example.com",
		"phone":      "+2250700000000",
	}, true, true)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/jobs/consultant-paie/apply", body)
	req.Header.Set("Content-Type", contentType)
	jobRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	files.AssertNumberOfCalls(t, "Save", 2)
	apps.AssertExpectations(t)
}

func TestJobHandler_ApplyUnknownOffer(t *testing.T) {
	offers := new(MockOfferRepo)
	apps := new(MockApplicationRepo)
	files := new(MockFiles)

	offers.On("FindBySlug", mock.Anything, "inconnue").Return(nil, entity.ErrJobOfferNotFound)

	handler := NewJobHandler(offers, usecase.NewSubmitJobApplicationUseCase(offers, apps, files))

	body, contentType := applicationForm(t, map[string]string{
		"first_name": "Awa",
		"last_name":  "Koné",
		"email":      "awa@example.com",
		"phone":      "+2250700000000",
	}, true, true)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/jobs/inconnue/apply", body)
	req.Header.Set("Content-Type", contentType)
	jobRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	files.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestJobHandler_ApplyMissingCV(t *testing.T) {
	offers := new(MockOfferRepo)
	apps := new(MockApplicationRepo)
	files := new(MockFiles)

	offers.On("FindBySlug", mock.Anything, "consultant-paie").Return(&entity.JobOffer{
		ID: "offer-1", Slug: "consultant-paie", IsPublished: true,
	}, nil)

	handler := NewJobHandler(offers, usecase.NewSubmitJobApplicationUseCase(offers, apps, files))

	body, contentType := applicationForm(t, map[string]string{
		"first_name": "Awa",
		"last_name":  "Koné",
		"email":      "awa@example.com",
		"phone":      "+2250700000000",
	}, false, true)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/jobs/consultant-paie/apply", body)
	req.Header.Set("Content-Type", contentType)
	jobRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "cv")
	apps.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
