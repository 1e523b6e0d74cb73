package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/rhpartnersafric/website-api/internal/entity"
	"github.com/rhpartnersafric/website-api/internal/usecase"
)

type MockContactRepo struct {
	mock.Mock
}

func (m *MockContactRepo) Create(ctx context.Context, c *entity.ContactRequest) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContactRepo) List(ctx context.Context) ([]*entity.ContactRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ContactRequest), args.Error(1)
}

func newContactRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestContactHandler_Created(t *testing.T) {
	repo := new(MockContactRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	handler := NewContactHandler(usecase.NewSubmitContactUseCase(repo, nil, ""))

	rec := httptest.NewRecorder()
	handler.Handle(rec, newContactRequest(`{
		"full_name": "Awa Koné",
		"email": "awa@example.com",
		"service": "paie",
		"message": "Besoin d'un devis."
	}`))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["id"])
	repo.AssertExpectations(t)
}

func TestContactHandler_InvalidJSON(t *testing.T) {
	handler := NewContactHandler(usecase.NewSubmitContactUseCase(new(MockContactRepo), nil, ""))

	rec := httptest.NewRecorder()
	handler.Handle(rec, newContactRequest(`{pas du json`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactHandler_ValidationErrorsPerField(t *testing.T) {
	repo := new(MockContactRepo)
	handler := NewContactHandler(usecase.NewSubmitContactUseCase(repo, nil, ""))

	rec := httptest.NewRecorder()
	handler.Handle(rec, newContactRequest(`{"full_name": "Awa", "email": "invalide", "message": ""}`))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION_ERROR", resp.Error)
	assert.Contains(t, resp.Fields, "email")
	assert.Contains(t, resp.Fields, "message")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestContactHandler_RateLimited(t *testing.T) {
	repo := new(MockContactRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	handler := NewContactHandler(usecase.NewSubmitContactUseCase(repo, nil, ""))

	body := `{"full_name": "Awa", "email": "awa@example.com", "message": "Bonjour"}`

	var last int
	for i := 0; i < 11; i++ {
		rec := httptest.NewRecorder()
		req := newContactRequest(body)
		req.RemoteAddr = "10.0.0.1:1234"
		handler.Handle(rec, req)
		last = rec.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, last)
}
