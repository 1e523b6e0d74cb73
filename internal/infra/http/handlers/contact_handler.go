package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rhpartnersafric/website-api/internal/infra/http/middleware"
	"github.com/rhpartnersafric/website-api/internal/usecase"
)

type ContactHandler struct {
	UseCase     *usecase.SubmitContactUseCase
	rateLimiter *RateLimiter
}

func NewContactHandler(uc *usecase.SubmitContactUseCase) *ContactHandler {
	return &ContactHandler{
		UseCase:     uc,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min par IP
	}
}

func (h *ContactHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeErrorResponse(w, http.StatusTooManyRequests, "RATE_LIMITED", "Trop de requêtes, réessayez plus tard.")
		return
	}

	var input usecase.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON invalide")
		return
	}

	output, err := h.UseCase.Execute(r.Context(), input)
	if err != nil {
		var verr *usecase.ValidationFailedError
		if errors.As(err, &verr) {
			writeValidationErrors(w, verr)
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Impossible d'enregistrer la demande")
		return
	}

	middleware.RecordSubmission("contact")
	writeJSON(w, http.StatusCreated, output)
}
