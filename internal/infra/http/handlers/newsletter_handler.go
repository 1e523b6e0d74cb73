package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rhpartnersafric/website-api/internal/infra/http/middleware"
	"github.com/rhpartnersafric/website-api/internal/usecase"
)

// SubscriberDeactivator couvre le désabonnement, qui ne passe pas par le
// use case d'inscription.
type SubscriberDeactivator interface {
	Deactivate(ctx context.Context, email string) error
}

type NewsletterHandler struct {
	UseCase     *usecase.SubscribeNewsletterUseCase
	Subscribers SubscriberDeactivator
	rateLimiter *RateLimiter
}

func NewNewsletterHandler(uc *usecase.SubscribeNewsletterUseCase, subscribers SubscriberDeactivator) *NewsletterHandler {
	return &NewsletterHandler{
		UseCase:     uc,
		Subscribers: subscribers,
		rateLimiter: NewRateLimiter(10, time.Minute),
	}
}

func (h *NewsletterHandler) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeErrorResponse(w, http.StatusTooManyRequests, "RATE_LIMITED", "Trop de requêtes, réessayez plus tard.")
		return
	}

	var input usecase.NewsletterInput
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
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Inscription impossible pour le moment")
		return
	}

	middleware.RecordSubmission("newsletter")
	writeJSON(w, http.StatusOK, output)
}

// HandleUnsubscribe désactive l'abonné sans supprimer la ligne: l'historique
// est conservé et une ré-inscription le réactivera.
func (h *NewsletterHandler) HandleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Email == "" {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "email est requis")
		return
	}

	// Email inconnu: même réponse qu'un désabonnement réussi, pour ne pas
	// permettre l'énumération des adresses inscrites.
	err := h.Subscribers.Deactivate(r.Context(), input.Email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Désinscription impossible pour le moment")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Vous êtes désinscrit de la newsletter.",
	})
}
