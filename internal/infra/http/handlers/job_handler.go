package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rhpartnersafric/website-api/internal/entity"
	"github.com/rhpartnersafric/website-api/internal/infra/http/middleware"
	"github.com/rhpartnersafric/website-api/internal/usecase"
)

// Taille maximale du formulaire de candidature (CV + lettre compris).
const maxApplicationFormSize = 16 << 20 // 16 MiB

type JobOfferLister interface {
	ListPublished(ctx context.Context) ([]*entity.JobOffer, error)
	FindBySlug(ctx context.Context, slug string) (*entity.JobOffer, error)
}

type JobHandler struct {
	Offers      JobOfferLister
	Apply       *usecase.SubmitJobApplicationUseCase
	rateLimiter *RateLimiter
}

func NewJobHandler(offers JobOfferLister, apply *usecase.SubmitJobApplicationUseCase) *JobHandler {
	return &JobHandler{
		Offers:      offers,
		Apply:       apply,
		rateLimiter: NewRateLimiter(5, time.Minute),
	}
}

func (h *JobHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	offers, err := h.Offers.ListPublished(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Impossible de charger les offres")
		return
	}
	writeJSON(w, http.StatusOK, offers)
}

func (h *JobHandler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	offer, err := h.Offers.FindBySlug(r.Context(), slug)
	if errors.Is(err, entity.ErrJobOfferNotFound) {
		writeErrorResponse(w, http.StatusNotFound, "OFFER_NOT_FOUND", "Offre introuvable")
		return
	}
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Impossible de charger l'offre")
		return
	}
	writeJSON(w, http.StatusOK, offer)
}

// HandleApply reçoit la candidature en multipart: champs texte + CV +
// lettre de motivation.
func (h *JobHandler) HandleApply(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeErrorResponse(w, http.StatusTooManyRequests, "RATE_LIMITED", "Trop de requêtes, réessayez plus tard.")
		return
	}

	if err := r.ParseMultipartForm(maxApplicationFormSize); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_FORM", "Formulaire multipart invalide")
		return
	}

	input := usecase.JobApplicationInput{
		OfferSlug: chi.URLParam(r, "slug"),
		FirstName: r.FormValue("first_name"),
		LastName:  r.FormValue("last_name"),
		Email:     r.FormValue("email"),
		Phone:     r.FormValue("phone"),
		Notes:     r.FormValue("notes"),
	}

	if cv, header, err := r.FormFile("cv"); err == nil {
		defer cv.Close()
		input.CV = &usecase.FileUpload{Filename: header.Filename, Content: cv}
	}
	if letter, header, err := r.FormFile("cover_letter"); err == nil {
		defer letter.Close()
		input.CoverLetter = &usecase.FileUpload{Filename: header.Filename, Content: letter}
	}

	output, err := h.Apply.Execute(r.Context(), input)
	if err != nil {
		var verr *usecase.ValidationFailedError
		if errors.As(err, &verr) {
			writeValidationErrors(w, verr)
			return
		}
		var derr *usecase.DomainError
		if errors.As(err, &derr) && derr.Code == "OFFER_NOT_FOUND" {
			writeErrorResponse(w, http.StatusNotFound, derr.Code, derr.Message)
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Impossible d'enregistrer la candidature")
		return
	}

	middleware.RecordSubmission("job_application")
	writeJSON(w, http.StatusCreated, output)
}
