package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rhpartnersafric/website-api/internal/entity"
)

type JobOfferAdminRepository interface {
	ListAll(ctx context.Context) ([]*entity.JobOffer, error)
	FindBySlug(ctx context.Context, slug string) (*entity.JobOffer, error)
	Create(ctx context.Context, o *entity.JobOffer) error
	Update(ctx context.Context, o *entity.JobOffer) error
	Delete(ctx context.Context, id string) error
}

type JobApplicationAdminRepository interface {
	ListByOffer(ctx context.Context, jobOfferID string) ([]*entity.JobApplication, error)
	UpdateStatus(ctx context.Context, id, status string, processed bool) error
}

type CampaignAdminRepository interface {
	Create(ctx context.Context, c *entity.NewsletterCampaign) error
	List(ctx context.Context) ([]*entity.NewsletterCampaign, error)
	Schedule(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
}

type ContactRequestLister interface {
	List(ctx context.Context) ([]*entity.ContactRequest, error)
}

// AdminHandler expose le CRUD consommé par la console d'administration.
// Pas d'autre règle métier ici que les contraintes de champs des entités.
type AdminHandler struct {
	Offers    JobOfferAdminRepository
	Apps      JobApplicationAdminRepository
	Campaigns CampaignAdminRepository
	Contacts  ContactRequestLister
}

func NewAdminHandler(
	offers JobOfferAdminRepository,
	apps JobApplicationAdminRepository,
	campaigns CampaignAdminRepository,
	contacts ContactRequestLister,
) *AdminHandler {
	return &AdminHandler{
		Offers:    offers,
		Apps:      apps,
		Campaigns: campaigns,
		Contacts:  contacts,
	}
}

type jobOfferPayload struct {
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	Location         string     `json:"location"`
	ContractType     string     `json:"contract_type"`
	ShortDescription string     `json:"short_description"`
	Description      string     `json:"description"`
	IsPublished      *bool      `json:"is_published"`
	PublishedAt      *time.Time `json:"published_at"`
	ClosingDate      *time.Time `json:"closing_date"`
}

func (h *AdminHandler) HandleListOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.Offers.ListAll(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Impossible de charger les offres")
		return
	}
	writeJSON(w, http.StatusOK, offers)
}

func (h *AdminHandler) HandleCreateOffer(w http.ResponseWriter, r *http.Request) {
	var payload jobOfferPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON invalide")
		return
	}

	offer, err := entity.NewJobOffer(
		payload.Title, payload.Slug, payload.Location,
		payload.ContractType, payload.ShortDescription, payload.Description,
	)
	if err != nil {
		writeErrorResponse(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error())
		return
	}
	if payload.IsPublished != nil {
		offer.IsPublished = *payload.IsPublished
		if !offer.IsPublished {
			offer.PublishedAt = nil
		}
	}
	if payload.PublishedAt != nil {
		offer.PublishedAt = payload.PublishedAt
	}
	offer.ClosingDate = payload.ClosingDate

	if err := h.Offers.Create(r.Context(), offer); err != nil {
		if errors.Is(err, entity.ErrSlugAlreadyExists) {
			writeErrorResponse(w, http.StatusConflict, "SLUG_TAKEN", "Ce slug est déjà utilisé")
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Création impossible")
		return
	}

	writeJSON(w, http.StatusCreated, offer)
}

func (h *AdminHandler) HandleUpdateOffer(w http.ResponseWriter, r *http.Request) {
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

	var payload jobOfferPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON invalide")
		return
	}

	if payload.Title != "" {
		offer.Title = payload.Title
	}
	if payload.Slug != "" {
		offer.Slug = payload.Slug
	}
	if payload.Location != "" {
		offer.Location = payload.Location
	}
	if payload.ContractType != "" {
		offer.ContractType = payload.ContractType
	}
	if payload.ShortDescription != "" {
		offer.ShortDescription = payload.ShortDescription
	}
	if payload.Description != "" {
		offer.Description = payload.Description
	}
	if payload.IsPublished != nil {
		offer.IsPublished = *payload.IsPublished
	}
	if payload.PublishedAt != nil {
		offer.PublishedAt = payload.PublishedAt
	}
	if payload.ClosingDate != nil {
		offer.ClosingDate = payload.ClosingDate
	}

	if err := offer.Validate(); err != nil {
		writeErrorResponse(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.Offers.Update(r.Context(), offer); err != nil {
		if errors.Is(err, entity.ErrSlugAlreadyExists) {
			writeErrorResponse(w, http.StatusConflict, "SLUG_TAKEN", "Ce slug est déjà utilisé")
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Mise à jour impossible")
		return
	}

	writeJSON(w, http.StatusOK, offer)
}

// HandleDeleteOffer supprime l'offre et, par cascade, ses candidatures.
func (h *AdminHandler) HandleDeleteOffer(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Offers.Delete(r.Context(), offer.ID); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Suppression impossible")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) HandleListApplications(w http.ResponseWriter, r *http.Request) {
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

	apps, err := h.Apps.ListByOffer(r.Context(), offer.ID)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Impossible de charger les candidatures")
		return
	}
	writeJSON(w, http.StatusOK, apps)
}

func (h *AdminHandler) HandleUpdateApplication(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var payload struct {
		Status    string `json:"status"`
		Processed bool   `json:"processed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON invalide")
		return
	}
	if payload.Status == "" {
		payload.Status = entity.ApplicationStatusReceived
	}

	if err := h.Apps.UpdateStatus(r.Context(), id, payload.Status, payload.Processed); err != nil {
		writeErrorResponse(w, http.StatusNotFound, "APPLICATION_NOT_FOUND", "Candidature introuvable")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) HandleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.Campaigns.List(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Impossible de charger les campagnes")
		return
	}
	writeJSON(w, http.StatusOK, campaigns)
}

func (h *AdminHandler) HandleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Title    string `json:"title"`
		Subject  string `json:"subject"`
		BodyHTML string `json:"body_html"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON invalide")
		return
	}

	campaign, err := entity.NewNewsletterCampaign(payload.Title, payload.Subject, payload.BodyHTML)
	if err != nil {
		writeErrorResponse(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.Campaigns.Create(r.Context(), campaign); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Création impossible")
		return
	}

	writeJSON(w, http.StatusCreated, campaign)
}

// HandleScheduleCampaign planifie l'envoi; le scheduler fera partir la
// campagne au premier tick après scheduled_at.
func (h *AdminHandler) HandleScheduleCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var payload struct {
		ScheduledAt time.Time `json:"scheduled_at"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.ScheduledAt.IsZero() {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "scheduled_at est requis")
		return
	}

	if err := h.Campaigns.Schedule(r.Context(), id, payload.ScheduledAt); err != nil {
		if errors.Is(err, entity.ErrCampaignNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "CAMPAIGN_NOT_FOUND", "Campagne introuvable ou déjà envoyée")
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Planification impossible")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) HandleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Campaigns.Delete(r.Context(), id); err != nil {
		if errors.Is(err, entity.ErrCampaignNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "CAMPAIGN_NOT_FOUND", "Campagne introuvable")
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Suppression impossible")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) HandleListContacts(w http.ResponseWriter, r *http.Request) {
	requests, err := h.Contacts.List(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Impossible de charger les demandes")
		return
	}
	writeJSON(w, http.StatusOK, requests)
}
