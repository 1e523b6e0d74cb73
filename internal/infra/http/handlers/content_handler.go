package handlers

import (
	"context"
	"net/http"

	"github.com/rhpartnersafric/website-api/internal/entity"
)

type ServiceLister interface {
	ListActive(ctx context.Context) ([]*entity.Service, error)
}

type PricingPlanLister interface {
	ListActive(ctx context.Context) ([]*entity.PricingPlan, error)
	FindFeatured(ctx context.Context) (*entity.PricingPlan, error)
}

type TestimonialLister interface {
	ListActive(ctx context.Context, limit int) ([]*entity.Testimonial, error)
}

type FAQLister interface {
	ListActive(ctx context.Context) ([]*entity.FAQ, error)
}

type HeroSlideLister interface {
	ListActive(ctx context.Context) ([]*entity.HeroSlide, error)
}

// La home affiche au plus 4 témoignages.
const homeTestimonialLimit = 4

// ContentHandler sert les projections de lecture du site: uniquement des
// contenus actifs, dans l'ordre d'affichage, sans aucune mutation.
type ContentHandler struct {
	Services     ServiceLister
	Plans        PricingPlanLister
	Testimonials TestimonialLister
	FAQs         FAQLister
	Slides       HeroSlideLister
}

func NewContentHandler(
	services ServiceLister,
	plans PricingPlanLister,
	testimonials TestimonialLister,
	faqs FAQLister,
	slides HeroSlideLister,
) *ContentHandler {
	return &ContentHandler{
		Services:     services,
		Plans:        plans,
		Testimonials: testimonials,
		FAQs:         faqs,
		Slides:       slides,
	}
}

// pricingPlanView enrichit le plan du découpage features_list attendu
// par le front.
type pricingPlanView struct {
	*entity.PricingPlan
	FeaturesList []string `json:"features_list"`
}

func newPricingPlanView(p *entity.PricingPlan) *pricingPlanView {
	if p == nil {
		return nil
	}
	return &pricingPlanView{PricingPlan: p, FeaturesList: p.FeaturesList()}
}

type homeResponse struct {
	HeroSlides   []*entity.HeroSlide   `json:"hero_slides"`
	Services     []*entity.Service     `json:"services"`
	PricingPlans []*pricingPlanView    `json:"pricing_plans"`
	FeaturedPlan *pricingPlanView      `json:"featured_plan"`
	Testimonials []*entity.Testimonial `json:"testimonials"`
	FAQs         []*entity.FAQ         `json:"faqs"`
}

// HandleHome agrège toutes les sections de la one-page.
func (h *ContentHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	slides, err := h.Slides.ListActive(ctx)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Impossible de charger le contenu")
		return
	}
	services, err := h.Services.ListActive(ctx)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Impossible de charger le contenu")
		return
	}
	plans, err := h.Plans.ListActive(ctx)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Impossible de charger le contenu")
		return
	}
	featured, err := h.Plans.FindFeatured(ctx)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Impossible de charger le contenu")
		return
	}
	testimonials, err := h.Testimonials.ListActive(ctx, homeTestimonialLimit)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Impossible de charger le contenu")
		return
	}
	faqs, err := h.FAQs.ListActive(ctx)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Impossible de charger le contenu")
		return
	}

	planViews := make([]*pricingPlanView, 0, len(plans))
	for _, p := range plans {
		planViews = append(planViews, newPricingPlanView(p))
	}

	writeJSON(w, http.StatusOK, homeResponse{
		HeroSlides:   slides,
		Services:     services,
		PricingPlans: planViews,
		FeaturedPlan: newPricingPlanView(featured),
		Testimonials: testimonials,
		FAQs:         faqs,
	})
}

func (h *ContentHandler) HandleServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.Services.ListActive(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Impossible de charger les services")
		return
	}
	writeJSON(w, http.StatusOK, services)
}

func (h *ContentHandler) HandlePricing(w http.ResponseWriter, r *http.Request) {
	plans, err := h.Plans.ListActive(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Impossible de charger les tarifs")
		return
	}
	featured, err := h.Plans.FindFeatured(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Impossible de charger les tarifs")
		return
	}

	planViews := make([]*pricingPlanView, 0, len(plans))
	for _, p := range plans {
		planViews = append(planViews, newPricingPlanView(p))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"pricing_plans": planViews,
		"featured_plan": newPricingPlanView(featured),
	})
}

func (h *ContentHandler) HandleTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.Testimonials.ListActive(r.Context(), homeTestimonialLimit)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Impossible de charger les témoignages")
		return
	}
	writeJSON(w, http.StatusOK, testimonials)
}

func (h *ContentHandler) HandleFAQs(w http.ResponseWriter, r *http.Request) {
	faqs, err := h.FAQs.ListActive(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Impossible de charger la FAQ")
		return
	}
	writeJSON(w, http.StatusOK, faqs)
}

func (h *ContentHandler) HandleHeroSlides(w http.ResponseWriter, r *http.Request) {
	slides, err := h.Slides.ListActive(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Impossible de charger le hero")
		return
	}
	writeJSON(w, http.StatusOK, slides)
}
