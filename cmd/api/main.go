package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/rhpartnersafric/website-api/internal/infra/database"
	"github.com/rhpartnersafric/website-api/internal/infra/http/handlers"
	"github.com/rhpartnersafric/website-api/internal/infra/http/middleware"
	"github.com/rhpartnersafric/website-api/internal/infra/logging"
	"github.com/rhpartnersafric/website-api/internal/infra/mail"
	"github.com/rhpartnersafric/website-api/internal/infra/queue"
	"github.com/rhpartnersafric/website-api/internal/infra/storage"
	"github.com/rhpartnersafric/website-api/internal/infra/worker"
	"github.com/rhpartnersafric/website-api/internal/usecase"
)

func main() {
	godotenv.Load()

	logger, err := logging.Init(logging.ConfigFromEnv())
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		logger.Fatal("connexion Postgres impossible", zap.Error(err))
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		getenv("RABBITMQ_USER", "guest"),
		getenv("RABBITMQ_PASS", "guest"),
		getenv("RABBITMQ_HOST", "localhost"),
		getenv("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		logger.Fatal("connexion RabbitMQ impossible", zap.Error(err))
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositories
	serviceRepo := database.NewServiceRepository(db)
	planRepo := database.NewPricingPlanRepository(db)
	testimonialRepo := database.NewTestimonialRepository(db)
	faqRepo := database.NewFAQRepository(db)
	slideRepo := database.NewHeroSlideRepository(db)
	contactRepo := database.NewContactRequestRepository(db)
	subscriberRepo := database.NewNewsletterSubscriberRepository(db)
	campaignRepo := database.NewNewsletterCampaignRepository(db)
	offerRepo := database.NewJobOfferRepository(db)
	applicationRepo := database.NewJobApplicationRepository(db)

	// 2. Adapters
	mailPort, _ := strconv.Atoi(getenv("MAIL_PORT", "587"))
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), mailPort,
		os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		getenv("MAIL_FROM", "no-reply@rhpartnersafric.com"),
	)
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	fileStore := storage.NewLocalStore(getenv("MEDIA_ROOT", "media"))

	// 3. Worker SMTP (consomme la file des livraisons)
	deliveryWorker := queue.NewWorker(rabbitMQ.Ch, mailSender, logger)
	go deliveryWorker.Start(queue.QueueName)

	// 4. UseCases
	contactUC := usecase.NewSubmitContactUseCase(contactRepo, mailSender, os.Getenv("CONTACT_NOTIFY_EMAIL"))
	newsletterUC := usecase.NewSubscribeNewsletterUseCase(subscriberRepo)
	applyUC := usecase.NewSubmitJobApplicationUseCase(offerRepo, applicationRepo, fileStore)
	dispatchUC := usecase.NewDispatchDueCampaignsUseCase(campaignRepo, subscriberRepo, producer)

	// 5. Scheduler des campagnes
	scheduler := worker.NewCampaignScheduler(dispatchUC, logger)
	go scheduler.Start(ctx)

	// 6. Handlers
	contentHandler := handlers.NewContentHandler(serviceRepo, planRepo, testimonialRepo, faqRepo, slideRepo)
	contactHandler := handlers.NewContactHandler(contactUC)
	newsletterHandler := handlers.NewNewsletterHandler(newsletterUC, subscriberRepo)
	jobHandler := handlers.NewJobHandler(offerRepo, applyUC)
	adminHandler := handlers.NewAdminHandler(offerRepo, applicationRepo, campaignRepo, contactRepo)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 7. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{getenv("CORS_ORIGIN", "*")},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/api/home", contentHandler.HandleHome)
	r.Get("/api/services", contentHandler.HandleServices)
	r.Get("/api/pricing", contentHandler.HandlePricing)
	r.Get("/api/testimonials", contentHandler.HandleTestimonials)
	r.Get("/api/faqs", contentHandler.HandleFAQs)
	r.Get("/api/hero-slides", contentHandler.HandleHeroSlides)

	r.Post("/api/contact", contactHandler.Handle)
	r.Post("/api/newsletter/subscribe", newsletterHandler.HandleSubscribe)
	r.Post("/api/newsletter/unsubscribe", newsletterHandler.HandleUnsubscribe)

	r.Get("/api/jobs", jobHandler.HandleList)
	r.Get("/api/jobs/{slug}", jobHandler.HandleDetail)
	r.Post("/api/jobs/{slug}/apply", jobHandler.HandleApply)

	r.Route("/admin", func(r chi.Router) {
		r.Get("/jobs", adminHandler.HandleListOffers)
		r.Post("/jobs", adminHandler.HandleCreateOffer)
		r.Put("/jobs/{slug}", adminHandler.HandleUpdateOffer)
		r.Delete("/jobs/{slug}", adminHandler.HandleDeleteOffer)
		r.Get("/jobs/{slug}/applications", adminHandler.HandleListApplications)
		r.Patch("/applications/{id}", adminHandler.HandleUpdateApplication)

		r.Get("/campaigns", adminHandler.HandleListCampaigns)
		r.Post("/campaigns", adminHandler.HandleCreateCampaign)
		r.Post("/campaigns/{id}/schedule", adminHandler.HandleScheduleCampaign)
		r.Delete("/campaigns/{id}", adminHandler.HandleDeleteCampaign)

		r.Get("/contact-requests", adminHandler.HandleListContacts)
	})

	port := ":" + getenv("PORT", "8080")
	logger.Info("serveur démarré", zap.String("addr", port))
	if err := http.ListenAndServe(port, r); err != nil {
		logger.Fatal("serveur arrêté", zap.Error(err))
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
