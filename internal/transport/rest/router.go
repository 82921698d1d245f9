package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	internal "github.com/tradingwalla/backend/internal"
	"github.com/tradingwalla/backend/internal/brochure"
	"github.com/tradingwalla/backend/internal/contact"
	"github.com/tradingwalla/backend/internal/forms"
	"github.com/tradingwalla/backend/internal/payment"
	"github.com/tradingwalla/backend/internal/transport/middleware"
)

func RegisterAllRoutes(
	router *chi.Mux,
	db *sqlx.DB,
	cfg *internal.Config,
	paymentHandler *payment.Handler,
	webhookHandler *payment.WebhookHandler,
	brochureHandler *brochure.Handler,
	contactHandler *contact.Handler,
	formsHandler *forms.Handler,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	if cfg.Observability.Metrics.Enabled {
		router.Use(middleware.Metrics)
	}

	// Root info routes kept for uptime probes pointed at the old
	// deployment.
	router.Get("/", infoHandler("Tradingwalla backend is running"))
	router.Get("/test", infoHandler("Test endpoint is working"))

	if cfg.Observability.Metrics.Enabled {
		path := cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		router.Handle(path, promhttp.Handler())
	}

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/payment", func(pr chi.Router) {
			pr.Post("/create-payment-session", paymentHandler.CreateSession)
			pr.Post("/success", webhookHandler.HandleSuccess)
			pr.Post("/failure", webhookHandler.HandleFailure)
			pr.Get("/status/{txnid}", paymentHandler.GetStatus)
			pr.Get("/all", paymentHandler.ListAll)
			pr.Post("/test-hash", paymentHandler.TestHash)
		})

		r.Route("/brochure", func(br chi.Router) {
			br.Post("/submit", brochureHandler.Submit)
			br.Get("/all", brochureHandler.ListAll)
		})

		r.Route("/contact", func(cr chi.Router) {
			cr.Post("/submit", contactHandler.Submit)
			cr.Get("/all", contactHandler.ListAll)
		})

		r.Route("/forms", func(fr chi.Router) {
			fr.Post("/", formsHandler.Submit)
			fr.Get("/all", formsHandler.ListAll)
		})
	})
}

func infoHandler(message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":   true,
			"message":   message,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
