package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/goinvoice/internal/adapter/http/handler"
	"github.com/iho/goinvoice/internal/adapter/http/middleware"
	"github.com/iho/goinvoice/internal/infrastructure/metrics"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	InvoiceHandler *handler.InvoiceHandler
	HealthHandler  *handler.HealthHandler
	Logger         zerolog.Logger

	// Optional
	Metrics     *metrics.Metrics
	Gatherer    prometheus.Gatherer
	Idempotency *middleware.IdempotencyMiddleware
	RateLimiter *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)

	if cfg.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/invoices", func(r chi.Router) {
			r.Get("/", cfg.InvoiceHandler.List)

			r.Group(func(r chi.Router) {
				if cfg.RateLimiter != nil {
					r.Use(cfg.RateLimiter.Limit)
				}
				if cfg.Idempotency != nil {
					r.Use(cfg.Idempotency.Wrap)
				}
				r.Post("/", cfg.InvoiceHandler.Create)
			})
		})
	})

	return r
}
