package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/microfund/go-microfund/internal/metrics"
	"github.com/microfund/go-microfund/internal/utils"
	"github.com/microfund/go-microfund/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(chimiddleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Trace-ID"},
		AllowCredentials: true,
	}))

	h.authLimiter = newRateLimiter(h.cfg.AuthRatePerMinute, h.cfg.AuthRateBurst, h.cfg.LimiterCleanupInterval)

	router.Get("/", h.health)
	router.Handle("/metrics", metrics.Handler(h.gatherer))

	// routes without authorization, rate limited per client
	router.Group(func(r chi.Router) {
		r.Use(h.authLimiter.middleware)
		r.Post("/api/signup", h.signup)
		r.Post("/api/signin", h.signin)
	})

	// routes behind the access guard
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/submit-business-loan", h.submitBusinessLoan)
		r.Get("/api/get-business-loans", h.getBusinessLoans)
	})

	router.NotFound(h.notFound)

	return router
}

// Close stops the background goroutines started by Init.
func (h *Handler) Close() {
	if h.authLimiter != nil {
		h.authLimiter.Stop()
	}
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.APIResponse{
		Status:  "success",
		Message: "MicroFund API is up and running",
	}, http.StatusOK)
}

// notFound answers every unmatched path with the uniform error envelope.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, fmt.Sprintf("Cannot find %s on this server", r.URL.Path), http.StatusNotFound)
}
