package httpadapter

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"promo-ads/internal/core/domain"
	"promo-ads/internal/core/port"
)

// UserHeader carries the id of the acting user.
const UserHeader = "X-User-ID"

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds a CampaignUseCase to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router.
type Handler struct {
	svc              port.CampaignUseCase
	logger           *slog.Logger
	router           chi.Router
	fallbackImageURL string
	metricsPath      string
}

// Option configures a Handler.
type Option func(*Handler)

// WithFallbackImage sets the image reported for campaigns without one.
func WithFallbackImage(url string) Option {
	return func(h *Handler) { h.fallbackImageURL = url }
}

// WithMetrics exposes Prometheus metrics on path.
func WithMetrics(path string) Option {
	return func(h *Handler) { h.metricsPath = path }
}

// NewHandler creates a handler with all routes configured. Every /api/v1
// route requires the UserHeader.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{svc: svc, logger: logger}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(Metrics)

	if h.metricsPath != "" {
		r.Handle(h.metricsPath, promhttp.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.requireUser)

		r.Get("/estimates", h.handleEstimate)

		r.Route("/drafts", func(r chi.Router) {
			r.Post("/", h.handleStartDraft)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetDraft)
				r.Patch("/", h.handleUpdateDraft)
				r.Delete("/", h.handleCancelDraft)
				r.Post("/advance", h.handleAdvanceDraft)
				r.Post("/retreat", h.handleRetreatDraft)
				r.Post("/submit", h.handleSubmitDraft)
			})
		})

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.handleListCampaigns)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetCampaign)
				r.Patch("/", h.handleEditCampaign)
				r.Delete("/", h.handleDeleteCampaign)
				r.Post("/duplicate", h.handleDuplicateCampaign)
				r.Post("/status", h.handleSetStatus)
			})
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

type userKey struct{}

// requireUser rejects requests without an acting user and stores the user
// in the request context.
func (h *Handler) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := domain.UserContext{UserID: r.Header.Get(UserHeader)}
		if !user.Valid() {
			http.Error(w, "missing "+UserHeader+" header", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey{}, user)))
	})
}

func userFrom(r *http.Request) domain.UserContext {
	user, _ := r.Context().Value(userKey{}).(domain.UserContext)
	return user
}
