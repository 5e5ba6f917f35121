package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/refinery-lab/groomctl/pkg/usecase"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router   chi.Router
	reviewUC usecase.Review
}

// NewServer creates a new HTTP server exposing the grooming API. The
// notifier may be nil, in which case completed sessions are not announced.
func NewServer(ctx context.Context, addr string, reviewUC usecase.Review, notifyUC *usecase.NotifyUseCase) *Server {
	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	h := &handler{reviewUC: reviewUC, notifyUC: notifyUC}

	// Health check
	router.Get("/health", handleHealth)

	// API routes
	router.Route("/api", func(r chi.Router) {
		r.Get("/rubric", h.handleGetRubric)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", h.handleStartSession)

			r.Route("/{sessionID}", func(r chi.Router) {
				r.Get("/", h.handleGetSession)
				r.Post("/complete", h.handleCompleteSession)
				r.Get("/report", h.handleGetReport)

				r.Route("/scores", func(r chi.Router) {
					r.Post("/", h.handleScoreItem)
					r.Post("/batch", h.handleScoreBatch)
					r.Put("/{itemKey}/points", h.handleSetStoryPoints)
				})
			})
		})
	})

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router:   router,
		reviewUC: reviewUC,
	}
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "groomctl",
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
	}
}
