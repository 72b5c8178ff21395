package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/codepilot/codepilot/internal/config"
	"github.com/codepilot/codepilot/internal/credits"
	"github.com/codepilot/codepilot/internal/review"
	"github.com/codepilot/codepilot/internal/server/handler"
	"github.com/codepilot/codepilot/internal/storage"
)

// NewRouter creates and configures the HTTP router with middleware and API
// routes. Identity is resolved per request from the bearer token; requests
// without one run anonymously.
func NewRouter(cfg *config.Config, svc *review.Service, ledger *credits.Ledger, store storage.Store, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.WriteTimeout))
	r.Use(handler.Identity(store, logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	reviewHandler := handler.NewReviewHandler(svc, cfg.Server.MaxBodyBytes, logger)
	creditsHandler := handler.NewCreditsHandler(ledger, logger)

	r.Route("/api/review", func(r chi.Router) {
		r.Post("/", reviewHandler.Submit)
		r.Get("/", reviewHandler.ListAll)
		r.Get("/language/{language}", reviewHandler.ListByLanguage)
	})

	r.Route("/api/credits", func(r chi.Router) {
		r.Get("/balance", creditsHandler.Balance)
		r.Get("/history", creditsHandler.History)
		r.Post("/purchase", creditsHandler.Purchase)
	})

	return r
}
