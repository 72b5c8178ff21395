// Package app initializes and orchestrates the main components of the
// CodePilot service: the credit ledger, the review pipeline, the pending-debit
// reconciler, and the HTTP server.
package app

import (
	"log/slog"

	"github.com/codepilot/codepilot/internal/config"
	"github.com/codepilot/codepilot/internal/review"
	"github.com/codepilot/codepilot/internal/server"
)

// App holds the main application components.
type App struct {
	cfg        *config.Config
	server     *server.Server
	reconciler *review.Reconciler
	logger     *slog.Logger
}

// NewApp assembles the application from its already-constructed parts.
func NewApp(cfg *config.Config, srv *server.Server, reconciler *review.Reconciler, logger *slog.Logger) *App {
	return &App{
		cfg:        cfg,
		server:     srv,
		reconciler: reconciler,
		logger:     logger,
	}
}

// Start launches the reconciler and runs the HTTP server. It blocks until
// the server stops.
func (a *App) Start() error {
	a.logger.Info("starting CodePilot",
		"server_port", a.cfg.Server.Port,
		"model", a.cfg.Inference.Model,
		"reconcile_interval", a.cfg.Credits.ReconcileInterval)

	a.reconciler.Start()

	if err := a.server.Start(); err != nil {
		a.logger.Error("failed to start HTTP server", "error", err)
		return err
	}
	return nil
}

// Stop shuts down the application cleanly.
func (a *App) Stop() error {
	a.logger.Info("shutting down CodePilot services")

	// Stop the HTTP server first to prevent new incoming requests.
	serverErr := a.server.Stop()
	if serverErr != nil {
		a.logger.Error("error during HTTP server shutdown", "error", serverErr)
		// Continue to stop other components even if the server failed.
	}

	// Stop the reconciler, letting an in-flight sweep finish.
	a.reconciler.Stop()

	if serverErr != nil {
		a.logger.Error("CodePilot stopped with errors", "error", serverErr)
		return serverErr
	}

	a.logger.Info("CodePilot stopped successfully")
	return nil
}
