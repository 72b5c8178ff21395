// Code generated manually. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package wire

import (
	"fmt"

	"github.com/codepilot/codepilot/internal/app"
	"github.com/codepilot/codepilot/internal/config"
	"github.com/codepilot/codepilot/internal/credits"
	"github.com/codepilot/codepilot/internal/db"
	"github.com/codepilot/codepilot/internal/logger"
	"github.com/codepilot/codepilot/internal/review"
	"github.com/codepilot/codepilot/internal/server"
)

// InitializeApp creates and wires all application dependencies.
func InitializeApp() (*app.App, func(), error) {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	slogLogger := logger.NewLogger(provideLoggerConfig(cfg), provideLogWriter(cfg))

	// Database (runs migrations)
	dbConn, dbCleanup, err := db.NewDatabase(provideDBConfig(cfg))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Storage
	store := provideStore(dbConn)

	// Credit catalog and ledger
	catalog, err := provideCatalog(cfg, slogLogger)
	if err != nil {
		dbCleanup()
		return nil, nil, fmt.Errorf("failed to load credit catalog: %w", err)
	}
	ledger := credits.NewLedger(store, catalog, slogLogger)

	// Inference provider
	provider := provideProvider(cfg)

	// Review pipeline
	svc := review.NewService(ledger, provider, store, slogLogger)

	// Pending-debit reconciler
	reconciler := provideReconciler(store, ledger, cfg, slogLogger)

	// HTTP server
	router := provideRouter(cfg, svc, ledger, store, slogLogger)
	srv := server.NewServer(cfg, router, slogLogger)

	// App
	application := app.NewApp(cfg, srv, reconciler, slogLogger)

	cleanup := func() {
		dbCleanup()
	}

	return application, cleanup, nil
}
