package wire

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/google/wire"

	"github.com/codepilot/codepilot/internal/app"
	"github.com/codepilot/codepilot/internal/config"
	"github.com/codepilot/codepilot/internal/credits"
	"github.com/codepilot/codepilot/internal/db"
	"github.com/codepilot/codepilot/internal/llm"
	"github.com/codepilot/codepilot/internal/logger"
	"github.com/codepilot/codepilot/internal/review"
	"github.com/codepilot/codepilot/internal/server"
	"github.com/codepilot/codepilot/internal/storage"
)

var AppSet = wire.NewSet(
	app.NewApp,
	config.Load,
	logger.NewLogger,
	db.NewDatabase,
	credits.NewLedger,
	review.NewService,
	server.NewServer,
	provideStore,
	provideCatalog,
	provideProvider,
	provideReconciler,
	provideRouter,
	provideLoggerConfig,
	provideLogWriter,
	provideDBConfig,
)

func provideStore(dbConn *db.DB) storage.Store {
	return storage.NewStore(dbConn.DB)
}

func provideCatalog(cfg *config.Config, logger *slog.Logger) (*credits.Catalog, error) {
	catalog, err := credits.LoadCatalog(cfg.Credits.CatalogPath)
	if err != nil {
		if errors.Is(err, credits.ErrCatalogNotFound) {
			logger.Warn("credit catalog file not found, using built-in packages",
				"path", cfg.Credits.CatalogPath)
			return catalog, nil
		}
		return nil, err
	}
	return catalog, nil
}

func provideProvider(cfg *config.Config) llm.Provider {
	return llm.NewOllamaClient(cfg.Inference)
}

func provideReconciler(store storage.Store, ledger *credits.Ledger, cfg *config.Config, logger *slog.Logger) *review.Reconciler {
	return review.NewReconciler(store, ledger,
		cfg.Credits.ReconcileInterval,
		cfg.Credits.ReconcileGrace,
		cfg.Credits.ReconcileParallel,
		logger)
}

func provideRouter(cfg *config.Config, svc *review.Service, ledger *credits.Ledger, store storage.Store, logger *slog.Logger) http.Handler {
	return server.NewRouter(cfg, svc, ledger, store, logger)
}

func provideLoggerConfig(cfg *config.Config) logger.Config {
	return cfg.Logging
}

func provideLogWriter(cfg *config.Config) io.Writer {
	switch cfg.Logging.Output {
	case "stderr":
		return os.Stderr
	case "file":
		f, _ := os.OpenFile("codepilot.log", os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
		return f
	default:
		return os.Stdout
	}
}

func provideDBConfig(cfg *config.Config) *config.DBConfig {
	return &cfg.Database
}
