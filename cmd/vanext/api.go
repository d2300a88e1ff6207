package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vanext/internal/config"
	"github.com/vango-dev/vanext/internal/storage"
	"github.com/vango-dev/vanext/pkg/api"
)

func apiCmd(flags *globalFlags) *cobra.Command {
	var (
		port    int
		tracing bool
	)

	cmd := &cobra.Command{
		Use:   "api",
		Short: "Run the users API server",
		Long: `Run the users REST API with its OpenAPI document (/openapi.json),
Swagger UI (/docs) and Prometheus metrics (/metrics).

The repository is selected by api.storage in the config, or by
VANEXT_STORAGE and DATABASE_URL. SQL stores are migrated on start.

Examples:
  vanext api
  VANEXT_STORAGE=sqlite DATABASE_URL=file:users.db vanext api`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := flags.loadConfig()
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.API.Port = port
			}

			ctx, stop := signalContext(cmd.Context())
			defer stop()
			return runAPI(ctx, cfg, logger, tracing)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from config or API_PORT)")
	cmd.Flags().BoolVar(&tracing, "tracing", false, "Record OpenTelemetry spans for requests")

	return cmd
}

// runAPI opens and migrates the store, then serves the API until ctx is
// done.
func runAPI(ctx context.Context, cfg *config.Config, logger *slog.Logger, tracing bool) error {
	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := api.New(api.Config{
		Repo:    store.Users,
		Logger:  logger,
		Tracing: tracing,
		Origins: cfg.APIOrigins(),
	})

	logger.Info("api listening", "addr", cfg.APIAddress(), "storage", cfg.API.Storage.Driver)
	return listenAndServe(ctx, logger, cfg.APIAddress(), srv)
}

func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*storage.Store, error) {
	store, err := storage.Open(ctx, storage.Options{
		Driver: cfg.API.Storage.Driver,
		DSN:    cfg.API.Storage.DSN,
		Logger: logger,
	})
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}
