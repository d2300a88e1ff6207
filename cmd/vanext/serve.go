package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vanext"
	"github.com/vango-dev/vanext/app"
	"github.com/vango-dev/vanext/app/providers"
)

const shutdownTimeout = 10 * time.Second

func serveCmd(flags *globalFlags) *cobra.Command {
	var (
		port    int
		tracing bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the frontend server",
		Long: `Serve the public directory and the server-rendered pages of the app.

Static files win over routes. The wasm client is served from the build
output under /.vanext/; run "vanext build" first.

Examples:
  vanext serve
  PORT=8080 vanext serve`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := flags.loadConfig()
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Port = port
			}

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			public, err := vanext.PublicSource(ctx, cfg, os.Getenv)
			if err != nil {
				return err
			}

			providers.APIBaseURL = cfg.API.BaseURL
			providers.APIPrefix = cfg.API.Prefix

			opts := vanext.OptionsFromConfig(cfg)
			opts.Routes = app.Routes
			opts.Registry = app.NewRegistry()
			opts.Public = public
			opts.Tracing = tracing
			opts.Logger = logger

			logger.Info("frontend listening", "addr", cfg.Address(), "routes", app.Routes.Len(), "dev", opts.Dev)
			return listenAndServe(ctx, logger, cfg.Address(), vanext.New(opts))
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from config or PORT)")
	cmd.Flags().BoolVar(&tracing, "tracing", false, "Record OpenTelemetry spans for requests")

	return cmd
}

// listenAndServe serves h on addr until ctx is done, then shuts down
// gracefully.
func listenAndServe(ctx context.Context, logger *slog.Logger, addr string, h http.Handler) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return serveListener(ctx, logger, ln, h)
}

func serveListener(ctx context.Context, logger *slog.Logger, ln net.Listener, h http.Handler) error {
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down", "addr", ln.Addr().String())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	<-errCh
	return nil
}
