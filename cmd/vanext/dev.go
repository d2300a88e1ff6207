package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vango-dev/vanext/internal/config"
	"github.com/vango-dev/vanext/internal/dev"
)

func devCmd(flags *globalFlags) *cobra.Command {
	var (
		port        int
		host        string
		withAPI     bool
		openBrowser bool
	)

	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Start the development server",
		Long: `Start the development loop.

Go changes regenerate the route table, rebuild the wasm client and the
frontend server, restart it and reload connected browsers. CSS and other
static changes only reload.

Examples:
  vanext dev
  vanext dev --api
  vanext dev --port=8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := exec.LookPath("go"); err != nil {
				warn("Go is not installed or not in PATH")
				info("Install Go from https://go.dev/dl/")
				return err
			}

			cfg, logger, err := flags.loadConfig()
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Port = port
			}
			if host != "" {
				cfg.Dev.Host = host
			}

			printBanner()
			fmt.Println("  dev")
			fmt.Println()

			ctx, stop := signalContext(cmd.Context())
			defer stop()
			return runDev(ctx, cfg, logger, withAPI, openBrowser)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Frontend port (default from config)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host of the reload socket (default from config)")
	cmd.Flags().BoolVar(&withAPI, "api", false, "Also run the API server in this process")
	cmd.Flags().BoolVarP(&openBrowser, "open", "o", false, "Open the browser once the first build is up")

	return cmd
}

func runDev(ctx context.Context, cfg *config.Config, logger *slog.Logger, withAPI, openBrowser bool) error {
	firstBuild := make(chan bool, 1)
	server, err := dev.NewServer(dev.ServerOptions{
		Config:    cfg,
		Logger:    logger,
		BuildVars: clientVars(cfg),
		OnBuildComplete: func(ok bool) {
			select {
			case firstBuild <- ok:
			default:
			}
			if ok {
				success("Built")
			} else {
				warn("Build failed, waiting for changes")
			}
		},
		OnReload: func(clients int) {
			success("Reloaded %d browsers", clients)
		},
	})
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return server.Start(ctx) })
	if withAPI {
		g.Go(func() error { return runAPI(ctx, cfg, logger, false) })
	}
	if openBrowser {
		g.Go(func() error {
			select {
			case ok := <-firstBuild:
				if ok {
					openURL(fmt.Sprintf("http://%s:%d", cfg.Dev.Host, cfg.Port))
				}
			case <-ctx.Done():
			case <-time.After(2 * time.Minute):
			}
			return nil
		})
	}
	return g.Wait()
}

// openURL opens a URL in the default browser.
func openURL(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err == nil {
		go cmd.Wait()
	}
}
