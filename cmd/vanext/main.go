// Command vanext runs, builds and generates code for a vanext project.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vango-dev/vanext"
	"github.com/vango-dev/vanext/internal/config"
	apperrors "github.com/vango-dev/vanext/internal/errors"
)

// Version information set at build time.
var (
	version = vanext.Version
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╦  ╦┌─┐┌┐┌┌─┐─┐ ┬┌┬┐
  ╚╗╔╝├─┤│││├┤ ┌┴┬┘ │
   ╚╝ ┴ ┴┘└┘└─┘┴ └─ ┴
`

// globalFlags are the persistent flags of the root command.
type globalFlags struct {
	dir     string
	verbose bool

	// jsonErrors is set once a production config is loaded, so errors
	// match the JSON logs.
	jsonErrors bool
}

func main() {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		apperrors.DisableColors()
	}
	flags := &globalFlags{}
	if err := newRootCmd(flags).Execute(); err != nil {
		printError(os.Stderr, err, flags.jsonErrors)
		os.Exit(1)
	}
}

// printError reports a failed command, as one JSON line in production.
func printError(w io.Writer, err error, jsonErrors bool) {
	if jsonErrors {
		apperrors.WriteJSON(w, err)
		return
	}
	apperrors.PrintError(err)
}

func newRootCmd(flags *globalFlags) *cobra.Command {

	rootCmd := &cobra.Command{
		Use:   "vanext",
		Short: "File-routed pages and a users API in Go",
		Long: `vanext serves server-rendered pages routed from the app/pages
directory, hydrates them in the browser with a wasm client, and runs a
users REST API with a generated OpenAPI document.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&flags.dir, "dir", "C", "", "Project directory (default: nearest directory with vanext.json or go.mod)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log debug messages")

	rootCmd.AddCommand(
		apiCmd(flags),
		serveCmd(flags),
		devCmd(flags),
		buildCmd(flags),
		genCmd(flags),
		migrateCmd(flags),
		versionCmd(),
	)
	return rootCmd
}

// loadConfig loads the project configuration and installs the default
// logger for it.
func (f *globalFlags) loadConfig() (*config.Config, *slog.Logger, error) {
	var (
		cfg *config.Config
		err error
	)
	if f.dir != "" {
		cfg, err = config.LoadOrDefault(f.dir)
	} else {
		cfg, err = config.LoadFromWorkingDir()
	}
	if err != nil {
		return nil, nil, err
	}

	f.jsonErrors = cfg.IsProduction()
	logger := newLogger(os.Stderr, cfg.IsProduction(), f.verbose)
	slog.SetDefault(logger)
	return cfg, logger, nil
}

// newLogger returns a text logger, or a JSON logger in production.
func newLogger(w io.Writer, production, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if production {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// signalContext is canceled on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// printBanner prints the ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// colorOutput is set when stdout is a terminal.
var colorOutput = term.IsTerminal(int(os.Stdout.Fd()))

// mark colors a status symbol for terminals.
func mark(code, symbol string) string {
	if !colorOutput {
		return symbol
	}
	return code + symbol + "\033[0m"
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("%s %s\n", mark("\033[32m", "✓"), fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("%s %s\n", mark("\033[33m", "⚠"), fmt.Sprintf(format, args...))
}
