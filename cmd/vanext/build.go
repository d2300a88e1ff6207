package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vanext/internal/build"
	"github.com/vango-dev/vanext/internal/config"
)

func buildCmd(flags *globalFlags) *cobra.Command {
	var (
		output     string
		clean      bool
		skipRoutes bool
		ldflags    string
		tags       []string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the wasm client",
		Long: `Regenerate the route table and build the browser client.

This command:
  • Scans app/pages and writes app/routes_gen.go
  • Compiles cmd/client to client.wasm (GOOS=js GOARCH=wasm)
  • Copies wasm_exec.js from the Go installation
  • Writes the client.js loader and manifest.json

Examples:
  vanext build
  vanext build --clean
  vanext build --output=public-dist`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := flags.loadConfig()
			if err != nil {
				return err
			}
			if output != "" {
				cfg.Build.Output = output
			}

			builder := build.New(cfg, build.Options{
				LDFlags:    ldflags,
				Vars:       clientVars(cfg),
				Tags:       tags,
				SkipRoutes: skipRoutes,
				Logger:     logger,
				OnProgress: printStep,
			})
			if clean {
				info("Cleaning output directory...")
				if err := builder.Clean(); err != nil {
					return err
				}
			}

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			result, err := builder.Build(ctx)
			if err != nil {
				return err
			}
			for _, w := range result.Warnings {
				warn("%s", w)
			}

			fmt.Println()
			success("Build complete in %s", result.Duration.Round(1000000))
			fmt.Println()
			fmt.Println("  Output:")
			fmt.Printf("    %s/\n", relTo(cfg.Dir(), cfg.ClientOutPath()))
			fmt.Printf("    ├── %s  (%s)\n", build.WasmFile, formatBytes(result.WasmSize))
			fmt.Printf("    ├── %s\n", build.WasmExecFile)
			fmt.Printf("    ├── %s\n", build.LoaderFile)
			fmt.Printf("    └── %s\n", build.ManifestFile)
			fmt.Println()
			fmt.Println("  To run:")
			fmt.Println("    vanext serve")
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default from config)")
	cmd.Flags().BoolVar(&clean, "clean", false, "Clean output directory before build")
	cmd.Flags().BoolVar(&skipRoutes, "skip-routes", false, "Keep the existing routes_gen.go")
	cmd.Flags().StringVar(&ldflags, "ldflags", "", "Linker flags for the wasm build (default from config)")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Build tags for the wasm build (default from config)")

	return cmd
}

// formatBytes formats bytes as a human-readable string.
func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}

func relTo(base, path string) string {
	if rel, err := filepath.Rel(base, path); err == nil {
		return rel
	}
	return path
}

// printStep prints a build step verbatim.
func printStep(step string) {
	info("%s", step)
}

const providersPkg = "github.com/vango-dev/vanext/app/providers"

// clientVars points the wasm client at the configured API. Vars from the
// config take precedence.
func clientVars(cfg *config.Config) map[string]string {
	vars := map[string]string{
		providersPkg + ".APIBaseURL": cfg.API.BaseURL,
		providersPkg + ".APIPrefix":  cfg.API.Prefix,
	}
	for k, v := range cfg.Build.Vars {
		vars[k] = v
	}
	return vars
}
