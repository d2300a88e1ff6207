package vanext

import (
	"log/slog"
	"path/filepath"

	"github.com/vango-dev/vanext/internal/build"
	"github.com/vango-dev/vanext/internal/config"
	"github.com/vango-dev/vanext/pkg/assets"
	"github.com/vango-dev/vanext/pkg/page"
	"github.com/vango-dev/vanext/pkg/router"
	"github.com/vango-dev/vanext/pkg/static"
)

// Options configures an App.
type Options struct {
	// Routes is the generated route table. Required.
	Routes *router.Table

	// Registry holds the pages, layouts and providers. Required.
	Registry *page.Registry

	// Public serves files before routing. Nil disables it.
	Public static.Source

	// ClientDir is the directory served under /.vanext/: client.wasm,
	// wasm_exec.js and client.js. Empty disables it.
	ClientDir string

	// Assets resolves the client script URLs. Nil uses the unversioned
	// names under /.vanext/.
	Assets assets.Resolver

	// Title is the document title. Default: "vanext".
	Title string

	// Dev injects the reload script connecting to ReloadURL.
	Dev       bool
	ReloadURL string

	// Tracing enables the OpenTelemetry middleware.
	Tracing bool

	// Logger receives request and render logs. Default: slog.Default().
	Logger *slog.Logger
}

// OptionsFromConfig maps the project config onto Options. The client
// manifest is read once, here. Routes, Registry and Public are left to
// the caller.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		ClientDir: cfg.ClientOutPath(),
		Assets: assets.LoadResolver(
			filepath.Join(cfg.ClientOutPath(), build.ManifestFile), build.ClientURLPrefix),
		Title:     cfg.Title,
		Dev:       !cfg.IsProduction(),
		ReloadURL: cfg.ReloadURL(),
	}
}
