package vanext

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vango-dev/vanext/internal/build"
	"github.com/vango-dev/vanext/pkg/middleware"
	"github.com/vango-dev/vanext/pkg/page"
	"github.com/vango-dev/vanext/pkg/render"
	"github.com/vango-dev/vanext/pkg/routepath"
	"github.com/vango-dev/vanext/pkg/router"
	"github.com/vango-dev/vanext/pkg/static"
)

// App is the frontend server. It implements http.Handler.
type App struct {
	routes   *router.Table
	registry *page.Registry
	opts     Options
	logger   *slog.Logger
	handler  http.Handler
}

// New builds the frontend router: the client assets under /.vanext/,
// then path canonicalization, public files and page routing.
func New(opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	a := &App{
		routes:   opts.Routes,
		registry: opts.Registry,
		opts:     opts,
		logger:   logger,
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(chimw.Recoverer)
	if opts.Tracing {
		r.Use(middleware.OpenTelemetry(middleware.WithTracerName("vanext")))
	}

	if opts.ClientDir != "" {
		prefix := build.ClientURLPrefix[:len(build.ClientURLPrefix)-1]
		r.Handle(build.ClientURLPrefix+"*", http.StripPrefix(prefix,
			static.Handler(static.NewDir(opts.ClientDir), static.Options{CacheControl: "no-cache", Logger: logger})))
	}

	r.Group(func(r chi.Router) {
		r.Use(canonicalPaths)
		if opts.Public != nil {
			r.Use(static.Middleware(opts.Public, static.Options{Logger: logger}))
		}
		r.Get("/*", a.servePage)
	})

	a.handler = r
	return a
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}

// Routes returns the route table.
func (a *App) Routes() *router.Table { return a.routes }

// Registry returns the page registry.
func (a *App) Registry() *page.Registry { return a.registry }

func (a *App) servePage(w http.ResponseWriter, r *http.Request) {
	match, ok := a.routes.Match(r.URL.Path, r.URL.RawQuery)
	if !ok {
		notFound(w)
		return
	}

	var buf bytes.Buffer
	if err := a.RenderMatch(r, match, &buf); err != nil {
		a.logger.Error("render failed", "route", match.Route, "page", match.PageID(), "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// RenderMatch writes the document for a matched route. Each request gets
// its own global store; state only lives on the client.
func (a *App) RenderMatch(r *http.Request, match *router.Match, buf *bytes.Buffer) error {
	data := page.FromMatch(match)
	ctx := page.NewContext(r.Context(), data, page.NewStore(), page.ServerNavigator{})

	body, err := a.registry.Render(ctx, match.PageID(), match.Layouts)
	if err != nil {
		return err
	}

	doc := render.Document{
		Body:      body,
		Route:     match.Route,
		Router:    data,
		Layouts:   match.Layouts,
		Title:     a.opts.Title,
		DevReload: a.opts.Dev,
		ReloadURL: a.opts.ReloadURL,
	}
	if a.opts.Assets != nil {
		doc.WasmExec = a.opts.Assets.Asset(build.WasmExecFile)
		doc.ClientScript = a.opts.Assets.Asset(build.LoaderFile)
	}
	return render.NewRenderer().RenderDocument(buf, doc)
}

// canonicalPaths redirects paths with empty, "." or ".." segments to their
// clean form. Paths that cannot be cleaned are not found.
func canonicalPaths(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res, err := routepath.Canonicalize(r.URL.Path)
		if err != nil {
			notFound(w)
			return
		}
		if res.Changed {
			target := res.Path
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}
			http.Redirect(w, r, target, http.StatusPermanentRedirect)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func notFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte("Not found"))
}
