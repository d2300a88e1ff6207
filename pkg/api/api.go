package api

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/vanext/pkg/middleware"
	"github.com/vango-dev/vanext/pkg/openapi"
	"github.com/vango-dev/vanext/pkg/users"
)

// Config configures the API server.
type Config struct {
	// Repo stores the users. Required.
	Repo users.Repository

	// Logger receives request and error logs. Default: slog.Default().
	Logger *slog.Logger

	// Info overrides the OpenAPI document metadata. Default: DefaultInfo.
	Info *openapi.Info

	// Registry receives the HTTP metrics and is exposed on /metrics.
	// Default: the Prometheus default registry.
	Registry *prometheus.Registry

	// Tracing enables the OpenTelemetry middleware.
	Tracing bool

	// Origins may call the API from a browser. Empty disables CORS.
	Origins []string
}

// Server is the HTTP API. It implements http.Handler.
type Server struct {
	repo    users.Repository
	logger  *slog.Logger
	info    openapi.Info
	spec    *openapi.Registry
	handler http.Handler

	docMu sync.Mutex
	doc   *openapi3.T
}

// New builds the API router.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	info := DefaultInfo
	if cfg.Info != nil {
		info = *cfg.Info
	}

	s := &Server{
		repo:   cfg.Repo,
		logger: logger,
		info:   info,
		spec:   openapi.NewRegistry(),
	}
	Describe(s.spec)

	var metrics func(http.Handler) http.Handler
	metricsHandler := promhttp.Handler()
	if cfg.Registry != nil {
		metrics = middleware.NewMetrics(middleware.WithRegistry(cfg.Registry)).Handler
		metricsHandler = promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{})
	} else {
		metrics = middleware.Prometheus()
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(chimw.Recoverer)
	if len(cfg.Origins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.Origins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}
	if cfg.Tracing {
		r.Use(middleware.OpenTelemetry())
	}
	r.Use(metrics)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("OK - backend running"))
	})
	r.Get("/openapi.json", s.serveDocument)
	r.Get("/docs", serveSwaggerUI("/openapi.json", info.Title))
	r.Handle("/metrics", metricsHandler)

	r.Route("/api/users", func(r chi.Router) {
		r.Get("/", s.listUsers)
		r.Post("/", s.createUser)
		r.Delete("/", s.deleteUser)
		r.Get("/{id}", s.getUser)
		r.Put("/{id}", s.updateUser)
	})

	s.handler = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Document returns the OpenAPI document of the API. It is generated on
// first use and cached.
func (s *Server) Document(ctx context.Context) (*openapi3.T, error) {
	s.docMu.Lock()
	defer s.docMu.Unlock()
	if s.doc != nil {
		return s.doc, nil
	}
	doc, err := s.spec.Generate(ctx, s.info)
	if err != nil {
		return nil, err
	}
	s.doc = doc
	return doc, nil
}

func (s *Server) serveDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.Document(r.Context())
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// Document generates the API document without a running server.
func Document(ctx context.Context, info openapi.Info) (*openapi3.T, error) {
	reg := openapi.NewRegistry()
	Describe(reg)
	return reg.Generate(ctx, info)
}
