// Package middleware provides net/http middleware shared by the API and
// frontend servers.
//
// This package includes:
//   - structured request logging through log/slog
//   - Prometheus request metrics
//   - OpenTelemetry server spans
//
// All constructors return func(http.Handler) http.Handler so they plug
// straight into chi:
//
//	r := chi.NewRouter()
//	r.Use(chimw.RequestID)
//	r.Use(middleware.Logger(logger))
//	r.Use(middleware.OpenTelemetry())
//	r.Use(middleware.Prometheus())
//	r.Handle("/metrics", promhttp.Handler())
//
// # Prometheus Metrics
//
//   - vanext_http_requests_total{method,route,status}
//   - vanext_http_request_duration_seconds{method,route}
//   - vanext_http_requests_in_flight
//
// The route label is the chi route pattern (for example /api/users/{id}),
// never the raw path, which keeps label cardinality bounded.
//
// # Context Propagation
//
// The OpenTelemetry middleware stores the span in the request context.
// Handlers pass r.Context() down to the repository, so SQL calls inherit
// the trace.
package middleware
