package static

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
)

// Options configures Handler and Middleware.
type Options struct {
	// CacheControl is sent with every served file when set.
	CacheControl string

	Logger *slog.Logger
}

type server struct {
	src    Source
	opts   Options
	logger *slog.Logger
}

func newServer(src Source, opts Options) *server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &server{src: src, opts: opts, logger: logger}
}

// Handler serves files from src and answers 404 for anything else.
func Handler(src Source, opts Options) http.Handler {
	s := newServer(src, opts)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		if !s.serve(w, r) {
			http.NotFound(w, r)
		}
	})
}

// Middleware serves files from src when they exist and passes every other
// request to next. Paths trying to leave the root get 404 without reaching
// next.
func Middleware(src Source, opts Options) func(http.Handler) http.Handler {
	s := newServer(src, opts)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}
			if _, err := CleanPath(r.URL.Path); errors.Is(err, ErrInvalidPath) {
				http.NotFound(w, r)
				return
			}
			if !s.serve(w, r) {
				next.ServeHTTP(w, r)
			}
		})
	}
}

// serve writes the file for r and reports whether one was found.
func (s *server) serve(w http.ResponseWriter, r *http.Request) bool {
	name, err := CleanPath(r.URL.Path)
	if err != nil {
		return false
	}

	f, err := s.src.Open(r.Context(), name)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Error("static open failed", "path", name, "error", err)
		}
		return false
	}
	defer f.Body.Close()

	h := w.Header()
	if f.ContentType != "" {
		h.Set("Content-Type", f.ContentType)
	}
	if s.opts.CacheControl != "" {
		h.Set("Cache-Control", s.opts.CacheControl)
	}

	if rs, ok := f.Body.(io.ReadSeeker); ok {
		http.ServeContent(w, r, name, f.ModTime, rs)
		return true
	}

	if f.Size > 0 {
		h.Set("Content-Length", strconv.FormatInt(f.Size, 10))
	}
	if !f.ModTime.IsZero() {
		h.Set("Last-Modified", f.ModTime.UTC().Format(http.TimeFormat))
	}
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		if _, err := io.Copy(w, f.Body); err != nil {
			s.logger.Debug("static copy interrupted", "path", name, "error", err)
		}
	}
	return true
}
