package dev

import (
	"context"
	"log/slog"
	"net"
	"path/filepath"
	"sync"
	"time"

	"github.com/vango-dev/vanext/internal/build"
	"github.com/vango-dev/vanext/internal/config"
)

// ServerOptions configures the development server.
type ServerOptions struct {
	// Config is the project configuration.
	Config *config.Config

	Logger *slog.Logger

	// BuildVars are set in the wasm client at link time.
	BuildVars map[string]string

	// OnBuildComplete is called after every rebuild attempt.
	OnBuildComplete func(ok bool)

	// OnReload is called with the number of browsers told to reload.
	OnReload func(clients int)
}

// Server runs the dev loop: it watches the app, regenerates routes,
// rebuilds the wasm client and the frontend server, restarts the server
// and tells browsers to reload.
type Server struct {
	config   *config.Config
	options  ServerOptions
	logger   *slog.Logger
	builder  *build.Builder
	compiler *Compiler
	watcher  *Watcher
	reload   *ReloadServer
	changeCh chan []Change

	mu      sync.Mutex
	running bool
}

// NewServer creates a development server.
func NewServer(options ServerOptions) (*Server, error) {
	cfg := options.Config
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	watcher, err := NewWatcher(WatcherConfig{
		Paths:    CollectWatchPaths(cfg),
		Debounce: cfg.DebounceDuration(),
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}

	return &Server{
		config:  cfg,
		options: options,
		logger:  logger,
		builder: build.New(cfg, build.Options{Vars: options.BuildVars, Logger: logger}),
		compiler: NewCompiler(CompilerConfig{
			ProjectPath: cfg.Dir(),
			BinaryPath:  filepath.Join(cfg.Dir(), ".vanext", "server"),
			CachePath:   filepath.Join(cfg.Dir(), ".vanext", "cache"),
			Args:        []string{"serve"},
		}),
		watcher:  watcher,
		reload:   NewReloadServer(cfg.Dev.ReloadPath, logger),
		changeCh: make(chan []Change, 16),
	}, nil
}

// Start builds, starts the frontend server and runs the dev loop until
// ctx is done.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if !s.rebuild(ctx) {
		s.logger.Warn("initial build failed, waiting for changes")
	}

	s.watcher.OnChange(func(changes []Change) {
		select {
		case s.changeCh <- changes:
		default:
			s.logger.Warn("change queue full, dropping batch", "files", len(changes))
		}
	})
	if err := s.watcher.Start(ctx); err != nil {
		s.Stop()
		return err
	}
	go s.processChanges(ctx)

	errCh := make(chan error, 1)
	go func() { errCh <- s.reload.ListenAndServe(ctx, s.config.ReloadAddress()) }()

	s.logger.Info("dev server running",
		"url", "http://"+s.config.Address(),
		"reload", s.config.ReloadURL(),
		"watching", s.watcher.WatchList())

	var err error
	select {
	case <-ctx.Done():
	case err = <-errCh:
	}
	s.Stop()
	return err
}

// Stop stops the watcher, the server process and reload clients.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false
	s.watcher.Stop()
	s.compiler.Stop()
	s.reload.Close()
}

// processChanges handles batches one at a time, merging batches that
// queued up during a build.
func (s *Server) processChanges(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case changes := <-s.changeCh:
			for draining := true; draining; {
				select {
				case more := <-s.changeCh:
					changes = append(changes, more...)
				default:
					draining = false
				}
			}
			s.handleChanges(ctx, changes)
		}
	}
}

func (s *Server) handleChanges(ctx context.Context, changes []Change) {
	if len(changes) == 0 {
		return
	}
	for _, c := range changes {
		s.logger.Info("changed", "path", s.relPath(c.Path), "type", c.Type.String())
	}

	// Static files are read from disk per request; only Go needs a build.
	if HasGo(changes) && !s.rebuild(ctx) {
		return
	}
	s.notifyReload()
}

// rebuild regenerates routes, builds the client and the server, and
// restarts the server. It reports success.
func (s *Server) rebuild(ctx context.Context) bool {
	ok := s.doRebuild(ctx)
	if s.options.OnBuildComplete != nil {
		s.options.OnBuildComplete(ok)
	}
	return ok
}

func (s *Server) doRebuild(ctx context.Context) bool {
	s.logger.Info("building")
	res, err := s.builder.Build(ctx)
	if err != nil {
		s.logger.Error("client build failed", "error", err)
		return false
	}

	result := s.compiler.Build(ctx)
	if !result.Success {
		s.logger.Error("server build failed", "output", result.Output, "error", result.Error)
		return false
	}
	s.logger.Info("built",
		"routes", res.Routes,
		"client", res.Duration.Round(time.Millisecond),
		"server", result.Duration.Round(time.Millisecond))

	if err := s.compiler.Restart(ctx); err != nil {
		s.logger.Error("failed to start server", "error", err)
		return false
	}
	if err := waitForPort(ctx, s.config.Address(), 5*time.Second); err != nil {
		s.logger.Warn("server did not come up", "address", s.config.Address(), "error", err)
	}
	return true
}

func (s *Server) notifyReload() {
	n := s.reload.NotifyReload()
	s.logger.Info("reloaded", "clients", n)
	if s.options.OnReload != nil {
		s.options.OnReload(n)
	}
}

func (s *Server) relPath(path string) string {
	if rel, err := filepath.Rel(s.config.Dir(), path); err == nil {
		return rel
	}
	return path
}

// waitForPort dials addr until it accepts a connection or timeout passes.
func waitForPort(ctx context.Context, addr string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var d net.Dialer
	for {
		conn, err := d.DialContext(ctx, "tcp", addr)
		if err == nil {
			conn.Close()
			return nil
		}
		select {
		case <-ctx.Done():
			return err
		case <-time.After(50 * time.Millisecond):
		}
	}
}
