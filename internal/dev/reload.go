package dev

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

// ReloadMessage is the text frame that makes browsers reload.
const ReloadMessage = "reload"

// ReloadServer keeps the set of connected browsers and broadcasts reload
// messages to them. Clients failing a write are dropped; there is no
// queueing.
type ReloadServer struct {
	path     string
	logger   *slog.Logger
	clients  map[*websocket.Conn]struct{}
	mu       sync.Mutex
	upgrader websocket.Upgrader
	srv      *http.Server
}

// NewReloadServer creates a reload server answering on path.
func NewReloadServer(path string, logger *slog.Logger) *ReloadServer {
	if path == "" {
		path = "/hmr"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ReloadServer{
		path:    path,
		logger:  logger,
		clients: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Pages are served from another port.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handler returns the router serving the socket path.
func (r *ReloadServer) Handler() http.Handler {
	mux := chi.NewRouter()
	mux.Get(r.path, r.HandleWebSocket)
	return mux
}

// ListenAndServe serves the socket on addr until ctx is done.
func (r *ReloadServer) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return r.Serve(ctx, ln)
}

// Serve serves the socket on ln until ctx is done.
func (r *ReloadServer) Serve(ctx context.Context, ln net.Listener) error {
	r.mu.Lock()
	r.srv = &http.Server{Handler: r.Handler(), ReadHeaderTimeout: 5 * time.Second}
	srv := r.srv
	r.mu.Unlock()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case <-ctx.Done():
		r.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		<-errCh
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// HandleWebSocket upgrades the request and holds the connection until the
// browser goes away.
func (r *ReloadServer) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := r.upgrader.Upgrade(w, req, nil)
	if err != nil {
		r.logger.Debug("reload upgrade failed", "error", err)
		return
	}

	r.mu.Lock()
	r.clients[conn] = struct{}{}
	r.mu.Unlock()
	r.logger.Debug("reload client connected", "remote", req.RemoteAddr)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	r.drop(conn)
}

// NotifyReload sends the reload message to every client and returns how
// many received it.
func (r *ReloadServer) NotifyReload() int {
	return r.Broadcast(ReloadMessage)
}

// Broadcast sends msg as a text frame to every client.
func (r *ReloadServer) Broadcast(msg string) int {
	r.mu.Lock()
	clients := make([]*websocket.Conn, 0, len(r.clients))
	for c := range r.clients {
		clients = append(clients, c)
	}
	r.mu.Unlock()

	sent := 0
	for _, c := range clients {
		if err := c.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
			r.drop(c)
			continue
		}
		sent++
	}
	return sent
}

func (r *ReloadServer) drop(conn *websocket.Conn) {
	r.mu.Lock()
	_, ok := r.clients[conn]
	delete(r.clients, conn)
	r.mu.Unlock()
	if ok {
		conn.Close()
	}
}

// ClientCount returns the number of connected clients.
func (r *ReloadServer) ClientCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

// Close closes all client connections.
func (r *ReloadServer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for c := range r.clients {
		c.Close()
		delete(r.clients, c)
	}
}
