package dev

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/goleak"

	"github.com/vango-dev/vanext/internal/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func newTestWatcher(t *testing.T, dir string) (*Watcher, chan []Change) {
	t.Helper()
	w, err := NewWatcher(WatcherConfig{
		Paths:    []string{dir},
		Debounce: 50 * time.Millisecond,
		Logger:   discard,
	})
	if err != nil {
		t.Fatalf("NewWatcher error: %v", err)
	}
	batches := make(chan []Change, 10)
	w.OnChange(func(c []Change) { batches <- c })
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start error: %v", err)
	}
	t.Cleanup(w.Stop)
	return w, batches
}

func waitBatch(t *testing.T, batches chan []Change) []Change {
	t.Helper()
	select {
	case b := <-batches:
		return b
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for change")
		return nil
	}
}

func TestWatcher_Modify(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "index.go")
	if err := os.WriteFile(file, []byte("package pages"), 0644); err != nil {
		t.Fatal(err)
	}

	_, batches := newTestWatcher(t, dir)

	if err := os.WriteFile(file, []byte("package pages\n\nfunc Page() {}"), 0644); err != nil {
		t.Fatal(err)
	}

	batch := waitBatch(t, batches)
	if len(batch) != 1 {
		t.Fatalf("got %d changes, want 1: %v", len(batch), batch)
	}
	if batch[0].Path != file || batch[0].Type != ChangeGo {
		t.Errorf("change = %+v, want Go change on %s", batch[0], file)
	}
}

func TestWatcher_Debounce(t *testing.T) {
	dir := t.TempDir()
	_, batches := newTestWatcher(t, dir)

	for _, name := range []string{"a.go", "b.go", "c.css"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	batch := waitBatch(t, batches)
	var names []string
	for _, c := range batch {
		names = append(names, filepath.Base(c.Path))
	}
	if got := strings.Join(names, ","); got != "a.go,b.go,c.css" {
		t.Errorf("batch = %s, want a.go,b.go,c.css", got)
	}
}

func TestWatcher_NewDirectory(t *testing.T) {
	dir := t.TempDir()
	w, batches := newTestWatcher(t, dir)

	sub := filepath.Join(dir, "book", "_id_")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for !contains(w.WatchList(), sub) {
		if time.Now().After(deadline) {
			t.Fatalf("%s never watched, list %v", sub, w.WatchList())
		}
		time.Sleep(10 * time.Millisecond)
	}

	file := filepath.Join(sub, "index.go")
	if err := os.WriteFile(file, []byte("package book"), 0644); err != nil {
		t.Fatal(err)
	}

	for {
		batch := waitBatch(t, batches)
		for _, c := range batch {
			if c.Path == file {
				return
			}
		}
	}
}

func TestWatcher_Ignore(t *testing.T) {
	dir := t.TempDir()
	_, batches := newTestWatcher(t, dir)

	for _, name := range []string{"page_test.go", "routes_gen.go", "edit.swp", "global.css"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	batch := waitBatch(t, batches)
	if len(batch) != 1 || filepath.Base(batch[0].Path) != "global.css" || batch[0].Type != ChangeCSS {
		t.Errorf("batch = %+v, want only global.css", batch)
	}
}

func TestWatcher_StopTwice(t *testing.T) {
	w, err := NewWatcher(WatcherConfig{Paths: []string{t.TempDir()}, Logger: discard})
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	w.Stop()
	w.Stop()

	select {
	case <-w.Done():
	default:
		t.Error("Done should be closed after Stop")
	}
}

func TestWatcher_ContextCancel(t *testing.T) {
	w, err := NewWatcher(WatcherConfig{Paths: []string{t.TempDir()}, Logger: discard})
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	cancel()

	select {
	case <-w.Done():
	case <-time.After(time.Second):
		t.Error("event loop did not exit on cancel")
	}
	w.Stop()
}

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want ChangeType
	}{
		{"app/pages/index.go", ChangeGo},
		{"app/public/global.css", ChangeCSS},
		{"app/public/STYLE.CSS", ChangeCSS},
		{"app/public/favicon.ico", ChangeAsset},
		{"README", ChangeAsset},
	}
	for _, tt := range tests {
		if got := classify(tt.path); got != tt.want {
			t.Errorf("classify(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestReloadServer_Broadcast(t *testing.T) {
	rs := NewReloadServer("/hmr", discard)
	srv := httptest.NewServer(rs.Handler())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/hmr"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}

	waitFor(t, func() bool { return rs.ClientCount() == 1 })

	if n := rs.NotifyReload(); n != 1 {
		t.Errorf("NotifyReload reached %d clients, want 1", n)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	kind, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read error: %v", err)
	}
	if kind != websocket.TextMessage || string(msg) != "reload" {
		t.Errorf("got (%d, %q), want text \"reload\"", kind, msg)
	}

	conn.Close()
	waitFor(t, func() bool { return rs.ClientCount() == 0 })
}

func TestReloadServer_WrongPath(t *testing.T) {
	rs := NewReloadServer("", discard)
	srv := httptest.NewServer(rs.Handler())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/other"
	if _, _, err := websocket.DefaultDialer.Dial(url, nil); err == nil {
		t.Error("expected dial to fail outside /hmr")
	}
	if n := rs.NotifyReload(); n != 0 {
		t.Errorf("NotifyReload with no clients = %d", n)
	}
}

func TestReloadServer_ServeStopsOnCancel(t *testing.T) {
	rs := NewReloadServer("/hmr", discard)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- rs.Serve(ctx, ln) }()

	url := "ws://" + ln.Addr().String() + "/hmr"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer conn.Close()
	waitFor(t, func() bool { return rs.ClientCount() == 1 })

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Serve did not return")
	}
	if rs.ClientCount() != 0 {
		t.Error("clients should be closed on shutdown")
	}
}

func TestCollectWatchPaths(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default(dir)
	cfg.Dev.Watch = []string{"pkg", "app/pages/book", "/abs/extra"}

	got := CollectWatchPaths(cfg)
	want := []string{
		filepath.Join(dir, "app"),
		filepath.Join(dir, "cmd/client"),
		filepath.Join(dir, "pkg"),
		"/abs/extra",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CollectWatchPaths = %v, want %v", got, want)
	}
}

func TestCompiler_Defaults(t *testing.T) {
	c := NewCompiler(CompilerConfig{ProjectPath: "/proj", Tags: []string{"a", "b"}, LDFlags: "-s"})

	if c.BinaryPath() != filepath.Join("/proj", ".vanext", "server") {
		t.Errorf("BinaryPath = %q", c.BinaryPath())
	}
	got := strings.Join(c.BuildArgs(), " ")
	want := "build -o /proj/.vanext/server -tags a,b -ldflags -s ./cmd/vanext"
	if got != want {
		t.Errorf("BuildArgs = %q, want %q", got, want)
	}
	if c.IsRunning() {
		t.Error("new compiler should not be running")
	}
	c.Stop()
}

func TestWaitForPort(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := ln.Addr().String()
	accepted := make(chan struct{})
	go func() {
		defer close(accepted)
		if c, err := ln.Accept(); err == nil {
			c.Close()
		}
	}()

	if err := waitForPort(context.Background(), addr, time.Second); err != nil {
		t.Errorf("waitForPort on open port: %v", err)
	}
	<-accepted
	ln.Close()

	if err := waitForPort(context.Background(), addr, 100*time.Millisecond); err == nil {
		t.Error("expected error on closed port")
	}
}

func TestServer_StaticChangeOnlyReloads(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default(dir)

	reloaded := make(chan int, 1)
	built := false
	srv, err := NewServer(ServerOptions{
		Config:          cfg,
		Logger:          discard,
		OnBuildComplete: func(bool) { built = true },
		OnReload:        func(n int) { reloaded <- n },
	})
	if err != nil {
		t.Fatal(err)
	}
	defer srv.watcher.Stop()

	srv.handleChanges(context.Background(), []Change{
		{Path: filepath.Join(dir, "app/public/global.css"), Type: ChangeCSS},
	})

	select {
	case n := <-reloaded:
		if n != 0 {
			t.Errorf("reloaded %d clients, want 0", n)
		}
	default:
		t.Error("CSS change should reload browsers")
	}
	if built {
		t.Error("CSS change should not rebuild")
	}
}
