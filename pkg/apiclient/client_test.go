package apiclient

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	apperrors "github.com/vango-dev/vanext/internal/errors"
	"github.com/vango-dev/vanext/pkg/api"
	"github.com/vango-dev/vanext/pkg/users"
)

func newAPI(t *testing.T) *httptest.Server {
	t.Helper()
	srv := api.New(api.Config{
		Repo:     users.NewMemoryRepository(users.DefaultSeed()...),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Registry: prometheus.NewRegistry(),
	})
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return ts
}

func strptr(s string) *string { return &s }

func TestClient_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := New(newAPI(t).URL + "/")

	list, err := c.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Alice" {
		t.Fatalf("List = %+v", list)
	}

	created, err := c.Create(ctx, users.CreateUser{Name: "Bob", Email: "bob@x.com"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := c.Update(ctx, created.ID, users.UpdateUser{Name: strptr("Robert")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Robert" || updated.Email != "bob@x.com" {
		t.Errorf("Update = %+v", updated)
	}

	got, err := c.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != updated {
		t.Errorf("Get = %+v, want %+v", got, updated)
	}

	if err := c.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := c.Get(ctx, created.ID); !apperrors.IsNotFound(err) {
		t.Errorf("Get after delete err = %v, want not found", err)
	}
}

func TestClient_ValidationIssues(t *testing.T) {
	c := New(newAPI(t).URL)

	_, err := c.Create(context.Background(), users.CreateUser{Name: "Bob", Email: "nope"})
	if !apperrors.IsValidation(err) {
		t.Fatalf("err = %v, want validation", err)
	}
	var e *apperrors.Error
	if !errors.As(err, &e) || len(e.Issues) != 1 || e.Issues[0].Path[0] != "email" {
		t.Errorf("issues = %+v", e)
	}
}

func TestClient_Prefix(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	tests := []struct {
		prefix string
		want   string
	}{
		{prefix: "", want: "/api/users"},
		{prefix: "/", want: "/api/users"},
		{prefix: "gateway", want: "/gateway/api/users"},
		{prefix: "/v1/", want: "/v1/api/users"},
	}
	for _, tt := range tests {
		c := New(ts.URL, WithPrefix(tt.prefix), WithHTTPClient(ts.Client()))
		if _, err := c.List(context.Background()); err != nil {
			t.Fatalf("List: %v", err)
		}
		if gotPath != tt.want {
			t.Errorf("prefix %q: path = %q, want %q", tt.prefix, gotPath, tt.want)
		}
	}
}

func TestClient_ServerErrorIsInternal(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal"}`))
	}))
	defer ts.Close()

	_, err := New(ts.URL).List(context.Background())
	if apperrors.KindOf(err) != apperrors.KindInternal {
		t.Errorf("kind = %v, want internal", apperrors.KindOf(err))
	}
}
