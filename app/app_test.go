package app

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/vango-dev/vanext"
	"github.com/vango-dev/vanext/pkg/router"
)

func TestRoutesGenIsCurrent(t *testing.T) {
	routes, err := router.NewScanner("pages").Scan()
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	want, err := router.NewGenerator(routes, "github.com/vango-dev/vanext/app/pages", "app").Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	got, err := os.ReadFile("routes_gen.go")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(want) {
		t.Errorf("routes_gen.go is stale, run vanext gen routes\nwant:\n%s", want)
	}
}

func TestRegistryCoversRoutes(t *testing.T) {
	reg := NewRegistry()
	for _, e := range Routes.Entries() {
		if _, ok := reg.LookupPage(e.Pattern); !ok {
			t.Errorf("page %s not registered", e.Pattern)
		}
		for _, id := range e.Layouts {
			if _, ok := reg.LookupLayout(id); !ok {
				t.Errorf("layout %s of %s not registered", id, e.Pattern)
			}
		}
	}
}

func TestPages(t *testing.T) {
	srv := vanext.New(vanext.Options{
		Routes:   Routes,
		Registry: NewRegistry(),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	tests := []struct {
		path string
		want []string
	}{
		{"/", []string{"Hello from Go + wasm!", "This is the index route"}},
		{"/book/7", []string{"dynamic page", "Book 7"}},
		{"/dynamic/42/?q=go", []string{
			"Protected Section Layout",
			"Dynamic Route Layout Footer",
			`<span class="font-mono text-green-600">42</span>`,
			"<p>Pathname: /dynamic/42/</p>",
			"<p>Route: /dynamic/42/index</p>",
			"<p>Search: ?q=go</p>",
		}},
		{"/dynamic/9", []string{"<p>Search: (none)</p>"}},
		{"/docs", []string{"Pick a section"}},
		{"/docs/a/b", []string{"<code>a/b</code>", "<li>a</li><li>b</li>"}},
		{"/users", []string{"No users loaded"}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
			}
			body := rec.Body.String()
			for _, want := range tt.want {
				if !strings.Contains(body, want) {
					t.Errorf("body missing %q:\n%s", want, body)
				}
			}
		})
	}
}
