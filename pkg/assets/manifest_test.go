package assets

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestManifestResolve(t *testing.T) {
	m := NewManifest()
	m.Version("client.wasm", "abc123")
	m.Set("client.js", "client.js?v=def456")

	tests := []struct {
		source string
		want   string
	}{
		{"client.wasm", "client.wasm?v=abc123"},
		{"client.js", "client.js?v=def456"},
		{"wasm_exec.js", "wasm_exec.js"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := m.Resolve(tt.source); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.source, got, tt.want)
		}
	}

	if !m.Has("client.js") || m.Has("wasm_exec.js") {
		t.Error("Has reports wrong entries")
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
	if got := m.Names(); !reflect.DeepEqual(got, []string{"client.js", "client.wasm"}) {
		t.Errorf("Names() = %v", got)
	}
}

func TestManifestAllIsCopy(t *testing.T) {
	m := NewManifest()
	m.Set("a.js", "a.js?v=1")

	all := m.All()
	all["b.js"] = "b.js?v=2"
	if m.Has("b.js") {
		t.Error("All() must return a copy")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")

	m := NewManifest()
	m.Version("client.wasm", "abc")
	m.Version("client.js", "def")
	if err := m.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"client.js\": \"client.js?v=def\",\n  \"client.wasm\": \"client.wasm?v=abc\"\n}\n"
	if string(data) != want {
		t.Errorf("saved manifest = %q, want %q", data, want)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(loaded.All(), m.All()) {
		t.Errorf("loaded = %v, want %v", loaded.All(), m.All())
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "manifest.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadNullIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	if err := os.WriteFile(path, []byte("null"), 0644); err != nil {
		t.Fatal(err)
	}
	m, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	m.Set("x", "y")
	if m.Len() != 1 {
		t.Errorf("Len() = %d", m.Len())
	}
}

func TestResolvers(t *testing.T) {
	m := NewManifest()
	m.Version("client.js", "abc")

	tests := []struct {
		name string
		r    Resolver
		src  string
		want string
	}{
		{"manifest hit", NewResolver(m, "/.vanext/"), "client.js", "/.vanext/client.js?v=abc"},
		{"manifest miss", NewResolver(m, "/.vanext/"), "wasm_exec.js", "/.vanext/wasm_exec.js"},
		{"no prefix", NewResolver(m, ""), "client.js", "client.js?v=abc"},
		{"passthrough", NewPassthroughResolver("/.vanext/"), "client.js", "/.vanext/client.js"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Asset(tt.src); got != tt.want {
				t.Errorf("Asset(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestLoadResolver(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.json")

	if got := LoadResolver(path, "/c/").Asset("client.js"); got != "/c/client.js" {
		t.Errorf("without manifest = %q", got)
	}

	m := NewManifest()
	m.Version("client.js", "v1")
	if err := m.Save(path); err != nil {
		t.Fatal(err)
	}
	if got := LoadResolver(path, "/c/").Asset("client.js"); got != "/c/client.js?v=v1" {
		t.Errorf("with manifest = %q", got)
	}
}
