package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Port != DefaultPort {
		t.Errorf("Port = %d, want %d", cfg.Port, DefaultPort)
	}
	if cfg.API.Port != DefaultAPIPort || cfg.API.BaseURL != "http://localhost:4000" || cfg.API.Prefix != "" {
		t.Errorf("API = %+v", cfg.API)
	}
	if cfg.API.Storage.Driver != "memory" {
		t.Errorf("Storage.Driver = %q", cfg.API.Storage.Driver)
	}
	if cfg.Dev.ReloadPort != DefaultReloadPort || cfg.Dev.ReloadPath != "/hmr" {
		t.Errorf("Dev = %+v", cfg.Dev)
	}
	if cfg.Build.Output != DefaultOutput {
		t.Errorf("Build.Output = %q", cfg.Build.Output)
	}
	if cfg.DebounceDuration() != 100*time.Millisecond {
		t.Errorf("DebounceDuration = %v", cfg.DebounceDuration())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	if _, err := Load(tmpDir); err == nil || !strings.Contains(err.Error(), "E300") {
		t.Errorf("missing config: err = %v, want E300", err)
	}

	configJSON := `{
  "title": "Demo",
  "port": 8080,
  "paths": {"pages": "web/pages"},
  "api": {"storage": {"driver": "sqlite", "dsn": "file:demo.db"}},
  "dev": {"debounce": "250ms"}
}
`
	if err := os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte(configJSON), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Title != "Demo" || cfg.Port != 8080 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.PagesPath() != filepath.Join(tmpDir, "web/pages") {
		t.Errorf("PagesPath = %q", cfg.PagesPath())
	}
	if cfg.API.Storage.Driver != "sqlite" || cfg.API.Storage.DSN != "file:demo.db" {
		t.Errorf("Storage = %+v", cfg.API.Storage)
	}
	if cfg.DebounceDuration() != 250*time.Millisecond {
		t.Errorf("DebounceDuration = %v", cfg.DebounceDuration())
	}
	if cfg.Path() != filepath.Join(tmpDir, ConfigFileName) {
		t.Errorf("Path = %q", cfg.Path())
	}
}

func TestLoad_YAML(t *testing.T) {
	tmpDir := t.TempDir()
	yamlSrc := "title: From YAML\napi:\n  port: 5000\n  prefix: /v1\nstatic:\n  source: s3\n  bucket: assets\n"
	if err := os.WriteFile(filepath.Join(tmpDir, YAMLConfigFileName), []byte(yamlSrc), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Title != "From YAML" || cfg.API.Port != 5000 || cfg.API.Prefix != "/v1" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.API.BaseURL != "http://localhost:5000" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.Static.Source != "s3" || cfg.Static.Bucket != "assets" {
		t.Errorf("Static = %+v", cfg.Static)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"bad json", ConfigFileName, "not valid json"},
		{"bad yaml", YAMLConfigFileName, "title: [unclosed"},
		{"bad driver", ConfigFileName, `{"api": {"storage": {"driver": "mongo"}}}`},
		{"sql without dsn", ConfigFileName, `{"api": {"storage": {"driver": "postgres"}}}`},
		{"s3 without bucket", ConfigFileName, `{"static": {"source": "s3"}}`},
		{"bad port", ConfigFileName, `{"port": 70000}`},
		{"bad debounce", ConfigFileName, `{"dev": {"debounce": "soon"}}`},
		{"bad upload", ConfigFileName, `{"openapi": {"upload": "http://x"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadFile(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), "E301") {
				t.Errorf("err = %v, want E301", err)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"PORT":           "3100",
		"API_PORT":       "4100",
		"API_BASE_URL":   "http://api.internal:4100",
		"API_PREFIX":     "/backend",
		"VANEXT_ENV":     "production",
		"VANEXT_STORAGE": "postgres",
		"DATABASE_URL":   "postgres://localhost/app",
	}
	cfg := New()
	cfg.ApplyEnv(func(k string) string { return env[k] })

	if cfg.Port != 3100 || cfg.API.Port != 4100 {
		t.Errorf("ports = %d %d", cfg.Port, cfg.API.Port)
	}
	if cfg.API.BaseURL != "http://api.internal:4100" || cfg.API.Prefix != "/backend" {
		t.Errorf("API = %+v", cfg.API)
	}
	if !cfg.IsProduction() {
		t.Error("IsProduction = false")
	}
	if cfg.API.Storage.Driver != "postgres" || cfg.API.Storage.DSN != "postgres://localhost/app" {
		t.Errorf("Storage = %+v", cfg.API.Storage)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}

	cfg = New()
	cfg.ApplyEnv(func(k string) string {
		if k == "PORT" {
			return "not-a-number"
		}
		return ""
	})
	if cfg.Port != DefaultPort {
		t.Errorf("bad PORT changed port to %d", cfg.Port)
	}
}

func TestAPIOrigins(t *testing.T) {
	cfg := New()
	cfg.Port = 3100
	if got := cfg.APIOrigins(); len(got) != 1 || got[0] != "http://localhost:3100" {
		t.Errorf("default origins = %v", got)
	}

	cfg.ApplyEnv(func(k string) string {
		if k == "API_ORIGINS" {
			return "https://a.example.com,https://b.example.com"
		}
		return ""
	})
	if got := cfg.APIOrigins(); len(got) != 2 || got[1] != "https://b.example.com" {
		t.Errorf("env origins = %v", got)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadFile_EnvOverridesFile(t *testing.T) {
	t.Setenv("API_PREFIX", "/from-env")
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte(`{"api": {"prefix": "/from-file"}}`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.API.Prefix != "/from-env" {
		t.Errorf("Prefix = %q", cfg.API.Prefix)
	}
}

func TestLoadOrDefault(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadOrDefault(dir)
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}
	if cfg.Dir() != dir || cfg.Path() != "" {
		t.Errorf("Dir = %q, Path = %q", cfg.Dir(), cfg.Path())
	}

	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOrDefault(dir); err == nil {
		t.Error("broken file must not fall back to defaults")
	}
}

func TestPaths(t *testing.T) {
	cfg := Default("/proj")

	tests := map[string]string{
		"pages":   cfg.PagesPath(),
		"app":     cfg.AppPath(),
		"routes":  cfg.RoutesFile(),
		"public":  cfg.PublicPath(),
		"client":  cfg.ClientPath(),
		"output":  cfg.OutputPath(),
		"wasm":    cfg.ClientOutPath(),
		"openapi": cfg.OpenAPIPath(),
	}
	want := map[string]string{
		"pages":   "/proj/app/pages",
		"app":     "/proj/app",
		"routes":  "/proj/app/routes_gen.go",
		"public":  "/proj/app/public",
		"client":  "/proj/cmd/client",
		"output":  "/proj/dist",
		"wasm":    "/proj/dist/client",
		"openapi": "/proj/dist/openapi.json",
	}
	for name, got := range tests {
		if got != want[name] {
			t.Errorf("%s = %q, want %q", name, got, want[name])
		}
	}

	cfg.Build.Output = "/abs/out"
	if cfg.OutputPath() != "/abs/out" {
		t.Errorf("absolute output = %q", cfg.OutputPath())
	}
	if cfg.AppPackage() != "app" {
		t.Errorf("AppPackage = %q", cfg.AppPackage())
	}
	if cfg.ReloadURL() != "ws://localhost:3001/hmr" {
		t.Errorf("ReloadURL = %q", cfg.ReloadURL())
	}
}

func TestModulePath(t *testing.T) {
	dir := t.TempDir()
	cfg := Default(dir)
	if _, err := cfg.ModulePath(); err == nil {
		t.Error("expected error without go.mod")
	}

	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte("// comment\nmodule example.com/shop\n\ngo 1.24\n"), 0644); err != nil {
		t.Fatal(err)
	}
	mod, err := cfg.ModulePath()
	if err != nil || mod != "example.com/shop" {
		t.Errorf("ModulePath = %q, %v", mod, err)
	}
	imp, err := cfg.PagesImport()
	if err != nil || imp != "example.com/shop/app/pages" {
		t.Errorf("PagesImport = %q, %v", imp, err)
	}

	cfg.Module = "example.com/override"
	if mod, _ := cfg.ModulePath(); mod != "example.com/override" {
		t.Errorf("ModulePath = %q", mod)
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "go.mod"), []byte("module x\n"), 0644); err != nil {
		t.Fatal(err)
	}
	deep := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(deep, 0755); err != nil {
		t.Fatal(err)
	}

	got, err := FindProjectRoot(deep)
	if err != nil {
		t.Fatalf("FindProjectRoot: %v", err)
	}
	if got != root {
		t.Errorf("root = %q, want %q", got, root)
	}
}
