package build

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/vango-dev/vanext/internal/config"
	"github.com/vango-dev/vanext/internal/errors"
	"github.com/vango-dev/vanext/pkg/assets"
)

// Output file names inside the client output directory.
const (
	WasmFile     = "client.wasm"
	WasmExecFile = "wasm_exec.js"
	LoaderFile   = "client.js"
	ManifestFile = "manifest.json"
)

// ClientURLPrefix is where the frontend serves the client output.
const ClientURLPrefix = "/.vanext/"

// Result contains the build output.
type Result struct {
	Duration time.Duration

	// RoutesFile is the regenerated route table.
	RoutesFile string

	// Routes is the number of pages in the table.
	Routes int

	// Warnings are non-fatal route validation findings.
	Warnings []string

	// Wasm is the path to the compiled client.
	Wasm string

	// WasmSize is the size of the client in bytes.
	WasmSize int64

	// Manifest maps output names to their versioned names.
	Manifest map[string]string
}

// Options configures the builder.
type Options struct {
	// LDFlags are linker flags for the wasm build.
	LDFlags string

	// Vars are package variables set with -X, keyed by import path and
	// name ("example.com/app/providers.APIBaseURL").
	Vars map[string]string

	// Tags are build tags for the wasm build.
	Tags []string

	// SkipRoutes keeps the existing route table.
	SkipRoutes bool

	Logger *slog.Logger

	// OnProgress is called with progress updates.
	OnProgress func(step string)
}

// Builder regenerates the route table and builds the wasm client.
type Builder struct {
	config  *config.Config
	options Options
	logger  *slog.Logger
}

// New creates a new builder. Options left empty fall back to the config.
func New(cfg *config.Config, options Options) *Builder {
	if options.LDFlags == "" {
		options.LDFlags = cfg.Build.LDFlags
	}
	if len(options.Tags) == 0 {
		options.Tags = cfg.Build.Tags
	}
	if options.Vars == nil {
		options.Vars = cfg.Build.Vars
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{config: cfg, options: options, logger: logger}
}

// Build regenerates routes, compiles the client, copies wasm_exec.js and
// writes the loader script and the manifest.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	start := time.Now()
	result := &Result{}
	outDir := b.config.ClientOutPath()

	if !b.options.SkipRoutes {
		b.progress("Generating routes...")
		gen, err := GenerateRoutes(b.config)
		if err != nil {
			return nil, err
		}
		result.RoutesFile = gen.File
		result.Routes = gen.Pages
		result.Warnings = gen.Warnings
		for _, w := range gen.Warnings {
			b.logger.Warn("route warning", "detail", w)
		}
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, errors.New(errors.CodeBuildFailed).Wrap(err)
	}

	b.progress("Compiling client...")
	wasmPath := filepath.Join(outDir, WasmFile)
	if err := b.buildWasm(ctx, wasmPath); err != nil {
		return nil, err
	}
	result.Wasm = wasmPath
	if info, err := os.Stat(wasmPath); err == nil {
		result.WasmSize = info.Size()
	}

	b.progress("Copying wasm_exec.js...")
	if err := b.copyWasmExec(ctx, filepath.Join(outDir, WasmExecFile)); err != nil {
		return nil, err
	}

	versions := make(map[string]string)
	manifest := assets.NewManifest()
	for _, name := range []string{WasmFile, WasmExecFile} {
		sum, err := hashFile(filepath.Join(outDir, name))
		if err != nil {
			return nil, errors.New(errors.CodeBuildFailed).Wrap(err)
		}
		versions[name] = sum[:12]
		manifest.Version(name, versions[name])
	}

	b.progress("Writing loader...")
	loader := []byte(LoaderScript(versions[WasmFile]))
	if err := os.WriteFile(filepath.Join(outDir, LoaderFile), loader, 0644); err != nil {
		return nil, errors.New(errors.CodeBuildFailed).Wrap(err)
	}
	manifest.Version(LoaderFile, hashBytes(loader)[:12])

	if err := manifest.Save(filepath.Join(outDir, ManifestFile)); err != nil {
		return nil, errors.New(errors.CodeBuildFailed).Wrap(err)
	}
	result.Manifest = manifest.All()

	result.Duration = time.Since(start)
	return result, nil
}

// WasmArgs returns the go command arguments of the client build.
func (b *Builder) WasmArgs(output string) []string {
	args := []string{"build", "-o", output, "-trimpath"}
	if ldflags := b.ldflags(); ldflags != "" {
		args = append(args, "-ldflags", ldflags)
	}
	if len(b.options.Tags) > 0 {
		args = append(args, "-tags", strings.Join(b.options.Tags, ","))
	}
	return append(args, "./"+filepath.ToSlash(b.config.Paths.Client))
}

func (b *Builder) ldflags() string {
	parts := make([]string, 0, len(b.options.Vars)+1)
	if b.options.LDFlags != "" {
		parts = append(parts, b.options.LDFlags)
	}
	names := make([]string, 0, len(b.options.Vars))
	for name := range b.options.Vars {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		parts = append(parts, "-X '"+name+"="+b.options.Vars[name]+"'")
	}
	return strings.Join(parts, " ")
}

func (b *Builder) buildWasm(ctx context.Context, output string) error {
	cmd := exec.CommandContext(ctx, "go", b.WasmArgs(output)...)
	cmd.Dir = b.config.Dir()
	cmd.Env = append(os.Environ(), "GOOS=js", "GOARCH=wasm", "CGO_ENABLED=0")

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return errors.New(errors.CodeBuildFailed).
			WithDetail(stderr.String()).
			Wrap(err)
	}
	return nil
}

// copyWasmExec copies the wasm_exec.js matching the toolchain. Go 1.24
// moved it from misc/wasm to lib/wasm.
func (b *Builder) copyWasmExec(ctx context.Context, dst string) error {
	out, err := exec.CommandContext(ctx, "go", "env", "GOROOT").Output()
	if err != nil {
		return errors.New(errors.CodeBuildFailed).WithDetail("go env GOROOT failed").Wrap(err)
	}
	src, err := FindWasmExec(strings.TrimSpace(string(out)))
	if err != nil {
		return err
	}
	if err := copyFile(src, dst); err != nil {
		return errors.New(errors.CodeBuildFailed).Wrap(err)
	}
	return nil
}

// FindWasmExec locates wasm_exec.js under goroot.
func FindWasmExec(goroot string) (string, error) {
	for _, dir := range []string{"lib", "misc"} {
		p := filepath.Join(goroot, dir, "wasm", WasmExecFile)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", errors.New(errors.CodeBuildFailed).
		WithDetail(fmt.Sprintf("wasm_exec.js not found under %s", goroot))
}

// LoaderScript returns the script that fetches and runs the client. version
// busts browser caches across rebuilds.
func LoaderScript(version string) string {
	url, _ := json.Marshal(ClientURLPrefix + WasmFile + "?v=" + version)
	return `(function() {
  var go = new Go();
  WebAssembly.instantiateStreaming(fetch(` + string(url) + `), go.importObject)
    .then(function(result) { go.run(result.instance); })
    .catch(function(err) { console.error('[vanext] failed to load client', err); });
})();
`
}

func (b *Builder) progress(step string) {
	if b.options.OnProgress != nil {
		b.options.OnProgress(step)
	}
	b.logger.Debug(step)
}

// hashFile returns the hex SHA256 of a file.
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func hashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Clean removes the build output directory.
func (b *Builder) Clean() error {
	return os.RemoveAll(b.config.OutputPath())
}
