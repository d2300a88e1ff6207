package dev

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/vango-dev/vanext/internal/errors"
)

// CompilerConfig configures the server compiler.
type CompilerConfig struct {
	// ProjectPath is the root directory of the module.
	ProjectPath string

	// Package is the main package to build, relative to ProjectPath.
	Package string

	// BinaryPath is where to write the compiled binary.
	BinaryPath string

	// CachePath is the GOCACHE used for builds.
	CachePath string

	// Args are passed to the binary when it is started.
	Args []string

	// Tags are build tags to pass to go build.
	Tags []string

	// LDFlags are linker flags to pass to go build.
	LDFlags string

	// Env are additional environment variables for the build and the
	// process.
	Env []string
}

// BuildResult contains the result of a build.
type BuildResult struct {
	Success  bool
	Duration time.Duration
	Output   string
	Error    error
}

// Compiler builds the frontend server binary and supervises the running
// process. Pages are compiled in, so every Go change means a rebuild and
// a restart.
type Compiler struct {
	config  CompilerConfig
	process *processHandle
	mu      sync.Mutex
}

// NewCompiler creates a new compiler.
func NewCompiler(config CompilerConfig) *Compiler {
	if config.Package == "" {
		config.Package = "./cmd/vanext"
	}
	if config.BinaryPath == "" {
		config.BinaryPath = filepath.Join(config.ProjectPath, ".vanext", "server")
	}
	if config.CachePath == "" {
		config.CachePath = filepath.Join(config.ProjectPath, ".vanext", "cache")
	}
	if len(config.Args) == 0 {
		config.Args = []string{"serve"}
	}
	return &Compiler{config: config}
}

// BuildArgs returns the go command arguments of a build.
func (c *Compiler) BuildArgs() []string {
	args := []string{"build", "-o", c.config.BinaryPath}
	if len(c.config.Tags) > 0 {
		args = append(args, "-tags", strings.Join(c.config.Tags, ","))
	}
	if c.config.LDFlags != "" {
		args = append(args, "-ldflags", c.config.LDFlags)
	}
	return append(args, c.config.Package)
}

// Build compiles the server binary.
func (c *Compiler) Build(ctx context.Context) BuildResult {
	start := time.Now()

	for _, dir := range []string{filepath.Dir(c.config.BinaryPath), c.config.CachePath} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return BuildResult{Duration: time.Since(start), Error: errors.New(errors.CodeBuildFailed).Wrap(err)}
		}
	}

	cmd := exec.CommandContext(ctx, "go", c.BuildArgs()...)
	cmd.Dir = c.config.ProjectPath
	cmd.Env = append(os.Environ(), "GOCACHE="+c.config.CachePath)
	cmd.Env = append(cmd.Env, c.config.Env...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := BuildResult{Duration: time.Since(start), Output: stderr.String()}
	if result.Output == "" {
		result.Output = stdout.String()
	}
	if err != nil {
		result.Error = errors.New(errors.CodeBuildFailed).WithDetail(result.Output).Wrap(err)
		return result
	}
	result.Success = true
	return result
}

// Start runs the compiled binary, stopping any previous process first.
func (c *Compiler) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	stopProcess(c.process)
	c.process = nil

	env := append(os.Environ(), c.config.Env...)
	proc, err := startProcess(ctx, c.config.BinaryPath, c.config.Args, c.config.ProjectPath, env)
	if err != nil {
		return errors.New(errors.CodeBuildFailed).WithDetail("starting " + c.config.BinaryPath).Wrap(err)
	}
	c.process = proc
	return nil
}

// Stop stops the running process and its children.
func (c *Compiler) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	stopProcess(c.process)
	c.process = nil
}

// Restart stops the current process and starts a new one.
func (c *Compiler) Restart(ctx context.Context) error {
	return c.Start(ctx)
}

// IsRunning returns whether a process is running.
func (c *Compiler) IsRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.process != nil
}

// BinaryPath returns the path to the compiled binary.
func (c *Compiler) BinaryPath() string {
	return c.config.BinaryPath
}

// Clean stops the process and removes the build cache and binary.
func (c *Compiler) Clean() error {
	c.Stop()
	if err := os.RemoveAll(c.config.CachePath); err != nil {
		return err
	}
	if err := os.Remove(c.config.BinaryPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
