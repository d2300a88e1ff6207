package config

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/vanext/internal/errors"
)

const (
	// ConfigFileName is the name of the JSON configuration file.
	ConfigFileName = "vanext.json"

	// YAMLConfigFileName is the name of the YAML configuration file. It is
	// only read when no JSON file exists.
	YAMLConfigFileName = "vanext.yaml"

	// DefaultPort is the default frontend server port.
	DefaultPort = 3000

	// DefaultAPIPort is the default API server port.
	DefaultAPIPort = 4000

	// DefaultReloadPort is the default port of the dev reload socket.
	DefaultReloadPort = 3001

	// DefaultHost is the default development host.
	DefaultHost = "localhost"

	// DefaultOutput is the default build output directory.
	DefaultOutput = "dist"

	// DefaultDebounce is the default watcher debounce.
	DefaultDebounce = 100 * time.Millisecond

	// EnvProduction is the VANEXT_ENV value that disables dev features.
	EnvProduction = "production"
)

// Config represents vanext.json (or vanext.yaml).
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Module is the Go module path of the project. Read from go.mod when
	// empty.
	Module string `json:"module,omitempty" yaml:"module,omitempty"`

	// Title is the document title of rendered pages.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Port is the frontend server port.
	Port int `json:"port,omitempty" yaml:"port,omitempty" validate:"min=0,max=65535"`

	// Env is "production" or anything else for development.
	Env string `json:"env,omitempty" yaml:"env,omitempty"`

	Paths   PathsConfig   `json:"paths,omitempty" yaml:"paths,omitempty"`
	API     APIConfig     `json:"api,omitempty" yaml:"api,omitempty"`
	Dev     DevConfig     `json:"dev,omitempty" yaml:"dev,omitempty"`
	Build   BuildConfig   `json:"build,omitempty" yaml:"build,omitempty"`
	Static  StaticConfig  `json:"static,omitempty" yaml:"static,omitempty"`
	OpenAPI OpenAPIConfig `json:"openapi,omitempty" yaml:"openapi,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
	// dir is the project directory when no file was loaded.
	dir string
}

// PathsConfig contains project directories, relative to the project root.
type PathsConfig struct {
	// Pages is the pages root scanned for index.go and layout.go.
	Pages string `json:"pages,omitempty" yaml:"pages,omitempty"`

	// App is the package directory receiving routes_gen.go.
	App string `json:"app,omitempty" yaml:"app,omitempty"`

	// Public holds static files served before routing.
	Public string `json:"public,omitempty" yaml:"public,omitempty"`

	// Client is the wasm client main package.
	Client string `json:"client,omitempty" yaml:"client,omitempty"`
}

// APIConfig configures the API server and the API client used by pages.
type APIConfig struct {
	Port    int    `json:"port,omitempty" yaml:"port,omitempty" validate:"min=0,max=65535"`
	BaseURL string `json:"baseURL,omitempty" yaml:"baseURL,omitempty" validate:"omitempty,url"`
	Prefix  string `json:"prefix,omitempty" yaml:"prefix,omitempty"`

	// Origins may call the API from a browser. Empty means the frontend
	// server on localhost.
	Origins []string `json:"origins,omitempty" yaml:"origins,omitempty" validate:"dive,url"`

	Storage StorageConfig `json:"storage,omitempty" yaml:"storage,omitempty"`
}

// StorageConfig selects the users repository.
type StorageConfig struct {
	Driver string `json:"driver,omitempty" yaml:"driver,omitempty" validate:"oneof=memory postgres sqlite"`
	DSN    string `json:"dsn,omitempty" yaml:"dsn,omitempty" validate:"required_unless=Driver memory"`
}

// DevConfig contains development loop settings.
type DevConfig struct {
	// Host is the host servers bind to in development.
	Host string `json:"host,omitempty" yaml:"host,omitempty"`

	// ReloadPort is the port of the reload socket.
	ReloadPort int `json:"reloadPort,omitempty" yaml:"reloadPort,omitempty" validate:"min=0,max=65535"`

	// ReloadPath is the reload socket path.
	ReloadPath string `json:"reloadPath,omitempty" yaml:"reloadPath,omitempty"`

	// Debounce is the watcher debounce, e.g. "100ms".
	Debounce string `json:"debounce,omitempty" yaml:"debounce,omitempty"`

	// Watch lists extra directories to watch besides the pages.
	Watch []string `json:"watch,omitempty" yaml:"watch,omitempty"`
}

// BuildConfig contains build settings.
type BuildConfig struct {
	// Output is the build output directory.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// LDFlags are extra linker flags for the wasm build.
	LDFlags string `json:"ldflags,omitempty" yaml:"ldflags,omitempty"`

	// Vars are package variables of the client set at link time.
	Vars map[string]string `json:"vars,omitempty" yaml:"vars,omitempty"`

	// Tags are build tags for the wasm build.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// StaticConfig selects where static files come from.
type StaticConfig struct {
	// Source is "dir" (the public directory) or "s3".
	Source string `json:"source,omitempty" yaml:"source,omitempty" validate:"oneof=dir s3"`

	Bucket string `json:"bucket,omitempty" yaml:"bucket,omitempty" validate:"required_if=Source s3"`
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Region string `json:"region,omitempty" yaml:"region,omitempty"`

	// Endpoint overrides the S3 endpoint, for MinIO and similar.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty" validate:"omitempty,url"`
}

// OpenAPIConfig configures `vanext gen openapi`.
type OpenAPIConfig struct {
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
	Tag    string `json:"tag,omitempty" yaml:"tag,omitempty"`
	Upload string `json:"upload,omitempty" yaml:"upload,omitempty" validate:"omitempty,startswith=s3://"`
}

// New creates a new Config with default values.
func New() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Default returns the default configuration rooted at dir, with
// environment overrides applied.
func Default(dir string) *Config {
	cfg := New()
	cfg.dir = dir
	cfg.ApplyEnv(os.Getenv)
	return cfg
}

// Load reads the configuration in dir. vanext.json wins over vanext.yaml.
func Load(dir string) (*Config, error) {
	for _, name := range []string{ConfigFileName, YAMLConfigFileName, "vanext.yml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return nil, errors.New(errors.CodeConfigNotFound).
		WithDetail("No vanext.json or vanext.yaml found in " + dir).
		WithSuggestion("Create vanext.json or run the command without a config to use defaults")
}

// LoadOrDefault is Load that falls back to Default when no file exists.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if isNotFound(err) {
		return Default(dir), nil
	}
	return cfg, err
}

func isNotFound(err error) bool {
	e, ok := err.(*errors.Error)
	return ok && e.Code == errors.CodeConfigNotFound
}

// LoadFile reads the configuration file at path, applies defaults and
// environment overrides, and validates the result.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.CodeConfigNotFound).
				WithDetail("No config file at " + path)
		}
		return nil, errors.New(errors.CodeConfigInvalid).Wrap(err)
	}

	cfg := &Config{}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.New(errors.CodeConfigInvalid).
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithSuggestion("Check that " + filepath.Base(path) + " is valid")
	}

	cfg.configPath = path
	cfg.applyDefaults()
	cfg.ApplyEnv(os.Getenv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the project directory.
func (c *Config) Dir() string {
	if c.configPath != "" {
		return filepath.Dir(c.configPath)
	}
	if c.dir != "" {
		return c.dir
	}
	return "."
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Title == "" {
		c.Title = "vanext"
	}

	if c.Paths.Pages == "" {
		c.Paths.Pages = "app/pages"
	}
	if c.Paths.App == "" {
		c.Paths.App = "app"
	}
	if c.Paths.Public == "" {
		c.Paths.Public = "app/public"
	}
	if c.Paths.Client == "" {
		c.Paths.Client = "cmd/client"
	}

	if c.API.Port == 0 {
		c.API.Port = DefaultAPIPort
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = "http://localhost:" + strconv.Itoa(c.API.Port)
	}
	if c.API.Storage.Driver == "" {
		c.API.Storage.Driver = "memory"
	}

	if c.Dev.Host == "" {
		c.Dev.Host = DefaultHost
	}
	if c.Dev.ReloadPort == 0 {
		c.Dev.ReloadPort = DefaultReloadPort
	}
	if c.Dev.ReloadPath == "" {
		c.Dev.ReloadPath = "/hmr"
	}
	if c.Dev.Debounce == "" {
		c.Dev.Debounce = DefaultDebounce.String()
	}

	if c.Build.Output == "" {
		c.Build.Output = DefaultOutput
	}

	if c.Static.Source == "" {
		c.Static.Source = "dir"
	}

	if c.OpenAPI.Output == "" {
		c.OpenAPI.Output = filepath.Join(DefaultOutput, "openapi.json")
	}
}

// ApplyEnv applies environment overrides read through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := getenv("API_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.API.Port = port
		}
	}
	if v := getenv("API_BASE_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := getenv("API_PREFIX"); v != "" {
		c.API.Prefix = v
	}
	if v := getenv("API_ORIGINS"); v != "" {
		c.API.Origins = strings.Split(v, ",")
	}
	if v := getenv("VANEXT_ENV"); v != "" {
		c.Env = v
	}
	if v := getenv("VANEXT_STORAGE"); v != "" {
		c.API.Storage.Driver = v
	}
	if v := getenv("DATABASE_URL"); v != "" {
		c.API.Storage.DSN = v
	}
	if v := getenv("S3_ENDPOINT"); v != "" {
		c.Static.Endpoint = v
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fields []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				fields = append(fields, fe.Namespace()+" ("+fe.Tag()+")")
			}
		} else {
			fields = append(fields, err.Error())
		}
		return errors.New(errors.CodeConfigInvalid).
			WithDetail("Invalid fields: " + strings.Join(fields, ", "))
	}
	if _, err := time.ParseDuration(c.Dev.Debounce); err != nil {
		return errors.New(errors.CodeConfigInvalid).
			WithDetail("dev.debounce: " + err.Error())
	}
	return nil
}

// IsProduction reports whether dev features are disabled.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// DebounceDuration returns the parsed watcher debounce.
func (c *Config) DebounceDuration() time.Duration {
	d, err := time.ParseDuration(c.Dev.Debounce)
	if err != nil || d <= 0 {
		return DefaultDebounce
	}
	return d
}

// Address returns the frontend listen address.
func (c *Config) Address() string {
	return ":" + strconv.Itoa(c.Port)
}

// APIAddress returns the API listen address.
func (c *Config) APIAddress() string {
	return ":" + strconv.Itoa(c.API.Port)
}

// APIOrigins returns the origins allowed to call the API.
func (c *Config) APIOrigins() []string {
	if len(c.API.Origins) > 0 {
		return c.API.Origins
	}
	return []string{"http://" + c.Dev.Host + ":" + strconv.Itoa(c.Port)}
}

// ReloadAddress returns the reload socket listen address.
func (c *Config) ReloadAddress() string {
	return c.Dev.Host + ":" + strconv.Itoa(c.Dev.ReloadPort)
}

// ReloadURL returns the URL pages connect to for reloads.
func (c *Config) ReloadURL() string {
	return "ws://" + c.ReloadAddress() + c.Dev.ReloadPath
}

func (c *Config) abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// PagesPath returns the pages root.
func (c *Config) PagesPath() string { return c.abs(c.Paths.Pages) }

// AppPath returns the directory receiving routes_gen.go.
func (c *Config) AppPath() string { return c.abs(c.Paths.App) }

// RoutesFile returns the path of the generated route table.
func (c *Config) RoutesFile() string { return filepath.Join(c.AppPath(), "routes_gen.go") }

// PublicPath returns the public directory.
func (c *Config) PublicPath() string { return c.abs(c.Paths.Public) }

// ClientPath returns the wasm client main package directory.
func (c *Config) ClientPath() string { return c.abs(c.Paths.Client) }

// OutputPath returns the build output directory.
func (c *Config) OutputPath() string { return c.abs(c.Build.Output) }

// ClientOutPath returns where client.wasm and its loaders are written.
// The frontend serves this directory under /.vanext/.
func (c *Config) ClientOutPath() string { return filepath.Join(c.OutputPath(), "client") }

// OpenAPIPath returns the output file of `vanext gen openapi`.
func (c *Config) OpenAPIPath() string { return c.abs(c.OpenAPI.Output) }

// ModulePath returns the Go module path, from the config or from go.mod.
func (c *Config) ModulePath() (string, error) {
	if c.Module != "" {
		return c.Module, nil
	}
	f, err := os.Open(filepath.Join(c.Dir(), "go.mod"))
	if err != nil {
		return "", errors.New(errors.CodeConfigInvalid).
			WithDetail("module is not set and go.mod could not be read").
			Wrap(err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if rest, ok := strings.CutPrefix(line, "module "); ok {
			return strings.Trim(strings.TrimSpace(rest), `"`), nil
		}
	}
	return "", errors.New(errors.CodeConfigInvalid).WithDetail("go.mod has no module line")
}

// PagesImport returns the import path of the pages root.
func (c *Config) PagesImport() (string, error) {
	mod, err := c.ModulePath()
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(c.Dir(), c.PagesPath())
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", errors.New(errors.CodeConfigInvalid).
			WithDetail("pages directory must be inside the module: " + c.PagesPath())
	}
	return mod + "/" + filepath.ToSlash(rel), nil
}

// AppPackage returns the package name of the generated routes file.
func (c *Config) AppPackage() string {
	return filepath.Base(filepath.Clean(c.Paths.App))
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	for _, name := range []string{ConfigFileName, YAMLConfigFileName, "vanext.yml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// FindProjectRoot walks up from startDir to the first directory holding a
// config file or a go.mod.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New(errors.CodeConfigNotFound).
				WithDetail("No vanext.json or go.mod found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads the configuration of the project containing
// the working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return LoadOrDefault(root)
}
