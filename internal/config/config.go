// Package config resolves runtime settings from defaults, a TOML file, a
// .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/abhisek/mathcards/internal/i18n"
)

// Environment variables.
const (
	EnvAPIURL  = "MATHCARDS_API_URL"
	EnvDB      = "MATHCARDS_DB"
	EnvLang    = "MATHCARDS_LANG"
	EnvTimeout = "MATHCARDS_TIMEOUT"
	EnvLog     = "MATHCARDS_LOG"
)

// DefaultAPIBaseURL is where the quiz service listens in development.
const DefaultAPIBaseURL = "http://localhost:8000"

// DefaultTimeout bounds a single request to the quiz service.
const DefaultTimeout = 10 * time.Second

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the resolved runtime configuration.
type Config struct {
	APIBaseURL string
	DBPath     string
	// Language is empty unless set explicitly; the persisted preference
	// applies then.
	Language string
	Timeout  time.Duration
	// LogFile receives diagnostics while the TUI runs; empty discards them.
	LogFile string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		APIBaseURL: DefaultAPIBaseURL,
		DBPath:     DefaultDBPath(),
		Timeout:    DefaultTimeout,
	}
}

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	API     APIConfig     `toml:"api"`
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
	Log     LogConfig     `toml:"log"`
}

// APIConfig maps quiz service settings.
type APIConfig struct {
	URL     *string `toml:"url"`
	Timeout *string `toml:"timeout"`
}

// StorageConfig maps local storage settings.
type StorageConfig struct {
	DB *string `toml:"db"`
}

// UIConfig maps interface settings.
type UIConfig struct {
	Lang *string `toml:"lang"`
}

// LogConfig maps diagnostics settings.
type LogConfig struct {
	File *string `toml:"file"`
}

// LoadFile reads a TOML config from the given path. Missing file is not an error.
func LoadFile(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// ApplyFile overlays the values set in fc.
func (c *Config) ApplyFile(fc FileConfig) error {
	if fc.API.URL != nil {
		c.APIBaseURL = *fc.API.URL
	}
	if fc.API.Timeout != nil {
		d, err := time.ParseDuration(*fc.API.Timeout)
		if err != nil {
			return fmt.Errorf("%w: api.timeout: %w", ErrInvalidConfig, err)
		}
		c.Timeout = d
	}
	if fc.Storage.DB != nil {
		c.DBPath = *fc.Storage.DB
	}
	if fc.UI.Lang != nil {
		c.Language = *fc.UI.Lang
	}
	if fc.Log.File != nil {
		c.LogFile = *fc.Log.File
	}
	return nil
}

// LookupFunc looks up an environment variable.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overlays the MATHCARDS_* variables found by lookup. Empty
// values are ignored.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		return v, ok && v != ""
	}
	if v, ok := get(EnvAPIURL); ok {
		c.APIBaseURL = v
	}
	if v, ok := get(EnvDB); ok {
		c.DBPath = v
	}
	if v, ok := get(EnvLang); ok {
		c.Language = v
	}
	if v, ok := get(EnvTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvTimeout, err)
		}
		c.Timeout = d
	}
	if v, ok := get(EnvLog); ok {
		c.LogFile = v
	}
	return nil
}

// ReadDotEnv parses a .env file without touching the process environment.
// A missing file yields an empty map.
func ReadDotEnv(path string) (map[string]string, error) {
	vals, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return vals, nil
}

// Layered returns a LookupFunc that prefers env and falls back to dotenv.
func Layered(env LookupFunc, dotenv map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		if v, ok := env(key); ok && v != "" {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
}

// LoadOptions selects the sources Load reads.
type LoadOptions struct {
	// ConfigPath is the TOML file; DefaultConfigPath when empty.
	ConfigPath string
	// DotEnvPath is the .env file; ".env" when empty.
	DotEnvPath string
	// Lookup reads the environment; os.LookupEnv when nil.
	Lookup LookupFunc
}

// Load resolves defaults, the TOML file, the .env file and the
// environment, in increasing priority. Command-line flags are applied by
// the caller.
func Load(opts LoadOptions) (Config, error) {
	if opts.ConfigPath == "" {
		opts.ConfigPath = DefaultConfigPath()
	}
	if opts.DotEnvPath == "" {
		opts.DotEnvPath = ".env"
	}
	if opts.Lookup == nil {
		opts.Lookup = os.LookupEnv
	}

	cfg := Default()

	fc, err := LoadFile(opts.ConfigPath)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.ApplyFile(fc); err != nil {
		return Config{}, err
	}

	dotenv, err := ReadDotEnv(opts.DotEnvPath)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.ApplyEnv(Layered(opts.Lookup, dotenv)); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return fmt.Errorf("%w: api url %q: %w", ErrInvalidConfig, c.APIBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: api url %q must be http or https", ErrInvalidConfig, c.APIBaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: api url %q has no host", ErrInvalidConfig, c.APIBaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidConfig, c.Timeout)
	}
	if c.DBPath == "" {
		return fmt.Errorf("%w: database path is empty", ErrInvalidConfig)
	}
	if c.Language != "" && !i18n.IsSupported(c.Language) {
		return fmt.Errorf("%w: unsupported language %q (supported: %v)", ErrInvalidConfig, c.Language, i18n.Supported())
	}
	return nil
}
