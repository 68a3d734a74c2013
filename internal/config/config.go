package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/Lev10x/shawty/errors"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "SHAWTY_"

// Environment variables that override the configuration file.
const (
	EnvHTTPTimeout   = EnvPrefix + "HTTP_TIMEOUT"
	EnvHTTPUserAgent = EnvPrefix + "HTTP_USER_AGENT"
	EnvHTTPProxy     = EnvPrefix + "HTTP_PROXY"
	EnvHTTPMetrics   = EnvPrefix + "HTTP_METRICS"
	EnvWebhookURL    = EnvPrefix + "WEBHOOK_URL"
)

// DefaultTimeout is used when no HTTP timeout is configured.
const DefaultTimeout = "30s"

// Config is the CLI configuration.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Webhook WebhookConfig `yaml:"webhook"`
}

// HTTPConfig configures the HTTP client.
type HTTPConfig struct {
	Timeout   string `yaml:"timeout"`    // Go duration, e.g. "10s"
	UserAgent string `yaml:"user_agent"` // Sent when a request sets none
	Proxy     string `yaml:"proxy"`      // Proxy URL
	Metrics   bool   `yaml:"metrics"`    // Log client metrics on exit
}

// WebhookConfig configures the webhook command.
type WebhookConfig struct {
	URL string `yaml:"url"`
}

// TimeoutDuration returns the parsed timeout. Load has already validated it.
func (h HTTPConfig) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(h.Timeout)
	if err != nil {
		return 0
	}
	return d
}

type loader struct {
	envFiles []string
	lookup   func(string) (string, bool)
}

// Option configures Load.
type Option func(*loader)

// WithEnvFiles sets the dotenv files loaded before the environment is read.
// Missing files are skipped. Defaults to ".env" and ".env.local".
func WithEnvFiles(files ...string) Option {
	return func(l *loader) {
		l.envFiles = files
	}
}

// WithLookupEnv replaces os.LookupEnv.
func WithLookupEnv(fn func(string) (string, bool)) Option {
	return func(l *loader) {
		l.lookup = fn
	}
}

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	return &Config{HTTP: HTTPConfig{Timeout: DefaultTimeout}}
}

// Load builds the configuration. Values come from, in increasing priority:
// defaults, the YAML file at path (skipped when path is empty) and SHAWTY_*
// environment variables, including those set by dotenv files.
func Load(path string, opts ...Option) (*Config, error) {
	l := &loader{
		envFiles: []string{".env", ".env.local"},
		lookup:   os.LookupEnv,
	}
	for _, opt := range opts {
		opt(l)
	}

	if err := loadEnvFiles(l.envFiles); err != nil {
		return nil, err
	}

	cfg := Default()
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(l.lookup); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnvFiles loads each existing file without overriding variables that
// are already set.
func loadEnvFiles(files []string) error {
	for _, file := range files {
		if _, err := os.Stat(file); stderrors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return errors.Read("failed to load env file: "+file, err)
		}
	}
	return nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Read("failed to read config file: "+path, err)
	}

	expanded := os.ExpandEnv(string(data))

	dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !stderrors.Is(err, io.EOF) {
		return errors.Config(path, "failed to parse config file", err)
	}
	if c.HTTP.Timeout == "" {
		c.HTTP.Timeout = DefaultTimeout
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvHTTPTimeout); ok && v != "" {
		c.HTTP.Timeout = v
	}
	if v, ok := lookup(EnvHTTPUserAgent); ok && v != "" {
		c.HTTP.UserAgent = v
	}
	if v, ok := lookup(EnvHTTPProxy); ok && v != "" {
		c.HTTP.Proxy = v
	}
	if v, ok := lookup(EnvHTTPMetrics); ok && v != "" {
		var enabled bool
		if err := yaml.Unmarshal([]byte(v), &enabled); err != nil {
			return errors.Config(EnvHTTPMetrics, fmt.Sprintf("expected a boolean, got %q", v), err)
		}
		c.HTTP.Metrics = enabled
	}
	if v, ok := lookup(EnvWebhookURL); ok && v != "" {
		c.Webhook.URL = v
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	d, err := time.ParseDuration(c.HTTP.Timeout)
	if err != nil {
		return errors.Config("http.timeout", "not a duration", err)
	}
	if d < 0 {
		return errors.Config("http.timeout", "must not be negative, got "+c.HTTP.Timeout, nil)
	}
	return nil
}
