// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Catalog CatalogConfig `yaml:"catalog"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// CatalogConfig defines the upstream product catalog API settings.
type CatalogConfig struct {
	BaseURL       string          `yaml:"base_url"`
	Timeout       time.Duration   `yaml:"timeout"`
	ProbeInterval time.Duration   `yaml:"probe_interval"`
	RateLimit     RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines token-bucket limits for upstream catalog calls.
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// UIConfig defines the browsing front end settings.
type UIConfig struct {
	// PageSize is the fixed number of products fetched per grid page.
	PageSize int `yaml:"page_size"`
	// SearchLimit caps the number of autocomplete results in the dropdown.
	SearchLimit int `yaml:"search_limit"`
	// SearchDebounce is the quiet period after the last keystroke before
	// a search lookup is issued.
	SearchDebounce time.Duration `yaml:"search_debounce"`
	// ImageHosts lists the CDN hostnames product thumbnails may be loaded
	// from. Thumbnails on other hosts render as placeholders.
	ImageHosts []string `yaml:"image_hosts"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation. A missing file yields defaults only when
// path is empty.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		// Expand environment variables in the YAML content.
		expanded := os.ExpandEnv(string(data))

		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parsing config YAML: %w", err)
		}
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyCatalogDefaults(&cfg.Catalog)
	applyUIDefaults(&cfg.UI)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyCatalogDefaults(c *CatalogConfig) {
	if c.BaseURL == "" {
		c.BaseURL = "https://dummyjson.com"
	}
	if c.Timeout == 0 {
		c.Timeout = 30 * time.Second
	}
	if c.ProbeInterval == 0 {
		c.ProbeInterval = 5 * time.Minute
	}
	if c.RateLimit.PerSecond == 0 {
		c.RateLimit.PerSecond = 5.0
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 10
	}
}

func applyUIDefaults(u *UIConfig) {
	if u.PageSize == 0 {
		u.PageSize = 10
	}
	if u.SearchLimit == 0 {
		u.SearchLimit = 5
	}
	if u.SearchDebounce == 0 {
		u.SearchDebounce = time.Second
	}
	if len(u.ImageHosts) == 0 {
		u.ImageHosts = []string{"cdn.dummyjson.com", "i.dummyjson.com", "dummyjson.com"}
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	u, err := url.Parse(cfg.Catalog.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("catalog.base_url must be an absolute URL (got %q)", cfg.Catalog.BaseURL))
	}

	if cfg.UI.PageSize < 1 {
		errs = append(errs, fmt.Errorf("ui.page_size must be at least 1 (got %d)", cfg.UI.PageSize))
	}
	if cfg.UI.SearchLimit < 1 {
		errs = append(errs, fmt.Errorf("ui.search_limit must be at least 1 (got %d)", cfg.UI.SearchLimit))
	}
	if cfg.UI.SearchDebounce < 0 {
		errs = append(errs, fmt.Errorf("ui.search_debounce must not be negative (got %s)", cfg.UI.SearchDebounce))
	}

	if cfg.Catalog.RateLimit.PerSecond < 0 {
		errs = append(errs, fmt.Errorf("catalog.rate_limit.per_second must not be negative"))
	}

	return errors.Join(errs...)
}
