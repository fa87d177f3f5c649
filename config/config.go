// Package config provides configuration loading for the grammatik server.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the complete server configuration.
type Config struct {
	// ListenAddr is the address the API server binds to.
	ListenAddr string       `yaml:"listen_addr"`
	Parser     ParserConfig `yaml:"parser"`
	Cache      CacheConfig  `yaml:"cache"`
	CORS       CORSConfig   `yaml:"cors"`
	Log        LogConfig    `yaml:"log"`
}

// ParserConfig configures the external dependency-parser service.
type ParserConfig struct {
	// URL is the base URL of the parser bridge.
	URL string `yaml:"url"`
	// Timeout bounds a single parse request.
	Timeout time.Duration `yaml:"timeout"`
}

// CacheConfig configures the analysis memoization cache.
type CacheConfig struct {
	// MaxEntries is the maximum number of cached analyses.
	MaxEntries int `yaml:"max_entries"`
	// TTL is how long a cached analysis stays valid.
	TTL time.Duration `yaml:"ttl"`
}

// CORSConfig configures cross-origin access for browser clients.
type CORSConfig struct {
	// AllowedOrigins lists permitted origins; empty allows all, which the
	// browser extension needs during development.
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() *Config {
	return &Config{
		ListenAddr: ":8000",
		Parser: ParserConfig{
			URL:     "http://localhost:8090",
			Timeout: 10 * time.Second,
		},
		Cache: CacheConfig{
			MaxEntries: 1000,
			TTL:        5 * time.Minute,
		},
		CORS: CORSConfig{
			AllowedOrigins: nil, // allow all
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadFromFile loads configuration from a YAML file, applying defaults for
// absent fields.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("listen_addr is required")
	}
	if c.Parser.URL == "" {
		return fmt.Errorf("parser.url is required")
	}
	if c.Parser.Timeout <= 0 {
		return fmt.Errorf("parser.timeout must be positive")
	}
	if c.Cache.MaxEntries <= 0 {
		return fmt.Errorf("cache.max_entries must be positive")
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error (got %q)", c.Log.Level)
	}
	return nil
}
