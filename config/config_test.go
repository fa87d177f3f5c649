package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grammatik.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ":8000", cfg.ListenAddr)
	assert.Equal(t, 1000, cfg.Cache.MaxEntries)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
listen_addr: ":9000"
parser:
  url: "http://parser:8090"
  timeout: 30s
cache:
  max_entries: 50
  ttl: 1m
cors:
  allowed_origins:
    - "chrome-extension://abcdef"
log:
  level: debug
`)
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, "http://parser:8090", cfg.Parser.URL)
	assert.Equal(t, 30*time.Second, cfg.Parser.Timeout)
	assert.Equal(t, 50, cfg.Cache.MaxEntries)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
	assert.Equal(t, []string{"chrome-extension://abcdef"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFromFileAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `listen_addr: ":9000"`)
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.ListenAddr)
	// Everything else keeps its default.
	assert.Equal(t, 1000, cfg.Cache.MaxEntries)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "fehlt.yaml"))
	assert.Error(t, err)
}

func TestLoadFromFileRejectsBadYAML(t *testing.T) {
	path := writeConfig(t, "listen_addr: [")
	_, err := LoadFromFile(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty listen_addr", func(c *Config) { c.ListenAddr = "" }},
		{"empty parser url", func(c *Config) { c.Parser.URL = "" }},
		{"zero parser timeout", func(c *Config) { c.Parser.Timeout = 0 }},
		{"zero cache entries", func(c *Config) { c.Cache.MaxEntries = 0 }},
		{"zero cache ttl", func(c *Config) { c.Cache.TTL = 0 }},
		{"bad log level", func(c *Config) { c.Log.Level = "laut" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
