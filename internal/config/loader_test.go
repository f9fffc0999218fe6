// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Toofifty/hyperlog/internal/log"
	"github.com/Toofifty/hyperlog/internal/logfile"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := NewLoader("", "test").Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "./logs", cfg.LogDir)
	assert.Equal(t, 100, cfg.DefaultWindow)
	assert.Equal(t, "plaintext", cfg.DefaultDialect)
	assert.Equal(t, "test", cfg.Version)
	require.Len(t, cfg.DialectRules, 2)
	assert.Equal(t, "laravel", cfg.DialectRules[0].Dialect)
	assert.Equal(t, "phplog", cfg.DialectRules[1].Dialect)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
listenAddr: ":9090"
logDir: /srv/logs
defaultWindow: 250
pollInterval: 5s
dialects:
  - pattern: 'app\.log$'
    dialect: laravel
corsOrigins:
  - https://viewer.example.com
telemetry:
  enabled: true
  exporter: grpc
  endpoint: collector:4317
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := NewLoader(path, "test").Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "/srv/logs", cfg.LogDir)
	assert.Equal(t, 250, cfg.DefaultWindow)
	assert.Equal(t, 5*time.Second, cfg.PollInterval)
	require.Len(t, cfg.DialectRules, 1)
	assert.Equal(t, []string{"https://viewer.example.com"}, cfg.CORSOrigins)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "grpc", cfg.Telemetry.Exporter)
	assert.Equal(t, "collector:4317", cfg.Telemetry.Endpoint)
	// Untouched fields keep their defaults.
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listenAddr: \":9090\"\nlogDir: /from/file\n"), 0o600))

	t.Setenv("HYPERLOG_LOG_DIR", "/from/env")
	t.Setenv("HYPERLOG_WINDOW", "42")
	t.Setenv("HYPERLOG_CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := NewLoader(path, "test").Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "/from/env", cfg.LogDir)
	assert.Equal(t, 42, cfg.DefaultWindow)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoad_LogLevelReachesLogger(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Reconfigure(log.Config{Level: prev.String()})
	})

	t.Setenv("HYPERLOG_LOG_LEVEL", "debug")

	cfg, err := NewLoader("", "test").Load()
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)

	log.Reconfigure(log.Config{Level: cfg.LogLevel, Service: cfg.LogService})
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestLoad_UnknownFileKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nonsense: true\n"), 0o600))

	_, err := NewLoader(path, "test").Load()
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "absent.yaml"), "test").Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *AppConfig) {},
		},
		{
			name:    "empty listen addr",
			mutate:  func(c *AppConfig) { c.ListenAddr = "" },
			wantErr: "listen address",
		},
		{
			name:    "empty log dir",
			mutate:  func(c *AppConfig) { c.LogDir = "" },
			wantErr: "log directory",
		},
		{
			name:    "zero window",
			mutate:  func(c *AppConfig) { c.DefaultWindow = 0 },
			wantErr: "default window",
		},
		{
			name:    "broken file pattern",
			mutate:  func(c *AppConfig) { c.FilePattern = "[" },
			wantErr: "file pattern",
		},
		{
			name:    "unknown default dialect",
			mutate:  func(c *AppConfig) { c.DefaultDialect = "syslog" },
			wantErr: "default dialect",
		},
		{
			name: "broken rule pattern",
			mutate: func(c *AppConfig) {
				c.DialectRules = []DialectRule{{Pattern: "[", Dialect: "laravel"}}
			},
			wantErr: "dialect rule 0",
		},
		{
			name: "unknown rule dialect",
			mutate: func(c *AppConfig) {
				c.DialectRules = []DialectRule{{Pattern: ".*", Dialect: "nope"}}
			},
			wantErr: "dialect rule 0",
		},
		{
			name:    "negative rate limit",
			mutate:  func(c *AppConfig) { c.RateLimitRPM = -1 },
			wantErr: "rate limit",
		},
		{
			name:    "bad telemetry exporter",
			mutate:  func(c *AppConfig) { c.Telemetry.Exporter = "udp" },
			wantErr: "telemetry exporter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestCompiledRules(t *testing.T) {
	cfg := Defaults()
	rules := cfg.CompiledRules()
	require.Len(t, rules, 2)

	got := logfile.ResolveDialect("laravel.log", rules, cfg.FallbackDialect())
	assert.Equal(t, logfile.DialectLaravel, got)
	got = logfile.ResolveDialect("php_errors.log", rules, cfg.FallbackDialect())
	assert.Equal(t, logfile.DialectPHPLog, got)
	got = logfile.ResolveDialect("access.log", rules, cfg.FallbackDialect())
	assert.Equal(t, logfile.DialectPlaintext, got)
}
