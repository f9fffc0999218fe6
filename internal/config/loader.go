// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Loader produces a validated AppConfig with the precedence
// ENV > file > defaults.
type Loader struct {
	path    string // YAML file path; empty skips the file layer
	version string
}

// NewLoader creates a Loader for the given config file path.
func NewLoader(path, version string) *Loader {
	return &Loader{path: path, version: version}
}

// Load merges defaults, the optional YAML file and the HYPERLOG_*
// environment, then validates the result.
func (l *Loader) Load() (AppConfig, error) {
	cfg := Defaults()
	cfg.Version = l.version

	if l.path != "" {
		if err := mergeFile(&cfg, l.path); err != nil {
			return AppConfig{}, err
		}
	}
	mergeEnv(&cfg)

	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func mergeFile(cfg *AppConfig, path string) error {
	data, err := os.ReadFile(path) // #nosec G304 -- operator-supplied config path
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.ListenAddr != nil {
		cfg.ListenAddr = *fc.ListenAddr
	}
	if fc.LogDir != nil {
		cfg.LogDir = *fc.LogDir
	}
	if fc.FilePattern != nil {
		cfg.FilePattern = *fc.FilePattern
	}
	if fc.DefaultWindow != nil {
		cfg.DefaultWindow = *fc.DefaultWindow
	}
	if fc.WebRoot != nil {
		cfg.WebRoot = *fc.WebRoot
	}
	if fc.PollInterval != nil {
		d, err := time.ParseDuration(*fc.PollInterval)
		if err != nil {
			return fmt.Errorf("parse config file %s: pollInterval: %w", path, err)
		}
		cfg.PollInterval = d
	}
	if fc.Dialects != nil {
		cfg.DialectRules = fc.Dialects
	}
	if fc.DefaultDialect != nil {
		cfg.DefaultDialect = *fc.DefaultDialect
	}
	if fc.CORSOrigins != nil {
		cfg.CORSOrigins = fc.CORSOrigins
	}
	if fc.RateLimitRPM != nil {
		cfg.RateLimitRPM = *fc.RateLimitRPM
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.Telemetry != nil {
		if fc.Telemetry.Enabled != nil {
			cfg.Telemetry.Enabled = *fc.Telemetry.Enabled
		}
		if fc.Telemetry.Exporter != nil {
			cfg.Telemetry.Exporter = *fc.Telemetry.Exporter
		}
		if fc.Telemetry.Endpoint != nil {
			cfg.Telemetry.Endpoint = *fc.Telemetry.Endpoint
		}
		if fc.Telemetry.SamplingRate != nil {
			cfg.Telemetry.SamplingRate = *fc.Telemetry.SamplingRate
		}
		if fc.Telemetry.Environment != nil {
			cfg.Telemetry.Environment = *fc.Telemetry.Environment
		}
	}
	return nil
}

func mergeEnv(cfg *AppConfig) {
	cfg.ListenAddr = ParseString("HYPERLOG_LISTEN", cfg.ListenAddr)
	cfg.LogDir = ParseString("HYPERLOG_LOG_DIR", cfg.LogDir)
	cfg.FilePattern = ParseString("HYPERLOG_FILE_PATTERN", cfg.FilePattern)
	cfg.DefaultWindow = ParseInt("HYPERLOG_WINDOW", cfg.DefaultWindow)
	cfg.WebRoot = ParseString("HYPERLOG_WEB_ROOT", cfg.WebRoot)
	cfg.PollInterval = ParseDuration("HYPERLOG_POLL_INTERVAL", cfg.PollInterval)
	cfg.DefaultDialect = ParseString("HYPERLOG_DEFAULT_DIALECT", cfg.DefaultDialect)
	cfg.RateLimitRPM = ParseInt("HYPERLOG_RATE_LIMIT_RPM", cfg.RateLimitRPM)
	cfg.LogLevel = ParseString("HYPERLOG_LOG_LEVEL", cfg.LogLevel)

	if origins := ParseString("HYPERLOG_CORS_ORIGINS", ""); origins != "" {
		parts := strings.Split(origins, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		cfg.CORSOrigins = out
	}

	cfg.Telemetry.Enabled = ParseBool("HYPERLOG_OTEL_ENABLED", cfg.Telemetry.Enabled)
	cfg.Telemetry.Exporter = ParseString("HYPERLOG_OTEL_EXPORTER", cfg.Telemetry.Exporter)
	cfg.Telemetry.Endpoint = ParseString("HYPERLOG_OTEL_ENDPOINT", cfg.Telemetry.Endpoint)
	cfg.Telemetry.SamplingRate = ParseFloat("HYPERLOG_OTEL_SAMPLING_RATE", cfg.Telemetry.SamplingRate)
	cfg.Telemetry.Environment = ParseString("HYPERLOG_OTEL_ENVIRONMENT", cfg.Telemetry.Environment)
}
