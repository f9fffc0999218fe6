// SPDX-License-Identifier: MIT

// Package config loads and validates the hyperlog configuration with the
// precedence ENV > YAML file > defaults.
package config

import (
	"time"
)

// AppConfig is the fully merged application configuration.
type AppConfig struct {
	// ListenAddr is the HTTP listen address (e.g. ":8080").
	ListenAddr string

	// LogDir is the directory containing the viewable log files. All file
	// access is confined to this directory.
	LogDir string

	// FilePattern is the allow-list pattern a requested file name must
	// match before any file system access happens.
	FilePattern string

	// DefaultWindow is the number of lines returned when a request does
	// not name an explicit range.
	DefaultWindow int

	// WebRoot is the directory holding the static viewer assets. Empty
	// disables static delivery.
	WebRoot string

	// PollInterval is the refresh interval advertised to the viewer UI.
	PollInterval time.Duration

	// DialectRules maps file-name patterns to dialect names, in order.
	// The first matching rule wins.
	DialectRules []DialectRule

	// DefaultDialect applies when no rule matches.
	DefaultDialect string

	// CORSOrigins is the allowed origin list for browser clients.
	CORSOrigins []string

	// RateLimitRPM is the per-IP request budget per minute. Zero disables
	// rate limiting.
	RateLimitRPM int

	// LogLevel configures the global zerolog level.
	LogLevel string

	// LogService is the service name attached to every log entry.
	LogService string

	// Telemetry configures the optional OpenTelemetry trace exporter.
	Telemetry TelemetryConfig

	// Version is the build version, injected by the loader.
	Version string
}

// DialectRule is one ordered file-name-pattern-to-dialect binding.
type DialectRule struct {
	Pattern string `yaml:"pattern"`
	Dialect string `yaml:"dialect"`
}

// TelemetryConfig configures trace export.
type TelemetryConfig struct {
	Enabled      bool    `yaml:"enabled"`
	Exporter     string  `yaml:"exporter"` // "grpc" or "http"
	Endpoint     string  `yaml:"endpoint"`
	SamplingRate float64 `yaml:"samplingRate"`
	Environment  string  `yaml:"environment"`
}

// Defaults returns the built-in configuration. The default dialect rules
// route Laravel and PHP error logs to their dialects; everything else is
// plain text.
func Defaults() AppConfig {
	return AppConfig{
		ListenAddr:    ":8080",
		LogDir:        "./logs",
		FilePattern:   `^[\w][\w.-]*\.log$`,
		DefaultWindow: 100,
		PollInterval:  2 * time.Second,
		DialectRules: []DialectRule{
			{Pattern: `laravel.*\.log$`, Dialect: "laravel"},
			{Pattern: `php.*\.log$`, Dialect: "phplog"},
		},
		DefaultDialect: "plaintext",
		RateLimitRPM:   600,
		LogLevel:       "info",
		LogService:     "hyperlog",
		Telemetry: TelemetryConfig{
			Exporter:     "http",
			SamplingRate: 1.0,
			Environment:  "development",
		},
	}
}
