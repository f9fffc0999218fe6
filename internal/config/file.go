// SPDX-License-Identifier: MIT

package config

// fileConfig is the YAML schema. Pointer fields distinguish "absent" from
// zero values so the file only overrides what it names.
type fileConfig struct {
	ListenAddr     *string          `yaml:"listenAddr"`
	LogDir         *string          `yaml:"logDir"`
	FilePattern    *string          `yaml:"filePattern"`
	DefaultWindow  *int             `yaml:"defaultWindow"`
	WebRoot        *string          `yaml:"webRoot"`
	PollInterval   *string          `yaml:"pollInterval"`
	Dialects       []DialectRule    `yaml:"dialects"`
	DefaultDialect *string          `yaml:"defaultDialect"`
	CORSOrigins    []string         `yaml:"corsOrigins"`
	RateLimitRPM   *int             `yaml:"rateLimitRpm"`
	LogLevel       *string          `yaml:"logLevel"`
	Telemetry      *telemetryConfig `yaml:"telemetry"`
}

type telemetryConfig struct {
	Enabled      *bool    `yaml:"enabled"`
	Exporter     *string  `yaml:"exporter"`
	Endpoint     *string  `yaml:"endpoint"`
	SamplingRate *float64 `yaml:"samplingRate"`
	Environment  *string  `yaml:"environment"`
}
