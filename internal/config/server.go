// SPDX-License-Identifier: MIT

package config

import (
	"time"
)

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	// ReadTimeout is the maximum duration for reading the entire request
	ReadTimeout time.Duration

	// WriteTimeout is the maximum duration before timing out writes of the response
	WriteTimeout time.Duration

	// IdleTimeout is the maximum amount of time to wait for the next request
	IdleTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown on SIGINT/SIGTERM
	ShutdownTimeout time.Duration
}

// ParseServerConfig reads HTTP server timeouts from the environment with
// conservative defaults.
func ParseServerConfig() ServerConfig {
	return ServerConfig{
		ReadTimeout:     ParseDuration("HYPERLOG_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:    ParseDuration("HYPERLOG_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:     ParseDuration("HYPERLOG_IDLE_TIMEOUT", 120*time.Second),
		ShutdownTimeout: ParseDuration("HYPERLOG_SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}
