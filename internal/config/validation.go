// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"regexp"

	"github.com/Toofifty/hyperlog/internal/logfile"
)

// Validate checks the merged configuration for problems that would only
// surface later as confusing request failures.
func Validate(cfg AppConfig) error {
	if cfg.ListenAddr == "" {
		return fmt.Errorf("listen address must not be empty")
	}
	if cfg.LogDir == "" {
		return fmt.Errorf("log directory must not be empty")
	}
	if cfg.DefaultWindow < 1 {
		return fmt.Errorf("default window must be at least 1, got %d", cfg.DefaultWindow)
	}
	if _, err := regexp.Compile(cfg.FilePattern); err != nil {
		return fmt.Errorf("invalid file pattern %q: %w", cfg.FilePattern, err)
	}
	if _, err := logfile.ParseDialect(cfg.DefaultDialect); err != nil {
		return fmt.Errorf("invalid default dialect: %w", err)
	}
	for i, rule := range cfg.DialectRules {
		if _, err := regexp.Compile(rule.Pattern); err != nil {
			return fmt.Errorf("dialect rule %d: invalid pattern %q: %w", i, rule.Pattern, err)
		}
		if _, err := logfile.ParseDialect(rule.Dialect); err != nil {
			return fmt.Errorf("dialect rule %d: %w", i, err)
		}
	}
	if cfg.RateLimitRPM < 0 {
		return fmt.Errorf("rate limit must not be negative, got %d", cfg.RateLimitRPM)
	}
	switch cfg.Telemetry.Exporter {
	case "", "grpc", "http":
	default:
		return fmt.Errorf("invalid telemetry exporter %q (supported: grpc, http)", cfg.Telemetry.Exporter)
	}
	return nil
}

// AllowPattern compiles the file allow-list pattern. Call Validate first.
func (c AppConfig) AllowPattern() *regexp.Regexp {
	return regexp.MustCompile(c.FilePattern)
}

// CompiledRules converts the configured dialect rules into the ordered form
// consumed by logfile.ResolveDialect. Call Validate first.
func (c AppConfig) CompiledRules() []logfile.DialectRule {
	rules := make([]logfile.DialectRule, 0, len(c.DialectRules))
	for _, rule := range c.DialectRules {
		d, err := logfile.ParseDialect(rule.Dialect)
		if err != nil {
			continue
		}
		rules = append(rules, logfile.DialectRule{
			Pattern: regexp.MustCompile(rule.Pattern),
			Dialect: d,
		})
	}
	return rules
}

// FallbackDialect returns the configured default dialect. Call Validate
// first.
func (c AppConfig) FallbackDialect() logfile.Dialect {
	d, err := logfile.ParseDialect(c.DefaultDialect)
	if err != nil {
		return logfile.DialectPlaintext
	}
	return d
}
