// SPDX-License-Identifier: MIT

package logfile

import (
	"fmt"
	"regexp"
)

// Dialect identifies a closed set of rules for interpreting one log format.
type Dialect int

const (
	// DialectPlaintext emits every line as its own entry, with no
	// timestamps or levels.
	DialectPlaintext Dialect = iota
	// DialectLaravel interprets Laravel application logs, grouping stack
	// traces under the preceding header line.
	DialectLaravel
	// DialectPHPLog interprets php_errors-style logs with per-line
	// timestamps and two header tiers.
	DialectPHPLog
)

// String returns the configuration name of the dialect.
func (d Dialect) String() string {
	switch d {
	case DialectLaravel:
		return "laravel"
	case DialectPHPLog:
		return "phplog"
	default:
		return "plaintext"
	}
}

// HasLevels reports whether severity levels are meaningful for this dialect.
func (d Dialect) HasLevels() bool {
	return d == DialectLaravel || d == DialectPHPLog
}

// HasStamps reports whether timestamps are meaningful for this dialect.
func (d Dialect) HasStamps() bool {
	return d == DialectLaravel || d == DialectPHPLog
}

// ParseDialect maps a configuration name to a Dialect.
func ParseDialect(name string) (Dialect, error) {
	switch name {
	case "plaintext":
		return DialectPlaintext, nil
	case "laravel":
		return DialectLaravel, nil
	case "phplog":
		return DialectPHPLog, nil
	default:
		return DialectPlaintext, fmt.Errorf("unknown dialect %q", name)
	}
}

// DialectRule binds a file-name pattern to a dialect.
type DialectRule struct {
	Pattern *regexp.Regexp
	Dialect Dialect
}

// ResolveDialect returns the dialect of the first rule whose pattern matches
// fileName, or fallback if none match. Rules are tried in declaration order,
// so more specific patterns must be listed ahead of general ones.
func ResolveDialect(fileName string, rules []DialectRule, fallback Dialect) Dialect {
	for _, rule := range rules {
		if rule.Pattern.MatchString(fileName) {
			return rule.Dialect
		}
	}
	return fallback
}
