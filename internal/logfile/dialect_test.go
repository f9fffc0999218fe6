// SPDX-License-Identifier: MIT

package logfile

import (
	"regexp"
	"testing"
)

func TestResolveDialect(t *testing.T) {
	rules := []DialectRule{
		{Pattern: regexp.MustCompile(`.*laravel\.log$`), Dialect: DialectLaravel},
		{Pattern: regexp.MustCompile(`.*php.*\.log$`), Dialect: DialectPHPLog},
	}

	tests := []struct {
		fileName string
		want     Dialect
	}{
		{"app-laravel.log", DialectLaravel},
		{"php_errors.log", DialectPHPLog},
		{"access.log", DialectPlaintext},
		{"laravel.log", DialectLaravel},
		{"phpinfo.log", DialectPHPLog},
	}

	for _, tt := range tests {
		t.Run(tt.fileName, func(t *testing.T) {
			if got := ResolveDialect(tt.fileName, rules, DialectPlaintext); got != tt.want {
				t.Errorf("ResolveDialect(%q) = %v, want %v", tt.fileName, got, tt.want)
			}
		})
	}
}

func TestResolveDialect_FirstMatchWins(t *testing.T) {
	// Both patterns match; declaration order decides.
	rules := []DialectRule{
		{Pattern: regexp.MustCompile(`special-laravel\.log$`), Dialect: DialectLaravel},
		{Pattern: regexp.MustCompile(`.*\.log$`), Dialect: DialectPHPLog},
	}

	if got := ResolveDialect("special-laravel.log", rules, DialectPlaintext); got != DialectLaravel {
		t.Errorf("expected first rule to win, got %v", got)
	}
	if got := ResolveDialect("other.log", rules, DialectPlaintext); got != DialectPHPLog {
		t.Errorf("expected second rule to match, got %v", got)
	}
}

func TestResolveDialect_NoRules(t *testing.T) {
	if got := ResolveDialect("anything.log", nil, DialectPlaintext); got != DialectPlaintext {
		t.Errorf("expected fallback, got %v", got)
	}
}

func TestParseDialect(t *testing.T) {
	for _, d := range []Dialect{DialectPlaintext, DialectLaravel, DialectPHPLog} {
		got, err := ParseDialect(d.String())
		if err != nil {
			t.Fatalf("ParseDialect(%q) error = %v", d.String(), err)
		}
		if got != d {
			t.Errorf("ParseDialect(%q) = %v, want %v", d.String(), got, d)
		}
	}

	if _, err := ParseDialect("syslog"); err == nil {
		t.Error("expected error for unknown dialect name")
	}
}

func TestDialectFlags(t *testing.T) {
	if DialectPlaintext.HasLevels() || DialectPlaintext.HasStamps() {
		t.Error("plaintext must declare no levels or stamps")
	}
	if !DialectLaravel.HasLevels() || !DialectLaravel.HasStamps() {
		t.Error("laravel must declare levels and stamps")
	}
	if !DialectPHPLog.HasLevels() || !DialectPHPLog.HasStamps() {
		t.Error("phplog must declare levels and stamps")
	}
}
