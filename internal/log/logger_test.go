// SPDX-License-Identifier: MIT

package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestReconfigure_AppliesLevel(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() {
		Reconfigure(Config{Level: prev.String()})
	})

	var buf bytes.Buffer
	Reconfigure(Config{Level: "warn", Output: &buf, Service: "svc"})

	b := Base()
	b.Info().Msg("suppressed")
	if buf.Len() != 0 {
		t.Fatalf("info line emitted at warn level: %s", buf.String())
	}

	Reconfigure(Config{Level: "debug", Output: &buf, Service: "svc"})

	b = Base()
	b.Debug().Msg("visible")
	if buf.Len() == 0 {
		t.Fatal("debug line not emitted at debug level")
	}
}

func TestReconfigure_ReplacesServiceAndOutput(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() {
		Reconfigure(Config{Level: prev.String()})
	})

	var buf bytes.Buffer
	Reconfigure(Config{Level: "info", Output: &buf, Service: "renamed", Version: "v9"})

	b := Base()
	b.Info().Msg("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid JSON log line: %v", err)
	}
	if entry["service"] != "renamed" {
		t.Errorf("service = %v, want renamed", entry["service"])
	}
	if entry["version"] != "v9" {
		t.Errorf("version = %v, want v9", entry["version"])
	}
}
