// SPDX-License-Identifier: MIT

package api

import (
	"errors"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"

	"github.com/Toofifty/hyperlog/internal/fsutil"
	"github.com/Toofifty/hyperlog/internal/log"
	"github.com/Toofifty/hyperlog/internal/logfile"
	"github.com/Toofifty/hyperlog/internal/metrics"
	"github.com/Toofifty/hyperlog/internal/telemetry"
)

// logFileInfo is one entry of the directory listing.
type logFileInfo struct {
	Name     string    `json:"name"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
	Dialect  string    `json:"dialect"`
}

// windowResponse is the wire shape of one window read.
type windowResponse struct {
	File    string            `json:"file"`
	Dialect string            `json:"dialect"`
	Range   logfile.LineRange `json:"range"`
	logfile.ParseResult
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":         "ok",
		"uptime_seconds": int(time.Since(s.startTime).Seconds()),
		"version":        s.cfg.Version,
	})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	info, err := os.Stat(s.cfg.LogDir)
	if err != nil || !info.IsDir() {
		logger := log.WithComponentFromContext(r.Context(), "api")
		logger.Warn().Str("event", "ready.failed").Str("log_dir", s.cfg.LogDir).Msg("log directory not available")
		writeServiceUnavailable(w, errors.New("log directory not available"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// handleViewerConfig exposes the settings the viewer UI needs for polling.
func (s *Server) handleViewerConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"poll_interval_ms": s.cfg.PollInterval.Milliseconds(),
		"default_window":   s.cfg.DefaultWindow,
	})
}

// handleListLogs enumerates viewable files directly under the log directory.
// Only regular files whose names match the allow pattern are listed.
func (s *Server) handleListLogs(w http.ResponseWriter, r *http.Request) {
	logger := log.WithComponentFromContext(r.Context(), "api")

	entries, err := os.ReadDir(s.cfg.LogDir)
	if err != nil {
		logger.Error().Err(err).Str("event", "list.failed").Str("log_dir", s.cfg.LogDir).Msg("failed to read log directory")
		writeInternalError(w)
		return
	}

	files := make([]logFileInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !s.allow.MatchString(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, logFileInfo{
			Name:     entry.Name(),
			Size:     info.Size(),
			Modified: info.ModTime(),
			Dialect:  logfile.ResolveDialect(entry.Name(), s.rules, s.fallback).String(),
		})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })

	writeJSON(w, http.StatusOK, map[string]any{"files": files})
}

// handleReadLog extracts a window of the named file and reconstructs its
// entries. The file name is validated against the allow pattern and confined
// to the log directory before any file system access happens.
func (s *Server) handleReadLog(w http.ResponseWriter, r *http.Request) {
	logger := log.WithComponentFromContext(r.Context(), "api")
	name := chi.URLParam(r, "name")

	if !s.validFileName(name) {
		logger.Warn().Str("event", "read.denied").Str("file", name).Str("reason", "name_rejected").Msg("file name rejected")
		metrics.RecordWindowRequest("unknown", "denied")
		writeForbidden(w)
		return
	}

	opts := logfile.WindowOptions{DefaultWindow: s.cfg.DefaultWindow}
	var err error
	if opts.Start, err = parseLineParam(r, "start"); err != nil {
		writeError(w, err)
		return
	}
	if opts.End, err = parseLineParam(r, "end"); err != nil {
		writeError(w, err)
		return
	}

	dialect := logfile.ResolveDialect(name, s.rules, s.fallback)

	path, err := fsutil.ConfineRelPath(s.cfg.LogDir, name)
	if err != nil {
		if os.IsNotExist(err) {
			metrics.RecordWindowRequest(dialect.String(), "not_found")
			writeNotFound(w)
			return
		}
		logger.Warn().Err(err).Str("event", "read.denied").Str("file", name).Str("reason", "path_escape").Msg("path rejected")
		metrics.RecordWindowRequest(dialect.String(), "denied")
		writeForbidden(w)
		return
	}
	if err := fsutil.IsRegularFile(path); err != nil {
		metrics.RecordWindowRequest(dialect.String(), "not_found")
		writeNotFound(w)
		return
	}

	started := time.Now()
	rng, lines, err := logfile.ReadWindow(path, opts)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			metrics.RecordWindowRequest(dialect.String(), "not_found")
			writeNotFound(w)
			return
		}
		logger.Error().Err(err).Str("event", "read.failed").Str("file", name).Msg("window read failed")
		metrics.RecordWindowRequest(dialect.String(), "error")
		writeInternalError(w)
		return
	}

	result := logfile.Reconstruct(lines, dialect)

	metrics.RecordWindowRequest(dialect.String(), "ok")
	metrics.RecordParse(dialect.String(), len(lines), len(result.Entries), time.Since(started).Seconds())
	if span := trace.SpanFromContext(r.Context()); span.IsRecording() {
		span.SetAttributes(telemetry.WindowAttributes(
			name, dialect.String(), rng.Start, rng.End, len(lines), len(result.Entries),
		)...)
	}

	logger.Debug().
		Str("event", "read.ok").
		Str(log.FieldFile, name).
		Str(log.FieldDialect, dialect.String()).
		Int(log.FieldWindowStart, rng.Start).
		Int(log.FieldWindowEnd, rng.End).
		Int(log.FieldLineCount, len(lines)).
		Msg("served log window")

	writeJSON(w, http.StatusOK, windowResponse{
		File:        name,
		Dialect:     dialect.String(),
		Range:       rng,
		ParseResult: result,
	})
}

// validFileName applies the allow pattern plus structural checks that hold
// regardless of configuration.
func (s *Server) validFileName(name string) bool {
	if name == "" || strings.ContainsAny(name, "/\\\x00") || strings.HasPrefix(name, ".") {
		return false
	}
	return s.allow.MatchString(name)
}

// parseLineParam reads an optional positive line-number query parameter.
// Absence is reported as zero.
func parseLineParam(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, errors.New("invalid " + key + " parameter")
	}
	return n, nil
}
