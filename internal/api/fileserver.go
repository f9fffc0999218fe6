// SPDX-License-Identifier: MIT

package api

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/Toofifty/hyperlog/internal/log"
	"github.com/Toofifty/hyperlog/internal/metrics"
)

// secureFileServer creates a handler that serves the static viewer assets
// from the web root with security checks against path traversal, symlink
// escapes, and directory listing.
func (s *Server) secureFileServer() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.WithComponentFromContext(r.Context(), "api")

		if s.cfg.WebRoot == "" {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}

		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			logger.Warn().Str("event", "file_req.denied").Str("path", r.URL.Path).Str("reason", "method_not_allowed").Msg("method not allowed")
			metrics.RecordFileRequestDenied("method_not_allowed")
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		path := r.URL.Path
		if path == "/" || path == "" {
			path = "/index.html"
		}

		// Traversal detection including multiple URL-decode passes, Unicode
		// normalization and NUL bytes.
		if isPathTraversal(path) {
			logger.Warn().Str("event", "file_req.denied").Str("path", r.URL.Path).Str("reason", "path_escape").Msg("detected traversal sequence")
			metrics.RecordFileRequestDenied("path_escape")
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		if strings.HasSuffix(path, "/") {
			logger.Warn().Str("event", "file_req.denied").Str("path", r.URL.Path).Str("reason", "directory_listing").Msg("directory listing forbidden")
			metrics.RecordFileRequestDenied("directory_listing")
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		absWebRoot, err := filepath.Abs(s.cfg.WebRoot)
		if err != nil {
			logger.Error().Err(err).Str("event", "file_req.internal_error").Msg("could not get absolute web root")
			metrics.RecordFileRequestDenied("internal_error")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		fullPath := filepath.Join(absWebRoot, path)

		realPath, err := filepath.EvalSymlinks(fullPath)
		if err != nil {
			if os.IsNotExist(err) {
				metrics.RecordFileRequestDenied("not_found")
				http.Error(w, "Not found", http.StatusNotFound)
				return
			}
			logger.Error().Err(err).Str("event", "file_req.internal_error").Str("path", fullPath).Msg("could not evaluate symlinks")
			metrics.RecordFileRequestDenied("internal_error")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		realWebRoot, err := filepath.EvalSymlinks(absWebRoot)
		if err != nil {
			logger.Error().Err(err).Str("event", "file_req.internal_error").Msg("could not evaluate symlinks on web root")
			metrics.RecordFileRequestDenied("internal_error")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		// Containment check via filepath.Rel protects against symlink
		// escapes out of the web root.
		relPath, err := filepath.Rel(realWebRoot, realPath)
		if err != nil || strings.HasPrefix(relPath, "..") || filepath.IsAbs(relPath) {
			logger.Warn().
				Str("event", "file_req.denied").
				Str("path", path).
				Str("resolved_path", realPath).
				Str("reason", "path_escape").
				Msg("path escapes web root")
			metrics.RecordFileRequestDenied("path_escape")
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		info, err := os.Stat(realPath)
		if err != nil {
			logger.Error().Err(err).Str("event", "file_req.internal_error").Str("path", realPath).Msg("could not stat real path")
			metrics.RecordFileRequestDenied("internal_error")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		if info.IsDir() {
			logger.Warn().Str("event", "file_req.denied").Str("path", path).Str("reason", "directory_listing").Msg("resolved path is a directory")
			metrics.RecordFileRequestDenied("directory_listing")
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		// #nosec G304 -- realPath is validated to reside inside the web root
		f, err := os.Open(realPath)
		if err != nil {
			logger.Error().Err(err).Str("event", "file_req.internal_error").Str("path", realPath).Msg("could not open real path for serving")
			metrics.RecordFileRequestDenied("internal_error")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		defer func() {
			if err := f.Close(); err != nil {
				logger.Warn().Err(err).Str("path", realPath).Msg("failed to close file")
			}
		}()

		info, err = f.Stat()
		if err != nil {
			logger.Error().Err(err).Str("event", "file_req.internal_error").Str("path", realPath).Msg("could not stat opened file")
			metrics.RecordFileRequestDenied("internal_error")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		// Weak ETag from modtime and size; the viewer polls aggressively,
		// so revalidation matters more than byte-exact validators.
		etag := fmt.Sprintf(`W/"%x-%x"`, info.ModTime().UnixNano(), info.Size())
		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "public, max-age=3600")

		if match := r.Header.Get("If-None-Match"); match != "" && match == etag {
			metrics.RecordFileCacheHit()
			w.WriteHeader(http.StatusNotModified)
			return
		}

		metrics.RecordFileCacheMiss()
		http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	})
}

// isPathTraversal performs robust checks against path traversal attempts.
// It decodes the input multiple times to catch double-encoding, applies
// Unicode normalization, and searches for dangerous sequences including NULs.
func isPathTraversal(p string) bool {
	decoded := p
	// Multiple decode passes catch double/triple encodings.
	for i := 0; i < 3; i++ {
		prev := decoded
		if d, err := url.PathUnescape(decoded); err == nil {
			decoded = d
		} else if d2, err2 := url.QueryUnescape(decoded); err2 == nil {
			decoded = d2
		}
		if decoded == prev {
			break
		}
	}

	lower := strings.ToLower(decoded)
	dangerSubstrings := []string{
		"..",        // parent traversal
		"..\\",      // windows-style backslash
		"%00",       // encoded NUL
		"%c0%ae",    // overlong UTF-8 for '.'
		"%e0%80%ae", // another overlong variant
	}
	for _, pat := range dangerSubstrings {
		if strings.Contains(lower, pat) {
			return true
		}
	}
	if strings.IndexByte(decoded, 0x00) >= 0 {
		return true
	}

	// Normalize and check again for dot-dot.
	normalized := strings.ToLower(norm.NFC.String(decoded))
	return strings.Contains(normalized, "..")
}
