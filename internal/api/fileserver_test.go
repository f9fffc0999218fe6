// SPDX-License-Identifier: MIT

package api

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Toofifty/hyperlog/internal/config"
)

func newStaticServer(t *testing.T) http.Handler {
	t.Helper()
	webRoot := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(webRoot, "index.html"), []byte("<html>viewer</html>"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(webRoot, "app.js"), []byte("console.log('hi')"), 0o600))

	cfg := config.Defaults()
	cfg.LogDir = t.TempDir()
	cfg.WebRoot = webRoot
	cfg.RateLimitRPM = 0
	require.NoError(t, config.Validate(cfg))

	return New(cfg).Routes()
}

func TestFileServer_ServesIndex(t *testing.T) {
	handler := newStaticServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "viewer")
	assert.NotEmpty(t, rec.Header().Get("ETag"))
}

func TestFileServer_ServesAsset(t *testing.T) {
	handler := newStaticServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/app.js", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "console")
}

func TestFileServer_ETagRevalidation(t *testing.T) {
	handler := newStaticServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/app.js", nil))
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)

	req := httptest.NewRequest(http.MethodGet, "/app.js", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotModified, rec.Code)
}

func TestFileServer_NotFound(t *testing.T) {
	handler := newStaticServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing.css", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFileServer_NoWebRoot(t *testing.T) {
	cfg := config.Defaults()
	cfg.LogDir = t.TempDir()
	cfg.RateLimitRPM = 0
	require.NoError(t, config.Validate(cfg))
	handler := New(cfg).Routes()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/index.html", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestIsPathTraversal(t *testing.T) {
	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "plain asset", path: "/app.js", want: false},
		{name: "nested asset", path: "/css/site.css", want: false},
		{name: "dot dot", path: "/../etc/passwd", want: true},
		{name: "encoded dot dot", path: "/%2e%2e/etc/passwd", want: true},
		{name: "double encoded", path: "/%252e%252e/secret", want: true},
		{name: "encoded nul", path: "/file%00.html", want: true},
		{name: "backslash traversal", path: "/..\\windows", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isPathTraversal(tt.path); got != tt.want {
				t.Errorf("isPathTraversal(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
