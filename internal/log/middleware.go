// SPDX-License-Identifier: MIT

package log

import (
	"net/http"
	"time"
)

// statusRecorder wraps http.ResponseWriter to capture the response status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware returns an access-logging middleware that emits one structured
// entry per request, correlated with the request ID from context.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			logger := WithComponentFromContext(r.Context(), "http")
			logger.Info().
				Str(FieldEvent, "request.handled").
				Str("method", r.Method).
				Str(FieldPath, r.URL.Path).
				Str(FieldRemoteAddr, r.RemoteAddr).
				Int("status", rec.status).
				Dur("duration_ms", time.Since(start)).
				Msg("handled request")
		})
	}
}
