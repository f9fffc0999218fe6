// SPDX-License-Identifier: MIT

// Package middleware provides HTTP middleware for the API server.
package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/Toofifty/hyperlog/internal/log"
)

// HeaderRequestID is the canonical request correlation header.
const HeaderRequestID = "X-Request-ID"

// HeaderCorrelationID carries a caller-supplied ID linking requests across
// services. It is propagated but never generated here.
const HeaderCorrelationID = "X-Correlation-ID"

// RequestID adds a unique ID to every request and propagates any
// caller-supplied correlation ID.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.New().String()
		}
		w.Header().Set(HeaderRequestID, reqID)
		ctx := log.ContextWithRequestID(r.Context(), reqID)

		if corrID := r.Header.Get(HeaderCorrelationID); corrID != "" {
			w.Header().Set(HeaderCorrelationID, corrID)
			ctx = log.ContextWithCorrelationID(ctx, corrID)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
