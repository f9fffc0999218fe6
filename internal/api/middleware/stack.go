// SPDX-License-Identifier: MIT

package middleware

import (
	"github.com/go-chi/chi/v5"

	hlog "github.com/Toofifty/hyperlog/internal/log"
)

// StackConfig configures the canonical HTTP ingress middleware stack.
type StackConfig struct {
	// CORS
	AllowedOrigins []string

	// Security headers
	CSP string

	// Observability
	TracingService string // empty disables tracing
	EnableLogging  bool

	// Rate limiting, requests per minute per IP; zero disables
	RateLimitRPM int
}

// NewRouter constructs a chi router with the canonical middleware stack applied.
func NewRouter(cfg StackConfig) *chi.Mux {
	r := chi.NewRouter()
	ApplyStack(r, cfg)
	return r
}

// ApplyStack applies the canonical middleware stack to r.
func ApplyStack(r chi.Router, cfg StackConfig) {
	// Recoverer first: outermost safety net.
	r.Use(Recoverer)
	// RequestID early so every later stage can correlate.
	r.Use(RequestID)
	r.Use(CORS(cfg.AllowedOrigins))
	r.Use(SecurityHeaders(cfg.CSP))
	if cfg.TracingService != "" {
		r.Use(Tracing(cfg.TracingService))
	}
	if cfg.EnableLogging {
		r.Use(hlog.Middleware())
	}
	if cfg.RateLimitRPM > 0 {
		r.Use(APIRateLimit(cfg.RateLimitRPM))
	}
}
