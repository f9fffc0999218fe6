// SPDX-License-Identifier: MIT

// Package api provides the HTTP server for the hyperlog backend.
package api

import (
	"net/http"
	"regexp"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Toofifty/hyperlog/internal/api/middleware"
	"github.com/Toofifty/hyperlog/internal/config"
	"github.com/Toofifty/hyperlog/internal/logfile"
)

// Server is the HTTP API server for hyperlog. It is stateless between
// requests: every response is reconstructed from the log files on each call.
type Server struct {
	cfg       config.AppConfig
	allow     *regexp.Regexp
	rules     []logfile.DialectRule
	fallback  logfile.Dialect
	startTime time.Time
}

// New constructs a Server from a validated configuration.
func New(cfg config.AppConfig) *Server {
	return &Server{
		cfg:       cfg,
		allow:     cfg.AllowPattern(),
		rules:     cfg.CompiledRules(),
		fallback:  cfg.FallbackDialect(),
		startTime: time.Now(),
	}
}

// Routes builds the router with the canonical middleware stack applied.
func (s *Server) Routes() http.Handler {
	tracingService := ""
	if s.cfg.Telemetry.Enabled {
		tracingService = s.cfg.LogService
	}

	r := middleware.NewRouter(middleware.StackConfig{
		AllowedOrigins: s.cfg.CORSOrigins,
		TracingService: tracingService,
		EnableLogging:  true,
		RateLimitRPM:   s.cfg.RateLimitRPM,
	})

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/config", s.handleViewerConfig)
		r.Get("/logs", s.handleListLogs)
		r.Get("/logs/{name}", s.handleReadLog)
	})

	r.Handle("/*", s.secureFileServer())

	return r
}
