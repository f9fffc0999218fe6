// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/Toofifty/hyperlog/internal/api"
	"github.com/Toofifty/hyperlog/internal/config"
	hlog "github.com/Toofifty/hyperlog/internal/log"
	"github.com/Toofifty/hyperlog/internal/telemetry"
)

var (
	version   = "v1.0.0"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	configPath := flag.String("config", "", "path to config file (YAML)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s (commit: %s, built: %s)\n", version, commit, buildDate)
		os.Exit(0)
	}

	// Configure logger with safe defaults until config is loaded
	hlog.Configure(hlog.Config{
		Level:   "info",
		Service: "hyperlog",
		Version: version,
	})

	logger := hlog.WithComponent("daemon")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewLoader(*configPath, version).Load()
	if err != nil {
		logger.Fatal().
			Err(err).
			Str("event", "config.load_failed").
			Str("config_path", *configPath).
			Msg("failed to load configuration")
	}

	// Rebuild the logger now that the configured level and service name
	// are known.
	hlog.Reconfigure(hlog.Config{
		Level:   cfg.LogLevel,
		Service: cfg.LogService,
		Version: version,
	})
	logger = hlog.WithComponent("daemon")

	if *configPath != "" {
		logger.Info().
			Str("event", "config.loaded").
			Str("source", "file").
			Str("path", *configPath).
			Msg("loaded configuration from file")
	} else {
		logger.Info().
			Str("event", "config.loaded").
			Str("source", "env+defaults").
			Msg("loaded configuration from environment and defaults")
	}

	// Fail fast when the log directory is not usable.
	if info, err := os.Stat(cfg.LogDir); err != nil || !info.IsDir() {
		logger.Fatal().
			Err(err).
			Str("event", "startup.check_failed").
			Str("log_dir", cfg.LogDir).
			Msg("log directory is missing or not a directory")
	}

	serverCfg := config.ParseServerConfig()

	tp, err := telemetry.NewProvider(ctx, telemetry.Config{
		Enabled:        cfg.Telemetry.Enabled,
		ServiceName:    cfg.LogService,
		ServiceVersion: version,
		Environment:    cfg.Telemetry.Environment,
		ExporterType:   cfg.Telemetry.Exporter,
		Endpoint:       cfg.Telemetry.Endpoint,
		SamplingRate:   cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		logger.Fatal().
			Err(err).
			Str("event", "telemetry.init_failed").
			Msg("failed to initialise telemetry")
	}

	logger.Info().
		Str("event", "startup").
		Str("version", version).
		Str("commit", commit).
		Str("build_date", buildDate).
		Str("addr", cfg.ListenAddr).
		Msg("starting hyperlog")

	logger.Info().Msgf("→ Log dir: %s", cfg.LogDir)
	logger.Info().Msgf("→ File pattern: %s", cfg.FilePattern)
	logger.Info().Msgf("→ Default window: %d lines", cfg.DefaultWindow)
	logger.Info().Msgf("→ Poll interval: %s", cfg.PollInterval)
	if cfg.WebRoot != "" {
		logger.Info().Msgf("→ Web root: %s", cfg.WebRoot)
	} else {
		logger.Info().Msg("→ Web root: disabled (API only)")
	}
	if cfg.Telemetry.Enabled {
		logger.Info().Msgf("→ Tracing: %s (%s)", cfg.Telemetry.Exporter, cfg.Telemetry.Endpoint)
	}

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      api.New(cfg).Routes(),
		ReadTimeout:  serverCfg.ReadTimeout,
		WriteTimeout: serverCfg.WriteTimeout,
		IdleTimeout:  serverCfg.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Str("event", "shutdown.started").Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), serverCfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn().Err(err).Msg("graceful shutdown failed, closing")
			_ = srv.Close()
		}
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Warn().Err(err).Msg("telemetry shutdown failed")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Fatal().
			Err(err).
			Str("event", "server.failed").
			Msg("server terminated unexpectedly")
	}
	logger.Info().Str("event", "shutdown.complete").Msg("goodbye")
}
