// Command eventmanager reads an attendee roster, writes a personalized
// thank-you letter and a phone log entry per attendee, then reports the peak
// registration hours and weekdays.
//
// Configuration comes from the environment, optionally seeded from a .env file
// in the working directory. See internal/config for the variables.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/couchcryptid/event-manager/internal/adapter/civic"
	"github.com/couchcryptid/event-manager/internal/adapter/csvfile"
	"github.com/couchcryptid/event-manager/internal/adapter/filesink"
	httpadapter "github.com/couchcryptid/event-manager/internal/adapter/http"
	"github.com/couchcryptid/event-manager/internal/config"
	"github.com/couchcryptid/event-manager/internal/domain"
	"github.com/couchcryptid/event-manager/internal/letter"
	"github.com/couchcryptid/event-manager/internal/observability"
	"github.com/couchcryptid/event-manager/internal/pipeline"
)

func main() {
	if err := run(); err != nil {
		slog.Error("event manager failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()
	logger.Info("event manager initialized", "input", cfg.InputPath, "output_dir", cfg.OutputDir)

	renderer, err := letter.Load(cfg.TemplatePath)
	if err != nil {
		return err
	}

	source, err := csvfile.Open(cfg.InputPath)
	if err != nil {
		return err
	}
	defer source.Close()

	// Representative lookup is feature-flagged via CIVIC_ENABLED / CIVIC_API_KEY.
	var lookup domain.RepresentativeLookup
	if cfg.CivicEnabled {
		client := civic.NewClient(cfg, metrics, logger)
		cached, err := civic.NewCachedLookup(client, cfg.CivicCacheSize, metrics)
		if err != nil {
			return err
		}
		lookup = cached
		metrics.LookupEnabled.Set(1)
		logger.Info("representative lookup enabled",
			"cache_size", cfg.CivicCacheSize,
			"timeout", cfg.CivicTimeout,
			"rate_limit", cfg.CivicRateLimit,
		)
	} else {
		logger.Info("representative lookup disabled, letters will carry the fallback message")
	}

	sink := filesink.New(cfg.OutputDir, cfg.PhoneLogFile, cfg.RegtimeReportFile)
	p := pipeline.New(source, lookup, renderer, sink, logger, metrics, cfg.ReportTopN)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var srv *httpadapter.Server
	if cfg.HTTPAddr != "" {
		srv = httpadapter.NewServer(cfg.HTTPAddr, p, logger)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("http server error", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("http server shutdown error", "error", err)
			}
		}()
	}

	if _, err := p.Run(ctx); err != nil {
		return err
	}
	if srv != nil {
		srv.Linger(ctx, cfg.HTTPLinger)
	}

	logger.Info("shutdown complete")
	return nil
}
