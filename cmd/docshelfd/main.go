package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lpernett/godotenv"

	"github.com/docshelf/docshelf/internal/common"
	"github.com/docshelf/docshelf/internal/ingest"
	"github.com/docshelf/docshelf/internal/repository"
)

func main() {
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded environment from .env")
	}

	cfg := common.LoadConfig()
	logger, cleanup := common.SetupLogger(cfg.Log.File, common.ParseLevel(cfg.Log.Level))
	defer cleanup()
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, time.Second, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	components, err := ingest.Build(ctx, cfg, entc, logger)
	if err != nil {
		logger.Error("wiring ingestion components", "error", err)
		os.Exit(1)
	}
	defer components.Close()

	if components.Scheduler != nil {
		components.Scheduler.Start(ctx)
		defer components.Scheduler.Stop()
	}

	if len(cfg.Watcher.Roots) > 0 {
		paths, watchErrs, err := ingest.StartWatcher(ctx, cfg.Watcher, logger)
		if err != nil {
			logger.Error("starting drop-folder watcher", "error", err)
			os.Exit(1)
		}
		go func() {
			for {
				select {
				case path, ok := <-paths:
					if !ok {
						return
					}
					outcome, err := components.Service.UploadFile(ctx, path, nil)
					if err != nil {
						logger.Error("ingest.file.failed", "path", path, "error", err)
						continue
					}
					logger.Info("ingest.file.done",
						"path", path,
						"success", outcome.Success,
						"document_id", outcome.DocumentID)
				case err, ok := <-watchErrs:
					if ok && err != nil {
						logger.Warn("watcher.error", "error", err)
					}
				}
			}
		}()
		logger.Info("drop-folder watcher started", "roots", cfg.Watcher.Roots)
	}

	logger.Info("docshelfd started")
	<-ctx.Done()
	logger.Info("docshelfd shutting down")
}
