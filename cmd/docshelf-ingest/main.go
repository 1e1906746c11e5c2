package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lpernett/godotenv"

	"github.com/docshelf/docshelf/constants"
	"github.com/docshelf/docshelf/gen/ent"
	"github.com/docshelf/docshelf/internal/common"
	"github.com/docshelf/docshelf/internal/identity"
	"github.com/docshelf/docshelf/internal/ingest"
	"github.com/docshelf/docshelf/internal/repository"
)

func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir   = flag.String("dir", "", "directory to ingest documents from (required)")
		user  = flag.String("user", "cli", "acting user recorded on created documents")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	logger, cleanup := common.SetupLogger(cfg.Log.File, common.ParseLevel(cfg.Log.Level))
	defer cleanup()
	slog.SetDefault(logger)

	ctx := identity.WithPrincipal(context.Background(), *user)

	var entc *ent.Client
	var err error
	if *inmem {
		entc, err = repository.OpenSQLite(ctx, ":memory:", logger)
	} else {
		if cfg.Database.DSN == "" {
			printError("Error: DB_URL is required (or pass --inmem)\n")
			os.Exit(2)
		}
		var pool interface{ Close() }
		entc, pool, err = openPostgres(ctx, cfg, logger)
		if pool != nil {
			defer pool.Close()
		}
	}
	if err != nil {
		printError("Error: opening database: %v\n", err)
		os.Exit(1)
	}
	defer entc.Close()

	components, err := ingest.Build(ctx, cfg, entc, logger)
	if err != nil {
		printError("Error: wiring components: %v\n", err)
		os.Exit(1)
	}
	defer components.Close()

	var total, succeeded int
	walkErr := filepath.WalkDir(*dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			return nil
		}
		total++
		outcome, upErr := components.Service.UploadFile(ctx, path, nil)
		if upErr != nil {
			logger.Error("ingest.file.failed", "path", path, "error", upErr)
			return nil
		}
		if outcome.Success {
			succeeded++
		}
		for stage, msg := range outcome.Errors {
			logger.Warn("ingest.stage.problem", "path", path, "stage", stage, "error", msg)
		}
		return nil
	})
	if walkErr != nil {
		printError("Error: walking %s: %v\n", *dir, walkErr)
		os.Exit(1)
	}

	// Process the initially due preview jobs before exiting. Retries
	// scheduled for the future are abandoned with the process.
	if components.Scheduler != nil {
		components.Scheduler.Tick(ctx)
	}

	fmt.Printf("ingested %d/%d documents from %s\n", succeeded, total, *dir)
}

func openPostgres(ctx context.Context, cfg *common.Config, logger *slog.Logger) (*ent.Client, interface{ Close() }, error) {
	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		return nil, nil, err
	}
	return entc, pool, nil
}
