package ingest

import (
	"context"
	"log/slog"

	"github.com/docshelf/docshelf/gen/ent"
	"github.com/docshelf/docshelf/internal/antivirus"
	"github.com/docshelf/docshelf/internal/bus"
	"github.com/docshelf/docshelf/internal/classifier"
	"github.com/docshelf/docshelf/internal/common"
	"github.com/docshelf/docshelf/internal/content"
	"github.com/docshelf/docshelf/internal/extract"
	"github.com/docshelf/docshelf/internal/match"
	"github.com/docshelf/docshelf/internal/pipeline"
	"github.com/docshelf/docshelf/internal/preview"
	"github.com/docshelf/docshelf/internal/repository"
	"github.com/docshelf/docshelf/internal/rules"
	"github.com/docshelf/docshelf/internal/search"
)

// Components is the fully wired ingestion side of the application.
// Optional collaborators (search index, message bus) are nil when
// disabled or unreachable; the pipeline degrades around them.
type Components struct {
	Service   *Service
	Scheduler *preview.Scheduler
	Store     content.Store
	Documents repository.DocumentRepository

	indexer   search.Indexer
	publisher bus.Publisher
	logger    *slog.Logger
}

// Build wires repositories, collaborators, the stage set and the
// preview scheduler from configuration. Optional backends that cannot
// be reached are logged and skipped rather than failing startup.
func Build(ctx context.Context, cfg *common.Config, entc *ent.Client, logger *slog.Logger) (*Components, error) {
	docs := repository.NewDocumentRepository(entc, logger)
	versions := repository.NewVersionRepository(entc, logger)
	correspondents := repository.NewCorrespondentRepository(entc, logger)
	categories := repository.NewCategoryRepository(entc, logger)
	ruleRepo := repository.NewRuleRepository(entc, logger)

	store, err := content.NewMinioStore(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, err
	}

	var indexer search.Indexer
	if cfg.Search.Enabled {
		indexer, err = search.NewScyllaIndexer(cfg.Search, logger)
		if err != nil {
			logger.Warn("search.index.disabled", "error", err)
			indexer = nil
		}
	}

	var publisher bus.Publisher
	if cfg.Bus.URL != "" {
		publisher, err = bus.NewRabbitPublisher(cfg.Bus, logger)
		if err != nil {
			logger.Warn("bus.publisher.disabled", "error", err)
			publisher = nil
		}
	}

	scanner := antivirus.NewClamAVScanner(cfg.Antivirus, logger)
	registry := extract.NewRegistry(cfg.Extract, logger)
	ml := classifier.NewHTTPClassifier(cfg.ML, logger)
	matcher := match.NewMatcher(logger)
	engine := rules.NewEngine(ruleRepo, logger)

	stages := []pipeline.Stage{
		pipeline.NewContentStorageStage(store, logger),
		pipeline.NewVirusScanStage(scanner, store, cfg.Antivirus, logger),
		pipeline.NewBarcodeScanStage(store, logger),
		pipeline.NewTextExtractStage(registry, store, logger),
		pipeline.NewPersistenceStage(docs, logger),
		pipeline.NewInitialVersionStage(docs, versions, logger),
		pipeline.NewMatchingStage(docs, correspondents, matcher, logger),
		pipeline.NewClassificationStage(docs, categories, ml, cfg.ML, logger),
		pipeline.NewRuleTriggerStage(docs, engine, cfg.Rules.Enabled, logger),
		pipeline.NewSearchIndexStage(docs, indexer, logger),
		pipeline.NewEventPublishStage(publisher, logger),
	}
	orchestrator := pipeline.NewOrchestrator(stages, logger)

	var scheduler *preview.Scheduler
	if cfg.Preview.QueueEnabled {
		generator := preview.NewGenerator(store, cfg.Preview.MaxPages, logger)
		scheduler = preview.NewScheduler(preview.NewJobStore(), docs, generator, indexer, cfg.Preview, logger)
	}

	return &Components{
		Service:   NewService(orchestrator, scheduler, logger),
		Scheduler: scheduler,
		Store:     store,
		Documents: docs,
		indexer:   indexer,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// Close releases the optional backends.
func (c *Components) Close() {
	if c.indexer != nil {
		c.indexer.Close()
	}
	if c.publisher != nil {
		if err := c.publisher.Close(); err != nil {
			c.logger.Warn("bus.publisher.close_failed", "error", err)
		}
	}
}
