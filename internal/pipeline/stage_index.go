package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docshelf/docshelf/internal/repository"
	"github.com/docshelf/docshelf/internal/search"
)

// searchIndexStage projects the persisted document into the search
// index. The index is rebuildable, so failures here are non-fatal.
type searchIndexStage struct {
	docs    repository.DocumentRepository
	indexer search.Indexer
	logger  *slog.Logger
}

func NewSearchIndexStage(docs repository.DocumentRepository, indexer search.Indexer, logger *slog.Logger) Stage {
	return &searchIndexStage{docs: docs, indexer: indexer, logger: logger}
}

func (s *searchIndexStage) Name() string  { return "search-indexing" }
func (s *searchIndexStage) Order() int    { return OrderSearchIndex }
func (s *searchIndexStage) Supports(pc *Context) bool {
	return s.indexer != nil && pc.DocumentID != uuid.Nil
}

func (s *searchIndexStage) Process(ctx context.Context, pc *Context) StageResult {
	doc, err := s.docs.GetByID(ctx, pc.DocumentID)
	if err != nil {
		return Failed("load document: " + err.Error())
	}
	if err := s.indexer.Index(ctx, doc); err != nil {
		return Failed("index document: " + err.Error())
	}

	s.logger.Debug("pipeline.index.saved", "document_id", pc.DocumentID)
	return Success()
}
