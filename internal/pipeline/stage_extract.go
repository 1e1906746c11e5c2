package pipeline

import (
	"context"
	"log/slog"

	"github.com/docshelf/docshelf/internal/content"
	"github.com/docshelf/docshelf/internal/extract"
)

// textExtractStage pulls plain text and document metadata out of the
// stored content. Extraction problems are non-fatal; the document is
// still stored and searchable by name.
type textExtractStage struct {
	registry *extract.Registry
	store    content.Store
	logger   *slog.Logger
}

func NewTextExtractStage(registry *extract.Registry, store content.Store, logger *slog.Logger) Stage {
	return &textExtractStage{registry: registry, store: store, logger: logger}
}

func (s *textExtractStage) Name() string  { return "text-extraction" }
func (s *textExtractStage) Order() int    { return OrderTextExtract }
func (s *textExtractStage) Supports(pc *Context) bool {
	return pc.ContentID != "" && s.registry.Supports(pc.MimeType)
}

func (s *textExtractStage) Process(ctx context.Context, pc *Context) StageResult {
	rc, err := s.store.Get(ctx, pc.ContentID)
	if err != nil {
		return Failed("read content: " + err.Error())
	}
	defer rc.Close()

	result, err := s.registry.Extract(ctx, pc.MimeType, rc)
	if err != nil {
		return Failed("extract text: " + err.Error())
	}

	pc.Text = result.Text
	for k, v := range result.Metadata {
		pc.Metadata[k] = v
	}

	s.logger.Debug("pipeline.extract.done",
		"content_id", pc.ContentID,
		"text_length", len(result.Text),
		"metadata_keys", len(result.Metadata))
	return Success()
}
