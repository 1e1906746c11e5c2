package ingest

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/docshelf/docshelf/internal/identity"
	"github.com/docshelf/docshelf/internal/pipeline"
	"github.com/docshelf/docshelf/internal/preview"
)

// Service ties the ingestion pipeline to its callers: it builds a
// processing context per upload, runs the pipeline, and queues preview
// generation for the resulting document.
type Service struct {
	orchestrator *pipeline.Orchestrator
	scheduler    *preview.Scheduler
	logger       *slog.Logger
}

func NewService(orchestrator *pipeline.Orchestrator, scheduler *preview.Scheduler, logger *slog.Logger) *Service {
	return &Service{orchestrator: orchestrator, scheduler: scheduler, logger: logger}
}

// Upload ingests one byte stream. The returned outcome reports every
// stage problem even when the run succeeded overall.
func (s *Service) Upload(ctx context.Context, r io.Reader, filename string, parentFolderID *uuid.UUID) (pipeline.Outcome, error) {
	pc := pipeline.NewContext(r, filename, parentFolderID, identity.Principal(ctx))
	outcome := s.orchestrator.Run(ctx, pc)

	if outcome.Success && s.scheduler != nil {
		if _, err := s.scheduler.Enqueue(ctx, outcome.DocumentID, false); err != nil {
			// Preview is derived state; its queue never fails an upload.
			s.logger.Warn("ingest.preview.enqueue_failed",
				"document_id", outcome.DocumentID,
				"error", err)
		}
	}
	return outcome, nil
}

// UploadFile ingests a file from the local filesystem, used by the
// drop-folder watcher and the CLI.
func (s *Service) UploadFile(ctx context.Context, path string, parentFolderID *uuid.UUID) (pipeline.Outcome, error) {
	f, err := os.Open(path)
	if err != nil {
		return pipeline.Outcome{}, err
	}
	defer f.Close()
	return s.Upload(ctx, f, filepath.Base(path), parentFolderID)
}
