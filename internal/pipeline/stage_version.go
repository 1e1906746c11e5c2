package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docshelf/docshelf/internal/entity"
	"github.com/docshelf/docshelf/internal/repository"
)

// initialVersionStage creates version 1 for a freshly persisted
// document, referencing the already-stored content. It is idempotent:
// a document that already has a version row is left alone.
type initialVersionStage struct {
	docs     repository.DocumentRepository
	versions repository.VersionRepository
	logger   *slog.Logger
}

func NewInitialVersionStage(docs repository.DocumentRepository, versions repository.VersionRepository, logger *slog.Logger) Stage {
	return &initialVersionStage{docs: docs, versions: versions, logger: logger}
}

func (s *initialVersionStage) Name() string  { return "initial-version" }
func (s *initialVersionStage) Order() int    { return OrderInitialVersion }
func (s *initialVersionStage) Supports(pc *Context) bool { return pc.DocumentID != uuid.Nil }

func (s *initialVersionStage) Process(ctx context.Context, pc *Context) StageResult {
	max, err := s.versions.MaxVersionNumber(ctx, pc.DocumentID)
	if err != nil {
		return Fatal("look up existing versions: " + err.Error())
	}
	if max > 0 {
		return Skipped("version already exists")
	}

	label := fmt.Sprintf("%d.%d", 1, 0)
	created, err := s.versions.Create(ctx, &entity.Version{
		DocumentID:    pc.DocumentID,
		VersionNumber: 1,
		MajorVersion:  1,
		MinorVersion:  0,
		VersionLabel:  label,
		MajorFlag:     true,
		ContentID:     pc.ContentID,
		MimeType:      pc.MimeType,
		FileSize:      pc.FileSize,
		ContentHash:   pc.ContentHash,
		Comment:       "Initial version",
		CreatedBy:     pc.User,
	})
	if err != nil {
		return Fatal("create initial version: " + err.Error())
	}

	if err := s.docs.SetCurrentVersion(ctx, pc.DocumentID, created.ID, label); err != nil {
		return Fatal("set current version: " + err.Error())
	}
	pc.VersionLabel = label

	s.logger.Debug("pipeline.version.created",
		"document_id", pc.DocumentID,
		"version_id", created.ID,
		"label", label)
	return Success()
}
