package pipeline

import (
	"context"
	"log/slog"

	"github.com/docshelf/docshelf/constants"
	"github.com/docshelf/docshelf/internal/entity"
	"github.com/docshelf/docshelf/internal/repository"
)

// persistenceStage creates the canonical document record from the
// accumulated context state and assigns the document identifier.
type persistenceStage struct {
	docs   repository.DocumentRepository
	logger *slog.Logger
}

func NewPersistenceStage(docs repository.DocumentRepository, logger *slog.Logger) Stage {
	return &persistenceStage{docs: docs, logger: logger}
}

func (s *persistenceStage) Name() string  { return "persistence" }
func (s *persistenceStage) Order() int    { return OrderPersistence }
func (s *persistenceStage) Supports(pc *Context) bool { return pc.ContentID != "" }

func (s *persistenceStage) Process(ctx context.Context, pc *Context) StageResult {
	// Duplicate content is allowed but recorded, so operators can find
	// re-uploads of the same bytes. A failed lookup never blocks
	// persistence.
	var duplicateOf string
	if pc.ContentHash != "" {
		existing, err := s.docs.FindByContentHash(ctx, pc.ContentHash)
		if err != nil {
			s.logger.Warn("pipeline.dedupe.lookup_failed", "error", err)
		} else if len(existing) > 0 {
			duplicateOf = existing[0].ID.String()
			s.logger.Info("pipeline.dedupe.duplicate_content",
				"content_hash", pc.ContentHash,
				"duplicate_of", duplicateOf)
		}
	}

	doc := &entity.Document{
		Name:           pc.Filename,
		ParentFolderID: pc.ParentFolderID,
		MimeType:       pc.MimeType,
		FileSize:       pc.FileSize,
		ContentID:      pc.ContentID,
		ContentHash:    pc.ContentHash,
		TextContent:    pc.Text,
		Metadata:       pc.Metadata,
		Tags:           pc.SuggestedTags,
		Status:         constants.NodeActive,
		Versioned:      true,
		MajorVersion:   1,
		MinorVersion:   0,
		PreviewStatus:  constants.PreviewQueued,
		CreatedBy:      pc.User,
	}
	if duplicateOf != "" {
		if doc.Metadata == nil {
			doc.Metadata = map[string]string{}
		}
		doc.Metadata["duplicate_of"] = duplicateOf
	}

	created, err := s.docs.Create(ctx, doc)
	if err != nil {
		return Fatal("create document record: " + err.Error())
	}
	pc.DocumentID = created.ID

	s.logger.Info("pipeline.document.created",
		"document_id", created.ID,
		"name", created.Name,
		"mime_type", created.MimeType,
		"created_by", created.CreatedBy)
	return Success()
}
