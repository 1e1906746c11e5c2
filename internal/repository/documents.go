package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/docshelf/docshelf/constants"
	"github.com/docshelf/docshelf/gen/ent"
	entdoc "github.com/docshelf/docshelf/gen/ent/document"
	"github.com/docshelf/docshelf/internal/entity"
)

type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) (*entity.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	// Update persists the mutable enrichment fields (tags, categories,
	// correspondent, text, metadata) of an already-created document.
	Update(ctx context.Context, doc *entity.Document) error
	// SetCurrentVersion points the document at its current version row.
	SetCurrentVersion(ctx context.Context, docID, versionID uuid.UUID, label string) error
	// UpdatePreviewStatus overwrites preview status and failure reason.
	UpdatePreviewStatus(ctx context.Context, docID uuid.UUID, status constants.PreviewStatus, reason string) error
	// FindByContentHash returns documents sharing a content hash
	// (duplicate detection).
	FindByContentHash(ctx context.Context, hash string) ([]*entity.Document, error)
}

type documentRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepo{ent: entc, logger: logger}
}

func (r *documentRepo) Create(ctx context.Context, doc *entity.Document) (*entity.Document, error) {
	create := r.ent.Document.Create().
		SetName(doc.Name).
		SetNillableParentFolderID(doc.ParentFolderID).
		SetMimeType(doc.MimeType).
		SetFileSize(doc.FileSize).
		SetContentID(doc.ContentID).
		SetContentHash(doc.ContentHash).
		SetTextContent(doc.TextContent).
		SetStatus(string(constants.NodeActive)).
		SetVersioned(doc.Versioned).
		SetMajorVersion(doc.MajorVersion).
		SetMinorVersion(doc.MinorVersion).
		SetCreatedBy(doc.CreatedBy)
	if doc.Metadata != nil {
		create.SetMetadata(doc.Metadata)
	}
	if len(doc.Tags) > 0 {
		create.SetTags(doc.Tags)
	}
	if len(doc.Categories) > 0 {
		create.SetCategories(doc.Categories)
	}
	if doc.PreviewStatus != "" {
		create.SetPreviewStatus(string(doc.PreviewStatus))
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "name", doc.Name, "error", err)
		return nil, err
	}
	r.logger.Info("document created", "document_id", row.ID, "name", row.Name)
	return toDocument(row), nil
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	row, err := r.ent.Document.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDocument(row), nil
}

func (r *documentRepo) Update(ctx context.Context, doc *entity.Document) error {
	update := r.ent.Document.UpdateOneID(doc.ID).
		SetTextContent(doc.TextContent).
		SetNillableCorrespondent(doc.Correspondent)
	if doc.Metadata != nil {
		update.SetMetadata(doc.Metadata)
	}
	if doc.Tags != nil {
		update.SetTags(doc.Tags)
	}
	if doc.Categories != nil {
		update.SetCategories(doc.Categories)
	}
	if _, err := update.Save(ctx); err != nil {
		r.logger.Error("failed to update document", "document_id", doc.ID, "error", err)
		return err
	}
	return nil
}

func (r *documentRepo) SetCurrentVersion(ctx context.Context, docID, versionID uuid.UUID, label string) error {
	_, err := r.ent.Document.UpdateOneID(docID).
		SetCurrentVersionID(versionID).
		SetVersionLabel(label).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to set current version", "document_id", docID, "version_id", versionID, "error", err)
	}
	return err
}

func (r *documentRepo) UpdatePreviewStatus(ctx context.Context, docID uuid.UUID, status constants.PreviewStatus, reason string) error {
	_, err := r.ent.Document.UpdateOneID(docID).
		SetPreviewStatus(string(status)).
		SetPreviewFailureReason(reason).
		SetPreviewLastUpdated(time.Now()).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to update preview status", "document_id", docID, "status", status, "error", err)
	}
	return err
}

func (r *documentRepo) FindByContentHash(ctx context.Context, hash string) ([]*entity.Document, error) {
	rows, err := r.ent.Document.Query().
		Where(entdoc.ContentHash(hash)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Document, len(rows))
	for i, row := range rows {
		out[i] = toDocument(row)
	}
	return out, nil
}

func toDocument(row *ent.Document) *entity.Document {
	return &entity.Document{
		ID:             row.ID,
		Name:           row.Name,
		ParentFolderID: row.ParentFolderID,
		MimeType:       row.MimeType,
		FileSize:       row.FileSize,
		ContentID:      row.ContentID,
		ContentHash:    row.ContentHash,
		TextContent:    row.TextContent,
		Metadata:       row.Metadata,
		Tags:           row.Tags,
		Categories:     row.Categories,
		Correspondent:  row.Correspondent,
		Status:         constants.NodeStatus(row.Status),
		Versioned:      row.Versioned,
		MajorVersion:   row.MajorVersion,
		MinorVersion:   row.MinorVersion,
		VersionLabel:   row.VersionLabel,
		CurrentVersion: row.CurrentVersionID,
		PreviewStatus:  constants.PreviewStatus(row.PreviewStatus),
		PreviewReason:  row.PreviewFailureReason,
		PreviewUpdated: row.PreviewLastUpdated,
		CreatedBy:      row.CreatedBy,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
