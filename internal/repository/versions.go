package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docshelf/docshelf/gen/ent"
	entversion "github.com/docshelf/docshelf/gen/ent/version"
	"github.com/docshelf/docshelf/internal/entity"
)

type VersionRepository interface {
	// MaxVersionNumber returns the highest version number for a document,
	// or 0 when no version rows exist.
	MaxVersionNumber(ctx context.Context, documentID uuid.UUID) (int, error)
	GetByNumber(ctx context.Context, documentID uuid.UUID, number int) (*entity.Version, error)
	Create(ctx context.Context, v *entity.Version) (*entity.Version, error)
}

type versionRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewVersionRepository(entc *ent.Client, logger *slog.Logger) VersionRepository {
	return &versionRepo{ent: entc, logger: logger}
}

func (r *versionRepo) MaxVersionNumber(ctx context.Context, documentID uuid.UUID) (int, error) {
	rows, err := r.ent.Version.Query().
		Where(entversion.DocumentID(documentID)).
		Order(ent.Desc(entversion.FieldVersionNumber)).
		Limit(1).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to query max version number", "document_id", documentID, "error", err)
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].VersionNumber, nil
}

func (r *versionRepo) GetByNumber(ctx context.Context, documentID uuid.UUID, number int) (*entity.Version, error) {
	row, err := r.ent.Version.Query().
		Where(
			entversion.DocumentID(documentID),
			entversion.VersionNumber(number),
		).Only(ctx)
	if err != nil {
		return nil, err
	}
	return toVersion(row), nil
}

func (r *versionRepo) Create(ctx context.Context, v *entity.Version) (*entity.Version, error) {
	row, err := r.ent.Version.Create().
		SetDocumentID(v.DocumentID).
		SetVersionNumber(v.VersionNumber).
		SetMajorVersion(v.MajorVersion).
		SetMinorVersion(v.MinorVersion).
		SetVersionLabel(v.VersionLabel).
		SetMajorFlag(v.MajorFlag).
		SetContentID(v.ContentID).
		SetMimeType(v.MimeType).
		SetFileSize(v.FileSize).
		SetContentHash(v.ContentHash).
		SetComment(v.Comment).
		SetCreatedBy(v.CreatedBy).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create version", "document_id", v.DocumentID, "number", v.VersionNumber, "error", err)
		return nil, err
	}
	r.logger.Info("version created", "document_id", v.DocumentID, "version_label", row.VersionLabel)
	return toVersion(row), nil
}

func toVersion(row *ent.Version) *entity.Version {
	return &entity.Version{
		ID:            row.ID,
		DocumentID:    row.DocumentID,
		VersionNumber: row.VersionNumber,
		MajorVersion:  row.MajorVersion,
		MinorVersion:  row.MinorVersion,
		VersionLabel:  row.VersionLabel,
		MajorFlag:     row.MajorFlag,
		ContentID:     row.ContentID,
		MimeType:      row.MimeType,
		FileSize:      row.FileSize,
		ContentHash:   row.ContentHash,
		Comment:       row.Comment,
		CreatedBy:     row.CreatedBy,
		CreatedAt:     row.CreatedAt,
	}
}
