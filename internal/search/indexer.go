package search

import (
	"context"

	"github.com/google/uuid"

	"github.com/docshelf/docshelf/internal/entity"
)

// DocumentProjection is the denormalized view of a document kept in the
// search index.
type DocumentProjection struct {
	ID            uuid.UUID
	Name          string
	MimeType      string
	FileSize      int64
	Text          string
	Tags          []string
	Categories    []string
	Correspondent string
	PreviewStatus string
	CreatedBy     string
}

// Indexer keeps the search index in sync with the document store.
type Indexer interface {
	Index(ctx context.Context, doc *entity.Document) error
	Remove(ctx context.Context, documentID uuid.UUID) error
	Close()
}

// Projection flattens a document for indexing.
func Projection(doc *entity.Document) DocumentProjection {
	p := DocumentProjection{
		ID:            doc.ID,
		Name:          doc.Name,
		MimeType:      doc.MimeType,
		FileSize:      doc.FileSize,
		Text:          doc.TextContent,
		Tags:          doc.Tags,
		Categories:    doc.Categories,
		PreviewStatus: string(doc.PreviewStatus),
		CreatedBy:     doc.CreatedBy,
	}
	if doc.Correspondent != nil {
		p.Correspondent = *doc.Correspondent
	}
	return p
}
