package entity

import (
	"time"

	"github.com/google/uuid"
)

// Version represents one row of a document's version history.
type Version struct {
	ID            uuid.UUID `json:"id"`
	DocumentID    uuid.UUID `json:"document_id"`
	VersionNumber int       `json:"version_number"`
	MajorVersion  int       `json:"major_version"`
	MinorVersion  int       `json:"minor_version"`
	VersionLabel  string    `json:"version_label"`
	MajorFlag     bool      `json:"major_flag"`
	ContentID     string    `json:"content_id"`
	MimeType      string    `json:"mime_type"`
	FileSize      int64     `json:"file_size"`
	ContentHash   string    `json:"content_hash,omitempty"`
	Comment       string    `json:"comment,omitempty"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
}
