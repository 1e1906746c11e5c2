package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/docshelf/docshelf/constants"
)

// Document represents a stored document record for data transfer between layers.
type Document struct {
	ID             uuid.UUID               `json:"id"`
	Name           string                  `json:"name"`
	ParentFolderID *uuid.UUID              `json:"parent_folder_id,omitempty"`
	MimeType       string                  `json:"mime_type"`
	FileSize       int64                   `json:"file_size"`
	ContentID      string                  `json:"content_id"`
	ContentHash    string                  `json:"content_hash,omitempty"`
	TextContent    string                  `json:"text_content,omitempty"`
	Metadata       map[string]string       `json:"metadata,omitempty"`
	Tags           []string                `json:"tags,omitempty"`
	Categories     []string                `json:"categories,omitempty"`
	Correspondent  *string                 `json:"correspondent,omitempty"`
	Status         constants.NodeStatus    `json:"status"`
	Versioned      bool                    `json:"versioned"`
	MajorVersion   int                     `json:"major_version"`
	MinorVersion   int                     `json:"minor_version"`
	VersionLabel   string                  `json:"version_label,omitempty"`
	CurrentVersion *uuid.UUID              `json:"current_version,omitempty"`
	PreviewStatus  constants.PreviewStatus `json:"preview_status,omitempty"`
	PreviewReason  string                  `json:"preview_failure_reason,omitempty"`
	PreviewUpdated *time.Time              `json:"preview_last_updated,omitempty"`
	CreatedBy      string                  `json:"created_by"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

// HasTag reports whether the document already carries the given tag.
func (d *Document) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasCategory reports whether the document already carries the given category
// (case-insensitive, matching the auto-apply behavior).
func (d *Document) HasCategory(name string) bool {
	for _, c := range d.Categories {
		if strings.EqualFold(c, name) {
			return true
		}
	}
	return false
}
