// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docshelf/docshelf/gen/ent/document"
	"github.com/google/uuid"
)

// Document is the model entity for the Document schema.
type Document struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// ParentFolderID holds the value of the "parent_folder_id" field.
	ParentFolderID *uuid.UUID `json:"parent_folder_id,omitempty"`
	// MimeType holds the value of the "mime_type" field.
	MimeType string `json:"mime_type,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize int64 `json:"file_size,omitempty"`
	// ContentID holds the value of the "content_id" field.
	ContentID string `json:"content_id,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash string `json:"content_hash,omitempty"`
	// TextContent holds the value of the "text_content" field.
	TextContent string `json:"text_content,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]string `json:"metadata,omitempty"`
	// Tags holds the value of the "tags" field.
	Tags []string `json:"tags,omitempty"`
	// Categories holds the value of the "categories" field.
	Categories []string `json:"categories,omitempty"`
	// Correspondent holds the value of the "correspondent" field.
	Correspondent *string `json:"correspondent,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Versioned holds the value of the "versioned" field.
	Versioned bool `json:"versioned,omitempty"`
	// MajorVersion holds the value of the "major_version" field.
	MajorVersion int `json:"major_version,omitempty"`
	// MinorVersion holds the value of the "minor_version" field.
	MinorVersion int `json:"minor_version,omitempty"`
	// VersionLabel holds the value of the "version_label" field.
	VersionLabel string `json:"version_label,omitempty"`
	// CurrentVersionID holds the value of the "current_version_id" field.
	CurrentVersionID *uuid.UUID `json:"current_version_id,omitempty"`
	// PreviewStatus holds the value of the "preview_status" field.
	PreviewStatus string `json:"preview_status,omitempty"`
	// PreviewFailureReason holds the value of the "preview_failure_reason" field.
	PreviewFailureReason string `json:"preview_failure_reason,omitempty"`
	// PreviewLastUpdated holds the value of the "preview_last_updated" field.
	PreviewLastUpdated *time.Time `json:"preview_last_updated,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocumentQuery when eager-loading is set.
	Edges        DocumentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocumentEdges holds the relations/edges for other nodes in the graph.
type DocumentEdges struct {
	// Versions holds the value of the versions edge.
	Versions []*Version `json:"versions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// VersionsOrErr returns the Versions value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentEdges) VersionsOrErr() ([]*Version, error) {
	if e.loadedTypes[0] {
		return e.Versions, nil
	}
	return nil, &NotLoadedError{edge: "versions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Document) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case document.FieldParentFolderID, document.FieldCurrentVersionID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case document.FieldMetadata, document.FieldTags, document.FieldCategories:
			values[i] = new([]byte)
		case document.FieldVersioned:
			values[i] = new(sql.NullBool)
		case document.FieldFileSize, document.FieldMajorVersion, document.FieldMinorVersion:
			values[i] = new(sql.NullInt64)
		case document.FieldName, document.FieldMimeType, document.FieldContentID, document.FieldContentHash, document.FieldTextContent, document.FieldCorrespondent, document.FieldStatus, document.FieldVersionLabel, document.FieldPreviewStatus, document.FieldPreviewFailureReason, document.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case document.FieldPreviewLastUpdated, document.FieldCreatedAt, document.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case document.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Document fields.
func (d *Document) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case document.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				d.ID = *value
			}
		case document.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				d.Name = value.String
			}
		case document.FieldParentFolderID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field parent_folder_id", values[i])
			} else if value.Valid {
				d.ParentFolderID = new(uuid.UUID)
				*d.ParentFolderID = *value.S.(*uuid.UUID)
			}
		case document.FieldMimeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mime_type", values[i])
			} else if value.Valid {
				d.MimeType = value.String
			}
		case document.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				d.FileSize = value.Int64
			}
		case document.FieldContentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_id", values[i])
			} else if value.Valid {
				d.ContentID = value.String
			}
		case document.FieldContentHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value.Valid {
				d.ContentHash = value.String
			}
		case document.FieldTextContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text_content", values[i])
			} else if value.Valid {
				d.TextContent = value.String
			}
		case document.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &d.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case document.FieldTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &d.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		case document.FieldCategories:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field categories", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &d.Categories); err != nil {
					return fmt.Errorf("unmarshal field categories: %w", err)
				}
			}
		case document.FieldCorrespondent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correspondent", values[i])
			} else if value.Valid {
				d.Correspondent = new(string)
				*d.Correspondent = value.String
			}
		case document.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				d.Status = value.String
			}
		case document.FieldVersioned:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field versioned", values[i])
			} else if value.Valid {
				d.Versioned = value.Bool
			}
		case document.FieldMajorVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field major_version", values[i])
			} else if value.Valid {
				d.MajorVersion = int(value.Int64)
			}
		case document.FieldMinorVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field minor_version", values[i])
			} else if value.Valid {
				d.MinorVersion = int(value.Int64)
			}
		case document.FieldVersionLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field version_label", values[i])
			} else if value.Valid {
				d.VersionLabel = value.String
			}
		case document.FieldCurrentVersionID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field current_version_id", values[i])
			} else if value.Valid {
				d.CurrentVersionID = new(uuid.UUID)
				*d.CurrentVersionID = *value.S.(*uuid.UUID)
			}
		case document.FieldPreviewStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field preview_status", values[i])
			} else if value.Valid {
				d.PreviewStatus = value.String
			}
		case document.FieldPreviewFailureReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field preview_failure_reason", values[i])
			} else if value.Valid {
				d.PreviewFailureReason = value.String
			}
		case document.FieldPreviewLastUpdated:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field preview_last_updated", values[i])
			} else if value.Valid {
				d.PreviewLastUpdated = new(time.Time)
				*d.PreviewLastUpdated = value.Time
			}
		case document.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				d.CreatedBy = value.String
			}
		case document.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				d.CreatedAt = value.Time
			}
		case document.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				d.UpdatedAt = value.Time
			}
		default:
			d.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Document.
// This includes values selected through modifiers, order, etc.
func (d *Document) Value(name string) (ent.Value, error) {
	return d.selectValues.Get(name)
}

// QueryVersions queries the "versions" edge of the Document entity.
func (d *Document) QueryVersions() *VersionQuery {
	return NewDocumentClient(d.config).QueryVersions(d)
}

// Update returns a builder for updating this Document.
// Note that you need to call Document.Unwrap() before calling this method if this Document
// was returned from a transaction, and the transaction was committed or rolled back.
func (d *Document) Update() *DocumentUpdateOne {
	return NewDocumentClient(d.config).UpdateOne(d)
}

// Unwrap unwraps the Document entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (d *Document) Unwrap() *Document {
	_tx, ok := d.config.driver.(*txDriver)
	if !ok {
		panic("ent: Document is not a transactional entity")
	}
	d.config.driver = _tx.drv
	return d
}

// String implements the fmt.Stringer.
func (d *Document) String() string {
	var builder strings.Builder
	builder.WriteString("Document(")
	builder.WriteString(fmt.Sprintf("id=%v, ", d.ID))
	builder.WriteString("name=")
	builder.WriteString(d.Name)
	builder.WriteString(", ")
	if v := d.ParentFolderID; v != nil {
		builder.WriteString("parent_folder_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("mime_type=")
	builder.WriteString(d.MimeType)
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", d.FileSize))
	builder.WriteString(", ")
	builder.WriteString("content_id=")
	builder.WriteString(d.ContentID)
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(d.ContentHash)
	builder.WriteString(", ")
	builder.WriteString("text_content=")
	builder.WriteString(d.TextContent)
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", d.Metadata))
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", d.Tags))
	builder.WriteString(", ")
	builder.WriteString("categories=")
	builder.WriteString(fmt.Sprintf("%v", d.Categories))
	builder.WriteString(", ")
	if v := d.Correspondent; v != nil {
		builder.WriteString("correspondent=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(d.Status)
	builder.WriteString(", ")
	builder.WriteString("versioned=")
	builder.WriteString(fmt.Sprintf("%v", d.Versioned))
	builder.WriteString(", ")
	builder.WriteString("major_version=")
	builder.WriteString(fmt.Sprintf("%v", d.MajorVersion))
	builder.WriteString(", ")
	builder.WriteString("minor_version=")
	builder.WriteString(fmt.Sprintf("%v", d.MinorVersion))
	builder.WriteString(", ")
	builder.WriteString("version_label=")
	builder.WriteString(d.VersionLabel)
	builder.WriteString(", ")
	if v := d.CurrentVersionID; v != nil {
		builder.WriteString("current_version_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("preview_status=")
	builder.WriteString(d.PreviewStatus)
	builder.WriteString(", ")
	builder.WriteString("preview_failure_reason=")
	builder.WriteString(d.PreviewFailureReason)
	builder.WriteString(", ")
	if v := d.PreviewLastUpdated; v != nil {
		builder.WriteString("preview_last_updated=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(d.CreatedBy)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(d.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(d.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Documents is a parsable slice of Document.
type Documents []*Document
