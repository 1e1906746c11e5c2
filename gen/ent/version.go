// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docshelf/docshelf/gen/ent/document"
	"github.com/docshelf/docshelf/gen/ent/version"
	"github.com/google/uuid"
)

// Version is the model entity for the Version schema.
type Version struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// VersionNumber holds the value of the "version_number" field.
	VersionNumber int `json:"version_number,omitempty"`
	// MajorVersion holds the value of the "major_version" field.
	MajorVersion int `json:"major_version,omitempty"`
	// MinorVersion holds the value of the "minor_version" field.
	MinorVersion int `json:"minor_version,omitempty"`
	// VersionLabel holds the value of the "version_label" field.
	VersionLabel string `json:"version_label,omitempty"`
	// MajorFlag holds the value of the "major_flag" field.
	MajorFlag bool `json:"major_flag,omitempty"`
	// ContentID holds the value of the "content_id" field.
	ContentID string `json:"content_id,omitempty"`
	// MimeType holds the value of the "mime_type" field.
	MimeType string `json:"mime_type,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize int64 `json:"file_size,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash string `json:"content_hash,omitempty"`
	// Comment holds the value of the "comment" field.
	Comment string `json:"comment,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy string `json:"created_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VersionQuery when eager-loading is set.
	Edges        VersionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VersionEdges holds the relations/edges for other nodes in the graph.
type VersionEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VersionEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Version) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case version.FieldMajorFlag:
			values[i] = new(sql.NullBool)
		case version.FieldVersionNumber, version.FieldMajorVersion, version.FieldMinorVersion, version.FieldFileSize:
			values[i] = new(sql.NullInt64)
		case version.FieldVersionLabel, version.FieldContentID, version.FieldMimeType, version.FieldContentHash, version.FieldComment, version.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case version.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case version.FieldID, version.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Version fields.
func (v *Version) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case version.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				v.ID = *value
			}
		case version.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				v.DocumentID = *value
			}
		case version.FieldVersionNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version_number", values[i])
			} else if value.Valid {
				v.VersionNumber = int(value.Int64)
			}
		case version.FieldMajorVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field major_version", values[i])
			} else if value.Valid {
				v.MajorVersion = int(value.Int64)
			}
		case version.FieldMinorVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field minor_version", values[i])
			} else if value.Valid {
				v.MinorVersion = int(value.Int64)
			}
		case version.FieldVersionLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field version_label", values[i])
			} else if value.Valid {
				v.VersionLabel = value.String
			}
		case version.FieldMajorFlag:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field major_flag", values[i])
			} else if value.Valid {
				v.MajorFlag = value.Bool
			}
		case version.FieldContentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_id", values[i])
			} else if value.Valid {
				v.ContentID = value.String
			}
		case version.FieldMimeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mime_type", values[i])
			} else if value.Valid {
				v.MimeType = value.String
			}
		case version.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				v.FileSize = value.Int64
			}
		case version.FieldContentHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value.Valid {
				v.ContentHash = value.String
			}
		case version.FieldComment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field comment", values[i])
			} else if value.Valid {
				v.Comment = value.String
			}
		case version.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				v.CreatedBy = value.String
			}
		case version.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				v.CreatedAt = value.Time
			}
		default:
			v.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Version.
// This includes values selected through modifiers, order, etc.
func (v *Version) Value(name string) (ent.Value, error) {
	return v.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the Version entity.
func (v *Version) QueryDocument() *DocumentQuery {
	return NewVersionClient(v.config).QueryDocument(v)
}

// Update returns a builder for updating this Version.
// Note that you need to call Version.Unwrap() before calling this method if this Version
// was returned from a transaction, and the transaction was committed or rolled back.
func (v *Version) Update() *VersionUpdateOne {
	return NewVersionClient(v.config).UpdateOne(v)
}

// Unwrap unwraps the Version entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (v *Version) Unwrap() *Version {
	_tx, ok := v.config.driver.(*txDriver)
	if !ok {
		panic("ent: Version is not a transactional entity")
	}
	v.config.driver = _tx.drv
	return v
}

// String implements the fmt.Stringer.
func (v *Version) String() string {
	var builder strings.Builder
	builder.WriteString("Version(")
	builder.WriteString(fmt.Sprintf("id=%v, ", v.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", v.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("version_number=")
	builder.WriteString(fmt.Sprintf("%v", v.VersionNumber))
	builder.WriteString(", ")
	builder.WriteString("major_version=")
	builder.WriteString(fmt.Sprintf("%v", v.MajorVersion))
	builder.WriteString(", ")
	builder.WriteString("minor_version=")
	builder.WriteString(fmt.Sprintf("%v", v.MinorVersion))
	builder.WriteString(", ")
	builder.WriteString("version_label=")
	builder.WriteString(v.VersionLabel)
	builder.WriteString(", ")
	builder.WriteString("major_flag=")
	builder.WriteString(fmt.Sprintf("%v", v.MajorFlag))
	builder.WriteString(", ")
	builder.WriteString("content_id=")
	builder.WriteString(v.ContentID)
	builder.WriteString(", ")
	builder.WriteString("mime_type=")
	builder.WriteString(v.MimeType)
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", v.FileSize))
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(v.ContentHash)
	builder.WriteString(", ")
	builder.WriteString("comment=")
	builder.WriteString(v.Comment)
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(v.CreatedBy)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(v.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Versions is a parsable slice of Version.
type Versions []*Version
