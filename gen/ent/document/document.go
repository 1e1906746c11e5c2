// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the document type in the database.
	Label = "document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldParentFolderID holds the string denoting the parent_folder_id field in the database.
	FieldParentFolderID = "parent_folder_id"
	// FieldMimeType holds the string denoting the mime_type field in the database.
	FieldMimeType = "mime_type"
	// FieldFileSize holds the string denoting the file_size field in the database.
	FieldFileSize = "file_size"
	// FieldContentID holds the string denoting the content_id field in the database.
	FieldContentID = "content_id"
	// FieldContentHash holds the string denoting the content_hash field in the database.
	FieldContentHash = "content_hash"
	// FieldTextContent holds the string denoting the text_content field in the database.
	FieldTextContent = "text_content"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldCategories holds the string denoting the categories field in the database.
	FieldCategories = "categories"
	// FieldCorrespondent holds the string denoting the correspondent field in the database.
	FieldCorrespondent = "correspondent"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldVersioned holds the string denoting the versioned field in the database.
	FieldVersioned = "versioned"
	// FieldMajorVersion holds the string denoting the major_version field in the database.
	FieldMajorVersion = "major_version"
	// FieldMinorVersion holds the string denoting the minor_version field in the database.
	FieldMinorVersion = "minor_version"
	// FieldVersionLabel holds the string denoting the version_label field in the database.
	FieldVersionLabel = "version_label"
	// FieldCurrentVersionID holds the string denoting the current_version_id field in the database.
	FieldCurrentVersionID = "current_version_id"
	// FieldPreviewStatus holds the string denoting the preview_status field in the database.
	FieldPreviewStatus = "preview_status"
	// FieldPreviewFailureReason holds the string denoting the preview_failure_reason field in the database.
	FieldPreviewFailureReason = "preview_failure_reason"
	// FieldPreviewLastUpdated holds the string denoting the preview_last_updated field in the database.
	FieldPreviewLastUpdated = "preview_last_updated"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeVersions holds the string denoting the versions edge name in mutations.
	EdgeVersions = "versions"
	// Table holds the table name of the document in the database.
	Table = "documents"
	// VersionsTable is the table that holds the versions relation/edge.
	VersionsTable = "versions"
	// VersionsInverseTable is the table name for the Version entity.
	// It exists in this package in order to avoid circular dependency with the "version" package.
	VersionsInverseTable = "versions"
	// VersionsColumn is the table column denoting the versions relation/edge.
	VersionsColumn = "document_id"
)

// Columns holds all SQL columns for document fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldParentFolderID,
	FieldMimeType,
	FieldFileSize,
	FieldContentID,
	FieldContentHash,
	FieldTextContent,
	FieldMetadata,
	FieldTags,
	FieldCategories,
	FieldCorrespondent,
	FieldStatus,
	FieldVersioned,
	FieldMajorVersion,
	FieldMinorVersion,
	FieldVersionLabel,
	FieldCurrentVersionID,
	FieldPreviewStatus,
	FieldPreviewFailureReason,
	FieldPreviewLastUpdated,
	FieldCreatedBy,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultFileSize holds the default value on creation for the "file_size" field.
	DefaultFileSize int64
	// ContentIDValidator is a validator for the "content_id" field. It is called by the builders before save.
	ContentIDValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultVersioned holds the default value on creation for the "versioned" field.
	DefaultVersioned bool
	// DefaultMajorVersion holds the default value on creation for the "major_version" field.
	DefaultMajorVersion int
	// DefaultMinorVersion holds the default value on creation for the "minor_version" field.
	DefaultMinorVersion int
	// PreviewStatusValidator is a validator for the "preview_status" field. It is called by the builders before save.
	PreviewStatusValidator func(string) error
	// CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	CreatedByValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Document queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByParentFolderID orders the results by the parent_folder_id field.
func ByParentFolderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentFolderID, opts...).ToFunc()
}

// ByMimeType orders the results by the mime_type field.
func ByMimeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMimeType, opts...).ToFunc()
}

// ByFileSize orders the results by the file_size field.
func ByFileSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileSize, opts...).ToFunc()
}

// ByContentID orders the results by the content_id field.
func ByContentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentID, opts...).ToFunc()
}

// ByContentHash orders the results by the content_hash field.
func ByContentHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentHash, opts...).ToFunc()
}

// ByTextContent orders the results by the text_content field.
func ByTextContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTextContent, opts...).ToFunc()
}

// ByCorrespondent orders the results by the correspondent field.
func ByCorrespondent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrespondent, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByVersioned orders the results by the versioned field.
func ByVersioned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersioned, opts...).ToFunc()
}

// ByMajorVersion orders the results by the major_version field.
func ByMajorVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMajorVersion, opts...).ToFunc()
}

// ByMinorVersion orders the results by the minor_version field.
func ByMinorVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinorVersion, opts...).ToFunc()
}

// ByVersionLabel orders the results by the version_label field.
func ByVersionLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersionLabel, opts...).ToFunc()
}

// ByCurrentVersionID orders the results by the current_version_id field.
func ByCurrentVersionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentVersionID, opts...).ToFunc()
}

// ByPreviewStatus orders the results by the preview_status field.
func ByPreviewStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreviewStatus, opts...).ToFunc()
}

// ByPreviewFailureReason orders the results by the preview_failure_reason field.
func ByPreviewFailureReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreviewFailureReason, opts...).ToFunc()
}

// ByPreviewLastUpdated orders the results by the preview_last_updated field.
func ByPreviewLastUpdated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreviewLastUpdated, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByVersionsCount orders the results by versions count.
func ByVersionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newVersionsStep(), opts...)
	}
}

// ByVersions orders the results by versions terms.
func ByVersions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVersionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newVersionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VersionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, VersionsTable, VersionsColumn),
	)
}
