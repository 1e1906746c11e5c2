// Code generated by ent, DO NOT EDIT.

package version

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the version type in the database.
	Label = "version"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldVersionNumber holds the string denoting the version_number field in the database.
	FieldVersionNumber = "version_number"
	// FieldMajorVersion holds the string denoting the major_version field in the database.
	FieldMajorVersion = "major_version"
	// FieldMinorVersion holds the string denoting the minor_version field in the database.
	FieldMinorVersion = "minor_version"
	// FieldVersionLabel holds the string denoting the version_label field in the database.
	FieldVersionLabel = "version_label"
	// FieldMajorFlag holds the string denoting the major_flag field in the database.
	FieldMajorFlag = "major_flag"
	// FieldContentID holds the string denoting the content_id field in the database.
	FieldContentID = "content_id"
	// FieldMimeType holds the string denoting the mime_type field in the database.
	FieldMimeType = "mime_type"
	// FieldFileSize holds the string denoting the file_size field in the database.
	FieldFileSize = "file_size"
	// FieldContentHash holds the string denoting the content_hash field in the database.
	FieldContentHash = "content_hash"
	// FieldComment holds the string denoting the comment field in the database.
	FieldComment = "comment"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeDocument holds the string denoting the document edge name in mutations.
	EdgeDocument = "document"
	// Table holds the table name of the version in the database.
	Table = "versions"
	// DocumentTable is the table that holds the document relation/edge.
	DocumentTable = "versions"
	// DocumentInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentInverseTable = "documents"
	// DocumentColumn is the table column denoting the document relation/edge.
	DocumentColumn = "document_id"
)

// Columns holds all SQL columns for version fields.
var Columns = []string{
	FieldID,
	FieldDocumentID,
	FieldVersionNumber,
	FieldMajorVersion,
	FieldMinorVersion,
	FieldVersionLabel,
	FieldMajorFlag,
	FieldContentID,
	FieldMimeType,
	FieldFileSize,
	FieldContentHash,
	FieldComment,
	FieldCreatedBy,
	FieldCreatedAt,
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
	// VersionNumberValidator is a validator for the "version_number" field. It is called by the builders before save.
	VersionNumberValidator func(int) error
	// DefaultMajorVersion holds the default value on creation for the "major_version" field.
	DefaultMajorVersion int
	// DefaultMinorVersion holds the default value on creation for the "minor_version" field.
	DefaultMinorVersion int
	// VersionLabelValidator is a validator for the "version_label" field. It is called by the builders before save.
	VersionLabelValidator func(string) error
	// DefaultMajorFlag holds the default value on creation for the "major_flag" field.
	DefaultMajorFlag bool
	// ContentIDValidator is a validator for the "content_id" field. It is called by the builders before save.
	ContentIDValidator func(string) error
	// DefaultFileSize holds the default value on creation for the "file_size" field.
	DefaultFileSize int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Version queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByVersionNumber orders the results by the version_number field.
func ByVersionNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersionNumber, opts...).ToFunc()
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

// ByMajorFlag orders the results by the major_flag field.
func ByMajorFlag(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMajorFlag, opts...).ToFunc()
}

// ByContentID orders the results by the content_id field.
func ByContentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentID, opts...).ToFunc()
}

// ByMimeType orders the results by the mime_type field.
func ByMimeType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMimeType, opts...).ToFunc()
}

// ByFileSize orders the results by the file_size field.
func ByFileSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileSize, opts...).ToFunc()
}

// ByContentHash orders the results by the content_hash field.
func ByContentHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentHash, opts...).ToFunc()
}

// ByComment orders the results by the comment field.
func ByComment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComment, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDocumentField orders the results by document field.
func ByDocumentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentStep(), sql.OrderByField(field, opts...))
	}
}
func newDocumentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
	)
}
