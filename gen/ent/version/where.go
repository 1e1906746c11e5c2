// Code generated by ent, DO NOT EDIT.

package version

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/docshelf/docshelf/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Version {
	return predicate.Version(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Version {
	return predicate.Version(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Version {
	return predicate.Version(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Version {
	return predicate.Version(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Version {
	return predicate.Version(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Version {
	return predicate.Version(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Version {
	return predicate.Version(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldDocumentID, v))
}

// VersionNumber applies equality check predicate on the "version_number" field. It's identical to VersionNumberEQ.
func VersionNumber(v int) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldVersionNumber, v))
}

// MajorVersion applies equality check predicate on the "major_version" field. It's identical to MajorVersionEQ.
func MajorVersion(v int) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldMajorVersion, v))
}

// MinorVersion applies equality check predicate on the "minor_version" field. It's identical to MinorVersionEQ.
func MinorVersion(v int) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldMinorVersion, v))
}

// VersionLabel applies equality check predicate on the "version_label" field. It's identical to VersionLabelEQ.
func VersionLabel(v string) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldVersionLabel, v))
}

// MajorFlag applies equality check predicate on the "major_flag" field. It's identical to MajorFlagEQ.
func MajorFlag(v bool) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldMajorFlag, v))
}

// ContentID applies equality check predicate on the "content_id" field. It's identical to ContentIDEQ.
func ContentID(v string) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldContentID, v))
}

// MimeType applies equality check predicate on the "mime_type" field. It's identical to MimeTypeEQ.
func MimeType(v string) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldMimeType, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int64) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldFileSize, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v string) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldContentHash, v))
}

// Comment applies equality check predicate on the "comment" field. It's identical to CommentEQ.
func Comment(v string) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldComment, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldCreatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.Version {
	return predicate.Version(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.Version {
	return predicate.Version(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.Version {
	return predicate.Version(sql.FieldNotIn(FieldDocumentID, vs...))
}

// VersionNumberEQ applies the EQ predicate on the "version_number" field.
func VersionNumberEQ(v int) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldVersionNumber, v))
}

// VersionNumberNEQ applies the NEQ predicate on the "version_number" field.
func VersionNumberNEQ(v int) predicate.Version {
	return predicate.Version(sql.FieldNEQ(FieldVersionNumber, v))
}

// VersionNumberIn applies the In predicate on the "version_number" field.
func VersionNumberIn(vs ...int) predicate.Version {
	return predicate.Version(sql.FieldIn(FieldVersionNumber, vs...))
}

// VersionNumberNotIn applies the NotIn predicate on the "version_number" field.
func VersionNumberNotIn(vs ...int) predicate.Version {
	return predicate.Version(sql.FieldNotIn(FieldVersionNumber, vs...))
}

// VersionNumberGT applies the GT predicate on the "version_number" field.
func VersionNumberGT(v int) predicate.Version {
	return predicate.Version(sql.FieldGT(FieldVersionNumber, v))
}

// VersionNumberGTE applies the GTE predicate on the "version_number" field.
func VersionNumberGTE(v int) predicate.Version {
	return predicate.Version(sql.FieldGTE(FieldVersionNumber, v))
}

// VersionNumberLT applies the LT predicate on the "version_number" field.
func VersionNumberLT(v int) predicate.Version {
	return predicate.Version(sql.FieldLT(FieldVersionNumber, v))
}

// VersionNumberLTE applies the LTE predicate on the "version_number" field.
func VersionNumberLTE(v int) predicate.Version {
	return predicate.Version(sql.FieldLTE(FieldVersionNumber, v))
}

// MajorVersionEQ applies the EQ predicate on the "major_version" field.
func MajorVersionEQ(v int) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldMajorVersion, v))
}

// MajorVersionNEQ applies the NEQ predicate on the "major_version" field.
func MajorVersionNEQ(v int) predicate.Version {
	return predicate.Version(sql.FieldNEQ(FieldMajorVersion, v))
}

// MajorVersionIn applies the In predicate on the "major_version" field.
func MajorVersionIn(vs ...int) predicate.Version {
	return predicate.Version(sql.FieldIn(FieldMajorVersion, vs...))
}

// MajorVersionNotIn applies the NotIn predicate on the "major_version" field.
func MajorVersionNotIn(vs ...int) predicate.Version {
	return predicate.Version(sql.FieldNotIn(FieldMajorVersion, vs...))
}

// MajorVersionGT applies the GT predicate on the "major_version" field.
func MajorVersionGT(v int) predicate.Version {
	return predicate.Version(sql.FieldGT(FieldMajorVersion, v))
}

// MajorVersionGTE applies the GTE predicate on the "major_version" field.
func MajorVersionGTE(v int) predicate.Version {
	return predicate.Version(sql.FieldGTE(FieldMajorVersion, v))
}

// MajorVersionLT applies the LT predicate on the "major_version" field.
func MajorVersionLT(v int) predicate.Version {
	return predicate.Version(sql.FieldLT(FieldMajorVersion, v))
}

// MajorVersionLTE applies the LTE predicate on the "major_version" field.
func MajorVersionLTE(v int) predicate.Version {
	return predicate.Version(sql.FieldLTE(FieldMajorVersion, v))
}

// MinorVersionEQ applies the EQ predicate on the "minor_version" field.
func MinorVersionEQ(v int) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldMinorVersion, v))
}

// MinorVersionNEQ applies the NEQ predicate on the "minor_version" field.
func MinorVersionNEQ(v int) predicate.Version {
	return predicate.Version(sql.FieldNEQ(FieldMinorVersion, v))
}

// MinorVersionIn applies the In predicate on the "minor_version" field.
func MinorVersionIn(vs ...int) predicate.Version {
	return predicate.Version(sql.FieldIn(FieldMinorVersion, vs...))
}

// MinorVersionNotIn applies the NotIn predicate on the "minor_version" field.
func MinorVersionNotIn(vs ...int) predicate.Version {
	return predicate.Version(sql.FieldNotIn(FieldMinorVersion, vs...))
}

// MinorVersionGT applies the GT predicate on the "minor_version" field.
func MinorVersionGT(v int) predicate.Version {
	return predicate.Version(sql.FieldGT(FieldMinorVersion, v))
}

// MinorVersionGTE applies the GTE predicate on the "minor_version" field.
func MinorVersionGTE(v int) predicate.Version {
	return predicate.Version(sql.FieldGTE(FieldMinorVersion, v))
}

// MinorVersionLT applies the LT predicate on the "minor_version" field.
func MinorVersionLT(v int) predicate.Version {
	return predicate.Version(sql.FieldLT(FieldMinorVersion, v))
}

// MinorVersionLTE applies the LTE predicate on the "minor_version" field.
func MinorVersionLTE(v int) predicate.Version {
	return predicate.Version(sql.FieldLTE(FieldMinorVersion, v))
}

// VersionLabelEQ applies the EQ predicate on the "version_label" field.
func VersionLabelEQ(v string) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldVersionLabel, v))
}

// VersionLabelNEQ applies the NEQ predicate on the "version_label" field.
func VersionLabelNEQ(v string) predicate.Version {
	return predicate.Version(sql.FieldNEQ(FieldVersionLabel, v))
}

// VersionLabelIn applies the In predicate on the "version_label" field.
func VersionLabelIn(vs ...string) predicate.Version {
	return predicate.Version(sql.FieldIn(FieldVersionLabel, vs...))
}

// VersionLabelNotIn applies the NotIn predicate on the "version_label" field.
func VersionLabelNotIn(vs ...string) predicate.Version {
	return predicate.Version(sql.FieldNotIn(FieldVersionLabel, vs...))
}

// VersionLabelGT applies the GT predicate on the "version_label" field.
func VersionLabelGT(v string) predicate.Version {
	return predicate.Version(sql.FieldGT(FieldVersionLabel, v))
}

// VersionLabelGTE applies the GTE predicate on the "version_label" field.
func VersionLabelGTE(v string) predicate.Version {
	return predicate.Version(sql.FieldGTE(FieldVersionLabel, v))
}

// VersionLabelLT applies the LT predicate on the "version_label" field.
func VersionLabelLT(v string) predicate.Version {
	return predicate.Version(sql.FieldLT(FieldVersionLabel, v))
}

// VersionLabelLTE applies the LTE predicate on the "version_label" field.
func VersionLabelLTE(v string) predicate.Version {
	return predicate.Version(sql.FieldLTE(FieldVersionLabel, v))
}

// VersionLabelContains applies the Contains predicate on the "version_label" field.
func VersionLabelContains(v string) predicate.Version {
	return predicate.Version(sql.FieldContains(FieldVersionLabel, v))
}

// VersionLabelHasPrefix applies the HasPrefix predicate on the "version_label" field.
func VersionLabelHasPrefix(v string) predicate.Version {
	return predicate.Version(sql.FieldHasPrefix(FieldVersionLabel, v))
}

// VersionLabelHasSuffix applies the HasSuffix predicate on the "version_label" field.
func VersionLabelHasSuffix(v string) predicate.Version {
	return predicate.Version(sql.FieldHasSuffix(FieldVersionLabel, v))
}

// VersionLabelEqualFold applies the EqualFold predicate on the "version_label" field.
func VersionLabelEqualFold(v string) predicate.Version {
	return predicate.Version(sql.FieldEqualFold(FieldVersionLabel, v))
}

// VersionLabelContainsFold applies the ContainsFold predicate on the "version_label" field.
func VersionLabelContainsFold(v string) predicate.Version {
	return predicate.Version(sql.FieldContainsFold(FieldVersionLabel, v))
}

// MajorFlagEQ applies the EQ predicate on the "major_flag" field.
func MajorFlagEQ(v bool) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldMajorFlag, v))
}

// MajorFlagNEQ applies the NEQ predicate on the "major_flag" field.
func MajorFlagNEQ(v bool) predicate.Version {
	return predicate.Version(sql.FieldNEQ(FieldMajorFlag, v))
}

// ContentIDEQ applies the EQ predicate on the "content_id" field.
func ContentIDEQ(v string) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldContentID, v))
}

// ContentIDNEQ applies the NEQ predicate on the "content_id" field.
func ContentIDNEQ(v string) predicate.Version {
	return predicate.Version(sql.FieldNEQ(FieldContentID, v))
}

// ContentIDIn applies the In predicate on the "content_id" field.
func ContentIDIn(vs ...string) predicate.Version {
	return predicate.Version(sql.FieldIn(FieldContentID, vs...))
}

// ContentIDNotIn applies the NotIn predicate on the "content_id" field.
func ContentIDNotIn(vs ...string) predicate.Version {
	return predicate.Version(sql.FieldNotIn(FieldContentID, vs...))
}

// ContentIDGT applies the GT predicate on the "content_id" field.
func ContentIDGT(v string) predicate.Version {
	return predicate.Version(sql.FieldGT(FieldContentID, v))
}

// ContentIDGTE applies the GTE predicate on the "content_id" field.
func ContentIDGTE(v string) predicate.Version {
	return predicate.Version(sql.FieldGTE(FieldContentID, v))
}

// ContentIDLT applies the LT predicate on the "content_id" field.
func ContentIDLT(v string) predicate.Version {
	return predicate.Version(sql.FieldLT(FieldContentID, v))
}

// ContentIDLTE applies the LTE predicate on the "content_id" field.
func ContentIDLTE(v string) predicate.Version {
	return predicate.Version(sql.FieldLTE(FieldContentID, v))
}

// ContentIDContains applies the Contains predicate on the "content_id" field.
func ContentIDContains(v string) predicate.Version {
	return predicate.Version(sql.FieldContains(FieldContentID, v))
}

// ContentIDHasPrefix applies the HasPrefix predicate on the "content_id" field.
func ContentIDHasPrefix(v string) predicate.Version {
	return predicate.Version(sql.FieldHasPrefix(FieldContentID, v))
}

// ContentIDHasSuffix applies the HasSuffix predicate on the "content_id" field.
func ContentIDHasSuffix(v string) predicate.Version {
	return predicate.Version(sql.FieldHasSuffix(FieldContentID, v))
}

// ContentIDEqualFold applies the EqualFold predicate on the "content_id" field.
func ContentIDEqualFold(v string) predicate.Version {
	return predicate.Version(sql.FieldEqualFold(FieldContentID, v))
}

// ContentIDContainsFold applies the ContainsFold predicate on the "content_id" field.
func ContentIDContainsFold(v string) predicate.Version {
	return predicate.Version(sql.FieldContainsFold(FieldContentID, v))
}

// MimeTypeEQ applies the EQ predicate on the "mime_type" field.
func MimeTypeEQ(v string) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldMimeType, v))
}

// MimeTypeNEQ applies the NEQ predicate on the "mime_type" field.
func MimeTypeNEQ(v string) predicate.Version {
	return predicate.Version(sql.FieldNEQ(FieldMimeType, v))
}

// MimeTypeIn applies the In predicate on the "mime_type" field.
func MimeTypeIn(vs ...string) predicate.Version {
	return predicate.Version(sql.FieldIn(FieldMimeType, vs...))
}

// MimeTypeNotIn applies the NotIn predicate on the "mime_type" field.
func MimeTypeNotIn(vs ...string) predicate.Version {
	return predicate.Version(sql.FieldNotIn(FieldMimeType, vs...))
}

// MimeTypeGT applies the GT predicate on the "mime_type" field.
func MimeTypeGT(v string) predicate.Version {
	return predicate.Version(sql.FieldGT(FieldMimeType, v))
}

// MimeTypeGTE applies the GTE predicate on the "mime_type" field.
func MimeTypeGTE(v string) predicate.Version {
	return predicate.Version(sql.FieldGTE(FieldMimeType, v))
}

// MimeTypeLT applies the LT predicate on the "mime_type" field.
func MimeTypeLT(v string) predicate.Version {
	return predicate.Version(sql.FieldLT(FieldMimeType, v))
}

// MimeTypeLTE applies the LTE predicate on the "mime_type" field.
func MimeTypeLTE(v string) predicate.Version {
	return predicate.Version(sql.FieldLTE(FieldMimeType, v))
}

// MimeTypeContains applies the Contains predicate on the "mime_type" field.
func MimeTypeContains(v string) predicate.Version {
	return predicate.Version(sql.FieldContains(FieldMimeType, v))
}

// MimeTypeHasPrefix applies the HasPrefix predicate on the "mime_type" field.
func MimeTypeHasPrefix(v string) predicate.Version {
	return predicate.Version(sql.FieldHasPrefix(FieldMimeType, v))
}

// MimeTypeHasSuffix applies the HasSuffix predicate on the "mime_type" field.
func MimeTypeHasSuffix(v string) predicate.Version {
	return predicate.Version(sql.FieldHasSuffix(FieldMimeType, v))
}

// MimeTypeIsNil applies the IsNil predicate on the "mime_type" field.
func MimeTypeIsNil() predicate.Version {
	return predicate.Version(sql.FieldIsNull(FieldMimeType))
}

// MimeTypeNotNil applies the NotNil predicate on the "mime_type" field.
func MimeTypeNotNil() predicate.Version {
	return predicate.Version(sql.FieldNotNull(FieldMimeType))
}

// MimeTypeEqualFold applies the EqualFold predicate on the "mime_type" field.
func MimeTypeEqualFold(v string) predicate.Version {
	return predicate.Version(sql.FieldEqualFold(FieldMimeType, v))
}

// MimeTypeContainsFold applies the ContainsFold predicate on the "mime_type" field.
func MimeTypeContainsFold(v string) predicate.Version {
	return predicate.Version(sql.FieldContainsFold(FieldMimeType, v))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int64) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int64) predicate.Version {
	return predicate.Version(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int64) predicate.Version {
	return predicate.Version(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int64) predicate.Version {
	return predicate.Version(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int64) predicate.Version {
	return predicate.Version(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int64) predicate.Version {
	return predicate.Version(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int64) predicate.Version {
	return predicate.Version(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int64) predicate.Version {
	return predicate.Version(sql.FieldLTE(FieldFileSize, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v string) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v string) predicate.Version {
	return predicate.Version(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...string) predicate.Version {
	return predicate.Version(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...string) predicate.Version {
	return predicate.Version(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v string) predicate.Version {
	return predicate.Version(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v string) predicate.Version {
	return predicate.Version(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v string) predicate.Version {
	return predicate.Version(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v string) predicate.Version {
	return predicate.Version(sql.FieldLTE(FieldContentHash, v))
}

// ContentHashContains applies the Contains predicate on the "content_hash" field.
func ContentHashContains(v string) predicate.Version {
	return predicate.Version(sql.FieldContains(FieldContentHash, v))
}

// ContentHashHasPrefix applies the HasPrefix predicate on the "content_hash" field.
func ContentHashHasPrefix(v string) predicate.Version {
	return predicate.Version(sql.FieldHasPrefix(FieldContentHash, v))
}

// ContentHashHasSuffix applies the HasSuffix predicate on the "content_hash" field.
func ContentHashHasSuffix(v string) predicate.Version {
	return predicate.Version(sql.FieldHasSuffix(FieldContentHash, v))
}

// ContentHashIsNil applies the IsNil predicate on the "content_hash" field.
func ContentHashIsNil() predicate.Version {
	return predicate.Version(sql.FieldIsNull(FieldContentHash))
}

// ContentHashNotNil applies the NotNil predicate on the "content_hash" field.
func ContentHashNotNil() predicate.Version {
	return predicate.Version(sql.FieldNotNull(FieldContentHash))
}

// ContentHashEqualFold applies the EqualFold predicate on the "content_hash" field.
func ContentHashEqualFold(v string) predicate.Version {
	return predicate.Version(sql.FieldEqualFold(FieldContentHash, v))
}

// ContentHashContainsFold applies the ContainsFold predicate on the "content_hash" field.
func ContentHashContainsFold(v string) predicate.Version {
	return predicate.Version(sql.FieldContainsFold(FieldContentHash, v))
}

// CommentEQ applies the EQ predicate on the "comment" field.
func CommentEQ(v string) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldComment, v))
}

// CommentNEQ applies the NEQ predicate on the "comment" field.
func CommentNEQ(v string) predicate.Version {
	return predicate.Version(sql.FieldNEQ(FieldComment, v))
}

// CommentIn applies the In predicate on the "comment" field.
func CommentIn(vs ...string) predicate.Version {
	return predicate.Version(sql.FieldIn(FieldComment, vs...))
}

// CommentNotIn applies the NotIn predicate on the "comment" field.
func CommentNotIn(vs ...string) predicate.Version {
	return predicate.Version(sql.FieldNotIn(FieldComment, vs...))
}

// CommentGT applies the GT predicate on the "comment" field.
func CommentGT(v string) predicate.Version {
	return predicate.Version(sql.FieldGT(FieldComment, v))
}

// CommentGTE applies the GTE predicate on the "comment" field.
func CommentGTE(v string) predicate.Version {
	return predicate.Version(sql.FieldGTE(FieldComment, v))
}

// CommentLT applies the LT predicate on the "comment" field.
func CommentLT(v string) predicate.Version {
	return predicate.Version(sql.FieldLT(FieldComment, v))
}

// CommentLTE applies the LTE predicate on the "comment" field.
func CommentLTE(v string) predicate.Version {
	return predicate.Version(sql.FieldLTE(FieldComment, v))
}

// CommentContains applies the Contains predicate on the "comment" field.
func CommentContains(v string) predicate.Version {
	return predicate.Version(sql.FieldContains(FieldComment, v))
}

// CommentHasPrefix applies the HasPrefix predicate on the "comment" field.
func CommentHasPrefix(v string) predicate.Version {
	return predicate.Version(sql.FieldHasPrefix(FieldComment, v))
}

// CommentHasSuffix applies the HasSuffix predicate on the "comment" field.
func CommentHasSuffix(v string) predicate.Version {
	return predicate.Version(sql.FieldHasSuffix(FieldComment, v))
}

// CommentIsNil applies the IsNil predicate on the "comment" field.
func CommentIsNil() predicate.Version {
	return predicate.Version(sql.FieldIsNull(FieldComment))
}

// CommentNotNil applies the NotNil predicate on the "comment" field.
func CommentNotNil() predicate.Version {
	return predicate.Version(sql.FieldNotNull(FieldComment))
}

// CommentEqualFold applies the EqualFold predicate on the "comment" field.
func CommentEqualFold(v string) predicate.Version {
	return predicate.Version(sql.FieldEqualFold(FieldComment, v))
}

// CommentContainsFold applies the ContainsFold predicate on the "comment" field.
func CommentContainsFold(v string) predicate.Version {
	return predicate.Version(sql.FieldContainsFold(FieldComment, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.Version {
	return predicate.Version(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.Version {
	return predicate.Version(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.Version {
	return predicate.Version(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.Version {
	return predicate.Version(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.Version {
	return predicate.Version(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.Version {
	return predicate.Version(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.Version {
	return predicate.Version(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.Version {
	return predicate.Version(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.Version {
	return predicate.Version(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.Version {
	return predicate.Version(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.Version {
	return predicate.Version(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.Version {
	return predicate.Version(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.Version {
	return predicate.Version(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.Version {
	return predicate.Version(sql.FieldContainsFold(FieldCreatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Version {
	return predicate.Version(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Version {
	return predicate.Version(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Version {
	return predicate.Version(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Version {
	return predicate.Version(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Version {
	return predicate.Version(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Version {
	return predicate.Version(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Version {
	return predicate.Version(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Version {
	return predicate.Version(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.Version {
	return predicate.Version(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.Version {
	return predicate.Version(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Version) predicate.Version {
	return predicate.Version(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Version) predicate.Version {
	return predicate.Version(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Version) predicate.Version {
	return predicate.Version(sql.NotPredicates(p))
}
