// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/docshelf/docshelf/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldName, v))
}

// ParentFolderID applies equality check predicate on the "parent_folder_id" field. It's identical to ParentFolderIDEQ.
func ParentFolderID(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldParentFolderID, v))
}

// MimeType applies equality check predicate on the "mime_type" field. It's identical to MimeTypeEQ.
func MimeType(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldMimeType, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileSize, v))
}

// ContentID applies equality check predicate on the "content_id" field. It's identical to ContentIDEQ.
func ContentID(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldContentID, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldContentHash, v))
}

// TextContent applies equality check predicate on the "text_content" field. It's identical to TextContentEQ.
func TextContent(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldTextContent, v))
}

// Correspondent applies equality check predicate on the "correspondent" field. It's identical to CorrespondentEQ.
func Correspondent(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCorrespondent, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStatus, v))
}

// Versioned applies equality check predicate on the "versioned" field. It's identical to VersionedEQ.
func Versioned(v bool) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldVersioned, v))
}

// MajorVersion applies equality check predicate on the "major_version" field. It's identical to MajorVersionEQ.
func MajorVersion(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldMajorVersion, v))
}

// MinorVersion applies equality check predicate on the "minor_version" field. It's identical to MinorVersionEQ.
func MinorVersion(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldMinorVersion, v))
}

// VersionLabel applies equality check predicate on the "version_label" field. It's identical to VersionLabelEQ.
func VersionLabel(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldVersionLabel, v))
}

// CurrentVersionID applies equality check predicate on the "current_version_id" field. It's identical to CurrentVersionIDEQ.
func CurrentVersionID(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCurrentVersionID, v))
}

// PreviewStatus applies equality check predicate on the "preview_status" field. It's identical to PreviewStatusEQ.
func PreviewStatus(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPreviewStatus, v))
}

// PreviewFailureReason applies equality check predicate on the "preview_failure_reason" field. It's identical to PreviewFailureReasonEQ.
func PreviewFailureReason(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPreviewFailureReason, v))
}

// PreviewLastUpdated applies equality check predicate on the "preview_last_updated" field. It's identical to PreviewLastUpdatedEQ.
func PreviewLastUpdated(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPreviewLastUpdated, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldName, v))
}

// ParentFolderIDEQ applies the EQ predicate on the "parent_folder_id" field.
func ParentFolderIDEQ(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldParentFolderID, v))
}

// ParentFolderIDNEQ applies the NEQ predicate on the "parent_folder_id" field.
func ParentFolderIDNEQ(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldParentFolderID, v))
}

// ParentFolderIDIn applies the In predicate on the "parent_folder_id" field.
func ParentFolderIDIn(vs ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldParentFolderID, vs...))
}

// ParentFolderIDNotIn applies the NotIn predicate on the "parent_folder_id" field.
func ParentFolderIDNotIn(vs ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldParentFolderID, vs...))
}

// ParentFolderIDGT applies the GT predicate on the "parent_folder_id" field.
func ParentFolderIDGT(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldParentFolderID, v))
}

// ParentFolderIDGTE applies the GTE predicate on the "parent_folder_id" field.
func ParentFolderIDGTE(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldParentFolderID, v))
}

// ParentFolderIDLT applies the LT predicate on the "parent_folder_id" field.
func ParentFolderIDLT(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldParentFolderID, v))
}

// ParentFolderIDLTE applies the LTE predicate on the "parent_folder_id" field.
func ParentFolderIDLTE(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldParentFolderID, v))
}

// ParentFolderIDIsNil applies the IsNil predicate on the "parent_folder_id" field.
func ParentFolderIDIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldParentFolderID))
}

// ParentFolderIDNotNil applies the NotNil predicate on the "parent_folder_id" field.
func ParentFolderIDNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldParentFolderID))
}

// MimeTypeEQ applies the EQ predicate on the "mime_type" field.
func MimeTypeEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldMimeType, v))
}

// MimeTypeNEQ applies the NEQ predicate on the "mime_type" field.
func MimeTypeNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldMimeType, v))
}

// MimeTypeIn applies the In predicate on the "mime_type" field.
func MimeTypeIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldMimeType, vs...))
}

// MimeTypeNotIn applies the NotIn predicate on the "mime_type" field.
func MimeTypeNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldMimeType, vs...))
}

// MimeTypeGT applies the GT predicate on the "mime_type" field.
func MimeTypeGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldMimeType, v))
}

// MimeTypeGTE applies the GTE predicate on the "mime_type" field.
func MimeTypeGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldMimeType, v))
}

// MimeTypeLT applies the LT predicate on the "mime_type" field.
func MimeTypeLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldMimeType, v))
}

// MimeTypeLTE applies the LTE predicate on the "mime_type" field.
func MimeTypeLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldMimeType, v))
}

// MimeTypeContains applies the Contains predicate on the "mime_type" field.
func MimeTypeContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldMimeType, v))
}

// MimeTypeHasPrefix applies the HasPrefix predicate on the "mime_type" field.
func MimeTypeHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldMimeType, v))
}

// MimeTypeHasSuffix applies the HasSuffix predicate on the "mime_type" field.
func MimeTypeHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldMimeType, v))
}

// MimeTypeIsNil applies the IsNil predicate on the "mime_type" field.
func MimeTypeIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldMimeType))
}

// MimeTypeNotNil applies the NotNil predicate on the "mime_type" field.
func MimeTypeNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldMimeType))
}

// MimeTypeEqualFold applies the EqualFold predicate on the "mime_type" field.
func MimeTypeEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldMimeType, v))
}

// MimeTypeContainsFold applies the ContainsFold predicate on the "mime_type" field.
func MimeTypeContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldMimeType, v))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int64) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int64) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int64) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int64) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int64) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int64) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int64) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFileSize, v))
}

// ContentIDEQ applies the EQ predicate on the "content_id" field.
func ContentIDEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldContentID, v))
}

// ContentIDNEQ applies the NEQ predicate on the "content_id" field.
func ContentIDNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldContentID, v))
}

// ContentIDIn applies the In predicate on the "content_id" field.
func ContentIDIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldContentID, vs...))
}

// ContentIDNotIn applies the NotIn predicate on the "content_id" field.
func ContentIDNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldContentID, vs...))
}

// ContentIDGT applies the GT predicate on the "content_id" field.
func ContentIDGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldContentID, v))
}

// ContentIDGTE applies the GTE predicate on the "content_id" field.
func ContentIDGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldContentID, v))
}

// ContentIDLT applies the LT predicate on the "content_id" field.
func ContentIDLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldContentID, v))
}

// ContentIDLTE applies the LTE predicate on the "content_id" field.
func ContentIDLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldContentID, v))
}

// ContentIDContains applies the Contains predicate on the "content_id" field.
func ContentIDContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldContentID, v))
}

// ContentIDHasPrefix applies the HasPrefix predicate on the "content_id" field.
func ContentIDHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldContentID, v))
}

// ContentIDHasSuffix applies the HasSuffix predicate on the "content_id" field.
func ContentIDHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldContentID, v))
}

// ContentIDEqualFold applies the EqualFold predicate on the "content_id" field.
func ContentIDEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldContentID, v))
}

// ContentIDContainsFold applies the ContainsFold predicate on the "content_id" field.
func ContentIDContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldContentID, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldContentHash, v))
}

// ContentHashContains applies the Contains predicate on the "content_hash" field.
func ContentHashContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldContentHash, v))
}

// ContentHashHasPrefix applies the HasPrefix predicate on the "content_hash" field.
func ContentHashHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldContentHash, v))
}

// ContentHashHasSuffix applies the HasSuffix predicate on the "content_hash" field.
func ContentHashHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldContentHash, v))
}

// ContentHashIsNil applies the IsNil predicate on the "content_hash" field.
func ContentHashIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldContentHash))
}

// ContentHashNotNil applies the NotNil predicate on the "content_hash" field.
func ContentHashNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldContentHash))
}

// ContentHashEqualFold applies the EqualFold predicate on the "content_hash" field.
func ContentHashEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldContentHash, v))
}

// ContentHashContainsFold applies the ContainsFold predicate on the "content_hash" field.
func ContentHashContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldContentHash, v))
}

// TextContentEQ applies the EQ predicate on the "text_content" field.
func TextContentEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldTextContent, v))
}

// TextContentNEQ applies the NEQ predicate on the "text_content" field.
func TextContentNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldTextContent, v))
}

// TextContentIn applies the In predicate on the "text_content" field.
func TextContentIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldTextContent, vs...))
}

// TextContentNotIn applies the NotIn predicate on the "text_content" field.
func TextContentNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldTextContent, vs...))
}

// TextContentGT applies the GT predicate on the "text_content" field.
func TextContentGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldTextContent, v))
}

// TextContentGTE applies the GTE predicate on the "text_content" field.
func TextContentGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldTextContent, v))
}

// TextContentLT applies the LT predicate on the "text_content" field.
func TextContentLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldTextContent, v))
}

// TextContentLTE applies the LTE predicate on the "text_content" field.
func TextContentLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldTextContent, v))
}

// TextContentContains applies the Contains predicate on the "text_content" field.
func TextContentContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldTextContent, v))
}

// TextContentHasPrefix applies the HasPrefix predicate on the "text_content" field.
func TextContentHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldTextContent, v))
}

// TextContentHasSuffix applies the HasSuffix predicate on the "text_content" field.
func TextContentHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldTextContent, v))
}

// TextContentIsNil applies the IsNil predicate on the "text_content" field.
func TextContentIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldTextContent))
}

// TextContentNotNil applies the NotNil predicate on the "text_content" field.
func TextContentNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldTextContent))
}

// TextContentEqualFold applies the EqualFold predicate on the "text_content" field.
func TextContentEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldTextContent, v))
}

// TextContentContainsFold applies the ContainsFold predicate on the "text_content" field.
func TextContentContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldTextContent, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldMetadata))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldTags))
}

// CategoriesIsNil applies the IsNil predicate on the "categories" field.
func CategoriesIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldCategories))
}

// CategoriesNotNil applies the NotNil predicate on the "categories" field.
func CategoriesNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldCategories))
}

// CorrespondentEQ applies the EQ predicate on the "correspondent" field.
func CorrespondentEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCorrespondent, v))
}

// CorrespondentNEQ applies the NEQ predicate on the "correspondent" field.
func CorrespondentNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCorrespondent, v))
}

// CorrespondentIn applies the In predicate on the "correspondent" field.
func CorrespondentIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCorrespondent, vs...))
}

// CorrespondentNotIn applies the NotIn predicate on the "correspondent" field.
func CorrespondentNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCorrespondent, vs...))
}

// CorrespondentGT applies the GT predicate on the "correspondent" field.
func CorrespondentGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCorrespondent, v))
}

// CorrespondentGTE applies the GTE predicate on the "correspondent" field.
func CorrespondentGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCorrespondent, v))
}

// CorrespondentLT applies the LT predicate on the "correspondent" field.
func CorrespondentLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCorrespondent, v))
}

// CorrespondentLTE applies the LTE predicate on the "correspondent" field.
func CorrespondentLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCorrespondent, v))
}

// CorrespondentContains applies the Contains predicate on the "correspondent" field.
func CorrespondentContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldCorrespondent, v))
}

// CorrespondentHasPrefix applies the HasPrefix predicate on the "correspondent" field.
func CorrespondentHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldCorrespondent, v))
}

// CorrespondentHasSuffix applies the HasSuffix predicate on the "correspondent" field.
func CorrespondentHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldCorrespondent, v))
}

// CorrespondentIsNil applies the IsNil predicate on the "correspondent" field.
func CorrespondentIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldCorrespondent))
}

// CorrespondentNotNil applies the NotNil predicate on the "correspondent" field.
func CorrespondentNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldCorrespondent))
}

// CorrespondentEqualFold applies the EqualFold predicate on the "correspondent" field.
func CorrespondentEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldCorrespondent, v))
}

// CorrespondentContainsFold applies the ContainsFold predicate on the "correspondent" field.
func CorrespondentContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldCorrespondent, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldStatus, v))
}

// VersionedEQ applies the EQ predicate on the "versioned" field.
func VersionedEQ(v bool) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldVersioned, v))
}

// VersionedNEQ applies the NEQ predicate on the "versioned" field.
func VersionedNEQ(v bool) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldVersioned, v))
}

// MajorVersionEQ applies the EQ predicate on the "major_version" field.
func MajorVersionEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldMajorVersion, v))
}

// MajorVersionNEQ applies the NEQ predicate on the "major_version" field.
func MajorVersionNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldMajorVersion, v))
}

// MajorVersionIn applies the In predicate on the "major_version" field.
func MajorVersionIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldMajorVersion, vs...))
}

// MajorVersionNotIn applies the NotIn predicate on the "major_version" field.
func MajorVersionNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldMajorVersion, vs...))
}

// MajorVersionGT applies the GT predicate on the "major_version" field.
func MajorVersionGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldMajorVersion, v))
}

// MajorVersionGTE applies the GTE predicate on the "major_version" field.
func MajorVersionGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldMajorVersion, v))
}

// MajorVersionLT applies the LT predicate on the "major_version" field.
func MajorVersionLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldMajorVersion, v))
}

// MajorVersionLTE applies the LTE predicate on the "major_version" field.
func MajorVersionLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldMajorVersion, v))
}

// MinorVersionEQ applies the EQ predicate on the "minor_version" field.
func MinorVersionEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldMinorVersion, v))
}

// MinorVersionNEQ applies the NEQ predicate on the "minor_version" field.
func MinorVersionNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldMinorVersion, v))
}

// MinorVersionIn applies the In predicate on the "minor_version" field.
func MinorVersionIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldMinorVersion, vs...))
}

// MinorVersionNotIn applies the NotIn predicate on the "minor_version" field.
func MinorVersionNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldMinorVersion, vs...))
}

// MinorVersionGT applies the GT predicate on the "minor_version" field.
func MinorVersionGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldMinorVersion, v))
}

// MinorVersionGTE applies the GTE predicate on the "minor_version" field.
func MinorVersionGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldMinorVersion, v))
}

// MinorVersionLT applies the LT predicate on the "minor_version" field.
func MinorVersionLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldMinorVersion, v))
}

// MinorVersionLTE applies the LTE predicate on the "minor_version" field.
func MinorVersionLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldMinorVersion, v))
}

// VersionLabelEQ applies the EQ predicate on the "version_label" field.
func VersionLabelEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldVersionLabel, v))
}

// VersionLabelNEQ applies the NEQ predicate on the "version_label" field.
func VersionLabelNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldVersionLabel, v))
}

// VersionLabelIn applies the In predicate on the "version_label" field.
func VersionLabelIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldVersionLabel, vs...))
}

// VersionLabelNotIn applies the NotIn predicate on the "version_label" field.
func VersionLabelNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldVersionLabel, vs...))
}

// VersionLabelGT applies the GT predicate on the "version_label" field.
func VersionLabelGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldVersionLabel, v))
}

// VersionLabelGTE applies the GTE predicate on the "version_label" field.
func VersionLabelGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldVersionLabel, v))
}

// VersionLabelLT applies the LT predicate on the "version_label" field.
func VersionLabelLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldVersionLabel, v))
}

// VersionLabelLTE applies the LTE predicate on the "version_label" field.
func VersionLabelLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldVersionLabel, v))
}

// VersionLabelContains applies the Contains predicate on the "version_label" field.
func VersionLabelContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldVersionLabel, v))
}

// VersionLabelHasPrefix applies the HasPrefix predicate on the "version_label" field.
func VersionLabelHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldVersionLabel, v))
}

// VersionLabelHasSuffix applies the HasSuffix predicate on the "version_label" field.
func VersionLabelHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldVersionLabel, v))
}

// VersionLabelIsNil applies the IsNil predicate on the "version_label" field.
func VersionLabelIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldVersionLabel))
}

// VersionLabelNotNil applies the NotNil predicate on the "version_label" field.
func VersionLabelNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldVersionLabel))
}

// VersionLabelEqualFold applies the EqualFold predicate on the "version_label" field.
func VersionLabelEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldVersionLabel, v))
}

// VersionLabelContainsFold applies the ContainsFold predicate on the "version_label" field.
func VersionLabelContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldVersionLabel, v))
}

// CurrentVersionIDEQ applies the EQ predicate on the "current_version_id" field.
func CurrentVersionIDEQ(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCurrentVersionID, v))
}

// CurrentVersionIDNEQ applies the NEQ predicate on the "current_version_id" field.
func CurrentVersionIDNEQ(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCurrentVersionID, v))
}

// CurrentVersionIDIn applies the In predicate on the "current_version_id" field.
func CurrentVersionIDIn(vs ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCurrentVersionID, vs...))
}

// CurrentVersionIDNotIn applies the NotIn predicate on the "current_version_id" field.
func CurrentVersionIDNotIn(vs ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCurrentVersionID, vs...))
}

// CurrentVersionIDGT applies the GT predicate on the "current_version_id" field.
func CurrentVersionIDGT(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCurrentVersionID, v))
}

// CurrentVersionIDGTE applies the GTE predicate on the "current_version_id" field.
func CurrentVersionIDGTE(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCurrentVersionID, v))
}

// CurrentVersionIDLT applies the LT predicate on the "current_version_id" field.
func CurrentVersionIDLT(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCurrentVersionID, v))
}

// CurrentVersionIDLTE applies the LTE predicate on the "current_version_id" field.
func CurrentVersionIDLTE(v uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCurrentVersionID, v))
}

// CurrentVersionIDIsNil applies the IsNil predicate on the "current_version_id" field.
func CurrentVersionIDIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldCurrentVersionID))
}

// CurrentVersionIDNotNil applies the NotNil predicate on the "current_version_id" field.
func CurrentVersionIDNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldCurrentVersionID))
}

// PreviewStatusEQ applies the EQ predicate on the "preview_status" field.
func PreviewStatusEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPreviewStatus, v))
}

// PreviewStatusNEQ applies the NEQ predicate on the "preview_status" field.
func PreviewStatusNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldPreviewStatus, v))
}

// PreviewStatusIn applies the In predicate on the "preview_status" field.
func PreviewStatusIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldPreviewStatus, vs...))
}

// PreviewStatusNotIn applies the NotIn predicate on the "preview_status" field.
func PreviewStatusNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldPreviewStatus, vs...))
}

// PreviewStatusGT applies the GT predicate on the "preview_status" field.
func PreviewStatusGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldPreviewStatus, v))
}

// PreviewStatusGTE applies the GTE predicate on the "preview_status" field.
func PreviewStatusGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldPreviewStatus, v))
}

// PreviewStatusLT applies the LT predicate on the "preview_status" field.
func PreviewStatusLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldPreviewStatus, v))
}

// PreviewStatusLTE applies the LTE predicate on the "preview_status" field.
func PreviewStatusLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldPreviewStatus, v))
}

// PreviewStatusContains applies the Contains predicate on the "preview_status" field.
func PreviewStatusContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldPreviewStatus, v))
}

// PreviewStatusHasPrefix applies the HasPrefix predicate on the "preview_status" field.
func PreviewStatusHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldPreviewStatus, v))
}

// PreviewStatusHasSuffix applies the HasSuffix predicate on the "preview_status" field.
func PreviewStatusHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldPreviewStatus, v))
}

// PreviewStatusIsNil applies the IsNil predicate on the "preview_status" field.
func PreviewStatusIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldPreviewStatus))
}

// PreviewStatusNotNil applies the NotNil predicate on the "preview_status" field.
func PreviewStatusNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldPreviewStatus))
}

// PreviewStatusEqualFold applies the EqualFold predicate on the "preview_status" field.
func PreviewStatusEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldPreviewStatus, v))
}

// PreviewStatusContainsFold applies the ContainsFold predicate on the "preview_status" field.
func PreviewStatusContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldPreviewStatus, v))
}

// PreviewFailureReasonEQ applies the EQ predicate on the "preview_failure_reason" field.
func PreviewFailureReasonEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPreviewFailureReason, v))
}

// PreviewFailureReasonNEQ applies the NEQ predicate on the "preview_failure_reason" field.
func PreviewFailureReasonNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldPreviewFailureReason, v))
}

// PreviewFailureReasonIn applies the In predicate on the "preview_failure_reason" field.
func PreviewFailureReasonIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldPreviewFailureReason, vs...))
}

// PreviewFailureReasonNotIn applies the NotIn predicate on the "preview_failure_reason" field.
func PreviewFailureReasonNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldPreviewFailureReason, vs...))
}

// PreviewFailureReasonGT applies the GT predicate on the "preview_failure_reason" field.
func PreviewFailureReasonGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldPreviewFailureReason, v))
}

// PreviewFailureReasonGTE applies the GTE predicate on the "preview_failure_reason" field.
func PreviewFailureReasonGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldPreviewFailureReason, v))
}

// PreviewFailureReasonLT applies the LT predicate on the "preview_failure_reason" field.
func PreviewFailureReasonLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldPreviewFailureReason, v))
}

// PreviewFailureReasonLTE applies the LTE predicate on the "preview_failure_reason" field.
func PreviewFailureReasonLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldPreviewFailureReason, v))
}

// PreviewFailureReasonContains applies the Contains predicate on the "preview_failure_reason" field.
func PreviewFailureReasonContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldPreviewFailureReason, v))
}

// PreviewFailureReasonHasPrefix applies the HasPrefix predicate on the "preview_failure_reason" field.
func PreviewFailureReasonHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldPreviewFailureReason, v))
}

// PreviewFailureReasonHasSuffix applies the HasSuffix predicate on the "preview_failure_reason" field.
func PreviewFailureReasonHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldPreviewFailureReason, v))
}

// PreviewFailureReasonIsNil applies the IsNil predicate on the "preview_failure_reason" field.
func PreviewFailureReasonIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldPreviewFailureReason))
}

// PreviewFailureReasonNotNil applies the NotNil predicate on the "preview_failure_reason" field.
func PreviewFailureReasonNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldPreviewFailureReason))
}

// PreviewFailureReasonEqualFold applies the EqualFold predicate on the "preview_failure_reason" field.
func PreviewFailureReasonEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldPreviewFailureReason, v))
}

// PreviewFailureReasonContainsFold applies the ContainsFold predicate on the "preview_failure_reason" field.
func PreviewFailureReasonContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldPreviewFailureReason, v))
}

// PreviewLastUpdatedEQ applies the EQ predicate on the "preview_last_updated" field.
func PreviewLastUpdatedEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPreviewLastUpdated, v))
}

// PreviewLastUpdatedNEQ applies the NEQ predicate on the "preview_last_updated" field.
func PreviewLastUpdatedNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldPreviewLastUpdated, v))
}

// PreviewLastUpdatedIn applies the In predicate on the "preview_last_updated" field.
func PreviewLastUpdatedIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldPreviewLastUpdated, vs...))
}

// PreviewLastUpdatedNotIn applies the NotIn predicate on the "preview_last_updated" field.
func PreviewLastUpdatedNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldPreviewLastUpdated, vs...))
}

// PreviewLastUpdatedGT applies the GT predicate on the "preview_last_updated" field.
func PreviewLastUpdatedGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldPreviewLastUpdated, v))
}

// PreviewLastUpdatedGTE applies the GTE predicate on the "preview_last_updated" field.
func PreviewLastUpdatedGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldPreviewLastUpdated, v))
}

// PreviewLastUpdatedLT applies the LT predicate on the "preview_last_updated" field.
func PreviewLastUpdatedLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldPreviewLastUpdated, v))
}

// PreviewLastUpdatedLTE applies the LTE predicate on the "preview_last_updated" field.
func PreviewLastUpdatedLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldPreviewLastUpdated, v))
}

// PreviewLastUpdatedIsNil applies the IsNil predicate on the "preview_last_updated" field.
func PreviewLastUpdatedIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldPreviewLastUpdated))
}

// PreviewLastUpdatedNotNil applies the NotNil predicate on the "preview_last_updated" field.
func PreviewLastUpdatedNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldPreviewLastUpdated))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldCreatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasVersions applies the HasEdge predicate on the "versions" edge.
func HasVersions() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VersionsTable, VersionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVersionsWith applies the HasEdge predicate on the "versions" edge with a given conditions (other predicates).
func HasVersionsWith(preds ...predicate.Version) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newVersionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Document) predicate.Document {
	return predicate.Document(sql.NotPredicates(p))
}
