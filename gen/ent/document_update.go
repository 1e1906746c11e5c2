// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/docshelf/docshelf/gen/ent/document"
	"github.com/docshelf/docshelf/gen/ent/predicate"
	"github.com/docshelf/docshelf/gen/ent/version"
	"github.com/google/uuid"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (du *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	du.mutation.Where(ps...)
	return du
}

// SetName sets the "name" field.
func (du *DocumentUpdate) SetName(s string) *DocumentUpdate {
	du.mutation.SetName(s)
	return du
}

// SetNillableName sets the "name" field if the given value is not nil.
func (du *DocumentUpdate) SetNillableName(s *string) *DocumentUpdate {
	if s != nil {
		du.SetName(*s)
	}
	return du
}

// SetParentFolderID sets the "parent_folder_id" field.
func (du *DocumentUpdate) SetParentFolderID(u uuid.UUID) *DocumentUpdate {
	du.mutation.SetParentFolderID(u)
	return du
}

// SetNillableParentFolderID sets the "parent_folder_id" field if the given value is not nil.
func (du *DocumentUpdate) SetNillableParentFolderID(u *uuid.UUID) *DocumentUpdate {
	if u != nil {
		du.SetParentFolderID(*u)
	}
	return du
}

// ClearParentFolderID clears the value of the "parent_folder_id" field.
func (du *DocumentUpdate) ClearParentFolderID() *DocumentUpdate {
	du.mutation.ClearParentFolderID()
	return du
}

// SetMimeType sets the "mime_type" field.
func (du *DocumentUpdate) SetMimeType(s string) *DocumentUpdate {
	du.mutation.SetMimeType(s)
	return du
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (du *DocumentUpdate) SetNillableMimeType(s *string) *DocumentUpdate {
	if s != nil {
		du.SetMimeType(*s)
	}
	return du
}

// ClearMimeType clears the value of the "mime_type" field.
func (du *DocumentUpdate) ClearMimeType() *DocumentUpdate {
	du.mutation.ClearMimeType()
	return du
}

// SetFileSize sets the "file_size" field.
func (du *DocumentUpdate) SetFileSize(i int64) *DocumentUpdate {
	du.mutation.ResetFileSize()
	du.mutation.SetFileSize(i)
	return du
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (du *DocumentUpdate) SetNillableFileSize(i *int64) *DocumentUpdate {
	if i != nil {
		du.SetFileSize(*i)
	}
	return du
}

// AddFileSize adds i to the "file_size" field.
func (du *DocumentUpdate) AddFileSize(i int64) *DocumentUpdate {
	du.mutation.AddFileSize(i)
	return du
}

// SetContentID sets the "content_id" field.
func (du *DocumentUpdate) SetContentID(s string) *DocumentUpdate {
	du.mutation.SetContentID(s)
	return du
}

// SetNillableContentID sets the "content_id" field if the given value is not nil.
func (du *DocumentUpdate) SetNillableContentID(s *string) *DocumentUpdate {
	if s != nil {
		du.SetContentID(*s)
	}
	return du
}

// SetContentHash sets the "content_hash" field.
func (du *DocumentUpdate) SetContentHash(s string) *DocumentUpdate {
	du.mutation.SetContentHash(s)
	return du
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (du *DocumentUpdate) SetNillableContentHash(s *string) *DocumentUpdate {
	if s != nil {
		du.SetContentHash(*s)
	}
	return du
}

// ClearContentHash clears the value of the "content_hash" field.
func (du *DocumentUpdate) ClearContentHash() *DocumentUpdate {
	du.mutation.ClearContentHash()
	return du
}

// SetTextContent sets the "text_content" field.
func (du *DocumentUpdate) SetTextContent(s string) *DocumentUpdate {
	du.mutation.SetTextContent(s)
	return du
}

// SetNillableTextContent sets the "text_content" field if the given value is not nil.
func (du *DocumentUpdate) SetNillableTextContent(s *string) *DocumentUpdate {
	if s != nil {
		du.SetTextContent(*s)
	}
	return du
}

// ClearTextContent clears the value of the "text_content" field.
func (du *DocumentUpdate) ClearTextContent() *DocumentUpdate {
	du.mutation.ClearTextContent()
	return du
}

// SetMetadata sets the "metadata" field.
func (du *DocumentUpdate) SetMetadata(m map[string]string) *DocumentUpdate {
	du.mutation.SetMetadata(m)
	return du
}

// ClearMetadata clears the value of the "metadata" field.
func (du *DocumentUpdate) ClearMetadata() *DocumentUpdate {
	du.mutation.ClearMetadata()
	return du
}

// SetTags sets the "tags" field.
func (du *DocumentUpdate) SetTags(s []string) *DocumentUpdate {
	du.mutation.SetTags(s)
	return du
}

// AppendTags appends s to the "tags" field.
func (du *DocumentUpdate) AppendTags(s []string) *DocumentUpdate {
	du.mutation.AppendTags(s)
	return du
}

// ClearTags clears the value of the "tags" field.
func (du *DocumentUpdate) ClearTags() *DocumentUpdate {
	du.mutation.ClearTags()
	return du
}

// SetCategories sets the "categories" field.
func (du *DocumentUpdate) SetCategories(s []string) *DocumentUpdate {
	du.mutation.SetCategories(s)
	return du
}

// AppendCategories appends s to the "categories" field.
func (du *DocumentUpdate) AppendCategories(s []string) *DocumentUpdate {
	du.mutation.AppendCategories(s)
	return du
}

// ClearCategories clears the value of the "categories" field.
func (du *DocumentUpdate) ClearCategories() *DocumentUpdate {
	du.mutation.ClearCategories()
	return du
}

// SetCorrespondent sets the "correspondent" field.
func (du *DocumentUpdate) SetCorrespondent(s string) *DocumentUpdate {
	du.mutation.SetCorrespondent(s)
	return du
}

// SetNillableCorrespondent sets the "correspondent" field if the given value is not nil.
func (du *DocumentUpdate) SetNillableCorrespondent(s *string) *DocumentUpdate {
	if s != nil {
		du.SetCorrespondent(*s)
	}
	return du
}

// ClearCorrespondent clears the value of the "correspondent" field.
func (du *DocumentUpdate) ClearCorrespondent() *DocumentUpdate {
	du.mutation.ClearCorrespondent()
	return du
}

// SetStatus sets the "status" field.
func (du *DocumentUpdate) SetStatus(s string) *DocumentUpdate {
	du.mutation.SetStatus(s)
	return du
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (du *DocumentUpdate) SetNillableStatus(s *string) *DocumentUpdate {
	if s != nil {
		du.SetStatus(*s)
	}
	return du
}

// SetVersioned sets the "versioned" field.
func (du *DocumentUpdate) SetVersioned(b bool) *DocumentUpdate {
	du.mutation.SetVersioned(b)
	return du
}

// SetNillableVersioned sets the "versioned" field if the given value is not nil.
func (du *DocumentUpdate) SetNillableVersioned(b *bool) *DocumentUpdate {
	if b != nil {
		du.SetVersioned(*b)
	}
	return du
}

// SetMajorVersion sets the "major_version" field.
func (du *DocumentUpdate) SetMajorVersion(i int) *DocumentUpdate {
	du.mutation.ResetMajorVersion()
	du.mutation.SetMajorVersion(i)
	return du
}

// SetNillableMajorVersion sets the "major_version" field if the given value is not nil.
func (du *DocumentUpdate) SetNillableMajorVersion(i *int) *DocumentUpdate {
	if i != nil {
		du.SetMajorVersion(*i)
	}
	return du
}

// AddMajorVersion adds i to the "major_version" field.
func (du *DocumentUpdate) AddMajorVersion(i int) *DocumentUpdate {
	du.mutation.AddMajorVersion(i)
	return du
}

// SetMinorVersion sets the "minor_version" field.
func (du *DocumentUpdate) SetMinorVersion(i int) *DocumentUpdate {
	du.mutation.ResetMinorVersion()
	du.mutation.SetMinorVersion(i)
	return du
}

// SetNillableMinorVersion sets the "minor_version" field if the given value is not nil.
func (du *DocumentUpdate) SetNillableMinorVersion(i *int) *DocumentUpdate {
	if i != nil {
		du.SetMinorVersion(*i)
	}
	return du
}

// AddMinorVersion adds i to the "minor_version" field.
func (du *DocumentUpdate) AddMinorVersion(i int) *DocumentUpdate {
	du.mutation.AddMinorVersion(i)
	return du
}

// SetVersionLabel sets the "version_label" field.
func (du *DocumentUpdate) SetVersionLabel(s string) *DocumentUpdate {
	du.mutation.SetVersionLabel(s)
	return du
}

// SetNillableVersionLabel sets the "version_label" field if the given value is not nil.
func (du *DocumentUpdate) SetNillableVersionLabel(s *string) *DocumentUpdate {
	if s != nil {
		du.SetVersionLabel(*s)
	}
	return du
}

// ClearVersionLabel clears the value of the "version_label" field.
func (du *DocumentUpdate) ClearVersionLabel() *DocumentUpdate {
	du.mutation.ClearVersionLabel()
	return du
}

// SetCurrentVersionID sets the "current_version_id" field.
func (du *DocumentUpdate) SetCurrentVersionID(u uuid.UUID) *DocumentUpdate {
	du.mutation.SetCurrentVersionID(u)
	return du
}

// SetNillableCurrentVersionID sets the "current_version_id" field if the given value is not nil.
func (du *DocumentUpdate) SetNillableCurrentVersionID(u *uuid.UUID) *DocumentUpdate {
	if u != nil {
		du.SetCurrentVersionID(*u)
	}
	return du
}

// ClearCurrentVersionID clears the value of the "current_version_id" field.
func (du *DocumentUpdate) ClearCurrentVersionID() *DocumentUpdate {
	du.mutation.ClearCurrentVersionID()
	return du
}

// SetPreviewStatus sets the "preview_status" field.
func (du *DocumentUpdate) SetPreviewStatus(s string) *DocumentUpdate {
	du.mutation.SetPreviewStatus(s)
	return du
}

// SetNillablePreviewStatus sets the "preview_status" field if the given value is not nil.
func (du *DocumentUpdate) SetNillablePreviewStatus(s *string) *DocumentUpdate {
	if s != nil {
		du.SetPreviewStatus(*s)
	}
	return du
}

// ClearPreviewStatus clears the value of the "preview_status" field.
func (du *DocumentUpdate) ClearPreviewStatus() *DocumentUpdate {
	du.mutation.ClearPreviewStatus()
	return du
}

// SetPreviewFailureReason sets the "preview_failure_reason" field.
func (du *DocumentUpdate) SetPreviewFailureReason(s string) *DocumentUpdate {
	du.mutation.SetPreviewFailureReason(s)
	return du
}

// SetNillablePreviewFailureReason sets the "preview_failure_reason" field if the given value is not nil.
func (du *DocumentUpdate) SetNillablePreviewFailureReason(s *string) *DocumentUpdate {
	if s != nil {
		du.SetPreviewFailureReason(*s)
	}
	return du
}

// ClearPreviewFailureReason clears the value of the "preview_failure_reason" field.
func (du *DocumentUpdate) ClearPreviewFailureReason() *DocumentUpdate {
	du.mutation.ClearPreviewFailureReason()
	return du
}

// SetPreviewLastUpdated sets the "preview_last_updated" field.
func (du *DocumentUpdate) SetPreviewLastUpdated(t time.Time) *DocumentUpdate {
	du.mutation.SetPreviewLastUpdated(t)
	return du
}

// SetNillablePreviewLastUpdated sets the "preview_last_updated" field if the given value is not nil.
func (du *DocumentUpdate) SetNillablePreviewLastUpdated(t *time.Time) *DocumentUpdate {
	if t != nil {
		du.SetPreviewLastUpdated(*t)
	}
	return du
}

// ClearPreviewLastUpdated clears the value of the "preview_last_updated" field.
func (du *DocumentUpdate) ClearPreviewLastUpdated() *DocumentUpdate {
	du.mutation.ClearPreviewLastUpdated()
	return du
}

// SetCreatedBy sets the "created_by" field.
func (du *DocumentUpdate) SetCreatedBy(s string) *DocumentUpdate {
	du.mutation.SetCreatedBy(s)
	return du
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (du *DocumentUpdate) SetNillableCreatedBy(s *string) *DocumentUpdate {
	if s != nil {
		du.SetCreatedBy(*s)
	}
	return du
}

// SetCreatedAt sets the "created_at" field.
func (du *DocumentUpdate) SetCreatedAt(t time.Time) *DocumentUpdate {
	du.mutation.SetCreatedAt(t)
	return du
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (du *DocumentUpdate) SetNillableCreatedAt(t *time.Time) *DocumentUpdate {
	if t != nil {
		du.SetCreatedAt(*t)
	}
	return du
}

// SetUpdatedAt sets the "updated_at" field.
func (du *DocumentUpdate) SetUpdatedAt(t time.Time) *DocumentUpdate {
	du.mutation.SetUpdatedAt(t)
	return du
}

// AddVersionIDs adds the "versions" edge to the Version entity by IDs.
func (du *DocumentUpdate) AddVersionIDs(ids ...uuid.UUID) *DocumentUpdate {
	du.mutation.AddVersionIDs(ids...)
	return du
}

// AddVersions adds the "versions" edges to the Version entity.
func (du *DocumentUpdate) AddVersions(v ...*Version) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return du.AddVersionIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (du *DocumentUpdate) Mutation() *DocumentMutation {
	return du.mutation
}

// ClearVersions clears all "versions" edges to the Version entity.
func (du *DocumentUpdate) ClearVersions() *DocumentUpdate {
	du.mutation.ClearVersions()
	return du
}

// RemoveVersionIDs removes the "versions" edge to Version entities by IDs.
func (du *DocumentUpdate) RemoveVersionIDs(ids ...uuid.UUID) *DocumentUpdate {
	du.mutation.RemoveVersionIDs(ids...)
	return du
}

// RemoveVersions removes "versions" edges to Version entities.
func (du *DocumentUpdate) RemoveVersions(v ...*Version) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return du.RemoveVersionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (du *DocumentUpdate) Save(ctx context.Context) (int, error) {
	du.defaults()
	return withHooks(ctx, du.sqlSave, du.mutation, du.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (du *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := du.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (du *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := du.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (du *DocumentUpdate) ExecX(ctx context.Context) {
	if err := du.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (du *DocumentUpdate) defaults() {
	if _, ok := du.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		du.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (du *DocumentUpdate) check() error {
	if v, ok := du.mutation.Name(); ok {
		if err := document.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Document.name": %w`, err)}
		}
	}
	if v, ok := du.mutation.ContentID(); ok {
		if err := document.ContentIDValidator(v); err != nil {
			return &ValidationError{Name: "content_id", err: fmt.Errorf(`ent: validator failed for field "Document.content_id": %w`, err)}
		}
	}
	if v, ok := du.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	if v, ok := du.mutation.PreviewStatus(); ok {
		if err := document.PreviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "preview_status", err: fmt.Errorf(`ent: validator failed for field "Document.preview_status": %w`, err)}
		}
	}
	if v, ok := du.mutation.CreatedBy(); ok {
		if err := document.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "Document.created_by": %w`, err)}
		}
	}
	return nil
}

func (du *DocumentUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := du.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	if ps := du.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := du.mutation.Name(); ok {
		_spec.SetField(document.FieldName, field.TypeString, value)
	}
	if value, ok := du.mutation.ParentFolderID(); ok {
		_spec.SetField(document.FieldParentFolderID, field.TypeUUID, value)
	}
	if du.mutation.ParentFolderIDCleared() {
		_spec.ClearField(document.FieldParentFolderID, field.TypeUUID)
	}
	if value, ok := du.mutation.MimeType(); ok {
		_spec.SetField(document.FieldMimeType, field.TypeString, value)
	}
	if du.mutation.MimeTypeCleared() {
		_spec.ClearField(document.FieldMimeType, field.TypeString)
	}
	if value, ok := du.mutation.FileSize(); ok {
		_spec.SetField(document.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := du.mutation.AddedFileSize(); ok {
		_spec.AddField(document.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := du.mutation.ContentID(); ok {
		_spec.SetField(document.FieldContentID, field.TypeString, value)
	}
	if value, ok := du.mutation.ContentHash(); ok {
		_spec.SetField(document.FieldContentHash, field.TypeString, value)
	}
	if du.mutation.ContentHashCleared() {
		_spec.ClearField(document.FieldContentHash, field.TypeString)
	}
	if value, ok := du.mutation.TextContent(); ok {
		_spec.SetField(document.FieldTextContent, field.TypeString, value)
	}
	if du.mutation.TextContentCleared() {
		_spec.ClearField(document.FieldTextContent, field.TypeString)
	}
	if value, ok := du.mutation.Metadata(); ok {
		_spec.SetField(document.FieldMetadata, field.TypeJSON, value)
	}
	if du.mutation.MetadataCleared() {
		_spec.ClearField(document.FieldMetadata, field.TypeJSON)
	}
	if value, ok := du.mutation.Tags(); ok {
		_spec.SetField(document.FieldTags, field.TypeJSON, value)
	}
	if value, ok := du.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldTags, value)
		})
	}
	if du.mutation.TagsCleared() {
		_spec.ClearField(document.FieldTags, field.TypeJSON)
	}
	if value, ok := du.mutation.Categories(); ok {
		_spec.SetField(document.FieldCategories, field.TypeJSON, value)
	}
	if value, ok := du.mutation.AppendedCategories(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldCategories, value)
		})
	}
	if du.mutation.CategoriesCleared() {
		_spec.ClearField(document.FieldCategories, field.TypeJSON)
	}
	if value, ok := du.mutation.Correspondent(); ok {
		_spec.SetField(document.FieldCorrespondent, field.TypeString, value)
	}
	if du.mutation.CorrespondentCleared() {
		_spec.ClearField(document.FieldCorrespondent, field.TypeString)
	}
	if value, ok := du.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
	}
	if value, ok := du.mutation.Versioned(); ok {
		_spec.SetField(document.FieldVersioned, field.TypeBool, value)
	}
	if value, ok := du.mutation.MajorVersion(); ok {
		_spec.SetField(document.FieldMajorVersion, field.TypeInt, value)
	}
	if value, ok := du.mutation.AddedMajorVersion(); ok {
		_spec.AddField(document.FieldMajorVersion, field.TypeInt, value)
	}
	if value, ok := du.mutation.MinorVersion(); ok {
		_spec.SetField(document.FieldMinorVersion, field.TypeInt, value)
	}
	if value, ok := du.mutation.AddedMinorVersion(); ok {
		_spec.AddField(document.FieldMinorVersion, field.TypeInt, value)
	}
	if value, ok := du.mutation.VersionLabel(); ok {
		_spec.SetField(document.FieldVersionLabel, field.TypeString, value)
	}
	if du.mutation.VersionLabelCleared() {
		_spec.ClearField(document.FieldVersionLabel, field.TypeString)
	}
	if value, ok := du.mutation.CurrentVersionID(); ok {
		_spec.SetField(document.FieldCurrentVersionID, field.TypeUUID, value)
	}
	if du.mutation.CurrentVersionIDCleared() {
		_spec.ClearField(document.FieldCurrentVersionID, field.TypeUUID)
	}
	if value, ok := du.mutation.PreviewStatus(); ok {
		_spec.SetField(document.FieldPreviewStatus, field.TypeString, value)
	}
	if du.mutation.PreviewStatusCleared() {
		_spec.ClearField(document.FieldPreviewStatus, field.TypeString)
	}
	if value, ok := du.mutation.PreviewFailureReason(); ok {
		_spec.SetField(document.FieldPreviewFailureReason, field.TypeString, value)
	}
	if du.mutation.PreviewFailureReasonCleared() {
		_spec.ClearField(document.FieldPreviewFailureReason, field.TypeString)
	}
	if value, ok := du.mutation.PreviewLastUpdated(); ok {
		_spec.SetField(document.FieldPreviewLastUpdated, field.TypeTime, value)
	}
	if du.mutation.PreviewLastUpdatedCleared() {
		_spec.ClearField(document.FieldPreviewLastUpdated, field.TypeTime)
	}
	if value, ok := du.mutation.CreatedBy(); ok {
		_spec.SetField(document.FieldCreatedBy, field.TypeString, value)
	}
	if value, ok := du.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := du.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if du.mutation.VersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.VersionsTable,
			Columns: []string{document.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(version.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := du.mutation.RemovedVersionsIDs(); len(nodes) > 0 && !du.mutation.VersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.VersionsTable,
			Columns: []string{document.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(version.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := du.mutation.VersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.VersionsTable,
			Columns: []string{document.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(version.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, du.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	du.mutation.done = true
	return n, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetName sets the "name" field.
func (duo *DocumentUpdateOne) SetName(s string) *DocumentUpdateOne {
	duo.mutation.SetName(s)
	return duo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (duo *DocumentUpdateOne) SetNillableName(s *string) *DocumentUpdateOne {
	if s != nil {
		duo.SetName(*s)
	}
	return duo
}

// SetParentFolderID sets the "parent_folder_id" field.
func (duo *DocumentUpdateOne) SetParentFolderID(u uuid.UUID) *DocumentUpdateOne {
	duo.mutation.SetParentFolderID(u)
	return duo
}

// SetNillableParentFolderID sets the "parent_folder_id" field if the given value is not nil.
func (duo *DocumentUpdateOne) SetNillableParentFolderID(u *uuid.UUID) *DocumentUpdateOne {
	if u != nil {
		duo.SetParentFolderID(*u)
	}
	return duo
}

// ClearParentFolderID clears the value of the "parent_folder_id" field.
func (duo *DocumentUpdateOne) ClearParentFolderID() *DocumentUpdateOne {
	duo.mutation.ClearParentFolderID()
	return duo
}

// SetMimeType sets the "mime_type" field.
func (duo *DocumentUpdateOne) SetMimeType(s string) *DocumentUpdateOne {
	duo.mutation.SetMimeType(s)
	return duo
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (duo *DocumentUpdateOne) SetNillableMimeType(s *string) *DocumentUpdateOne {
	if s != nil {
		duo.SetMimeType(*s)
	}
	return duo
}

// ClearMimeType clears the value of the "mime_type" field.
func (duo *DocumentUpdateOne) ClearMimeType() *DocumentUpdateOne {
	duo.mutation.ClearMimeType()
	return duo
}

// SetFileSize sets the "file_size" field.
func (duo *DocumentUpdateOne) SetFileSize(i int64) *DocumentUpdateOne {
	duo.mutation.ResetFileSize()
	duo.mutation.SetFileSize(i)
	return duo
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (duo *DocumentUpdateOne) SetNillableFileSize(i *int64) *DocumentUpdateOne {
	if i != nil {
		duo.SetFileSize(*i)
	}
	return duo
}

// AddFileSize adds i to the "file_size" field.
func (duo *DocumentUpdateOne) AddFileSize(i int64) *DocumentUpdateOne {
	duo.mutation.AddFileSize(i)
	return duo
}

// SetContentID sets the "content_id" field.
func (duo *DocumentUpdateOne) SetContentID(s string) *DocumentUpdateOne {
	duo.mutation.SetContentID(s)
	return duo
}

// SetNillableContentID sets the "content_id" field if the given value is not nil.
func (duo *DocumentUpdateOne) SetNillableContentID(s *string) *DocumentUpdateOne {
	if s != nil {
		duo.SetContentID(*s)
	}
	return duo
}

// SetContentHash sets the "content_hash" field.
func (duo *DocumentUpdateOne) SetContentHash(s string) *DocumentUpdateOne {
	duo.mutation.SetContentHash(s)
	return duo
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (duo *DocumentUpdateOne) SetNillableContentHash(s *string) *DocumentUpdateOne {
	if s != nil {
		duo.SetContentHash(*s)
	}
	return duo
}

// ClearContentHash clears the value of the "content_hash" field.
func (duo *DocumentUpdateOne) ClearContentHash() *DocumentUpdateOne {
	duo.mutation.ClearContentHash()
	return duo
}

// SetTextContent sets the "text_content" field.
func (duo *DocumentUpdateOne) SetTextContent(s string) *DocumentUpdateOne {
	duo.mutation.SetTextContent(s)
	return duo
}

// SetNillableTextContent sets the "text_content" field if the given value is not nil.
func (duo *DocumentUpdateOne) SetNillableTextContent(s *string) *DocumentUpdateOne {
	if s != nil {
		duo.SetTextContent(*s)
	}
	return duo
}

// ClearTextContent clears the value of the "text_content" field.
func (duo *DocumentUpdateOne) ClearTextContent() *DocumentUpdateOne {
	duo.mutation.ClearTextContent()
	return duo
}

// SetMetadata sets the "metadata" field.
func (duo *DocumentUpdateOne) SetMetadata(m map[string]string) *DocumentUpdateOne {
	duo.mutation.SetMetadata(m)
	return duo
}

// ClearMetadata clears the value of the "metadata" field.
func (duo *DocumentUpdateOne) ClearMetadata() *DocumentUpdateOne {
	duo.mutation.ClearMetadata()
	return duo
}

// SetTags sets the "tags" field.
func (duo *DocumentUpdateOne) SetTags(s []string) *DocumentUpdateOne {
	duo.mutation.SetTags(s)
	return duo
}

// AppendTags appends s to the "tags" field.
func (duo *DocumentUpdateOne) AppendTags(s []string) *DocumentUpdateOne {
	duo.mutation.AppendTags(s)
	return duo
}

// ClearTags clears the value of the "tags" field.
func (duo *DocumentUpdateOne) ClearTags() *DocumentUpdateOne {
	duo.mutation.ClearTags()
	return duo
}

// SetCategories sets the "categories" field.
func (duo *DocumentUpdateOne) SetCategories(s []string) *DocumentUpdateOne {
	duo.mutation.SetCategories(s)
	return duo
}

// AppendCategories appends s to the "categories" field.
func (duo *DocumentUpdateOne) AppendCategories(s []string) *DocumentUpdateOne {
	duo.mutation.AppendCategories(s)
	return duo
}

// ClearCategories clears the value of the "categories" field.
func (duo *DocumentUpdateOne) ClearCategories() *DocumentUpdateOne {
	duo.mutation.ClearCategories()
	return duo
}

// SetCorrespondent sets the "correspondent" field.
func (duo *DocumentUpdateOne) SetCorrespondent(s string) *DocumentUpdateOne {
	duo.mutation.SetCorrespondent(s)
	return duo
}

// SetNillableCorrespondent sets the "correspondent" field if the given value is not nil.
func (duo *DocumentUpdateOne) SetNillableCorrespondent(s *string) *DocumentUpdateOne {
	if s != nil {
		duo.SetCorrespondent(*s)
	}
	return duo
}

// ClearCorrespondent clears the value of the "correspondent" field.
func (duo *DocumentUpdateOne) ClearCorrespondent() *DocumentUpdateOne {
	duo.mutation.ClearCorrespondent()
	return duo
}

// SetStatus sets the "status" field.
func (duo *DocumentUpdateOne) SetStatus(s string) *DocumentUpdateOne {
	duo.mutation.SetStatus(s)
	return duo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (duo *DocumentUpdateOne) SetNillableStatus(s *string) *DocumentUpdateOne {
	if s != nil {
		duo.SetStatus(*s)
	}
	return duo
}

// SetVersioned sets the "versioned" field.
func (duo *DocumentUpdateOne) SetVersioned(b bool) *DocumentUpdateOne {
	duo.mutation.SetVersioned(b)
	return duo
}

// SetNillableVersioned sets the "versioned" field if the given value is not nil.
func (duo *DocumentUpdateOne) SetNillableVersioned(b *bool) *DocumentUpdateOne {
	if b != nil {
		duo.SetVersioned(*b)
	}
	return duo
}

// SetMajorVersion sets the "major_version" field.
func (duo *DocumentUpdateOne) SetMajorVersion(i int) *DocumentUpdateOne {
	duo.mutation.ResetMajorVersion()
	duo.mutation.SetMajorVersion(i)
	return duo
}

// SetNillableMajorVersion sets the "major_version" field if the given value is not nil.
func (duo *DocumentUpdateOne) SetNillableMajorVersion(i *int) *DocumentUpdateOne {
	if i != nil {
		duo.SetMajorVersion(*i)
	}
	return duo
}

// AddMajorVersion adds i to the "major_version" field.
func (duo *DocumentUpdateOne) AddMajorVersion(i int) *DocumentUpdateOne {
	duo.mutation.AddMajorVersion(i)
	return duo
}

// SetMinorVersion sets the "minor_version" field.
func (duo *DocumentUpdateOne) SetMinorVersion(i int) *DocumentUpdateOne {
	duo.mutation.ResetMinorVersion()
	duo.mutation.SetMinorVersion(i)
	return duo
}

// SetNillableMinorVersion sets the "minor_version" field if the given value is not nil.
func (duo *DocumentUpdateOne) SetNillableMinorVersion(i *int) *DocumentUpdateOne {
	if i != nil {
		duo.SetMinorVersion(*i)
	}
	return duo
}

// AddMinorVersion adds i to the "minor_version" field.
func (duo *DocumentUpdateOne) AddMinorVersion(i int) *DocumentUpdateOne {
	duo.mutation.AddMinorVersion(i)
	return duo
}

// SetVersionLabel sets the "version_label" field.
func (duo *DocumentUpdateOne) SetVersionLabel(s string) *DocumentUpdateOne {
	duo.mutation.SetVersionLabel(s)
	return duo
}

// SetNillableVersionLabel sets the "version_label" field if the given value is not nil.
func (duo *DocumentUpdateOne) SetNillableVersionLabel(s *string) *DocumentUpdateOne {
	if s != nil {
		duo.SetVersionLabel(*s)
	}
	return duo
}

// ClearVersionLabel clears the value of the "version_label" field.
func (duo *DocumentUpdateOne) ClearVersionLabel() *DocumentUpdateOne {
	duo.mutation.ClearVersionLabel()
	return duo
}

// SetCurrentVersionID sets the "current_version_id" field.
func (duo *DocumentUpdateOne) SetCurrentVersionID(u uuid.UUID) *DocumentUpdateOne {
	duo.mutation.SetCurrentVersionID(u)
	return duo
}

// SetNillableCurrentVersionID sets the "current_version_id" field if the given value is not nil.
func (duo *DocumentUpdateOne) SetNillableCurrentVersionID(u *uuid.UUID) *DocumentUpdateOne {
	if u != nil {
		duo.SetCurrentVersionID(*u)
	}
	return duo
}

// ClearCurrentVersionID clears the value of the "current_version_id" field.
func (duo *DocumentUpdateOne) ClearCurrentVersionID() *DocumentUpdateOne {
	duo.mutation.ClearCurrentVersionID()
	return duo
}

// SetPreviewStatus sets the "preview_status" field.
func (duo *DocumentUpdateOne) SetPreviewStatus(s string) *DocumentUpdateOne {
	duo.mutation.SetPreviewStatus(s)
	return duo
}

// SetNillablePreviewStatus sets the "preview_status" field if the given value is not nil.
func (duo *DocumentUpdateOne) SetNillablePreviewStatus(s *string) *DocumentUpdateOne {
	if s != nil {
		duo.SetPreviewStatus(*s)
	}
	return duo
}

// ClearPreviewStatus clears the value of the "preview_status" field.
func (duo *DocumentUpdateOne) ClearPreviewStatus() *DocumentUpdateOne {
	duo.mutation.ClearPreviewStatus()
	return duo
}

// SetPreviewFailureReason sets the "preview_failure_reason" field.
func (duo *DocumentUpdateOne) SetPreviewFailureReason(s string) *DocumentUpdateOne {
	duo.mutation.SetPreviewFailureReason(s)
	return duo
}

// SetNillablePreviewFailureReason sets the "preview_failure_reason" field if the given value is not nil.
func (duo *DocumentUpdateOne) SetNillablePreviewFailureReason(s *string) *DocumentUpdateOne {
	if s != nil {
		duo.SetPreviewFailureReason(*s)
	}
	return duo
}

// ClearPreviewFailureReason clears the value of the "preview_failure_reason" field.
func (duo *DocumentUpdateOne) ClearPreviewFailureReason() *DocumentUpdateOne {
	duo.mutation.ClearPreviewFailureReason()
	return duo
}

// SetPreviewLastUpdated sets the "preview_last_updated" field.
func (duo *DocumentUpdateOne) SetPreviewLastUpdated(t time.Time) *DocumentUpdateOne {
	duo.mutation.SetPreviewLastUpdated(t)
	return duo
}

// SetNillablePreviewLastUpdated sets the "preview_last_updated" field if the given value is not nil.
func (duo *DocumentUpdateOne) SetNillablePreviewLastUpdated(t *time.Time) *DocumentUpdateOne {
	if t != nil {
		duo.SetPreviewLastUpdated(*t)
	}
	return duo
}

// ClearPreviewLastUpdated clears the value of the "preview_last_updated" field.
func (duo *DocumentUpdateOne) ClearPreviewLastUpdated() *DocumentUpdateOne {
	duo.mutation.ClearPreviewLastUpdated()
	return duo
}

// SetCreatedBy sets the "created_by" field.
func (duo *DocumentUpdateOne) SetCreatedBy(s string) *DocumentUpdateOne {
	duo.mutation.SetCreatedBy(s)
	return duo
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (duo *DocumentUpdateOne) SetNillableCreatedBy(s *string) *DocumentUpdateOne {
	if s != nil {
		duo.SetCreatedBy(*s)
	}
	return duo
}

// SetCreatedAt sets the "created_at" field.
func (duo *DocumentUpdateOne) SetCreatedAt(t time.Time) *DocumentUpdateOne {
	duo.mutation.SetCreatedAt(t)
	return duo
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (duo *DocumentUpdateOne) SetNillableCreatedAt(t *time.Time) *DocumentUpdateOne {
	if t != nil {
		duo.SetCreatedAt(*t)
	}
	return duo
}

// SetUpdatedAt sets the "updated_at" field.
func (duo *DocumentUpdateOne) SetUpdatedAt(t time.Time) *DocumentUpdateOne {
	duo.mutation.SetUpdatedAt(t)
	return duo
}

// AddVersionIDs adds the "versions" edge to the Version entity by IDs.
func (duo *DocumentUpdateOne) AddVersionIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	duo.mutation.AddVersionIDs(ids...)
	return duo
}

// AddVersions adds the "versions" edges to the Version entity.
func (duo *DocumentUpdateOne) AddVersions(v ...*Version) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return duo.AddVersionIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (duo *DocumentUpdateOne) Mutation() *DocumentMutation {
	return duo.mutation
}

// ClearVersions clears all "versions" edges to the Version entity.
func (duo *DocumentUpdateOne) ClearVersions() *DocumentUpdateOne {
	duo.mutation.ClearVersions()
	return duo
}

// RemoveVersionIDs removes the "versions" edge to Version entities by IDs.
func (duo *DocumentUpdateOne) RemoveVersionIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	duo.mutation.RemoveVersionIDs(ids...)
	return duo
}

// RemoveVersions removes "versions" edges to Version entities.
func (duo *DocumentUpdateOne) RemoveVersions(v ...*Version) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return duo.RemoveVersionIDs(ids...)
}

// Where appends a list predicates to the DocumentUpdate builder.
func (duo *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	duo.mutation.Where(ps...)
	return duo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (duo *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	duo.fields = append([]string{field}, fields...)
	return duo
}

// Save executes the query and returns the updated Document entity.
func (duo *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	duo.defaults()
	return withHooks(ctx, duo.sqlSave, duo.mutation, duo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (duo *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := duo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (duo *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := duo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (duo *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := duo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (duo *DocumentUpdateOne) defaults() {
	if _, ok := duo.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		duo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (duo *DocumentUpdateOne) check() error {
	if v, ok := duo.mutation.Name(); ok {
		if err := document.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Document.name": %w`, err)}
		}
	}
	if v, ok := duo.mutation.ContentID(); ok {
		if err := document.ContentIDValidator(v); err != nil {
			return &ValidationError{Name: "content_id", err: fmt.Errorf(`ent: validator failed for field "Document.content_id": %w`, err)}
		}
	}
	if v, ok := duo.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	if v, ok := duo.mutation.PreviewStatus(); ok {
		if err := document.PreviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "preview_status", err: fmt.Errorf(`ent: validator failed for field "Document.preview_status": %w`, err)}
		}
	}
	if v, ok := duo.mutation.CreatedBy(); ok {
		if err := document.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "Document.created_by": %w`, err)}
		}
	}
	return nil
}

func (duo *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := duo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	id, ok := duo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := duo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := duo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := duo.mutation.Name(); ok {
		_spec.SetField(document.FieldName, field.TypeString, value)
	}
	if value, ok := duo.mutation.ParentFolderID(); ok {
		_spec.SetField(document.FieldParentFolderID, field.TypeUUID, value)
	}
	if duo.mutation.ParentFolderIDCleared() {
		_spec.ClearField(document.FieldParentFolderID, field.TypeUUID)
	}
	if value, ok := duo.mutation.MimeType(); ok {
		_spec.SetField(document.FieldMimeType, field.TypeString, value)
	}
	if duo.mutation.MimeTypeCleared() {
		_spec.ClearField(document.FieldMimeType, field.TypeString)
	}
	if value, ok := duo.mutation.FileSize(); ok {
		_spec.SetField(document.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := duo.mutation.AddedFileSize(); ok {
		_spec.AddField(document.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := duo.mutation.ContentID(); ok {
		_spec.SetField(document.FieldContentID, field.TypeString, value)
	}
	if value, ok := duo.mutation.ContentHash(); ok {
		_spec.SetField(document.FieldContentHash, field.TypeString, value)
	}
	if duo.mutation.ContentHashCleared() {
		_spec.ClearField(document.FieldContentHash, field.TypeString)
	}
	if value, ok := duo.mutation.TextContent(); ok {
		_spec.SetField(document.FieldTextContent, field.TypeString, value)
	}
	if duo.mutation.TextContentCleared() {
		_spec.ClearField(document.FieldTextContent, field.TypeString)
	}
	if value, ok := duo.mutation.Metadata(); ok {
		_spec.SetField(document.FieldMetadata, field.TypeJSON, value)
	}
	if duo.mutation.MetadataCleared() {
		_spec.ClearField(document.FieldMetadata, field.TypeJSON)
	}
	if value, ok := duo.mutation.Tags(); ok {
		_spec.SetField(document.FieldTags, field.TypeJSON, value)
	}
	if value, ok := duo.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldTags, value)
		})
	}
	if duo.mutation.TagsCleared() {
		_spec.ClearField(document.FieldTags, field.TypeJSON)
	}
	if value, ok := duo.mutation.Categories(); ok {
		_spec.SetField(document.FieldCategories, field.TypeJSON, value)
	}
	if value, ok := duo.mutation.AppendedCategories(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldCategories, value)
		})
	}
	if duo.mutation.CategoriesCleared() {
		_spec.ClearField(document.FieldCategories, field.TypeJSON)
	}
	if value, ok := duo.mutation.Correspondent(); ok {
		_spec.SetField(document.FieldCorrespondent, field.TypeString, value)
	}
	if duo.mutation.CorrespondentCleared() {
		_spec.ClearField(document.FieldCorrespondent, field.TypeString)
	}
	if value, ok := duo.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
	}
	if value, ok := duo.mutation.Versioned(); ok {
		_spec.SetField(document.FieldVersioned, field.TypeBool, value)
	}
	if value, ok := duo.mutation.MajorVersion(); ok {
		_spec.SetField(document.FieldMajorVersion, field.TypeInt, value)
	}
	if value, ok := duo.mutation.AddedMajorVersion(); ok {
		_spec.AddField(document.FieldMajorVersion, field.TypeInt, value)
	}
	if value, ok := duo.mutation.MinorVersion(); ok {
		_spec.SetField(document.FieldMinorVersion, field.TypeInt, value)
	}
	if value, ok := duo.mutation.AddedMinorVersion(); ok {
		_spec.AddField(document.FieldMinorVersion, field.TypeInt, value)
	}
	if value, ok := duo.mutation.VersionLabel(); ok {
		_spec.SetField(document.FieldVersionLabel, field.TypeString, value)
	}
	if duo.mutation.VersionLabelCleared() {
		_spec.ClearField(document.FieldVersionLabel, field.TypeString)
	}
	if value, ok := duo.mutation.CurrentVersionID(); ok {
		_spec.SetField(document.FieldCurrentVersionID, field.TypeUUID, value)
	}
	if duo.mutation.CurrentVersionIDCleared() {
		_spec.ClearField(document.FieldCurrentVersionID, field.TypeUUID)
	}
	if value, ok := duo.mutation.PreviewStatus(); ok {
		_spec.SetField(document.FieldPreviewStatus, field.TypeString, value)
	}
	if duo.mutation.PreviewStatusCleared() {
		_spec.ClearField(document.FieldPreviewStatus, field.TypeString)
	}
	if value, ok := duo.mutation.PreviewFailureReason(); ok {
		_spec.SetField(document.FieldPreviewFailureReason, field.TypeString, value)
	}
	if duo.mutation.PreviewFailureReasonCleared() {
		_spec.ClearField(document.FieldPreviewFailureReason, field.TypeString)
	}
	if value, ok := duo.mutation.PreviewLastUpdated(); ok {
		_spec.SetField(document.FieldPreviewLastUpdated, field.TypeTime, value)
	}
	if duo.mutation.PreviewLastUpdatedCleared() {
		_spec.ClearField(document.FieldPreviewLastUpdated, field.TypeTime)
	}
	if value, ok := duo.mutation.CreatedBy(); ok {
		_spec.SetField(document.FieldCreatedBy, field.TypeString, value)
	}
	if value, ok := duo.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := duo.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if duo.mutation.VersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.VersionsTable,
			Columns: []string{document.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(version.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := duo.mutation.RemovedVersionsIDs(); len(nodes) > 0 && !duo.mutation.VersionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.VersionsTable,
			Columns: []string{document.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(version.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := duo.mutation.VersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.VersionsTable,
			Columns: []string{document.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(version.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: duo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, duo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	duo.mutation.done = true
	return _node, nil
}
