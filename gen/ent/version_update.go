// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docshelf/docshelf/gen/ent/document"
	"github.com/docshelf/docshelf/gen/ent/predicate"
	"github.com/docshelf/docshelf/gen/ent/version"
	"github.com/google/uuid"
)

// VersionUpdate is the builder for updating Version entities.
type VersionUpdate struct {
	config
	hooks    []Hook
	mutation *VersionMutation
}

// Where appends a list predicates to the VersionUpdate builder.
func (vu *VersionUpdate) Where(ps ...predicate.Version) *VersionUpdate {
	vu.mutation.Where(ps...)
	return vu
}

// SetDocumentID sets the "document_id" field.
func (vu *VersionUpdate) SetDocumentID(u uuid.UUID) *VersionUpdate {
	vu.mutation.SetDocumentID(u)
	return vu
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (vu *VersionUpdate) SetNillableDocumentID(u *uuid.UUID) *VersionUpdate {
	if u != nil {
		vu.SetDocumentID(*u)
	}
	return vu
}

// SetVersionNumber sets the "version_number" field.
func (vu *VersionUpdate) SetVersionNumber(i int) *VersionUpdate {
	vu.mutation.ResetVersionNumber()
	vu.mutation.SetVersionNumber(i)
	return vu
}

// SetNillableVersionNumber sets the "version_number" field if the given value is not nil.
func (vu *VersionUpdate) SetNillableVersionNumber(i *int) *VersionUpdate {
	if i != nil {
		vu.SetVersionNumber(*i)
	}
	return vu
}

// AddVersionNumber adds i to the "version_number" field.
func (vu *VersionUpdate) AddVersionNumber(i int) *VersionUpdate {
	vu.mutation.AddVersionNumber(i)
	return vu
}

// SetMajorVersion sets the "major_version" field.
func (vu *VersionUpdate) SetMajorVersion(i int) *VersionUpdate {
	vu.mutation.ResetMajorVersion()
	vu.mutation.SetMajorVersion(i)
	return vu
}

// SetNillableMajorVersion sets the "major_version" field if the given value is not nil.
func (vu *VersionUpdate) SetNillableMajorVersion(i *int) *VersionUpdate {
	if i != nil {
		vu.SetMajorVersion(*i)
	}
	return vu
}

// AddMajorVersion adds i to the "major_version" field.
func (vu *VersionUpdate) AddMajorVersion(i int) *VersionUpdate {
	vu.mutation.AddMajorVersion(i)
	return vu
}

// SetMinorVersion sets the "minor_version" field.
func (vu *VersionUpdate) SetMinorVersion(i int) *VersionUpdate {
	vu.mutation.ResetMinorVersion()
	vu.mutation.SetMinorVersion(i)
	return vu
}

// SetNillableMinorVersion sets the "minor_version" field if the given value is not nil.
func (vu *VersionUpdate) SetNillableMinorVersion(i *int) *VersionUpdate {
	if i != nil {
		vu.SetMinorVersion(*i)
	}
	return vu
}

// AddMinorVersion adds i to the "minor_version" field.
func (vu *VersionUpdate) AddMinorVersion(i int) *VersionUpdate {
	vu.mutation.AddMinorVersion(i)
	return vu
}

// SetVersionLabel sets the "version_label" field.
func (vu *VersionUpdate) SetVersionLabel(s string) *VersionUpdate {
	vu.mutation.SetVersionLabel(s)
	return vu
}

// SetNillableVersionLabel sets the "version_label" field if the given value is not nil.
func (vu *VersionUpdate) SetNillableVersionLabel(s *string) *VersionUpdate {
	if s != nil {
		vu.SetVersionLabel(*s)
	}
	return vu
}

// SetMajorFlag sets the "major_flag" field.
func (vu *VersionUpdate) SetMajorFlag(b bool) *VersionUpdate {
	vu.mutation.SetMajorFlag(b)
	return vu
}

// SetNillableMajorFlag sets the "major_flag" field if the given value is not nil.
func (vu *VersionUpdate) SetNillableMajorFlag(b *bool) *VersionUpdate {
	if b != nil {
		vu.SetMajorFlag(*b)
	}
	return vu
}

// SetContentID sets the "content_id" field.
func (vu *VersionUpdate) SetContentID(s string) *VersionUpdate {
	vu.mutation.SetContentID(s)
	return vu
}

// SetNillableContentID sets the "content_id" field if the given value is not nil.
func (vu *VersionUpdate) SetNillableContentID(s *string) *VersionUpdate {
	if s != nil {
		vu.SetContentID(*s)
	}
	return vu
}

// SetMimeType sets the "mime_type" field.
func (vu *VersionUpdate) SetMimeType(s string) *VersionUpdate {
	vu.mutation.SetMimeType(s)
	return vu
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (vu *VersionUpdate) SetNillableMimeType(s *string) *VersionUpdate {
	if s != nil {
		vu.SetMimeType(*s)
	}
	return vu
}

// ClearMimeType clears the value of the "mime_type" field.
func (vu *VersionUpdate) ClearMimeType() *VersionUpdate {
	vu.mutation.ClearMimeType()
	return vu
}

// SetFileSize sets the "file_size" field.
func (vu *VersionUpdate) SetFileSize(i int64) *VersionUpdate {
	vu.mutation.ResetFileSize()
	vu.mutation.SetFileSize(i)
	return vu
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (vu *VersionUpdate) SetNillableFileSize(i *int64) *VersionUpdate {
	if i != nil {
		vu.SetFileSize(*i)
	}
	return vu
}

// AddFileSize adds i to the "file_size" field.
func (vu *VersionUpdate) AddFileSize(i int64) *VersionUpdate {
	vu.mutation.AddFileSize(i)
	return vu
}

// SetContentHash sets the "content_hash" field.
func (vu *VersionUpdate) SetContentHash(s string) *VersionUpdate {
	vu.mutation.SetContentHash(s)
	return vu
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (vu *VersionUpdate) SetNillableContentHash(s *string) *VersionUpdate {
	if s != nil {
		vu.SetContentHash(*s)
	}
	return vu
}

// ClearContentHash clears the value of the "content_hash" field.
func (vu *VersionUpdate) ClearContentHash() *VersionUpdate {
	vu.mutation.ClearContentHash()
	return vu
}

// SetComment sets the "comment" field.
func (vu *VersionUpdate) SetComment(s string) *VersionUpdate {
	vu.mutation.SetComment(s)
	return vu
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (vu *VersionUpdate) SetNillableComment(s *string) *VersionUpdate {
	if s != nil {
		vu.SetComment(*s)
	}
	return vu
}

// ClearComment clears the value of the "comment" field.
func (vu *VersionUpdate) ClearComment() *VersionUpdate {
	vu.mutation.ClearComment()
	return vu
}

// SetCreatedBy sets the "created_by" field.
func (vu *VersionUpdate) SetCreatedBy(s string) *VersionUpdate {
	vu.mutation.SetCreatedBy(s)
	return vu
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (vu *VersionUpdate) SetNillableCreatedBy(s *string) *VersionUpdate {
	if s != nil {
		vu.SetCreatedBy(*s)
	}
	return vu
}

// ClearCreatedBy clears the value of the "created_by" field.
func (vu *VersionUpdate) ClearCreatedBy() *VersionUpdate {
	vu.mutation.ClearCreatedBy()
	return vu
}

// SetCreatedAt sets the "created_at" field.
func (vu *VersionUpdate) SetCreatedAt(t time.Time) *VersionUpdate {
	vu.mutation.SetCreatedAt(t)
	return vu
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (vu *VersionUpdate) SetNillableCreatedAt(t *time.Time) *VersionUpdate {
	if t != nil {
		vu.SetCreatedAt(*t)
	}
	return vu
}

// SetDocument sets the "document" edge to the Document entity.
func (vu *VersionUpdate) SetDocument(d *Document) *VersionUpdate {
	return vu.SetDocumentID(d.ID)
}

// Mutation returns the VersionMutation object of the builder.
func (vu *VersionUpdate) Mutation() *VersionMutation {
	return vu.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (vu *VersionUpdate) ClearDocument() *VersionUpdate {
	vu.mutation.ClearDocument()
	return vu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (vu *VersionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, vu.sqlSave, vu.mutation, vu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (vu *VersionUpdate) SaveX(ctx context.Context) int {
	affected, err := vu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (vu *VersionUpdate) Exec(ctx context.Context) error {
	_, err := vu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (vu *VersionUpdate) ExecX(ctx context.Context) {
	if err := vu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (vu *VersionUpdate) check() error {
	if v, ok := vu.mutation.VersionNumber(); ok {
		if err := version.VersionNumberValidator(v); err != nil {
			return &ValidationError{Name: "version_number", err: fmt.Errorf(`ent: validator failed for field "Version.version_number": %w`, err)}
		}
	}
	if v, ok := vu.mutation.VersionLabel(); ok {
		if err := version.VersionLabelValidator(v); err != nil {
			return &ValidationError{Name: "version_label", err: fmt.Errorf(`ent: validator failed for field "Version.version_label": %w`, err)}
		}
	}
	if v, ok := vu.mutation.ContentID(); ok {
		if err := version.ContentIDValidator(v); err != nil {
			return &ValidationError{Name: "content_id", err: fmt.Errorf(`ent: validator failed for field "Version.content_id": %w`, err)}
		}
	}
	if vu.mutation.DocumentCleared() && len(vu.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Version.document"`)
	}
	return nil
}

func (vu *VersionUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := vu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(version.Table, version.Columns, sqlgraph.NewFieldSpec(version.FieldID, field.TypeUUID))
	if ps := vu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := vu.mutation.VersionNumber(); ok {
		_spec.SetField(version.FieldVersionNumber, field.TypeInt, value)
	}
	if value, ok := vu.mutation.AddedVersionNumber(); ok {
		_spec.AddField(version.FieldVersionNumber, field.TypeInt, value)
	}
	if value, ok := vu.mutation.MajorVersion(); ok {
		_spec.SetField(version.FieldMajorVersion, field.TypeInt, value)
	}
	if value, ok := vu.mutation.AddedMajorVersion(); ok {
		_spec.AddField(version.FieldMajorVersion, field.TypeInt, value)
	}
	if value, ok := vu.mutation.MinorVersion(); ok {
		_spec.SetField(version.FieldMinorVersion, field.TypeInt, value)
	}
	if value, ok := vu.mutation.AddedMinorVersion(); ok {
		_spec.AddField(version.FieldMinorVersion, field.TypeInt, value)
	}
	if value, ok := vu.mutation.VersionLabel(); ok {
		_spec.SetField(version.FieldVersionLabel, field.TypeString, value)
	}
	if value, ok := vu.mutation.MajorFlag(); ok {
		_spec.SetField(version.FieldMajorFlag, field.TypeBool, value)
	}
	if value, ok := vu.mutation.ContentID(); ok {
		_spec.SetField(version.FieldContentID, field.TypeString, value)
	}
	if value, ok := vu.mutation.MimeType(); ok {
		_spec.SetField(version.FieldMimeType, field.TypeString, value)
	}
	if vu.mutation.MimeTypeCleared() {
		_spec.ClearField(version.FieldMimeType, field.TypeString)
	}
	if value, ok := vu.mutation.FileSize(); ok {
		_spec.SetField(version.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := vu.mutation.AddedFileSize(); ok {
		_spec.AddField(version.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := vu.mutation.ContentHash(); ok {
		_spec.SetField(version.FieldContentHash, field.TypeString, value)
	}
	if vu.mutation.ContentHashCleared() {
		_spec.ClearField(version.FieldContentHash, field.TypeString)
	}
	if value, ok := vu.mutation.Comment(); ok {
		_spec.SetField(version.FieldComment, field.TypeString, value)
	}
	if vu.mutation.CommentCleared() {
		_spec.ClearField(version.FieldComment, field.TypeString)
	}
	if value, ok := vu.mutation.CreatedBy(); ok {
		_spec.SetField(version.FieldCreatedBy, field.TypeString, value)
	}
	if vu.mutation.CreatedByCleared() {
		_spec.ClearField(version.FieldCreatedBy, field.TypeString)
	}
	if value, ok := vu.mutation.CreatedAt(); ok {
		_spec.SetField(version.FieldCreatedAt, field.TypeTime, value)
	}
	if vu.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   version.DocumentTable,
			Columns: []string{version.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := vu.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   version.DocumentTable,
			Columns: []string{version.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, vu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{version.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	vu.mutation.done = true
	return n, nil
}

// VersionUpdateOne is the builder for updating a single Version entity.
type VersionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VersionMutation
}

// SetDocumentID sets the "document_id" field.
func (vuo *VersionUpdateOne) SetDocumentID(u uuid.UUID) *VersionUpdateOne {
	vuo.mutation.SetDocumentID(u)
	return vuo
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (vuo *VersionUpdateOne) SetNillableDocumentID(u *uuid.UUID) *VersionUpdateOne {
	if u != nil {
		vuo.SetDocumentID(*u)
	}
	return vuo
}

// SetVersionNumber sets the "version_number" field.
func (vuo *VersionUpdateOne) SetVersionNumber(i int) *VersionUpdateOne {
	vuo.mutation.ResetVersionNumber()
	vuo.mutation.SetVersionNumber(i)
	return vuo
}

// SetNillableVersionNumber sets the "version_number" field if the given value is not nil.
func (vuo *VersionUpdateOne) SetNillableVersionNumber(i *int) *VersionUpdateOne {
	if i != nil {
		vuo.SetVersionNumber(*i)
	}
	return vuo
}

// AddVersionNumber adds i to the "version_number" field.
func (vuo *VersionUpdateOne) AddVersionNumber(i int) *VersionUpdateOne {
	vuo.mutation.AddVersionNumber(i)
	return vuo
}

// SetMajorVersion sets the "major_version" field.
func (vuo *VersionUpdateOne) SetMajorVersion(i int) *VersionUpdateOne {
	vuo.mutation.ResetMajorVersion()
	vuo.mutation.SetMajorVersion(i)
	return vuo
}

// SetNillableMajorVersion sets the "major_version" field if the given value is not nil.
func (vuo *VersionUpdateOne) SetNillableMajorVersion(i *int) *VersionUpdateOne {
	if i != nil {
		vuo.SetMajorVersion(*i)
	}
	return vuo
}

// AddMajorVersion adds i to the "major_version" field.
func (vuo *VersionUpdateOne) AddMajorVersion(i int) *VersionUpdateOne {
	vuo.mutation.AddMajorVersion(i)
	return vuo
}

// SetMinorVersion sets the "minor_version" field.
func (vuo *VersionUpdateOne) SetMinorVersion(i int) *VersionUpdateOne {
	vuo.mutation.ResetMinorVersion()
	vuo.mutation.SetMinorVersion(i)
	return vuo
}

// SetNillableMinorVersion sets the "minor_version" field if the given value is not nil.
func (vuo *VersionUpdateOne) SetNillableMinorVersion(i *int) *VersionUpdateOne {
	if i != nil {
		vuo.SetMinorVersion(*i)
	}
	return vuo
}

// AddMinorVersion adds i to the "minor_version" field.
func (vuo *VersionUpdateOne) AddMinorVersion(i int) *VersionUpdateOne {
	vuo.mutation.AddMinorVersion(i)
	return vuo
}

// SetVersionLabel sets the "version_label" field.
func (vuo *VersionUpdateOne) SetVersionLabel(s string) *VersionUpdateOne {
	vuo.mutation.SetVersionLabel(s)
	return vuo
}

// SetNillableVersionLabel sets the "version_label" field if the given value is not nil.
func (vuo *VersionUpdateOne) SetNillableVersionLabel(s *string) *VersionUpdateOne {
	if s != nil {
		vuo.SetVersionLabel(*s)
	}
	return vuo
}

// SetMajorFlag sets the "major_flag" field.
func (vuo *VersionUpdateOne) SetMajorFlag(b bool) *VersionUpdateOne {
	vuo.mutation.SetMajorFlag(b)
	return vuo
}

// SetNillableMajorFlag sets the "major_flag" field if the given value is not nil.
func (vuo *VersionUpdateOne) SetNillableMajorFlag(b *bool) *VersionUpdateOne {
	if b != nil {
		vuo.SetMajorFlag(*b)
	}
	return vuo
}

// SetContentID sets the "content_id" field.
func (vuo *VersionUpdateOne) SetContentID(s string) *VersionUpdateOne {
	vuo.mutation.SetContentID(s)
	return vuo
}

// SetNillableContentID sets the "content_id" field if the given value is not nil.
func (vuo *VersionUpdateOne) SetNillableContentID(s *string) *VersionUpdateOne {
	if s != nil {
		vuo.SetContentID(*s)
	}
	return vuo
}

// SetMimeType sets the "mime_type" field.
func (vuo *VersionUpdateOne) SetMimeType(s string) *VersionUpdateOne {
	vuo.mutation.SetMimeType(s)
	return vuo
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (vuo *VersionUpdateOne) SetNillableMimeType(s *string) *VersionUpdateOne {
	if s != nil {
		vuo.SetMimeType(*s)
	}
	return vuo
}

// ClearMimeType clears the value of the "mime_type" field.
func (vuo *VersionUpdateOne) ClearMimeType() *VersionUpdateOne {
	vuo.mutation.ClearMimeType()
	return vuo
}

// SetFileSize sets the "file_size" field.
func (vuo *VersionUpdateOne) SetFileSize(i int64) *VersionUpdateOne {
	vuo.mutation.ResetFileSize()
	vuo.mutation.SetFileSize(i)
	return vuo
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (vuo *VersionUpdateOne) SetNillableFileSize(i *int64) *VersionUpdateOne {
	if i != nil {
		vuo.SetFileSize(*i)
	}
	return vuo
}

// AddFileSize adds i to the "file_size" field.
func (vuo *VersionUpdateOne) AddFileSize(i int64) *VersionUpdateOne {
	vuo.mutation.AddFileSize(i)
	return vuo
}

// SetContentHash sets the "content_hash" field.
func (vuo *VersionUpdateOne) SetContentHash(s string) *VersionUpdateOne {
	vuo.mutation.SetContentHash(s)
	return vuo
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (vuo *VersionUpdateOne) SetNillableContentHash(s *string) *VersionUpdateOne {
	if s != nil {
		vuo.SetContentHash(*s)
	}
	return vuo
}

// ClearContentHash clears the value of the "content_hash" field.
func (vuo *VersionUpdateOne) ClearContentHash() *VersionUpdateOne {
	vuo.mutation.ClearContentHash()
	return vuo
}

// SetComment sets the "comment" field.
func (vuo *VersionUpdateOne) SetComment(s string) *VersionUpdateOne {
	vuo.mutation.SetComment(s)
	return vuo
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (vuo *VersionUpdateOne) SetNillableComment(s *string) *VersionUpdateOne {
	if s != nil {
		vuo.SetComment(*s)
	}
	return vuo
}

// ClearComment clears the value of the "comment" field.
func (vuo *VersionUpdateOne) ClearComment() *VersionUpdateOne {
	vuo.mutation.ClearComment()
	return vuo
}

// SetCreatedBy sets the "created_by" field.
func (vuo *VersionUpdateOne) SetCreatedBy(s string) *VersionUpdateOne {
	vuo.mutation.SetCreatedBy(s)
	return vuo
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (vuo *VersionUpdateOne) SetNillableCreatedBy(s *string) *VersionUpdateOne {
	if s != nil {
		vuo.SetCreatedBy(*s)
	}
	return vuo
}

// ClearCreatedBy clears the value of the "created_by" field.
func (vuo *VersionUpdateOne) ClearCreatedBy() *VersionUpdateOne {
	vuo.mutation.ClearCreatedBy()
	return vuo
}

// SetCreatedAt sets the "created_at" field.
func (vuo *VersionUpdateOne) SetCreatedAt(t time.Time) *VersionUpdateOne {
	vuo.mutation.SetCreatedAt(t)
	return vuo
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (vuo *VersionUpdateOne) SetNillableCreatedAt(t *time.Time) *VersionUpdateOne {
	if t != nil {
		vuo.SetCreatedAt(*t)
	}
	return vuo
}

// SetDocument sets the "document" edge to the Document entity.
func (vuo *VersionUpdateOne) SetDocument(d *Document) *VersionUpdateOne {
	return vuo.SetDocumentID(d.ID)
}

// Mutation returns the VersionMutation object of the builder.
func (vuo *VersionUpdateOne) Mutation() *VersionMutation {
	return vuo.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (vuo *VersionUpdateOne) ClearDocument() *VersionUpdateOne {
	vuo.mutation.ClearDocument()
	return vuo
}

// Where appends a list predicates to the VersionUpdate builder.
func (vuo *VersionUpdateOne) Where(ps ...predicate.Version) *VersionUpdateOne {
	vuo.mutation.Where(ps...)
	return vuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (vuo *VersionUpdateOne) Select(field string, fields ...string) *VersionUpdateOne {
	vuo.fields = append([]string{field}, fields...)
	return vuo
}

// Save executes the query and returns the updated Version entity.
func (vuo *VersionUpdateOne) Save(ctx context.Context) (*Version, error) {
	return withHooks(ctx, vuo.sqlSave, vuo.mutation, vuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (vuo *VersionUpdateOne) SaveX(ctx context.Context) *Version {
	node, err := vuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (vuo *VersionUpdateOne) Exec(ctx context.Context) error {
	_, err := vuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (vuo *VersionUpdateOne) ExecX(ctx context.Context) {
	if err := vuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (vuo *VersionUpdateOne) check() error {
	if v, ok := vuo.mutation.VersionNumber(); ok {
		if err := version.VersionNumberValidator(v); err != nil {
			return &ValidationError{Name: "version_number", err: fmt.Errorf(`ent: validator failed for field "Version.version_number": %w`, err)}
		}
	}
	if v, ok := vuo.mutation.VersionLabel(); ok {
		if err := version.VersionLabelValidator(v); err != nil {
			return &ValidationError{Name: "version_label", err: fmt.Errorf(`ent: validator failed for field "Version.version_label": %w`, err)}
		}
	}
	if v, ok := vuo.mutation.ContentID(); ok {
		if err := version.ContentIDValidator(v); err != nil {
			return &ValidationError{Name: "content_id", err: fmt.Errorf(`ent: validator failed for field "Version.content_id": %w`, err)}
		}
	}
	if vuo.mutation.DocumentCleared() && len(vuo.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Version.document"`)
	}
	return nil
}

func (vuo *VersionUpdateOne) sqlSave(ctx context.Context) (_node *Version, err error) {
	if err := vuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(version.Table, version.Columns, sqlgraph.NewFieldSpec(version.FieldID, field.TypeUUID))
	id, ok := vuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Version.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := vuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, version.FieldID)
		for _, f := range fields {
			if !version.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != version.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := vuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := vuo.mutation.VersionNumber(); ok {
		_spec.SetField(version.FieldVersionNumber, field.TypeInt, value)
	}
	if value, ok := vuo.mutation.AddedVersionNumber(); ok {
		_spec.AddField(version.FieldVersionNumber, field.TypeInt, value)
	}
	if value, ok := vuo.mutation.MajorVersion(); ok {
		_spec.SetField(version.FieldMajorVersion, field.TypeInt, value)
	}
	if value, ok := vuo.mutation.AddedMajorVersion(); ok {
		_spec.AddField(version.FieldMajorVersion, field.TypeInt, value)
	}
	if value, ok := vuo.mutation.MinorVersion(); ok {
		_spec.SetField(version.FieldMinorVersion, field.TypeInt, value)
	}
	if value, ok := vuo.mutation.AddedMinorVersion(); ok {
		_spec.AddField(version.FieldMinorVersion, field.TypeInt, value)
	}
	if value, ok := vuo.mutation.VersionLabel(); ok {
		_spec.SetField(version.FieldVersionLabel, field.TypeString, value)
	}
	if value, ok := vuo.mutation.MajorFlag(); ok {
		_spec.SetField(version.FieldMajorFlag, field.TypeBool, value)
	}
	if value, ok := vuo.mutation.ContentID(); ok {
		_spec.SetField(version.FieldContentID, field.TypeString, value)
	}
	if value, ok := vuo.mutation.MimeType(); ok {
		_spec.SetField(version.FieldMimeType, field.TypeString, value)
	}
	if vuo.mutation.MimeTypeCleared() {
		_spec.ClearField(version.FieldMimeType, field.TypeString)
	}
	if value, ok := vuo.mutation.FileSize(); ok {
		_spec.SetField(version.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := vuo.mutation.AddedFileSize(); ok {
		_spec.AddField(version.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := vuo.mutation.ContentHash(); ok {
		_spec.SetField(version.FieldContentHash, field.TypeString, value)
	}
	if vuo.mutation.ContentHashCleared() {
		_spec.ClearField(version.FieldContentHash, field.TypeString)
	}
	if value, ok := vuo.mutation.Comment(); ok {
		_spec.SetField(version.FieldComment, field.TypeString, value)
	}
	if vuo.mutation.CommentCleared() {
		_spec.ClearField(version.FieldComment, field.TypeString)
	}
	if value, ok := vuo.mutation.CreatedBy(); ok {
		_spec.SetField(version.FieldCreatedBy, field.TypeString, value)
	}
	if vuo.mutation.CreatedByCleared() {
		_spec.ClearField(version.FieldCreatedBy, field.TypeString)
	}
	if value, ok := vuo.mutation.CreatedAt(); ok {
		_spec.SetField(version.FieldCreatedAt, field.TypeTime, value)
	}
	if vuo.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   version.DocumentTable,
			Columns: []string{version.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := vuo.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   version.DocumentTable,
			Columns: []string{version.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Version{config: vuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, vuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{version.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	vuo.mutation.done = true
	return _node, nil
}
