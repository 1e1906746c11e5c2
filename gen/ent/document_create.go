// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docshelf/docshelf/gen/ent/document"
	"github.com/docshelf/docshelf/gen/ent/version"
	"github.com/google/uuid"
)

// DocumentCreate is the builder for creating a Document entity.
type DocumentCreate struct {
	config
	mutation *DocumentMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (dc *DocumentCreate) SetName(s string) *DocumentCreate {
	dc.mutation.SetName(s)
	return dc
}

// SetParentFolderID sets the "parent_folder_id" field.
func (dc *DocumentCreate) SetParentFolderID(u uuid.UUID) *DocumentCreate {
	dc.mutation.SetParentFolderID(u)
	return dc
}

// SetNillableParentFolderID sets the "parent_folder_id" field if the given value is not nil.
func (dc *DocumentCreate) SetNillableParentFolderID(u *uuid.UUID) *DocumentCreate {
	if u != nil {
		dc.SetParentFolderID(*u)
	}
	return dc
}

// SetMimeType sets the "mime_type" field.
func (dc *DocumentCreate) SetMimeType(s string) *DocumentCreate {
	dc.mutation.SetMimeType(s)
	return dc
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (dc *DocumentCreate) SetNillableMimeType(s *string) *DocumentCreate {
	if s != nil {
		dc.SetMimeType(*s)
	}
	return dc
}

// SetFileSize sets the "file_size" field.
func (dc *DocumentCreate) SetFileSize(i int64) *DocumentCreate {
	dc.mutation.SetFileSize(i)
	return dc
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (dc *DocumentCreate) SetNillableFileSize(i *int64) *DocumentCreate {
	if i != nil {
		dc.SetFileSize(*i)
	}
	return dc
}

// SetContentID sets the "content_id" field.
func (dc *DocumentCreate) SetContentID(s string) *DocumentCreate {
	dc.mutation.SetContentID(s)
	return dc
}

// SetContentHash sets the "content_hash" field.
func (dc *DocumentCreate) SetContentHash(s string) *DocumentCreate {
	dc.mutation.SetContentHash(s)
	return dc
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (dc *DocumentCreate) SetNillableContentHash(s *string) *DocumentCreate {
	if s != nil {
		dc.SetContentHash(*s)
	}
	return dc
}

// SetTextContent sets the "text_content" field.
func (dc *DocumentCreate) SetTextContent(s string) *DocumentCreate {
	dc.mutation.SetTextContent(s)
	return dc
}

// SetNillableTextContent sets the "text_content" field if the given value is not nil.
func (dc *DocumentCreate) SetNillableTextContent(s *string) *DocumentCreate {
	if s != nil {
		dc.SetTextContent(*s)
	}
	return dc
}

// SetMetadata sets the "metadata" field.
func (dc *DocumentCreate) SetMetadata(m map[string]string) *DocumentCreate {
	dc.mutation.SetMetadata(m)
	return dc
}

// SetTags sets the "tags" field.
func (dc *DocumentCreate) SetTags(s []string) *DocumentCreate {
	dc.mutation.SetTags(s)
	return dc
}

// SetCategories sets the "categories" field.
func (dc *DocumentCreate) SetCategories(s []string) *DocumentCreate {
	dc.mutation.SetCategories(s)
	return dc
}

// SetCorrespondent sets the "correspondent" field.
func (dc *DocumentCreate) SetCorrespondent(s string) *DocumentCreate {
	dc.mutation.SetCorrespondent(s)
	return dc
}

// SetNillableCorrespondent sets the "correspondent" field if the given value is not nil.
func (dc *DocumentCreate) SetNillableCorrespondent(s *string) *DocumentCreate {
	if s != nil {
		dc.SetCorrespondent(*s)
	}
	return dc
}

// SetStatus sets the "status" field.
func (dc *DocumentCreate) SetStatus(s string) *DocumentCreate {
	dc.mutation.SetStatus(s)
	return dc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (dc *DocumentCreate) SetNillableStatus(s *string) *DocumentCreate {
	if s != nil {
		dc.SetStatus(*s)
	}
	return dc
}

// SetVersioned sets the "versioned" field.
func (dc *DocumentCreate) SetVersioned(b bool) *DocumentCreate {
	dc.mutation.SetVersioned(b)
	return dc
}

// SetNillableVersioned sets the "versioned" field if the given value is not nil.
func (dc *DocumentCreate) SetNillableVersioned(b *bool) *DocumentCreate {
	if b != nil {
		dc.SetVersioned(*b)
	}
	return dc
}

// SetMajorVersion sets the "major_version" field.
func (dc *DocumentCreate) SetMajorVersion(i int) *DocumentCreate {
	dc.mutation.SetMajorVersion(i)
	return dc
}

// SetNillableMajorVersion sets the "major_version" field if the given value is not nil.
func (dc *DocumentCreate) SetNillableMajorVersion(i *int) *DocumentCreate {
	if i != nil {
		dc.SetMajorVersion(*i)
	}
	return dc
}

// SetMinorVersion sets the "minor_version" field.
func (dc *DocumentCreate) SetMinorVersion(i int) *DocumentCreate {
	dc.mutation.SetMinorVersion(i)
	return dc
}

// SetNillableMinorVersion sets the "minor_version" field if the given value is not nil.
func (dc *DocumentCreate) SetNillableMinorVersion(i *int) *DocumentCreate {
	if i != nil {
		dc.SetMinorVersion(*i)
	}
	return dc
}

// SetVersionLabel sets the "version_label" field.
func (dc *DocumentCreate) SetVersionLabel(s string) *DocumentCreate {
	dc.mutation.SetVersionLabel(s)
	return dc
}

// SetNillableVersionLabel sets the "version_label" field if the given value is not nil.
func (dc *DocumentCreate) SetNillableVersionLabel(s *string) *DocumentCreate {
	if s != nil {
		dc.SetVersionLabel(*s)
	}
	return dc
}

// SetCurrentVersionID sets the "current_version_id" field.
func (dc *DocumentCreate) SetCurrentVersionID(u uuid.UUID) *DocumentCreate {
	dc.mutation.SetCurrentVersionID(u)
	return dc
}

// SetNillableCurrentVersionID sets the "current_version_id" field if the given value is not nil.
func (dc *DocumentCreate) SetNillableCurrentVersionID(u *uuid.UUID) *DocumentCreate {
	if u != nil {
		dc.SetCurrentVersionID(*u)
	}
	return dc
}

// SetPreviewStatus sets the "preview_status" field.
func (dc *DocumentCreate) SetPreviewStatus(s string) *DocumentCreate {
	dc.mutation.SetPreviewStatus(s)
	return dc
}

// SetNillablePreviewStatus sets the "preview_status" field if the given value is not nil.
func (dc *DocumentCreate) SetNillablePreviewStatus(s *string) *DocumentCreate {
	if s != nil {
		dc.SetPreviewStatus(*s)
	}
	return dc
}

// SetPreviewFailureReason sets the "preview_failure_reason" field.
func (dc *DocumentCreate) SetPreviewFailureReason(s string) *DocumentCreate {
	dc.mutation.SetPreviewFailureReason(s)
	return dc
}

// SetNillablePreviewFailureReason sets the "preview_failure_reason" field if the given value is not nil.
func (dc *DocumentCreate) SetNillablePreviewFailureReason(s *string) *DocumentCreate {
	if s != nil {
		dc.SetPreviewFailureReason(*s)
	}
	return dc
}

// SetPreviewLastUpdated sets the "preview_last_updated" field.
func (dc *DocumentCreate) SetPreviewLastUpdated(t time.Time) *DocumentCreate {
	dc.mutation.SetPreviewLastUpdated(t)
	return dc
}

// SetNillablePreviewLastUpdated sets the "preview_last_updated" field if the given value is not nil.
func (dc *DocumentCreate) SetNillablePreviewLastUpdated(t *time.Time) *DocumentCreate {
	if t != nil {
		dc.SetPreviewLastUpdated(*t)
	}
	return dc
}

// SetCreatedBy sets the "created_by" field.
func (dc *DocumentCreate) SetCreatedBy(s string) *DocumentCreate {
	dc.mutation.SetCreatedBy(s)
	return dc
}

// SetCreatedAt sets the "created_at" field.
func (dc *DocumentCreate) SetCreatedAt(t time.Time) *DocumentCreate {
	dc.mutation.SetCreatedAt(t)
	return dc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (dc *DocumentCreate) SetNillableCreatedAt(t *time.Time) *DocumentCreate {
	if t != nil {
		dc.SetCreatedAt(*t)
	}
	return dc
}

// SetUpdatedAt sets the "updated_at" field.
func (dc *DocumentCreate) SetUpdatedAt(t time.Time) *DocumentCreate {
	dc.mutation.SetUpdatedAt(t)
	return dc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (dc *DocumentCreate) SetNillableUpdatedAt(t *time.Time) *DocumentCreate {
	if t != nil {
		dc.SetUpdatedAt(*t)
	}
	return dc
}

// SetID sets the "id" field.
func (dc *DocumentCreate) SetID(u uuid.UUID) *DocumentCreate {
	dc.mutation.SetID(u)
	return dc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (dc *DocumentCreate) SetNillableID(u *uuid.UUID) *DocumentCreate {
	if u != nil {
		dc.SetID(*u)
	}
	return dc
}

// AddVersionIDs adds the "versions" edge to the Version entity by IDs.
func (dc *DocumentCreate) AddVersionIDs(ids ...uuid.UUID) *DocumentCreate {
	dc.mutation.AddVersionIDs(ids...)
	return dc
}

// AddVersions adds the "versions" edges to the Version entity.
func (dc *DocumentCreate) AddVersions(v ...*Version) *DocumentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return dc.AddVersionIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (dc *DocumentCreate) Mutation() *DocumentMutation {
	return dc.mutation
}

// Save creates the Document in the database.
func (dc *DocumentCreate) Save(ctx context.Context) (*Document, error) {
	dc.defaults()
	return withHooks(ctx, dc.sqlSave, dc.mutation, dc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (dc *DocumentCreate) SaveX(ctx context.Context) *Document {
	v, err := dc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (dc *DocumentCreate) Exec(ctx context.Context) error {
	_, err := dc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dc *DocumentCreate) ExecX(ctx context.Context) {
	if err := dc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (dc *DocumentCreate) defaults() {
	if _, ok := dc.mutation.FileSize(); !ok {
		v := document.DefaultFileSize
		dc.mutation.SetFileSize(v)
	}
	if _, ok := dc.mutation.Status(); !ok {
		v := document.DefaultStatus
		dc.mutation.SetStatus(v)
	}
	if _, ok := dc.mutation.Versioned(); !ok {
		v := document.DefaultVersioned
		dc.mutation.SetVersioned(v)
	}
	if _, ok := dc.mutation.MajorVersion(); !ok {
		v := document.DefaultMajorVersion
		dc.mutation.SetMajorVersion(v)
	}
	if _, ok := dc.mutation.MinorVersion(); !ok {
		v := document.DefaultMinorVersion
		dc.mutation.SetMinorVersion(v)
	}
	if _, ok := dc.mutation.CreatedAt(); !ok {
		v := document.DefaultCreatedAt()
		dc.mutation.SetCreatedAt(v)
	}
	if _, ok := dc.mutation.UpdatedAt(); !ok {
		v := document.DefaultUpdatedAt()
		dc.mutation.SetUpdatedAt(v)
	}
	if _, ok := dc.mutation.ID(); !ok {
		v := document.DefaultID()
		dc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (dc *DocumentCreate) check() error {
	if _, ok := dc.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Document.name"`)}
	}
	if v, ok := dc.mutation.Name(); ok {
		if err := document.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Document.name": %w`, err)}
		}
	}
	if _, ok := dc.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "Document.file_size"`)}
	}
	if _, ok := dc.mutation.ContentID(); !ok {
		return &ValidationError{Name: "content_id", err: errors.New(`ent: missing required field "Document.content_id"`)}
	}
	if v, ok := dc.mutation.ContentID(); ok {
		if err := document.ContentIDValidator(v); err != nil {
			return &ValidationError{Name: "content_id", err: fmt.Errorf(`ent: validator failed for field "Document.content_id": %w`, err)}
		}
	}
	if _, ok := dc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Document.status"`)}
	}
	if v, ok := dc.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	if _, ok := dc.mutation.Versioned(); !ok {
		return &ValidationError{Name: "versioned", err: errors.New(`ent: missing required field "Document.versioned"`)}
	}
	if _, ok := dc.mutation.MajorVersion(); !ok {
		return &ValidationError{Name: "major_version", err: errors.New(`ent: missing required field "Document.major_version"`)}
	}
	if _, ok := dc.mutation.MinorVersion(); !ok {
		return &ValidationError{Name: "minor_version", err: errors.New(`ent: missing required field "Document.minor_version"`)}
	}
	if v, ok := dc.mutation.PreviewStatus(); ok {
		if err := document.PreviewStatusValidator(v); err != nil {
			return &ValidationError{Name: "preview_status", err: fmt.Errorf(`ent: validator failed for field "Document.preview_status": %w`, err)}
		}
	}
	if _, ok := dc.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "Document.created_by"`)}
	}
	if v, ok := dc.mutation.CreatedBy(); ok {
		if err := document.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "Document.created_by": %w`, err)}
		}
	}
	if _, ok := dc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Document.created_at"`)}
	}
	if _, ok := dc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Document.updated_at"`)}
	}
	return nil
}

func (dc *DocumentCreate) sqlSave(ctx context.Context) (*Document, error) {
	if err := dc.check(); err != nil {
		return nil, err
	}
	_node, _spec := dc.createSpec()
	if err := sqlgraph.CreateNode(ctx, dc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	dc.mutation.id = &_node.ID
	dc.mutation.done = true
	return _node, nil
}

func (dc *DocumentCreate) createSpec() (*Document, *sqlgraph.CreateSpec) {
	var (
		_node = &Document{config: dc.config}
		_spec = sqlgraph.NewCreateSpec(document.Table, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	)
	if id, ok := dc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := dc.mutation.Name(); ok {
		_spec.SetField(document.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := dc.mutation.ParentFolderID(); ok {
		_spec.SetField(document.FieldParentFolderID, field.TypeUUID, value)
		_node.ParentFolderID = &value
	}
	if value, ok := dc.mutation.MimeType(); ok {
		_spec.SetField(document.FieldMimeType, field.TypeString, value)
		_node.MimeType = value
	}
	if value, ok := dc.mutation.FileSize(); ok {
		_spec.SetField(document.FieldFileSize, field.TypeInt64, value)
		_node.FileSize = value
	}
	if value, ok := dc.mutation.ContentID(); ok {
		_spec.SetField(document.FieldContentID, field.TypeString, value)
		_node.ContentID = value
	}
	if value, ok := dc.mutation.ContentHash(); ok {
		_spec.SetField(document.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := dc.mutation.TextContent(); ok {
		_spec.SetField(document.FieldTextContent, field.TypeString, value)
		_node.TextContent = value
	}
	if value, ok := dc.mutation.Metadata(); ok {
		_spec.SetField(document.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := dc.mutation.Tags(); ok {
		_spec.SetField(document.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := dc.mutation.Categories(); ok {
		_spec.SetField(document.FieldCategories, field.TypeJSON, value)
		_node.Categories = value
	}
	if value, ok := dc.mutation.Correspondent(); ok {
		_spec.SetField(document.FieldCorrespondent, field.TypeString, value)
		_node.Correspondent = &value
	}
	if value, ok := dc.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := dc.mutation.Versioned(); ok {
		_spec.SetField(document.FieldVersioned, field.TypeBool, value)
		_node.Versioned = value
	}
	if value, ok := dc.mutation.MajorVersion(); ok {
		_spec.SetField(document.FieldMajorVersion, field.TypeInt, value)
		_node.MajorVersion = value
	}
	if value, ok := dc.mutation.MinorVersion(); ok {
		_spec.SetField(document.FieldMinorVersion, field.TypeInt, value)
		_node.MinorVersion = value
	}
	if value, ok := dc.mutation.VersionLabel(); ok {
		_spec.SetField(document.FieldVersionLabel, field.TypeString, value)
		_node.VersionLabel = value
	}
	if value, ok := dc.mutation.CurrentVersionID(); ok {
		_spec.SetField(document.FieldCurrentVersionID, field.TypeUUID, value)
		_node.CurrentVersionID = &value
	}
	if value, ok := dc.mutation.PreviewStatus(); ok {
		_spec.SetField(document.FieldPreviewStatus, field.TypeString, value)
		_node.PreviewStatus = value
	}
	if value, ok := dc.mutation.PreviewFailureReason(); ok {
		_spec.SetField(document.FieldPreviewFailureReason, field.TypeString, value)
		_node.PreviewFailureReason = value
	}
	if value, ok := dc.mutation.PreviewLastUpdated(); ok {
		_spec.SetField(document.FieldPreviewLastUpdated, field.TypeTime, value)
		_node.PreviewLastUpdated = &value
	}
	if value, ok := dc.mutation.CreatedBy(); ok {
		_spec.SetField(document.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := dc.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := dc.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := dc.mutation.VersionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DocumentCreateBulk is the builder for creating many Document entities in bulk.
type DocumentCreateBulk struct {
	config
	err      error
	builders []*DocumentCreate
}

// Save creates the Document entities in the database.
func (dcb *DocumentCreateBulk) Save(ctx context.Context) ([]*Document, error) {
	if dcb.err != nil {
		return nil, dcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(dcb.builders))
	nodes := make([]*Document, len(dcb.builders))
	mutators := make([]Mutator, len(dcb.builders))
	for i := range dcb.builders {
		func(i int, root context.Context) {
			builder := dcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, dcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, dcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, dcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (dcb *DocumentCreateBulk) SaveX(ctx context.Context) []*Document {
	v, err := dcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (dcb *DocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := dcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dcb *DocumentCreateBulk) ExecX(ctx context.Context) {
	if err := dcb.Exec(ctx); err != nil {
		panic(err)
	}
}
