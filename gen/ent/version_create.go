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

// VersionCreate is the builder for creating a Version entity.
type VersionCreate struct {
	config
	mutation *VersionMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (vc *VersionCreate) SetDocumentID(u uuid.UUID) *VersionCreate {
	vc.mutation.SetDocumentID(u)
	return vc
}

// SetVersionNumber sets the "version_number" field.
func (vc *VersionCreate) SetVersionNumber(i int) *VersionCreate {
	vc.mutation.SetVersionNumber(i)
	return vc
}

// SetMajorVersion sets the "major_version" field.
func (vc *VersionCreate) SetMajorVersion(i int) *VersionCreate {
	vc.mutation.SetMajorVersion(i)
	return vc
}

// SetNillableMajorVersion sets the "major_version" field if the given value is not nil.
func (vc *VersionCreate) SetNillableMajorVersion(i *int) *VersionCreate {
	if i != nil {
		vc.SetMajorVersion(*i)
	}
	return vc
}

// SetMinorVersion sets the "minor_version" field.
func (vc *VersionCreate) SetMinorVersion(i int) *VersionCreate {
	vc.mutation.SetMinorVersion(i)
	return vc
}

// SetNillableMinorVersion sets the "minor_version" field if the given value is not nil.
func (vc *VersionCreate) SetNillableMinorVersion(i *int) *VersionCreate {
	if i != nil {
		vc.SetMinorVersion(*i)
	}
	return vc
}

// SetVersionLabel sets the "version_label" field.
func (vc *VersionCreate) SetVersionLabel(s string) *VersionCreate {
	vc.mutation.SetVersionLabel(s)
	return vc
}

// SetMajorFlag sets the "major_flag" field.
func (vc *VersionCreate) SetMajorFlag(b bool) *VersionCreate {
	vc.mutation.SetMajorFlag(b)
	return vc
}

// SetNillableMajorFlag sets the "major_flag" field if the given value is not nil.
func (vc *VersionCreate) SetNillableMajorFlag(b *bool) *VersionCreate {
	if b != nil {
		vc.SetMajorFlag(*b)
	}
	return vc
}

// SetContentID sets the "content_id" field.
func (vc *VersionCreate) SetContentID(s string) *VersionCreate {
	vc.mutation.SetContentID(s)
	return vc
}

// SetMimeType sets the "mime_type" field.
func (vc *VersionCreate) SetMimeType(s string) *VersionCreate {
	vc.mutation.SetMimeType(s)
	return vc
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (vc *VersionCreate) SetNillableMimeType(s *string) *VersionCreate {
	if s != nil {
		vc.SetMimeType(*s)
	}
	return vc
}

// SetFileSize sets the "file_size" field.
func (vc *VersionCreate) SetFileSize(i int64) *VersionCreate {
	vc.mutation.SetFileSize(i)
	return vc
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (vc *VersionCreate) SetNillableFileSize(i *int64) *VersionCreate {
	if i != nil {
		vc.SetFileSize(*i)
	}
	return vc
}

// SetContentHash sets the "content_hash" field.
func (vc *VersionCreate) SetContentHash(s string) *VersionCreate {
	vc.mutation.SetContentHash(s)
	return vc
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (vc *VersionCreate) SetNillableContentHash(s *string) *VersionCreate {
	if s != nil {
		vc.SetContentHash(*s)
	}
	return vc
}

// SetComment sets the "comment" field.
func (vc *VersionCreate) SetComment(s string) *VersionCreate {
	vc.mutation.SetComment(s)
	return vc
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (vc *VersionCreate) SetNillableComment(s *string) *VersionCreate {
	if s != nil {
		vc.SetComment(*s)
	}
	return vc
}

// SetCreatedBy sets the "created_by" field.
func (vc *VersionCreate) SetCreatedBy(s string) *VersionCreate {
	vc.mutation.SetCreatedBy(s)
	return vc
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (vc *VersionCreate) SetNillableCreatedBy(s *string) *VersionCreate {
	if s != nil {
		vc.SetCreatedBy(*s)
	}
	return vc
}

// SetCreatedAt sets the "created_at" field.
func (vc *VersionCreate) SetCreatedAt(t time.Time) *VersionCreate {
	vc.mutation.SetCreatedAt(t)
	return vc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (vc *VersionCreate) SetNillableCreatedAt(t *time.Time) *VersionCreate {
	if t != nil {
		vc.SetCreatedAt(*t)
	}
	return vc
}

// SetID sets the "id" field.
func (vc *VersionCreate) SetID(u uuid.UUID) *VersionCreate {
	vc.mutation.SetID(u)
	return vc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (vc *VersionCreate) SetNillableID(u *uuid.UUID) *VersionCreate {
	if u != nil {
		vc.SetID(*u)
	}
	return vc
}

// SetDocument sets the "document" edge to the Document entity.
func (vc *VersionCreate) SetDocument(d *Document) *VersionCreate {
	return vc.SetDocumentID(d.ID)
}

// Mutation returns the VersionMutation object of the builder.
func (vc *VersionCreate) Mutation() *VersionMutation {
	return vc.mutation
}

// Save creates the Version in the database.
func (vc *VersionCreate) Save(ctx context.Context) (*Version, error) {
	vc.defaults()
	return withHooks(ctx, vc.sqlSave, vc.mutation, vc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (vc *VersionCreate) SaveX(ctx context.Context) *Version {
	v, err := vc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (vc *VersionCreate) Exec(ctx context.Context) error {
	_, err := vc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (vc *VersionCreate) ExecX(ctx context.Context) {
	if err := vc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (vc *VersionCreate) defaults() {
	if _, ok := vc.mutation.MajorVersion(); !ok {
		v := version.DefaultMajorVersion
		vc.mutation.SetMajorVersion(v)
	}
	if _, ok := vc.mutation.MinorVersion(); !ok {
		v := version.DefaultMinorVersion
		vc.mutation.SetMinorVersion(v)
	}
	if _, ok := vc.mutation.MajorFlag(); !ok {
		v := version.DefaultMajorFlag
		vc.mutation.SetMajorFlag(v)
	}
	if _, ok := vc.mutation.FileSize(); !ok {
		v := version.DefaultFileSize
		vc.mutation.SetFileSize(v)
	}
	if _, ok := vc.mutation.CreatedAt(); !ok {
		v := version.DefaultCreatedAt()
		vc.mutation.SetCreatedAt(v)
	}
	if _, ok := vc.mutation.ID(); !ok {
		v := version.DefaultID()
		vc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (vc *VersionCreate) check() error {
	if _, ok := vc.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "Version.document_id"`)}
	}
	if _, ok := vc.mutation.VersionNumber(); !ok {
		return &ValidationError{Name: "version_number", err: errors.New(`ent: missing required field "Version.version_number"`)}
	}
	if v, ok := vc.mutation.VersionNumber(); ok {
		if err := version.VersionNumberValidator(v); err != nil {
			return &ValidationError{Name: "version_number", err: fmt.Errorf(`ent: validator failed for field "Version.version_number": %w`, err)}
		}
	}
	if _, ok := vc.mutation.MajorVersion(); !ok {
		return &ValidationError{Name: "major_version", err: errors.New(`ent: missing required field "Version.major_version"`)}
	}
	if _, ok := vc.mutation.MinorVersion(); !ok {
		return &ValidationError{Name: "minor_version", err: errors.New(`ent: missing required field "Version.minor_version"`)}
	}
	if _, ok := vc.mutation.VersionLabel(); !ok {
		return &ValidationError{Name: "version_label", err: errors.New(`ent: missing required field "Version.version_label"`)}
	}
	if v, ok := vc.mutation.VersionLabel(); ok {
		if err := version.VersionLabelValidator(v); err != nil {
			return &ValidationError{Name: "version_label", err: fmt.Errorf(`ent: validator failed for field "Version.version_label": %w`, err)}
		}
	}
	if _, ok := vc.mutation.MajorFlag(); !ok {
		return &ValidationError{Name: "major_flag", err: errors.New(`ent: missing required field "Version.major_flag"`)}
	}
	if _, ok := vc.mutation.ContentID(); !ok {
		return &ValidationError{Name: "content_id", err: errors.New(`ent: missing required field "Version.content_id"`)}
	}
	if v, ok := vc.mutation.ContentID(); ok {
		if err := version.ContentIDValidator(v); err != nil {
			return &ValidationError{Name: "content_id", err: fmt.Errorf(`ent: validator failed for field "Version.content_id": %w`, err)}
		}
	}
	if _, ok := vc.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "Version.file_size"`)}
	}
	if _, ok := vc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Version.created_at"`)}
	}
	if len(vc.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "Version.document"`)}
	}
	return nil
}

func (vc *VersionCreate) sqlSave(ctx context.Context) (*Version, error) {
	if err := vc.check(); err != nil {
		return nil, err
	}
	_node, _spec := vc.createSpec()
	if err := sqlgraph.CreateNode(ctx, vc.driver, _spec); err != nil {
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
	vc.mutation.id = &_node.ID
	vc.mutation.done = true
	return _node, nil
}

func (vc *VersionCreate) createSpec() (*Version, *sqlgraph.CreateSpec) {
	var (
		_node = &Version{config: vc.config}
		_spec = sqlgraph.NewCreateSpec(version.Table, sqlgraph.NewFieldSpec(version.FieldID, field.TypeUUID))
	)
	if id, ok := vc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := vc.mutation.VersionNumber(); ok {
		_spec.SetField(version.FieldVersionNumber, field.TypeInt, value)
		_node.VersionNumber = value
	}
	if value, ok := vc.mutation.MajorVersion(); ok {
		_spec.SetField(version.FieldMajorVersion, field.TypeInt, value)
		_node.MajorVersion = value
	}
	if value, ok := vc.mutation.MinorVersion(); ok {
		_spec.SetField(version.FieldMinorVersion, field.TypeInt, value)
		_node.MinorVersion = value
	}
	if value, ok := vc.mutation.VersionLabel(); ok {
		_spec.SetField(version.FieldVersionLabel, field.TypeString, value)
		_node.VersionLabel = value
	}
	if value, ok := vc.mutation.MajorFlag(); ok {
		_spec.SetField(version.FieldMajorFlag, field.TypeBool, value)
		_node.MajorFlag = value
	}
	if value, ok := vc.mutation.ContentID(); ok {
		_spec.SetField(version.FieldContentID, field.TypeString, value)
		_node.ContentID = value
	}
	if value, ok := vc.mutation.MimeType(); ok {
		_spec.SetField(version.FieldMimeType, field.TypeString, value)
		_node.MimeType = value
	}
	if value, ok := vc.mutation.FileSize(); ok {
		_spec.SetField(version.FieldFileSize, field.TypeInt64, value)
		_node.FileSize = value
	}
	if value, ok := vc.mutation.ContentHash(); ok {
		_spec.SetField(version.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := vc.mutation.Comment(); ok {
		_spec.SetField(version.FieldComment, field.TypeString, value)
		_node.Comment = value
	}
	if value, ok := vc.mutation.CreatedBy(); ok {
		_spec.SetField(version.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := vc.mutation.CreatedAt(); ok {
		_spec.SetField(version.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := vc.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// VersionCreateBulk is the builder for creating many Version entities in bulk.
type VersionCreateBulk struct {
	config
	err      error
	builders []*VersionCreate
}

// Save creates the Version entities in the database.
func (vcb *VersionCreateBulk) Save(ctx context.Context) ([]*Version, error) {
	if vcb.err != nil {
		return nil, vcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(vcb.builders))
	nodes := make([]*Version, len(vcb.builders))
	mutators := make([]Mutator, len(vcb.builders))
	for i := range vcb.builders {
		func(i int, root context.Context) {
			builder := vcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VersionMutation)
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
					_, err = mutators[i+1].Mutate(root, vcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, vcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, vcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (vcb *VersionCreateBulk) SaveX(ctx context.Context) []*Version {
	v, err := vcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (vcb *VersionCreateBulk) Exec(ctx context.Context) error {
	_, err := vcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (vcb *VersionCreateBulk) ExecX(ctx context.Context) {
	if err := vcb.Exec(ctx); err != nil {
		panic(err)
	}
}
