// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docshelf/docshelf/gen/ent/correspondent"
	"github.com/google/uuid"
)

// CorrespondentCreate is the builder for creating a Correspondent entity.
type CorrespondentCreate struct {
	config
	mutation *CorrespondentMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (cc *CorrespondentCreate) SetName(s string) *CorrespondentCreate {
	cc.mutation.SetName(s)
	return cc
}

// SetMatchPattern sets the "match_pattern" field.
func (cc *CorrespondentCreate) SetMatchPattern(s string) *CorrespondentCreate {
	cc.mutation.SetMatchPattern(s)
	return cc
}

// SetNillableMatchPattern sets the "match_pattern" field if the given value is not nil.
func (cc *CorrespondentCreate) SetNillableMatchPattern(s *string) *CorrespondentCreate {
	if s != nil {
		cc.SetMatchPattern(*s)
	}
	return cc
}

// SetMatchAlgorithm sets the "match_algorithm" field.
func (cc *CorrespondentCreate) SetMatchAlgorithm(s string) *CorrespondentCreate {
	cc.mutation.SetMatchAlgorithm(s)
	return cc
}

// SetNillableMatchAlgorithm sets the "match_algorithm" field if the given value is not nil.
func (cc *CorrespondentCreate) SetNillableMatchAlgorithm(s *string) *CorrespondentCreate {
	if s != nil {
		cc.SetMatchAlgorithm(*s)
	}
	return cc
}

// SetInsensitive sets the "insensitive" field.
func (cc *CorrespondentCreate) SetInsensitive(b bool) *CorrespondentCreate {
	cc.mutation.SetInsensitive(b)
	return cc
}

// SetNillableInsensitive sets the "insensitive" field if the given value is not nil.
func (cc *CorrespondentCreate) SetNillableInsensitive(b *bool) *CorrespondentCreate {
	if b != nil {
		cc.SetInsensitive(*b)
	}
	return cc
}

// SetID sets the "id" field.
func (cc *CorrespondentCreate) SetID(u uuid.UUID) *CorrespondentCreate {
	cc.mutation.SetID(u)
	return cc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (cc *CorrespondentCreate) SetNillableID(u *uuid.UUID) *CorrespondentCreate {
	if u != nil {
		cc.SetID(*u)
	}
	return cc
}

// Mutation returns the CorrespondentMutation object of the builder.
func (cc *CorrespondentCreate) Mutation() *CorrespondentMutation {
	return cc.mutation
}

// Save creates the Correspondent in the database.
func (cc *CorrespondentCreate) Save(ctx context.Context) (*Correspondent, error) {
	cc.defaults()
	return withHooks(ctx, cc.sqlSave, cc.mutation, cc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (cc *CorrespondentCreate) SaveX(ctx context.Context) *Correspondent {
	v, err := cc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cc *CorrespondentCreate) Exec(ctx context.Context) error {
	_, err := cc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cc *CorrespondentCreate) ExecX(ctx context.Context) {
	if err := cc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cc *CorrespondentCreate) defaults() {
	if _, ok := cc.mutation.MatchAlgorithm(); !ok {
		v := correspondent.DefaultMatchAlgorithm
		cc.mutation.SetMatchAlgorithm(v)
	}
	if _, ok := cc.mutation.Insensitive(); !ok {
		v := correspondent.DefaultInsensitive
		cc.mutation.SetInsensitive(v)
	}
	if _, ok := cc.mutation.ID(); !ok {
		v := correspondent.DefaultID()
		cc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cc *CorrespondentCreate) check() error {
	if _, ok := cc.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Correspondent.name"`)}
	}
	if v, ok := cc.mutation.Name(); ok {
		if err := correspondent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Correspondent.name": %w`, err)}
		}
	}
	if _, ok := cc.mutation.MatchAlgorithm(); !ok {
		return &ValidationError{Name: "match_algorithm", err: errors.New(`ent: missing required field "Correspondent.match_algorithm"`)}
	}
	if v, ok := cc.mutation.MatchAlgorithm(); ok {
		if err := correspondent.MatchAlgorithmValidator(v); err != nil {
			return &ValidationError{Name: "match_algorithm", err: fmt.Errorf(`ent: validator failed for field "Correspondent.match_algorithm": %w`, err)}
		}
	}
	if _, ok := cc.mutation.Insensitive(); !ok {
		return &ValidationError{Name: "insensitive", err: errors.New(`ent: missing required field "Correspondent.insensitive"`)}
	}
	return nil
}

func (cc *CorrespondentCreate) sqlSave(ctx context.Context) (*Correspondent, error) {
	if err := cc.check(); err != nil {
		return nil, err
	}
	_node, _spec := cc.createSpec()
	if err := sqlgraph.CreateNode(ctx, cc.driver, _spec); err != nil {
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
	cc.mutation.id = &_node.ID
	cc.mutation.done = true
	return _node, nil
}

func (cc *CorrespondentCreate) createSpec() (*Correspondent, *sqlgraph.CreateSpec) {
	var (
		_node = &Correspondent{config: cc.config}
		_spec = sqlgraph.NewCreateSpec(correspondent.Table, sqlgraph.NewFieldSpec(correspondent.FieldID, field.TypeUUID))
	)
	if id, ok := cc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := cc.mutation.Name(); ok {
		_spec.SetField(correspondent.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := cc.mutation.MatchPattern(); ok {
		_spec.SetField(correspondent.FieldMatchPattern, field.TypeString, value)
		_node.MatchPattern = value
	}
	if value, ok := cc.mutation.MatchAlgorithm(); ok {
		_spec.SetField(correspondent.FieldMatchAlgorithm, field.TypeString, value)
		_node.MatchAlgorithm = value
	}
	if value, ok := cc.mutation.Insensitive(); ok {
		_spec.SetField(correspondent.FieldInsensitive, field.TypeBool, value)
		_node.Insensitive = value
	}
	return _node, _spec
}

// CorrespondentCreateBulk is the builder for creating many Correspondent entities in bulk.
type CorrespondentCreateBulk struct {
	config
	err      error
	builders []*CorrespondentCreate
}

// Save creates the Correspondent entities in the database.
func (ccb *CorrespondentCreateBulk) Save(ctx context.Context) ([]*Correspondent, error) {
	if ccb.err != nil {
		return nil, ccb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ccb.builders))
	nodes := make([]*Correspondent, len(ccb.builders))
	mutators := make([]Mutator, len(ccb.builders))
	for i := range ccb.builders {
		func(i int, root context.Context) {
			builder := ccb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CorrespondentMutation)
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
					_, err = mutators[i+1].Mutate(root, ccb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ccb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, ccb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ccb *CorrespondentCreateBulk) SaveX(ctx context.Context) []*Correspondent {
	v, err := ccb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ccb *CorrespondentCreateBulk) Exec(ctx context.Context) error {
	_, err := ccb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ccb *CorrespondentCreateBulk) ExecX(ctx context.Context) {
	if err := ccb.Exec(ctx); err != nil {
		panic(err)
	}
}
