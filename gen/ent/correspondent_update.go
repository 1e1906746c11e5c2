// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docshelf/docshelf/gen/ent/correspondent"
	"github.com/docshelf/docshelf/gen/ent/predicate"
)

// CorrespondentUpdate is the builder for updating Correspondent entities.
type CorrespondentUpdate struct {
	config
	hooks    []Hook
	mutation *CorrespondentMutation
}

// Where appends a list predicates to the CorrespondentUpdate builder.
func (cu *CorrespondentUpdate) Where(ps ...predicate.Correspondent) *CorrespondentUpdate {
	cu.mutation.Where(ps...)
	return cu
}

// SetName sets the "name" field.
func (cu *CorrespondentUpdate) SetName(s string) *CorrespondentUpdate {
	cu.mutation.SetName(s)
	return cu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (cu *CorrespondentUpdate) SetNillableName(s *string) *CorrespondentUpdate {
	if s != nil {
		cu.SetName(*s)
	}
	return cu
}

// SetMatchPattern sets the "match_pattern" field.
func (cu *CorrespondentUpdate) SetMatchPattern(s string) *CorrespondentUpdate {
	cu.mutation.SetMatchPattern(s)
	return cu
}

// SetNillableMatchPattern sets the "match_pattern" field if the given value is not nil.
func (cu *CorrespondentUpdate) SetNillableMatchPattern(s *string) *CorrespondentUpdate {
	if s != nil {
		cu.SetMatchPattern(*s)
	}
	return cu
}

// ClearMatchPattern clears the value of the "match_pattern" field.
func (cu *CorrespondentUpdate) ClearMatchPattern() *CorrespondentUpdate {
	cu.mutation.ClearMatchPattern()
	return cu
}

// SetMatchAlgorithm sets the "match_algorithm" field.
func (cu *CorrespondentUpdate) SetMatchAlgorithm(s string) *CorrespondentUpdate {
	cu.mutation.SetMatchAlgorithm(s)
	return cu
}

// SetNillableMatchAlgorithm sets the "match_algorithm" field if the given value is not nil.
func (cu *CorrespondentUpdate) SetNillableMatchAlgorithm(s *string) *CorrespondentUpdate {
	if s != nil {
		cu.SetMatchAlgorithm(*s)
	}
	return cu
}

// SetInsensitive sets the "insensitive" field.
func (cu *CorrespondentUpdate) SetInsensitive(b bool) *CorrespondentUpdate {
	cu.mutation.SetInsensitive(b)
	return cu
}

// SetNillableInsensitive sets the "insensitive" field if the given value is not nil.
func (cu *CorrespondentUpdate) SetNillableInsensitive(b *bool) *CorrespondentUpdate {
	if b != nil {
		cu.SetInsensitive(*b)
	}
	return cu
}

// Mutation returns the CorrespondentMutation object of the builder.
func (cu *CorrespondentUpdate) Mutation() *CorrespondentMutation {
	return cu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (cu *CorrespondentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, cu.sqlSave, cu.mutation, cu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cu *CorrespondentUpdate) SaveX(ctx context.Context) int {
	affected, err := cu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (cu *CorrespondentUpdate) Exec(ctx context.Context) error {
	_, err := cu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cu *CorrespondentUpdate) ExecX(ctx context.Context) {
	if err := cu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cu *CorrespondentUpdate) check() error {
	if v, ok := cu.mutation.Name(); ok {
		if err := correspondent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Correspondent.name": %w`, err)}
		}
	}
	if v, ok := cu.mutation.MatchAlgorithm(); ok {
		if err := correspondent.MatchAlgorithmValidator(v); err != nil {
			return &ValidationError{Name: "match_algorithm", err: fmt.Errorf(`ent: validator failed for field "Correspondent.match_algorithm": %w`, err)}
		}
	}
	return nil
}

func (cu *CorrespondentUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := cu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(correspondent.Table, correspondent.Columns, sqlgraph.NewFieldSpec(correspondent.FieldID, field.TypeUUID))
	if ps := cu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cu.mutation.Name(); ok {
		_spec.SetField(correspondent.FieldName, field.TypeString, value)
	}
	if value, ok := cu.mutation.MatchPattern(); ok {
		_spec.SetField(correspondent.FieldMatchPattern, field.TypeString, value)
	}
	if cu.mutation.MatchPatternCleared() {
		_spec.ClearField(correspondent.FieldMatchPattern, field.TypeString)
	}
	if value, ok := cu.mutation.MatchAlgorithm(); ok {
		_spec.SetField(correspondent.FieldMatchAlgorithm, field.TypeString, value)
	}
	if value, ok := cu.mutation.Insensitive(); ok {
		_spec.SetField(correspondent.FieldInsensitive, field.TypeBool, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, cu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{correspondent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	cu.mutation.done = true
	return n, nil
}

// CorrespondentUpdateOne is the builder for updating a single Correspondent entity.
type CorrespondentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CorrespondentMutation
}

// SetName sets the "name" field.
func (cuo *CorrespondentUpdateOne) SetName(s string) *CorrespondentUpdateOne {
	cuo.mutation.SetName(s)
	return cuo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (cuo *CorrespondentUpdateOne) SetNillableName(s *string) *CorrespondentUpdateOne {
	if s != nil {
		cuo.SetName(*s)
	}
	return cuo
}

// SetMatchPattern sets the "match_pattern" field.
func (cuo *CorrespondentUpdateOne) SetMatchPattern(s string) *CorrespondentUpdateOne {
	cuo.mutation.SetMatchPattern(s)
	return cuo
}

// SetNillableMatchPattern sets the "match_pattern" field if the given value is not nil.
func (cuo *CorrespondentUpdateOne) SetNillableMatchPattern(s *string) *CorrespondentUpdateOne {
	if s != nil {
		cuo.SetMatchPattern(*s)
	}
	return cuo
}

// ClearMatchPattern clears the value of the "match_pattern" field.
func (cuo *CorrespondentUpdateOne) ClearMatchPattern() *CorrespondentUpdateOne {
	cuo.mutation.ClearMatchPattern()
	return cuo
}

// SetMatchAlgorithm sets the "match_algorithm" field.
func (cuo *CorrespondentUpdateOne) SetMatchAlgorithm(s string) *CorrespondentUpdateOne {
	cuo.mutation.SetMatchAlgorithm(s)
	return cuo
}

// SetNillableMatchAlgorithm sets the "match_algorithm" field if the given value is not nil.
func (cuo *CorrespondentUpdateOne) SetNillableMatchAlgorithm(s *string) *CorrespondentUpdateOne {
	if s != nil {
		cuo.SetMatchAlgorithm(*s)
	}
	return cuo
}

// SetInsensitive sets the "insensitive" field.
func (cuo *CorrespondentUpdateOne) SetInsensitive(b bool) *CorrespondentUpdateOne {
	cuo.mutation.SetInsensitive(b)
	return cuo
}

// SetNillableInsensitive sets the "insensitive" field if the given value is not nil.
func (cuo *CorrespondentUpdateOne) SetNillableInsensitive(b *bool) *CorrespondentUpdateOne {
	if b != nil {
		cuo.SetInsensitive(*b)
	}
	return cuo
}

// Mutation returns the CorrespondentMutation object of the builder.
func (cuo *CorrespondentUpdateOne) Mutation() *CorrespondentMutation {
	return cuo.mutation
}

// Where appends a list predicates to the CorrespondentUpdate builder.
func (cuo *CorrespondentUpdateOne) Where(ps ...predicate.Correspondent) *CorrespondentUpdateOne {
	cuo.mutation.Where(ps...)
	return cuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (cuo *CorrespondentUpdateOne) Select(field string, fields ...string) *CorrespondentUpdateOne {
	cuo.fields = append([]string{field}, fields...)
	return cuo
}

// Save executes the query and returns the updated Correspondent entity.
func (cuo *CorrespondentUpdateOne) Save(ctx context.Context) (*Correspondent, error) {
	return withHooks(ctx, cuo.sqlSave, cuo.mutation, cuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cuo *CorrespondentUpdateOne) SaveX(ctx context.Context) *Correspondent {
	node, err := cuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (cuo *CorrespondentUpdateOne) Exec(ctx context.Context) error {
	_, err := cuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cuo *CorrespondentUpdateOne) ExecX(ctx context.Context) {
	if err := cuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cuo *CorrespondentUpdateOne) check() error {
	if v, ok := cuo.mutation.Name(); ok {
		if err := correspondent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Correspondent.name": %w`, err)}
		}
	}
	if v, ok := cuo.mutation.MatchAlgorithm(); ok {
		if err := correspondent.MatchAlgorithmValidator(v); err != nil {
			return &ValidationError{Name: "match_algorithm", err: fmt.Errorf(`ent: validator failed for field "Correspondent.match_algorithm": %w`, err)}
		}
	}
	return nil
}

func (cuo *CorrespondentUpdateOne) sqlSave(ctx context.Context) (_node *Correspondent, err error) {
	if err := cuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(correspondent.Table, correspondent.Columns, sqlgraph.NewFieldSpec(correspondent.FieldID, field.TypeUUID))
	id, ok := cuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Correspondent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := cuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, correspondent.FieldID)
		for _, f := range fields {
			if !correspondent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != correspondent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := cuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cuo.mutation.Name(); ok {
		_spec.SetField(correspondent.FieldName, field.TypeString, value)
	}
	if value, ok := cuo.mutation.MatchPattern(); ok {
		_spec.SetField(correspondent.FieldMatchPattern, field.TypeString, value)
	}
	if cuo.mutation.MatchPatternCleared() {
		_spec.ClearField(correspondent.FieldMatchPattern, field.TypeString)
	}
	if value, ok := cuo.mutation.MatchAlgorithm(); ok {
		_spec.SetField(correspondent.FieldMatchAlgorithm, field.TypeString, value)
	}
	if value, ok := cuo.mutation.Insensitive(); ok {
		_spec.SetField(correspondent.FieldInsensitive, field.TypeBool, value)
	}
	_node = &Correspondent{config: cuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, cuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{correspondent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	cuo.mutation.done = true
	return _node, nil
}
