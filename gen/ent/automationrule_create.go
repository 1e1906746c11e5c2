// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docshelf/docshelf/gen/ent/automationrule"
	"github.com/google/uuid"
)

// AutomationRuleCreate is the builder for creating a AutomationRule entity.
type AutomationRuleCreate struct {
	config
	mutation *AutomationRuleMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (arc *AutomationRuleCreate) SetName(s string) *AutomationRuleCreate {
	arc.mutation.SetName(s)
	return arc
}

// SetTrigger sets the "trigger" field.
func (arc *AutomationRuleCreate) SetTrigger(s string) *AutomationRuleCreate {
	arc.mutation.SetTrigger(s)
	return arc
}

// SetEnabled sets the "enabled" field.
func (arc *AutomationRuleCreate) SetEnabled(b bool) *AutomationRuleCreate {
	arc.mutation.SetEnabled(b)
	return arc
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (arc *AutomationRuleCreate) SetNillableEnabled(b *bool) *AutomationRuleCreate {
	if b != nil {
		arc.SetEnabled(*b)
	}
	return arc
}

// SetConditions sets the "conditions" field.
func (arc *AutomationRuleCreate) SetConditions(jm json.RawMessage) *AutomationRuleCreate {
	arc.mutation.SetConditions(jm)
	return arc
}

// SetActions sets the "actions" field.
func (arc *AutomationRuleCreate) SetActions(jm json.RawMessage) *AutomationRuleCreate {
	arc.mutation.SetActions(jm)
	return arc
}

// SetOwner sets the "owner" field.
func (arc *AutomationRuleCreate) SetOwner(s string) *AutomationRuleCreate {
	arc.mutation.SetOwner(s)
	return arc
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (arc *AutomationRuleCreate) SetNillableOwner(s *string) *AutomationRuleCreate {
	if s != nil {
		arc.SetOwner(*s)
	}
	return arc
}

// SetCreatedAt sets the "created_at" field.
func (arc *AutomationRuleCreate) SetCreatedAt(t time.Time) *AutomationRuleCreate {
	arc.mutation.SetCreatedAt(t)
	return arc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (arc *AutomationRuleCreate) SetNillableCreatedAt(t *time.Time) *AutomationRuleCreate {
	if t != nil {
		arc.SetCreatedAt(*t)
	}
	return arc
}

// SetUpdatedAt sets the "updated_at" field.
func (arc *AutomationRuleCreate) SetUpdatedAt(t time.Time) *AutomationRuleCreate {
	arc.mutation.SetUpdatedAt(t)
	return arc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (arc *AutomationRuleCreate) SetNillableUpdatedAt(t *time.Time) *AutomationRuleCreate {
	if t != nil {
		arc.SetUpdatedAt(*t)
	}
	return arc
}

// SetID sets the "id" field.
func (arc *AutomationRuleCreate) SetID(u uuid.UUID) *AutomationRuleCreate {
	arc.mutation.SetID(u)
	return arc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (arc *AutomationRuleCreate) SetNillableID(u *uuid.UUID) *AutomationRuleCreate {
	if u != nil {
		arc.SetID(*u)
	}
	return arc
}

// Mutation returns the AutomationRuleMutation object of the builder.
func (arc *AutomationRuleCreate) Mutation() *AutomationRuleMutation {
	return arc.mutation
}

// Save creates the AutomationRule in the database.
func (arc *AutomationRuleCreate) Save(ctx context.Context) (*AutomationRule, error) {
	arc.defaults()
	return withHooks(ctx, arc.sqlSave, arc.mutation, arc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (arc *AutomationRuleCreate) SaveX(ctx context.Context) *AutomationRule {
	v, err := arc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (arc *AutomationRuleCreate) Exec(ctx context.Context) error {
	_, err := arc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (arc *AutomationRuleCreate) ExecX(ctx context.Context) {
	if err := arc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (arc *AutomationRuleCreate) defaults() {
	if _, ok := arc.mutation.Enabled(); !ok {
		v := automationrule.DefaultEnabled
		arc.mutation.SetEnabled(v)
	}
	if _, ok := arc.mutation.CreatedAt(); !ok {
		v := automationrule.DefaultCreatedAt()
		arc.mutation.SetCreatedAt(v)
	}
	if _, ok := arc.mutation.UpdatedAt(); !ok {
		v := automationrule.DefaultUpdatedAt()
		arc.mutation.SetUpdatedAt(v)
	}
	if _, ok := arc.mutation.ID(); !ok {
		v := automationrule.DefaultID()
		arc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (arc *AutomationRuleCreate) check() error {
	if _, ok := arc.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "AutomationRule.name"`)}
	}
	if v, ok := arc.mutation.Name(); ok {
		if err := automationrule.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AutomationRule.name": %w`, err)}
		}
	}
	if _, ok := arc.mutation.Trigger(); !ok {
		return &ValidationError{Name: "trigger", err: errors.New(`ent: missing required field "AutomationRule.trigger"`)}
	}
	if v, ok := arc.mutation.Trigger(); ok {
		if err := automationrule.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "AutomationRule.trigger": %w`, err)}
		}
	}
	if _, ok := arc.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "AutomationRule.enabled"`)}
	}
	if _, ok := arc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AutomationRule.created_at"`)}
	}
	if _, ok := arc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AutomationRule.updated_at"`)}
	}
	return nil
}

func (arc *AutomationRuleCreate) sqlSave(ctx context.Context) (*AutomationRule, error) {
	if err := arc.check(); err != nil {
		return nil, err
	}
	_node, _spec := arc.createSpec()
	if err := sqlgraph.CreateNode(ctx, arc.driver, _spec); err != nil {
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
	arc.mutation.id = &_node.ID
	arc.mutation.done = true
	return _node, nil
}

func (arc *AutomationRuleCreate) createSpec() (*AutomationRule, *sqlgraph.CreateSpec) {
	var (
		_node = &AutomationRule{config: arc.config}
		_spec = sqlgraph.NewCreateSpec(automationrule.Table, sqlgraph.NewFieldSpec(automationrule.FieldID, field.TypeUUID))
	)
	if id, ok := arc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := arc.mutation.Name(); ok {
		_spec.SetField(automationrule.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := arc.mutation.Trigger(); ok {
		_spec.SetField(automationrule.FieldTrigger, field.TypeString, value)
		_node.Trigger = value
	}
	if value, ok := arc.mutation.Enabled(); ok {
		_spec.SetField(automationrule.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := arc.mutation.Conditions(); ok {
		_spec.SetField(automationrule.FieldConditions, field.TypeJSON, value)
		_node.Conditions = value
	}
	if value, ok := arc.mutation.Actions(); ok {
		_spec.SetField(automationrule.FieldActions, field.TypeJSON, value)
		_node.Actions = value
	}
	if value, ok := arc.mutation.Owner(); ok {
		_spec.SetField(automationrule.FieldOwner, field.TypeString, value)
		_node.Owner = value
	}
	if value, ok := arc.mutation.CreatedAt(); ok {
		_spec.SetField(automationrule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := arc.mutation.UpdatedAt(); ok {
		_spec.SetField(automationrule.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// AutomationRuleCreateBulk is the builder for creating many AutomationRule entities in bulk.
type AutomationRuleCreateBulk struct {
	config
	err      error
	builders []*AutomationRuleCreate
}

// Save creates the AutomationRule entities in the database.
func (arcb *AutomationRuleCreateBulk) Save(ctx context.Context) ([]*AutomationRule, error) {
	if arcb.err != nil {
		return nil, arcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(arcb.builders))
	nodes := make([]*AutomationRule, len(arcb.builders))
	mutators := make([]Mutator, len(arcb.builders))
	for i := range arcb.builders {
		func(i int, root context.Context) {
			builder := arcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AutomationRuleMutation)
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
					_, err = mutators[i+1].Mutate(root, arcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, arcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, arcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (arcb *AutomationRuleCreateBulk) SaveX(ctx context.Context) []*AutomationRule {
	v, err := arcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (arcb *AutomationRuleCreateBulk) Exec(ctx context.Context) error {
	_, err := arcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (arcb *AutomationRuleCreateBulk) ExecX(ctx context.Context) {
	if err := arcb.Exec(ctx); err != nil {
		panic(err)
	}
}
