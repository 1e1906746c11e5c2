// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/docshelf/docshelf/gen/ent/automationrule"
	"github.com/docshelf/docshelf/gen/ent/predicate"
)

// AutomationRuleUpdate is the builder for updating AutomationRule entities.
type AutomationRuleUpdate struct {
	config
	hooks    []Hook
	mutation *AutomationRuleMutation
}

// Where appends a list predicates to the AutomationRuleUpdate builder.
func (aru *AutomationRuleUpdate) Where(ps ...predicate.AutomationRule) *AutomationRuleUpdate {
	aru.mutation.Where(ps...)
	return aru
}

// SetName sets the "name" field.
func (aru *AutomationRuleUpdate) SetName(s string) *AutomationRuleUpdate {
	aru.mutation.SetName(s)
	return aru
}

// SetNillableName sets the "name" field if the given value is not nil.
func (aru *AutomationRuleUpdate) SetNillableName(s *string) *AutomationRuleUpdate {
	if s != nil {
		aru.SetName(*s)
	}
	return aru
}

// SetTrigger sets the "trigger" field.
func (aru *AutomationRuleUpdate) SetTrigger(s string) *AutomationRuleUpdate {
	aru.mutation.SetTrigger(s)
	return aru
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (aru *AutomationRuleUpdate) SetNillableTrigger(s *string) *AutomationRuleUpdate {
	if s != nil {
		aru.SetTrigger(*s)
	}
	return aru
}

// SetEnabled sets the "enabled" field.
func (aru *AutomationRuleUpdate) SetEnabled(b bool) *AutomationRuleUpdate {
	aru.mutation.SetEnabled(b)
	return aru
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (aru *AutomationRuleUpdate) SetNillableEnabled(b *bool) *AutomationRuleUpdate {
	if b != nil {
		aru.SetEnabled(*b)
	}
	return aru
}

// SetConditions sets the "conditions" field.
func (aru *AutomationRuleUpdate) SetConditions(jm json.RawMessage) *AutomationRuleUpdate {
	aru.mutation.SetConditions(jm)
	return aru
}

// AppendConditions appends jm to the "conditions" field.
func (aru *AutomationRuleUpdate) AppendConditions(jm json.RawMessage) *AutomationRuleUpdate {
	aru.mutation.AppendConditions(jm)
	return aru
}

// ClearConditions clears the value of the "conditions" field.
func (aru *AutomationRuleUpdate) ClearConditions() *AutomationRuleUpdate {
	aru.mutation.ClearConditions()
	return aru
}

// SetActions sets the "actions" field.
func (aru *AutomationRuleUpdate) SetActions(jm json.RawMessage) *AutomationRuleUpdate {
	aru.mutation.SetActions(jm)
	return aru
}

// AppendActions appends jm to the "actions" field.
func (aru *AutomationRuleUpdate) AppendActions(jm json.RawMessage) *AutomationRuleUpdate {
	aru.mutation.AppendActions(jm)
	return aru
}

// ClearActions clears the value of the "actions" field.
func (aru *AutomationRuleUpdate) ClearActions() *AutomationRuleUpdate {
	aru.mutation.ClearActions()
	return aru
}

// SetOwner sets the "owner" field.
func (aru *AutomationRuleUpdate) SetOwner(s string) *AutomationRuleUpdate {
	aru.mutation.SetOwner(s)
	return aru
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (aru *AutomationRuleUpdate) SetNillableOwner(s *string) *AutomationRuleUpdate {
	if s != nil {
		aru.SetOwner(*s)
	}
	return aru
}

// ClearOwner clears the value of the "owner" field.
func (aru *AutomationRuleUpdate) ClearOwner() *AutomationRuleUpdate {
	aru.mutation.ClearOwner()
	return aru
}

// SetCreatedAt sets the "created_at" field.
func (aru *AutomationRuleUpdate) SetCreatedAt(t time.Time) *AutomationRuleUpdate {
	aru.mutation.SetCreatedAt(t)
	return aru
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (aru *AutomationRuleUpdate) SetNillableCreatedAt(t *time.Time) *AutomationRuleUpdate {
	if t != nil {
		aru.SetCreatedAt(*t)
	}
	return aru
}

// SetUpdatedAt sets the "updated_at" field.
func (aru *AutomationRuleUpdate) SetUpdatedAt(t time.Time) *AutomationRuleUpdate {
	aru.mutation.SetUpdatedAt(t)
	return aru
}

// Mutation returns the AutomationRuleMutation object of the builder.
func (aru *AutomationRuleUpdate) Mutation() *AutomationRuleMutation {
	return aru.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (aru *AutomationRuleUpdate) Save(ctx context.Context) (int, error) {
	aru.defaults()
	return withHooks(ctx, aru.sqlSave, aru.mutation, aru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aru *AutomationRuleUpdate) SaveX(ctx context.Context) int {
	affected, err := aru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (aru *AutomationRuleUpdate) Exec(ctx context.Context) error {
	_, err := aru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aru *AutomationRuleUpdate) ExecX(ctx context.Context) {
	if err := aru.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (aru *AutomationRuleUpdate) defaults() {
	if _, ok := aru.mutation.UpdatedAt(); !ok {
		v := automationrule.UpdateDefaultUpdatedAt()
		aru.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aru *AutomationRuleUpdate) check() error {
	if v, ok := aru.mutation.Name(); ok {
		if err := automationrule.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AutomationRule.name": %w`, err)}
		}
	}
	if v, ok := aru.mutation.Trigger(); ok {
		if err := automationrule.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "AutomationRule.trigger": %w`, err)}
		}
	}
	return nil
}

func (aru *AutomationRuleUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := aru.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(automationrule.Table, automationrule.Columns, sqlgraph.NewFieldSpec(automationrule.FieldID, field.TypeUUID))
	if ps := aru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aru.mutation.Name(); ok {
		_spec.SetField(automationrule.FieldName, field.TypeString, value)
	}
	if value, ok := aru.mutation.Trigger(); ok {
		_spec.SetField(automationrule.FieldTrigger, field.TypeString, value)
	}
	if value, ok := aru.mutation.Enabled(); ok {
		_spec.SetField(automationrule.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := aru.mutation.Conditions(); ok {
		_spec.SetField(automationrule.FieldConditions, field.TypeJSON, value)
	}
	if value, ok := aru.mutation.AppendedConditions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, automationrule.FieldConditions, value)
		})
	}
	if aru.mutation.ConditionsCleared() {
		_spec.ClearField(automationrule.FieldConditions, field.TypeJSON)
	}
	if value, ok := aru.mutation.Actions(); ok {
		_spec.SetField(automationrule.FieldActions, field.TypeJSON, value)
	}
	if value, ok := aru.mutation.AppendedActions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, automationrule.FieldActions, value)
		})
	}
	if aru.mutation.ActionsCleared() {
		_spec.ClearField(automationrule.FieldActions, field.TypeJSON)
	}
	if value, ok := aru.mutation.Owner(); ok {
		_spec.SetField(automationrule.FieldOwner, field.TypeString, value)
	}
	if aru.mutation.OwnerCleared() {
		_spec.ClearField(automationrule.FieldOwner, field.TypeString)
	}
	if value, ok := aru.mutation.CreatedAt(); ok {
		_spec.SetField(automationrule.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := aru.mutation.UpdatedAt(); ok {
		_spec.SetField(automationrule.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, aru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{automationrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	aru.mutation.done = true
	return n, nil
}

// AutomationRuleUpdateOne is the builder for updating a single AutomationRule entity.
type AutomationRuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AutomationRuleMutation
}

// SetName sets the "name" field.
func (aruo *AutomationRuleUpdateOne) SetName(s string) *AutomationRuleUpdateOne {
	aruo.mutation.SetName(s)
	return aruo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (aruo *AutomationRuleUpdateOne) SetNillableName(s *string) *AutomationRuleUpdateOne {
	if s != nil {
		aruo.SetName(*s)
	}
	return aruo
}

// SetTrigger sets the "trigger" field.
func (aruo *AutomationRuleUpdateOne) SetTrigger(s string) *AutomationRuleUpdateOne {
	aruo.mutation.SetTrigger(s)
	return aruo
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (aruo *AutomationRuleUpdateOne) SetNillableTrigger(s *string) *AutomationRuleUpdateOne {
	if s != nil {
		aruo.SetTrigger(*s)
	}
	return aruo
}

// SetEnabled sets the "enabled" field.
func (aruo *AutomationRuleUpdateOne) SetEnabled(b bool) *AutomationRuleUpdateOne {
	aruo.mutation.SetEnabled(b)
	return aruo
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (aruo *AutomationRuleUpdateOne) SetNillableEnabled(b *bool) *AutomationRuleUpdateOne {
	if b != nil {
		aruo.SetEnabled(*b)
	}
	return aruo
}

// SetConditions sets the "conditions" field.
func (aruo *AutomationRuleUpdateOne) SetConditions(jm json.RawMessage) *AutomationRuleUpdateOne {
	aruo.mutation.SetConditions(jm)
	return aruo
}

// AppendConditions appends jm to the "conditions" field.
func (aruo *AutomationRuleUpdateOne) AppendConditions(jm json.RawMessage) *AutomationRuleUpdateOne {
	aruo.mutation.AppendConditions(jm)
	return aruo
}

// ClearConditions clears the value of the "conditions" field.
func (aruo *AutomationRuleUpdateOne) ClearConditions() *AutomationRuleUpdateOne {
	aruo.mutation.ClearConditions()
	return aruo
}

// SetActions sets the "actions" field.
func (aruo *AutomationRuleUpdateOne) SetActions(jm json.RawMessage) *AutomationRuleUpdateOne {
	aruo.mutation.SetActions(jm)
	return aruo
}

// AppendActions appends jm to the "actions" field.
func (aruo *AutomationRuleUpdateOne) AppendActions(jm json.RawMessage) *AutomationRuleUpdateOne {
	aruo.mutation.AppendActions(jm)
	return aruo
}

// ClearActions clears the value of the "actions" field.
func (aruo *AutomationRuleUpdateOne) ClearActions() *AutomationRuleUpdateOne {
	aruo.mutation.ClearActions()
	return aruo
}

// SetOwner sets the "owner" field.
func (aruo *AutomationRuleUpdateOne) SetOwner(s string) *AutomationRuleUpdateOne {
	aruo.mutation.SetOwner(s)
	return aruo
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (aruo *AutomationRuleUpdateOne) SetNillableOwner(s *string) *AutomationRuleUpdateOne {
	if s != nil {
		aruo.SetOwner(*s)
	}
	return aruo
}

// ClearOwner clears the value of the "owner" field.
func (aruo *AutomationRuleUpdateOne) ClearOwner() *AutomationRuleUpdateOne {
	aruo.mutation.ClearOwner()
	return aruo
}

// SetCreatedAt sets the "created_at" field.
func (aruo *AutomationRuleUpdateOne) SetCreatedAt(t time.Time) *AutomationRuleUpdateOne {
	aruo.mutation.SetCreatedAt(t)
	return aruo
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (aruo *AutomationRuleUpdateOne) SetNillableCreatedAt(t *time.Time) *AutomationRuleUpdateOne {
	if t != nil {
		aruo.SetCreatedAt(*t)
	}
	return aruo
}

// SetUpdatedAt sets the "updated_at" field.
func (aruo *AutomationRuleUpdateOne) SetUpdatedAt(t time.Time) *AutomationRuleUpdateOne {
	aruo.mutation.SetUpdatedAt(t)
	return aruo
}

// Mutation returns the AutomationRuleMutation object of the builder.
func (aruo *AutomationRuleUpdateOne) Mutation() *AutomationRuleMutation {
	return aruo.mutation
}

// Where appends a list predicates to the AutomationRuleUpdate builder.
func (aruo *AutomationRuleUpdateOne) Where(ps ...predicate.AutomationRule) *AutomationRuleUpdateOne {
	aruo.mutation.Where(ps...)
	return aruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (aruo *AutomationRuleUpdateOne) Select(field string, fields ...string) *AutomationRuleUpdateOne {
	aruo.fields = append([]string{field}, fields...)
	return aruo
}

// Save executes the query and returns the updated AutomationRule entity.
func (aruo *AutomationRuleUpdateOne) Save(ctx context.Context) (*AutomationRule, error) {
	aruo.defaults()
	return withHooks(ctx, aruo.sqlSave, aruo.mutation, aruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aruo *AutomationRuleUpdateOne) SaveX(ctx context.Context) *AutomationRule {
	node, err := aruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (aruo *AutomationRuleUpdateOne) Exec(ctx context.Context) error {
	_, err := aruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aruo *AutomationRuleUpdateOne) ExecX(ctx context.Context) {
	if err := aruo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (aruo *AutomationRuleUpdateOne) defaults() {
	if _, ok := aruo.mutation.UpdatedAt(); !ok {
		v := automationrule.UpdateDefaultUpdatedAt()
		aruo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aruo *AutomationRuleUpdateOne) check() error {
	if v, ok := aruo.mutation.Name(); ok {
		if err := automationrule.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AutomationRule.name": %w`, err)}
		}
	}
	if v, ok := aruo.mutation.Trigger(); ok {
		if err := automationrule.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "AutomationRule.trigger": %w`, err)}
		}
	}
	return nil
}

func (aruo *AutomationRuleUpdateOne) sqlSave(ctx context.Context) (_node *AutomationRule, err error) {
	if err := aruo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(automationrule.Table, automationrule.Columns, sqlgraph.NewFieldSpec(automationrule.FieldID, field.TypeUUID))
	id, ok := aruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AutomationRule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := aruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, automationrule.FieldID)
		for _, f := range fields {
			if !automationrule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != automationrule.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := aruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aruo.mutation.Name(); ok {
		_spec.SetField(automationrule.FieldName, field.TypeString, value)
	}
	if value, ok := aruo.mutation.Trigger(); ok {
		_spec.SetField(automationrule.FieldTrigger, field.TypeString, value)
	}
	if value, ok := aruo.mutation.Enabled(); ok {
		_spec.SetField(automationrule.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := aruo.mutation.Conditions(); ok {
		_spec.SetField(automationrule.FieldConditions, field.TypeJSON, value)
	}
	if value, ok := aruo.mutation.AppendedConditions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, automationrule.FieldConditions, value)
		})
	}
	if aruo.mutation.ConditionsCleared() {
		_spec.ClearField(automationrule.FieldConditions, field.TypeJSON)
	}
	if value, ok := aruo.mutation.Actions(); ok {
		_spec.SetField(automationrule.FieldActions, field.TypeJSON, value)
	}
	if value, ok := aruo.mutation.AppendedActions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, automationrule.FieldActions, value)
		})
	}
	if aruo.mutation.ActionsCleared() {
		_spec.ClearField(automationrule.FieldActions, field.TypeJSON)
	}
	if value, ok := aruo.mutation.Owner(); ok {
		_spec.SetField(automationrule.FieldOwner, field.TypeString, value)
	}
	if aruo.mutation.OwnerCleared() {
		_spec.ClearField(automationrule.FieldOwner, field.TypeString)
	}
	if value, ok := aruo.mutation.CreatedAt(); ok {
		_spec.SetField(automationrule.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := aruo.mutation.UpdatedAt(); ok {
		_spec.SetField(automationrule.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &AutomationRule{config: aruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, aruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{automationrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	aruo.mutation.done = true
	return _node, nil
}
