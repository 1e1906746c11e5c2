// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docshelf/docshelf/gen/ent/automationrule"
	"github.com/docshelf/docshelf/gen/ent/predicate"
)

// AutomationRuleDelete is the builder for deleting a AutomationRule entity.
type AutomationRuleDelete struct {
	config
	hooks    []Hook
	mutation *AutomationRuleMutation
}

// Where appends a list predicates to the AutomationRuleDelete builder.
func (ard *AutomationRuleDelete) Where(ps ...predicate.AutomationRule) *AutomationRuleDelete {
	ard.mutation.Where(ps...)
	return ard
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (ard *AutomationRuleDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, ard.sqlExec, ard.mutation, ard.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (ard *AutomationRuleDelete) ExecX(ctx context.Context) int {
	n, err := ard.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (ard *AutomationRuleDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(automationrule.Table, sqlgraph.NewFieldSpec(automationrule.FieldID, field.TypeUUID))
	if ps := ard.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, ard.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	ard.mutation.done = true
	return affected, err
}

// AutomationRuleDeleteOne is the builder for deleting a single AutomationRule entity.
type AutomationRuleDeleteOne struct {
	ard *AutomationRuleDelete
}

// Where appends a list predicates to the AutomationRuleDelete builder.
func (ardo *AutomationRuleDeleteOne) Where(ps ...predicate.AutomationRule) *AutomationRuleDeleteOne {
	ardo.ard.mutation.Where(ps...)
	return ardo
}

// Exec executes the deletion query.
func (ardo *AutomationRuleDeleteOne) Exec(ctx context.Context) error {
	n, err := ardo.ard.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{automationrule.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (ardo *AutomationRuleDeleteOne) ExecX(ctx context.Context) {
	if err := ardo.Exec(ctx); err != nil {
		panic(err)
	}
}
