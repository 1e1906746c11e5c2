// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docshelf/docshelf/gen/ent/automationrule"
	"github.com/docshelf/docshelf/gen/ent/predicate"
	"github.com/google/uuid"
)

// AutomationRuleQuery is the builder for querying AutomationRule entities.
type AutomationRuleQuery struct {
	config
	ctx        *QueryContext
	order      []automationrule.OrderOption
	inters     []Interceptor
	predicates []predicate.AutomationRule
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the AutomationRuleQuery builder.
func (arq *AutomationRuleQuery) Where(ps ...predicate.AutomationRule) *AutomationRuleQuery {
	arq.predicates = append(arq.predicates, ps...)
	return arq
}

// Limit the number of records to be returned by this query.
func (arq *AutomationRuleQuery) Limit(limit int) *AutomationRuleQuery {
	arq.ctx.Limit = &limit
	return arq
}

// Offset to start from.
func (arq *AutomationRuleQuery) Offset(offset int) *AutomationRuleQuery {
	arq.ctx.Offset = &offset
	return arq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (arq *AutomationRuleQuery) Unique(unique bool) *AutomationRuleQuery {
	arq.ctx.Unique = &unique
	return arq
}

// Order specifies how the records should be ordered.
func (arq *AutomationRuleQuery) Order(o ...automationrule.OrderOption) *AutomationRuleQuery {
	arq.order = append(arq.order, o...)
	return arq
}

// First returns the first AutomationRule entity from the query.
// Returns a *NotFoundError when no AutomationRule was found.
func (arq *AutomationRuleQuery) First(ctx context.Context) (*AutomationRule, error) {
	nodes, err := arq.Limit(1).All(setContextOp(ctx, arq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{automationrule.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (arq *AutomationRuleQuery) FirstX(ctx context.Context) *AutomationRule {
	node, err := arq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first AutomationRule ID from the query.
// Returns a *NotFoundError when no AutomationRule ID was found.
func (arq *AutomationRuleQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = arq.Limit(1).IDs(setContextOp(ctx, arq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{automationrule.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (arq *AutomationRuleQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := arq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single AutomationRule entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one AutomationRule entity is found.
// Returns a *NotFoundError when no AutomationRule entities are found.
func (arq *AutomationRuleQuery) Only(ctx context.Context) (*AutomationRule, error) {
	nodes, err := arq.Limit(2).All(setContextOp(ctx, arq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{automationrule.Label}
	default:
		return nil, &NotSingularError{automationrule.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (arq *AutomationRuleQuery) OnlyX(ctx context.Context) *AutomationRule {
	node, err := arq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only AutomationRule ID in the query.
// Returns a *NotSingularError when more than one AutomationRule ID is found.
// Returns a *NotFoundError when no entities are found.
func (arq *AutomationRuleQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = arq.Limit(2).IDs(setContextOp(ctx, arq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{automationrule.Label}
	default:
		err = &NotSingularError{automationrule.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (arq *AutomationRuleQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := arq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of AutomationRules.
func (arq *AutomationRuleQuery) All(ctx context.Context) ([]*AutomationRule, error) {
	ctx = setContextOp(ctx, arq.ctx, ent.OpQueryAll)
	if err := arq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*AutomationRule, *AutomationRuleQuery]()
	return withInterceptors[[]*AutomationRule](ctx, arq, qr, arq.inters)
}

// AllX is like All, but panics if an error occurs.
func (arq *AutomationRuleQuery) AllX(ctx context.Context) []*AutomationRule {
	nodes, err := arq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of AutomationRule IDs.
func (arq *AutomationRuleQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if arq.ctx.Unique == nil && arq.path != nil {
		arq.Unique(true)
	}
	ctx = setContextOp(ctx, arq.ctx, ent.OpQueryIDs)
	if err = arq.Select(automationrule.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (arq *AutomationRuleQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := arq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (arq *AutomationRuleQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, arq.ctx, ent.OpQueryCount)
	if err := arq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, arq, querierCount[*AutomationRuleQuery](), arq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (arq *AutomationRuleQuery) CountX(ctx context.Context) int {
	count, err := arq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (arq *AutomationRuleQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, arq.ctx, ent.OpQueryExist)
	switch _, err := arq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (arq *AutomationRuleQuery) ExistX(ctx context.Context) bool {
	exist, err := arq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the AutomationRuleQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (arq *AutomationRuleQuery) Clone() *AutomationRuleQuery {
	if arq == nil {
		return nil
	}
	return &AutomationRuleQuery{
		config:     arq.config,
		ctx:        arq.ctx.Clone(),
		order:      append([]automationrule.OrderOption{}, arq.order...),
		inters:     append([]Interceptor{}, arq.inters...),
		predicates: append([]predicate.AutomationRule{}, arq.predicates...),
		// clone intermediate query.
		sql:  arq.sql.Clone(),
		path: arq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.AutomationRule.Query().
//		GroupBy(automationrule.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (arq *AutomationRuleQuery) GroupBy(field string, fields ...string) *AutomationRuleGroupBy {
	arq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &AutomationRuleGroupBy{build: arq}
	grbuild.flds = &arq.ctx.Fields
	grbuild.label = automationrule.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.AutomationRule.Query().
//		Select(automationrule.FieldName).
//		Scan(ctx, &v)
func (arq *AutomationRuleQuery) Select(fields ...string) *AutomationRuleSelect {
	arq.ctx.Fields = append(arq.ctx.Fields, fields...)
	sbuild := &AutomationRuleSelect{AutomationRuleQuery: arq}
	sbuild.label = automationrule.Label
	sbuild.flds, sbuild.scan = &arq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a AutomationRuleSelect configured with the given aggregations.
func (arq *AutomationRuleQuery) Aggregate(fns ...AggregateFunc) *AutomationRuleSelect {
	return arq.Select().Aggregate(fns...)
}

func (arq *AutomationRuleQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range arq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, arq); err != nil {
				return err
			}
		}
	}
	for _, f := range arq.ctx.Fields {
		if !automationrule.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if arq.path != nil {
		prev, err := arq.path(ctx)
		if err != nil {
			return err
		}
		arq.sql = prev
	}
	return nil
}

func (arq *AutomationRuleQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*AutomationRule, error) {
	var (
		nodes = []*AutomationRule{}
		_spec = arq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*AutomationRule).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &AutomationRule{config: arq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, arq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (arq *AutomationRuleQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := arq.querySpec()
	_spec.Node.Columns = arq.ctx.Fields
	if len(arq.ctx.Fields) > 0 {
		_spec.Unique = arq.ctx.Unique != nil && *arq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, arq.driver, _spec)
}

func (arq *AutomationRuleQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(automationrule.Table, automationrule.Columns, sqlgraph.NewFieldSpec(automationrule.FieldID, field.TypeUUID))
	_spec.From = arq.sql
	if unique := arq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if arq.path != nil {
		_spec.Unique = true
	}
	if fields := arq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, automationrule.FieldID)
		for i := range fields {
			if fields[i] != automationrule.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := arq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := arq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := arq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := arq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (arq *AutomationRuleQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(arq.driver.Dialect())
	t1 := builder.Table(automationrule.Table)
	columns := arq.ctx.Fields
	if len(columns) == 0 {
		columns = automationrule.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if arq.sql != nil {
		selector = arq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if arq.ctx.Unique != nil && *arq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range arq.predicates {
		p(selector)
	}
	for _, p := range arq.order {
		p(selector)
	}
	if offset := arq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := arq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// AutomationRuleGroupBy is the group-by builder for AutomationRule entities.
type AutomationRuleGroupBy struct {
	selector
	build *AutomationRuleQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (argb *AutomationRuleGroupBy) Aggregate(fns ...AggregateFunc) *AutomationRuleGroupBy {
	argb.fns = append(argb.fns, fns...)
	return argb
}

// Scan applies the selector query and scans the result into the given value.
func (argb *AutomationRuleGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, argb.build.ctx, ent.OpQueryGroupBy)
	if err := argb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AutomationRuleQuery, *AutomationRuleGroupBy](ctx, argb.build, argb, argb.build.inters, v)
}

func (argb *AutomationRuleGroupBy) sqlScan(ctx context.Context, root *AutomationRuleQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(argb.fns))
	for _, fn := range argb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*argb.flds)+len(argb.fns))
		for _, f := range *argb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*argb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := argb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// AutomationRuleSelect is the builder for selecting fields of AutomationRule entities.
type AutomationRuleSelect struct {
	*AutomationRuleQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (ars *AutomationRuleSelect) Aggregate(fns ...AggregateFunc) *AutomationRuleSelect {
	ars.fns = append(ars.fns, fns...)
	return ars
}

// Scan applies the selector query and scans the result into the given value.
func (ars *AutomationRuleSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ars.ctx, ent.OpQuerySelect)
	if err := ars.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*AutomationRuleQuery, *AutomationRuleSelect](ctx, ars.AutomationRuleQuery, ars, ars.inters, v)
}

func (ars *AutomationRuleSelect) sqlScan(ctx context.Context, root *AutomationRuleQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(ars.fns))
	for _, fn := range ars.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*ars.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ars.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
