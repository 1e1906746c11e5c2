// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docshelf/docshelf/gen/ent/automationrule"
	"github.com/docshelf/docshelf/gen/ent/category"
	"github.com/docshelf/docshelf/gen/ent/correspondent"
	"github.com/docshelf/docshelf/gen/ent/document"
	"github.com/docshelf/docshelf/gen/ent/predicate"
	"github.com/docshelf/docshelf/gen/ent/version"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAutomationRule = "AutomationRule"
	TypeCategory       = "Category"
	TypeCorrespondent  = "Correspondent"
	TypeDocument       = "Document"
	TypeVersion        = "Version"
)

// AutomationRuleMutation represents an operation that mutates the AutomationRule nodes in the graph.
type AutomationRuleMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	name             *string
	trigger          *string
	enabled          *bool
	conditions       *json.RawMessage
	appendconditions json.RawMessage
	actions          *json.RawMessage
	appendactions    json.RawMessage
	owner            *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*AutomationRule, error)
	predicates       []predicate.AutomationRule
}

var _ ent.Mutation = (*AutomationRuleMutation)(nil)

// automationruleOption allows management of the mutation configuration using functional options.
type automationruleOption func(*AutomationRuleMutation)

// newAutomationRuleMutation creates new mutation for the AutomationRule entity.
func newAutomationRuleMutation(c config, op Op, opts ...automationruleOption) *AutomationRuleMutation {
	m := &AutomationRuleMutation{
		config:        c,
		op:            op,
		typ:           TypeAutomationRule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAutomationRuleID sets the ID field of the mutation.
func withAutomationRuleID(id uuid.UUID) automationruleOption {
	return func(m *AutomationRuleMutation) {
		var (
			err   error
			once  sync.Once
			value *AutomationRule
		)
		m.oldValue = func(ctx context.Context) (*AutomationRule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AutomationRule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAutomationRule sets the old AutomationRule of the mutation.
func withAutomationRule(node *AutomationRule) automationruleOption {
	return func(m *AutomationRuleMutation) {
		m.oldValue = func(context.Context) (*AutomationRule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AutomationRuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AutomationRuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AutomationRule entities.
func (m *AutomationRuleMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AutomationRuleMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AutomationRuleMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AutomationRule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *AutomationRuleMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AutomationRuleMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the AutomationRule entity.
// If the AutomationRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AutomationRuleMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AutomationRuleMutation) ResetName() {
	m.name = nil
}

// SetTrigger sets the "trigger" field.
func (m *AutomationRuleMutation) SetTrigger(s string) {
	m.trigger = &s
}

// Trigger returns the value of the "trigger" field in the mutation.
func (m *AutomationRuleMutation) Trigger() (r string, exists bool) {
	v := m.trigger
	if v == nil {
		return
	}
	return *v, true
}

// OldTrigger returns the old "trigger" field's value of the AutomationRule entity.
// If the AutomationRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AutomationRuleMutation) OldTrigger(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrigger is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrigger requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrigger: %w", err)
	}
	return oldValue.Trigger, nil
}

// ResetTrigger resets all changes to the "trigger" field.
func (m *AutomationRuleMutation) ResetTrigger() {
	m.trigger = nil
}

// SetEnabled sets the "enabled" field.
func (m *AutomationRuleMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *AutomationRuleMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the AutomationRule entity.
// If the AutomationRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AutomationRuleMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *AutomationRuleMutation) ResetEnabled() {
	m.enabled = nil
}

// SetConditions sets the "conditions" field.
func (m *AutomationRuleMutation) SetConditions(jm json.RawMessage) {
	m.conditions = &jm
	m.appendconditions = nil
}

// Conditions returns the value of the "conditions" field in the mutation.
func (m *AutomationRuleMutation) Conditions() (r json.RawMessage, exists bool) {
	v := m.conditions
	if v == nil {
		return
	}
	return *v, true
}

// OldConditions returns the old "conditions" field's value of the AutomationRule entity.
// If the AutomationRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AutomationRuleMutation) OldConditions(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConditions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConditions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConditions: %w", err)
	}
	return oldValue.Conditions, nil
}

// AppendConditions adds jm to the "conditions" field.
func (m *AutomationRuleMutation) AppendConditions(jm json.RawMessage) {
	m.appendconditions = append(m.appendconditions, jm...)
}

// AppendedConditions returns the list of values that were appended to the "conditions" field in this mutation.
func (m *AutomationRuleMutation) AppendedConditions() (json.RawMessage, bool) {
	if len(m.appendconditions) == 0 {
		return nil, false
	}
	return m.appendconditions, true
}

// ClearConditions clears the value of the "conditions" field.
func (m *AutomationRuleMutation) ClearConditions() {
	m.conditions = nil
	m.appendconditions = nil
	m.clearedFields[automationrule.FieldConditions] = struct{}{}
}

// ConditionsCleared returns if the "conditions" field was cleared in this mutation.
func (m *AutomationRuleMutation) ConditionsCleared() bool {
	_, ok := m.clearedFields[automationrule.FieldConditions]
	return ok
}

// ResetConditions resets all changes to the "conditions" field.
func (m *AutomationRuleMutation) ResetConditions() {
	m.conditions = nil
	m.appendconditions = nil
	delete(m.clearedFields, automationrule.FieldConditions)
}

// SetActions sets the "actions" field.
func (m *AutomationRuleMutation) SetActions(jm json.RawMessage) {
	m.actions = &jm
	m.appendactions = nil
}

// Actions returns the value of the "actions" field in the mutation.
func (m *AutomationRuleMutation) Actions() (r json.RawMessage, exists bool) {
	v := m.actions
	if v == nil {
		return
	}
	return *v, true
}

// OldActions returns the old "actions" field's value of the AutomationRule entity.
// If the AutomationRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AutomationRuleMutation) OldActions(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActions: %w", err)
	}
	return oldValue.Actions, nil
}

// AppendActions adds jm to the "actions" field.
func (m *AutomationRuleMutation) AppendActions(jm json.RawMessage) {
	m.appendactions = append(m.appendactions, jm...)
}

// AppendedActions returns the list of values that were appended to the "actions" field in this mutation.
func (m *AutomationRuleMutation) AppendedActions() (json.RawMessage, bool) {
	if len(m.appendactions) == 0 {
		return nil, false
	}
	return m.appendactions, true
}

// ClearActions clears the value of the "actions" field.
func (m *AutomationRuleMutation) ClearActions() {
	m.actions = nil
	m.appendactions = nil
	m.clearedFields[automationrule.FieldActions] = struct{}{}
}

// ActionsCleared returns if the "actions" field was cleared in this mutation.
func (m *AutomationRuleMutation) ActionsCleared() bool {
	_, ok := m.clearedFields[automationrule.FieldActions]
	return ok
}

// ResetActions resets all changes to the "actions" field.
func (m *AutomationRuleMutation) ResetActions() {
	m.actions = nil
	m.appendactions = nil
	delete(m.clearedFields, automationrule.FieldActions)
}

// SetOwner sets the "owner" field.
func (m *AutomationRuleMutation) SetOwner(s string) {
	m.owner = &s
}

// Owner returns the value of the "owner" field in the mutation.
func (m *AutomationRuleMutation) Owner() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwner returns the old "owner" field's value of the AutomationRule entity.
// If the AutomationRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AutomationRuleMutation) OldOwner(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwner: %w", err)
	}
	return oldValue.Owner, nil
}

// ClearOwner clears the value of the "owner" field.
func (m *AutomationRuleMutation) ClearOwner() {
	m.owner = nil
	m.clearedFields[automationrule.FieldOwner] = struct{}{}
}

// OwnerCleared returns if the "owner" field was cleared in this mutation.
func (m *AutomationRuleMutation) OwnerCleared() bool {
	_, ok := m.clearedFields[automationrule.FieldOwner]
	return ok
}

// ResetOwner resets all changes to the "owner" field.
func (m *AutomationRuleMutation) ResetOwner() {
	m.owner = nil
	delete(m.clearedFields, automationrule.FieldOwner)
}

// SetCreatedAt sets the "created_at" field.
func (m *AutomationRuleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AutomationRuleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AutomationRule entity.
// If the AutomationRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AutomationRuleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AutomationRuleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AutomationRuleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AutomationRuleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AutomationRule entity.
// If the AutomationRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AutomationRuleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AutomationRuleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the AutomationRuleMutation builder.
func (m *AutomationRuleMutation) Where(ps ...predicate.AutomationRule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AutomationRuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AutomationRuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AutomationRule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AutomationRuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AutomationRuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AutomationRule).
func (m *AutomationRuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AutomationRuleMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.name != nil {
		fields = append(fields, automationrule.FieldName)
	}
	if m.trigger != nil {
		fields = append(fields, automationrule.FieldTrigger)
	}
	if m.enabled != nil {
		fields = append(fields, automationrule.FieldEnabled)
	}
	if m.conditions != nil {
		fields = append(fields, automationrule.FieldConditions)
	}
	if m.actions != nil {
		fields = append(fields, automationrule.FieldActions)
	}
	if m.owner != nil {
		fields = append(fields, automationrule.FieldOwner)
	}
	if m.created_at != nil {
		fields = append(fields, automationrule.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, automationrule.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AutomationRuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case automationrule.FieldName:
		return m.Name()
	case automationrule.FieldTrigger:
		return m.Trigger()
	case automationrule.FieldEnabled:
		return m.Enabled()
	case automationrule.FieldConditions:
		return m.Conditions()
	case automationrule.FieldActions:
		return m.Actions()
	case automationrule.FieldOwner:
		return m.Owner()
	case automationrule.FieldCreatedAt:
		return m.CreatedAt()
	case automationrule.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AutomationRuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case automationrule.FieldName:
		return m.OldName(ctx)
	case automationrule.FieldTrigger:
		return m.OldTrigger(ctx)
	case automationrule.FieldEnabled:
		return m.OldEnabled(ctx)
	case automationrule.FieldConditions:
		return m.OldConditions(ctx)
	case automationrule.FieldActions:
		return m.OldActions(ctx)
	case automationrule.FieldOwner:
		return m.OldOwner(ctx)
	case automationrule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case automationrule.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AutomationRule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AutomationRuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case automationrule.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case automationrule.FieldTrigger:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrigger(v)
		return nil
	case automationrule.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case automationrule.FieldConditions:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConditions(v)
		return nil
	case automationrule.FieldActions:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActions(v)
		return nil
	case automationrule.FieldOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwner(v)
		return nil
	case automationrule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case automationrule.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AutomationRule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AutomationRuleMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AutomationRuleMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AutomationRuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AutomationRule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AutomationRuleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(automationrule.FieldConditions) {
		fields = append(fields, automationrule.FieldConditions)
	}
	if m.FieldCleared(automationrule.FieldActions) {
		fields = append(fields, automationrule.FieldActions)
	}
	if m.FieldCleared(automationrule.FieldOwner) {
		fields = append(fields, automationrule.FieldOwner)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AutomationRuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AutomationRuleMutation) ClearField(name string) error {
	switch name {
	case automationrule.FieldConditions:
		m.ClearConditions()
		return nil
	case automationrule.FieldActions:
		m.ClearActions()
		return nil
	case automationrule.FieldOwner:
		m.ClearOwner()
		return nil
	}
	return fmt.Errorf("unknown AutomationRule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AutomationRuleMutation) ResetField(name string) error {
	switch name {
	case automationrule.FieldName:
		m.ResetName()
		return nil
	case automationrule.FieldTrigger:
		m.ResetTrigger()
		return nil
	case automationrule.FieldEnabled:
		m.ResetEnabled()
		return nil
	case automationrule.FieldConditions:
		m.ResetConditions()
		return nil
	case automationrule.FieldActions:
		m.ResetActions()
		return nil
	case automationrule.FieldOwner:
		m.ResetOwner()
		return nil
	case automationrule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case automationrule.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AutomationRule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AutomationRuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AutomationRuleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AutomationRuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AutomationRuleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AutomationRuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AutomationRuleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AutomationRuleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AutomationRule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AutomationRuleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AutomationRule edge %s", name)
}

// CategoryMutation represents an operation that mutates the Category nodes in the graph.
type CategoryMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	description   *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Category, error)
	predicates    []predicate.Category
}

var _ ent.Mutation = (*CategoryMutation)(nil)

// categoryOption allows management of the mutation configuration using functional options.
type categoryOption func(*CategoryMutation)

// newCategoryMutation creates new mutation for the Category entity.
func newCategoryMutation(c config, op Op, opts ...categoryOption) *CategoryMutation {
	m := &CategoryMutation{
		config:        c,
		op:            op,
		typ:           TypeCategory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCategoryID sets the ID field of the mutation.
func withCategoryID(id uuid.UUID) categoryOption {
	return func(m *CategoryMutation) {
		var (
			err   error
			once  sync.Once
			value *Category
		)
		m.oldValue = func(ctx context.Context) (*Category, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Category.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCategory sets the old Category of the mutation.
func withCategory(node *Category) categoryOption {
	return func(m *CategoryMutation) {
		m.oldValue = func(context.Context) (*Category, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CategoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CategoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Category entities.
func (m *CategoryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CategoryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CategoryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Category.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *CategoryMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CategoryMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Category entity.
// If the Category object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CategoryMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *CategoryMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CategoryMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Category entity.
// If the Category object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *CategoryMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[category.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *CategoryMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[category.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *CategoryMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, category.FieldDescription)
}

// Where appends a list predicates to the CategoryMutation builder.
func (m *CategoryMutation) Where(ps ...predicate.Category) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CategoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CategoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Category, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CategoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CategoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Category).
func (m *CategoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CategoryMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.name != nil {
		fields = append(fields, category.FieldName)
	}
	if m.description != nil {
		fields = append(fields, category.FieldDescription)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CategoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case category.FieldName:
		return m.Name()
	case category.FieldDescription:
		return m.Description()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CategoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case category.FieldName:
		return m.OldName(ctx)
	case category.FieldDescription:
		return m.OldDescription(ctx)
	}
	return nil, fmt.Errorf("unknown Category field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CategoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case category.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case category.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	}
	return fmt.Errorf("unknown Category field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CategoryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CategoryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CategoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Category numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CategoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(category.FieldDescription) {
		fields = append(fields, category.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CategoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CategoryMutation) ClearField(name string) error {
	switch name {
	case category.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Category nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CategoryMutation) ResetField(name string) error {
	switch name {
	case category.FieldName:
		m.ResetName()
		return nil
	case category.FieldDescription:
		m.ResetDescription()
		return nil
	}
	return fmt.Errorf("unknown Category field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CategoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CategoryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CategoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CategoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CategoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CategoryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CategoryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Category unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CategoryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Category edge %s", name)
}

// CorrespondentMutation represents an operation that mutates the Correspondent nodes in the graph.
type CorrespondentMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	name            *string
	match_pattern   *string
	match_algorithm *string
	insensitive     *bool
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Correspondent, error)
	predicates      []predicate.Correspondent
}

var _ ent.Mutation = (*CorrespondentMutation)(nil)

// correspondentOption allows management of the mutation configuration using functional options.
type correspondentOption func(*CorrespondentMutation)

// newCorrespondentMutation creates new mutation for the Correspondent entity.
func newCorrespondentMutation(c config, op Op, opts ...correspondentOption) *CorrespondentMutation {
	m := &CorrespondentMutation{
		config:        c,
		op:            op,
		typ:           TypeCorrespondent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCorrespondentID sets the ID field of the mutation.
func withCorrespondentID(id uuid.UUID) correspondentOption {
	return func(m *CorrespondentMutation) {
		var (
			err   error
			once  sync.Once
			value *Correspondent
		)
		m.oldValue = func(ctx context.Context) (*Correspondent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Correspondent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCorrespondent sets the old Correspondent of the mutation.
func withCorrespondent(node *Correspondent) correspondentOption {
	return func(m *CorrespondentMutation) {
		m.oldValue = func(context.Context) (*Correspondent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CorrespondentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CorrespondentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Correspondent entities.
func (m *CorrespondentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CorrespondentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CorrespondentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Correspondent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *CorrespondentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CorrespondentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Correspondent entity.
// If the Correspondent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrespondentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CorrespondentMutation) ResetName() {
	m.name = nil
}

// SetMatchPattern sets the "match_pattern" field.
func (m *CorrespondentMutation) SetMatchPattern(s string) {
	m.match_pattern = &s
}

// MatchPattern returns the value of the "match_pattern" field in the mutation.
func (m *CorrespondentMutation) MatchPattern() (r string, exists bool) {
	v := m.match_pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldMatchPattern returns the old "match_pattern" field's value of the Correspondent entity.
// If the Correspondent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrespondentMutation) OldMatchPattern(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatchPattern is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatchPattern requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatchPattern: %w", err)
	}
	return oldValue.MatchPattern, nil
}

// ClearMatchPattern clears the value of the "match_pattern" field.
func (m *CorrespondentMutation) ClearMatchPattern() {
	m.match_pattern = nil
	m.clearedFields[correspondent.FieldMatchPattern] = struct{}{}
}

// MatchPatternCleared returns if the "match_pattern" field was cleared in this mutation.
func (m *CorrespondentMutation) MatchPatternCleared() bool {
	_, ok := m.clearedFields[correspondent.FieldMatchPattern]
	return ok
}

// ResetMatchPattern resets all changes to the "match_pattern" field.
func (m *CorrespondentMutation) ResetMatchPattern() {
	m.match_pattern = nil
	delete(m.clearedFields, correspondent.FieldMatchPattern)
}

// SetMatchAlgorithm sets the "match_algorithm" field.
func (m *CorrespondentMutation) SetMatchAlgorithm(s string) {
	m.match_algorithm = &s
}

// MatchAlgorithm returns the value of the "match_algorithm" field in the mutation.
func (m *CorrespondentMutation) MatchAlgorithm() (r string, exists bool) {
	v := m.match_algorithm
	if v == nil {
		return
	}
	return *v, true
}

// OldMatchAlgorithm returns the old "match_algorithm" field's value of the Correspondent entity.
// If the Correspondent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrespondentMutation) OldMatchAlgorithm(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatchAlgorithm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatchAlgorithm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatchAlgorithm: %w", err)
	}
	return oldValue.MatchAlgorithm, nil
}

// ResetMatchAlgorithm resets all changes to the "match_algorithm" field.
func (m *CorrespondentMutation) ResetMatchAlgorithm() {
	m.match_algorithm = nil
}

// SetInsensitive sets the "insensitive" field.
func (m *CorrespondentMutation) SetInsensitive(b bool) {
	m.insensitive = &b
}

// Insensitive returns the value of the "insensitive" field in the mutation.
func (m *CorrespondentMutation) Insensitive() (r bool, exists bool) {
	v := m.insensitive
	if v == nil {
		return
	}
	return *v, true
}

// OldInsensitive returns the old "insensitive" field's value of the Correspondent entity.
// If the Correspondent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CorrespondentMutation) OldInsensitive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsensitive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsensitive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsensitive: %w", err)
	}
	return oldValue.Insensitive, nil
}

// ResetInsensitive resets all changes to the "insensitive" field.
func (m *CorrespondentMutation) ResetInsensitive() {
	m.insensitive = nil
}

// Where appends a list predicates to the CorrespondentMutation builder.
func (m *CorrespondentMutation) Where(ps ...predicate.Correspondent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CorrespondentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CorrespondentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Correspondent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CorrespondentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CorrespondentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Correspondent).
func (m *CorrespondentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CorrespondentMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, correspondent.FieldName)
	}
	if m.match_pattern != nil {
		fields = append(fields, correspondent.FieldMatchPattern)
	}
	if m.match_algorithm != nil {
		fields = append(fields, correspondent.FieldMatchAlgorithm)
	}
	if m.insensitive != nil {
		fields = append(fields, correspondent.FieldInsensitive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CorrespondentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case correspondent.FieldName:
		return m.Name()
	case correspondent.FieldMatchPattern:
		return m.MatchPattern()
	case correspondent.FieldMatchAlgorithm:
		return m.MatchAlgorithm()
	case correspondent.FieldInsensitive:
		return m.Insensitive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CorrespondentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case correspondent.FieldName:
		return m.OldName(ctx)
	case correspondent.FieldMatchPattern:
		return m.OldMatchPattern(ctx)
	case correspondent.FieldMatchAlgorithm:
		return m.OldMatchAlgorithm(ctx)
	case correspondent.FieldInsensitive:
		return m.OldInsensitive(ctx)
	}
	return nil, fmt.Errorf("unknown Correspondent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CorrespondentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case correspondent.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case correspondent.FieldMatchPattern:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatchPattern(v)
		return nil
	case correspondent.FieldMatchAlgorithm:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatchAlgorithm(v)
		return nil
	case correspondent.FieldInsensitive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsensitive(v)
		return nil
	}
	return fmt.Errorf("unknown Correspondent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CorrespondentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CorrespondentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CorrespondentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Correspondent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CorrespondentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(correspondent.FieldMatchPattern) {
		fields = append(fields, correspondent.FieldMatchPattern)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CorrespondentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CorrespondentMutation) ClearField(name string) error {
	switch name {
	case correspondent.FieldMatchPattern:
		m.ClearMatchPattern()
		return nil
	}
	return fmt.Errorf("unknown Correspondent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CorrespondentMutation) ResetField(name string) error {
	switch name {
	case correspondent.FieldName:
		m.ResetName()
		return nil
	case correspondent.FieldMatchPattern:
		m.ResetMatchPattern()
		return nil
	case correspondent.FieldMatchAlgorithm:
		m.ResetMatchAlgorithm()
		return nil
	case correspondent.FieldInsensitive:
		m.ResetInsensitive()
		return nil
	}
	return fmt.Errorf("unknown Correspondent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CorrespondentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CorrespondentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CorrespondentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CorrespondentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CorrespondentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CorrespondentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CorrespondentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Correspondent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CorrespondentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Correspondent edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	name                   *string
	parent_folder_id       *uuid.UUID
	mime_type              *string
	file_size              *int64
	addfile_size           *int64
	content_id             *string
	content_hash           *string
	text_content           *string
	metadata               *map[string]string
	tags                   *[]string
	appendtags             []string
	categories             *[]string
	appendcategories       []string
	correspondent          *string
	status                 *string
	versioned              *bool
	major_version          *int
	addmajor_version       *int
	minor_version          *int
	addminor_version       *int
	version_label          *string
	current_version_id     *uuid.UUID
	preview_status         *string
	preview_failure_reason *string
	preview_last_updated   *time.Time
	created_by             *string
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	versions               map[uuid.UUID]struct{}
	removedversions        map[uuid.UUID]struct{}
	clearedversions        bool
	done                   bool
	oldValue               func(context.Context) (*Document, error)
	predicates             []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *DocumentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DocumentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DocumentMutation) ResetName() {
	m.name = nil
}

// SetParentFolderID sets the "parent_folder_id" field.
func (m *DocumentMutation) SetParentFolderID(u uuid.UUID) {
	m.parent_folder_id = &u
}

// ParentFolderID returns the value of the "parent_folder_id" field in the mutation.
func (m *DocumentMutation) ParentFolderID() (r uuid.UUID, exists bool) {
	v := m.parent_folder_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentFolderID returns the old "parent_folder_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldParentFolderID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentFolderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentFolderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentFolderID: %w", err)
	}
	return oldValue.ParentFolderID, nil
}

// ClearParentFolderID clears the value of the "parent_folder_id" field.
func (m *DocumentMutation) ClearParentFolderID() {
	m.parent_folder_id = nil
	m.clearedFields[document.FieldParentFolderID] = struct{}{}
}

// ParentFolderIDCleared returns if the "parent_folder_id" field was cleared in this mutation.
func (m *DocumentMutation) ParentFolderIDCleared() bool {
	_, ok := m.clearedFields[document.FieldParentFolderID]
	return ok
}

// ResetParentFolderID resets all changes to the "parent_folder_id" field.
func (m *DocumentMutation) ResetParentFolderID() {
	m.parent_folder_id = nil
	delete(m.clearedFields, document.FieldParentFolderID)
}

// SetMimeType sets the "mime_type" field.
func (m *DocumentMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *DocumentMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldMimeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ClearMimeType clears the value of the "mime_type" field.
func (m *DocumentMutation) ClearMimeType() {
	m.mime_type = nil
	m.clearedFields[document.FieldMimeType] = struct{}{}
}

// MimeTypeCleared returns if the "mime_type" field was cleared in this mutation.
func (m *DocumentMutation) MimeTypeCleared() bool {
	_, ok := m.clearedFields[document.FieldMimeType]
	return ok
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *DocumentMutation) ResetMimeType() {
	m.mime_type = nil
	delete(m.clearedFields, document.FieldMimeType)
}

// SetFileSize sets the "file_size" field.
func (m *DocumentMutation) SetFileSize(i int64) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *DocumentMutation) FileSize() (r int64, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *DocumentMutation) AddFileSize(i int64) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *DocumentMutation) AddedFileSize() (r int64, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *DocumentMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetContentID sets the "content_id" field.
func (m *DocumentMutation) SetContentID(s string) {
	m.content_id = &s
}

// ContentID returns the value of the "content_id" field in the mutation.
func (m *DocumentMutation) ContentID() (r string, exists bool) {
	v := m.content_id
	if v == nil {
		return
	}
	return *v, true
}

// OldContentID returns the old "content_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldContentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentID: %w", err)
	}
	return oldValue.ContentID, nil
}

// ResetContentID resets all changes to the "content_id" field.
func (m *DocumentMutation) ResetContentID() {
	m.content_id = nil
}

// SetContentHash sets the "content_hash" field.
func (m *DocumentMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *DocumentMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ClearContentHash clears the value of the "content_hash" field.
func (m *DocumentMutation) ClearContentHash() {
	m.content_hash = nil
	m.clearedFields[document.FieldContentHash] = struct{}{}
}

// ContentHashCleared returns if the "content_hash" field was cleared in this mutation.
func (m *DocumentMutation) ContentHashCleared() bool {
	_, ok := m.clearedFields[document.FieldContentHash]
	return ok
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *DocumentMutation) ResetContentHash() {
	m.content_hash = nil
	delete(m.clearedFields, document.FieldContentHash)
}

// SetTextContent sets the "text_content" field.
func (m *DocumentMutation) SetTextContent(s string) {
	m.text_content = &s
}

// TextContent returns the value of the "text_content" field in the mutation.
func (m *DocumentMutation) TextContent() (r string, exists bool) {
	v := m.text_content
	if v == nil {
		return
	}
	return *v, true
}

// OldTextContent returns the old "text_content" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldTextContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextContent: %w", err)
	}
	return oldValue.TextContent, nil
}

// ClearTextContent clears the value of the "text_content" field.
func (m *DocumentMutation) ClearTextContent() {
	m.text_content = nil
	m.clearedFields[document.FieldTextContent] = struct{}{}
}

// TextContentCleared returns if the "text_content" field was cleared in this mutation.
func (m *DocumentMutation) TextContentCleared() bool {
	_, ok := m.clearedFields[document.FieldTextContent]
	return ok
}

// ResetTextContent resets all changes to the "text_content" field.
func (m *DocumentMutation) ResetTextContent() {
	m.text_content = nil
	delete(m.clearedFields, document.FieldTextContent)
}

// SetMetadata sets the "metadata" field.
func (m *DocumentMutation) SetMetadata(value map[string]string) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *DocumentMutation) Metadata() (r map[string]string, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldMetadata(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *DocumentMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[document.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *DocumentMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[document.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *DocumentMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, document.FieldMetadata)
}

// SetTags sets the "tags" field.
func (m *DocumentMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *DocumentMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *DocumentMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *DocumentMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *DocumentMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[document.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *DocumentMutation) TagsCleared() bool {
	_, ok := m.clearedFields[document.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *DocumentMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, document.FieldTags)
}

// SetCategories sets the "categories" field.
func (m *DocumentMutation) SetCategories(s []string) {
	m.categories = &s
	m.appendcategories = nil
}

// Categories returns the value of the "categories" field in the mutation.
func (m *DocumentMutation) Categories() (r []string, exists bool) {
	v := m.categories
	if v == nil {
		return
	}
	return *v, true
}

// OldCategories returns the old "categories" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCategories(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategories is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategories requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategories: %w", err)
	}
	return oldValue.Categories, nil
}

// AppendCategories adds s to the "categories" field.
func (m *DocumentMutation) AppendCategories(s []string) {
	m.appendcategories = append(m.appendcategories, s...)
}

// AppendedCategories returns the list of values that were appended to the "categories" field in this mutation.
func (m *DocumentMutation) AppendedCategories() ([]string, bool) {
	if len(m.appendcategories) == 0 {
		return nil, false
	}
	return m.appendcategories, true
}

// ClearCategories clears the value of the "categories" field.
func (m *DocumentMutation) ClearCategories() {
	m.categories = nil
	m.appendcategories = nil
	m.clearedFields[document.FieldCategories] = struct{}{}
}

// CategoriesCleared returns if the "categories" field was cleared in this mutation.
func (m *DocumentMutation) CategoriesCleared() bool {
	_, ok := m.clearedFields[document.FieldCategories]
	return ok
}

// ResetCategories resets all changes to the "categories" field.
func (m *DocumentMutation) ResetCategories() {
	m.categories = nil
	m.appendcategories = nil
	delete(m.clearedFields, document.FieldCategories)
}

// SetCorrespondent sets the "correspondent" field.
func (m *DocumentMutation) SetCorrespondent(s string) {
	m.correspondent = &s
}

// Correspondent returns the value of the "correspondent" field in the mutation.
func (m *DocumentMutation) Correspondent() (r string, exists bool) {
	v := m.correspondent
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrespondent returns the old "correspondent" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCorrespondent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrespondent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrespondent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrespondent: %w", err)
	}
	return oldValue.Correspondent, nil
}

// ClearCorrespondent clears the value of the "correspondent" field.
func (m *DocumentMutation) ClearCorrespondent() {
	m.correspondent = nil
	m.clearedFields[document.FieldCorrespondent] = struct{}{}
}

// CorrespondentCleared returns if the "correspondent" field was cleared in this mutation.
func (m *DocumentMutation) CorrespondentCleared() bool {
	_, ok := m.clearedFields[document.FieldCorrespondent]
	return ok
}

// ResetCorrespondent resets all changes to the "correspondent" field.
func (m *DocumentMutation) ResetCorrespondent() {
	m.correspondent = nil
	delete(m.clearedFields, document.FieldCorrespondent)
}

// SetStatus sets the "status" field.
func (m *DocumentMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DocumentMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DocumentMutation) ResetStatus() {
	m.status = nil
}

// SetVersioned sets the "versioned" field.
func (m *DocumentMutation) SetVersioned(b bool) {
	m.versioned = &b
}

// Versioned returns the value of the "versioned" field in the mutation.
func (m *DocumentMutation) Versioned() (r bool, exists bool) {
	v := m.versioned
	if v == nil {
		return
	}
	return *v, true
}

// OldVersioned returns the old "versioned" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldVersioned(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersioned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersioned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersioned: %w", err)
	}
	return oldValue.Versioned, nil
}

// ResetVersioned resets all changes to the "versioned" field.
func (m *DocumentMutation) ResetVersioned() {
	m.versioned = nil
}

// SetMajorVersion sets the "major_version" field.
func (m *DocumentMutation) SetMajorVersion(i int) {
	m.major_version = &i
	m.addmajor_version = nil
}

// MajorVersion returns the value of the "major_version" field in the mutation.
func (m *DocumentMutation) MajorVersion() (r int, exists bool) {
	v := m.major_version
	if v == nil {
		return
	}
	return *v, true
}

// OldMajorVersion returns the old "major_version" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldMajorVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMajorVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMajorVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMajorVersion: %w", err)
	}
	return oldValue.MajorVersion, nil
}

// AddMajorVersion adds i to the "major_version" field.
func (m *DocumentMutation) AddMajorVersion(i int) {
	if m.addmajor_version != nil {
		*m.addmajor_version += i
	} else {
		m.addmajor_version = &i
	}
}

// AddedMajorVersion returns the value that was added to the "major_version" field in this mutation.
func (m *DocumentMutation) AddedMajorVersion() (r int, exists bool) {
	v := m.addmajor_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetMajorVersion resets all changes to the "major_version" field.
func (m *DocumentMutation) ResetMajorVersion() {
	m.major_version = nil
	m.addmajor_version = nil
}

// SetMinorVersion sets the "minor_version" field.
func (m *DocumentMutation) SetMinorVersion(i int) {
	m.minor_version = &i
	m.addminor_version = nil
}

// MinorVersion returns the value of the "minor_version" field in the mutation.
func (m *DocumentMutation) MinorVersion() (r int, exists bool) {
	v := m.minor_version
	if v == nil {
		return
	}
	return *v, true
}

// OldMinorVersion returns the old "minor_version" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldMinorVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinorVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinorVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinorVersion: %w", err)
	}
	return oldValue.MinorVersion, nil
}

// AddMinorVersion adds i to the "minor_version" field.
func (m *DocumentMutation) AddMinorVersion(i int) {
	if m.addminor_version != nil {
		*m.addminor_version += i
	} else {
		m.addminor_version = &i
	}
}

// AddedMinorVersion returns the value that was added to the "minor_version" field in this mutation.
func (m *DocumentMutation) AddedMinorVersion() (r int, exists bool) {
	v := m.addminor_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinorVersion resets all changes to the "minor_version" field.
func (m *DocumentMutation) ResetMinorVersion() {
	m.minor_version = nil
	m.addminor_version = nil
}

// SetVersionLabel sets the "version_label" field.
func (m *DocumentMutation) SetVersionLabel(s string) {
	m.version_label = &s
}

// VersionLabel returns the value of the "version_label" field in the mutation.
func (m *DocumentMutation) VersionLabel() (r string, exists bool) {
	v := m.version_label
	if v == nil {
		return
	}
	return *v, true
}

// OldVersionLabel returns the old "version_label" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldVersionLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersionLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersionLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersionLabel: %w", err)
	}
	return oldValue.VersionLabel, nil
}

// ClearVersionLabel clears the value of the "version_label" field.
func (m *DocumentMutation) ClearVersionLabel() {
	m.version_label = nil
	m.clearedFields[document.FieldVersionLabel] = struct{}{}
}

// VersionLabelCleared returns if the "version_label" field was cleared in this mutation.
func (m *DocumentMutation) VersionLabelCleared() bool {
	_, ok := m.clearedFields[document.FieldVersionLabel]
	return ok
}

// ResetVersionLabel resets all changes to the "version_label" field.
func (m *DocumentMutation) ResetVersionLabel() {
	m.version_label = nil
	delete(m.clearedFields, document.FieldVersionLabel)
}

// SetCurrentVersionID sets the "current_version_id" field.
func (m *DocumentMutation) SetCurrentVersionID(u uuid.UUID) {
	m.current_version_id = &u
}

// CurrentVersionID returns the value of the "current_version_id" field in the mutation.
func (m *DocumentMutation) CurrentVersionID() (r uuid.UUID, exists bool) {
	v := m.current_version_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentVersionID returns the old "current_version_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCurrentVersionID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentVersionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentVersionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentVersionID: %w", err)
	}
	return oldValue.CurrentVersionID, nil
}

// ClearCurrentVersionID clears the value of the "current_version_id" field.
func (m *DocumentMutation) ClearCurrentVersionID() {
	m.current_version_id = nil
	m.clearedFields[document.FieldCurrentVersionID] = struct{}{}
}

// CurrentVersionIDCleared returns if the "current_version_id" field was cleared in this mutation.
func (m *DocumentMutation) CurrentVersionIDCleared() bool {
	_, ok := m.clearedFields[document.FieldCurrentVersionID]
	return ok
}

// ResetCurrentVersionID resets all changes to the "current_version_id" field.
func (m *DocumentMutation) ResetCurrentVersionID() {
	m.current_version_id = nil
	delete(m.clearedFields, document.FieldCurrentVersionID)
}

// SetPreviewStatus sets the "preview_status" field.
func (m *DocumentMutation) SetPreviewStatus(s string) {
	m.preview_status = &s
}

// PreviewStatus returns the value of the "preview_status" field in the mutation.
func (m *DocumentMutation) PreviewStatus() (r string, exists bool) {
	v := m.preview_status
	if v == nil {
		return
	}
	return *v, true
}

// OldPreviewStatus returns the old "preview_status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldPreviewStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreviewStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreviewStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreviewStatus: %w", err)
	}
	return oldValue.PreviewStatus, nil
}

// ClearPreviewStatus clears the value of the "preview_status" field.
func (m *DocumentMutation) ClearPreviewStatus() {
	m.preview_status = nil
	m.clearedFields[document.FieldPreviewStatus] = struct{}{}
}

// PreviewStatusCleared returns if the "preview_status" field was cleared in this mutation.
func (m *DocumentMutation) PreviewStatusCleared() bool {
	_, ok := m.clearedFields[document.FieldPreviewStatus]
	return ok
}

// ResetPreviewStatus resets all changes to the "preview_status" field.
func (m *DocumentMutation) ResetPreviewStatus() {
	m.preview_status = nil
	delete(m.clearedFields, document.FieldPreviewStatus)
}

// SetPreviewFailureReason sets the "preview_failure_reason" field.
func (m *DocumentMutation) SetPreviewFailureReason(s string) {
	m.preview_failure_reason = &s
}

// PreviewFailureReason returns the value of the "preview_failure_reason" field in the mutation.
func (m *DocumentMutation) PreviewFailureReason() (r string, exists bool) {
	v := m.preview_failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldPreviewFailureReason returns the old "preview_failure_reason" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldPreviewFailureReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreviewFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreviewFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreviewFailureReason: %w", err)
	}
	return oldValue.PreviewFailureReason, nil
}

// ClearPreviewFailureReason clears the value of the "preview_failure_reason" field.
func (m *DocumentMutation) ClearPreviewFailureReason() {
	m.preview_failure_reason = nil
	m.clearedFields[document.FieldPreviewFailureReason] = struct{}{}
}

// PreviewFailureReasonCleared returns if the "preview_failure_reason" field was cleared in this mutation.
func (m *DocumentMutation) PreviewFailureReasonCleared() bool {
	_, ok := m.clearedFields[document.FieldPreviewFailureReason]
	return ok
}

// ResetPreviewFailureReason resets all changes to the "preview_failure_reason" field.
func (m *DocumentMutation) ResetPreviewFailureReason() {
	m.preview_failure_reason = nil
	delete(m.clearedFields, document.FieldPreviewFailureReason)
}

// SetPreviewLastUpdated sets the "preview_last_updated" field.
func (m *DocumentMutation) SetPreviewLastUpdated(t time.Time) {
	m.preview_last_updated = &t
}

// PreviewLastUpdated returns the value of the "preview_last_updated" field in the mutation.
func (m *DocumentMutation) PreviewLastUpdated() (r time.Time, exists bool) {
	v := m.preview_last_updated
	if v == nil {
		return
	}
	return *v, true
}

// OldPreviewLastUpdated returns the old "preview_last_updated" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldPreviewLastUpdated(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreviewLastUpdated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreviewLastUpdated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreviewLastUpdated: %w", err)
	}
	return oldValue.PreviewLastUpdated, nil
}

// ClearPreviewLastUpdated clears the value of the "preview_last_updated" field.
func (m *DocumentMutation) ClearPreviewLastUpdated() {
	m.preview_last_updated = nil
	m.clearedFields[document.FieldPreviewLastUpdated] = struct{}{}
}

// PreviewLastUpdatedCleared returns if the "preview_last_updated" field was cleared in this mutation.
func (m *DocumentMutation) PreviewLastUpdatedCleared() bool {
	_, ok := m.clearedFields[document.FieldPreviewLastUpdated]
	return ok
}

// ResetPreviewLastUpdated resets all changes to the "preview_last_updated" field.
func (m *DocumentMutation) ResetPreviewLastUpdated() {
	m.preview_last_updated = nil
	delete(m.clearedFields, document.FieldPreviewLastUpdated)
}

// SetCreatedBy sets the "created_by" field.
func (m *DocumentMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *DocumentMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *DocumentMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DocumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DocumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DocumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddVersionIDs adds the "versions" edge to the Version entity by ids.
func (m *DocumentMutation) AddVersionIDs(ids ...uuid.UUID) {
	if m.versions == nil {
		m.versions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.versions[ids[i]] = struct{}{}
	}
}

// ClearVersions clears the "versions" edge to the Version entity.
func (m *DocumentMutation) ClearVersions() {
	m.clearedversions = true
}

// VersionsCleared reports if the "versions" edge to the Version entity was cleared.
func (m *DocumentMutation) VersionsCleared() bool {
	return m.clearedversions
}

// RemoveVersionIDs removes the "versions" edge to the Version entity by IDs.
func (m *DocumentMutation) RemoveVersionIDs(ids ...uuid.UUID) {
	if m.removedversions == nil {
		m.removedversions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.versions, ids[i])
		m.removedversions[ids[i]] = struct{}{}
	}
}

// RemovedVersions returns the removed IDs of the "versions" edge to the Version entity.
func (m *DocumentMutation) RemovedVersionsIDs() (ids []uuid.UUID) {
	for id := range m.removedversions {
		ids = append(ids, id)
	}
	return
}

// VersionsIDs returns the "versions" edge IDs in the mutation.
func (m *DocumentMutation) VersionsIDs() (ids []uuid.UUID) {
	for id := range m.versions {
		ids = append(ids, id)
	}
	return
}

// ResetVersions resets all changes to the "versions" edge.
func (m *DocumentMutation) ResetVersions() {
	m.versions = nil
	m.clearedversions = false
	m.removedversions = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 23)
	if m.name != nil {
		fields = append(fields, document.FieldName)
	}
	if m.parent_folder_id != nil {
		fields = append(fields, document.FieldParentFolderID)
	}
	if m.mime_type != nil {
		fields = append(fields, document.FieldMimeType)
	}
	if m.file_size != nil {
		fields = append(fields, document.FieldFileSize)
	}
	if m.content_id != nil {
		fields = append(fields, document.FieldContentID)
	}
	if m.content_hash != nil {
		fields = append(fields, document.FieldContentHash)
	}
	if m.text_content != nil {
		fields = append(fields, document.FieldTextContent)
	}
	if m.metadata != nil {
		fields = append(fields, document.FieldMetadata)
	}
	if m.tags != nil {
		fields = append(fields, document.FieldTags)
	}
	if m.categories != nil {
		fields = append(fields, document.FieldCategories)
	}
	if m.correspondent != nil {
		fields = append(fields, document.FieldCorrespondent)
	}
	if m.status != nil {
		fields = append(fields, document.FieldStatus)
	}
	if m.versioned != nil {
		fields = append(fields, document.FieldVersioned)
	}
	if m.major_version != nil {
		fields = append(fields, document.FieldMajorVersion)
	}
	if m.minor_version != nil {
		fields = append(fields, document.FieldMinorVersion)
	}
	if m.version_label != nil {
		fields = append(fields, document.FieldVersionLabel)
	}
	if m.current_version_id != nil {
		fields = append(fields, document.FieldCurrentVersionID)
	}
	if m.preview_status != nil {
		fields = append(fields, document.FieldPreviewStatus)
	}
	if m.preview_failure_reason != nil {
		fields = append(fields, document.FieldPreviewFailureReason)
	}
	if m.preview_last_updated != nil {
		fields = append(fields, document.FieldPreviewLastUpdated)
	}
	if m.created_by != nil {
		fields = append(fields, document.FieldCreatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, document.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldName:
		return m.Name()
	case document.FieldParentFolderID:
		return m.ParentFolderID()
	case document.FieldMimeType:
		return m.MimeType()
	case document.FieldFileSize:
		return m.FileSize()
	case document.FieldContentID:
		return m.ContentID()
	case document.FieldContentHash:
		return m.ContentHash()
	case document.FieldTextContent:
		return m.TextContent()
	case document.FieldMetadata:
		return m.Metadata()
	case document.FieldTags:
		return m.Tags()
	case document.FieldCategories:
		return m.Categories()
	case document.FieldCorrespondent:
		return m.Correspondent()
	case document.FieldStatus:
		return m.Status()
	case document.FieldVersioned:
		return m.Versioned()
	case document.FieldMajorVersion:
		return m.MajorVersion()
	case document.FieldMinorVersion:
		return m.MinorVersion()
	case document.FieldVersionLabel:
		return m.VersionLabel()
	case document.FieldCurrentVersionID:
		return m.CurrentVersionID()
	case document.FieldPreviewStatus:
		return m.PreviewStatus()
	case document.FieldPreviewFailureReason:
		return m.PreviewFailureReason()
	case document.FieldPreviewLastUpdated:
		return m.PreviewLastUpdated()
	case document.FieldCreatedBy:
		return m.CreatedBy()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	case document.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldName:
		return m.OldName(ctx)
	case document.FieldParentFolderID:
		return m.OldParentFolderID(ctx)
	case document.FieldMimeType:
		return m.OldMimeType(ctx)
	case document.FieldFileSize:
		return m.OldFileSize(ctx)
	case document.FieldContentID:
		return m.OldContentID(ctx)
	case document.FieldContentHash:
		return m.OldContentHash(ctx)
	case document.FieldTextContent:
		return m.OldTextContent(ctx)
	case document.FieldMetadata:
		return m.OldMetadata(ctx)
	case document.FieldTags:
		return m.OldTags(ctx)
	case document.FieldCategories:
		return m.OldCategories(ctx)
	case document.FieldCorrespondent:
		return m.OldCorrespondent(ctx)
	case document.FieldStatus:
		return m.OldStatus(ctx)
	case document.FieldVersioned:
		return m.OldVersioned(ctx)
	case document.FieldMajorVersion:
		return m.OldMajorVersion(ctx)
	case document.FieldMinorVersion:
		return m.OldMinorVersion(ctx)
	case document.FieldVersionLabel:
		return m.OldVersionLabel(ctx)
	case document.FieldCurrentVersionID:
		return m.OldCurrentVersionID(ctx)
	case document.FieldPreviewStatus:
		return m.OldPreviewStatus(ctx)
	case document.FieldPreviewFailureReason:
		return m.OldPreviewFailureReason(ctx)
	case document.FieldPreviewLastUpdated:
		return m.OldPreviewLastUpdated(ctx)
	case document.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case document.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case document.FieldParentFolderID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentFolderID(v)
		return nil
	case document.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case document.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case document.FieldContentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentID(v)
		return nil
	case document.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case document.FieldTextContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextContent(v)
		return nil
	case document.FieldMetadata:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case document.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case document.FieldCategories:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategories(v)
		return nil
	case document.FieldCorrespondent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrespondent(v)
		return nil
	case document.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case document.FieldVersioned:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersioned(v)
		return nil
	case document.FieldMajorVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMajorVersion(v)
		return nil
	case document.FieldMinorVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinorVersion(v)
		return nil
	case document.FieldVersionLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersionLabel(v)
		return nil
	case document.FieldCurrentVersionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentVersionID(v)
		return nil
	case document.FieldPreviewStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreviewStatus(v)
		return nil
	case document.FieldPreviewFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreviewFailureReason(v)
		return nil
	case document.FieldPreviewLastUpdated:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreviewLastUpdated(v)
		return nil
	case document.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case document.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, document.FieldFileSize)
	}
	if m.addmajor_version != nil {
		fields = append(fields, document.FieldMajorVersion)
	}
	if m.addminor_version != nil {
		fields = append(fields, document.FieldMinorVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldFileSize:
		return m.AddedFileSize()
	case document.FieldMajorVersion:
		return m.AddedMajorVersion()
	case document.FieldMinorVersion:
		return m.AddedMinorVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	case document.FieldMajorVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMajorVersion(v)
		return nil
	case document.FieldMinorVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinorVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldParentFolderID) {
		fields = append(fields, document.FieldParentFolderID)
	}
	if m.FieldCleared(document.FieldMimeType) {
		fields = append(fields, document.FieldMimeType)
	}
	if m.FieldCleared(document.FieldContentHash) {
		fields = append(fields, document.FieldContentHash)
	}
	if m.FieldCleared(document.FieldTextContent) {
		fields = append(fields, document.FieldTextContent)
	}
	if m.FieldCleared(document.FieldMetadata) {
		fields = append(fields, document.FieldMetadata)
	}
	if m.FieldCleared(document.FieldTags) {
		fields = append(fields, document.FieldTags)
	}
	if m.FieldCleared(document.FieldCategories) {
		fields = append(fields, document.FieldCategories)
	}
	if m.FieldCleared(document.FieldCorrespondent) {
		fields = append(fields, document.FieldCorrespondent)
	}
	if m.FieldCleared(document.FieldVersionLabel) {
		fields = append(fields, document.FieldVersionLabel)
	}
	if m.FieldCleared(document.FieldCurrentVersionID) {
		fields = append(fields, document.FieldCurrentVersionID)
	}
	if m.FieldCleared(document.FieldPreviewStatus) {
		fields = append(fields, document.FieldPreviewStatus)
	}
	if m.FieldCleared(document.FieldPreviewFailureReason) {
		fields = append(fields, document.FieldPreviewFailureReason)
	}
	if m.FieldCleared(document.FieldPreviewLastUpdated) {
		fields = append(fields, document.FieldPreviewLastUpdated)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldParentFolderID:
		m.ClearParentFolderID()
		return nil
	case document.FieldMimeType:
		m.ClearMimeType()
		return nil
	case document.FieldContentHash:
		m.ClearContentHash()
		return nil
	case document.FieldTextContent:
		m.ClearTextContent()
		return nil
	case document.FieldMetadata:
		m.ClearMetadata()
		return nil
	case document.FieldTags:
		m.ClearTags()
		return nil
	case document.FieldCategories:
		m.ClearCategories()
		return nil
	case document.FieldCorrespondent:
		m.ClearCorrespondent()
		return nil
	case document.FieldVersionLabel:
		m.ClearVersionLabel()
		return nil
	case document.FieldCurrentVersionID:
		m.ClearCurrentVersionID()
		return nil
	case document.FieldPreviewStatus:
		m.ClearPreviewStatus()
		return nil
	case document.FieldPreviewFailureReason:
		m.ClearPreviewFailureReason()
		return nil
	case document.FieldPreviewLastUpdated:
		m.ClearPreviewLastUpdated()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldName:
		m.ResetName()
		return nil
	case document.FieldParentFolderID:
		m.ResetParentFolderID()
		return nil
	case document.FieldMimeType:
		m.ResetMimeType()
		return nil
	case document.FieldFileSize:
		m.ResetFileSize()
		return nil
	case document.FieldContentID:
		m.ResetContentID()
		return nil
	case document.FieldContentHash:
		m.ResetContentHash()
		return nil
	case document.FieldTextContent:
		m.ResetTextContent()
		return nil
	case document.FieldMetadata:
		m.ResetMetadata()
		return nil
	case document.FieldTags:
		m.ResetTags()
		return nil
	case document.FieldCategories:
		m.ResetCategories()
		return nil
	case document.FieldCorrespondent:
		m.ResetCorrespondent()
		return nil
	case document.FieldStatus:
		m.ResetStatus()
		return nil
	case document.FieldVersioned:
		m.ResetVersioned()
		return nil
	case document.FieldMajorVersion:
		m.ResetMajorVersion()
		return nil
	case document.FieldMinorVersion:
		m.ResetMinorVersion()
		return nil
	case document.FieldVersionLabel:
		m.ResetVersionLabel()
		return nil
	case document.FieldCurrentVersionID:
		m.ResetCurrentVersionID()
		return nil
	case document.FieldPreviewStatus:
		m.ResetPreviewStatus()
		return nil
	case document.FieldPreviewFailureReason:
		m.ResetPreviewFailureReason()
		return nil
	case document.FieldPreviewLastUpdated:
		m.ResetPreviewLastUpdated()
		return nil
	case document.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case document.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.versions != nil {
		edges = append(edges, document.EdgeVersions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeVersions:
		ids := make([]ent.Value, 0, len(m.versions))
		for id := range m.versions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedversions != nil {
		edges = append(edges, document.EdgeVersions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeVersions:
		ids := make([]ent.Value, 0, len(m.removedversions))
		for id := range m.removedversions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedversions {
		edges = append(edges, document.EdgeVersions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeVersions:
		return m.clearedversions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeVersions:
		m.ResetVersions()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// VersionMutation represents an operation that mutates the Version nodes in the graph.
type VersionMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	version_number    *int
	addversion_number *int
	major_version     *int
	addmajor_version  *int
	minor_version     *int
	addminor_version  *int
	version_label     *string
	major_flag        *bool
	content_id        *string
	mime_type         *string
	file_size         *int64
	addfile_size      *int64
	content_hash      *string
	comment           *string
	created_by        *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	document          *uuid.UUID
	cleareddocument   bool
	done              bool
	oldValue          func(context.Context) (*Version, error)
	predicates        []predicate.Version
}

var _ ent.Mutation = (*VersionMutation)(nil)

// versionOption allows management of the mutation configuration using functional options.
type versionOption func(*VersionMutation)

// newVersionMutation creates new mutation for the Version entity.
func newVersionMutation(c config, op Op, opts ...versionOption) *VersionMutation {
	m := &VersionMutation{
		config:        c,
		op:            op,
		typ:           TypeVersion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVersionID sets the ID field of the mutation.
func withVersionID(id uuid.UUID) versionOption {
	return func(m *VersionMutation) {
		var (
			err   error
			once  sync.Once
			value *Version
		)
		m.oldValue = func(ctx context.Context) (*Version, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Version.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVersion sets the old Version of the mutation.
func withVersion(node *Version) versionOption {
	return func(m *VersionMutation) {
		m.oldValue = func(context.Context) (*Version, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VersionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VersionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Version entities.
func (m *VersionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VersionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VersionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Version.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *VersionMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *VersionMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the Version entity.
// If the Version object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *VersionMutation) ResetDocumentID() {
	m.document = nil
}

// SetVersionNumber sets the "version_number" field.
func (m *VersionMutation) SetVersionNumber(i int) {
	m.version_number = &i
	m.addversion_number = nil
}

// VersionNumber returns the value of the "version_number" field in the mutation.
func (m *VersionMutation) VersionNumber() (r int, exists bool) {
	v := m.version_number
	if v == nil {
		return
	}
	return *v, true
}

// OldVersionNumber returns the old "version_number" field's value of the Version entity.
// If the Version object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionMutation) OldVersionNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersionNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersionNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersionNumber: %w", err)
	}
	return oldValue.VersionNumber, nil
}

// AddVersionNumber adds i to the "version_number" field.
func (m *VersionMutation) AddVersionNumber(i int) {
	if m.addversion_number != nil {
		*m.addversion_number += i
	} else {
		m.addversion_number = &i
	}
}

// AddedVersionNumber returns the value that was added to the "version_number" field in this mutation.
func (m *VersionMutation) AddedVersionNumber() (r int, exists bool) {
	v := m.addversion_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersionNumber resets all changes to the "version_number" field.
func (m *VersionMutation) ResetVersionNumber() {
	m.version_number = nil
	m.addversion_number = nil
}

// SetMajorVersion sets the "major_version" field.
func (m *VersionMutation) SetMajorVersion(i int) {
	m.major_version = &i
	m.addmajor_version = nil
}

// MajorVersion returns the value of the "major_version" field in the mutation.
func (m *VersionMutation) MajorVersion() (r int, exists bool) {
	v := m.major_version
	if v == nil {
		return
	}
	return *v, true
}

// OldMajorVersion returns the old "major_version" field's value of the Version entity.
// If the Version object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionMutation) OldMajorVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMajorVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMajorVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMajorVersion: %w", err)
	}
	return oldValue.MajorVersion, nil
}

// AddMajorVersion adds i to the "major_version" field.
func (m *VersionMutation) AddMajorVersion(i int) {
	if m.addmajor_version != nil {
		*m.addmajor_version += i
	} else {
		m.addmajor_version = &i
	}
}

// AddedMajorVersion returns the value that was added to the "major_version" field in this mutation.
func (m *VersionMutation) AddedMajorVersion() (r int, exists bool) {
	v := m.addmajor_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetMajorVersion resets all changes to the "major_version" field.
func (m *VersionMutation) ResetMajorVersion() {
	m.major_version = nil
	m.addmajor_version = nil
}

// SetMinorVersion sets the "minor_version" field.
func (m *VersionMutation) SetMinorVersion(i int) {
	m.minor_version = &i
	m.addminor_version = nil
}

// MinorVersion returns the value of the "minor_version" field in the mutation.
func (m *VersionMutation) MinorVersion() (r int, exists bool) {
	v := m.minor_version
	if v == nil {
		return
	}
	return *v, true
}

// OldMinorVersion returns the old "minor_version" field's value of the Version entity.
// If the Version object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionMutation) OldMinorVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinorVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinorVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinorVersion: %w", err)
	}
	return oldValue.MinorVersion, nil
}

// AddMinorVersion adds i to the "minor_version" field.
func (m *VersionMutation) AddMinorVersion(i int) {
	if m.addminor_version != nil {
		*m.addminor_version += i
	} else {
		m.addminor_version = &i
	}
}

// AddedMinorVersion returns the value that was added to the "minor_version" field in this mutation.
func (m *VersionMutation) AddedMinorVersion() (r int, exists bool) {
	v := m.addminor_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetMinorVersion resets all changes to the "minor_version" field.
func (m *VersionMutation) ResetMinorVersion() {
	m.minor_version = nil
	m.addminor_version = nil
}

// SetVersionLabel sets the "version_label" field.
func (m *VersionMutation) SetVersionLabel(s string) {
	m.version_label = &s
}

// VersionLabel returns the value of the "version_label" field in the mutation.
func (m *VersionMutation) VersionLabel() (r string, exists bool) {
	v := m.version_label
	if v == nil {
		return
	}
	return *v, true
}

// OldVersionLabel returns the old "version_label" field's value of the Version entity.
// If the Version object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionMutation) OldVersionLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersionLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersionLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersionLabel: %w", err)
	}
	return oldValue.VersionLabel, nil
}

// ResetVersionLabel resets all changes to the "version_label" field.
func (m *VersionMutation) ResetVersionLabel() {
	m.version_label = nil
}

// SetMajorFlag sets the "major_flag" field.
func (m *VersionMutation) SetMajorFlag(b bool) {
	m.major_flag = &b
}

// MajorFlag returns the value of the "major_flag" field in the mutation.
func (m *VersionMutation) MajorFlag() (r bool, exists bool) {
	v := m.major_flag
	if v == nil {
		return
	}
	return *v, true
}

// OldMajorFlag returns the old "major_flag" field's value of the Version entity.
// If the Version object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionMutation) OldMajorFlag(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMajorFlag is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMajorFlag requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMajorFlag: %w", err)
	}
	return oldValue.MajorFlag, nil
}

// ResetMajorFlag resets all changes to the "major_flag" field.
func (m *VersionMutation) ResetMajorFlag() {
	m.major_flag = nil
}

// SetContentID sets the "content_id" field.
func (m *VersionMutation) SetContentID(s string) {
	m.content_id = &s
}

// ContentID returns the value of the "content_id" field in the mutation.
func (m *VersionMutation) ContentID() (r string, exists bool) {
	v := m.content_id
	if v == nil {
		return
	}
	return *v, true
}

// OldContentID returns the old "content_id" field's value of the Version entity.
// If the Version object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionMutation) OldContentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentID: %w", err)
	}
	return oldValue.ContentID, nil
}

// ResetContentID resets all changes to the "content_id" field.
func (m *VersionMutation) ResetContentID() {
	m.content_id = nil
}

// SetMimeType sets the "mime_type" field.
func (m *VersionMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *VersionMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the Version entity.
// If the Version object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionMutation) OldMimeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ClearMimeType clears the value of the "mime_type" field.
func (m *VersionMutation) ClearMimeType() {
	m.mime_type = nil
	m.clearedFields[version.FieldMimeType] = struct{}{}
}

// MimeTypeCleared returns if the "mime_type" field was cleared in this mutation.
func (m *VersionMutation) MimeTypeCleared() bool {
	_, ok := m.clearedFields[version.FieldMimeType]
	return ok
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *VersionMutation) ResetMimeType() {
	m.mime_type = nil
	delete(m.clearedFields, version.FieldMimeType)
}

// SetFileSize sets the "file_size" field.
func (m *VersionMutation) SetFileSize(i int64) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *VersionMutation) FileSize() (r int64, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the Version entity.
// If the Version object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionMutation) OldFileSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *VersionMutation) AddFileSize(i int64) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *VersionMutation) AddedFileSize() (r int64, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *VersionMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetContentHash sets the "content_hash" field.
func (m *VersionMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *VersionMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Version entity.
// If the Version object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ClearContentHash clears the value of the "content_hash" field.
func (m *VersionMutation) ClearContentHash() {
	m.content_hash = nil
	m.clearedFields[version.FieldContentHash] = struct{}{}
}

// ContentHashCleared returns if the "content_hash" field was cleared in this mutation.
func (m *VersionMutation) ContentHashCleared() bool {
	_, ok := m.clearedFields[version.FieldContentHash]
	return ok
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *VersionMutation) ResetContentHash() {
	m.content_hash = nil
	delete(m.clearedFields, version.FieldContentHash)
}

// SetComment sets the "comment" field.
func (m *VersionMutation) SetComment(s string) {
	m.comment = &s
}

// Comment returns the value of the "comment" field in the mutation.
func (m *VersionMutation) Comment() (r string, exists bool) {
	v := m.comment
	if v == nil {
		return
	}
	return *v, true
}

// OldComment returns the old "comment" field's value of the Version entity.
// If the Version object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionMutation) OldComment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComment: %w", err)
	}
	return oldValue.Comment, nil
}

// ClearComment clears the value of the "comment" field.
func (m *VersionMutation) ClearComment() {
	m.comment = nil
	m.clearedFields[version.FieldComment] = struct{}{}
}

// CommentCleared returns if the "comment" field was cleared in this mutation.
func (m *VersionMutation) CommentCleared() bool {
	_, ok := m.clearedFields[version.FieldComment]
	return ok
}

// ResetComment resets all changes to the "comment" field.
func (m *VersionMutation) ResetComment() {
	m.comment = nil
	delete(m.clearedFields, version.FieldComment)
}

// SetCreatedBy sets the "created_by" field.
func (m *VersionMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *VersionMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Version entity.
// If the Version object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *VersionMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[version.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *VersionMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[version.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *VersionMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, version.FieldCreatedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *VersionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VersionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Version entity.
// If the Version object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VersionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VersionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *VersionMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[version.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *VersionMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *VersionMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *VersionMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the VersionMutation builder.
func (m *VersionMutation) Where(ps ...predicate.Version) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VersionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VersionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Version, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VersionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VersionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Version).
func (m *VersionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VersionMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.document != nil {
		fields = append(fields, version.FieldDocumentID)
	}
	if m.version_number != nil {
		fields = append(fields, version.FieldVersionNumber)
	}
	if m.major_version != nil {
		fields = append(fields, version.FieldMajorVersion)
	}
	if m.minor_version != nil {
		fields = append(fields, version.FieldMinorVersion)
	}
	if m.version_label != nil {
		fields = append(fields, version.FieldVersionLabel)
	}
	if m.major_flag != nil {
		fields = append(fields, version.FieldMajorFlag)
	}
	if m.content_id != nil {
		fields = append(fields, version.FieldContentID)
	}
	if m.mime_type != nil {
		fields = append(fields, version.FieldMimeType)
	}
	if m.file_size != nil {
		fields = append(fields, version.FieldFileSize)
	}
	if m.content_hash != nil {
		fields = append(fields, version.FieldContentHash)
	}
	if m.comment != nil {
		fields = append(fields, version.FieldComment)
	}
	if m.created_by != nil {
		fields = append(fields, version.FieldCreatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, version.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VersionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case version.FieldDocumentID:
		return m.DocumentID()
	case version.FieldVersionNumber:
		return m.VersionNumber()
	case version.FieldMajorVersion:
		return m.MajorVersion()
	case version.FieldMinorVersion:
		return m.MinorVersion()
	case version.FieldVersionLabel:
		return m.VersionLabel()
	case version.FieldMajorFlag:
		return m.MajorFlag()
	case version.FieldContentID:
		return m.ContentID()
	case version.FieldMimeType:
		return m.MimeType()
	case version.FieldFileSize:
		return m.FileSize()
	case version.FieldContentHash:
		return m.ContentHash()
	case version.FieldComment:
		return m.Comment()
	case version.FieldCreatedBy:
		return m.CreatedBy()
	case version.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VersionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case version.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case version.FieldVersionNumber:
		return m.OldVersionNumber(ctx)
	case version.FieldMajorVersion:
		return m.OldMajorVersion(ctx)
	case version.FieldMinorVersion:
		return m.OldMinorVersion(ctx)
	case version.FieldVersionLabel:
		return m.OldVersionLabel(ctx)
	case version.FieldMajorFlag:
		return m.OldMajorFlag(ctx)
	case version.FieldContentID:
		return m.OldContentID(ctx)
	case version.FieldMimeType:
		return m.OldMimeType(ctx)
	case version.FieldFileSize:
		return m.OldFileSize(ctx)
	case version.FieldContentHash:
		return m.OldContentHash(ctx)
	case version.FieldComment:
		return m.OldComment(ctx)
	case version.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case version.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Version field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VersionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case version.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case version.FieldVersionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersionNumber(v)
		return nil
	case version.FieldMajorVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMajorVersion(v)
		return nil
	case version.FieldMinorVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinorVersion(v)
		return nil
	case version.FieldVersionLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersionLabel(v)
		return nil
	case version.FieldMajorFlag:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMajorFlag(v)
		return nil
	case version.FieldContentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentID(v)
		return nil
	case version.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case version.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case version.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case version.FieldComment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComment(v)
		return nil
	case version.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case version.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Version field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VersionMutation) AddedFields() []string {
	var fields []string
	if m.addversion_number != nil {
		fields = append(fields, version.FieldVersionNumber)
	}
	if m.addmajor_version != nil {
		fields = append(fields, version.FieldMajorVersion)
	}
	if m.addminor_version != nil {
		fields = append(fields, version.FieldMinorVersion)
	}
	if m.addfile_size != nil {
		fields = append(fields, version.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VersionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case version.FieldVersionNumber:
		return m.AddedVersionNumber()
	case version.FieldMajorVersion:
		return m.AddedMajorVersion()
	case version.FieldMinorVersion:
		return m.AddedMinorVersion()
	case version.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VersionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case version.FieldVersionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersionNumber(v)
		return nil
	case version.FieldMajorVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMajorVersion(v)
		return nil
	case version.FieldMinorVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinorVersion(v)
		return nil
	case version.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown Version numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VersionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(version.FieldMimeType) {
		fields = append(fields, version.FieldMimeType)
	}
	if m.FieldCleared(version.FieldContentHash) {
		fields = append(fields, version.FieldContentHash)
	}
	if m.FieldCleared(version.FieldComment) {
		fields = append(fields, version.FieldComment)
	}
	if m.FieldCleared(version.FieldCreatedBy) {
		fields = append(fields, version.FieldCreatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VersionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VersionMutation) ClearField(name string) error {
	switch name {
	case version.FieldMimeType:
		m.ClearMimeType()
		return nil
	case version.FieldContentHash:
		m.ClearContentHash()
		return nil
	case version.FieldComment:
		m.ClearComment()
		return nil
	case version.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown Version nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VersionMutation) ResetField(name string) error {
	switch name {
	case version.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case version.FieldVersionNumber:
		m.ResetVersionNumber()
		return nil
	case version.FieldMajorVersion:
		m.ResetMajorVersion()
		return nil
	case version.FieldMinorVersion:
		m.ResetMinorVersion()
		return nil
	case version.FieldVersionLabel:
		m.ResetVersionLabel()
		return nil
	case version.FieldMajorFlag:
		m.ResetMajorFlag()
		return nil
	case version.FieldContentID:
		m.ResetContentID()
		return nil
	case version.FieldMimeType:
		m.ResetMimeType()
		return nil
	case version.FieldFileSize:
		m.ResetFileSize()
		return nil
	case version.FieldContentHash:
		m.ResetContentHash()
		return nil
	case version.FieldComment:
		m.ResetComment()
		return nil
	case version.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case version.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Version field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VersionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, version.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VersionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case version.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VersionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VersionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VersionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, version.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VersionMutation) EdgeCleared(name string) bool {
	switch name {
	case version.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VersionMutation) ClearEdge(name string) error {
	switch name {
	case version.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown Version unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VersionMutation) ResetEdge(name string) error {
	switch name {
	case version.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown Version edge %s", name)
}
