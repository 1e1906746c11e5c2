package entity

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/docshelf/docshelf/constants"
)

// AutomationRule is a user-defined if-this-then-that rule evaluated on
// document lifecycle triggers.
type AutomationRule struct {
	ID         uuid.UUID             `json:"id"`
	Name       string                `json:"name"`
	Trigger    constants.TriggerType `json:"trigger"`
	Enabled    bool                  `json:"enabled"`
	Conditions []RuleCondition       `json:"conditions"`
	Actions    []RuleAction          `json:"actions"`
	Owner      string                `json:"owner,omitempty"`
}

// RuleCondition compares one document field against a value.
type RuleCondition struct {
	Field    string `json:"field"`    // name, mime_type, file_size, text, tag
	Operator string `json:"operator"` // EQUALS, CONTAINS, STARTS_WITH, GT, LT
	Value    string `json:"value"`
}

// RuleAction mutates the document when the rule's conditions match.
type RuleAction struct {
	Type   string          `json:"type"` // ADD_TAG, SET_CATEGORY, SET_CORRESPONDENT
	Params json.RawMessage `json:"params"`
}

// RuleExecutionResult records the outcome of evaluating one rule against one
// document.
type RuleExecutionResult struct {
	RuleID           uuid.UUID `json:"rule_id"`
	RuleName         string    `json:"rule_name"`
	ConditionMatched bool      `json:"condition_matched"`
	Success          bool      `json:"success"`
	Error            string    `json:"error,omitempty"`
	ActionsExecuted  int       `json:"actions_executed"`
}
