package rules

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docshelf/docshelf/constants"
	"github.com/docshelf/docshelf/internal/entity"
)

type staticSource struct {
	rules []*entity.AutomationRule
	err   error
}

func (s *staticSource) ListEnabledByTrigger(ctx context.Context, trigger constants.TriggerType) ([]*entity.AutomationRule, error) {
	return s.rules, s.err
}

func testEngine(rules ...*entity.AutomationRule) *Engine {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewEngine(&staticSource{rules: rules}, logger)
}

func params(t *testing.T, v any) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func testDoc() *entity.Document {
	return &entity.Document{
		ID:          uuid.New(),
		Name:        "invoice-march.pdf",
		MimeType:    "application/pdf",
		FileSize:    4096,
		TextContent: "Invoice from ACME Industries",
	}
}

func TestEvaluateCondition(t *testing.T) {
	doc := testDoc()

	tests := []struct {
		name    string
		cond    entity.RuleCondition
		want    bool
		wantErr bool
	}{
		{name: "name contains", cond: entity.RuleCondition{Field: "name", Operator: "CONTAINS", Value: "invoice"}, want: true},
		{name: "name starts with", cond: entity.RuleCondition{Field: "name", Operator: "STARTS_WITH", Value: "Invoice"}, want: true},
		{name: "mime equals", cond: entity.RuleCondition{Field: "mime_type", Operator: "EQUALS", Value: "application/pdf"}, want: true},
		{name: "text contains", cond: entity.RuleCondition{Field: "text", Operator: "CONTAINS", Value: "acme"}, want: true},
		{name: "size greater than", cond: entity.RuleCondition{Field: "file_size", Operator: "GT", Value: "1024"}, want: true},
		{name: "size less than fails", cond: entity.RuleCondition{Field: "file_size", Operator: "LT", Value: "1024"}, want: false},
		{name: "bad numeric value", cond: entity.RuleCondition{Field: "file_size", Operator: "GT", Value: "big"}, wantErr: true},
		{name: "unknown field", cond: entity.RuleCondition{Field: "owner", Operator: "EQUALS", Value: "x"}, wantErr: true},
		{name: "bad operator for string", cond: entity.RuleCondition{Field: "name", Operator: "GT", Value: "x"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := evaluateCondition(doc, tt.cond)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateAndExecuteAppliesMatchingRules(t *testing.T) {
	doc := testDoc()
	engine := testEngine(
		&entity.AutomationRule{
			ID:      uuid.New(),
			Name:    "tag invoices",
			Enabled: true,
			Conditions: []entity.RuleCondition{
				{Field: "name", Operator: "CONTAINS", Value: "invoice"},
			},
			Actions: []entity.RuleAction{
				{Type: constants.ActionAddTag, Params: params(t, map[string]string{"tag": "invoice"})},
				{Type: constants.ActionSetCategory, Params: params(t, map[string]string{"category": "Finance"})},
			},
		},
		&entity.AutomationRule{
			ID:      uuid.New(),
			Name:    "unmatched rule",
			Enabled: true,
			Conditions: []entity.RuleCondition{
				{Field: "name", Operator: "CONTAINS", Value: "contract"},
			},
			Actions: []entity.RuleAction{
				{Type: constants.ActionAddTag, Params: params(t, map[string]string{"tag": "contract"})},
			},
		},
	)

	results, err := engine.EvaluateAndExecute(context.Background(), doc, constants.TriggerDocumentCreated)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.True(t, results[0].ConditionMatched)
	assert.True(t, results[0].Success)
	assert.Equal(t, 2, results[0].ActionsExecuted)
	assert.False(t, results[1].ConditionMatched)

	assert.True(t, doc.HasTag("invoice"))
	assert.True(t, doc.HasCategory("Finance"))
	assert.False(t, doc.HasTag("contract"))
}

func TestRuleFailureDoesNotBlockLaterRules(t *testing.T) {
	doc := testDoc()
	engine := testEngine(
		&entity.AutomationRule{
			ID:      uuid.New(),
			Name:    "broken action",
			Enabled: true,
			Actions: []entity.RuleAction{
				{Type: constants.ActionAddTag, Params: json.RawMessage(`{"wrong":"shape"}`)},
			},
		},
		&entity.AutomationRule{
			ID:      uuid.New(),
			Name:    "working rule",
			Enabled: true,
			Actions: []entity.RuleAction{
				{Type: constants.ActionSetCorrespondent, Params: params(t, map[string]string{"correspondent": "ACME"})},
			},
		},
	)

	results, err := engine.EvaluateAndExecute(context.Background(), doc, constants.TriggerDocumentCreated)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.False(t, results[0].Success)
	assert.NotEmpty(t, results[0].Error)
	assert.True(t, results[1].Success)
	require.NotNil(t, doc.Correspondent)
	assert.Equal(t, "ACME", *doc.Correspondent)
}

func TestValidateActionParams(t *testing.T) {
	tests := []struct {
		name       string
		actionType string
		raw        string
		wantErr    bool
	}{
		{name: "valid add tag", actionType: constants.ActionAddTag, raw: `{"tag":"x"}`},
		{name: "empty tag rejected", actionType: constants.ActionAddTag, raw: `{"tag":""}`, wantErr: true},
		{name: "extra field rejected", actionType: constants.ActionAddTag, raw: `{"tag":"x","extra":1}`, wantErr: true},
		{name: "valid category", actionType: constants.ActionSetCategory, raw: `{"category":"Finance"}`},
		{name: "missing field rejected", actionType: constants.ActionSetCorrespondent, raw: `{}`, wantErr: true},
		{name: "unknown action type", actionType: "DELETE_EVERYTHING", raw: `{}`, wantErr: true},
		{name: "malformed json", actionType: constants.ActionAddTag, raw: `{`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateActionParams(tt.actionType, json.RawMessage(tt.raw))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
