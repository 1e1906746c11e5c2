package rules

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/docshelf/docshelf/constants"
	"github.com/docshelf/docshelf/internal/entity"
)

// RuleSource lists enabled rules for a trigger.
type RuleSource interface {
	ListEnabledByTrigger(ctx context.Context, trigger constants.TriggerType) ([]*entity.AutomationRule, error)
}

// Engine evaluates automation rules against documents and applies the
// actions of matching rules. Actions mutate the document in memory;
// callers persist the result.
type Engine struct {
	source RuleSource
	logger *slog.Logger
}

func NewEngine(source RuleSource, logger *slog.Logger) *Engine {
	return &Engine{source: source, logger: logger}
}

// EvaluateAndExecute runs every enabled rule for the trigger against
// the document. A rule matches only when ALL its conditions hold.
// Failures in one rule never prevent later rules from running.
func (e *Engine) EvaluateAndExecute(ctx context.Context, doc *entity.Document, trigger constants.TriggerType) ([]entity.RuleExecutionResult, error) {
	ruleList, err := e.source.ListEnabledByTrigger(ctx, trigger)
	if err != nil {
		return nil, err
	}

	results := make([]entity.RuleExecutionResult, 0, len(ruleList))
	for _, rule := range ruleList {
		result := entity.RuleExecutionResult{RuleID: rule.ID, RuleName: rule.Name}

		matched, evalErr := e.conditionsMatch(doc, rule.Conditions)
		if evalErr != nil {
			result.Error = evalErr.Error()
			results = append(results, result)
			e.logger.Warn("rules.condition.error", "rule", rule.Name, "error", evalErr)
			continue
		}
		result.ConditionMatched = matched
		if !matched {
			results = append(results, result)
			continue
		}

		executed, execErr := e.executeActions(doc, rule.Actions)
		result.ActionsExecuted = executed
		if execErr != nil {
			result.Error = execErr.Error()
			e.logger.Warn("rules.action.error", "rule", rule.Name, "error", execErr)
		} else {
			result.Success = true
			e.logger.Info("rules.rule.applied",
				"rule", rule.Name,
				"document_id", doc.ID,
				"actions", executed)
		}
		results = append(results, result)
	}
	return results, nil
}

// conditionsMatch requires every condition to hold. An empty condition
// list matches unconditionally.
func (e *Engine) conditionsMatch(doc *entity.Document, conditions []entity.RuleCondition) (bool, error) {
	for _, cond := range conditions {
		ok, err := evaluateCondition(doc, cond)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func evaluateCondition(doc *entity.Document, cond entity.RuleCondition) (bool, error) {
	op := strings.ToUpper(cond.Operator)

	switch strings.ToLower(cond.Field) {
	case "name":
		return compareString(doc.Name, op, cond.Value)
	case "mime_type":
		return compareString(doc.MimeType, op, cond.Value)
	case "text":
		return compareString(doc.TextContent, op, cond.Value)
	case "file_size":
		return compareInt(doc.FileSize, op, cond.Value)
	case "tag":
		switch op {
		case "EQUALS", "CONTAINS":
			return doc.HasTag(cond.Value), nil
		default:
			return false, fmt.Errorf("operator %s not valid for tag conditions", op)
		}
	default:
		return false, fmt.Errorf("unknown condition field: %s", cond.Field)
	}
}

func compareString(actual, op, expected string) (bool, error) {
	a := strings.ToLower(actual)
	e := strings.ToLower(expected)
	switch op {
	case "EQUALS":
		return a == e, nil
	case "CONTAINS":
		return strings.Contains(a, e), nil
	case "STARTS_WITH":
		return strings.HasPrefix(a, e), nil
	default:
		return false, fmt.Errorf("operator %s not valid for string conditions", op)
	}
}

func compareInt(actual int64, op, expected string) (bool, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(expected), 10, 64)
	if err != nil {
		return false, fmt.Errorf("parse numeric condition value %q: %w", expected, err)
	}
	switch op {
	case "EQUALS":
		return actual == n, nil
	case "GT":
		return actual > n, nil
	case "LT":
		return actual < n, nil
	default:
		return false, fmt.Errorf("operator %s not valid for numeric conditions", op)
	}
}

// executeActions applies actions in order, stopping at the first
// failure and reporting how many succeeded before it.
func (e *Engine) executeActions(doc *entity.Document, actions []entity.RuleAction) (int, error) {
	executed := 0
	for _, action := range actions {
		if err := validateActionParams(action.Type, action.Params); err != nil {
			return executed, fmt.Errorf("action %s: %w", action.Type, err)
		}
		if err := applyAction(doc, action); err != nil {
			return executed, fmt.Errorf("action %s: %w", action.Type, err)
		}
		executed++
	}
	return executed, nil
}

func applyAction(doc *entity.Document, action entity.RuleAction) error {
	switch action.Type {
	case constants.ActionAddTag:
		var p struct {
			Tag string `json:"tag"`
		}
		if err := json.Unmarshal(action.Params, &p); err != nil {
			return err
		}
		if !doc.HasTag(p.Tag) {
			doc.Tags = append(doc.Tags, p.Tag)
		}
		return nil
	case constants.ActionSetCategory:
		var p struct {
			Category string `json:"category"`
		}
		if err := json.Unmarshal(action.Params, &p); err != nil {
			return err
		}
		if !doc.HasCategory(p.Category) {
			doc.Categories = append(doc.Categories, p.Category)
		}
		return nil
	case constants.ActionSetCorrespondent:
		var p struct {
			Correspondent string `json:"correspondent"`
		}
		if err := json.Unmarshal(action.Params, &p); err != nil {
			return err
		}
		doc.Correspondent = &p.Correspondent
		return nil
	default:
		return fmt.Errorf("unknown action type: %s", action.Type)
	}
}
