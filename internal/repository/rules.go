package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/docshelf/docshelf/constants"
	"github.com/docshelf/docshelf/gen/ent"
	entrule "github.com/docshelf/docshelf/gen/ent/automationrule"
	"github.com/docshelf/docshelf/internal/entity"
)

type RuleRepository interface {
	// ListEnabledByTrigger returns enabled rules for a trigger type with
	// their conditions and actions decoded.
	ListEnabledByTrigger(ctx context.Context, trigger constants.TriggerType) ([]*entity.AutomationRule, error)
}

type ruleRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewRuleRepository(entc *ent.Client, logger *slog.Logger) RuleRepository {
	return &ruleRepo{ent: entc, logger: logger}
}

func (r *ruleRepo) ListEnabledByTrigger(ctx context.Context, trigger constants.TriggerType) ([]*entity.AutomationRule, error) {
	rows, err := r.ent.AutomationRule.Query().
		Where(
			entrule.Trigger(string(trigger)),
			entrule.Enabled(true),
		).All(ctx)
	if err != nil {
		r.logger.Error("failed to list rules", "trigger", trigger, "error", err)
		return nil, err
	}

	out := make([]*entity.AutomationRule, 0, len(rows))
	for _, row := range rows {
		rule := &entity.AutomationRule{
			ID:      row.ID,
			Name:    row.Name,
			Trigger: constants.TriggerType(row.Trigger),
			Enabled: row.Enabled,
			Owner:   row.Owner,
		}
		if len(row.Conditions) > 0 {
			if err := json.Unmarshal(row.Conditions, &rule.Conditions); err != nil {
				r.logger.Warn("skipping rule with malformed conditions", "rule_id", row.ID, "error", err)
				continue
			}
		}
		if len(row.Actions) > 0 {
			if err := json.Unmarshal(row.Actions, &rule.Actions); err != nil {
				r.logger.Warn("skipping rule with malformed actions", "rule_id", row.ID, "error", err)
				continue
			}
		}
		out = append(out, rule)
	}
	return out, nil
}
