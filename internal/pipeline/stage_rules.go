package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docshelf/docshelf/constants"
	"github.com/docshelf/docshelf/internal/repository"
	"github.com/docshelf/docshelf/internal/rules"
)

// ruleTriggerStage runs automation rules for the created trigger. Rule
// failures are recorded but never fail the run.
type ruleTriggerStage struct {
	docs    repository.DocumentRepository
	engine  *rules.Engine
	enabled bool
	logger  *slog.Logger
}

func NewRuleTriggerStage(docs repository.DocumentRepository, engine *rules.Engine, enabled bool, logger *slog.Logger) Stage {
	return &ruleTriggerStage{docs: docs, engine: engine, enabled: enabled, logger: logger}
}

func (s *ruleTriggerStage) Name() string  { return "rule-trigger" }
func (s *ruleTriggerStage) Order() int    { return OrderRuleTrigger }
func (s *ruleTriggerStage) Supports(pc *Context) bool {
	return s.enabled && pc.DocumentID != uuid.Nil
}

func (s *ruleTriggerStage) Process(ctx context.Context, pc *Context) StageResult {
	doc, err := s.docs.GetByID(ctx, pc.DocumentID)
	if err != nil {
		return SuccessWithData(map[string]any{"error": "load document: " + err.Error()})
	}

	results, err := s.engine.EvaluateAndExecute(ctx, doc, constants.TriggerDocumentCreated)
	if err != nil {
		return SuccessWithData(map[string]any{"error": "evaluate rules: " + err.Error()})
	}

	applied := 0
	for _, r := range results {
		if r.ConditionMatched && r.Success {
			applied++
		}
	}
	if applied > 0 {
		if err := s.docs.Update(ctx, doc); err != nil {
			return SuccessWithData(map[string]any{"error": "save rule changes: " + err.Error()})
		}
	}

	s.logger.Debug("pipeline.rules.evaluated",
		"document_id", pc.DocumentID,
		"rules", len(results),
		"applied", applied)
	return SuccessWithData(map[string]any{"rules": len(results), "applied": applied})
}
