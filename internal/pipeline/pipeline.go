package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Orchestrator runs a fixed, ordered set of stages over one context.
type Orchestrator struct {
	stages []Stage
	logger *slog.Logger
}

// NewOrchestrator sorts the stages ascending by Order. The sort is
// stable, so stages sharing an order run in registration order.
func NewOrchestrator(stages []Stage, logger *slog.Logger) *Orchestrator {
	sorted := make([]Stage, len(stages))
	copy(sorted, stages)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order() < sorted[j].Order()
	})
	return &Orchestrator{stages: sorted, logger: logger}
}

// Run executes the stages in order over the context. Fatal results
// abort the run immediately; Failed results are recorded and the run
// continues. A panic inside a stage is converted to Fatal rather than
// propagating past the orchestrator.
func (o *Orchestrator) Run(ctx context.Context, pc *Context) Outcome {
	start := time.Now()
	executions := make([]StageExecution, 0, len(o.stages))
	aborted := false

	for _, stage := range o.stages {
		if !stage.Supports(pc) {
			executions = append(executions, StageExecution{
				Stage:  stage.Name(),
				Result: Skipped("not applicable"),
			})
			o.logger.Debug("pipeline.stage.skipped", "stage", stage.Name())
			continue
		}

		result := o.runStage(ctx, stage, pc)
		executions = append(executions, StageExecution{Stage: stage.Name(), Result: result})

		switch result.Status {
		case StatusFatal:
			pc.AddError(stage.Name(), result.Message)
			o.logger.Error("pipeline.stage.fatal",
				"stage", stage.Name(),
				"error", result.Message,
				"duration", result.Duration)
			aborted = true
		case StatusFailed:
			pc.AddError(stage.Name(), result.Message)
			o.logger.Warn("pipeline.stage.failed",
				"stage", stage.Name(),
				"error", result.Message,
				"duration", result.Duration)
		default:
			o.logger.Debug("pipeline.stage.done",
				"stage", stage.Name(),
				"status", result.Status.String(),
				"duration", result.Duration)
		}

		if aborted || pc.StopRequested() {
			aborted = true
			break
		}
	}

	outcome := o.buildOutcome(pc, executions, aborted, time.Since(start))
	o.logger.Info("pipeline.run.finished",
		"success", outcome.Success,
		"document_id", outcome.DocumentID,
		"duration", outcome.Duration,
		"errors", len(outcome.Errors))
	return outcome
}

// runStage calls Process with panic recovery; an escaped panic becomes
// a Fatal result carrying the panic text.
func (o *Orchestrator) runStage(ctx context.Context, stage Stage, pc *Context) (result StageResult) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			result = Fatal(fmt.Sprintf("stage panic: %v", r))
			result.Duration = time.Since(start)
		}
	}()
	result = stage.Process(ctx, pc)
	result.Duration = time.Since(start)
	return result
}

func (o *Orchestrator) buildOutcome(pc *Context, executions []StageExecution, aborted bool, elapsed time.Duration) Outcome {
	errs := make(map[string]string, len(pc.Errors()))
	for _, e := range pc.Errors() {
		errs[e.Stage] = e.Message
	}
	return Outcome{
		Success:    !aborted && pc.DocumentID != uuid.Nil,
		DocumentID: pc.DocumentID,
		ContentID:  pc.ContentID,
		Duration:   elapsed,
		Errors:     errs,
		Executions: executions,
	}
}
