package pipeline

import "context"

// Stage is one unit of the ingestion pipeline. Stages declare a fixed
// execution order and an applicability predicate; the orchestrator
// sorts them ascending by Order and runs Process only when Supports
// returns true.
type Stage interface {
	Name() string
	Order() int
	Supports(pc *Context) bool
	Process(ctx context.Context, pc *Context) StageResult
}

// Canonical stage orders. Gaps leave room for deployment-specific
// stages without renumbering.
const (
	OrderContentStorage = 100
	OrderVirusScan      = 150
	OrderBarcodeScan    = 150
	OrderTextExtract    = 200
	OrderPersistence    = 400
	OrderInitialVersion = 420
	OrderMatching       = 450
	OrderClassification = 460
	OrderRuleTrigger    = 470
	OrderSearchIndex    = 500
	OrderEventPublish   = 600
)
