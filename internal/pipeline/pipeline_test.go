package pipeline

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
)

type fakeStage struct {
	name     string
	order    int
	supports bool
	process  func(pc *Context) StageResult
	calls    *[]string
}

func (f *fakeStage) Name() string            { return f.name }
func (f *fakeStage) Order() int              { return f.order }
func (f *fakeStage) Supports(pc *Context) bool { return f.supports }

func (f *fakeStage) Process(ctx context.Context, pc *Context) StageResult {
	if f.calls != nil {
		*f.calls = append(*f.calls, f.name)
	}
	if f.process != nil {
		return f.process(pc)
	}
	return Success()
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestContext() *Context {
	return NewContext(strings.NewReader("payload"), "file.txt", nil, "alice")
}

func TestOrchestratorRunsStagesInAscendingOrder(t *testing.T) {
	var calls []string
	stages := []Stage{
		&fakeStage{name: "third", order: 300, supports: true, calls: &calls},
		&fakeStage{name: "first", order: 100, supports: true, calls: &calls},
		&fakeStage{name: "second", order: 200, supports: true, calls: &calls},
	}

	NewOrchestrator(stages, testLogger()).Run(context.Background(), newTestContext())

	want := []string{"first", "second", "third"}
	if len(calls) != len(want) {
		t.Fatalf("got %d calls, want %d: %v", len(calls), len(want), calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call[%d] = %q, want %q", i, calls[i], want[i])
		}
	}
}

func TestOrchestratorBreaksOrderTiesByRegistration(t *testing.T) {
	var calls []string
	stages := []Stage{
		&fakeStage{name: "tie-a", order: 150, supports: true, calls: &calls},
		&fakeStage{name: "tie-b", order: 150, supports: true, calls: &calls},
	}

	NewOrchestrator(stages, testLogger()).Run(context.Background(), newTestContext())

	if len(calls) != 2 || calls[0] != "tie-a" || calls[1] != "tie-b" {
		t.Fatalf("tie order not stable: %v", calls)
	}
}

func TestFatalStopsRemainingStages(t *testing.T) {
	var calls []string
	docID := uuid.New()
	stages := []Stage{
		&fakeStage{name: "persist", order: 100, supports: true, calls: &calls, process: func(pc *Context) StageResult {
			pc.DocumentID = docID
			return Success()
		}},
		&fakeStage{name: "boom", order: 200, supports: true, calls: &calls, process: func(pc *Context) StageResult {
			return Fatal("storage unreachable")
		}},
		&fakeStage{name: "after", order: 300, supports: true, calls: &calls},
	}

	outcome := NewOrchestrator(stages, testLogger()).Run(context.Background(), newTestContext())

	if outcome.Success {
		t.Error("outcome reported success after fatal stage")
	}
	for _, c := range calls {
		if c == "after" {
			t.Error("stage after fatal was executed")
		}
	}
	if outcome.Errors["boom"] != "storage unreachable" {
		t.Errorf("missing fatal error in outcome: %v", outcome.Errors)
	}
}

func TestSkippedStageDoesNotSkipSuccessors(t *testing.T) {
	var calls []string
	stages := []Stage{
		&fakeStage{name: "skipped", order: 100, supports: false, calls: &calls},
		&fakeStage{name: "next", order: 200, supports: true, calls: &calls},
	}

	NewOrchestrator(stages, testLogger()).Run(context.Background(), newTestContext())

	if len(calls) != 1 || calls[0] != "next" {
		t.Fatalf("successor did not run after a skip: %v", calls)
	}
}

func TestPanicBecomesFatal(t *testing.T) {
	var calls []string
	stages := []Stage{
		&fakeStage{name: "panicky", order: 100, supports: true, calls: &calls, process: func(pc *Context) StageResult {
			panic("nil map write")
		}},
		&fakeStage{name: "after", order: 200, supports: true, calls: &calls},
	}

	outcome := NewOrchestrator(stages, testLogger()).Run(context.Background(), newTestContext())

	if outcome.Success {
		t.Error("outcome reported success after panic")
	}
	if msg := outcome.Errors["panicky"]; !strings.Contains(msg, "nil map write") {
		t.Errorf("panic text not preserved: %q", msg)
	}
	for _, c := range calls {
		if c == "after" {
			t.Error("stage after panic was executed")
		}
	}
}

func TestNonFatalFailureKeepsRunSuccessful(t *testing.T) {
	docID := uuid.New()
	stages := []Stage{
		&fakeStage{name: "persist", order: 100, supports: true, process: func(pc *Context) StageResult {
			pc.DocumentID = docID
			return Success()
		}},
		&fakeStage{name: "index", order: 200, supports: true, process: func(pc *Context) StageResult {
			return Failed("index down")
		}},
	}

	outcome := NewOrchestrator(stages, testLogger()).Run(context.Background(), newTestContext())

	if !outcome.Success {
		t.Error("non-fatal failure flipped the outcome to failure")
	}
	if outcome.DocumentID != docID {
		t.Errorf("document id changed: got %s, want %s", outcome.DocumentID, docID)
	}
	if outcome.Errors["index"] != "index down" {
		t.Errorf("failure not aggregated: %v", outcome.Errors)
	}
}

func TestOutcomeWithoutDocumentIsNotSuccessful(t *testing.T) {
	stages := []Stage{
		&fakeStage{name: "noop", order: 100, supports: true},
	}

	outcome := NewOrchestrator(stages, testLogger()).Run(context.Background(), newTestContext())

	if outcome.Success {
		t.Error("run without a persisted document reported success")
	}
}

func TestStopRequestAbortsRun(t *testing.T) {
	var calls []string
	stages := []Stage{
		&fakeStage{name: "virus", order: 100, supports: true, calls: &calls, process: func(pc *Context) StageResult {
			pc.RequestStop()
			return Fatal("virus detected: Eicar")
		}},
		&fakeStage{name: "after", order: 200, supports: true, calls: &calls},
	}

	outcome := NewOrchestrator(stages, testLogger()).Run(context.Background(), newTestContext())

	if outcome.Success {
		t.Error("stopped run reported success")
	}
	if len(calls) != 1 {
		t.Fatalf("stages ran after stop: %v", calls)
	}
}
