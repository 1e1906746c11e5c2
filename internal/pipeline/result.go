package pipeline

import (
	"time"

	"github.com/google/uuid"
)

// Status is the tagged outcome of one stage execution.
type Status int

const (
	StatusSuccess Status = iota
	StatusSkipped
	StatusFailed // non-fatal, run continues
	StatusFatal  // aborts the run
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	case StatusFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// StageResult is what a stage hands back to the orchestrator.
type StageResult struct {
	Status   Status
	Message  string
	Data     map[string]any
	Duration time.Duration
}

func Success() StageResult {
	return StageResult{Status: StatusSuccess}
}

// SuccessWithData carries a payload, used by best-effort stages that
// swallow their own errors into the data map.
func SuccessWithData(data map[string]any) StageResult {
	return StageResult{Status: StatusSuccess, Data: data}
}

func Skipped(message string) StageResult {
	return StageResult{Status: StatusSkipped, Message: message}
}

func Failed(message string) StageResult {
	return StageResult{Status: StatusFailed, Message: message}
}

func Fatal(message string) StageResult {
	return StageResult{Status: StatusFatal, Message: message}
}

// StageExecution pairs a stage name with its result for audit output.
type StageExecution struct {
	Stage  string
	Result StageResult
}

// Outcome is the aggregate result of one pipeline run. It is built
// once by the orchestrator and never mutated afterward.
type Outcome struct {
	Success    bool
	DocumentID uuid.UUID
	ContentID  string
	Duration   time.Duration
	Errors     map[string]string
	Executions []StageExecution
}
