package pipeline

import (
	"io"

	"github.com/google/uuid"
)

// Context carries the working state of one ingestion run. It is owned
// exclusively by the orchestrator invocation that created it; stages
// mutate it in place and must not retain a reference past their own
// Process call. Each field is written by exactly one stage and read by
// later stages.
type Context struct {
	// Input, set by the caller.
	Reader         io.Reader
	Filename       string
	ParentFolderID *uuid.UUID
	User           string

	// Set by the content storage stage.
	ContentID   string
	MimeType    string
	FileSize    int64
	ContentHash string

	// Set by the extraction stage.
	Text     string
	Metadata map[string]string

	// Enrichment suggestions accumulated by later stages.
	SuggestedTags     []string
	SuggestedCategory string

	// Set by the persistence stage.
	DocumentID   uuid.UUID
	VersionLabel string

	// Error bookkeeping, append-only.
	errs []StageError
	stop bool
}

// StageError records one stage's reported problem.
type StageError struct {
	Stage   string
	Message string
}

// NewContext builds the context for a single upload.
func NewContext(r io.Reader, filename string, parentFolderID *uuid.UUID, user string) *Context {
	return &Context{
		Reader:         r,
		Filename:       filename,
		ParentFolderID: parentFolderID,
		User:           user,
		Metadata:       make(map[string]string),
	}
}

// AddError appends a stage error. Existing entries are never removed.
func (c *Context) AddError(stage, message string) {
	c.errs = append(c.errs, StageError{Stage: stage, Message: message})
}

// Errors returns the accumulated stage errors in report order.
func (c *Context) Errors() []StageError {
	return c.errs
}

// RequestStop marks the run for abort. Only the virus scan stage sets
// this today; the orchestrator treats it like a fatal result.
func (c *Context) RequestStop() {
	c.stop = true
}

// StopRequested reports whether a stage demanded the run be aborted.
func (c *Context) StopRequested() bool {
	return c.stop
}
