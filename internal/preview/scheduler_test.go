package preview

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/docshelf/docshelf/constants"
	"github.com/docshelf/docshelf/internal/common"
	"github.com/docshelf/docshelf/internal/entity"
	"github.com/docshelf/docshelf/internal/identity"
	"github.com/docshelf/docshelf/internal/search"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeDocs struct {
	docs map[uuid.UUID]*entity.Document
}

func newFakeDocs() *fakeDocs {
	return &fakeDocs{docs: make(map[uuid.UUID]*entity.Document)}
}

func (f *fakeDocs) add(doc *entity.Document) *entity.Document {
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	f.docs[doc.ID] = doc
	return doc
}

func (f *fakeDocs) Create(ctx context.Context, doc *entity.Document) (*entity.Document, error) {
	copied := *doc
	copied.ID = uuid.New()
	f.docs[copied.ID] = &copied
	return &copied, nil
}

func (f *fakeDocs) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, fmt.Errorf("document %s not found", id)
	}
	copied := *doc
	return &copied, nil
}

func (f *fakeDocs) Update(ctx context.Context, doc *entity.Document) error {
	copied := *doc
	f.docs[doc.ID] = &copied
	return nil
}

func (f *fakeDocs) SetCurrentVersion(ctx context.Context, docID, versionID uuid.UUID, label string) error {
	return nil
}

func (f *fakeDocs) FindByContentHash(ctx context.Context, hash string) ([]*entity.Document, error) {
	return nil, nil
}

func (f *fakeDocs) UpdatePreviewStatus(ctx context.Context, docID uuid.UUID, status constants.PreviewStatus, reason string) error {
	doc, ok := f.docs[docID]
	if !ok {
		return fmt.Errorf("document %s not found", docID)
	}
	doc.PreviewStatus = status
	doc.PreviewReason = reason
	return nil
}

type fakeGenerator struct {
	result     Result
	err        error
	calls      int
	principals []string
}

func (f *fakeGenerator) Generate(ctx context.Context, doc *entity.Document) (Result, error) {
	f.calls++
	f.principals = append(f.principals, identity.Principal(ctx))
	return f.result, f.err
}

type fakeIndexer struct {
	indexed int
	err     error
}

func (f *fakeIndexer) Index(ctx context.Context, doc *entity.Document) error {
	f.indexed++
	return f.err
}

func (f *fakeIndexer) Remove(ctx context.Context, documentID uuid.UUID) error { return nil }
func (f *fakeIndexer) Close()                                                 {}

func previewConfig() common.PreviewConfig {
	return common.PreviewConfig{
		QueueEnabled: true,
		MaxAttempts:  3,
		RetryDelay:   60 * time.Second,
		PollInterval: 2 * time.Second,
		BatchSize:    10,
		RunAsUser:    "system",
		MaxPages:     50,
		Backoff:      "fixed",
	}
}

func newTestScheduler(docs *fakeDocs, gen Generator, idx *fakeIndexer) (*Scheduler, *JobStore) {
	store := NewJobStore()
	var indexer search.Indexer
	if idx != nil {
		indexer = idx
	}
	return NewScheduler(store, docs, gen, indexer, previewConfig(), testLogger()), store
}

func TestEnqueueDeduplicates(t *testing.T) {
	docs := newFakeDocs()
	doc := docs.add(&entity.Document{PreviewStatus: constants.PreviewQueued})
	sched, store := newTestScheduler(docs, &fakeGenerator{}, nil)

	first, err := sched.Enqueue(context.Background(), doc.ID, false)
	if err != nil {
		t.Fatal(err)
	}
	second, err := sched.Enqueue(context.Background(), doc.ID, false)
	if err != nil {
		t.Fatal(err)
	}
	if first.EnqueuedAt != second.EnqueuedAt {
		t.Error("second enqueue returned different job state")
	}
	if store.Len() != 1 {
		t.Errorf("store holds %d jobs, want 1", store.Len())
	}
	if docs.docs[doc.ID].PreviewStatus != constants.PreviewProcessing {
		t.Errorf("document status = %s, want PROCESSING", docs.docs[doc.ID].PreviewStatus)
	}
}

func TestEnqueueSkipsReadyUnlessForced(t *testing.T) {
	docs := newFakeDocs()
	doc := docs.add(&entity.Document{PreviewStatus: constants.PreviewReady})
	sched, store := newTestScheduler(docs, &fakeGenerator{}, nil)

	if _, err := sched.Enqueue(context.Background(), doc.ID, false); err != nil {
		t.Fatal(err)
	}
	if store.Len() != 0 {
		t.Error("enqueue on READY document created a job")
	}

	if _, err := sched.Enqueue(context.Background(), doc.ID, true); err != nil {
		t.Fatal(err)
	}
	if store.Len() != 1 {
		t.Error("forced enqueue did not create a job")
	}
}

func TestSuccessfulGenerationMarksReadyAndReindexes(t *testing.T) {
	docs := newFakeDocs()
	doc := docs.add(&entity.Document{MimeType: "application/pdf", PreviewStatus: constants.PreviewQueued})
	gen := &fakeGenerator{result: Result{Supported: true, Status: constants.PreviewReady, Pages: 3}}
	idx := &fakeIndexer{}
	sched, store := newTestScheduler(docs, gen, idx)

	if _, err := sched.Enqueue(context.Background(), doc.ID, false); err != nil {
		t.Fatal(err)
	}
	sched.Tick(context.Background())

	if got := docs.docs[doc.ID].PreviewStatus; got != constants.PreviewReady {
		t.Errorf("status = %s, want READY", got)
	}
	if store.Len() != 0 {
		t.Error("job not removed after success")
	}
	if idx.indexed == 0 {
		t.Error("document not re-indexed after status change")
	}
}

func TestUnsupportedFormatFailsWithoutRetry(t *testing.T) {
	docs := newFakeDocs()
	doc := docs.add(&entity.Document{MimeType: "application/octet-stream", PreviewStatus: constants.PreviewQueued})
	gen := &fakeGenerator{result: Result{
		Supported: false,
		Status:    constants.PreviewFailed,
		Message:   "Preview not supported for mime type: application/octet-stream",
	}}
	sched, store := newTestScheduler(docs, gen, nil)

	if _, err := sched.Enqueue(context.Background(), doc.ID, false); err != nil {
		t.Fatal(err)
	}
	sched.Tick(context.Background())

	got := docs.docs[doc.ID]
	if got.PreviewStatus != constants.PreviewFailed {
		t.Errorf("status = %s, want FAILED", got.PreviewStatus)
	}
	if store.Len() != 0 {
		t.Error("unsupported job left in store")
	}
	if cat := ClassifyFailure(got.PreviewStatus, got.MimeType, got.PreviewReason); cat == nil || *cat != constants.CategoryUnsupported {
		t.Errorf("final state classifies as %v, want UNSUPPORTED", cat)
	}
	if gen.calls != 1 {
		t.Errorf("generator called %d times, want 1", gen.calls)
	}
}

func TestTransientFailureRetriedExactlyTwice(t *testing.T) {
	docs := newFakeDocs()
	doc := docs.add(&entity.Document{MimeType: "application/pdf", PreviewStatus: constants.PreviewQueued})
	gen := &fakeGenerator{err: errors.New("render timed out")}
	sched, store := newTestScheduler(docs, gen, nil)

	if _, err := sched.Enqueue(context.Background(), doc.ID, false); err != nil {
		t.Fatal(err)
	}

	forceDue := func() {
		job, ok := store.Get(doc.ID)
		if !ok {
			t.Fatal("expected a rescheduled job")
		}
		job.NextAttemptAt = time.Now().Add(-time.Second)
		store.Reschedule(job)
	}

	// First attempt fails, retry scheduled.
	sched.Tick(context.Background())
	if got := docs.docs[doc.ID].PreviewStatus; got != constants.PreviewProcessing {
		t.Fatalf("status after first failure = %s, want PROCESSING", got)
	}
	forceDue()

	// Second attempt fails, last retry scheduled.
	sched.Tick(context.Background())
	if store.Len() != 1 {
		t.Fatal("job missing before final attempt")
	}
	forceDue()

	// Third attempt exhausts the budget.
	sched.Tick(context.Background())

	if gen.calls != 3 {
		t.Errorf("generator called %d times, want 3", gen.calls)
	}
	if got := docs.docs[doc.ID].PreviewStatus; got != constants.PreviewFailed {
		t.Errorf("final status = %s, want FAILED", got)
	}
	if store.Len() != 0 {
		t.Error("terminal job left in store")
	}
}

func TestJobsRunUnderSystemIdentity(t *testing.T) {
	docs := newFakeDocs()
	doc := docs.add(&entity.Document{MimeType: "text/plain", PreviewStatus: constants.PreviewQueued})
	gen := &fakeGenerator{result: Result{Supported: true, Status: constants.PreviewReady}}
	sched, _ := newTestScheduler(docs, gen, nil)

	ctx := identity.WithPrincipal(context.Background(), "alice")
	if _, err := sched.Enqueue(ctx, doc.ID, false); err != nil {
		t.Fatal(err)
	}
	sched.Tick(ctx)

	if len(gen.principals) != 1 || gen.principals[0] != "system" {
		t.Errorf("generation principals = %v, want [system]", gen.principals)
	}
	// The caller context keeps its own identity.
	if identity.Principal(ctx) != "alice" {
		t.Errorf("caller identity = %q after tick", identity.Principal(ctx))
	}
}
