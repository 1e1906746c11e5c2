package preview

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/docshelf/docshelf/constants"
	"github.com/docshelf/docshelf/internal/backoff"
	"github.com/docshelf/docshelf/internal/common"
	"github.com/docshelf/docshelf/internal/entity"
	"github.com/docshelf/docshelf/internal/identity"
	"github.com/docshelf/docshelf/internal/repository"
	"github.com/docshelf/docshelf/internal/search"
)

// Scheduler drains the preview job store on a fixed interval,
// generating previews and retrying transient failures up to the
// configured attempt budget.
type Scheduler struct {
	store     *JobStore
	docs      repository.DocumentRepository
	generator Generator
	indexer   search.Indexer
	policy    backoff.Policy
	cfg       common.PreviewConfig
	logger    *slog.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

func NewScheduler(store *JobStore, docs repository.DocumentRepository, generator Generator, indexer search.Indexer, cfg common.PreviewConfig, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		store:     store,
		docs:      docs,
		generator: generator,
		indexer:   indexer,
		policy:    backoff.ForName(cfg.Backoff, cfg.RetryDelay),
		cfg:       cfg,
		logger:    logger,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Enqueue requests preview generation for a document. A document whose
// preview is already READY is left alone unless force is set. When a
// live job already exists its current state is returned unchanged.
func (s *Scheduler) Enqueue(ctx context.Context, documentID uuid.UUID, force bool) (Job, error) {
	doc, err := s.docs.GetByID(ctx, documentID)
	if err != nil {
		return Job{}, err
	}
	if doc.PreviewStatus == constants.PreviewReady && !force {
		return Job{}, nil
	}

	job, created := s.store.Insert(documentID, time.Now())
	if !created {
		return job, nil
	}

	if err := s.docs.UpdatePreviewStatus(ctx, documentID, constants.PreviewProcessing, ""); err != nil {
		s.store.Remove(documentID)
		return Job{}, err
	}
	s.logger.Info("preview.job.enqueued", "document_id", documentID, "force", force)
	return job, nil
}

// Start launches the polling loop. Stop shuts it down and waits for
// the in-flight tick to finish.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.PollInterval)
	go func() {
		defer close(s.doneCh)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-s.stopCh:
				return
			case <-ticker.C:
				s.Tick(ctx)
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	<-s.doneCh
}

// Tick processes one batch of due jobs. Each job runs under the
// configured service identity; the caller identity on ctx is never
// altered because RunAs scopes the elevation to the job closure,
// panics included.
func (s *Scheduler) Tick(ctx context.Context) {
	due := s.store.PopDue(time.Now(), s.cfg.BatchSize)
	for _, job := range due {
		job := job
		err := identity.RunAs(ctx, s.cfg.RunAsUser, func(jobCtx context.Context) error {
			s.processJob(jobCtx, job)
			return nil
		})
		if err != nil {
			s.logger.Error("preview.job.dispatch_failed", "document_id", job.DocumentID, "error", err)
		}
	}
}

func (s *Scheduler) processJob(ctx context.Context, job Job) {
	doc, err := s.docs.GetByID(ctx, job.DocumentID)
	if err != nil {
		// Document gone; nothing to reconcile.
		s.logger.Warn("preview.job.document_missing", "document_id", job.DocumentID, "error", err)
		return
	}

	result, genErr := s.generateSafely(ctx, doc)

	switch {
	case genErr == nil && result.Supported:
		s.markStatus(ctx, doc, constants.PreviewReady, "")
		s.logger.Info("preview.job.ready",
			"document_id", job.DocumentID,
			"pages", result.Pages,
			"attempts", job.Attempts)

	case genErr == nil && !result.Supported:
		s.markStatus(ctx, doc, constants.PreviewFailed, result.Message)
		s.logger.Info("preview.job.unsupported",
			"document_id", job.DocumentID,
			"mime_type", doc.MimeType,
			"reason", result.Message)

	default:
		s.handleFailure(ctx, doc, job, genErr)
	}
}

// generateSafely converts a generator panic into a transient-looking
// error so the normal retry path applies.
func (s *Scheduler) generateSafely(ctx context.Context, doc *entity.Document) (result Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("error generating preview: panic: %v", r)
		}
	}()
	return s.generator.Generate(ctx, doc)
}

func (s *Scheduler) handleFailure(ctx context.Context, doc *entity.Document, job Job, genErr error) {
	message := genErr.Error()
	category := ClassifyFailure(constants.PreviewFailed, doc.MimeType, message)

	retryable := category != nil && *category == constants.CategoryTemporary
	if retryable && job.Attempts+1 < s.cfg.MaxAttempts {
		job.Attempts++
		job.NextAttemptAt = time.Now().Add(s.policy.Delay(job.Attempts))
		s.markStatus(ctx, doc, constants.PreviewProcessing, message)
		s.store.Reschedule(job)
		s.logger.Warn("preview.job.retry_scheduled",
			"document_id", job.DocumentID,
			"attempt", job.Attempts,
			"next_attempt_at", job.NextAttemptAt,
			"error", message)
		return
	}

	s.markStatus(ctx, doc, constants.PreviewFailed, message)
	s.logger.Error("preview.job.failed",
		"document_id", job.DocumentID,
		"attempts", job.Attempts,
		"category", categoryString(category),
		"error", message)
}

// markStatus persists the preview status and re-indexes the document.
// Index errors are swallowed; the index is rebuildable and must never
// block queue progress.
func (s *Scheduler) markStatus(ctx context.Context, doc *entity.Document, status constants.PreviewStatus, reason string) {
	if err := s.docs.UpdatePreviewStatus(ctx, doc.ID, status, reason); err != nil {
		s.logger.Error("preview.status.update_failed",
			"document_id", doc.ID,
			"status", status,
			"error", err)
		return
	}
	if s.indexer == nil {
		return
	}
	doc.PreviewStatus = status
	doc.PreviewReason = reason
	if err := s.indexer.Index(ctx, doc); err != nil {
		s.logger.Warn("preview.index.update_failed", "document_id", doc.ID, "error", err)
	}
}

func categoryString(c *constants.FailureCategory) string {
	if c == nil {
		return ""
	}
	return string(*c)
}
