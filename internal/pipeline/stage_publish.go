package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/docshelf/docshelf/internal/bus"
)

// DocumentCreatedEvent is the event type published at the end of a
// successful ingestion run.
const DocumentCreatedEvent = "document.created"

// eventPublishStage announces the new document on the message bus.
// Publishing is fire and forget; a broker outage never fails the run.
type eventPublishStage struct {
	publisher bus.Publisher
	logger    *slog.Logger
}

func NewEventPublishStage(publisher bus.Publisher, logger *slog.Logger) Stage {
	return &eventPublishStage{publisher: publisher, logger: logger}
}

func (s *eventPublishStage) Name() string  { return "event-publication" }
func (s *eventPublishStage) Order() int    { return OrderEventPublish }
func (s *eventPublishStage) Supports(pc *Context) bool {
	return s.publisher != nil && pc.DocumentID != uuid.Nil
}

func (s *eventPublishStage) Process(ctx context.Context, pc *Context) StageResult {
	event := bus.Event{
		Type:       DocumentCreatedEvent,
		DocumentID: pc.DocumentID,
		Actor:      pc.User,
		OccurredAt: time.Now().UTC(),
		Payload: map[string]any{
			"name":      pc.Filename,
			"mime_type": pc.MimeType,
			"size":      pc.FileSize,
		},
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("pipeline.event.publish_failed",
			"document_id", pc.DocumentID,
			"error", err)
		return SuccessWithData(map[string]any{"error": "publish event: " + err.Error()})
	}
	return Success()
}
