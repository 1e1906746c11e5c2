package bus

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event is a document lifecycle notification pushed onto the bus.
type Event struct {
	Type       string    `json:"type"`
	DocumentID uuid.UUID `json:"document_id"`
	Actor      string    `json:"actor,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload,omitempty"`
}

// Publisher emits document lifecycle events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}
