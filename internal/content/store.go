package content

import (
	"context"
	"io"
)

// Store is the content-addressable blob store behind the pipeline.
// Implementations must be safe for concurrent use and must support
// immediate deletion (used to purge infected uploads).
type Store interface {
	// Store persists the stream and returns an opaque content ID.
	Store(ctx context.Context, r io.Reader, filename string) (string, error)
	Get(ctx context.Context, contentID string) (io.ReadCloser, error)
	Size(ctx context.Context, contentID string) (int64, error)
	// DetectMimeType sniffs the stored content, falling back to the
	// filename extension when sniffing is inconclusive.
	DetectMimeType(ctx context.Context, contentID, filename string) (string, error)
	Delete(ctx context.Context, contentID string) error
}
