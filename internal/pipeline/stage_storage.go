package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"

	"github.com/docshelf/docshelf/internal/content"
)

// contentStorageStage persists the raw upload to the content store and
// fills in the content reference, size, hash and detected MIME type.
// Everything downstream depends on its output, so any failure is fatal.
type contentStorageStage struct {
	store  content.Store
	logger *slog.Logger
}

func NewContentStorageStage(store content.Store, logger *slog.Logger) Stage {
	return &contentStorageStage{store: store, logger: logger}
}

func (s *contentStorageStage) Name() string  { return "content-storage" }
func (s *contentStorageStage) Order() int    { return OrderContentStorage }
func (s *contentStorageStage) Supports(pc *Context) bool { return pc.Reader != nil }

func (s *contentStorageStage) Process(ctx context.Context, pc *Context) StageResult {
	hasher := sha256.New()
	tee := io.TeeReader(pc.Reader, hasher)

	contentID, err := s.store.Store(ctx, tee, pc.Filename)
	if err != nil {
		return Fatal("store content: " + err.Error())
	}
	pc.ContentID = contentID
	pc.ContentHash = hex.EncodeToString(hasher.Sum(nil))

	size, err := s.store.Size(ctx, contentID)
	if err != nil {
		return Fatal("stat stored content: " + err.Error())
	}
	pc.FileSize = size

	mimeType, err := s.store.DetectMimeType(ctx, contentID, pc.Filename)
	if err != nil {
		return Fatal("detect mime type: " + err.Error())
	}
	pc.MimeType = mimeType

	s.logger.Debug("pipeline.content.stored",
		"content_id", contentID,
		"mime_type", mimeType,
		"size", size)
	return Success()
}
