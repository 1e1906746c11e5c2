package repository

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/docshelf/docshelf/constants"
	"github.com/docshelf/docshelf/internal/entity"
)

func openTestRepo(t *testing.T) DocumentRepository {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	entc, err := OpenSQLite(context.Background(), ":memory:", logger)
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}
	t.Cleanup(func() { _ = entc.Close() })
	return NewDocumentRepository(entc, logger)
}

func TestCreatePersistsPreviewStatus(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &entity.Document{
		Name:          "report.pdf",
		MimeType:      "application/pdf",
		ContentID:     "content-preview-status",
		ContentHash:   "hash-preview-status",
		PreviewStatus: constants.PreviewQueued,
		CreatedBy:     "alice",
	})
	if err != nil {
		t.Fatalf("creating document: %v", err)
	}

	fetched, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("fetching document: %v", err)
	}
	if fetched.PreviewStatus != constants.PreviewQueued {
		t.Errorf("persisted preview status = %q, want %q", fetched.PreviewStatus, constants.PreviewQueued)
	}
}

func TestCreateWithoutPreviewStatusLeavesItEmpty(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &entity.Document{
		Name:      "note.txt",
		MimeType:  "text/plain",
		ContentID: "content-no-preview",
		CreatedBy: "alice",
	})
	if err != nil {
		t.Fatalf("creating document: %v", err)
	}

	fetched, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("fetching document: %v", err)
	}
	if fetched.PreviewStatus != "" {
		t.Errorf("preview status = %q, want empty", fetched.PreviewStatus)
	}
}

func TestFindByContentHash(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, &entity.Document{
		Name:        "a.txt",
		ContentID:   "content-hash-a",
		ContentHash: "hash-shared",
		CreatedBy:   "alice",
	})
	if err != nil {
		t.Fatalf("creating first document: %v", err)
	}
	if _, err := repo.Create(ctx, &entity.Document{
		Name:        "b.txt",
		ContentID:   "content-hash-b",
		ContentHash: "hash-other",
		CreatedBy:   "alice",
	}); err != nil {
		t.Fatalf("creating second document: %v", err)
	}

	hits, err := repo.FindByContentHash(ctx, "hash-shared")
	if err != nil {
		t.Fatalf("finding by hash: %v", err)
	}
	if len(hits) != 1 || hits[0].ID != first.ID {
		t.Errorf("hits = %v, want exactly the first document", hits)
	}

	none, err := repo.FindByContentHash(ctx, "hash-unknown")
	if err != nil {
		t.Fatalf("finding unknown hash: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no hits for an unknown hash, got %d", len(none))
	}
}
