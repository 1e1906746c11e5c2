package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docshelf/docshelf/internal/match"
	"github.com/docshelf/docshelf/internal/repository"
)

// matchingStage assigns a correspondent by matching the extracted text
// against known correspondent patterns. Best effort only; any problem
// is reported inside the success payload.
type matchingStage struct {
	docs           repository.DocumentRepository
	correspondents repository.CorrespondentRepository
	matcher        *match.Matcher
	logger         *slog.Logger
}

func NewMatchingStage(docs repository.DocumentRepository, correspondents repository.CorrespondentRepository, matcher *match.Matcher, logger *slog.Logger) Stage {
	return &matchingStage{docs: docs, correspondents: correspondents, matcher: matcher, logger: logger}
}

func (s *matchingStage) Name() string  { return "correspondent-matching" }
func (s *matchingStage) Order() int    { return OrderMatching }
func (s *matchingStage) Supports(pc *Context) bool {
	return pc.DocumentID != uuid.Nil && pc.Text != ""
}

func (s *matchingStage) Process(ctx context.Context, pc *Context) StageResult {
	candidates, err := s.correspondents.ListWithPatterns(ctx)
	if err != nil {
		return SuccessWithData(map[string]any{"error": "list correspondents: " + err.Error()})
	}
	if len(candidates) == 0 {
		return SuccessWithData(map[string]any{"matched": false})
	}

	found := s.matcher.FindMatch(pc.Text, candidates)
	if found == nil {
		return SuccessWithData(map[string]any{"matched": false})
	}

	doc, err := s.docs.GetByID(ctx, pc.DocumentID)
	if err != nil {
		return SuccessWithData(map[string]any{"error": "load document: " + err.Error()})
	}
	doc.Correspondent = &found.Name
	if err := s.docs.Update(ctx, doc); err != nil {
		return SuccessWithData(map[string]any{"error": "save correspondent: " + err.Error()})
	}

	s.logger.Info("pipeline.correspondent.matched",
		"document_id", pc.DocumentID,
		"correspondent", found.Name,
		"algorithm", found.MatchAlgorithm)
	return SuccessWithData(map[string]any{"matched": true, "correspondent": found.Name})
}
