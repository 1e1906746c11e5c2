package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docshelf/docshelf/internal/classifier"
	"github.com/docshelf/docshelf/internal/common"
	"github.com/docshelf/docshelf/internal/repository"
)

// minClassifiableText is the shortest text worth sending to the
// classifier; anything below it produces noise predictions.
const minClassifiableText = 50

// classificationStage queries the ML classifier with the extracted
// text. High-confidence predictions are applied as a category on the
// document; mid-confidence ones are only recorded as a suggestion.
type classificationStage struct {
	docs       repository.DocumentRepository
	categories repository.CategoryRepository
	ml         classifier.Classifier
	cfg        common.MLConfig
	logger     *slog.Logger
}

func NewClassificationStage(docs repository.DocumentRepository, categories repository.CategoryRepository, ml classifier.Classifier, cfg common.MLConfig, logger *slog.Logger) Stage {
	return &classificationStage{docs: docs, categories: categories, ml: ml, cfg: cfg, logger: logger}
}

func (s *classificationStage) Name() string  { return "classification" }
func (s *classificationStage) Order() int    { return OrderClassification }
func (s *classificationStage) Supports(pc *Context) bool {
	return s.cfg.AutoClassify && pc.DocumentID != uuid.Nil && len(pc.Text) >= minClassifiableText
}

func (s *classificationStage) Process(ctx context.Context, pc *Context) StageResult {
	if !s.ml.IsAvailable(ctx) {
		return Skipped("classifier unavailable")
	}

	pred, err := s.ml.Classify(ctx, pc.Text)
	if err != nil {
		return SuccessWithData(map[string]any{"error": "classify: " + err.Error()})
	}
	if pred == nil || pred.Category == "" || pred.Confidence < s.cfg.SuggestThreshold {
		return SuccessWithData(map[string]any{"applied": false})
	}

	pc.SuggestedCategory = pred.Category
	data := map[string]any{
		"category":   pred.Category,
		"confidence": fmt.Sprintf("%.2f", pred.Confidence),
		"applied":    false,
	}

	if pred.Confidence < s.cfg.AutoApplyThreshold {
		s.logger.Info("pipeline.classification.suggested",
			"document_id", pc.DocumentID,
			"category", pred.Category,
			"confidence", pred.Confidence)
		return SuccessWithData(data)
	}

	if _, err := s.categories.FindOrCreate(ctx, pred.Category, ""); err != nil {
		data["error"] = "ensure category: " + err.Error()
		return SuccessWithData(data)
	}
	doc, err := s.docs.GetByID(ctx, pc.DocumentID)
	if err != nil {
		data["error"] = "load document: " + err.Error()
		return SuccessWithData(data)
	}
	if !doc.HasCategory(pred.Category) {
		doc.Categories = append(doc.Categories, pred.Category)
		if err := s.docs.Update(ctx, doc); err != nil {
			data["error"] = "save category: " + err.Error()
			return SuccessWithData(data)
		}
	}

	data["applied"] = true
	s.logger.Info("pipeline.classification.applied",
		"document_id", pc.DocumentID,
		"category", pred.Category,
		"confidence", pred.Confidence)
	return SuccessWithData(data)
}
