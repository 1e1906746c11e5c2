package repository

import (
	"context"
	"log/slog"

	"github.com/docshelf/docshelf/gen/ent"
	entcorr "github.com/docshelf/docshelf/gen/ent/correspondent"
	"github.com/docshelf/docshelf/internal/entity"
)

type CorrespondentRepository interface {
	// ListWithPatterns returns correspondents that carry a non-empty match
	// pattern, the candidate set for text matching.
	ListWithPatterns(ctx context.Context) ([]*entity.Correspondent, error)
}

type correspondentRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewCorrespondentRepository(entc *ent.Client, logger *slog.Logger) CorrespondentRepository {
	return &correspondentRepo{ent: entc, logger: logger}
}

func (r *correspondentRepo) ListWithPatterns(ctx context.Context) ([]*entity.Correspondent, error) {
	rows, err := r.ent.Correspondent.Query().
		Where(entcorr.MatchPatternNEQ("")).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list correspondents", "error", err)
		return nil, err
	}
	out := make([]*entity.Correspondent, len(rows))
	for i, row := range rows {
		out[i] = &entity.Correspondent{
			ID:             row.ID,
			Name:           row.Name,
			MatchPattern:   row.MatchPattern,
			MatchAlgorithm: row.MatchAlgorithm,
			Insensitive:    row.Insensitive,
		}
	}
	return out, nil
}
