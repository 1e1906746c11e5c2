package repository

import (
	"context"
	"log/slog"

	"github.com/docshelf/docshelf/gen/ent"
	entcat "github.com/docshelf/docshelf/gen/ent/category"
	"github.com/docshelf/docshelf/internal/entity"
)

type CategoryRepository interface {
	FindByName(ctx context.Context, name string) (*entity.Category, error)
	// FindOrCreate returns the named category, creating it when absent.
	FindOrCreate(ctx context.Context, name, description string) (*entity.Category, error)
}

type categoryRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewCategoryRepository(entc *ent.Client, logger *slog.Logger) CategoryRepository {
	return &categoryRepo{ent: entc, logger: logger}
}

func (r *categoryRepo) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	row, err := r.ent.Category.Query().
		Where(entcat.Name(name)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return toCategory(row), nil
}

func (r *categoryRepo) FindOrCreate(ctx context.Context, name, description string) (*entity.Category, error) {
	if existing, err := r.FindByName(ctx, name); err == nil {
		return existing, nil
	}
	row, err := r.ent.Category.Create().
		SetName(name).
		SetDescription(description).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create category", "name", name, "error", err)
		return nil, err
	}
	r.logger.Info("category created", "name", name)
	return toCategory(row), nil
}

func toCategory(row *ent.Category) *entity.Category {
	return &entity.Category{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
	}
}
