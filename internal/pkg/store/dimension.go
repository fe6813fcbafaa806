package store

import (
	"context"

	"github.com/MrAlaeALK/afriq-ai-ranking/internal/domain"
	sq "github.com/Masterminds/squirrel"
)

var dimensionColumns = []string{"id", "name", "description", "display_order", "created_at", "updated_at"}

func (s *store) CreateDimension(ctx context.Context, dimension *domain.Dimension) (*domain.Dimension, error) {
	query := builder().Insert(tableDimensions).
		Columns("name", "description", "display_order").
		Values(dimension.Name, dimension.Description, dimension.DisplayOrder).
		Suffix("RETURNING " + joinColumns(dimensionColumns))

	var created domain.Dimension
	if err := s.pool.Getx(ctx, &created, query); err != nil {
		return nil, wrapErr(err)
	}

	return &created, nil
}

func (s *store) GetDimensionByID(ctx context.Context, id int64) (*domain.Dimension, error) {
	query := builder().Select(dimensionColumns...).
		From(tableDimensions).
		Where(sq.Eq{"id": id})

	var selected domain.Dimension
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) GetDimensionByName(ctx context.Context, name string) (*domain.Dimension, error) {
	query := builder().Select(dimensionColumns...).
		From(tableDimensions).
		Where(sq.Eq{"name": name})

	var selected domain.Dimension
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) ListDimensions(ctx context.Context) ([]*domain.Dimension, error) {
	query := builder().Select(dimensionColumns...).
		From(tableDimensions).
		OrderBy("display_order, name")

	var selected []*domain.Dimension
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
