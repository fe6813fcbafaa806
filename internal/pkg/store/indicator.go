package store

import (
	"context"

	"github.com/MrAlaeALK/afriq-ai-ranking/internal/domain"
	sq "github.com/Masterminds/squirrel"
)

var indicatorColumns = []string{"id", "name", "description", "normalization_type", "created_at", "updated_at"}

func (s *store) CreateIndicator(ctx context.Context, indicator *domain.Indicator) (*domain.Indicator, error) {
	normalizationType := indicator.NormalizationType
	if normalizationType == "" {
		normalizationType = domain.DefaultNormalizationType
	}

	query := builder().Insert(tableIndicators).
		Columns("name", "description", "normalization_type").
		Values(indicator.Name, indicator.Description, normalizationType).
		Suffix("RETURNING " + joinColumns(indicatorColumns))

	var created domain.Indicator
	if err := s.pool.Getx(ctx, &created, query); err != nil {
		return nil, wrapErr(err)
	}

	return &created, nil
}

func (s *store) GetIndicatorByID(ctx context.Context, id int64) (*domain.Indicator, error) {
	query := builder().Select(indicatorColumns...).
		From(tableIndicators).
		Where(sq.Eq{"id": id})

	var selected domain.Indicator
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) GetIndicatorByName(ctx context.Context, name string) (*domain.Indicator, error) {
	query := builder().Select(indicatorColumns...).
		From(tableIndicators).
		Where(sq.Eq{"name": name})

	var selected domain.Indicator
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) ListIndicators(ctx context.Context) ([]*domain.Indicator, error) {
	query := builder().Select(indicatorColumns...).
		From(tableIndicators).
		OrderBy("name")

	var selected []*domain.Indicator
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
