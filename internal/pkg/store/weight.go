package store

import (
	"context"

	"github.com/MrAlaeALK/afriq-ai-ranking/internal/domain"
	sq "github.com/Masterminds/squirrel"
)

func (s *store) CreateDimensionWeight(ctx context.Context, weight *domain.DimensionWeight) (*domain.DimensionWeight, error) {
	query := builder().Insert(tableDimensionWeights).
		Columns("dimension_id", "year", "weight").
		Values(weight.DimensionID, weight.Year, weight.Weight).
		Suffix("RETURNING id")

	var id int64
	if err := s.pool.Getx(ctx, &id, query); err != nil {
		return nil, wrapErr(err)
	}

	return s.getDimensionWeightByID(ctx, id)
}

func (s *store) getDimensionWeightByID(ctx context.Context, id int64) (*domain.DimensionWeight, error) {
	query := dimensionWeightSelect().Where(sq.Eq{"dw.id": id})

	var selected domain.DimensionWeight
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) GetDimensionWeight(ctx context.Context, dimensionID int64, year domain.Year) (*domain.DimensionWeight, error) {
	query := dimensionWeightSelect().Where(sq.And{
		sq.Eq{"dw.dimension_id": dimensionID},
		sq.Eq{"dw.year": year},
	})

	var selected domain.DimensionWeight
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) ListDimensionWeightsByYear(ctx context.Context, year domain.Year) ([]*domain.DimensionWeight, error) {
	query := dimensionWeightSelect().
		Where(sq.Eq{"dw.year": year}).
		OrderBy("d.display_order, d.name")

	var selected []*domain.DimensionWeight
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func dimensionWeightSelect() sq.SelectBuilder {
	return builder().Select(
		"dw.id", "dw.dimension_id", "d.name as dimension_name", "dw.year", "dw.weight").
		From(tableDimensionWeights + " dw").
		Join(tableDimensions + " d on d.id = dw.dimension_id")
}

func (s *store) CreateIndicatorWeight(ctx context.Context, weight *domain.IndicatorWeight) (*domain.IndicatorWeight, error) {
	query := builder().Insert(tableIndicatorWeights).
		Columns("dimension_weight_id", "indicator_id", "weight").
		Values(weight.DimensionWeightID, weight.IndicatorID, weight.Weight).
		Suffix("RETURNING id")

	var id int64
	if err := s.pool.Getx(ctx, &id, query); err != nil {
		return nil, wrapErr(err)
	}

	selectQuery := indicatorWeightSelect().Where(sq.Eq{"iw.id": id})

	var selected domain.IndicatorWeight
	if err := s.pool.Getx(ctx, &selected, selectQuery); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) ListIndicatorWeights(ctx context.Context, dimensionWeightID int64) ([]*domain.IndicatorWeight, error) {
	query := indicatorWeightSelect().
		Where(sq.Eq{"iw.dimension_weight_id": dimensionWeightID}).
		OrderBy("i.name")

	var selected []*domain.IndicatorWeight
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func indicatorWeightSelect() sq.SelectBuilder {
	return builder().Select(
		"iw.id", "iw.dimension_weight_id", "iw.indicator_id", "i.name as indicator_name", "iw.weight").
		From(tableIndicatorWeights + " iw").
		Join(tableIndicators + " i on i.id = iw.indicator_id")
}
