package store

import (
	"context"

	"github.com/MrAlaeALK/afriq-ai-ranking/internal/domain"
	sq "github.com/Masterminds/squirrel"
)

var dimensionScoreColumns = []string{"id", "country_id", "dimension_id", "year", "score"}

// UpsertDimensionScore replaces the derived score for
// (country, dimension, year); recompute passes never patch rows.
func (s *store) UpsertDimensionScore(ctx context.Context, score *domain.DimensionScore) (*domain.DimensionScore, error) {
	query := builder().Insert(tableDimensionScores).
		Columns("country_id", "dimension_id", "year", "score").
		Values(score.CountryID, score.DimensionID, score.Year, score.Score).
		Suffix(`on conflict (country_id, dimension_id, year)
do update set score = excluded.score
RETURNING ` + joinColumns(dimensionScoreColumns))

	var saved domain.DimensionScore
	if err := s.pool.Getx(ctx, &saved, query); err != nil {
		return nil, wrapErr(err)
	}

	return &saved, nil
}

func (s *store) GetDimensionScore(ctx context.Context, countryID, dimensionID int64, year domain.Year) (*domain.DimensionScore, error) {
	query := builder().Select(dimensionScoreColumns...).
		From(tableDimensionScores).
		Where(sq.And{
			sq.Eq{"country_id": countryID},
			sq.Eq{"dimension_id": dimensionID},
			sq.Eq{"year": year},
		})

	var selected domain.DimensionScore
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) ListDimensionScoresByYear(ctx context.Context, year domain.Year) ([]*domain.DimensionScore, error) {
	query := builder().Select(dimensionScoreColumns...).
		From(tableDimensionScores).
		Where(sq.Eq{"year": year})

	var selected []*domain.DimensionScore
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) DeleteDimensionScoresByYear(ctx context.Context, year domain.Year) error {
	query := builder().Delete(tableDimensionScores).Where(sq.Eq{"year": year})

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}
