package store

import (
	"context"

	"github.com/MrAlaeALK/afriq-ai-ranking/internal/domain"
	sq "github.com/Masterminds/squirrel"
)

var scoreColumns = []string{"id", "country_id", "indicator_id", "year", "score", "raw_value", "created_at", "updated_at"}

func (s *store) GetScore(ctx context.Context, countryID, indicatorID int64, year domain.Year) (*domain.Score, error) {
	query := builder().Select(scoreColumns...).
		From(tableScores).
		Where(sq.And{
			sq.Eq{"country_id": countryID},
			sq.Eq{"indicator_id": indicatorID},
			sq.Eq{"year": year},
		})

	var selected domain.Score
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

// UpsertScore writes the score for (country, indicator, year), replacing
// any previous value. Last writer wins.
func (s *store) UpsertScore(ctx context.Context, score *domain.Score) (*domain.Score, error) {
	query := builder().Insert(tableScores).
		Columns("country_id", "indicator_id", "year", "score", "raw_value").
		Values(score.CountryID, score.IndicatorID, score.Year, score.Score, score.RawValue).
		Suffix(`on conflict (country_id, indicator_id, year)
do update set score = excluded.score, raw_value = excluded.raw_value, updated_at = now()
RETURNING ` + joinColumns(scoreColumns))

	var saved domain.Score
	if err := s.pool.Getx(ctx, &saved, query); err != nil {
		return nil, wrapErr(err)
	}

	return &saved, nil
}
