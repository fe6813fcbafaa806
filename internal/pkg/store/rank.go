package store

import (
	"context"

	"github.com/MrAlaeALK/afriq-ai-ranking/internal/domain"
	sq "github.com/Masterminds/squirrel"
)

var rankColumns = []string{"id", "country_id", "year", "final_score", "rank"}

func (s *store) UpsertRank(ctx context.Context, rank *domain.Rank) (*domain.Rank, error) {
	query := builder().Insert(tableRanks).
		Columns("country_id", "year", "final_score", "rank").
		Values(rank.CountryID, rank.Year, rank.FinalScore, rank.Rank).
		Suffix(`on conflict (country_id, year)
do update set final_score = excluded.final_score, rank = excluded.rank
RETURNING ` + joinColumns(rankColumns))

	var saved domain.Rank
	if err := s.pool.Getx(ctx, &saved, query); err != nil {
		return nil, wrapErr(err)
	}

	return &saved, nil
}

func (s *store) ListRanksByYearOrderByFinalScoreDesc(ctx context.Context, year domain.Year) ([]*domain.Rank, error) {
	query := builder().Select(rankColumns...).
		From(tableRanks).
		Where(sq.Eq{"year": year}).
		OrderBy("final_score desc")

	var selected []*domain.Rank
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListRanksByYearOrderByRank(ctx context.Context, year domain.Year) ([]*domain.Rank, error) {
	query := builder().Select(rankColumns...).
		From(tableRanks).
		Where(sq.Eq{"year": year}).
		OrderBy("rank, final_score desc")

	var selected []*domain.Rank
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) DeleteRanksByYear(ctx context.Context, year domain.Year) error {
	query := builder().Delete(tableRanks).Where(sq.Eq{"year": year})

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}
