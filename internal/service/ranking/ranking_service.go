package ranking

import (
	"context"
	"errors"
	"sync"

	"github.com/MrAlaeALK/afriq-ai-ranking/internal/domain"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/domain/dto"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/pkg/constants"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/pkg/logger"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Store is the persistence surface the ranking service needs.
type Store interface {
	ListCountries(ctx context.Context) ([]*domain.Country, error)
	GetCountryByID(ctx context.Context, id int64) (*domain.Country, error)
	ListDimensionWeightsByYear(ctx context.Context, year domain.Year) ([]*domain.DimensionWeight, error)
	ListIndicatorWeights(ctx context.Context, dimensionWeightID int64) ([]*domain.IndicatorWeight, error)
	GetScore(ctx context.Context, countryID, indicatorID int64, year domain.Year) (*domain.Score, error)
	UpsertDimensionScore(ctx context.Context, score *domain.DimensionScore) (*domain.DimensionScore, error)
	GetDimensionScore(ctx context.Context, countryID, dimensionID int64, year domain.Year) (*domain.DimensionScore, error)
	ListDimensionScoresByYear(ctx context.Context, year domain.Year) ([]*domain.DimensionScore, error)
	DeleteDimensionScoresByYear(ctx context.Context, year domain.Year) error
	UpsertRank(ctx context.Context, rank *domain.Rank) (*domain.Rank, error)
	ListRanksByYearOrderByFinalScoreDesc(ctx context.Context, year domain.Year) ([]*domain.Rank, error)
	ListRanksByYearOrderByRank(ctx context.Context, year domain.Year) ([]*domain.Rank, error)
	DeleteRanksByYear(ctx context.Context, year domain.Year) error
}

type Service struct {
	store Store

	// recomputeMu serializes full-year rebuilds so two concurrent
	// recalculations cannot interleave delete and write phases.
	recomputeMu sync.Mutex
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// ComputeDimensionScores derives one dimension score per configured
// dimension for the given country and year and persists each of them.
// A dimension score is the weighted mean of the country's indicator
// scores under that dimension, rounded to two decimal places.
func (s *Service) ComputeDimensionScores(ctx context.Context, countryID int64, year domain.Year) error {
	dimensionWeights, err := s.store.ListDimensionWeightsByYear(ctx, year)
	if err != nil {
		return err
	}

	for _, dimensionWeight := range dimensionWeights {
		indicatorWeights, err := s.store.ListIndicatorWeights(ctx, dimensionWeight.ID)
		if err != nil {
			return err
		}
		var weightedSum, weightSum float64
		for _, indicatorWeight := range indicatorWeights {
			score, err := s.store.GetScore(ctx, countryID, indicatorWeight.IndicatorID, year)
			if err != nil {
				if errors.Is(err, constants.ErrDBNotFound) {
					return constants.MissingScore("no score for country %d, indicator %q, year %d",
						countryID, indicatorWeight.IndicatorName, year)
				}
				return err
			}

			weightedSum += score.Score * float64(indicatorWeight.Weight)
			weightSum += float64(indicatorWeight.Weight)
		}

		if weightSum == 0 {
			return constants.DivideByZero("indicator weights for dimension %q sum to zero in year %d",
				dimensionWeight.DimensionName, year)
		}

		rounded := decimal.NewFromFloat(weightedSum / weightSum).Round(2).InexactFloat64()

		_, err = s.store.UpsertDimensionScore(ctx, &domain.DimensionScore{
			CountryID:   countryID,
			DimensionID: dimensionWeight.DimensionID,
			Year:        year,
			Score:       rounded,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// ComputeFinalScore aggregates a country's dimension scores into its
// composite score for the year, persisting a rank row with a
// placeholder position. Dimension scores are computed first.
func (s *Service) ComputeFinalScore(ctx context.Context, countryID int64, year domain.Year) (*domain.Rank, error) {
	if err := s.ComputeDimensionScores(ctx, countryID, year); err != nil {
		return nil, err
	}

	dimensionWeights, err := s.store.ListDimensionWeightsByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	var weightedSum, weightSum float64
	for _, dimensionWeight := range dimensionWeights {
		dimensionScore, err := s.store.GetDimensionScore(ctx, countryID, dimensionWeight.DimensionID, year)
		if err != nil {
			if errors.Is(err, constants.ErrDBNotFound) {
				return nil, constants.Invariant("dimension score missing for country %d, dimension %q, year %d after compute",
					countryID, dimensionWeight.DimensionName, year)
			}
			return nil, err
		}

		weightedSum += dimensionScore.Score * float64(dimensionWeight.Weight)
		weightSum += float64(dimensionWeight.Weight)
	}

	if weightSum == 0 {
		return nil, constants.DivideByZero("dimension weights sum to zero in year %d", year)
	}

	rank, err := s.store.UpsertRank(ctx, &domain.Rank{
		CountryID:  countryID,
		Year:       year,
		FinalScore: weightedSum / weightSum,
		Rank:       1,
	})
	if err != nil {
		return nil, err
	}

	return rank, nil
}

// GenerateFinalScores computes the final score for every country in
// the given year. Countries are processed concurrently; the first
// failure aborts the whole pass.
func (s *Service) GenerateFinalScores(ctx context.Context, year domain.Year) error {
	countries, err := s.store.ListCountries(ctx)
	if err != nil {
		return err
	}

	group, groupCtx := errgroup.WithContext(ctx)
	for _, country := range countries {
		country := country
		group.Go(func() error {
			_, err := s.ComputeFinalScore(groupCtx, country.ID, year)
			return err
		})
	}

	return group.Wait()
}

// GenerateRanking recomputes every country's final score for the year
// and assigns competition-style positions: equal final scores share a
// position, and the position after a tie group skips past it.
func (s *Service) GenerateRanking(ctx context.Context, year domain.Year) ([]*dto.RankedCountryDTO, error) {
	if err := s.GenerateFinalScores(ctx, year); err != nil {
		return nil, err
	}

	ranks, err := s.store.ListRanksByYearOrderByFinalScoreDesc(ctx, year)
	if err != nil {
		return nil, err
	}

	position := 1
	lastPosition := 1
	var lastScore float64
	for i, rank := range ranks {
		if i > 0 && rank.FinalScore == lastScore {
			rank.Rank = lastPosition
		} else {
			rank.Rank = position
			lastPosition = position
		}
		lastScore = rank.FinalScore
		position++

		if _, err := s.store.UpsertRank(ctx, rank); err != nil {
			return nil, err
		}
	}

	return s.rankedCountries(ctx, ranks)
}

// RecalculateYear rebuilds every derived row for the year from
// scratch: stale dimension scores and ranks are dropped before the
// new ranking is generated.
func (s *Service) RecalculateYear(ctx context.Context, year domain.Year) ([]*dto.RankedCountryDTO, error) {
	s.recomputeMu.Lock()
	defer s.recomputeMu.Unlock()

	logger.Infof(ctx, "recalculating rankings for year %d", year)

	if err := s.store.DeleteDimensionScoresByYear(ctx, year); err != nil {
		return nil, err
	}
	if err := s.store.DeleteRanksByYear(ctx, year); err != nil {
		return nil, err
	}

	return s.GenerateRanking(ctx, year)
}

// RankingByYear returns the stored ranking for the year, best first.
func (s *Service) RankingByYear(ctx context.Context, year domain.Year) ([]*dto.RankedCountryDTO, error) {
	ranks, err := s.store.ListRanksByYearOrderByRank(ctx, year)
	if err != nil {
		return nil, err
	}

	return s.rankedCountries(ctx, ranks)
}

func (s *Service) rankedCountries(ctx context.Context, ranks []*domain.Rank) ([]*dto.RankedCountryDTO, error) {
	result := make([]*dto.RankedCountryDTO, 0, len(ranks))
	for _, rank := range ranks {
		country, err := s.store.GetCountryByID(ctx, rank.CountryID)
		if err != nil {
			return nil, err
		}

		result = append(result, &dto.RankedCountryDTO{
			Rank:        rank.Rank,
			CountryName: country.Name,
			CountryCode: country.Code,
			Region:      country.Region,
			FinalScore:  rank.FinalScore,
		})
	}

	return result, nil
}

// DimensionScoresByYear returns all stored dimension scores for the
// year with country and dimension names resolved.
func (s *Service) DimensionScoresByYear(ctx context.Context, year domain.Year) ([]*dto.DimensionScoreDTO, error) {
	scores, err := s.store.ListDimensionScoresByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	dimensionWeights, err := s.store.ListDimensionWeightsByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	dimensionNames := make(map[int64]string, len(dimensionWeights))
	for _, dimensionWeight := range dimensionWeights {
		dimensionNames[dimensionWeight.DimensionID] = dimensionWeight.DimensionName
	}

	result := make([]*dto.DimensionScoreDTO, 0, len(scores))
	for _, score := range scores {
		country, err := s.store.GetCountryByID(ctx, score.CountryID)
		if err != nil {
			return nil, err
		}

		result = append(result, &dto.DimensionScoreDTO{
			CountryName:   country.Name,
			DimensionName: dimensionNames[score.DimensionID],
			Score:         score.Score,
		})
	}

	return result, nil
}
