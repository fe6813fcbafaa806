package catalog

import (
	"context"
	"errors"

	"github.com/MrAlaeALK/afriq-ai-ranking/internal/domain"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/domain/dto"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/pkg/constants"
)

// Store is the persistence surface catalog administration needs.
type Store interface {
	CreateCountry(ctx context.Context, country *domain.Country) (*domain.Country, error)
	GetCountryByName(ctx context.Context, name string) (*domain.Country, error)
	GetCountryByID(ctx context.Context, id int64) (*domain.Country, error)
	ListCountries(ctx context.Context) ([]*domain.Country, error)

	CreateIndicator(ctx context.Context, indicator *domain.Indicator) (*domain.Indicator, error)
	GetIndicatorByName(ctx context.Context, name string) (*domain.Indicator, error)
	GetIndicatorByID(ctx context.Context, id int64) (*domain.Indicator, error)
	ListIndicators(ctx context.Context) ([]*domain.Indicator, error)

	CreateDimension(ctx context.Context, dimension *domain.Dimension) (*domain.Dimension, error)
	GetDimensionByName(ctx context.Context, name string) (*domain.Dimension, error)
	GetDimensionByID(ctx context.Context, id int64) (*domain.Dimension, error)
	ListDimensions(ctx context.Context) ([]*domain.Dimension, error)

	CreateDimensionWeight(ctx context.Context, weight *domain.DimensionWeight) (*domain.DimensionWeight, error)
	GetDimensionWeight(ctx context.Context, dimensionID int64, year domain.Year) (*domain.DimensionWeight, error)
	ListDimensionWeightsByYear(ctx context.Context, year domain.Year) ([]*domain.DimensionWeight, error)
	CreateIndicatorWeight(ctx context.Context, weight *domain.IndicatorWeight) (*domain.IndicatorWeight, error)

	GetScore(ctx context.Context, countryID, indicatorID int64, year domain.Year) (*domain.Score, error)
	UpsertScore(ctx context.Context, score *domain.Score) (*domain.Score, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) AddCountry(ctx context.Context, country *domain.Country) (*domain.Country, error) {
	_, err := s.store.GetCountryByName(ctx, country.Name)
	if err == nil {
		return nil, constants.Conflict("country %q already exists", country.Name)
	}
	if !errors.Is(err, constants.ErrDBNotFound) {
		return nil, err
	}

	return s.store.CreateCountry(ctx, country)
}

func (s *Service) AddIndicator(ctx context.Context, indicator *domain.Indicator) (*domain.Indicator, error) {
	_, err := s.store.GetIndicatorByName(ctx, indicator.Name)
	if err == nil {
		return nil, constants.Conflict("indicator %q already exists", indicator.Name)
	}
	if !errors.Is(err, constants.ErrDBNotFound) {
		return nil, err
	}

	return s.store.CreateIndicator(ctx, indicator)
}

func (s *Service) AddDimension(ctx context.Context, dimension *domain.Dimension) (*domain.Dimension, error) {
	_, err := s.store.GetDimensionByName(ctx, dimension.Name)
	if err == nil {
		return nil, constants.Conflict("dimension %q already exists", dimension.Name)
	}
	if !errors.Is(err, constants.ErrDBNotFound) {
		return nil, err
	}

	return s.store.CreateDimension(ctx, dimension)
}

// AddScore records a new score. The key must be free: overwriting an
// existing score goes through UpdateScore instead.
func (s *Service) AddScore(ctx context.Context, d *dto.AddOrUpdateScoreDTO) (*domain.Score, error) {
	if err := s.checkScoreRefs(ctx, d); err != nil {
		return nil, err
	}

	_, err := s.store.GetScore(ctx, d.CountryID, d.IndicatorID, d.Year)
	if err == nil {
		return nil, constants.Conflict("score already exists for country %d, indicator %d, year %d",
			d.CountryID, d.IndicatorID, d.Year)
	}
	if !errors.Is(err, constants.ErrDBNotFound) {
		return nil, err
	}

	return s.upsertScore(ctx, d)
}

// UpdateScore replaces an existing score. The key must already exist.
func (s *Service) UpdateScore(ctx context.Context, d *dto.AddOrUpdateScoreDTO) (*domain.Score, error) {
	if err := s.checkScoreRefs(ctx, d); err != nil {
		return nil, err
	}

	if _, err := s.store.GetScore(ctx, d.CountryID, d.IndicatorID, d.Year); err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return nil, constants.NotFound("no score for country %d, indicator %d, year %d",
				d.CountryID, d.IndicatorID, d.Year)
		}
		return nil, err
	}

	return s.upsertScore(ctx, d)
}

func (s *Service) upsertScore(ctx context.Context, d *dto.AddOrUpdateScoreDTO) (*domain.Score, error) {
	value := d.Score
	return s.store.UpsertScore(ctx, &domain.Score{
		CountryID:   d.CountryID,
		IndicatorID: d.IndicatorID,
		Year:        d.Year,
		Score:       value,
		RawValue:    &value,
	})
}

func (s *Service) checkScoreRefs(ctx context.Context, d *dto.AddOrUpdateScoreDTO) error {
	if _, err := s.store.GetCountryByID(ctx, d.CountryID); err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return constants.NotFound("country %d not found", d.CountryID)
		}
		return err
	}
	if _, err := s.store.GetIndicatorByID(ctx, d.IndicatorID); err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return constants.NotFound("indicator %d not found", d.IndicatorID)
		}
		return err
	}

	return nil
}

// AddDimensionWeight weights a dimension for one year. At most one
// weight per (dimension, year).
func (s *Service) AddDimensionWeight(ctx context.Context, d *dto.AddDimensionWeightDTO) (*domain.DimensionWeight, error) {
	if _, err := s.store.GetDimensionByID(ctx, d.DimensionID); err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return nil, constants.NotFound("dimension %d not found", d.DimensionID)
		}
		return nil, err
	}

	_, err := s.store.GetDimensionWeight(ctx, d.DimensionID, d.Year)
	if err == nil {
		return nil, constants.Conflict("dimension %d already weighted for year %d", d.DimensionID, d.Year)
	}
	if !errors.Is(err, constants.ErrDBNotFound) {
		return nil, err
	}

	return s.store.CreateDimensionWeight(ctx, &domain.DimensionWeight{
		DimensionID: d.DimensionID,
		Year:        d.Year,
		Weight:      d.Weight,
	})
}

// AddIndicatorWeight attaches an indicator weight to the dimension's
// weight row for the year, which must exist first.
func (s *Service) AddIndicatorWeight(ctx context.Context, d *dto.AddIndicatorWeightDTO) (*domain.IndicatorWeight, error) {
	if _, err := s.store.GetIndicatorByID(ctx, d.IndicatorID); err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return nil, constants.NotFound("indicator %d not found", d.IndicatorID)
		}
		return nil, err
	}

	dimensionWeight, err := s.store.GetDimensionWeight(ctx, d.DimensionID, d.Year)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return nil, constants.NotFound("dimension %d has no weight for year %d", d.DimensionID, d.Year)
		}
		return nil, err
	}

	return s.store.CreateIndicatorWeight(ctx, &domain.IndicatorWeight{
		DimensionWeightID: dimensionWeight.ID,
		IndicatorID:       d.IndicatorID,
		Weight:            d.Weight,
	})
}

// YearDimensions lists the dimensions weighted for a year with their
// weights resolved.
func (s *Service) YearDimensions(ctx context.Context, year domain.Year) ([]*dto.YearDimensionDTO, error) {
	dimensionWeights, err := s.store.ListDimensionWeightsByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.YearDimensionDTO, 0, len(dimensionWeights))
	for _, dimensionWeight := range dimensionWeights {
		dimension, err := s.store.GetDimensionByID(ctx, dimensionWeight.DimensionID)
		if err != nil {
			return nil, err
		}

		result = append(result, &dto.YearDimensionDTO{
			DimensionID: dimension.ID,
			Name:        dimension.Name,
			Description: dimension.Description,
			Weight:      dimensionWeight.Weight,
		})
	}

	return result, nil
}

func (s *Service) ListCountries(ctx context.Context) ([]*domain.Country, error) {
	return s.store.ListCountries(ctx)
}

func (s *Service) ListIndicators(ctx context.Context) ([]*domain.Indicator, error) {
	return s.store.ListIndicators(ctx)
}

func (s *Service) ListDimensions(ctx context.Context) ([]*domain.Dimension, error) {
	return s.store.ListDimensions(ctx)
}
