package ingest

import (
	"context"
	"errors"
	"fmt"

	"github.com/MrAlaeALK/afriq-ai-ranking/internal/domain"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/domain/dto"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/pkg/constants"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/pkg/logger"
)

// Store is the persistence surface bulk ingestion needs.
type Store interface {
	GetCountryByName(ctx context.Context, name string) (*domain.Country, error)
	GetIndicatorByName(ctx context.Context, name string) (*domain.Indicator, error)
	GetScore(ctx context.Context, countryID, indicatorID int64, year domain.Year) (*domain.Score, error)
	UpsertScore(ctx context.Context, score *domain.Score) (*domain.Score, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// ProcessBatch ingests rows one by one with row-level isolation: a
// failing row is recorded in the result and the batch moves on. The
// batch itself never fails.
func (s *Service) ProcessBatch(ctx context.Context, rows []*dto.SpreadsheetRow, overwriteExisting bool) *dto.BatchResult {
	result := &dto.BatchResult{
		TotalRecords:          len(rows),
		SuccessfullyProcessed: []string{},
		Errors:                []string{},
	}

	for _, row := range rows {
		label := fmt.Sprintf("%s - %s", row.CountryName, row.IndicatorName)

		if err := s.processRow(ctx, row, overwriteExisting); err != nil {
			logger.Warnf(ctx, "row %d rejected: %v", row.RowNumber, err)
			result.ErrorCount++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", label, err.Error()))
			continue
		}

		result.SuccessCount++
		result.SuccessfullyProcessed = append(result.SuccessfullyProcessed, label)
	}

	return result
}

func (s *Service) processRow(ctx context.Context, row *dto.SpreadsheetRow, overwriteExisting bool) error {
	country, err := s.store.GetCountryByName(ctx, row.CountryName)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return constants.NotFound("country %q not found", row.CountryName)
		}
		return err
	}

	indicator, err := s.store.GetIndicatorByName(ctx, row.IndicatorName)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return constants.NotFound("indicator %q not found", row.IndicatorName)
		}
		return err
	}

	if row.Value == nil {
		return constants.BadInput("missing value")
	}

	existing, err := s.store.GetScore(ctx, country.ID, indicator.ID, row.Year)
	if err != nil && !errors.Is(err, constants.ErrDBNotFound) {
		return err
	}
	if existing != nil && !overwriteExisting {
		return constants.Conflict("score already exists for year %d", row.Year)
	}

	rawValue := row.RawValue
	if rawValue == nil {
		rawValue = row.Value
	}

	_, err = s.store.UpsertScore(ctx, &domain.Score{
		CountryID:   country.ID,
		IndicatorID: indicator.ID,
		Year:        row.Year,
		Score:       *row.Value,
		RawValue:    rawValue,
	})

	return err
}
