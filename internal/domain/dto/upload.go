package dto

import (
	"strings"

	"github.com/MrAlaeALK/afriq-ai-ranking/internal/domain"
)

// SpreadsheetRow is one (country, indicator, value) tuple extracted from
// an uploaded sheet. RowNumber refers to the source row for error reports.
type SpreadsheetRow struct {
	CountryName   string      `json:"countryName" validate:"required"`
	IndicatorName string      `json:"indicatorName" validate:"required"`
	Value         *float64    `json:"value" validate:"required,gte=0"`
	RawValue      *float64    `json:"rawValue,omitempty"`
	Year          domain.Year `json:"year" validate:"required"`
	RowNumber     int         `json:"rowNumber"`
}

func NewSpreadsheetRow(countryName, indicatorName string, value *float64, year domain.Year, rowNumber int) SpreadsheetRow {
	return SpreadsheetRow{
		CountryName:   strings.TrimSpace(countryName),
		IndicatorName: strings.TrimSpace(indicatorName),
		Value:         value,
		Year:          year,
		RowNumber:     rowNumber,
	}
}

// BatchResult is the per-batch ingestion report. Counts are always
// populated, even under partial failure.
type BatchResult struct {
	TotalRecords          int      `json:"totalRecords"`
	SuccessCount          int      `json:"successCount"`
	ErrorCount            int      `json:"errorCount"`
	SuccessfullyProcessed []string `json:"successfullyProcessed"`
	Errors                []string `json:"errors"`
}

// UploadPreview summarizes extracted rows before they are committed.
type UploadPreview struct {
	Countries      []string         `json:"countries"`
	Indicators     []string         `json:"indicators"`
	SampleRows     []SpreadsheetRow `json:"sampleRows"`
	CountryCount   int              `json:"countryCount"`
	IndicatorCount int              `json:"indicatorCount"`
	TotalRecords   int              `json:"totalRecords"`
	Year           domain.Year      `json:"year"`
	FileName       string           `json:"fileName"`
}

// UploadReport is the response of the process endpoint. A recompute
// failure after successful ingestion surfaces in RecalculationError
// without demoting already-counted successes.
type UploadReport struct {
	UploadID           string       `json:"uploadId"`
	FileName           string       `json:"fileName"`
	Year               domain.Year  `json:"year"`
	TotalProcessed     int          `json:"totalProcessed"`
	Results            *BatchResult `json:"results"`
	Message            string       `json:"message"`
	RecalculationError string       `json:"rankingRecalculationError,omitempty"`
}
