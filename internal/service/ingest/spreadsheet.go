package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MrAlaeALK/afriq-ai-ranking/internal/domain"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/domain/dto"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/pkg/constants"
	"github.com/xuri/excelize/v2"
)

const previewSampleSize = 10

// ExtractRows parses an uploaded spreadsheet into ingestion rows. The
// first row must be a header whose first cell names the country column
// and whose remaining cells name indicators. Cells that fail to parse
// become error strings instead of aborting the extraction.
func ExtractRows(ctx context.Context, fileName string, reader io.Reader, year domain.Year) ([]*dto.SpreadsheetRow, []string, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".xlsx":
		return extractXLSX(reader, year)
	case ".csv":
		return extractCSV(reader, year)
	default:
		return nil, nil, constants.BadInput("unsupported file type %q, expected .xlsx or .csv", filepath.Ext(fileName))
	}
}

func extractXLSX(reader io.Reader, year domain.Year) ([]*dto.SpreadsheetRow, []string, error) {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, nil, constants.BadInput("cannot read workbook: %s", err.Error())
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, constants.BadInput("workbook has no sheets")
	}

	records, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, nil, constants.BadInput("cannot read sheet %q: %s", sheets[0], err.Error())
	}

	return rowsFromRecords(records, year)
}

func extractCSV(reader io.Reader, year domain.Year) ([]*dto.SpreadsheetRow, []string, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, nil, constants.BadInput("cannot parse csv: %s", err.Error())
	}

	return rowsFromRecords(records, year)
}

func rowsFromRecords(records [][]string, year domain.Year) ([]*dto.SpreadsheetRow, []string, error) {
	if len(records) < 2 {
		return nil, nil, constants.BadInput("file has no data rows")
	}

	header := records[0]
	if len(header) < 2 {
		return nil, nil, constants.BadInput("header must hold a country column and at least one indicator column")
	}
	if !strings.EqualFold(strings.TrimSpace(header[0]), "country") {
		return nil, nil, constants.BadInput("first header cell must be %q, got %q", "Country", header[0])
	}

	indicators := make([]string, 0, len(header)-1)
	for _, name := range header[1:] {
		indicators = append(indicators, strings.TrimSpace(name))
	}

	var rows []*dto.SpreadsheetRow
	var cellErrors []string

	for i, record := range records[1:] {
		rowNumber := i + 2

		if isBlankRecord(record) {
			continue
		}

		countryName := strings.TrimSpace(record[0])
		if countryName == "" {
			cellErrors = append(cellErrors, fmt.Sprintf("row %d: empty country name", rowNumber))
			continue
		}

		for col, indicatorName := range indicators {
			if indicatorName == "" {
				continue
			}

			cell := ""
			if col+1 < len(record) {
				cell = strings.TrimSpace(record[col+1])
			}
			if cell == "" {
				cellErrors = append(cellErrors,
					fmt.Sprintf("row %d: empty value for %s - %s", rowNumber, countryName, indicatorName))
				continue
			}

			value, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				cellErrors = append(cellErrors,
					fmt.Sprintf("row %d: %q is not a number for %s - %s", rowNumber, cell, countryName, indicatorName))
				continue
			}
			if value < 0 {
				cellErrors = append(cellErrors,
					fmt.Sprintf("row %d: negative value for %s - %s", rowNumber, countryName, indicatorName))
				continue
			}

			row := dto.NewSpreadsheetRow(countryName, indicatorName, &value, year, rowNumber)
			rows = append(rows, &row)
		}
	}

	if len(rows) == 0 && len(cellErrors) == 0 {
		return nil, nil, constants.BadInput("file has no data rows")
	}

	return rows, cellErrors, nil
}

func isBlankRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// BuildPreview summarizes extracted rows for the validate endpoint.
func BuildPreview(fileName string, year domain.Year, rows []*dto.SpreadsheetRow) *dto.UploadPreview {
	countrySet := map[string]struct{}{}
	indicatorSet := map[string]struct{}{}

	var countries, indicators []string
	for _, row := range rows {
		if _, ok := countrySet[row.CountryName]; !ok {
			countrySet[row.CountryName] = struct{}{}
			countries = append(countries, row.CountryName)
		}
		if _, ok := indicatorSet[row.IndicatorName]; !ok {
			indicatorSet[row.IndicatorName] = struct{}{}
			indicators = append(indicators, row.IndicatorName)
		}
	}

	sample := make([]dto.SpreadsheetRow, 0, previewSampleSize)
	for _, row := range rows {
		if len(sample) == previewSampleSize {
			break
		}
		sample = append(sample, *row)
	}

	return &dto.UploadPreview{
		Countries:      countries,
		Indicators:     indicators,
		SampleRows:     sample,
		CountryCount:   len(countries),
		IndicatorCount: len(indicators),
		TotalRecords:   len(rows),
		Year:           year,
		FileName:       fileName,
	}
}
