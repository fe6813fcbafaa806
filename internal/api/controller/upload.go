package controller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MrAlaeALK/afriq-ai-ranking/internal/domain"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/domain/dto"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/pkg/constants"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/pkg/logger"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/service/ingest"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ValidateUpload parses the uploaded sheet and returns a preview
// without writing anything.
func (c *Controller) ValidateUpload(ctx echo.Context) error {
	fileName, year, rows, cellErrors, err := c.extractUpload(ctx)
	if err != nil {
		return err
	}

	preview := ingest.BuildPreview(fileName, year, rows)

	return ctx.JSON(http.StatusOK, map[string]any{
		"preview": preview,
		"errors":  cellErrors,
	})
}

// ProcessUpload ingests the uploaded sheet and, when at least one row
// landed, triggers a full recompute of the year. A recompute failure
// is attached to the report as a warning rather than failing the
// upload.
func (c *Controller) ProcessUpload(ctx echo.Context) error {
	fileName, year, rows, cellErrors, err := c.extractUpload(ctx)
	if err != nil {
		return err
	}

	overwrite, _ := strconv.ParseBool(ctx.FormValue("overwrite"))
	if normalize, _ := strconv.ParseBool(ctx.FormValue("normalize")); normalize {
		ingest.NormalizeMinMax(rows)
	}

	result := c.ingestService.ProcessBatch(ctx.Request().Context(), rows, overwrite)
	report := assembleUploadReport(fileName, year, result, cellErrors)

	if result.SuccessCount > 0 {
		if _, err := c.rankingService.RecalculateYear(ctx.Request().Context(), year); err != nil {
			logger.Errorf(ctx.Request().Context(), "ranking recalculation failed for year %d: %v", year, err)
			report.RecalculationError = err.Error()
		}
	}

	return ctx.JSON(http.StatusOK, report)
}

// assembleUploadReport folds extraction-time cell errors into the
// batch result and builds the response report. Row successes already
// counted are never demoted.
func assembleUploadReport(fileName string, year domain.Year, result *dto.BatchResult, cellErrors []string) *dto.UploadReport {
	result.Errors = append(result.Errors, cellErrors...)
	result.ErrorCount = len(result.Errors)
	result.TotalRecords = result.SuccessCount + result.ErrorCount

	return &dto.UploadReport{
		UploadID:       uuid.NewString(),
		FileName:       fileName,
		Year:           year,
		TotalProcessed: result.TotalRecords,
		Results:        result,
		Message:        fmt.Sprintf("processed %d of %d records", result.SuccessCount, result.TotalRecords),
	}
}

func (c *Controller) extractUpload(ctx echo.Context) (string, domain.Year, []*dto.SpreadsheetRow, []string, error) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return "", 0, nil, nil, constants.BadInput("missing file")
	}

	year, err := strconv.Atoi(ctx.FormValue("year"))
	if err != nil {
		return "", 0, nil, nil, constants.BadInput("invalid year %q", ctx.FormValue("year"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", 0, nil, nil, constants.Wrap(constants.KindBadInput, err, "cannot open uploaded file")
	}
	defer file.Close()

	rows, cellErrors, err := ingest.ExtractRows(ctx.Request().Context(), fileHeader.Filename, file, year)
	if err != nil {
		return "", 0, nil, nil, err
	}

	return fileHeader.Filename, year, rows, cellErrors, nil
}
