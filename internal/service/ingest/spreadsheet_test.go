package ingest

import (
	"context"
	"strings"
	"testing"

	"github.com/MrAlaeALK/afriq-ai-ranking/internal/domain/dto"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/pkg/constants"
)

const csvSample = `Country,Internet Access,Literacy
Ghana,70.5,81
Kenya,65,77.2
`

func TestExtractRowsCSV(t *testing.T) {
	rows, cellErrors, err := ExtractRows(context.Background(), "scores.csv", strings.NewReader(csvSample), testYear)
	if err != nil {
		t.Fatal(err)
	}
	if len(cellErrors) != 0 {
		t.Fatalf("cell errors: %v", cellErrors)
	}
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(rows))
	}

	first := rows[0]
	if first.CountryName != "Ghana" || first.IndicatorName != "Internet Access" {
		t.Errorf("first row = %s - %s", first.CountryName, first.IndicatorName)
	}
	if first.Value == nil || *first.Value != 70.5 {
		t.Errorf("first value = %v, want 70.5", first.Value)
	}
	if first.RowNumber != 2 {
		t.Errorf("first row number = %d, want 2", first.RowNumber)
	}
}

func TestExtractRowsCollectsCellErrors(t *testing.T) {
	sample := `Country,Internet Access
Ghana,abc
Kenya,-5
Togo,
Nigeria,55
`
	rows, cellErrors, err := ExtractRows(context.Background(), "scores.csv", strings.NewReader(sample), testYear)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Errorf("got %d valid rows, want 1", len(rows))
	}
	if len(cellErrors) != 3 {
		t.Errorf("got %d cell errors, want 3: %v", len(cellErrors), cellErrors)
	}
}

func TestExtractRowsSkipsBlankLines(t *testing.T) {
	sample := "Country,Internet Access\nGhana,70\n,\nKenya,65\n"
	rows, cellErrors, err := ExtractRows(context.Background(), "scores.csv", strings.NewReader(sample), testYear)
	if err != nil {
		t.Fatal(err)
	}
	if len(cellErrors) != 0 {
		t.Errorf("cell errors: %v", cellErrors)
	}
	if len(rows) != 2 {
		t.Errorf("got %d rows, want 2", len(rows))
	}
}

func TestExtractRowsRejectsUnknownExtension(t *testing.T) {
	_, _, err := ExtractRows(context.Background(), "scores.pdf", strings.NewReader("x"), testYear)
	if err == nil {
		t.Fatal("expected error for unsupported extension")
	}
	if constants.KindOf(err) != constants.KindBadInput {
		t.Errorf("kind = %v, want bad_input", constants.KindOf(err))
	}
}

func TestExtractRowsRejectsEmptyFile(t *testing.T) {
	_, _, err := ExtractRows(context.Background(), "scores.csv", strings.NewReader("Country,Internet Access\n"), testYear)
	if err == nil {
		t.Fatal("expected error for file without data rows")
	}
	if constants.KindOf(err) != constants.KindBadInput {
		t.Errorf("kind = %v, want bad_input", constants.KindOf(err))
	}
}

func TestBuildPreview(t *testing.T) {
	rows, _, err := ExtractRows(context.Background(), "scores.csv", strings.NewReader(csvSample), testYear)
	if err != nil {
		t.Fatal(err)
	}

	preview := BuildPreview("scores.csv", testYear, rows)
	if preview.CountryCount != 2 {
		t.Errorf("countryCount = %d, want 2", preview.CountryCount)
	}
	if preview.IndicatorCount != 2 {
		t.Errorf("indicatorCount = %d, want 2", preview.IndicatorCount)
	}
	if preview.TotalRecords != 4 {
		t.Errorf("totalRecords = %d, want 4", preview.TotalRecords)
	}
	if len(preview.SampleRows) != 4 {
		t.Errorf("sampleRows = %d, want 4", len(preview.SampleRows))
	}
}

func TestNormalizeMinMax(t *testing.T) {
	rows := []*dto.SpreadsheetRow{
		row("Ghana", "Internet Access", 20, 2),
		row("Kenya", "Internet Access", 60, 3),
		row("Togo", "Internet Access", 100, 4),
		row("Ghana", "Literacy", 50, 2),
		row("Kenya", "Literacy", 50, 3),
	}

	NormalizeMinMax(rows)

	wantValues := []float64{0, 50, 100, 100, 100}
	for i, want := range wantValues {
		if *rows[i].Value != want {
			t.Errorf("row %d: value = %v, want %v", i, *rows[i].Value, want)
		}
	}
	if rows[0].RawValue == nil || *rows[0].RawValue != 20 {
		t.Errorf("rawValue = %v, want 20 preserved", rows[0].RawValue)
	}
}
