package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MrAlaeALK/afriq-ai-ranking/internal/domain"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/domain/dto"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/pkg/constants"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/service/ingest"
	"github.com/labstack/echo/v4"
)

type scoreKey struct {
	countryID   int64
	indicatorID int64
	year        domain.Year
}

type fakeIngestStore struct {
	countries  map[string]*domain.Country
	indicators map[string]*domain.Indicator
	scores     map[scoreKey]*domain.Score
	nextID     int64
}

func newFakeIngestStore() *fakeIngestStore {
	return &fakeIngestStore{
		countries:  map[string]*domain.Country{},
		indicators: map[string]*domain.Indicator{},
		scores:     map[scoreKey]*domain.Score{},
	}
}

func (f *fakeIngestStore) addCountry(name string) {
	f.nextID++
	f.countries[name] = &domain.Country{ID: f.nextID, Name: name}
}

func (f *fakeIngestStore) addIndicator(name string) {
	f.nextID++
	f.indicators[name] = &domain.Indicator{ID: f.nextID, Name: name}
}

func (f *fakeIngestStore) GetCountryByName(_ context.Context, name string) (*domain.Country, error) {
	if country, ok := f.countries[name]; ok {
		return country, nil
	}
	return nil, constants.ErrDBNotFound
}

func (f *fakeIngestStore) GetIndicatorByName(_ context.Context, name string) (*domain.Indicator, error) {
	if indicator, ok := f.indicators[name]; ok {
		return indicator, nil
	}
	return nil, constants.ErrDBNotFound
}

func (f *fakeIngestStore) GetScore(_ context.Context, countryID, indicatorID int64, year domain.Year) (*domain.Score, error) {
	if score, ok := f.scores[scoreKey{countryID, indicatorID, year}]; ok {
		return score, nil
	}
	return nil, constants.ErrDBNotFound
}

func (f *fakeIngestStore) UpsertScore(_ context.Context, score *domain.Score) (*domain.Score, error) {
	f.nextID++
	saved := *score
	saved.ID = f.nextID
	f.scores[scoreKey{score.CountryID, score.IndicatorID, score.Year}] = &saved
	return &saved, nil
}

type fakeRankingService struct {
	recalcErr   error
	recalcCalls int
}

func (f *fakeRankingService) RankingByYear(context.Context, domain.Year) ([]*dto.RankedCountryDTO, error) {
	return nil, nil
}

func (f *fakeRankingService) DimensionScoresByYear(context.Context, domain.Year) ([]*dto.DimensionScoreDTO, error) {
	return nil, nil
}

func (f *fakeRankingService) RecalculateYear(context.Context, domain.Year) ([]*dto.RankedCountryDTO, error) {
	f.recalcCalls++
	if f.recalcErr != nil {
		return nil, f.recalcErr
	}
	return nil, nil
}

func processUpload(t *testing.T, csvBody string, ranking *fakeRankingService) *dto.UploadReport {
	t.Helper()

	store := newFakeIngestStore()
	store.addCountry("Ghana")
	store.addCountry("Kenya")
	store.addIndicator("Internet Access")

	cntrl := NewController(nil, ranking, ingest.NewService(store), nil)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "scores.csv")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte(csvBody)); err != nil {
		t.Fatal(err)
	}
	_ = writer.WriteField("year", "2024")
	_ = writer.WriteField("overwrite", "true")
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/upload/process", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()

	if err := cntrl.ProcessUpload(echo.New().NewContext(req, rec)); err != nil {
		t.Fatalf("ProcessUpload returned %v, want nil", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var report dto.UploadReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatal(err)
	}
	return &report
}

func TestProcessUploadRecalculationFailureIsWarning(t *testing.T) {
	ranking := &fakeRankingService{recalcErr: constants.DivideByZero("dimension weights sum to zero in year 2024")}

	report := processUpload(t, "Country,Internet Access\nGhana,70\nKenya,bad\n", ranking)

	if ranking.recalcCalls != 1 {
		t.Errorf("recalculation runs = %d, want 1", ranking.recalcCalls)
	}
	if report.RecalculationError == "" {
		t.Error("recalculation failure must surface in the report")
	}
	if report.Results.SuccessCount != 1 {
		t.Errorf("successCount = %d, want 1 (successes stay counted)", report.Results.SuccessCount)
	}
	if report.Results.ErrorCount != 1 {
		t.Errorf("errorCount = %d, want 1 (the bad cell)", report.Results.ErrorCount)
	}
	if report.TotalProcessed != 2 {
		t.Errorf("totalProcessed = %d, want 2", report.TotalProcessed)
	}
}

func TestProcessUploadCleanRunHasNoWarning(t *testing.T) {
	ranking := &fakeRankingService{}

	report := processUpload(t, "Country,Internet Access\nGhana,70\nKenya,65\n", ranking)

	if ranking.recalcCalls != 1 {
		t.Errorf("recalculation runs = %d, want 1", ranking.recalcCalls)
	}
	if report.RecalculationError != "" {
		t.Errorf("recalculationError = %q, want empty", report.RecalculationError)
	}
	if report.Results.SuccessCount != 2 || report.Results.ErrorCount != 0 {
		t.Errorf("counts = %d/%d, want 2/0", report.Results.SuccessCount, report.Results.ErrorCount)
	}
}

func TestProcessUploadSkipsRecalculationWithoutSuccesses(t *testing.T) {
	ranking := &fakeRankingService{}

	report := processUpload(t, "Country,Internet Access\nAtlantis,70\n", ranking)

	if ranking.recalcCalls != 0 {
		t.Errorf("recalculation runs = %d, want 0", ranking.recalcCalls)
	}
	if report.Results.SuccessCount != 0 || report.Results.ErrorCount != 1 {
		t.Errorf("counts = %d/%d, want 0/1", report.Results.SuccessCount, report.Results.ErrorCount)
	}
}

func TestAssembleUploadReportMergesCellErrors(t *testing.T) {
	result := &dto.BatchResult{
		TotalRecords:          2,
		SuccessCount:          2,
		SuccessfullyProcessed: []string{"Ghana - Internet Access", "Kenya - Internet Access"},
		Errors:                []string{},
	}

	report := assembleUploadReport("scores.csv", 2024, result, []string{"row 4: empty value for Togo - Internet Access"})

	if report.Results.ErrorCount != 1 {
		t.Errorf("errorCount = %d, want 1", report.Results.ErrorCount)
	}
	if report.Results.TotalRecords != 3 {
		t.Errorf("totalRecords = %d, want 3", report.Results.TotalRecords)
	}
	if report.TotalProcessed != 3 {
		t.Errorf("totalProcessed = %d, want 3", report.TotalProcessed)
	}
	if report.Results.SuccessCount != 2 {
		t.Errorf("successCount = %d, want 2", report.Results.SuccessCount)
	}
	if report.UploadID == "" || report.FileName != "scores.csv" || report.Year != 2024 {
		t.Errorf("unexpected report header: %+v", report)
	}
}
