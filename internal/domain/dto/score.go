package dto

import "github.com/MrAlaeALK/afriq-ai-ranking/internal/domain"

type AddOrUpdateScoreDTO struct {
	CountryID   int64       `json:"countryId" validate:"required"`
	IndicatorID int64       `json:"indicatorId" validate:"required"`
	Year        domain.Year `json:"year" validate:"required,gte=1960"`
	Score       float64     `json:"score" validate:"gte=0"`
}

// DimensionScoreDTO is the public projection of a derived dimension score.
type DimensionScoreDTO struct {
	CountryName   string  `json:"countryName"`
	DimensionName string  `json:"dimensionName"`
	Score         float64 `json:"score"`
}

// RankedCountryDTO is one row of the public ranking table for a year.
type RankedCountryDTO struct {
	Rank        int     `json:"rank"`
	CountryName string  `json:"countryName"`
	CountryCode string  `json:"countryCode"`
	Region      string  `json:"region"`
	FinalScore  float64 `json:"finalScore"`
}
