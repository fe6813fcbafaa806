package dto

import "github.com/MrAlaeALK/afriq-ai-ranking/internal/domain"

type AddDimensionWeightDTO struct {
	DimensionID int64       `json:"dimensionId" validate:"required"`
	Year        domain.Year `json:"year" validate:"required,gte=1960"`
	Weight      int         `json:"weight" validate:"gte=0"`
}

type AddIndicatorWeightDTO struct {
	IndicatorID int64       `json:"indicatorId" validate:"required"`
	DimensionID int64       `json:"dimensionId" validate:"required"`
	Year        domain.Year `json:"year" validate:"required,gte=1960"`
	Weight      int         `json:"weight" validate:"gte=0"`
}

// YearDimensionDTO describes a dimension as weighted for one year.
type YearDimensionDTO struct {
	DimensionID int64  `json:"dimensionId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Weight      int    `json:"weight"`
}
