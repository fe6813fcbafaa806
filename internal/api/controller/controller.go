package controller

import (
	"context"

	"github.com/MrAlaeALK/afriq-ai-ranking/internal/domain"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/domain/dto"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/service/auth"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/service/catalog"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/service/ingest"
)

// RankingService is the slice of the ranking service the controllers
// consume.
type RankingService interface {
	RankingByYear(ctx context.Context, year domain.Year) ([]*dto.RankedCountryDTO, error)
	DimensionScoresByYear(ctx context.Context, year domain.Year) ([]*dto.DimensionScoreDTO, error)
	RecalculateYear(ctx context.Context, year domain.Year) ([]*dto.RankedCountryDTO, error)
}

type Controller struct {
	catalogService *catalog.Service
	rankingService RankingService
	ingestService  *ingest.Service
	authService    *auth.Service
}

func NewController(
	catalogService *catalog.Service,
	rankingService RankingService,
	ingestService *ingest.Service,
	authService *auth.Service,
) *Controller {
	return &Controller{
		catalogService: catalogService,
		rankingService: rankingService,
		ingestService:  ingestService,
		authService:    authService,
	}
}
