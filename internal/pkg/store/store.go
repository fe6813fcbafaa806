package store

import (
	"context"
	"time"

	"github.com/MrAlaeALK/afriq-ai-ranking/internal/domain"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

// Store is the full persistence surface. Services declare their own
// narrower interfaces; the concrete store satisfies all of them.
type Store interface {
	// countries
	CreateCountry(ctx context.Context, country *domain.Country) (*domain.Country, error)
	GetCountryByID(ctx context.Context, id int64) (*domain.Country, error)
	GetCountryByName(ctx context.Context, name string) (*domain.Country, error)
	ListCountries(ctx context.Context) ([]*domain.Country, error)

	// indicators
	CreateIndicator(ctx context.Context, indicator *domain.Indicator) (*domain.Indicator, error)
	GetIndicatorByID(ctx context.Context, id int64) (*domain.Indicator, error)
	GetIndicatorByName(ctx context.Context, name string) (*domain.Indicator, error)
	ListIndicators(ctx context.Context) ([]*domain.Indicator, error)

	// dimensions
	CreateDimension(ctx context.Context, dimension *domain.Dimension) (*domain.Dimension, error)
	GetDimensionByID(ctx context.Context, id int64) (*domain.Dimension, error)
	GetDimensionByName(ctx context.Context, name string) (*domain.Dimension, error)
	ListDimensions(ctx context.Context) ([]*domain.Dimension, error)

	// weight model
	CreateDimensionWeight(ctx context.Context, weight *domain.DimensionWeight) (*domain.DimensionWeight, error)
	GetDimensionWeight(ctx context.Context, dimensionID int64, year domain.Year) (*domain.DimensionWeight, error)
	ListDimensionWeightsByYear(ctx context.Context, year domain.Year) ([]*domain.DimensionWeight, error)
	CreateIndicatorWeight(ctx context.Context, weight *domain.IndicatorWeight) (*domain.IndicatorWeight, error)
	ListIndicatorWeights(ctx context.Context, dimensionWeightID int64) ([]*domain.IndicatorWeight, error)

	// scores
	GetScore(ctx context.Context, countryID, indicatorID int64, year domain.Year) (*domain.Score, error)
	UpsertScore(ctx context.Context, score *domain.Score) (*domain.Score, error)

	// derived rows
	UpsertDimensionScore(ctx context.Context, score *domain.DimensionScore) (*domain.DimensionScore, error)
	GetDimensionScore(ctx context.Context, countryID, dimensionID int64, year domain.Year) (*domain.DimensionScore, error)
	ListDimensionScoresByYear(ctx context.Context, year domain.Year) ([]*domain.DimensionScore, error)
	DeleteDimensionScoresByYear(ctx context.Context, year domain.Year) error
	UpsertRank(ctx context.Context, rank *domain.Rank) (*domain.Rank, error)
	ListRanksByYearOrderByFinalScoreDesc(ctx context.Context, year domain.Year) ([]*domain.Rank, error)
	ListRanksByYearOrderByRank(ctx context.Context, year domain.Year) ([]*domain.Rank, error)
	DeleteRanksByYear(ctx context.Context, year domain.Year) error

	// admins
	CreateAdmin(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
	GetAdminByUsername(ctx context.Context, username string) (*domain.Admin, error)
	GetAdminByEmail(ctx context.Context, email string) (*domain.Admin, error)
	ExistsAdminByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	UpdateAdminPassword(ctx context.Context, adminID int64, passwordHash string) error

	// password reset tokens
	CreatePasswordResetToken(ctx context.Context, token *domain.PasswordResetToken) error
	GetPasswordResetToken(ctx context.Context, token string) (*domain.PasswordResetToken, error)
	CountValidResetTokens(ctx context.Context, adminID int64, now time.Time) (int64, error)
	MarkResetTokenUsed(ctx context.Context, id int64) error
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}
