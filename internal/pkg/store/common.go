package store

import (
	"errors"
	"strings"

	"github.com/MrAlaeALK/afriq-ai-ranking/internal/pkg/constants"
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const (
	tableCountries           = "countries"
	tableIndicators          = "indicators"
	tableDimensions          = "dimensions"
	tableDimensionWeights    = "dimension_weights"
	tableIndicatorWeights    = "indicator_weights"
	tableScores              = "scores"
	tableDimensionScores     = "dimension_scores"
	tableRanks               = "ranks"
	tableAdmins              = "admins"
	tablePasswordResetTokens = "password_reset_tokens"
)

func wrapErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return constants.ErrDBNotFound
	}
	return err
}

// builder returns a squirrel statement builder with Postgres placeholders.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
