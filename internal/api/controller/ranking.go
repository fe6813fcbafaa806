package controller

import (
	"net/http"
	"strconv"

	"github.com/MrAlaeALK/afriq-ai-ranking/internal/pkg/constants"
	"github.com/labstack/echo/v4"
)

func yearParam(ctx echo.Context) (int, error) {
	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil {
		return 0, constants.BadInput("invalid year %q", ctx.Param("year"))
	}
	return year, nil
}

func (c *Controller) GetRanking(ctx echo.Context) error {
	year, err := yearParam(ctx)
	if err != nil {
		return err
	}

	ranking, err := c.rankingService.RankingByYear(ctx.Request().Context(), year)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, ranking)
}

func (c *Controller) GetDimensionScores(ctx echo.Context) error {
	year, err := yearParam(ctx)
	if err != nil {
		return err
	}

	scores, err := c.rankingService.DimensionScoresByYear(ctx.Request().Context(), year)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, scores)
}

func (c *Controller) GetYearDimensions(ctx echo.Context) error {
	year, err := yearParam(ctx)
	if err != nil {
		return err
	}

	dimensions, err := c.catalogService.YearDimensions(ctx.Request().Context(), year)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, dimensions)
}

func (c *Controller) GenerateRanking(ctx echo.Context) error {
	year, err := yearParam(ctx)
	if err != nil {
		return err
	}

	ranking, err := c.rankingService.RecalculateYear(ctx.Request().Context(), year)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, ranking)
}
