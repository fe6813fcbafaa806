package controller

import (
	"net/http"

	"github.com/MrAlaeALK/afriq-ai-ranking/internal/domain"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/domain/dto"
	"github.com/labstack/echo/v4"
)

func (c *Controller) AddCountry(ctx echo.Context) error {
	var country domain.Country
	if err := ctx.Bind(&country); err != nil {
		return err
	}

	created, err := c.catalogService.AddCountry(ctx.Request().Context(), &country)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, created)
}

func (c *Controller) GetCountries(ctx echo.Context) error {
	countries, err := c.catalogService.ListCountries(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, countries)
}

func (c *Controller) AddIndicator(ctx echo.Context) error {
	var indicator domain.Indicator
	if err := ctx.Bind(&indicator); err != nil {
		return err
	}

	created, err := c.catalogService.AddIndicator(ctx.Request().Context(), &indicator)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, created)
}

func (c *Controller) GetIndicators(ctx echo.Context) error {
	indicators, err := c.catalogService.ListIndicators(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, indicators)
}

func (c *Controller) AddDimension(ctx echo.Context) error {
	var dimension domain.Dimension
	if err := ctx.Bind(&dimension); err != nil {
		return err
	}

	created, err := c.catalogService.AddDimension(ctx.Request().Context(), &dimension)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, created)
}

func (c *Controller) GetDimensions(ctx echo.Context) error {
	dimensions, err := c.catalogService.ListDimensions(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, dimensions)
}

func (c *Controller) AddDimensionWeight(ctx echo.Context) error {
	var d dto.AddDimensionWeightDTO
	if err := ctx.Bind(&d); err != nil {
		return err
	}

	created, err := c.catalogService.AddDimensionWeight(ctx.Request().Context(), &d)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, created)
}

func (c *Controller) AddIndicatorWeight(ctx echo.Context) error {
	var d dto.AddIndicatorWeightDTO
	if err := ctx.Bind(&d); err != nil {
		return err
	}

	created, err := c.catalogService.AddIndicatorWeight(ctx.Request().Context(), &d)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, created)
}

func (c *Controller) AddScore(ctx echo.Context) error {
	var d dto.AddOrUpdateScoreDTO
	if err := ctx.Bind(&d); err != nil {
		return err
	}

	created, err := c.catalogService.AddScore(ctx.Request().Context(), &d)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, created)
}

func (c *Controller) UpdateScore(ctx echo.Context) error {
	var d dto.AddOrUpdateScoreDTO
	if err := ctx.Bind(&d); err != nil {
		return err
	}

	updated, err := c.catalogService.UpdateScore(ctx.Request().Context(), &d)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, updated)
}
