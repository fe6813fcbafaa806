package controller

import (
	"net/http"
	"time"

	"github.com/MrAlaeALK/afriq-ai-ranking/internal/domain/dto"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/pkg/constants"
	"github.com/labstack/echo/v4"
)

func (c *Controller) Register(ctx echo.Context) error {
	var d dto.RegisterDTO
	if err := ctx.Bind(&d); err != nil {
		return err
	}

	token, err := c.authService.Register(ctx.Request().Context(), &d)
	if err != nil {
		return err
	}

	setAuthCookie(ctx, token.Token)

	return ctx.JSON(http.StatusCreated, token)
}

func (c *Controller) Login(ctx echo.Context) error {
	var d dto.LoginDTO
	if err := ctx.Bind(&d); err != nil {
		return err
	}

	token, err := c.authService.Login(ctx.Request().Context(), &d)
	if err != nil {
		return err
	}

	setAuthCookie(ctx, token.Token)

	return ctx.JSON(http.StatusOK, token)
}

func (c *Controller) ForgotPassword(ctx echo.Context) error {
	var d dto.ForgotPasswordDTO
	if err := ctx.Bind(&d); err != nil {
		return err
	}

	_, err := c.authService.GeneratePasswordResetToken(ctx.Request().Context(), d.Email)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, map[string]string{
		"message": "if the email exists, a reset link has been sent",
	})
}

func (c *Controller) ValidateResetToken(ctx echo.Context) error {
	token := ctx.QueryParam("token")
	if token == "" {
		return constants.BadInput("missing token")
	}

	if _, err := c.authService.ValidateResetToken(ctx.Request().Context(), token); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, map[string]bool{"valid": true})
}

func (c *Controller) ResetPassword(ctx echo.Context) error {
	var d dto.ResetPasswordDTO
	if err := ctx.Bind(&d); err != nil {
		return err
	}

	if err := c.authService.ResetPassword(ctx.Request().Context(), &d); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, map[string]string{"message": "password updated"})
}

func setAuthCookie(ctx echo.Context, token string) {
	ctx.SetCookie(&http.Cookie{
		Name:     constants.CookieKeyAuthToken,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
