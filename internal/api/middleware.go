package api

import (
	"strings"

	"github.com/MrAlaeALK/afriq-ai-ranking/internal/pkg/constants"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/pkg/utils"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware accepts the auth token either from the auth cookie or
// from a bearer Authorization header.
func (svc *APIService) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		tokenString := ""

		if cookie, err := ctx.Cookie(constants.CookieKeyAuthToken); err == nil {
			tokenString = cookie.Value
		} else if header := ctx.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(header, "Bearer ") {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}

		if tokenString == "" {
			return constants.ErrUnauthorized
		}

		token, err := utils.ParseAuthToken(tokenString)
		if err != nil {
			return err
		}

		ctx.Set(constants.CtxKeyAdminID, token.AdminID)

		return next(ctx)
	}
}
