package api

import (
	"net/http"

	"github.com/MrAlaeALK/afriq-ai-ranking/internal/domain"
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/pkg/constants"
	"github.com/labstack/echo/v4"
)

// httpStatusOf maps an error kind to an HTTP status. This is the only
// place where the error taxonomy touches the transport layer.
func httpStatusOf(kind constants.Kind) int {
	switch kind {
	case constants.KindNotFound:
		return http.StatusNotFound
	case constants.KindConflict:
		return http.StatusConflict
	case constants.KindDivideByZero, constants.KindMissingScore:
		return http.StatusUnprocessableEntity
	case constants.KindBadInput:
		return http.StatusBadRequest
	case constants.KindUnauthorized:
		return http.StatusUnauthorized
	case constants.KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	msg := err.Error()
	code := http.StatusInternalServerError

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
	} else {
		code = httpStatusOf(constants.KindOf(err))
	}

	_ = c.JSON(code, domain.ErrorResponse{
		Message: msg,
		Code:    code,
	})
}
