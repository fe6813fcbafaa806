package api

import (
	"net/http"
	"testing"

	"github.com/MrAlaeALK/afriq-ai-ranking/internal/pkg/constants"
)

func TestHTTPStatusOf(t *testing.T) {
	cases := map[constants.Kind]int{
		constants.KindNotFound:     http.StatusNotFound,
		constants.KindConflict:     http.StatusConflict,
		constants.KindDivideByZero: http.StatusUnprocessableEntity,
		constants.KindMissingScore: http.StatusUnprocessableEntity,
		constants.KindBadInput:     http.StatusBadRequest,
		constants.KindUnauthorized: http.StatusUnauthorized,
		constants.KindRateLimited:  http.StatusTooManyRequests,
		constants.KindInvariant:    http.StatusInternalServerError,
		constants.KindInternal:     http.StatusInternalServerError,
	}
	for kind, want := range cases {
		if got := httpStatusOf(kind); got != want {
			t.Errorf("httpStatusOf(%v) = %d, want %d", kind, got, want)
		}
	}
}
