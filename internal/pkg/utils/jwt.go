package utils

import (
	"time"

	"github.com/MrAlaeALK/afriq-ai-ranking/internal/pkg/constants"
	"github.com/golang-jwt/jwt"
	"github.com/spf13/viper"
)

const authTokenTTL = 24 * time.Hour

// AuthTokenWrapper is the claim set carried by admin auth tokens.
type AuthTokenWrapper struct {
	AdminID  int64  `json:"admin_id"`
	Username string `json:"username"`
	jwt.StandardClaims
}

func GenerateAuthToken(wrapper *AuthTokenWrapper) (string, error) {
	now := time.Now()
	wrapper.IssuedAt = now.Unix()
	wrapper.ExpiresAt = now.Add(authTokenTTL).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, wrapper)
	signed, err := token.SignedString([]byte(viper.GetString(constants.ViperSecretKey)))
	if err != nil {
		return "", constants.Wrap(constants.KindInternal, err, "failed to sign auth token")
	}

	return signed, nil
}

func ParseAuthToken(tokenString string) (*AuthTokenWrapper, error) {
	wrapper := new(AuthTokenWrapper)
	token, err := jwt.ParseWithClaims(tokenString, wrapper, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, constants.Unauthorized("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(viper.GetString(constants.ViperSecretKey)), nil
	})
	if err != nil {
		return nil, constants.Wrap(constants.KindUnauthorized, err, "invalid auth token")
	}
	if !token.Valid {
		return nil, constants.ErrUnauthorized
	}

	return wrapper, nil
}
