package service

import (
	"time"

	"echo-journal/config"
	"echo-journal/util/common"

	"github.com/golang-jwt/jwt/v5"
)

// tokenTTL bounds every issued credential.
const tokenTTL = 7 * 24 * time.Hour

type TokenService struct{}

// Sign produces a signed, time-bounded token over the caller-supplied claims.
// The payload is not validated against any user schema.
func (s *TokenService) Sign(claims map[string]any) (string, error) {
	secret := config.GetTokenSecret()
	if secret == "" {
		return "", common.NewError("access token secret is not configured")
	}

	mapClaims := jwt.MapClaims{}
	for k, v := range claims {
		mapClaims[k] = v
	}
	mapClaims["exp"] = time.Now().Add(tokenTTL).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	return token.SignedString([]byte(secret))
}
