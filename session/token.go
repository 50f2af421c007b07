package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// The session cookie carries the session id inside a signed token so a
// client cannot forge someone else's id.

type tokenClaims struct {
	SID string `json:"sid"`
	jwt.RegisteredClaims
}

func MintToken(sid string, secret []byte) (string, error) {
	claims := &tokenClaims{
		SID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ParseToken(tokenString string, secret []byte) (string, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return secret, nil
	})
	if err != nil || !token.Valid || claims.SID == "" {
		return "", errors.New("invalid session token")
	}
	return claims.SID, nil
}
