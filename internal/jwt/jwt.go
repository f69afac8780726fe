package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

type UserClaims struct {
	Id   int64  `json:"id"`
	Role string `json:"role"`
	*jwt.RegisteredClaims
}

func CreateJWTToken(id int64, role string, secret string, expiresIn time.Duration) (string, error) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &UserClaims{
		Id:   id,
		Role: role,
		RegisteredClaims: &jwt.RegisteredClaims{
			Issuer:    "readinglist",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}).SignedString([]byte(secret))

	if err != nil {
		return "", fmt.Errorf("error signing jwt token: %v", err)
	}

	return token, nil
}

func DecodeJWTToken(token string, secret string) (*UserClaims, error) {
	claims := &UserClaims{RegisteredClaims: &jwt.RegisteredClaims{}}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer("readinglist"))

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !parsed.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
