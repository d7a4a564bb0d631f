package util

import (
	"ossu_arabic_backend/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID      string            `json:"user_id"`
	SessionType model.SessionType `json:"session_type"`
	jwt.RegisteredClaims
}

// GenerateSessionToken issues the bearer token handed out next to the Redis
// session record. The token lifetime mirrors the session TTL.
func GenerateSessionToken(s *model.Session, secret string) (string, error) {
	claims := &Claims{
		UserID:      s.UserID,
		SessionType: s.Type,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(s.CreatedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseSessionToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}
