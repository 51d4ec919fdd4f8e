package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/GouravKumar19/slooze/entity"
)

// Claims is the session payload carried by every authenticated request.
type Claims struct {
	UserID      uint   `json:"userId"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	CountryID   uint   `json:"countryId"`
	CountryCode string `json:"countryCode"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed session token for a user. The user's
// Country must be preloaded so the country code can be embedded.
func GenerateToken(u *entity.User, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:      u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        u.Role,
		CountryID:   u.CountryID,
		CountryCode: u.Country.Code,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyToken validates a session token and returns its claims.
// It fails closed: malformed, expired or tampered tokens all come back as
// an error, never a panic.
func VerifyToken(tokenStr, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
