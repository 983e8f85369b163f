package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionTTL is the fixed lifetime of a session token. There is no refresh
// or server-side revocation; tokens simply expire.
const SessionTTL = 6 * time.Hour

// CookieName is the name of the browser cookie carrying the session token.
const CookieName = "auth_token"

// ErrInvalidToken is returned when a token fails signature or identity checks.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the session token claims. The subject is the admin email.
type Claims struct {
	jwt.RegisteredClaims
}

// IssueToken signs a session token for the given identity, valid for SessionTTL.
func IssueToken(email, secret string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
		},
	})
	return token.SignedString([]byte(secret))
}

// ParseToken verifies the token signature and expiry and returns its claims.
func ParseToken(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
