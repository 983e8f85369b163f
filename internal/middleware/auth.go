package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/imagedrop/service/internal/response"
)

// contextKey is an unexported type for context keys in this package.
type contextKey string

// AdminEmailKey is the context key for the authenticated admin's email.
const AdminEmailKey contextKey = "adminEmail"

// RequireSession returns middleware that validates the session cookie and,
// on success, injects the admin identity into the request context.
//
// A token is accepted only when its signature verifies against jwtSecret,
// it has not expired, and its subject equals adminEmail.
func RequireSession(jwtSecret, adminEmail string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie("auth_token")
			if err != nil {
				response.Unauthorized(w, "Authentication required")
				return
			}

			claims := &jwt.RegisteredClaims{}
			token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if errors.Is(err, jwt.ErrTokenExpired) {
				response.Unauthorized(w, "Token expired")
				return
			}
			if err != nil || !token.Valid {
				response.Unauthorized(w, "Invalid token")
				return
			}

			if claims.Subject != adminEmail {
				response.Unauthorized(w, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), AdminEmailKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
