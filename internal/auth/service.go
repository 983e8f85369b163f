package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/imagedrop/service/internal/config"
)

// ErrInvalidCredentials is returned when the email/password pair does not
// match the configured admin pair. Callers surface it with a generic message
// that does not reveal which field was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service contains the business logic for single-admin authentication.
// There is no user store; credentials are compared against configuration.
type Service struct {
	cfg *config.Config
}

// NewService creates a new auth Service.
func NewService(cfg *config.Config) *Service {
	return &Service{cfg: cfg}
}

// Login validates the credential pair and issues a signed session token.
func (s *Service) Login(email, password string) (string, error) {
	if !secureEqual(email, s.cfg.AdminEmail) || !secureEqual(password, s.cfg.AdminPassword) {
		return "", ErrInvalidCredentials
	}

	token, err := IssueToken(s.cfg.AdminEmail, s.cfg.JWTSecret)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// secureEqual compares two strings in constant time. Hashing first keeps the
// comparison length-independent.
func secureEqual(a, b string) bool {
	ha := sha256.Sum256([]byte(a))
	hb := sha256.Sum256([]byte(b))
	return hmac.Equal(ha[:], hb[:])
}
