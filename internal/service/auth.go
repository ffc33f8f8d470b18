package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// sessionTTL bounds how long an admin session cookie stays valid.
const sessionTTL = 24 * time.Hour

// Login checks the admin password against the configured bcrypt hash and
// returns a signed session token for the cookie.
func (s *Service) Login(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(s.config.AdminPasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
	})
	tokenString, err := token.SignedString([]byte(s.config.SessionSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Info("Admin logged in")
	return tokenString, nil
}

// SessionTTL exposes the session lifetime for cookie expiry.
func (s *Service) SessionTTL() time.Duration {
	return sessionTTL
}
