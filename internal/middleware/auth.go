package middleware

import (
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/pathtwo/pathtwo/internal/config"
)

// SessionCookie is the name of the admin session cookie.
const SessionCookie = "pathtwo_session"

// AuthMiddleware gates the admin routes behind the session cookie. The
// cookie carries a signed token from Service.Login; anything missing,
// expired or tampered with gets a 401.
func AuthMiddleware(cfg *config.Config, logger *logrus.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil {
				logger.WithField("path", r.URL.Path).Warn("Admin request without session cookie")
				http.Error(w, "Authentication required", http.StatusUnauthorized)
				return
			}

			if err := ValidateSessionToken(cookie.Value, cfg.SessionSecret); err != nil {
				logger.WithError(err).Warn("Invalid session token")
				http.Error(w, "Invalid session", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ValidateSessionToken checks the signature, expiry and subject of a
// session token.
func ValidateSessionToken(tokenString, secret string) error {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return fmt.Errorf("failed to parse token: %w", err)
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return fmt.Errorf("invalid token")
	}
	if claims.Subject != "admin" {
		return fmt.Errorf("unexpected subject %q", claims.Subject)
	}
	return nil
}
