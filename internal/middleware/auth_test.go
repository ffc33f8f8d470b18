package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathtwo/pathtwo/internal/config"
)

const testSecret = "test-secret"

func signToken(t *testing.T, subject string, ttl time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func newAuthSubject() http.Handler {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := &config.Config{SessionSecret: testSecret}
	mw := AuthMiddleware(cfg, logger)
	return mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
}

func TestAuthMiddlewareAllowsValidCookie(t *testing.T) {
	handler := newAuthSubject()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/messages", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: signToken(t, "admin", time.Hour)})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthMiddlewareRejectsMissingCookie(t *testing.T) {
	handler := newAuthSubject()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/messages", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareRejectsBadTokens(t *testing.T) {
	handler := newAuthSubject()
	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"expired", signToken(t, "admin", -time.Hour)},
		{"wrong subject", signToken(t, "visitor", time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/messages", nil)
			req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tt.token})
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}
