package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gilrsantana/pontolegal/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protected(t *testing.T, svc *jwt.JWTService) http.Handler {
	t.Helper()
	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(svc.JWTAuth()))
	r.Use(AuthRequired)
	r.Get("/me", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	r.With(AdminOnly).Get("/admin", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	return r
}

func do(h http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired(t *testing.T) {
	svc, err := jwt.NewJWTService("secret", "1h")
	require.NoError(t, err)
	h := protected(t, svc)

	employeeToken, _, err := svc.GenerateAccessToken("u-1", nil, jwt.RoleEmployee)
	require.NoError(t, err)
	sseToken, _, err := svc.GenerateSSEToken("u-1")
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, do(h, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(h, "/me", "garbage").Code)
	assert.Equal(t, http.StatusUnauthorized, do(h, "/me", sseToken).Code)
	assert.Equal(t, http.StatusNoContent, do(h, "/me", employeeToken).Code)
}

func TestAdminOnly(t *testing.T) {
	svc, err := jwt.NewJWTService("secret", "1h")
	require.NoError(t, err)
	h := protected(t, svc)

	employeeToken, _, err := svc.GenerateAccessToken("u-1", nil, jwt.RoleEmployee)
	require.NoError(t, err)
	adminToken, _, err := svc.GenerateAccessToken("u-2", nil, jwt.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, do(h, "/admin", employeeToken).Code)
	assert.Equal(t, http.StatusNoContent, do(h, "/admin", adminToken).Code)
}
