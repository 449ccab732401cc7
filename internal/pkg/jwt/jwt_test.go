package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *JWTService {
	t.Helper()
	svc, err := NewJWTService("test-secret", "15m")
	require.NoError(t, err)
	return svc
}

func TestNewJWTService_InvalidDuration(t *testing.T) {
	_, err := NewJWTService("secret", "fifteen minutes")
	assert.Error(t, err)
}

func TestGenerateAccessToken_Claims(t *testing.T) {
	svc := newTestService(t)
	employeeID := "emp-1"

	tokenString, expiresAt, err := svc.GenerateAccessToken("user-1", &employeeID, RoleAdmin)
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Unix())

	token, err := jwtauth.VerifyToken(svc.JWTAuth(), tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["sub"])
	assert.Equal(t, "emp-1", claims["employee_id"])
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, TypeAccess, claims["type"])
}

func TestSSEToken_RoundTrip(t *testing.T) {
	svc := newTestService(t)

	tokenString, expiresIn, err := svc.GenerateSSEToken("user-1")
	require.NoError(t, err)
	assert.Equal(t, 300, expiresIn)

	subject, err := svc.ValidateSSEToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-1", subject)
}

func TestValidateSSEToken_RejectsAccessToken(t *testing.T) {
	svc := newTestService(t)

	access, _, err := svc.GenerateAccessToken("user-1", nil, RoleEmployee)
	require.NoError(t, err)

	_, err = svc.ValidateSSEToken(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateSSEToken_RejectsForeignSignature(t *testing.T) {
	other, err := NewJWTService("other-secret", "15m")
	require.NoError(t, err)
	tokenString, _, err := other.GenerateSSEToken("user-1")
	require.NoError(t, err)

	_, err = newTestService(t).ValidateSSEToken(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateSSEToken_Expired(t *testing.T) {
	svc := newTestService(t)
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	tokenString, _, err := svc.GenerateSSEToken("user-1")
	require.NoError(t, err)

	_, err = newTestService(t).ValidateSSEToken(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
