package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrAdminRequired = errors.New("admin privilege required")
)

// Role is the access level carried in the "role" claim.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

// Token types carried in the "type" claim.
const (
	TypeAccess = "access"
	TypeSSE    = "sse"
)

type Service interface {
	GenerateAccessToken(subject string, employeeID *string, role Role) (token string, expiresAt int64, err error)
	GenerateSSEToken(subject string) (token string, expiresIn int, err error)
	ValidateSSEToken(tokenString string) (subject string, err error)
	JWTAuth() *jwtauth.JWTAuth
}

// JWTService signs and verifies HS256 tokens shared with the identity
// provider that fronts the API.
type JWTService struct {
	accessTokenTTL time.Duration
	sseTokenTTL    time.Duration
	tokenAuth      *jwtauth.JWTAuth
	now            func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) (*JWTService, error) {
	ttl, err := time.ParseDuration(accessTokenExpirationTime)
	if err != nil {
		return nil, fmt.Errorf("invalid access token expiration %q: %w", accessTokenExpirationTime, err)
	}

	return &JWTService{
		accessTokenTTL: ttl,
		sseTokenTTL:    5 * time.Minute,
		tokenAuth:      jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		now:            time.Now,
	}, nil
}

func (j *JWTService) GenerateAccessToken(subject string, employeeID *string, role Role) (token string, expiresAt int64, err error) {
	expiresAt = j.now().Add(j.accessTokenTTL).Unix()

	claims := map[string]interface{}{
		"sub":  subject,
		"role": string(role),
		"type": TypeAccess,
		"exp":  expiresAt,
	}
	if employeeID != nil {
		claims["employee_id"] = *employeeID
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// GenerateSSEToken generates a short-lived token for SSE connections
func (j *JWTService) GenerateSSEToken(subject string) (token string, expiresIn int, err error) {
	expiresIn = int(j.sseTokenTTL.Seconds())

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"sub":  subject,
		"type": TypeSSE,
		"exp":  j.now().Add(j.sseTokenTTL).Unix(),
	})
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresIn, nil
}

// ValidateSSEToken validates an SSE token and returns its subject
func (j *JWTService) ValidateSSEToken(tokenString string) (subject string, err error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != TypeSSE {
		return "", ErrInvalidToken
	}

	if token.Subject() == "" {
		return "", ErrInvalidToken
	}

	return token.Subject(), nil
}
