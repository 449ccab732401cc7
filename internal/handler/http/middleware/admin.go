package middleware

import (
	"net/http"

	"github.com/gilrsantana/pontolegal/internal/pkg/jwt"
)

// AdminOnly guards schedule management and punch status overrides.
func AdminOnly(next http.Handler) http.Handler {
	return RequireRole(jwt.RoleAdmin)(next)
}
