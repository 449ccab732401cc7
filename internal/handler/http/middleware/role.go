package middleware

import (
	"net/http"

	"github.com/gilrsantana/pontolegal/internal/handler/http/response"
	"github.com/gilrsantana/pontolegal/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// RequireRole allows the request through when the token's role claim is one
// of roles.
func RequireRole(roles ...jwt.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, jwt.ErrInvalidToken)
				return
			}

			role, ok := claims["role"].(string)
			if !ok {
				response.HandleError(w, jwt.ErrAdminRequired)
				return
			}

			for _, allowed := range roles {
				if role == string(allowed) {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.HandleError(w, jwt.ErrAdminRequired)
		})
	}
}
