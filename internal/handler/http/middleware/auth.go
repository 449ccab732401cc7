package middleware

import (
	"net/http"

	"github.com/gilrsantana/pontolegal/internal/handler/http/response"
	"github.com/gilrsantana/pontolegal/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests without a verified access token. It expects
// jwtauth.Verifier to have run first.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}

		if token == nil {
			response.HandleError(w, jwt.ErrInvalidToken)
			return
		}

		tokenType, ok := claims["type"].(string)
		if tokenType != jwt.TypeAccess || !ok {
			response.HandleError(w, jwt.ErrInvalidToken)
			return
		}

		next.ServeHTTP(w, r)
	})
}
