package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/hris-backoffice-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-backoffice-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests without a verified access token. It runs after jwtauth.Verifier.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, raw, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}
		if token == nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		claims, err := jwt.ParseClaims(raw)
		if err != nil || claims.Type != jwt.TokenTypeAccess {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		next.ServeHTTP(w, r)
	})
}
