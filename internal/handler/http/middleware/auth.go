package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/kintai-hq/kintai-backend-go/internal/handler/http/response"
	"github.com/kintai-hq/kintai-backend-go/internal/pkg/jwt"
)

// AuthRequired rejects requests whose context carries no verified access
// token. jwtauth.Verifier must run earlier in the chain; this middleware
// only checks what the verifier stored.
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

		// Refresh tokens verify fine but must not reach the API.
		if tokenType, ok := claims["type"].(string); !ok || tokenType != "access" {
			response.HandleError(w, jwt.ErrInvalidToken)
			return
		}

		next.ServeHTTP(w, r)
	})
}
