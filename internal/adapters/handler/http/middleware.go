package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/vncsmyrnk/leads/internal/core/ports"
)

type contextKey string

// SubjectKey holds the token subject of the authenticated request.
const SubjectKey contextKey = "subject"

const bearerPrefix = "Bearer "

// RequireAuth rejects requests without a valid bearer token. It keeps
// no state beyond the token itself.
func RequireAuth(tokens ports.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, bearerPrefix) {
				respondError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			subject, err := tokens.Verify(strings.TrimPrefix(auth, bearerPrefix))
			if err != nil {
				respondError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), SubjectKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
