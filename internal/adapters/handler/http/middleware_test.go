package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handler "github.com/vncsmyrnk/leads/internal/adapters/handler/http"
	"github.com/vncsmyrnk/leads/internal/core/services"
)

func TestRequireAuth(t *testing.T) {
	tokens := services.NewTokenService("test-secret", time.Hour)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, _ := r.Context().Value(handler.SubjectKey).(string)
		w.Write([]byte(subject))
	})
	protected := handler.RequireAuth(tokens)(next)

	validToken, err := tokens.Issue("user@example.com")
	require.NoError(t, err)

	expiredToken, err := services.NewTokenService("test-secret", -time.Minute).Issue("user@example.com")
	require.NoError(t, err)

	foreignToken, err := services.NewTokenService("other-secret", time.Hour).Issue("user@example.com")
	require.NoError(t, err)

	cases := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Token " + validToken, http.StatusUnauthorized},
		{"lowercase prefix", "bearer " + validToken, http.StatusUnauthorized},
		{"no space after prefix", "Bearer" + validToken, http.StatusUnauthorized},
		{"garbage token", "Bearer garbage", http.StatusUnauthorized},
		{"expired token", "Bearer " + expiredToken, http.StatusUnauthorized},
		{"wrong signature", "Bearer " + foreignToken, http.StatusUnauthorized},
		{"valid token", "Bearer " + validToken, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rec := httptest.NewRecorder()

			protected.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
			} else {
				assert.Equal(t, "user@example.com", rec.Body.String())
			}
		})
	}
}
