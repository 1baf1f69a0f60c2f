package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/leads/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/leads/internal/core/domain"
	"github.com/vncsmyrnk/leads/internal/core/ports"
	"github.com/vncsmyrnk/leads/internal/core/services"
)

func newAuthService(t *testing.T) (ports.AuthService, ports.TokenService) {
	t.Helper()

	creds := memory.NewCredentialRepository()
	err := creds.Insert(context.Background(), &domain.Credential{
		Email:    "test@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	tokens := services.NewTokenService("test-secret", time.Hour)
	return services.NewAuthService(creds, tokens), tokens
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc, tokens := newAuthService(t)

	token, err := svc.Login(context.Background(), "test@example.com", "password123")
	require.NoError(t, err)

	subject, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", subject)
}

func TestLoginNormalizesEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), "  TEST@Example.COM  ", "password123")
	assert.NoError(t, err)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthService(t)

	// Wrong password and unknown email must be indistinguishable.
	_, wrongPassErr := svc.Login(context.Background(), "test@example.com", "nope")
	_, unknownErr := svc.Login(context.Background(), "nobody@example.com", "password123")

	assert.ErrorIs(t, wrongPassErr, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownErr, domain.ErrInvalidCredentials)
	assert.Equal(t, wrongPassErr, unknownErr)
}

func TestLoginRejectsEmptyCredentials(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
