package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/leads/internal/core/domain"
	"github.com/vncsmyrnk/leads/internal/core/services"
)

func TestTokenServiceIssueAndVerify(t *testing.T) {
	svc := services.NewTokenService("test-secret", time.Hour)

	token, err := svc.Issue("user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", subject)
}

func TestTokenServiceVerifyRejectsWrongSecret(t *testing.T) {
	issuer := services.NewTokenService("secret-a", time.Hour)
	verifier := services.NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue("user@example.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenServiceVerifyRejectsExpired(t *testing.T) {
	svc := services.NewTokenService("test-secret", -time.Minute)

	token, err := svc.Issue("user@example.com")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenServiceVerifyRejectsMalformed(t *testing.T) {
	svc := services.NewTokenService("test-secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, domain.ErrInvalidToken, "token %q", token)
	}
}
