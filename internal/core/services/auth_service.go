package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/vncsmyrnk/leads/internal/core/domain"
	"github.com/vncsmyrnk/leads/internal/core/ports"
)

type authService struct {
	creds  ports.CredentialRepository
	tokens ports.TokenService
}

func NewAuthService(creds ports.CredentialRepository, tokens ports.TokenService) ports.AuthService {
	return &authService{
		creds:  creds,
		tokens: tokens,
	}
}

// Login looks up the credential by trimmed, lowercased email and
// compares the password. Unknown email and wrong password return the
// same error so the two cases are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	cred, err := s.creds.GetByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to get credential: %w", err)
	}
	if cred == nil || cred.Password != password {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(cred.Email)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	return token, nil
}
