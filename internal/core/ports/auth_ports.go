package ports

import (
	"context"

	"github.com/vncsmyrnk/leads/internal/core/domain"
)

type CredentialRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Credential, error)
	Insert(ctx context.Context, cred *domain.Credential) error
	Count(ctx context.Context) (int, error)
}

// TokenService mints and verifies stateless bearer tokens. Verify
// returns the subject the token was issued for.
type TokenService interface {
	Issue(subject string) (string, error)
	Verify(token string) (string, error)
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
}
