package memory

import (
	"context"
	"sync"

	"github.com/vncsmyrnk/leads/internal/core/domain"
	"github.com/vncsmyrnk/leads/internal/core/ports"
)

type credentialRepository struct {
	mu    sync.RWMutex
	creds map[string]domain.Credential
}

func NewCredentialRepository() ports.CredentialRepository {
	return &credentialRepository{
		creds: make(map[string]domain.Credential),
	}
}

func (r *credentialRepository) GetByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cred, ok := r.creds[email]
	if !ok {
		return nil, nil
	}
	return &cred, nil
}

func (r *credentialRepository) Insert(ctx context.Context, cred *domain.Credential) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.creds[cred.Email] = *cred
	return nil
}

func (r *credentialRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.creds), nil
}
