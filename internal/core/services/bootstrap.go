package services

import (
	"context"
	"fmt"

	"github.com/vncsmyrnk/leads/internal/core/domain"
	"github.com/vncsmyrnk/leads/internal/core/ports"
)

// Seed inserts the bootstrap records when the stores are empty: one
// login credential and two sample leads. Running it against a
// populated store is a no-op.
func Seed(ctx context.Context, creds ports.CredentialRepository, leads ports.LeadRepository) error {
	credCount, err := creds.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count credentials: %w", err)
	}
	if credCount == 0 {
		cred := &domain.Credential{Email: "test@example.com", Password: "password123"}
		if err := creds.Insert(ctx, cred); err != nil {
			return fmt.Errorf("failed to seed credential: %w", err)
		}
	}

	leadCount, err := leads.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count leads: %w", err)
	}
	if leadCount == 0 {
		seed := []domain.Lead{
			{Name: "Alice", Email: "alice@example.com", Phone: "1234567890", Status: domain.StatusNew},
			{Name: "Bob", Email: "bob@example.com", Phone: "9876543210", Status: domain.StatusInProgress},
		}
		for i := range seed {
			if err := leads.Insert(ctx, &seed[i]); err != nil {
				return fmt.Errorf("failed to seed lead %q: %w", seed[i].Name, err)
			}
		}
	}

	return nil
}
