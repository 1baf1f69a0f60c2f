package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/leads/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/leads/internal/core/domain"
	"github.com/vncsmyrnk/leads/internal/core/services"
)

func TestSeedPopulatesEmptyStores(t *testing.T) {
	ctx := context.Background()
	creds := memory.NewCredentialRepository()
	leads := memory.NewLeadRepository()

	require.NoError(t, services.Seed(ctx, creds, leads))

	cred, err := creds.GetByEmail(ctx, "test@example.com")
	require.NoError(t, err)
	require.NotNil(t, cred)
	assert.Equal(t, "password123", cred.Password)

	all, err := leads.List(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Bob", all[0].Name)
	assert.Equal(t, domain.StatusInProgress, all[0].Status)
	assert.Equal(t, "Alice", all[1].Name)
	assert.Equal(t, domain.StatusNew, all[1].Status)
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	creds := memory.NewCredentialRepository()
	leads := memory.NewLeadRepository()

	require.NoError(t, services.Seed(ctx, creds, leads))
	require.NoError(t, services.Seed(ctx, creds, leads))

	leadCount, err := leads.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, leadCount)

	credCount, err := creds.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, credCount)
}
