package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vncsmyrnk/leads/internal/core/domain"
	"github.com/vncsmyrnk/leads/internal/core/ports"
)

type credentialRepository struct {
	db *sql.DB
}

func NewCredentialRepository(db *sql.DB) ports.CredentialRepository {
	return &credentialRepository{db: db}
}

func (r *credentialRepository) GetByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	query := `SELECT email, password FROM users WHERE email = $1`
	cred := &domain.Credential{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(&cred.Email, &cred.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get credential: %w", err)
	}
	return cred, nil
}

func (r *credentialRepository) Insert(ctx context.Context, cred *domain.Credential) error {
	query := `INSERT INTO users (email, password) VALUES ($1, $2)`
	if _, err := r.db.ExecContext(ctx, query, cred.Email, cred.Password); err != nil {
		return fmt.Errorf("failed to insert credential: %w", err)
	}
	return nil
}

func (r *credentialRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count credentials: %w", err)
	}
	return total, nil
}
