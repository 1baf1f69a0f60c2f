package ports

import (
	"context"

	"github.com/vncsmyrnk/leads/internal/core/domain"
)

// LeadRepository is implemented once per storage backend. List must
// return leads ordered by id descending; pagination depends on it.
type LeadRepository interface {
	Insert(ctx context.Context, lead *domain.Lead) error
	GetByID(ctx context.Context, id int64) (*domain.Lead, error)
	Update(ctx context.Context, lead *domain.Lead) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]domain.Lead, error)
	Count(ctx context.Context) (int, error)
}

type CreateLeadInput struct {
	Name   string
	Email  string
	Phone  string
	Status string
}

// UpdateLeadInput carries a partial update. A field left empty keeps
// the stored value.
type UpdateLeadInput struct {
	Name   string
	Email  string
	Phone  string
	Status string
}

type ListLeadsInput struct {
	Page  int
	Limit int
}

type LeadPage struct {
	Leads []domain.Lead `json:"leads"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
	Total int           `json:"total"`
	Pages int           `json:"pages"`
}

type LeadService interface {
	List(ctx context.Context, input ListLeadsInput) (*LeadPage, error)
	Create(ctx context.Context, input CreateLeadInput) (*domain.Lead, error)
	Update(ctx context.Context, id string, input UpdateLeadInput) (*domain.Lead, error)
	Delete(ctx context.Context, id string) error
}
