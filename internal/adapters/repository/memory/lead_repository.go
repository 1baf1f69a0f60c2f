// Package memory provides in-memory repository implementations. They
// back unit tests and make the service layer runnable without a
// database.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/vncsmyrnk/leads/internal/core/domain"
	"github.com/vncsmyrnk/leads/internal/core/ports"
)

type leadRepository struct {
	mu     sync.RWMutex
	leads  map[int64]domain.Lead
	nextID int64
}

func NewLeadRepository() ports.LeadRepository {
	return &leadRepository{
		leads: make(map[int64]domain.Lead),
	}
}

func (r *leadRepository) Insert(ctx context.Context, lead *domain.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	lead.ID = r.nextID
	r.leads[lead.ID] = *lead
	return nil
}

func (r *leadRepository) GetByID(ctx context.Context, id int64) (*domain.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lead, ok := r.leads[id]
	if !ok {
		return nil, domain.ErrLeadNotFound
	}
	return &lead, nil
}

func (r *leadRepository) Update(ctx context.Context, lead *domain.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.leads[lead.ID]; !ok {
		return domain.ErrLeadNotFound
	}
	r.leads[lead.ID] = *lead
	return nil
}

func (r *leadRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.leads[id]; !ok {
		return domain.ErrLeadNotFound
	}
	delete(r.leads, id)
	return nil
}

func (r *leadRepository) List(ctx context.Context, limit, offset int) ([]domain.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]domain.Lead, 0, len(r.leads))
	for _, lead := range r.leads {
		all = append(all, lead)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })

	if offset >= len(all) {
		return []domain.Lead{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *leadRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.leads), nil
}
