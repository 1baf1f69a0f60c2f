package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/vncsmyrnk/leads/internal/core/domain"
	"github.com/vncsmyrnk/leads/internal/core/ports"
)

const (
	DefaultPage  = 1
	DefaultLimit = 5
)

type leadService struct {
	repo ports.LeadRepository
}

func NewLeadService(repo ports.LeadRepository) ports.LeadService {
	return &leadService{
		repo: repo,
	}
}

func (s *leadService) List(ctx context.Context, input ports.ListLeadsInput) (*ports.LeadPage, error) {
	page := input.Page
	limit := input.Limit
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads: %w", err)
	}

	offset := (page - 1) * limit
	leads, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	return &ports.LeadPage{
		Leads: leads,
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: (total + limit - 1) / limit,
	}, nil
}

func (s *leadService) Create(ctx context.Context, input ports.CreateLeadInput) (*domain.Lead, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	phone := strings.TrimSpace(input.Phone)

	status := domain.LeadStatus(input.Status)
	if status == "" {
		status = domain.StatusNew
	}

	if name == "" || email == "" || phone == "" || !status.Valid() {
		return nil, domain.ErrValidation
	}

	lead := &domain.Lead{
		Name:   name,
		Email:  email,
		Phone:  phone,
		Status: status,
	}

	if err := s.repo.Insert(ctx, lead); err != nil {
		return nil, fmt.Errorf("failed to insert lead: %w", err)
	}

	return lead, nil
}

// Update applies a partial update: each field replaces the stored one
// only when non-empty after trimming. An id that does not parse is
// reported as not found, matching an id that does not exist.
func (s *leadService) Update(ctx context.Context, id string, input ports.UpdateLeadInput) (*domain.Lead, error) {
	leadID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, domain.ErrLeadNotFound
	}

	lead, err := s.repo.GetByID(ctx, leadID)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		lead.Name = name
	}
	if email := strings.TrimSpace(input.Email); email != "" {
		lead.Email = email
	}
	if phone := strings.TrimSpace(input.Phone); phone != "" {
		lead.Phone = phone
	}
	if input.Status != "" {
		lead.Status = domain.LeadStatus(input.Status)
	}

	if !lead.Status.Valid() {
		return nil, domain.ErrValidation
	}

	if err := s.repo.Update(ctx, lead); err != nil {
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}

	return lead, nil
}

func (s *leadService) Delete(ctx context.Context, id string) error {
	leadID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return domain.ErrLeadNotFound
	}

	return s.repo.Delete(ctx, leadID)
}
