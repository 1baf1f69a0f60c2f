package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vncsmyrnk/leads/internal/core/domain"
	"github.com/vncsmyrnk/leads/internal/core/ports"
)

type LeadHandler struct {
	service ports.LeadService
}

func NewLeadHandler(service ports.LeadService) *LeadHandler {
	return &LeadHandler{
		service: service,
	}
}

type leadRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

func (h *LeadHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), parsePagination(r))
	if err != nil {
		respondError(w, http.StatusInternalServerError, domain.ErrInternal.Error())
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// parsePagination never fails: a value that does not parse resets both
// parameters to their zero values and the service falls back to its
// defaults.
func parsePagination(r *http.Request) ports.ListLeadsInput {
	var input ports.ListLeadsInput

	if v := r.URL.Query().Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return ports.ListLeadsInput{}
		}
		input.Page = n
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return ports.ListLeadsInput{}
		}
		input.Limit = n
	}

	return input
}

func (h *LeadHandler) CreateLead(w http.ResponseWriter, r *http.Request) {
	var req leadRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	lead, err := h.service.Create(r.Context(), ports.CreateLeadInput{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Status: req.Status,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			respondError(w, http.StatusBadRequest, "Bad request")
			return
		}
		respondError(w, http.StatusInternalServerError, domain.ErrInternal.Error())
		return
	}

	RecordLeadCreated(string(lead.Status))
	respondJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) UpdateLead(w http.ResponseWriter, r *http.Request) {
	// An empty body is a valid no-field update and returns the lead
	// unchanged.
	var req leadRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	lead, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), ports.UpdateLeadInput{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Status: req.Status,
	})
	if err != nil {
		if errors.Is(err, domain.ErrLeadNotFound) {
			respondError(w, http.StatusNotFound, "Not found")
			return
		}
		if errors.Is(err, domain.ErrValidation) {
			respondError(w, http.StatusBadRequest, "Bad request")
			return
		}
		respondError(w, http.StatusInternalServerError, domain.ErrInternal.Error())
		return
	}

	respondJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) DeleteLead(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, domain.ErrLeadNotFound) {
			respondError(w, http.StatusNotFound, "Not found")
			return
		}
		respondError(w, http.StatusInternalServerError, domain.ErrInternal.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
