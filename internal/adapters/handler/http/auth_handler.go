package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vncsmyrnk/leads/internal/core/domain"
	"github.com/vncsmyrnk/leads/internal/core/ports"
)

type AuthHandler struct {
	service ports.AuthService
}

func NewAuthHandler(service ports.AuthService) *AuthHandler {
	return &AuthHandler{
		service: service,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	// A missing or malformed body is treated as empty credentials and
	// fails like any other mismatch.
	var req loginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		respondError(w, http.StatusInternalServerError, domain.ErrInternal.Error())
		return
	}

	respondJSON(w, http.StatusOK, loginResponse{Token: token})
}
