package api

import (
	"net/http"

	"github.com/atlasproject/atlas-api/internal/model"
	"github.com/atlasproject/atlas-api/internal/service"
)

// Register handles POST /auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var input model.RegisterInput
	if !decodeBody(w, r, &input) {
		return
	}
	if input.Username == "" || input.Email == "" || input.Password == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "username, email and password are required"})
		return
	}
	if len(input.Password) < service.MinPasswordLength {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "password must be at least 6 characters"})
		return
	}

	resp, err := h.service.Register(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// Login handles POST /auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var input model.LoginInput
	if !decodeBody(w, r, &input) {
		return
	}
	resp, err := h.service.Login(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
