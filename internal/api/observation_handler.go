package api

import (
	"log"
	"net/http"

	"github.com/atlasproject/atlas-api/internal/model"
)

// ListObservations handles GET /cultural-observations
func (h *Handler) ListObservations(w http.ResponseWriter, r *http.Request) {
	countryID, ok := parseOptionalIntQuery(r, "country_id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid country_id parameter"})
		return
	}
	cityID, ok := parseOptionalIntQuery(r, "city_id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid city_id parameter"})
		return
	}
	userID, ok := parseOptionalIntQuery(r, "user_id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid user_id parameter"})
		return
	}

	observations, err := h.service.ListObservations(r.Context(), model.ObservationFilter{
		CountryID: countryID,
		CityID:    cityID,
		UserID:    userID,
	})
	if err != nil {
		log.Printf("Error listing observations: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, observations)
}

// GetObservation handles GET /cultural-observations/{id}
func (h *Handler) GetObservation(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid observation id"})
		return
	}
	obs, err := h.service.GetObservation(r.Context(), id)
	if err != nil {
		log.Printf("Error getting observation: %v", err)
		writeError(w, err)
		return
	}
	if obs == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "observation not found"})
		return
	}
	writeJSON(w, http.StatusOK, obs)
}

// CreateObservation handles POST /cultural-observations
func (h *Handler) CreateObservation(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}
	var input model.CreateObservationInput
	if !decodeBody(w, r, &input) {
		return
	}
	obs, err := h.service.CreateObservation(r.Context(), input, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, obs)
}

// UpdateObservation handles PUT /cultural-observations/{id}
func (h *Handler) UpdateObservation(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}
	id, ok := parseID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid observation id"})
		return
	}
	var input model.UpdateObservationInput
	if !decodeBody(w, r, &input) {
		return
	}
	obs, err := h.service.UpdateObservation(r.Context(), id, input, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, obs)
}

// DeleteObservation handles DELETE /cultural-observations/{id}
func (h *Handler) DeleteObservation(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}
	id, ok := parseID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid observation id"})
		return
	}
	deleted, err := h.service.DeleteObservation(r.Context(), id, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	if !deleted {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "observation not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
