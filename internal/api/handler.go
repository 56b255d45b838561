package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/atlasproject/atlas-api/internal/model"
	"github.com/atlasproject/atlas-api/internal/service"
	"github.com/gorilla/mux"
)

// Handler handles HTTP requests
type Handler struct {
	service  service.ServiceInterface
	enricher Enricher
}

// NewHandler creates a new handler instance
func NewHandler(service service.ServiceInterface, enricher Enricher) *Handler {
	return &Handler{service: service, enricher: enricher}
}

func parseID(r *http.Request) (int, bool) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func parseOptionalIntQuery(r *http.Request, name string) (*int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}
	return &v, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// --- Continents ---

// ListContinents handles GET /continents
func (h *Handler) ListContinents(w http.ResponseWriter, r *http.Request) {
	continents, err := h.service.ListContinents(r.Context())
	if err != nil {
		log.Printf("Error listing continents: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, continents)
}

// GetContinent handles GET /continents/{id}
func (h *Handler) GetContinent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid continent id"})
		return
	}
	continent, err := h.service.GetContinent(r.Context(), id)
	if err != nil {
		log.Printf("Error getting continent: %v", err)
		writeError(w, err)
		return
	}
	if continent == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "continent not found"})
		return
	}
	writeJSON(w, http.StatusOK, continent)
}

// CreateContinent handles POST /continents
func (h *Handler) CreateContinent(w http.ResponseWriter, r *http.Request) {
	var input model.CreateContinentInput
	if !decodeBody(w, r, &input) {
		return
	}
	continent, err := h.service.CreateContinent(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, continent)
}

// UpdateContinent handles PUT /continents/{id}
func (h *Handler) UpdateContinent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid continent id"})
		return
	}
	var input model.UpdateContinentInput
	if !decodeBody(w, r, &input) {
		return
	}
	continent, err := h.service.UpdateContinent(r.Context(), id, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, continent)
}

// DeleteContinent handles DELETE /continents/{id}
func (h *Handler) DeleteContinent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid continent id"})
		return
	}
	deleted, err := h.service.DeleteContinent(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if !deleted {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "continent not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Countries ---

// ListCountries handles GET /countries
func (h *Handler) ListCountries(w http.ResponseWriter, r *http.Request) {
	continentID, ok := parseOptionalIntQuery(r, "continent_id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid continent_id parameter"})
		return
	}
	countries, err := h.service.ListCountries(r.Context(), model.CountryFilter{ContinentID: continentID})
	if err != nil {
		log.Printf("Error listing countries: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, countries)
}

// GetCountry handles GET /countries/{id}
func (h *Handler) GetCountry(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid country id"})
		return
	}
	country, err := h.service.GetCountry(r.Context(), id)
	if err != nil {
		log.Printf("Error getting country: %v", err)
		writeError(w, err)
		return
	}
	if country == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "country not found"})
		return
	}
	writeJSON(w, http.StatusOK, country)
}

// CreateCountry handles POST /countries
func (h *Handler) CreateCountry(w http.ResponseWriter, r *http.Request) {
	var input model.CreateCountryInput
	if !decodeBody(w, r, &input) {
		return
	}
	country, err := h.service.CreateCountry(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, country)
}

// UpdateCountry handles PUT /countries/{id}
func (h *Handler) UpdateCountry(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid country id"})
		return
	}
	var input model.UpdateCountryInput
	if !decodeBody(w, r, &input) {
		return
	}
	country, err := h.service.UpdateCountry(r.Context(), id, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, country)
}

// DeleteCountry handles DELETE /countries/{id}
func (h *Handler) DeleteCountry(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid country id"})
		return
	}
	deleted, err := h.service.DeleteCountry(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if !deleted {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "country not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Cities ---

// ListCities handles GET /cities
func (h *Handler) ListCities(w http.ResponseWriter, r *http.Request) {
	countryID, ok := parseOptionalIntQuery(r, "country_id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid country_id parameter"})
		return
	}
	continentID, ok := parseOptionalIntQuery(r, "continent_id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid continent_id parameter"})
		return
	}
	cities, err := h.service.ListCities(r.Context(), model.CityFilter{
		CountryID:   countryID,
		ContinentID: continentID,
	})
	if err != nil {
		log.Printf("Error listing cities: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cities)
}

// GetCity handles GET /cities/{id}
func (h *Handler) GetCity(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid city id"})
		return
	}
	city, err := h.service.GetCity(r.Context(), id)
	if err != nil {
		log.Printf("Error getting city: %v", err)
		writeError(w, err)
		return
	}
	if city == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "city not found"})
		return
	}
	writeJSON(w, http.StatusOK, city)
}

// CreateCity handles POST /cities
func (h *Handler) CreateCity(w http.ResponseWriter, r *http.Request) {
	var input model.CreateCityInput
	if !decodeBody(w, r, &input) {
		return
	}
	city, err := h.service.CreateCity(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, city)
}

// UpdateCity handles PUT /cities/{id}
func (h *Handler) UpdateCity(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid city id"})
		return
	}
	var input model.UpdateCityInput
	if !decodeBody(w, r, &input) {
		return
	}
	city, err := h.service.UpdateCity(r.Context(), id, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, city)
}

// DeleteCity handles DELETE /cities/{id}
func (h *Handler) DeleteCity(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid city id"})
		return
	}
	deleted, err := h.service.DeleteCity(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if !deleted {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "city not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Languages ---

// ListLanguages handles GET /languages
func (h *Handler) ListLanguages(w http.ResponseWriter, r *http.Request) {
	languages, err := h.service.ListLanguages(r.Context())
	if err != nil {
		log.Printf("Error listing languages: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, languages)
}

// GetLanguage handles GET /languages/{id}
func (h *Handler) GetLanguage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid language id"})
		return
	}
	language, err := h.service.GetLanguage(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if language == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "language not found"})
		return
	}
	writeJSON(w, http.StatusOK, language)
}

// CreateLanguage handles POST /languages
func (h *Handler) CreateLanguage(w http.ResponseWriter, r *http.Request) {
	var input model.CreateLanguageInput
	if !decodeBody(w, r, &input) {
		return
	}
	language, err := h.service.CreateLanguage(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, language)
}

// UpdateLanguage handles PUT /languages/{id}
func (h *Handler) UpdateLanguage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid language id"})
		return
	}
	var input model.UpdateLanguageInput
	if !decodeBody(w, r, &input) {
		return
	}
	language, err := h.service.UpdateLanguage(r.Context(), id, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, language)
}

// DeleteLanguage handles DELETE /languages/{id}
func (h *Handler) DeleteLanguage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid language id"})
		return
	}
	deleted, err := h.service.DeleteLanguage(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if !deleted {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "language not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Currencies ---

// ListCurrencies handles GET /currencies
func (h *Handler) ListCurrencies(w http.ResponseWriter, r *http.Request) {
	currencies, err := h.service.ListCurrencies(r.Context())
	if err != nil {
		log.Printf("Error listing currencies: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, currencies)
}

// GetCurrency handles GET /currencies/{id}
func (h *Handler) GetCurrency(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid currency id"})
		return
	}
	currency, err := h.service.GetCurrency(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if currency == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "currency not found"})
		return
	}
	writeJSON(w, http.StatusOK, currency)
}

// CreateCurrency handles POST /currencies
func (h *Handler) CreateCurrency(w http.ResponseWriter, r *http.Request) {
	var input model.CreateCurrencyInput
	if !decodeBody(w, r, &input) {
		return
	}
	currency, err := h.service.CreateCurrency(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, currency)
}

// UpdateCurrency handles PUT /currencies/{id}
func (h *Handler) UpdateCurrency(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid currency id"})
		return
	}
	var input model.UpdateCurrencyInput
	if !decodeBody(w, r, &input) {
		return
	}
	currency, err := h.service.UpdateCurrency(r.Context(), id, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, currency)
}

// DeleteCurrency handles DELETE /currencies/{id}
func (h *Handler) DeleteCurrency(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid currency id"})
		return
	}
	deleted, err := h.service.DeleteCurrency(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if !deleted {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "currency not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
