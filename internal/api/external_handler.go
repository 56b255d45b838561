package api

import (
	"context"
	"log"
	"net/http"

	"github.com/atlasproject/atlas-api/internal/apperr"
	"github.com/atlasproject/atlas-api/internal/enrich"
	"github.com/gorilla/mux"
)

// Enricher fetches supplementary data from external APIs
type Enricher interface {
	CountryByName(ctx context.Context, name string) (*enrich.CountryInfo, error)
	WeatherByCity(ctx context.Context, city string) (*enrich.Weather, error)
}

// ExternalCountry handles GET /external-apis/countries/{name}.
// Upstream failures degrade to an available:false payload instead of an error.
func (h *Handler) ExternalCountry(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if name == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "country name is required"})
		return
	}

	info, err := h.enricher.CountryByName(r.Context(), name)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "country not found"})
			return
		}
		log.Printf("Country enrichment unavailable for %q: %v", name, err)
		writeJSON(w, http.StatusOK, enrich.CountryInfo{Available: false, Name: name})
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// ExternalWeather handles GET /external-apis/weather/{city}.
// Upstream failures degrade to an available:false payload instead of an error.
func (h *Handler) ExternalWeather(w http.ResponseWriter, r *http.Request) {
	city := mux.Vars(r)["city"]
	if city == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "city name is required"})
		return
	}

	weather, err := h.enricher.WeatherByCity(r.Context(), city)
	if err != nil {
		log.Printf("Weather enrichment unavailable for %q: %v", city, err)
		writeJSON(w, http.StatusOK, enrich.Weather{Available: false, City: city})
		return
	}
	writeJSON(w, http.StatusOK, weather)
}
