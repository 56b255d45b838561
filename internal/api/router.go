package api

import (
	"github.com/atlasproject/atlas-api/internal/service"
	"github.com/atlasproject/atlas-api/internal/stats"
	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

// NewRouter creates a new HTTP router
func NewRouter(service service.ServiceInterface, enricher Enricher, statsCollector *stats.Collector) *mux.Router {
	handler := NewHandler(service, enricher)
	statsHandler := NewStatsHandler(statsCollector)
	authLimiter := newIPRateLimiter(rate.Limit(5), 10)

	router := mux.NewRouter()

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// Auth
	router.HandleFunc("/auth/register", authLimiter.wrap(handler.Register)).Methods("POST")
	router.HandleFunc("/auth/login", authLimiter.wrap(handler.Login)).Methods("POST")

	// Continents
	router.HandleFunc("/continents", handler.ListContinents).Methods("GET")
	router.HandleFunc("/continents", handler.CreateContinent).Methods("POST")
	router.HandleFunc("/continents/{id}", handler.GetContinent).Methods("GET")
	router.HandleFunc("/continents/{id}", handler.UpdateContinent).Methods("PUT")
	router.HandleFunc("/continents/{id}", handler.DeleteContinent).Methods("DELETE")

	// Countries
	router.HandleFunc("/countries", handler.ListCountries).Methods("GET")
	router.HandleFunc("/countries", handler.CreateCountry).Methods("POST")
	router.HandleFunc("/countries/{id}", handler.GetCountry).Methods("GET")
	router.HandleFunc("/countries/{id}", handler.UpdateCountry).Methods("PUT")
	router.HandleFunc("/countries/{id}", handler.DeleteCountry).Methods("DELETE")

	// Cities
	router.HandleFunc("/cities", handler.ListCities).Methods("GET")
	router.HandleFunc("/cities", handler.CreateCity).Methods("POST")
	router.HandleFunc("/cities/{id}", handler.GetCity).Methods("GET")
	router.HandleFunc("/cities/{id}", handler.UpdateCity).Methods("PUT")
	router.HandleFunc("/cities/{id}", handler.DeleteCity).Methods("DELETE")

	// Languages
	router.HandleFunc("/languages", handler.ListLanguages).Methods("GET")
	router.HandleFunc("/languages", handler.CreateLanguage).Methods("POST")
	router.HandleFunc("/languages/{id}", handler.GetLanguage).Methods("GET")
	router.HandleFunc("/languages/{id}", handler.UpdateLanguage).Methods("PUT")
	router.HandleFunc("/languages/{id}", handler.DeleteLanguage).Methods("DELETE")

	// Currencies
	router.HandleFunc("/currencies", handler.ListCurrencies).Methods("GET")
	router.HandleFunc("/currencies", handler.CreateCurrency).Methods("POST")
	router.HandleFunc("/currencies/{id}", handler.GetCurrency).Methods("GET")
	router.HandleFunc("/currencies/{id}", handler.UpdateCurrency).Methods("PUT")
	router.HandleFunc("/currencies/{id}", handler.DeleteCurrency).Methods("DELETE")

	// Cultural observations; reads are public, writes require a token
	router.HandleFunc("/cultural-observations", handler.ListObservations).Methods("GET")
	router.HandleFunc("/cultural-observations", requireAuth(service, handler.CreateObservation)).Methods("POST")
	router.HandleFunc("/cultural-observations/{id}", handler.GetObservation).Methods("GET")
	router.HandleFunc("/cultural-observations/{id}", requireAuth(service, handler.UpdateObservation)).Methods("PUT")
	router.HandleFunc("/cultural-observations/{id}", requireAuth(service, handler.DeleteObservation)).Methods("DELETE")

	// External API proxies
	router.HandleFunc("/external-apis/countries/{name}", handler.ExternalCountry).Methods("GET")
	router.HandleFunc("/external-apis/weather/{city}", handler.ExternalWeather).Methods("GET")

	// Stats
	router.HandleFunc("/api/stats", statsHandler.GetStats).Methods("GET")

	return router
}
