package service

import (
	"github.com/atlasproject/atlas-api/internal/config"
	"github.com/atlasproject/atlas-api/internal/repository"
)

// Service provides business logic for the API
type Service struct {
	continentRepo   repository.ContinentRepository
	countryRepo     repository.CountryRepository
	cityRepo        repository.CityRepository
	languageRepo    repository.LanguageRepository
	currencyRepo    repository.CurrencyRepository
	userRepo        repository.UserRepository
	observationRepo repository.ObservationRepository

	authCfg config.AuthConfig
}

// NewService creates a new service instance
func NewService(repos *repository.Container, authCfg config.AuthConfig) *Service {
	return &Service{
		continentRepo:   repos.Continent,
		countryRepo:     repos.Country,
		cityRepo:        repos.City,
		languageRepo:    repos.Language,
		currencyRepo:    repos.Currency,
		userRepo:        repos.User,
		observationRepo: repos.Observation,
		authCfg:         authCfg,
	}
}
