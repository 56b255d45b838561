package service

import (
	"context"
	"fmt"

	"github.com/atlasproject/atlas-api/internal/apperr"
	"github.com/atlasproject/atlas-api/internal/model"
)

// --- Continents ---

func (s *Service) ListContinents(ctx context.Context) ([]model.Continent, error) {
	return s.continentRepo.List(ctx)
}

func (s *Service) GetContinent(ctx context.Context, id int) (*model.Continent, error) {
	return s.continentRepo.GetByID(ctx, id)
}

func (s *Service) CreateContinent(ctx context.Context, input model.CreateContinentInput) (*model.Continent, error) {
	if input.Name == "" {
		return nil, apperr.Validation("continent name is required")
	}
	existing, err := s.continentRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check continent name: %w", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("continent %q already exists", input.Name)
	}

	continent := &model.Continent{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.continentRepo.Create(ctx, continent); err != nil {
		return nil, fmt.Errorf("failed to create continent: %w", err)
	}
	return continent, nil
}

func (s *Service) UpdateContinent(ctx context.Context, id int, input model.UpdateContinentInput) (*model.Continent, error) {
	existing, err := s.continentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load continent: %w", err)
	}
	if existing == nil {
		return nil, apperr.NotFound("continent", id)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperr.Validation("continent name must not be empty")
		}
		existing.Name = *input.Name
	}
	if input.Description != nil {
		existing.Description = input.Description
	}

	if err := s.continentRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update continent: %w", err)
	}
	return existing, nil
}

// DeleteContinent removes a continent. Countries referencing it are removed
// by the schema's cascade rule.
func (s *Service) DeleteContinent(ctx context.Context, id int) (bool, error) {
	return s.continentRepo.Delete(ctx, id)
}

// --- Countries ---

func (s *Service) ListCountries(ctx context.Context, filter model.CountryFilter) ([]model.Country, error) {
	return s.countryRepo.List(ctx, filter)
}

func (s *Service) GetCountry(ctx context.Context, id int) (*model.CountryDetail, error) {
	country, err := s.countryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get country: %w", err)
	}
	if country == nil {
		return nil, nil
	}

	languages, err := s.countryRepo.ListLanguages(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load country languages: %w", err)
	}
	currencies, err := s.countryRepo.ListCurrencies(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load country currencies: %w", err)
	}

	return &model.CountryDetail{
		Country:    *country,
		Languages:  languages,
		Currencies: currencies,
	}, nil
}

func (s *Service) CreateCountry(ctx context.Context, input model.CreateCountryInput) (*model.Country, error) {
	if input.Name == "" {
		return nil, apperr.Validation("country name is required")
	}
	if input.Population < 0 {
		return nil, apperr.Validation("population must be non-negative")
	}
	if err := s.checkContinentExists(ctx, input.ContinentID); err != nil {
		return nil, err
	}
	if input.CapitalID != nil {
		if err := s.checkCityExists(ctx, *input.CapitalID); err != nil {
			return nil, err
		}
	}

	country := &model.Country{
		Name:        input.Name,
		NativeName:  input.NativeName,
		Population:  input.Population,
		ContinentID: input.ContinentID,
		FlagURL:     input.FlagURL,
		CapitalID:   input.CapitalID,
	}
	if err := s.countryRepo.Create(ctx, country); err != nil {
		return nil, fmt.Errorf("failed to create country: %w", err)
	}
	return country, nil
}

func (s *Service) UpdateCountry(ctx context.Context, id int, input model.UpdateCountryInput) (*model.Country, error) {
	existing, err := s.countryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load country: %w", err)
	}
	if existing == nil {
		return nil, apperr.NotFound("country", id)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperr.Validation("country name must not be empty")
		}
		existing.Name = *input.Name
	}
	if input.NativeName != nil {
		existing.NativeName = input.NativeName
	}
	if input.Population != nil {
		if *input.Population < 0 {
			return nil, apperr.Validation("population must be non-negative")
		}
		existing.Population = *input.Population
	}
	if input.ContinentID != nil {
		if err := s.checkContinentExists(ctx, *input.ContinentID); err != nil {
			return nil, err
		}
		existing.ContinentID = *input.ContinentID
	}
	if input.FlagURL != nil {
		existing.FlagURL = input.FlagURL
	}
	if input.CapitalID != nil {
		if err := s.checkCityExists(ctx, *input.CapitalID); err != nil {
			return nil, err
		}
		existing.CapitalID = input.CapitalID
	}

	if err := s.countryRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update country: %w", err)
	}
	return existing, nil
}

func (s *Service) DeleteCountry(ctx context.Context, id int) (bool, error) {
	return s.countryRepo.Delete(ctx, id)
}

// --- Cities ---

func (s *Service) ListCities(ctx context.Context, filter model.CityFilter) ([]model.City, error) {
	return s.cityRepo.List(ctx, filter)
}

func (s *Service) GetCity(ctx context.Context, id int) (*model.City, error) {
	return s.cityRepo.GetByID(ctx, id)
}

func (s *Service) CreateCity(ctx context.Context, input model.CreateCityInput) (*model.City, error) {
	if input.Name == "" {
		return nil, apperr.Validation("city name is required")
	}
	if input.Population < 0 {
		return nil, apperr.Validation("population must be non-negative")
	}
	if err := validateCoordinates(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}
	if err := s.checkCountryExists(ctx, input.CountryID); err != nil {
		return nil, err
	}

	city := &model.City{
		Name:       input.Name,
		Population: input.Population,
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
		CountryID:  input.CountryID,
	}
	if err := s.cityRepo.Create(ctx, city); err != nil {
		return nil, fmt.Errorf("failed to create city: %w", err)
	}
	return city, nil
}

func (s *Service) UpdateCity(ctx context.Context, id int, input model.UpdateCityInput) (*model.City, error) {
	existing, err := s.cityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load city: %w", err)
	}
	if existing == nil {
		return nil, apperr.NotFound("city", id)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperr.Validation("city name must not be empty")
		}
		existing.Name = *input.Name
	}
	if input.Population != nil {
		if *input.Population < 0 {
			return nil, apperr.Validation("population must be non-negative")
		}
		existing.Population = *input.Population
	}
	if input.Latitude != nil {
		existing.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		existing.Longitude = *input.Longitude
	}
	if err := validateCoordinates(existing.Latitude, existing.Longitude); err != nil {
		return nil, err
	}
	if input.CountryID != nil {
		if err := s.checkCountryExists(ctx, *input.CountryID); err != nil {
			return nil, err
		}
		existing.CountryID = *input.CountryID
	}

	if err := s.cityRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update city: %w", err)
	}
	return existing, nil
}

// DeleteCity removes a city. A country holding it as capital gets its
// pointer nulled by the schema, never deleted.
func (s *Service) DeleteCity(ctx context.Context, id int) (bool, error) {
	return s.cityRepo.Delete(ctx, id)
}

// --- Languages ---

func (s *Service) ListLanguages(ctx context.Context) ([]model.Language, error) {
	return s.languageRepo.List(ctx)
}

func (s *Service) GetLanguage(ctx context.Context, id int) (*model.Language, error) {
	return s.languageRepo.GetByID(ctx, id)
}

func (s *Service) CreateLanguage(ctx context.Context, input model.CreateLanguageInput) (*model.Language, error) {
	if input.Name == "" {
		return nil, apperr.Validation("language name is required")
	}
	language := &model.Language{Name: input.Name, Code: input.Code}
	if err := s.languageRepo.Create(ctx, language); err != nil {
		return nil, fmt.Errorf("failed to create language: %w", err)
	}
	return language, nil
}

func (s *Service) UpdateLanguage(ctx context.Context, id int, input model.UpdateLanguageInput) (*model.Language, error) {
	existing, err := s.languageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load language: %w", err)
	}
	if existing == nil {
		return nil, apperr.NotFound("language", id)
	}
	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperr.Validation("language name must not be empty")
		}
		existing.Name = *input.Name
	}
	if input.Code != nil {
		existing.Code = *input.Code
	}
	if err := s.languageRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update language: %w", err)
	}
	return existing, nil
}

func (s *Service) DeleteLanguage(ctx context.Context, id int) (bool, error) {
	return s.languageRepo.Delete(ctx, id)
}

// --- Currencies ---

func (s *Service) ListCurrencies(ctx context.Context) ([]model.Currency, error) {
	return s.currencyRepo.List(ctx)
}

func (s *Service) GetCurrency(ctx context.Context, id int) (*model.Currency, error) {
	return s.currencyRepo.GetByID(ctx, id)
}

func (s *Service) CreateCurrency(ctx context.Context, input model.CreateCurrencyInput) (*model.Currency, error) {
	if input.Name == "" {
		return nil, apperr.Validation("currency name is required")
	}
	currency := &model.Currency{Name: input.Name, Code: input.Code, Symbol: input.Symbol}
	if err := s.currencyRepo.Create(ctx, currency); err != nil {
		return nil, fmt.Errorf("failed to create currency: %w", err)
	}
	return currency, nil
}

func (s *Service) UpdateCurrency(ctx context.Context, id int, input model.UpdateCurrencyInput) (*model.Currency, error) {
	existing, err := s.currencyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load currency: %w", err)
	}
	if existing == nil {
		return nil, apperr.NotFound("currency", id)
	}
	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperr.Validation("currency name must not be empty")
		}
		existing.Name = *input.Name
	}
	if input.Code != nil {
		existing.Code = *input.Code
	}
	if input.Symbol != nil {
		existing.Symbol = input.Symbol
	}
	if err := s.currencyRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update currency: %w", err)
	}
	return existing, nil
}

func (s *Service) DeleteCurrency(ctx context.Context, id int) (bool, error) {
	return s.currencyRepo.Delete(ctx, id)
}

// --- Reference checks ---

func validateCoordinates(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return apperr.Validation("latitude must be between -90 and 90")
	}
	if lon < -180 || lon > 180 {
		return apperr.Validation("longitude must be between -180 and 180")
	}
	return nil
}

func (s *Service) checkContinentExists(ctx context.Context, id int) error {
	continent, err := s.continentRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check continent: %w", err)
	}
	if continent == nil {
		return apperr.Reference("continent %d does not exist", id)
	}
	return nil
}

func (s *Service) checkCountryExists(ctx context.Context, id int) error {
	country, err := s.countryRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check country: %w", err)
	}
	if country == nil {
		return apperr.Reference("country %d does not exist", id)
	}
	return nil
}

func (s *Service) checkCityExists(ctx context.Context, id int) error {
	city, err := s.cityRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check city: %w", err)
	}
	if city == nil {
		return apperr.Reference("city %d does not exist", id)
	}
	return nil
}
