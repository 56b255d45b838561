package service

import (
	"context"

	"github.com/atlasproject/atlas-api/internal/model"
)

// ServiceInterface defines the service interface for testing
type ServiceInterface interface {
	ListContinents(ctx context.Context) ([]model.Continent, error)
	GetContinent(ctx context.Context, id int) (*model.Continent, error)
	CreateContinent(ctx context.Context, input model.CreateContinentInput) (*model.Continent, error)
	UpdateContinent(ctx context.Context, id int, input model.UpdateContinentInput) (*model.Continent, error)
	DeleteContinent(ctx context.Context, id int) (bool, error)

	ListCountries(ctx context.Context, filter model.CountryFilter) ([]model.Country, error)
	GetCountry(ctx context.Context, id int) (*model.CountryDetail, error)
	CreateCountry(ctx context.Context, input model.CreateCountryInput) (*model.Country, error)
	UpdateCountry(ctx context.Context, id int, input model.UpdateCountryInput) (*model.Country, error)
	DeleteCountry(ctx context.Context, id int) (bool, error)

	ListCities(ctx context.Context, filter model.CityFilter) ([]model.City, error)
	GetCity(ctx context.Context, id int) (*model.City, error)
	CreateCity(ctx context.Context, input model.CreateCityInput) (*model.City, error)
	UpdateCity(ctx context.Context, id int, input model.UpdateCityInput) (*model.City, error)
	DeleteCity(ctx context.Context, id int) (bool, error)

	ListLanguages(ctx context.Context) ([]model.Language, error)
	GetLanguage(ctx context.Context, id int) (*model.Language, error)
	CreateLanguage(ctx context.Context, input model.CreateLanguageInput) (*model.Language, error)
	UpdateLanguage(ctx context.Context, id int, input model.UpdateLanguageInput) (*model.Language, error)
	DeleteLanguage(ctx context.Context, id int) (bool, error)

	ListCurrencies(ctx context.Context) ([]model.Currency, error)
	GetCurrency(ctx context.Context, id int) (*model.Currency, error)
	CreateCurrency(ctx context.Context, input model.CreateCurrencyInput) (*model.Currency, error)
	UpdateCurrency(ctx context.Context, id int, input model.UpdateCurrencyInput) (*model.Currency, error)
	DeleteCurrency(ctx context.Context, id int) (bool, error)

	Register(ctx context.Context, input model.RegisterInput) (*model.AuthResponse, error)
	Login(ctx context.Context, input model.LoginInput) (*model.AuthResponse, error)
	VerifyToken(token string) (int, error)

	ListObservations(ctx context.Context, filter model.ObservationFilter) ([]model.ObservationView, error)
	GetObservation(ctx context.Context, id int) (*model.CulturalObservation, error)
	CreateObservation(ctx context.Context, input model.CreateObservationInput, userID int) (*model.CulturalObservation, error)
	UpdateObservation(ctx context.Context, id int, input model.UpdateObservationInput, userID int) (*model.CulturalObservation, error)
	DeleteObservation(ctx context.Context, id int, userID int) (bool, error)
}
