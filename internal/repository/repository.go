package repository

import (
	"context"

	"github.com/atlasproject/atlas-api/internal/model"
	"github.com/jmoiron/sqlx"
)

// ContinentRepository defines operations for continents
type ContinentRepository interface {
	List(ctx context.Context) ([]model.Continent, error)
	GetByID(ctx context.Context, id int) (*model.Continent, error)
	GetByName(ctx context.Context, name string) (*model.Continent, error)
	Create(ctx context.Context, continent *model.Continent) error
	Update(ctx context.Context, continent *model.Continent) error
	Delete(ctx context.Context, id int) (bool, error)
}

// CountryRepository defines operations for countries
type CountryRepository interface {
	List(ctx context.Context, filter model.CountryFilter) ([]model.Country, error)
	GetByID(ctx context.Context, id int) (*model.Country, error)
	GetByName(ctx context.Context, name string) (*model.Country, error)
	Create(ctx context.Context, country *model.Country) error
	Update(ctx context.Context, country *model.Country) error
	Delete(ctx context.Context, id int) (bool, error)

	ListLanguages(ctx context.Context, countryID int) ([]model.Language, error)
	ListCurrencies(ctx context.Context, countryID int) ([]model.Currency, error)
	AttachLanguage(ctx context.Context, countryID, languageID int) error
	AttachCurrency(ctx context.Context, countryID, currencyID int) error
}

// CityRepository defines operations for cities
type CityRepository interface {
	List(ctx context.Context, filter model.CityFilter) ([]model.City, error)
	GetByID(ctx context.Context, id int) (*model.City, error)
	Create(ctx context.Context, city *model.City) error
	Update(ctx context.Context, city *model.City) error
	Delete(ctx context.Context, id int) (bool, error)
}

// LanguageRepository defines operations for the language reference set
type LanguageRepository interface {
	List(ctx context.Context) ([]model.Language, error)
	GetByID(ctx context.Context, id int) (*model.Language, error)
	GetByName(ctx context.Context, name string) (*model.Language, error)
	Create(ctx context.Context, language *model.Language) error
	Update(ctx context.Context, language *model.Language) error
	Delete(ctx context.Context, id int) (bool, error)
}

// CurrencyRepository defines operations for the currency reference set
type CurrencyRepository interface {
	List(ctx context.Context) ([]model.Currency, error)
	GetByID(ctx context.Context, id int) (*model.Currency, error)
	GetByName(ctx context.Context, name string) (*model.Currency, error)
	Create(ctx context.Context, currency *model.Currency) error
	Update(ctx context.Context, currency *model.Currency) error
	Delete(ctx context.Context, id int) (bool, error)
}

// UserRepository defines operations for the credential store
type UserRepository interface {
	GetByID(ctx context.Context, id int) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
}

// ObservationRepository defines operations for cultural observations
type ObservationRepository interface {
	List(ctx context.Context, filter model.ObservationFilter) ([]model.ObservationView, error)
	GetByID(ctx context.Context, id int) (*model.CulturalObservation, error)
	Create(ctx context.Context, obs *model.CulturalObservation) error
	Update(ctx context.Context, obs *model.CulturalObservation) error
	Delete(ctx context.Context, id int) (bool, error)
}

// Container holds all repositories
type Container struct {
	Continent   ContinentRepository
	Country     CountryRepository
	City        CityRepository
	Language    LanguageRepository
	Currency    CurrencyRepository
	User        UserRepository
	Observation ObservationRepository
}

// NewRepositories creates repository implementations over db. The CRUD SQL
// here is portable across PostgreSQL and SQLite, so a single implementation
// serves both drivers; queries are written with ? bindvars and rebound per
// driver.
func NewRepositories(db *sqlx.DB) *Container {
	return &Container{
		Continent:   &continentRepository{db: db},
		Country:     &countryRepository{db: db},
		City:        &cityRepository{db: db},
		Language:    &languageRepository{db: db},
		Currency:    &currencyRepository{db: db},
		User:        &userRepository{db: db},
		Observation: &observationRepository{db: db},
	}
}

// IsDatabaseEmpty reports whether the catalog has no continents yet
// (used by main to decide whether to auto-seed).
func IsDatabaseEmpty(ctx context.Context, db *sqlx.DB) (bool, error) {
	var count int
	query := "SELECT COUNT(*) FROM continents"
	err := db.GetContext(ctx, &count, query)
	if err != nil {
		// Table may not exist yet before migrations ran
		return true, nil
	}
	return count == 0, nil
}
