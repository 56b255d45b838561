package service

import (
	"context"

	"github.com/atlasproject/atlas-api/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockContinentRepo struct {
	mock.Mock
}

func (m *MockContinentRepo) List(ctx context.Context) ([]model.Continent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Continent), args.Error(1)
}

func (m *MockContinentRepo) GetByID(ctx context.Context, id int) (*model.Continent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Continent), args.Error(1)
}

func (m *MockContinentRepo) GetByName(ctx context.Context, name string) (*model.Continent, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Continent), args.Error(1)
}

func (m *MockContinentRepo) Create(ctx context.Context, continent *model.Continent) error {
	args := m.Called(ctx, continent)
	return args.Error(0)
}

func (m *MockContinentRepo) Update(ctx context.Context, continent *model.Continent) error {
	args := m.Called(ctx, continent)
	return args.Error(0)
}

func (m *MockContinentRepo) Delete(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockCountryRepo struct {
	mock.Mock
}

func (m *MockCountryRepo) List(ctx context.Context, filter model.CountryFilter) ([]model.Country, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Country), args.Error(1)
}

func (m *MockCountryRepo) GetByID(ctx context.Context, id int) (*model.Country, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Country), args.Error(1)
}

func (m *MockCountryRepo) GetByName(ctx context.Context, name string) (*model.Country, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Country), args.Error(1)
}

func (m *MockCountryRepo) Create(ctx context.Context, country *model.Country) error {
	args := m.Called(ctx, country)
	return args.Error(0)
}

func (m *MockCountryRepo) Update(ctx context.Context, country *model.Country) error {
	args := m.Called(ctx, country)
	return args.Error(0)
}

func (m *MockCountryRepo) Delete(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCountryRepo) ListLanguages(ctx context.Context, countryID int) ([]model.Language, error) {
	args := m.Called(ctx, countryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Language), args.Error(1)
}

func (m *MockCountryRepo) ListCurrencies(ctx context.Context, countryID int) ([]model.Currency, error) {
	args := m.Called(ctx, countryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Currency), args.Error(1)
}

func (m *MockCountryRepo) AttachLanguage(ctx context.Context, countryID, languageID int) error {
	args := m.Called(ctx, countryID, languageID)
	return args.Error(0)
}

func (m *MockCountryRepo) AttachCurrency(ctx context.Context, countryID, currencyID int) error {
	args := m.Called(ctx, countryID, currencyID)
	return args.Error(0)
}

type MockCityRepo struct {
	mock.Mock
}

func (m *MockCityRepo) List(ctx context.Context, filter model.CityFilter) ([]model.City, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.City), args.Error(1)
}

func (m *MockCityRepo) GetByID(ctx context.Context, id int) (*model.City, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.City), args.Error(1)
}

func (m *MockCityRepo) Create(ctx context.Context, city *model.City) error {
	args := m.Called(ctx, city)
	return args.Error(0)
}

func (m *MockCityRepo) Update(ctx context.Context, city *model.City) error {
	args := m.Called(ctx, city)
	return args.Error(0)
}

func (m *MockCityRepo) Delete(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockObservationRepo struct {
	mock.Mock
}

func (m *MockObservationRepo) List(ctx context.Context, filter model.ObservationFilter) ([]model.ObservationView, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ObservationView), args.Error(1)
}

func (m *MockObservationRepo) GetByID(ctx context.Context, id int) (*model.CulturalObservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CulturalObservation), args.Error(1)
}

func (m *MockObservationRepo) Create(ctx context.Context, obs *model.CulturalObservation) error {
	args := m.Called(ctx, obs)
	return args.Error(0)
}

func (m *MockObservationRepo) Update(ctx context.Context, obs *model.CulturalObservation) error {
	args := m.Called(ctx, obs)
	return args.Error(0)
}

func (m *MockObservationRepo) Delete(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
