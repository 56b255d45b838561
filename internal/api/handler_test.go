package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atlasproject/atlas-api/internal/apperr"
	"github.com/atlasproject/atlas-api/internal/enrich"
	"github.com/atlasproject/atlas-api/internal/model"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockService is a mock implementation of ServiceInterface
type MockService struct {
	mock.Mock
}

func (m *MockService) ListContinents(ctx context.Context) ([]model.Continent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Continent), args.Error(1)
}

func (m *MockService) GetContinent(ctx context.Context, id int) (*model.Continent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Continent), args.Error(1)
}

func (m *MockService) CreateContinent(ctx context.Context, input model.CreateContinentInput) (*model.Continent, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Continent), args.Error(1)
}

func (m *MockService) UpdateContinent(ctx context.Context, id int, input model.UpdateContinentInput) (*model.Continent, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Continent), args.Error(1)
}

func (m *MockService) DeleteContinent(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockService) ListCountries(ctx context.Context, filter model.CountryFilter) ([]model.Country, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Country), args.Error(1)
}

func (m *MockService) GetCountry(ctx context.Context, id int) (*model.CountryDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CountryDetail), args.Error(1)
}

func (m *MockService) CreateCountry(ctx context.Context, input model.CreateCountryInput) (*model.Country, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Country), args.Error(1)
}

func (m *MockService) UpdateCountry(ctx context.Context, id int, input model.UpdateCountryInput) (*model.Country, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Country), args.Error(1)
}

func (m *MockService) DeleteCountry(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockService) ListCities(ctx context.Context, filter model.CityFilter) ([]model.City, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.City), args.Error(1)
}

func (m *MockService) GetCity(ctx context.Context, id int) (*model.City, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.City), args.Error(1)
}

func (m *MockService) CreateCity(ctx context.Context, input model.CreateCityInput) (*model.City, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.City), args.Error(1)
}

func (m *MockService) UpdateCity(ctx context.Context, id int, input model.UpdateCityInput) (*model.City, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.City), args.Error(1)
}

func (m *MockService) DeleteCity(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockService) ListLanguages(ctx context.Context) ([]model.Language, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Language), args.Error(1)
}

func (m *MockService) GetLanguage(ctx context.Context, id int) (*model.Language, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Language), args.Error(1)
}

func (m *MockService) CreateLanguage(ctx context.Context, input model.CreateLanguageInput) (*model.Language, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Language), args.Error(1)
}

func (m *MockService) UpdateLanguage(ctx context.Context, id int, input model.UpdateLanguageInput) (*model.Language, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Language), args.Error(1)
}

func (m *MockService) DeleteLanguage(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockService) ListCurrencies(ctx context.Context) ([]model.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Currency), args.Error(1)
}

func (m *MockService) GetCurrency(ctx context.Context, id int) (*model.Currency, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Currency), args.Error(1)
}

func (m *MockService) CreateCurrency(ctx context.Context, input model.CreateCurrencyInput) (*model.Currency, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Currency), args.Error(1)
}

func (m *MockService) UpdateCurrency(ctx context.Context, id int, input model.UpdateCurrencyInput) (*model.Currency, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Currency), args.Error(1)
}

func (m *MockService) DeleteCurrency(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockService) Register(ctx context.Context, input model.RegisterInput) (*model.AuthResponse, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuthResponse), args.Error(1)
}

func (m *MockService) Login(ctx context.Context, input model.LoginInput) (*model.AuthResponse, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuthResponse), args.Error(1)
}

func (m *MockService) VerifyToken(token string) (int, error) {
	args := m.Called(token)
	return args.Int(0), args.Error(1)
}

func (m *MockService) ListObservations(ctx context.Context, filter model.ObservationFilter) ([]model.ObservationView, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ObservationView), args.Error(1)
}

func (m *MockService) GetObservation(ctx context.Context, id int) (*model.CulturalObservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CulturalObservation), args.Error(1)
}

func (m *MockService) CreateObservation(ctx context.Context, input model.CreateObservationInput, userID int) (*model.CulturalObservation, error) {
	args := m.Called(ctx, input, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CulturalObservation), args.Error(1)
}

func (m *MockService) UpdateObservation(ctx context.Context, id int, input model.UpdateObservationInput, userID int) (*model.CulturalObservation, error) {
	args := m.Called(ctx, id, input, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CulturalObservation), args.Error(1)
}

func (m *MockService) DeleteObservation(ctx context.Context, id int, userID int) (bool, error) {
	args := m.Called(ctx, id, userID)
	return args.Bool(0), args.Error(1)
}

func newMuxRequest(method, target string, vars map[string]string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	return req
}

func TestHandler_GetContinent(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		mockSetup      func(*MockService)
		expectedStatus int
	}{
		{
			name: "found",
			id:   "1",
			mockSetup: func(ms *MockService) {
				ms.On("GetContinent", mock.Anything, 1).Return(&model.Continent{ID: 1, Name: "Asia"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "missing",
			id:   "99",
			mockSetup: func(ms *MockService) {
				ms.On("GetContinent", mock.Anything, 99).Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid id",
			id:             "abc",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			if tt.mockSetup != nil {
				tt.mockSetup(mockService)
			}
			handler := &Handler{service: mockService}

			req := newMuxRequest("GET", "/continents/"+tt.id, map[string]string{"id": tt.id}, nil)
			rr := httptest.NewRecorder()
			handler.GetContinent(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestHandler_CreateContinent(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		mockService := new(MockService)
		mockService.On("CreateContinent", mock.Anything, mock.MatchedBy(func(in model.CreateContinentInput) bool {
			return in.Name == "Asia"
		})).Return(&model.Continent{ID: 1, Name: "Asia"}, nil)
		handler := &Handler{service: mockService}

		req := newMuxRequest("POST", "/continents", nil, model.CreateContinentInput{Name: "Asia"})
		rr := httptest.NewRecorder()
		handler.CreateContinent(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		var resp model.Continent
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.ID)
	})

	t.Run("conflict maps to 409", func(t *testing.T) {
		mockService := new(MockService)
		mockService.On("CreateContinent", mock.Anything, mock.Anything).
			Return(nil, apperr.Conflict("continent %q already exists", "Asia"))
		handler := &Handler{service: mockService}

		req := newMuxRequest("POST", "/continents", nil, model.CreateContinentInput{Name: "Asia"})
		rr := httptest.NewRecorder()
		handler.CreateContinent(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		handler := &Handler{service: new(MockService)}

		req := httptest.NewRequest("POST", "/continents", bytes.NewBufferString("{not json"))
		rr := httptest.NewRecorder()
		handler.CreateContinent(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandler_ListCities_Filters(t *testing.T) {
	mockService := new(MockService)
	mockService.On("ListCities", mock.Anything, mock.MatchedBy(func(f model.CityFilter) bool {
		return f.CountryID != nil && *f.CountryID == 3 && f.ContinentID == nil
	})).Return([]model.City{{ID: 1, Name: "Dublin", CountryID: 3}}, nil)
	handler := &Handler{service: mockService}

	req := httptest.NewRequest("GET", "/cities?country_id=3", nil)
	rr := httptest.NewRecorder()
	handler.ListCities(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	mockService.AssertExpectations(t)
}

func TestHandler_ListCities_InvalidFilter(t *testing.T) {
	handler := &Handler{service: new(MockService)}

	req := httptest.NewRequest("GET", "/cities?country_id=abc", nil)
	rr := httptest.NewRecorder()
	handler.ListCities(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_Register_PasswordTooShort(t *testing.T) {
	handler := &Handler{service: new(MockService)}

	req := newMuxRequest("POST", "/auth/register", nil, model.RegisterInput{
		Username: "ada",
		Email:    "ada@example.com",
		Password: "short",
	})
	rr := httptest.NewRecorder()
	handler.Register(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	mockService := new(MockService)
	mockService.On("Login", mock.Anything, mock.Anything).Return(nil, apperr.InvalidCredentials())
	handler := &Handler{service: mockService}

	req := newMuxRequest("POST", "/auth/login", nil, model.LoginInput{
		Email:    "ada@example.com",
		Password: "wrong",
	})
	rr := httptest.NewRecorder()
	handler.Login(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestHandler_UpdateObservation_Forbidden(t *testing.T) {
	mockService := new(MockService)
	mockService.On("UpdateObservation", mock.Anything, 1, mock.Anything, 8).
		Return(nil, apperr.Unauthorized("you can only update your own observations"))
	handler := &Handler{service: mockService}

	text := "revised"
	req := newMuxRequest("PUT", "/cultural-observations/1", map[string]string{"id": "1"}, model.UpdateObservationInput{Observation: &text})
	req = req.WithContext(context.WithValue(req.Context(), userIDKey, 8))
	rr := httptest.NewRecorder()
	handler.UpdateObservation(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestHandler_CreateObservation_NoIdentity(t *testing.T) {
	handler := &Handler{service: new(MockService)}

	req := newMuxRequest("POST", "/cultural-observations", nil, model.CreateObservationInput{CountryID: 1, Observation: "text"})
	rr := httptest.NewRecorder()
	handler.CreateObservation(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestHandler_ExternalCountry_DegradesOnUpstreamFailure(t *testing.T) {
	failing := &stubEnricher{countryErr: apperr.Upstream("external API unreachable", nil)}
	handler := &Handler{service: new(MockService), enricher: failing}

	req := newMuxRequest("GET", "/external-apis/countries/Ireland", map[string]string{"name": "Ireland"}, nil)
	rr := httptest.NewRecorder()
	handler.ExternalCountry(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp enrich.CountryInfo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.Available)
	assert.Equal(t, "Ireland", resp.Name)
}

func TestHandler_ExternalWeather_Success(t *testing.T) {
	stub := &stubEnricher{weather: &enrich.Weather{Available: true, City: "Dublin", TemperatureC: "14"}}
	handler := &Handler{service: new(MockService), enricher: stub}

	req := newMuxRequest("GET", "/external-apis/weather/Dublin", map[string]string{"city": "Dublin"}, nil)
	rr := httptest.NewRecorder()
	handler.ExternalWeather(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp enrich.Weather
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Available)
	assert.Equal(t, "14", resp.TemperatureC)
}

type stubEnricher struct {
	country    *enrich.CountryInfo
	countryErr error
	weather    *enrich.Weather
	weatherErr error
}

func (s *stubEnricher) CountryByName(ctx context.Context, name string) (*enrich.CountryInfo, error) {
	return s.country, s.countryErr
}

func (s *stubEnricher) WeatherByCity(ctx context.Context, city string) (*enrich.Weather, error) {
	return s.weather, s.weatherErr
}
