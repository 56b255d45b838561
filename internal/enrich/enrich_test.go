package enrich

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/atlasproject/atlas-api/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const countriesPayload = `[
	{
		"name": {
			"common": "Ireland",
			"nativeName": {"gle": {"common": "Éire"}}
		},
		"population": 5149139,
		"region": "Europe",
		"capital": ["Dublin"],
		"flags": {"png": "https://flagcdn.com/w320/ie.png"},
		"languages": {"eng": "English", "gle": "Irish"},
		"currencies": {"EUR": {"name": "Euro", "symbol": "€"}}
	}
]`

const weatherPayload = `{
	"current_condition": [
		{
			"temp_C": "14",
			"FeelsLikeC": "12",
			"humidity": "81",
			"windspeedKmph": "24",
			"weatherDesc": [{"value": "Light rain"}]
		}
	]
}`

func TestClient_CountryByName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/name/Ireland", r.URL.Path)
		w.Write([]byte(countriesPayload))
	}))
	defer server.Close()

	client := NewClient(time.Second, WithCountriesBaseURL(server.URL))
	info, err := client.CountryByName(context.Background(), "Ireland")
	require.NoError(t, err)

	assert.True(t, info.Available)
	assert.Equal(t, "Ireland", info.Name)
	assert.Equal(t, "Éire", info.NativeName)
	assert.Equal(t, 5149139, info.Population)
	assert.Equal(t, "Dublin", info.Capital)
	assert.Equal(t, "https://flagcdn.com/w320/ie.png", info.FlagURL)
	assert.Len(t, info.Languages, 2)
	assert.Len(t, info.Currencies, 1)
}

func TestClient_CountryByName_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(time.Second, WithCountriesBaseURL(server.URL))
	_, err := client.CountryByName(context.Background(), "Atlantis")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestClient_CountryByName_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(time.Second, WithCountriesBaseURL(server.URL))
	_, err := client.CountryByName(context.Background(), "Ireland")
	assert.Equal(t, apperr.KindUpstream, apperr.KindOf(err))
}

func TestClient_CountryByName_Unreachable(t *testing.T) {
	client := NewClient(100*time.Millisecond, WithCountriesBaseURL("http://127.0.0.1:1"))
	_, err := client.CountryByName(context.Background(), "Ireland")
	assert.Equal(t, apperr.KindUpstream, apperr.KindOf(err))
}

func TestClient_WeatherByCity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Dublin", r.URL.Path)
		assert.Equal(t, "j1", r.URL.Query().Get("format"))
		w.Write([]byte(weatherPayload))
	}))
	defer server.Close()

	client := NewClient(time.Second, WithWeatherBaseURL(server.URL))
	weather, err := client.WeatherByCity(context.Background(), "Dublin")
	require.NoError(t, err)

	assert.True(t, weather.Available)
	assert.Equal(t, "Dublin", weather.City)
	assert.Equal(t, "14", weather.TemperatureC)
	assert.Equal(t, "12", weather.FeelsLikeC)
	assert.Equal(t, "81", weather.Humidity)
	assert.Equal(t, "Light rain", weather.Description)
}

func TestClient_WeatherByCity_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	client := NewClient(time.Second, WithWeatherBaseURL(server.URL))
	_, err := client.WeatherByCity(context.Background(), "Dublin")
	assert.Equal(t, apperr.KindUpstream, apperr.KindOf(err))
}
