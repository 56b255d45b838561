package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/atlasproject/atlas-api/internal/apperr"
)

const (
	defaultCountriesBaseURL = "https://restcountries.com/v3.1"
	defaultWeatherBaseURL   = "https://wttr.in"
)

// Client fetches supplementary country and weather data from public APIs.
// Failures are reported as upstream errors so callers can degrade instead
// of failing the whole request.
type Client struct {
	httpClient       *http.Client
	countriesBaseURL string
	weatherBaseURL   string
}

// Option customizes the client
type Option func(*Client)

// WithCountriesBaseURL overrides the REST Countries endpoint
func WithCountriesBaseURL(u string) Option {
	return func(c *Client) { c.countriesBaseURL = u }
}

// WithWeatherBaseURL overrides the weather endpoint
func WithWeatherBaseURL(u string) Option {
	return func(c *Client) { c.weatherBaseURL = u }
}

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates an enrichment client with a bounded request timeout
func NewClient(timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		httpClient:       &http.Client{Timeout: timeout},
		countriesBaseURL: defaultCountriesBaseURL,
		weatherBaseURL:   defaultWeatherBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CountryInfo is the external profile of a country
type CountryInfo struct {
	Available  bool     `json:"available"`
	Name       string   `json:"name"`
	NativeName string   `json:"nativeName,omitempty"`
	Population int      `json:"population"`
	Region     string   `json:"region"`
	Capital    string   `json:"capital,omitempty"`
	FlagURL    string   `json:"flag_url,omitempty"`
	Languages  []string `json:"languages,omitempty"`
	Currencies []string `json:"currencies,omitempty"`
}

// Weather is a current-conditions snapshot for a city
type Weather struct {
	Available     bool   `json:"available"`
	City          string `json:"city"`
	TemperatureC  string `json:"temp_c,omitempty"`
	FeelsLikeC    string `json:"feels_like_c,omitempty"`
	Humidity      string `json:"humidity,omitempty"`
	Description   string `json:"description,omitempty"`
	WindSpeedKmph string `json:"wind_speed_kmph,omitempty"`
}

type restCountry struct {
	Name struct {
		Common     string `json:"common"`
		NativeName map[string]struct {
			Common string `json:"common"`
		} `json:"nativeName"`
	} `json:"name"`
	Population int      `json:"population"`
	Region     string   `json:"region"`
	Capital    []string `json:"capital"`
	Flags      struct {
		PNG string `json:"png"`
	} `json:"flags"`
	Languages  map[string]string `json:"languages"`
	Currencies map[string]struct {
		Name   string `json:"name"`
		Symbol string `json:"symbol"`
	} `json:"currencies"`
}

// CountryByName looks up a country profile by common name
func (c *Client) CountryByName(ctx context.Context, name string) (*CountryInfo, error) {
	endpoint := fmt.Sprintf("%s/name/%s", c.countriesBaseURL, url.PathEscape(name))
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var results []restCountry
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, apperr.Upstream("country lookup returned malformed data", err)
	}
	if len(results) == 0 {
		return nil, apperr.NotFound("country", 0)
	}

	rc := results[0]
	info := &CountryInfo{
		Available:  true,
		Name:       rc.Name.Common,
		Population: rc.Population,
		Region:     rc.Region,
		FlagURL:    rc.Flags.PNG,
	}
	for _, nn := range rc.Name.NativeName {
		info.NativeName = nn.Common
		break
	}
	if len(rc.Capital) > 0 {
		info.Capital = rc.Capital[0]
	}
	for _, lang := range rc.Languages {
		info.Languages = append(info.Languages, lang)
	}
	for code, cur := range rc.Currencies {
		info.Currencies = append(info.Currencies, fmt.Sprintf("%s (%s)", cur.Name, code))
	}
	return info, nil
}

type wttrResponse struct {
	CurrentCondition []struct {
		TempC       string `json:"temp_C"`
		FeelsLikeC  string `json:"FeelsLikeC"`
		Humidity    string `json:"humidity"`
		WindSpeed   string `json:"windspeedKmph"`
		WeatherDesc []struct {
			Value string `json:"value"`
		} `json:"weatherDesc"`
	} `json:"current_condition"`
}

// WeatherByCity fetches current conditions for a city
func (c *Client) WeatherByCity(ctx context.Context, city string) (*Weather, error) {
	endpoint := fmt.Sprintf("%s/%s?format=j1", c.weatherBaseURL, url.PathEscape(city))
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var resp wttrResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, apperr.Upstream("weather lookup returned malformed data", err)
	}
	if len(resp.CurrentCondition) == 0 {
		return nil, apperr.Upstream("weather lookup returned no conditions", nil)
	}

	cc := resp.CurrentCondition[0]
	weather := &Weather{
		Available:     true,
		City:          city,
		TemperatureC:  cc.TempC,
		FeelsLikeC:    cc.FeelsLikeC,
		Humidity:      cc.Humidity,
		WindSpeedKmph: cc.WindSpeed,
	}
	if len(cc.WeatherDesc) > 0 {
		weather.Description = cc.WeatherDesc[0].Value
	}
	return weather, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperr.Upstream("external API unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperr.NotFound("resource", 0)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apperr.Upstream(fmt.Sprintf("external API returned status %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.Upstream("failed to read external API response", err)
	}
	return body, nil
}
