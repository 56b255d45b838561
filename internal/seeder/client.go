package seeder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// CountryRecord is one country as fetched from the REST Countries API,
// flattened to the fields the importer cares about.
type CountryRecord struct {
	Name       string
	NativeName *string
	Population int
	Region     string
	Capital    *string
	FlagURL    *string
	Languages  []string
	Currencies []CurrencyRecord
}

// CurrencyRecord is a currency as published by the REST Countries API
type CurrencyRecord struct {
	Code   string
	Name   string
	Symbol *string
}

// Client fetches the country dataset used to seed the catalog
type Client struct {
	httpClient *http.Client
	url        string
}

// NewClient creates a seeder client for the given dataset URL
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		url:        url,
	}
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

// FetchCountries downloads and flattens the full country dataset
func (c *Client) FetchCountries(ctx context.Context) ([]CountryRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch countries: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("countries API returned status %d", resp.StatusCode)
	}

	var raw []restCountry
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode countries: %w", err)
	}

	records := make([]CountryRecord, 0, len(raw))
	for _, rc := range raw {
		if rc.Name.Common == "" {
			continue
		}
		rec := CountryRecord{
			Name:       rc.Name.Common,
			Population: rc.Population,
			Region:     rc.Region,
		}
		for _, nn := range rc.Name.NativeName {
			if nn.Common != "" {
				name := nn.Common
				rec.NativeName = &name
				break
			}
		}
		if len(rc.Capital) > 0 && rc.Capital[0] != "" {
			capital := rc.Capital[0]
			rec.Capital = &capital
		}
		if rc.Flags.PNG != "" {
			flag := rc.Flags.PNG
			rec.FlagURL = &flag
		}
		for _, lang := range rc.Languages {
			if lang != "" {
				rec.Languages = append(rec.Languages, lang)
			}
		}
		for code, cur := range rc.Currencies {
			if cur.Name == "" {
				continue
			}
			cr := CurrencyRecord{Code: code, Name: cur.Name}
			if cur.Symbol != "" {
				symbol := cur.Symbol
				cr.Symbol = &symbol
			}
			rec.Currencies = append(rec.Currencies, cr)
		}
		records = append(records, rec)
	}

	return records, nil
}
