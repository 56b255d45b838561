package model

// CreateContinentInput carries the fields to create a continent
type CreateContinentInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// UpdateContinentInput carries a partial-field continent update.
// Nil fields are left untouched.
type UpdateContinentInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CreateCountryInput carries the fields to create a country
type CreateCountryInput struct {
	Name        string  `json:"name"`
	NativeName  *string `json:"nativeName"`
	Population  int     `json:"population"`
	ContinentID int     `json:"continent_id"`
	FlagURL     *string `json:"flag_url"`
	CapitalID   *int    `json:"capital_id"`
}

// UpdateCountryInput carries a partial-field country update
type UpdateCountryInput struct {
	Name        *string `json:"name"`
	NativeName  *string `json:"nativeName"`
	Population  *int    `json:"population"`
	ContinentID *int    `json:"continent_id"`
	FlagURL     *string `json:"flag_url"`
	CapitalID   *int    `json:"capital_id"`
}

// CreateCityInput carries the fields to create a city
type CreateCityInput struct {
	Name       string  `json:"name"`
	Population int     `json:"population"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	CountryID  int     `json:"country_id"`
}

// UpdateCityInput carries a partial-field city update
type UpdateCityInput struct {
	Name       *string  `json:"name"`
	Population *int     `json:"population"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	CountryID  *int     `json:"country_id"`
}

// CreateLanguageInput carries the fields to create a language
type CreateLanguageInput struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// UpdateLanguageInput carries a partial-field language update
type UpdateLanguageInput struct {
	Name *string `json:"name"`
	Code *string `json:"code"`
}

// CreateCurrencyInput carries the fields to create a currency
type CreateCurrencyInput struct {
	Name   string  `json:"name"`
	Code   string  `json:"code"`
	Symbol *string `json:"symbol"`
}

// UpdateCurrencyInput carries a partial-field currency update
type UpdateCurrencyInput struct {
	Name   *string `json:"name"`
	Code   *string `json:"code"`
	Symbol *string `json:"symbol"`
}

// RegisterInput carries registration credentials
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput carries login credentials
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

// CreateObservationInput carries the fields to create an observation.
// The author is taken from the authenticated identity, never from input.
type CreateObservationInput struct {
	CountryID   int    `json:"country_id"`
	CityID      *int   `json:"city_id"`
	Observation string `json:"observation"`
}

// UpdateObservationInput carries the owner-editable observation fields
type UpdateObservationInput struct {
	CityID      *int    `json:"city_id"`
	Observation *string `json:"observation"`
}

// CityFilter restricts city listings by exact-match foreign keys
type CityFilter struct {
	CountryID   *int
	ContinentID *int
}

// CountryFilter restricts country listings
type CountryFilter struct {
	ContinentID *int
}

// ObservationFilter restricts observation listings
type ObservationFilter struct {
	CountryID *int
	CityID    *int
	UserID    *int
}
