package model

// Continent represents a continent in the database
type Continent struct {
	ID          int     `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description"`
}

// Country represents a country in the database
type Country struct {
	ID          int     `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	NativeName  *string `db:"native_name" json:"nativeName"`
	Population  int     `db:"population" json:"population"`
	ContinentID int     `db:"continent_id" json:"continent_id"`
	FlagURL     *string `db:"flag_url" json:"flag_url"`
	CapitalID   *int    `db:"capital_id" json:"capital_id"`
}

// City represents a city in the database
type City struct {
	ID         int     `db:"id" json:"id"`
	Name       string  `db:"name" json:"name"`
	Population int     `db:"population" json:"population"`
	Latitude   float64 `db:"latitude" json:"latitude"`
	Longitude  float64 `db:"longitude" json:"longitude"`
	CountryID  int     `db:"country_id" json:"country_id"`
}

// CountryDetail is a country joined with its language and currency sets
type CountryDetail struct {
	Country
	Languages  []Language `json:"languages"`
	Currencies []Currency `json:"currencies"`
}

// Language is a reference row shared across countries
type Language struct {
	ID   int    `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
	Code string `db:"code" json:"code"`
}

// Currency is a reference row shared across countries
type Currency struct {
	ID     int     `db:"id" json:"id"`
	Name   string  `db:"name" json:"name"`
	Code   string  `db:"code" json:"code"`
	Symbol *string `db:"symbol" json:"symbol"`
}
