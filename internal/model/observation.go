package model

import "time"

// CulturalObservation is a user-authored note attached to a country and
// optionally a city. Ownership is fixed at creation.
type CulturalObservation struct {
	ID          int       `db:"id" json:"id"`
	CountryID   int       `db:"country_id" json:"country_id"`
	CityID      *int      `db:"city_id" json:"city_id"`
	UserID      int       `db:"user_id" json:"user_id"`
	Observation string    `db:"observation" json:"observation"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// ObservationView is an observation joined with its country, user and
// optional city names for display.
type ObservationView struct {
	CulturalObservation
	CountryName string  `db:"country_name" json:"country_name"`
	Username    string  `db:"username" json:"username"`
	CityName    *string `db:"city_name" json:"city_name"`
}
