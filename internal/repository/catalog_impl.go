package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/atlasproject/atlas-api/internal/model"
	"github.com/jmoiron/sqlx"
)

// --- Continents ---

type continentRepository struct {
	db *sqlx.DB
}

func (r *continentRepository) List(ctx context.Context) ([]model.Continent, error) {
	continents := []model.Continent{}
	q := "SELECT id, name, description FROM continents ORDER BY id"
	if err := r.db.SelectContext(ctx, &continents, q); err != nil {
		return nil, err
	}
	return continents, nil
}

func (r *continentRepository) GetByID(ctx context.Context, id int) (*model.Continent, error) {
	var continent model.Continent
	q := r.db.Rebind("SELECT id, name, description FROM continents WHERE id = ?")
	if err := r.db.GetContext(ctx, &continent, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &continent, nil
}

func (r *continentRepository) GetByName(ctx context.Context, name string) (*model.Continent, error) {
	var continent model.Continent
	q := r.db.Rebind("SELECT id, name, description FROM continents WHERE name = ?")
	if err := r.db.GetContext(ctx, &continent, q, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &continent, nil
}

func (r *continentRepository) Create(ctx context.Context, continent *model.Continent) error {
	q := r.db.Rebind("INSERT INTO continents (name, description) VALUES (?, ?) RETURNING id")
	return r.db.QueryRowxContext(ctx, q, continent.Name, continent.Description).Scan(&continent.ID)
}

func (r *continentRepository) Update(ctx context.Context, continent *model.Continent) error {
	q := r.db.Rebind("UPDATE continents SET name = ?, description = ? WHERE id = ?")
	_, err := r.db.ExecContext(ctx, q, continent.Name, continent.Description, continent.ID)
	return err
}

func (r *continentRepository) Delete(ctx context.Context, id int) (bool, error) {
	q := r.db.Rebind("DELETE FROM continents WHERE id = ?")
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// --- Countries ---

type countryRepository struct {
	db *sqlx.DB
}

const countryColumns = "id, name, native_name, population, continent_id, flag_url, capital_id"

func (r *countryRepository) List(ctx context.Context, filter model.CountryFilter) ([]model.Country, error) {
	countries := []model.Country{}
	q := "SELECT " + countryColumns + " FROM countries"
	args := []any{}
	if filter.ContinentID != nil {
		q += " WHERE continent_id = ?"
		args = append(args, *filter.ContinentID)
	}
	q += " ORDER BY id"
	if err := r.db.SelectContext(ctx, &countries, r.db.Rebind(q), args...); err != nil {
		return nil, err
	}
	return countries, nil
}

func (r *countryRepository) GetByID(ctx context.Context, id int) (*model.Country, error) {
	var country model.Country
	q := r.db.Rebind("SELECT " + countryColumns + " FROM countries WHERE id = ?")
	if err := r.db.GetContext(ctx, &country, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &country, nil
}

func (r *countryRepository) GetByName(ctx context.Context, name string) (*model.Country, error) {
	var country model.Country
	q := r.db.Rebind("SELECT " + countryColumns + " FROM countries WHERE name = ?")
	if err := r.db.GetContext(ctx, &country, q, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &country, nil
}

func (r *countryRepository) Create(ctx context.Context, country *model.Country) error {
	q := r.db.Rebind(`
		INSERT INTO countries (name, native_name, population, continent_id, flag_url, capital_id)
		VALUES (?, ?, ?, ?, ?, ?) RETURNING id`)
	return r.db.QueryRowxContext(ctx, q,
		country.Name, country.NativeName, country.Population,
		country.ContinentID, country.FlagURL, country.CapitalID,
	).Scan(&country.ID)
}

func (r *countryRepository) Update(ctx context.Context, country *model.Country) error {
	q := r.db.Rebind(`
		UPDATE countries
		SET name = ?, native_name = ?, population = ?, continent_id = ?, flag_url = ?, capital_id = ?
		WHERE id = ?`)
	_, err := r.db.ExecContext(ctx, q,
		country.Name, country.NativeName, country.Population,
		country.ContinentID, country.FlagURL, country.CapitalID, country.ID,
	)
	return err
}

func (r *countryRepository) Delete(ctx context.Context, id int) (bool, error) {
	q := r.db.Rebind("DELETE FROM countries WHERE id = ?")
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *countryRepository) ListLanguages(ctx context.Context, countryID int) ([]model.Language, error) {
	languages := []model.Language{}
	q := r.db.Rebind(`
		SELECT l.id, l.name, l.code
		FROM languages l
		INNER JOIN country_languages cl ON cl.language_id = l.id
		WHERE cl.country_id = ?
		ORDER BY l.id`)
	if err := r.db.SelectContext(ctx, &languages, q, countryID); err != nil {
		return nil, err
	}
	return languages, nil
}

func (r *countryRepository) ListCurrencies(ctx context.Context, countryID int) ([]model.Currency, error) {
	currencies := []model.Currency{}
	q := r.db.Rebind(`
		SELECT c.id, c.name, c.code, c.symbol
		FROM currencies c
		INNER JOIN country_currencies cc ON cc.currency_id = c.id
		WHERE cc.country_id = ?
		ORDER BY c.id`)
	if err := r.db.SelectContext(ctx, &currencies, q, countryID); err != nil {
		return nil, err
	}
	return currencies, nil
}

func (r *countryRepository) AttachLanguage(ctx context.Context, countryID, languageID int) error {
	q := r.db.Rebind(`
		INSERT INTO country_languages (country_id, language_id)
		VALUES (?, ?) ON CONFLICT (country_id, language_id) DO NOTHING`)
	_, err := r.db.ExecContext(ctx, q, countryID, languageID)
	return err
}

func (r *countryRepository) AttachCurrency(ctx context.Context, countryID, currencyID int) error {
	q := r.db.Rebind(`
		INSERT INTO country_currencies (country_id, currency_id)
		VALUES (?, ?) ON CONFLICT (country_id, currency_id) DO NOTHING`)
	_, err := r.db.ExecContext(ctx, q, countryID, currencyID)
	return err
}

// --- Cities ---

type cityRepository struct {
	db *sqlx.DB
}

const cityColumns = "id, name, population, latitude, longitude, country_id"

func (r *cityRepository) List(ctx context.Context, filter model.CityFilter) ([]model.City, error) {
	cities := []model.City{}
	q := "SELECT c.id, c.name, c.population, c.latitude, c.longitude, c.country_id FROM cities c"
	where := ""
	args := []any{}
	if filter.ContinentID != nil {
		// Continent filter goes through the owning country
		q += " INNER JOIN countries co ON co.id = c.country_id"
		where = " WHERE co.continent_id = ?"
		args = append(args, *filter.ContinentID)
	}
	if filter.CountryID != nil {
		if where == "" {
			where = " WHERE c.country_id = ?"
		} else {
			where += " AND c.country_id = ?"
		}
		args = append(args, *filter.CountryID)
	}
	q += where + " ORDER BY c.id"
	if err := r.db.SelectContext(ctx, &cities, r.db.Rebind(q), args...); err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *cityRepository) GetByID(ctx context.Context, id int) (*model.City, error) {
	var city model.City
	q := r.db.Rebind("SELECT " + cityColumns + " FROM cities WHERE id = ?")
	if err := r.db.GetContext(ctx, &city, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &city, nil
}

func (r *cityRepository) Create(ctx context.Context, city *model.City) error {
	q := r.db.Rebind(`
		INSERT INTO cities (name, population, latitude, longitude, country_id)
		VALUES (?, ?, ?, ?, ?) RETURNING id`)
	return r.db.QueryRowxContext(ctx, q,
		city.Name, city.Population, city.Latitude, city.Longitude, city.CountryID,
	).Scan(&city.ID)
}

func (r *cityRepository) Update(ctx context.Context, city *model.City) error {
	q := r.db.Rebind(`
		UPDATE cities
		SET name = ?, population = ?, latitude = ?, longitude = ?, country_id = ?
		WHERE id = ?`)
	_, err := r.db.ExecContext(ctx, q,
		city.Name, city.Population, city.Latitude, city.Longitude, city.CountryID, city.ID,
	)
	return err
}

func (r *cityRepository) Delete(ctx context.Context, id int) (bool, error) {
	q := r.db.Rebind("DELETE FROM cities WHERE id = ?")
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// --- Languages ---

type languageRepository struct {
	db *sqlx.DB
}

func (r *languageRepository) List(ctx context.Context) ([]model.Language, error) {
	languages := []model.Language{}
	q := "SELECT id, name, code FROM languages ORDER BY id"
	if err := r.db.SelectContext(ctx, &languages, q); err != nil {
		return nil, err
	}
	return languages, nil
}

func (r *languageRepository) GetByID(ctx context.Context, id int) (*model.Language, error) {
	var language model.Language
	q := r.db.Rebind("SELECT id, name, code FROM languages WHERE id = ?")
	if err := r.db.GetContext(ctx, &language, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &language, nil
}

func (r *languageRepository) GetByName(ctx context.Context, name string) (*model.Language, error) {
	var language model.Language
	q := r.db.Rebind("SELECT id, name, code FROM languages WHERE name = ?")
	if err := r.db.GetContext(ctx, &language, q, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &language, nil
}

func (r *languageRepository) Create(ctx context.Context, language *model.Language) error {
	q := r.db.Rebind("INSERT INTO languages (name, code) VALUES (?, ?) RETURNING id")
	return r.db.QueryRowxContext(ctx, q, language.Name, language.Code).Scan(&language.ID)
}

func (r *languageRepository) Update(ctx context.Context, language *model.Language) error {
	q := r.db.Rebind("UPDATE languages SET name = ?, code = ? WHERE id = ?")
	_, err := r.db.ExecContext(ctx, q, language.Name, language.Code, language.ID)
	return err
}

func (r *languageRepository) Delete(ctx context.Context, id int) (bool, error) {
	q := r.db.Rebind("DELETE FROM languages WHERE id = ?")
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// --- Currencies ---

type currencyRepository struct {
	db *sqlx.DB
}

func (r *currencyRepository) List(ctx context.Context) ([]model.Currency, error) {
	currencies := []model.Currency{}
	q := "SELECT id, name, code, symbol FROM currencies ORDER BY id"
	if err := r.db.SelectContext(ctx, &currencies, q); err != nil {
		return nil, err
	}
	return currencies, nil
}

func (r *currencyRepository) GetByID(ctx context.Context, id int) (*model.Currency, error) {
	var currency model.Currency
	q := r.db.Rebind("SELECT id, name, code, symbol FROM currencies WHERE id = ?")
	if err := r.db.GetContext(ctx, &currency, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &currency, nil
}

func (r *currencyRepository) GetByName(ctx context.Context, name string) (*model.Currency, error) {
	var currency model.Currency
	q := r.db.Rebind("SELECT id, name, code, symbol FROM currencies WHERE name = ?")
	if err := r.db.GetContext(ctx, &currency, q, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &currency, nil
}

func (r *currencyRepository) Create(ctx context.Context, currency *model.Currency) error {
	q := r.db.Rebind("INSERT INTO currencies (name, code, symbol) VALUES (?, ?, ?) RETURNING id")
	return r.db.QueryRowxContext(ctx, q, currency.Name, currency.Code, currency.Symbol).Scan(&currency.ID)
}

func (r *currencyRepository) Update(ctx context.Context, currency *model.Currency) error {
	q := r.db.Rebind("UPDATE currencies SET name = ?, code = ?, symbol = ? WHERE id = ?")
	_, err := r.db.ExecContext(ctx, q, currency.Name, currency.Code, currency.Symbol, currency.ID)
	return err
}

func (r *currencyRepository) Delete(ctx context.Context, id int) (bool, error) {
	q := r.db.Rebind("DELETE FROM currencies WHERE id = ?")
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
