package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/atlasproject/atlas-api/internal/model"
	"github.com/jmoiron/sqlx"
)

type observationRepository struct {
	db *sqlx.DB
}

const observationColumns = "id, country_id, city_id, user_id, observation, created_at, updated_at"

// List returns observations newest first, joined with their country, user
// and optional city names for display.
func (r *observationRepository) List(ctx context.Context, filter model.ObservationFilter) ([]model.ObservationView, error) {
	views := []model.ObservationView{}
	q := `
		SELECT o.id, o.country_id, o.city_id, o.user_id, o.observation,
		       o.created_at, o.updated_at,
		       co.name AS country_name,
		       u.username AS username,
		       ci.name AS city_name
		FROM cultural_observations o
		INNER JOIN countries co ON co.id = o.country_id
		INNER JOIN users u ON u.id = o.user_id
		LEFT JOIN cities ci ON ci.id = o.city_id`
	where := ""
	args := []any{}
	appendCond := func(cond string, arg any) {
		if where == "" {
			where = " WHERE " + cond
		} else {
			where += " AND " + cond
		}
		args = append(args, arg)
	}
	if filter.CountryID != nil {
		appendCond("o.country_id = ?", *filter.CountryID)
	}
	if filter.CityID != nil {
		appendCond("o.city_id = ?", *filter.CityID)
	}
	if filter.UserID != nil {
		appendCond("o.user_id = ?", *filter.UserID)
	}
	q += where + " ORDER BY o.created_at DESC, o.id DESC"
	if err := r.db.SelectContext(ctx, &views, r.db.Rebind(q), args...); err != nil {
		return nil, err
	}
	return views, nil
}

func (r *observationRepository) GetByID(ctx context.Context, id int) (*model.CulturalObservation, error) {
	var obs model.CulturalObservation
	q := r.db.Rebind("SELECT " + observationColumns + " FROM cultural_observations WHERE id = ?")
	if err := r.db.GetContext(ctx, &obs, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &obs, nil
}

func (r *observationRepository) Create(ctx context.Context, obs *model.CulturalObservation) error {
	now := time.Now().UTC()
	obs.CreatedAt = now
	obs.UpdatedAt = now
	q := r.db.Rebind(`
		INSERT INTO cultural_observations (country_id, city_id, user_id, observation, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?) RETURNING id`)
	return r.db.QueryRowxContext(ctx, q,
		obs.CountryID, obs.CityID, obs.UserID, obs.Observation, obs.CreatedAt, obs.UpdatedAt,
	).Scan(&obs.ID)
}

func (r *observationRepository) Update(ctx context.Context, obs *model.CulturalObservation) error {
	obs.UpdatedAt = time.Now().UTC()
	q := r.db.Rebind(`
		UPDATE cultural_observations
		SET country_id = ?, city_id = ?, observation = ?, updated_at = ?
		WHERE id = ?`)
	_, err := r.db.ExecContext(ctx, q,
		obs.CountryID, obs.CityID, obs.Observation, obs.UpdatedAt, obs.ID,
	)
	return err
}

func (r *observationRepository) Delete(ctx context.Context, id int) (bool, error) {
	q := r.db.Rebind("DELETE FROM cultural_observations WHERE id = ?")
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
