package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/atlasproject/atlas-api/internal/model"
	"github.com/jmoiron/sqlx"
)

type userRepository struct {
	db *sqlx.DB
}

const userColumns = "id, username, email, password_hash, created_at"

func (r *userRepository) GetByID(ctx context.Context, id int) (*model.User, error) {
	var user model.User
	q := r.db.Rebind("SELECT " + userColumns + " FROM users WHERE id = ?")
	if err := r.db.GetContext(ctx, &user, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	q := r.db.Rebind("SELECT " + userColumns + " FROM users WHERE email = ?")
	if err := r.db.GetContext(ctx, &user, q, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	q := r.db.Rebind("SELECT " + userColumns + " FROM users WHERE username = ?")
	if err := r.db.GetContext(ctx, &user, q, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	q := r.db.Rebind(`
		INSERT INTO users (username, email, password_hash, created_at)
		VALUES (?, ?, ?, ?) RETURNING id`)
	return r.db.QueryRowxContext(ctx, q,
		user.Username, user.Email, user.PasswordHash, user.CreatedAt,
	).Scan(&user.ID)
}
