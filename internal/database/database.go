package database

import (
	"context"
	"fmt"
	"time"

	"github.com/atlasproject/atlas-api/internal/config"
	_ "github.com/jackc/pgx/v5/stdlib" // Postgres driver for database/sql
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// Connect creates a database connection based on configuration using sqlx.
// Connection attempts are retried with a fixed delay up to
// cfg.ConnectAttempts times; after the last failure the error is returned
// and the process must not start serving traffic.
func Connect(ctx context.Context, cfg config.DBConfig, logger *zap.Logger) (*sqlx.DB, error) {
	driverName := "pgx"
	if cfg.IsMemory() {
		driverName = "sqlite3"
	}
	dsn := cfg.DSN()

	attempts := cfg.ConnectAttempts
	if attempts < 1 {
		attempts = 1
	}

	var db *sqlx.DB
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		db, err = sqlx.ConnectContext(ctx, driverName, dsn)
		if err == nil {
			break
		}
		logger.Warn("Database connection failed",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", attempts),
			zap.Error(err),
		)
		if attempt == attempts {
			return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
		}
		select {
		case <-time.After(cfg.ConnectDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	// Specific settings for SQLite to enable Foreign Keys
	if cfg.IsMemory() {
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	return db, nil
}
