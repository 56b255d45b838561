package main

import (
	"context"
	"fmt"
	"log"

	"github.com/atlasproject/atlas-api/internal/config"
	"github.com/atlasproject/atlas-api/internal/database"
	"github.com/atlasproject/atlas-api/internal/repository"
	"github.com/atlasproject/atlas-api/internal/seeder"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	ctx := context.Background()

	db, err := database.Connect(ctx, cfg.DB, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Connected to database", zap.String("type", string(cfg.DB.Type)))

	// Auto-migrate if using memory DB to ensure schema exists
	if cfg.DB.IsMemory() {
		if err := migrateMemory(db); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	repos := repository.NewRepositories(db)
	client := seeder.NewClient(cfg.Seeder.CountriesURL, cfg.Seeder.HTTPTimeout)
	importer := seeder.NewImporter(repos, client, logger)

	logger.Info("Starting catalog import...", zap.String("source", cfg.Seeder.CountriesURL))
	if err := importer.Run(ctx); err != nil {
		logger.Fatal("Catalog import failed", zap.Error(err))
	}

	logger.Info("Catalog import completed successfully!")
}

func migrateMemory(db *sqlx.DB) error {
	driver, err := sqlite3.WithInstance(db.DB, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("could not create sqlite driver: %w", err)
	}
	m, err := migrate.NewWithDatabaseInstance("file://migrations/sqlite", "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
