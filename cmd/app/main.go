package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/atlasproject/atlas-api/internal/api"
	"github.com/atlasproject/atlas-api/internal/config"
	"github.com/atlasproject/atlas-api/internal/database"
	"github.com/atlasproject/atlas-api/internal/enrich"
	"github.com/atlasproject/atlas-api/internal/repository"
	"github.com/atlasproject/atlas-api/internal/seeder"
	"github.com/atlasproject/atlas-api/internal/service"
	"github.com/atlasproject/atlas-api/internal/stats"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	db, err := database.Connect(ctx, cfg.DB, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	logger.Info("Connected to database", zap.String("type", string(cfg.DB.Type)))

	if err := runMigrations(db, cfg); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	repos := repository.NewRepositories(db)

	if cfg.Seeder.AutoSeed {
		isEmpty, err := repository.IsDatabaseEmpty(ctx, db)
		if err != nil {
			logger.Warn("Failed to check if database is empty", zap.Error(err))
		} else if isEmpty {
			logger.Info("Database is empty, importing catalog data...")
			client := seeder.NewClient(cfg.Seeder.CountriesURL, cfg.Seeder.HTTPTimeout)
			importer := seeder.NewImporter(repos, client, logger)
			if err := importer.Run(ctx); err != nil {
				// The API still works with an empty catalog
				logger.Warn("Catalog import failed", zap.Error(err))
			}
		}
	}

	svc := service.NewService(repos, cfg.Auth)
	enricher := enrich.NewClient(cfg.Seeder.HTTPTimeout)
	statsCollector := stats.NewCollector(db, cfg.DB)
	router := api.NewRouter(svc, enricher, statsCollector)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

func runMigrations(db *sqlx.DB, cfg *config.Config) error {
	sourcePath := "file://migrations/postgres"

	if cfg.DB.IsMemory() {
		sourcePath = "file://migrations/sqlite"
		// Use driver instance directly to avoid DSN parsing issues with in-memory SQLite
		driver, err := sqlite3.WithInstance(db.DB, &sqlite3.Config{})
		if err != nil {
			return fmt.Errorf("could not create sqlite driver: %w", err)
		}
		m, err := migrate.NewWithDatabaseInstance(sourcePath, "sqlite3", driver)
		if err != nil {
			return fmt.Errorf("could not create migrate instance: %w", err)
		}
		if err := m.Up(); err != nil && err != migrate.ErrNoChange {
			return err
		}
		return nil
	}

	m, err := migrate.New(sourcePath, cfg.DB.DSN())
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
