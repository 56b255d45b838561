package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DB     DBConfig
	Server ServerConfig
	Auth   AuthConfig
	Seeder SeederConfig
}

// DBType represents database type
type DBType string

const (
	DBTypePostgreSQL DBType = "postgres"
	DBTypeMemory     DBType = "memory"
)

// DBConfig holds database configuration
type DBConfig struct {
	Type     DBType
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// Startup connection retry behaviour
	ConnectAttempts int
	ConnectDelay    time.Duration
}

// AuthConfig holds token signing settings
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// SeederConfig holds settings for the catalog importer
type SeederConfig struct {
	CountriesURL string
	HTTPTimeout  time.Duration
	AutoSeed     bool
}

// DSN returns the database connection string
func (c DBConfig) DSN() string {
	if c.Type == DBTypeMemory {
		// SQLite in-memory database
		if c.Name != "" && c.Name != "atlas" {
			return fmt.Sprintf("file:%s?mode=memory&cache=shared", c.Name)
		}
		return "file::memory:?cache=shared"
	}
	// PostgreSQL connection string
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// IsMemory returns true if using in-memory database
func (c DBConfig) IsMemory() bool {
	return c.Type == DBTypeMemory
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbType := DBType(getEnv("DB_TYPE", "memory"))
	if dbType != DBTypePostgreSQL && dbType != DBTypeMemory {
		dbType = DBTypeMemory
	}

	config := &Config{
		DB: DBConfig{
			Type:            dbType,
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "atlas"),
			Password:        getEnv("DB_PASSWORD", "atlas_password"),
			Name:            getEnv("DB_NAME", "atlas"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			ConnectAttempts: getEnvAsInt("DB_CONNECT_ATTEMPTS", 5),
			ConnectDelay:    getEnvAsDuration("DB_CONNECT_DELAY", 2*time.Second),
		},
		Server: ServerConfig{
			Port: getEnv("APP_PORT", "8080"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", "change-me-in-production"),
			TokenTTL:  getEnvAsDuration("JWT_TTL", 7*24*time.Hour),
		},
		Seeder: SeederConfig{
			CountriesURL: getEnv("SEEDER_COUNTRIES_URL", "https://restcountries.com/v3.1/all"),
			HTTPTimeout:  getEnvAsDuration("SEEDER_HTTP_TIMEOUT", 30*time.Second),
			AutoSeed:     getEnvAsBool("SEEDER_AUTO_SEED", true),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
