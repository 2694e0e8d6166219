package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Environment names. Debug behavior is derived from these.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// DatabaseConfig holds database connection settings for the configured driver.
//
// When DSN is empty, sqlite falls back to a local database file in the
// working directory and postgres assembles a DSN from the component fields.
type DatabaseConfig struct {
	Driver             string `validate:"required,oneof=sqlite postgres"`
	DSN                string
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	Echo               bool
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Env       string `validate:"required,oneof=development production"`
	Debug     bool
	SecretKey string
	AppHost   string
	Port      string `validate:"required"`
	Database  DatabaseConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	env := getEnv("APP_ENV", EnvProduction)
	return &AppConfig{
		Env:       env,
		Debug:     env == EnvDevelopment,
		SecretKey: getEnv("SECRET_KEY", ""),
		AppHost:   getEnv("APP_HOST", "localhost:8080"),
		Port:      getEnv("PORT", "8080"), // default only for non-sensitive value
		Database: DatabaseConfig{
			Driver:             getEnv("DB_DRIVER", DriverSQLite),
			DSN:                getEnv("DATABASE_URL", ""),
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			Echo:               getEnvBool("DB_ECHO", false),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
	}
}

// Validate checks the loaded configuration for structural problems.
// A missing SECRET_KEY is tolerated so the starter runs with an empty
// environment; the entrypoint warns about it instead.
func (c *AppConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for AppConfig: %w", err)
	}
	return nil
}

// LocalSQLitePath returns the path of the default local SQLite database file,
// used when no DATABASE_URL is configured.
func LocalSQLitePath() string {
	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "local.db")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
