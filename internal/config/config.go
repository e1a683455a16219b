package config

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DatabaseConfig holds database connection settings.
// Driver selects between an embedded SQLite file (Path) and a PostgreSQL server.
type DatabaseConfig struct {
	Driver             string `env:"DB_DRIVER" envDefault:"sqlite"`
	Path               string `env:"DB_PATH" envDefault:"./data.db"`
	Host               string `env:"DB_HOST"`
	Port               string `env:"DB_PORT" envDefault:"5432"`
	User               string `env:"DB_USER"`
	Password           string `env:"DB_PASSWORD"`
	Name               string `env:"DB_NAME"`
	SSLMode            string `env:"DB_SSLMODE" envDefault:"disable"`
	MaxOpenConns       int    `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns       int    `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetimeSec int    `env:"DB_CONN_MAX_LIFETIME_SEC" envDefault:"300"`
	AutoMigrate        bool   `env:"DB_AUTO_MIGRATE" envDefault:"true"`
	Seed               bool   `env:"DB_SEED" envDefault:"false"`
}

// MinIOConfig holds object storage settings for MinIO.
// Storage is optional: an empty Endpoint disables RFQ archiving.
type MinIOConfig struct {
	Endpoint  string `env:"MINIO_ENDPOINT"`
	AccessKey string `env:"MINIO_ACCESS_KEY"`
	SecretKey string `env:"MINIO_SECRET_KEY"`
	Bucket    string `env:"MINIO_BUCKET" envDefault:"capilia-rfqs"`
	UseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"false"`
	// PresignExpiry bounds the lifetime of archive download links.
	PresignExpiry time.Duration `env:"MINIO_PRESIGN_EXPIRY" envDefault:"15m"`
}

// Enabled reports whether object storage has been configured.
func (c MinIOConfig) Enabled() bool {
	return c.Endpoint != ""
}

// CacheConfig controls the in-memory aggregate cache.
type CacheConfig struct {
	TTL             time.Duration `env:"CACHE_TTL" envDefault:"60s"`
	CleanupInterval time.Duration `env:"CACHE_CLEANUP_INTERVAL" envDefault:"5m"`
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Port            string        `env:"PORT" envDefault:"8000"`
	Timezone        string        `env:"APP_TIMEZONE" envDefault:"UTC"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	Database        DatabaseConfig
	MinIO           MinIOConfig
	Cache           CacheConfig
}

// ClientConfig configures the REST client used by the CLI and the dashboard loader.
type ClientConfig struct {
	BaseURL string        `env:"CAPILIA_API_BASE_URL" envDefault:"http://localhost:8000"`
	Timeout time.Duration `env:"CAPILIA_API_TIMEOUT" envDefault:"10s"`
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() (*AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}
	return &cfg, nil
}

// LoadClient reads the REST client settings from environment variables.
func LoadClient() (*ClientConfig, error) {
	var cfg ClientConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Location resolves the configured time zone, falling back to UTC.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
