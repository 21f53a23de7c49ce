package config

import (
	"fmt"
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Database drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverNone     = "none"
)

// Config holds all application configuration
type Config struct {
	Server    Server    `yaml:"server"`
	Instagram Instagram `yaml:"instagram"`
	Database  Database  `yaml:"database"`
	Scheduler Scheduler `yaml:"scheduler"`
	S3        S3        `yaml:"s3"`
	Report    Report    `yaml:"report"`
	Log       Log       `yaml:"log"`
}

// S3 holds S3/MinIO storage configuration
type S3 struct {
	Enabled         bool   `yaml:"enabled" env:"S3_ENABLED" env-default:"false"`
	Endpoint        string `yaml:"endpoint" env:"S3_ENDPOINT" env-default:"http://localhost:9000"`
	AccessKeyID     string `yaml:"access_key_id" env:"S3_ACCESS_KEY_ID" env-default:"minioadmin"`
	SecretAccessKey string `yaml:"secret_access_key" env:"S3_SECRET_ACCESS_KEY" env-default:"minioadmin"`
	Bucket          string `yaml:"bucket" env:"S3_BUCKET" env-default:"reports"`
	Region          string `yaml:"region" env:"S3_REGION" env-default:"us-east-1"`
	PublicURL       string `yaml:"public_url" env:"S3_PUBLIC_URL" env-default:"http://localhost:9000/reports"`
	Prefix          string `yaml:"prefix" env:"S3_PREFIX" env-default:"reports"`
}

// Server holds HTTP server configuration
type Server struct {
	Host         string        `yaml:"host" env:"SERVER_HOST" env-default:"0.0.0.0"`
	Port         string        `yaml:"port" env:"SERVER_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT" env-default:"15s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"30s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" env-default:"60s"`
}

// Address returns the full server address
func (s Server) Address() string {
	return s.Host + ":" + s.Port
}

// Instagram holds settings for reading saved Instagram pages
type Instagram struct {
	BaseURL string `yaml:"base_url" env:"INSTAGRAM_BASE_URL" env-default:"https://www.instagram.com"`
}

// Database holds database configuration
type Database struct {
	Driver string `yaml:"driver" env:"DB_DRIVER" env-default:"sqlite"`

	// PostgreSQL
	PostgresDSN string `yaml:"postgres_dsn" env:"DATABASE_URL"`

	// SQLite
	SQLitePath string `yaml:"sqlite_path" env:"SQLITE_PATH" env-default:"data/reports.db"`

	// Connection pool settings
	MaxOpenConns int           `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns int           `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS" env-default:"5"`
	ConnLifetime time.Duration `yaml:"conn_lifetime" env:"DB_CONN_LIFETIME" env-default:"5m"`
}

// Scheduler holds report retention configuration
type Scheduler struct {
	Enabled   bool          `yaml:"enabled" env:"SCHEDULER_ENABLED" env-default:"false"`
	Schedule  string        `yaml:"schedule" env:"SCHEDULER_SCHEDULE" env-default:"0 3 * * *"`
	ReportTTL time.Duration `yaml:"report_ttl" env:"REPORT_TTL" env-default:"720h"`
}

// Report holds analysis request limits
type Report struct {
	MaxDocumentSize int64 `yaml:"max_document_size" env:"REPORT_MAX_DOCUMENT_SIZE" env-default:"10485760"`
	MaxPosts        int   `yaml:"max_posts" env:"REPORT_MAX_POSTS" env-default:"5000"`
}

// Log holds logging configuration
type Log struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Validate checks values cleanenv cannot check by itself
func (c Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite, DriverNone:
	case DriverPostgres:
		if c.Database.PostgresDSN == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}

	if c.Report.MaxDocumentSize <= 0 {
		return fmt.Errorf("report max document size must be positive")
	}
	if c.Scheduler.Enabled && c.Database.Driver == DriverNone {
		return fmt.Errorf("report retention needs a database")
	}
	return nil
}

// MustLoad loads configuration from environment and panics on error
func MustLoad() Config {
	// Load .env file if exists (for development)
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	return cfg
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
