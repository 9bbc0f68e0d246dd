package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Placement sources.
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
	SourceSQLite   = "sqlite"
	SourceMongo    = "mongodb"
)

type Config struct {
	Port string

	Source  string
	CSVPath string

	DBDSN   string
	DBTable string

	MongoURI        string
	MongoDB         string
	MongoCollection string

	LogLevel  string
	LogFormat string

	// Empty hash leaves the dashboard open.
	PasswordHash string
	JWTSecret    string
	SessionTTL   time.Duration

	ShutdownTimeout time.Duration
}

// AuthEnabled reports whether the password gate is on.
func (c Config) AuthEnabled() bool { return c.PasswordHash != "" }

// LoadEnv loads .env into the process environment. A missing file is fine.
func LoadEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to load .env: %v", err)
	}
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		Source:          strings.ToLower(getEnv("PLACEMENT_SOURCE", SourceCSV)),
		CSVPath:         getEnv("PLACEMENT_CSV_PATH", "data/placements.csv"),
		DBDSN:           os.Getenv("DB_DSN"),
		DBTable:         getEnv("DB_TABLE", "placements"),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:         getEnv("MONGO_DB", "placements"),
		MongoCollection: getEnv("MONGO_COLLECTION", "placements"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
		PasswordHash:    os.Getenv("DASHBOARD_PASSWORD_HASH"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
	}

	var err error
	if cfg.SessionTTL, err = getDuration("SESSION_TTL", 12*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeout, err = getDuration("SHUTDOWN_TIMEOUT", 5*time.Second); err != nil {
		return Config{}, err
	}

	switch cfg.Source {
	case SourceCSV:
		if cfg.CSVPath == "" {
			return Config{}, fmt.Errorf("PLACEMENT_CSV_PATH is required for source %q", cfg.Source)
		}
	case SourcePostgres, SourceSQLite:
		if cfg.DBDSN == "" {
			return Config{}, fmt.Errorf("DB_DSN is required for source %q", cfg.Source)
		}
	case SourceMongo:
	default:
		return Config{}, fmt.Errorf("unknown PLACEMENT_SOURCE %q", cfg.Source)
	}

	if cfg.AuthEnabled() && cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required when DASHBOARD_PASSWORD_HASH is set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", key, v)
	}
	return d, nil
}
