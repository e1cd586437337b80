package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Storage backends.
const (
	BackendSheets   = "sheets"
	BackendPostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Sheets   SheetsConfig
	Uploads  UploadConfig
	Logger   LoggerConfig
	Auth     AuthConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Backend string // "sheets" or "postgres"
}

// DatabaseConfig holds PostgreSQL configuration (postgres backend only).
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
}

// SheetsConfig holds Google Sheets configuration (sheets backend only).
type SheetsConfig struct {
	SpreadsheetID   string
	CredentialsFile string
	PollInterval    time.Duration // background full-snapshot reload
	LoadTimeout     time.Duration // initial load before demo fallback
}

// UploadConfig holds proof-of-payment storage configuration.
type UploadConfig struct {
	Dir       string // local storage directory
	S3Enabled bool
	S3Bucket  string
	S3Region  string
	S3Prefix  string
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// AuthConfig holds admin authentication configuration.
type AuthConfig struct {
	AdminAPIKey string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Storage: StorageConfig{
			Backend: getEnv("STORAGE_BACKEND", BackendSheets),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "ditostore"),
			MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 25),
			MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 5),
			MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
		},
		Sheets: SheetsConfig{
			SpreadsheetID:   getEnv("SHEETS_SPREADSHEET_ID", ""),
			CredentialsFile: getEnv("SHEETS_CREDENTIALS_FILE", "credentials.json"),
			PollInterval:    time.Duration(getEnvAsInt("SHEETS_POLL_INTERVAL", 15)) * time.Second,
			LoadTimeout:     time.Duration(getEnvAsInt("SHEETS_LOAD_TIMEOUT", 10)) * time.Second,
		},
		Uploads: UploadConfig{
			Dir:       getEnv("UPLOAD_DIR", "data/uploads"),
			S3Enabled: getEnvAsBool("UPLOAD_S3_ENABLED", false),
			S3Bucket:  getEnv("UPLOAD_S3_BUCKET", ""),
			S3Region:  getEnv("UPLOAD_S3_REGION", "ap-southeast-1"),
			S3Prefix:  getEnv("UPLOAD_S3_PREFIX", "proofs/"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Auth: AuthConfig{
			AdminAPIKey: getEnv("ADMIN_API_KEY", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Auth.AdminAPIKey == "" {
		return fmt.Errorf("admin API key is required")
	}

	switch c.Storage.Backend {
	case BackendSheets:
		if c.Sheets.PollInterval < time.Second {
			return fmt.Errorf("sheets poll interval must be at least 1 second")
		}
		if c.Sheets.LoadTimeout < time.Second {
			return fmt.Errorf("sheets load timeout must be at least 1 second")
		}
	case BackendPostgres:
		if c.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if c.Database.Port < 1 || c.Database.Port > 65535 {
			return fmt.Errorf("invalid database port: %d", c.Database.Port)
		}
		if c.Database.User == "" {
			return fmt.Errorf("database user is required")
		}
		if c.Database.Database == "" {
			return fmt.Errorf("database name is required")
		}
		if c.Database.MaxConnections < 1 {
			return fmt.Errorf("database max connections must be at least 1")
		}
		if c.Database.MinConnections < 1 {
			return fmt.Errorf("database min connections must be at least 1")
		}
		if c.Database.MinConnections > c.Database.MaxConnections {
			return fmt.Errorf("database min connections cannot exceed max connections")
		}
	default:
		return fmt.Errorf("unknown storage backend: %s (must be sheets or postgres)", c.Storage.Backend)
	}

	if c.Uploads.S3Enabled {
		if c.Uploads.S3Bucket == "" {
			return fmt.Errorf("S3 bucket is required when S3 uploads are enabled")
		}
		if c.Uploads.S3Region == "" {
			return fmt.Errorf("S3 region is required when S3 uploads are enabled")
		}
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
