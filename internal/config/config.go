package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Logger     LoggerConfig
	Admin      AdminConfig
	Mail       MailConfig
	Storefront StorefrontConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds database-related configuration.
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

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// AdminConfig guards the admin-only endpoints (seller approval, contact
// message inbox).
type AdminConfig struct {
	APIKey string
}

// MailConfig holds SMTP settings for order and seller notifications.
// When Enabled is false notifications are logged instead of sent.
type MailConfig struct {
	Enabled  bool
	Host     string
	Port     int
	From     string
	Password string
	AdminTo  string // inbox for contact form notifications
}

// StorefrontConfig holds settings for the headless storefront client.
type StorefrontConfig struct {
	APIBaseURL     string
	CatalogURL     string // optional supplementary catalog source
	RequestTimeout time.Duration
	StatePath      string // JSON file backing local storefront state
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 5000),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "mystore"),
			MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 25),
			MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 5),
			MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Admin: AdminConfig{
			APIKey: getEnv("ADMIN_API_KEY", ""),
		},
		Mail: MailConfig{
			Enabled:  getEnvAsBool("MAIL_ENABLED", false),
			Host:     getEnv("MAIL_HOST", "smtp.gmail.com"),
			Port:     getEnvAsInt("MAIL_PORT", 587),
			From:     getEnv("MAIL_FROM", ""),
			Password: getEnv("MAIL_PASSWORD", ""),
			AdminTo:  getEnv("MAIL_ADMIN_TO", ""),
		},
		Storefront: StorefrontConfig{
			APIBaseURL:     getEnv("STORE_API_URL", "http://localhost:5000"),
			CatalogURL:     getEnv("STORE_CATALOG_URL", ""),
			RequestTimeout: time.Duration(getEnvAsInt("STORE_REQUEST_TIMEOUT", 15)) * time.Second,
			StatePath:      getEnv("STORE_STATE_PATH", "mystore-state.json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadStorefront loads only the storefront client settings. The headless
// store CLI has no use for server or database configuration.
func LoadStorefront() (StorefrontConfig, error) {
	cfg := StorefrontConfig{
		APIBaseURL:     getEnv("STORE_API_URL", "http://localhost:5000"),
		CatalogURL:     getEnv("STORE_CATALOG_URL", ""),
		RequestTimeout: time.Duration(getEnvAsInt("STORE_REQUEST_TIMEOUT", 15)) * time.Second,
		StatePath:      getEnv("STORE_STATE_PATH", "mystore-state.json"),
	}

	if cfg.RequestTimeout <= 0 {
		return StorefrontConfig{}, fmt.Errorf("storefront request timeout must be positive")
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

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

	if c.Admin.APIKey == "" {
		return fmt.Errorf("admin API key is required")
	}

	if c.Mail.Enabled {
		if c.Mail.From == "" {
			return fmt.Errorf("mail sender address is required when mail is enabled")
		}
		if c.Mail.Host == "" {
			return fmt.Errorf("mail host is required when mail is enabled")
		}
	}

	if c.Storefront.RequestTimeout <= 0 {
		return fmt.Errorf("storefront request timeout must be positive")
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
