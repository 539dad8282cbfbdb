package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Admin    AdminConfig
	App      AppConfig
}

type DatabaseConfig struct {
	Driver   string
	DSN      string // overrides the individual fields when set
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string

	SQLitePath      string
	ConnectAttempts int
}

type ServerConfig struct {
	Port          string
	SessionSecret string
}

// AdminConfig is the operator account created on first start.
type AdminConfig struct {
	Username string
	Password string
}

type AppConfig struct {
	Environment  string
	LogLevel     string
	SeedDemoData bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Database: DatabaseConfig{
			Driver:          strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
			DSN:             os.Getenv("DB_DSN"),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        os.Getenv("DB_PASSWORD"),
			Name:            getEnv("DB_NAME", "employee_management"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			SQLitePath:      getEnv("SQLITE_PATH", "employee_management.db"),
			ConnectAttempts: getEnvAsInt("DB_CONNECT_ATTEMPTS", 10),
		},
		Server: ServerConfig{
			Port:          getEnv("SERVER_PORT", "8080"),
			SessionSecret: os.Getenv("SESSION_SECRET"),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", "admin"),
			Password: getEnv("ADMIN_PASSWORD", "Admin123!"),
		},
		App: AppConfig{
			Environment:  getEnv("APP_ENV", "development"),
			LogLevel:     getEnv("LOG_LEVEL", "info"),
			SeedDemoData: getEnvAsBool("SEED_DEMO_DATA", true),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks what every command needs: a usable database setting.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.DSN == "" && c.Database.Host == "" {
			return fmt.Errorf("DB_HOST or DB_DSN is required")
		}
		if c.Database.DSN == "" && c.Database.Name == "" {
			return fmt.Errorf("DB_NAME is required")
		}
	case DriverSQLite:
		if c.Database.DSN == "" && c.Database.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH or DB_DSN is required")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	if c.Database.ConnectAttempts < 1 {
		return fmt.Errorf("DB_CONNECT_ATTEMPTS must be positive")
	}
	return nil
}

// ValidateServer checks the extra settings the HTTP API needs.
func (c *Config) ValidateServer() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.Server.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET is not set")
	}
	return nil
}

// DSNString is the connection string handed to the gorm dialector.
func (d DatabaseConfig) DSNString() string {
	if d.DSN != "" {
		return d.DSN
	}
	if d.Driver == DriverSQLite {
		sep := "?"
		if strings.Contains(d.SQLitePath, "?") {
			sep = "&"
		}
		return d.SQLitePath + sep + "_foreign_keys=on"
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
