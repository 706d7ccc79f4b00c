package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	Store    StoreConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Latency  LatencyConfig
}

// StoreConfig selects and configures the record store
type StoreConfig struct {
	Driver      string // "memory" or "mysql"
	DatasetPath string
}

// DatabaseConfig holds MySQL configuration (STORE_DRIVER=mysql)
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// AuthConfig holds session configuration
type AuthConfig struct {
	AccessTokenMins int
	RefreshTokenHrs int
	HashPINs        bool
}

// LatencyConfig configures artificial network latency
type LatencyConfig struct {
	Enabled bool
	MinMs   int
	MaxMs   int
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	driver := getEnv("STORE_DRIVER", "memory")
	if driver != "memory" && driver != "mysql" {
		return nil, fmt.Errorf("invalid STORE_DRIVER: '%s' (must be 'memory' or 'mysql')", driver)
	}

	config := &Config{
		AppMode: appMode,
		Port:    getEnv("PORT", "8080"),
		Store: StoreConfig{
			Driver:      driver,
			DatasetPath: getEnv("DATASET_PATH", "db.json"),
		},
		Database: loadDatabaseConfig(appMode),
		Auth:     loadAuthConfig(),
		Latency:  loadLatencyConfig(appMode),
	}

	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s, STORE: %s]", appMode, driver)
	return config, nil
}

// loadDatabaseConfig loads MySQL config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	return DatabaseConfig{
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "3306"),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "soshopay_mock"),
	}
}

// loadAuthConfig loads session config
func loadAuthConfig() AuthConfig {
	accessMins, _ := strconv.Atoi(getEnv("ACCESS_TOKEN_MINUTES", "60"))
	refreshHrs, _ := strconv.Atoi(getEnv("REFRESH_TOKEN_HOURS", "24"))
	hashPINs, _ := strconv.ParseBool(getEnv("PIN_HASHING", "false"))

	return AuthConfig{
		AccessTokenMins: accessMins,
		RefreshTokenHrs: refreshHrs,
		HashPINs:        hashPINs,
	}
}

// loadLatencyConfig loads artificial latency config; on by default in dev
func loadLatencyConfig(mode string) LatencyConfig {
	enabled, _ := strconv.ParseBool(getEnv("MOCK_LATENCY", strconv.FormatBool(mode == "dev")))
	minMs, _ := strconv.Atoi(getEnv("MOCK_LATENCY_MIN_MS", "300"))
	maxMs, _ := strconv.Atoi(getEnv("MOCK_LATENCY_MAX_MS", "1000"))
	if maxMs < minMs {
		maxMs = minMs
	}

	return LatencyConfig{
		Enabled: enabled,
		MinMs:   minMs,
		MaxMs:   maxMs,
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "https://app.soshopay.co.zw"
	}
	return origins
}
