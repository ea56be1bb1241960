package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Data source
	DataBackend      string
	TransactionsPath string
	ProfilesPath     string
	SQLiteDBPath     string

	// Classifier
	RulesPath string

	// Answer cache
	CacheSize int
	CacheTTL  time.Duration

	// Logging
	LogLevel string
}

func Load() *Config {
	return &Config{
		DataBackend:      getEnv("DATA_BACKEND", "csv"),
		TransactionsPath: getEnv("TRANSACTIONS_PATH", "transactions.csv"),
		ProfilesPath:     getEnv("PROFILES_PATH", "customer_profiles.csv"),
		SQLiteDBPath:     getEnv("SQLITE_DB_PATH", "./data/ledger.db"),

		RulesPath: getEnv("CLASSIFIER_RULES_PATH", ""),

		CacheSize: getEnvInt("ANSWER_CACHE_SIZE", 256),
		CacheTTL:  getEnvDuration("ANSWER_CACHE_TTL", 5*time.Minute),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// Validate checks the configuration and returns every problem found
// as one combined error.
func (c *Config) Validate() error {
	var errs []string

	switch c.DataBackend {
	case "csv", "sqlite":
	default:
		errs = append(errs, fmt.Sprintf("invalid data backend '%s': must be one of [csv sqlite]", c.DataBackend))
	}

	if c.DataBackend == "csv" {
		if c.TransactionsPath == "" {
			errs = append(errs, "transactions path cannot be empty when using csv backend")
		}
		if c.ProfilesPath == "" {
			errs = append(errs, "profiles path cannot be empty when using csv backend")
		}
	}

	if c.DataBackend == "sqlite" && c.SQLiteDBPath == "" {
		errs = append(errs, "SQLite database path cannot be empty when using sqlite backend")
	}

	if c.RulesPath != "" {
		if _, err := os.Stat(c.RulesPath); os.IsNotExist(err) {
			errs = append(errs, fmt.Sprintf("classifier rules file does not exist: %s", c.RulesPath))
		}
	}

	if c.CacheSize < 1 {
		errs = append(errs, fmt.Sprintf("invalid cache size %d: must be at least 1", c.CacheSize))
	}
	if c.CacheTTL < time.Second {
		errs = append(errs, fmt.Sprintf("invalid cache TTL %v: must be at least 1 second", c.CacheTTL))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("invalid log level '%s'", c.LogLevel))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
